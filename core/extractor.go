package core

// NumericExtractor reads a cell as a float64. It must be deterministic and
// safe to call concurrently.
type NumericExtractor interface {
	Extract(cell Cell) (float64, bool)
}

type ExtractorResolver interface {
	Resolve(field *Field) NumericExtractor
}

// ExtractorFunc adapts a plain function to NumericExtractor.
type ExtractorFunc func(cell Cell) (float64, bool)

func (f ExtractorFunc) Extract(cell Cell) (float64, bool) {
	return f(cell)
}

type rejectAll struct{}

func (rejectAll) Extract(Cell) (float64, bool) {
	return 0, false
}

// RejectAll is used for field types that have no numeric reading. It is a
// comparable value, so callers may test an extractor against it.
var RejectAll NumericExtractor = rejectAll{}
