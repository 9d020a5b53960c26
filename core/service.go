package core

// CalculationsService computes a column footer value. It holds no state
// beyond its resolver and op set, so Calculate can run concurrently.
type CalculationsService struct {
	resolver ExtractorResolver
	ops      *OpSet
}

func NewCalculationsService(resolver ExtractorResolver) *CalculationsService {
	return &CalculationsService{
		resolver: resolver,
		ops:      NewOpSet(),
	}
}

// Calculate reduces the numeric values of cells with the calculation named
// by code. It never fails: cells with no numeric reading are skipped and
// an empty sample renders as the op's EmptyQuery.
func (s *CalculationsService) Calculate(field *Field, code int64, cells []*RowCell) string {
	return s.CalculateType(field, CalculationTypeFromCode(code), cells)
}

func (s *CalculationsService) CalculateType(field *Field, calcType CalculationType, cells []*RowCell) string {
	op := s.ops.GetOp(calcType)
	sample := s.Sample(field, cells)
	if len(sample) == 0 {
		return op.EmptyQuery()
	}
	return FormatResult(op.Apply(sample))
}

// Sample extracts the numeric values of cells in input order.
func (s *CalculationsService) Sample(field *Field, cells []*RowCell) []float64 {
	extractor := s.extractor(field)
	sample := make([]float64, 0, len(cells))
	for _, rowCell := range cells {
		if rowCell == nil || rowCell.Cell == nil {
			continue
		}
		if value, ok := extractor.Extract(rowCell.Cell); ok {
			sample = append(sample, value)
		}
	}
	return sample
}

func (s *CalculationsService) extractor(field *Field) NumericExtractor {
	if s.resolver == nil || field == nil {
		return RejectAll
	}
	extractor := s.resolver.Resolve(field)
	if extractor == nil {
		return RejectAll
	}
	return extractor
}
