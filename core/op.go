package core

import "strconv"

const Precision = 5

// Op reduces a non-empty sample to a single value. EmptyQuery is what the
// calculation renders when the sample has no values.
type Op interface {
	Apply(sample []float64) float64
	EmptyQuery() string
}

// FormatResult renders v with Precision fractional digits. FormatFloat rounds
// the exact binary value half-to-even.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', Precision, 64)
}
