package core

type MedianOp struct{}

func NewMedianOp() *MedianOp {
	return &MedianOp{}
}

// Apply sorts a copy of the sample. For an even count the two values
// straddling the midpoint are averaged; each is halved first so values
// near math.MaxFloat64 do not overflow.
func (op *MedianOp) Apply(sample []float64) float64 {
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	SortTotal(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return sorted[n/2-1]/2 + sorted[n/2]/2
	}
	return sorted[n/2]
}

func (op *MedianOp) EmptyQuery() string {
	return ""
}
