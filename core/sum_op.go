package core

type SumOp struct{}

func NewSumOp() *SumOp {
	return &SumOp{}
}

// Apply adds the sample left to right.
func (op *SumOp) Apply(sample []float64) float64 {
	sum := 0.0
	for _, value := range sample {
		sum += value
	}
	return sum
}

func (op *SumOp) EmptyQuery() string {
	return ""
}
