package core

type MinOp struct{}

func NewMinOp() *MinOp {
	return &MinOp{}
}

func (op *MinOp) Apply(sample []float64) float64 {
	min := sample[0]
	for _, value := range sample[1:] {
		if TotalLess(value, min) {
			min = value
		}
	}
	return min
}

func (op *MinOp) EmptyQuery() string {
	return ""
}
