package core

type MaxOp struct{}

func NewMaxOp() *MaxOp {
	return &MaxOp{}
}

func (op *MaxOp) Apply(sample []float64) float64 {
	max := sample[0]
	for _, value := range sample[1:] {
		if TotalLess(max, value) {
			max = value
		}
	}
	return max
}

func (op *MaxOp) EmptyQuery() string {
	return ""
}
