package core

type AvgOp struct {
	sumOp *SumOp
}

func NewAvgOp() *AvgOp {
	return &AvgOp{
		sumOp: NewSumOp(),
	}
}

// Apply divides the plain sum by the count. A sum past math.MaxFloat64
// renders as +Inf.
func (op *AvgOp) Apply(sample []float64) float64 {
	return op.sumOp.Apply(sample) / float64(len(sample))
}

// EmptyQuery differs from the other ops: an average over nothing renders
// as "0" rather than "".
func (op *AvgOp) EmptyQuery() string {
	return "0"
}
