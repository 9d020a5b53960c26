package core

var opTable = map[CalculationType]func() Op{
	Average: func() Op { return NewAvgOp() },
	Max:     func() Op { return NewMaxOp() },
	Median:  func() Op { return NewMedianOp() },
	Min:     func() Op { return NewMinOp() },
	Sum:     func() Op { return NewSumOp() },
}

func GetOpFromType(calcType CalculationType) Op {
	newOp, ok := opTable[calcType]
	if !ok {
		return NewAvgOp()
	}
	return newOp()
}

func GetOpFromName(opName string) Op {
	for calcType, newOp := range opTable {
		if calcType.String() == opName {
			return newOp()
		}
	}
	return nil
}

// OpSet holds one instance of every op. Ops carry no mutable state so a
// set can be shared between goroutines.
type OpSet struct {
	ops map[CalculationType]Op
}

func NewOpSet() *OpSet {
	ops := make(map[CalculationType]Op, len(opTable))
	for calcType := range opTable {
		ops[calcType] = GetOpFromType(calcType)
	}
	return &OpSet{ops: ops}
}

func (set *OpSet) GetOp(calcType CalculationType) Op {
	op, ok := set.ops[calcType]
	if !ok {
		return set.ops[Average]
	}
	return op
}
