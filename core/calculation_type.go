package core

type CalculationType int64

const (
	Average CalculationType = 0
	Max     CalculationType = 1
	Median  CalculationType = 2
	Min     CalculationType = 3
	Sum     CalculationType = 4
)

// CalculationTypeFromCode decodes the integer selector sent by callers.
// Codes outside the known range fall back to Average.
func CalculationTypeFromCode(code int64) CalculationType {
	switch CalculationType(code) {
	case Average, Max, Median, Min, Sum:
		return CalculationType(code)
	default:
		return Average
	}
}

func (t CalculationType) String() string {
	switch t {
	case Average:
		return "average"
	case Max:
		return "max"
	case Median:
		return "median"
	case Min:
		return "min"
	case Sum:
		return "sum"
	default:
		return ""
	}
}
