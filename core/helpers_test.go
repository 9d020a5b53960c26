package core

import "strconv"

type numberResolver struct{}

func (numberResolver) Resolve(field *Field) NumericExtractor {
	if field.Type != Number {
		return nil
	}
	return ExtractorFunc(func(cell Cell) (float64, bool) {
		data, ok := cell.Data()
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(data, 64)
		if err != nil {
			return 0, false
		}
		return value, true
	})
}

func numberCells(values ...string) []*RowCell {
	cells := make([]*RowCell, len(values))
	for i, value := range values {
		cells[i] = NewRowCell(strconv.Itoa(i), NewCell(Number, value))
	}
	return cells
}

func testService() *CalculationsService {
	return NewCalculationsService(numberResolver{})
}

var numberField = NewField("f1", "amount", Number)
