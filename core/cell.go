package core

const (
	CellDataKey      = "data"
	CellFieldTypeKey = "field_type"
)

// Cell is the raw payload a row stores for one field.
type Cell map[string]interface{}

func NewCell(fieldType FieldType, data string) Cell {
	return Cell{
		CellDataKey:      data,
		CellFieldTypeKey: int64(fieldType),
	}
}

// Data returns the cell's string payload, if it has one.
func (c Cell) Data() (string, bool) {
	if c == nil {
		return "", false
	}
	data, ok := c[CellDataKey].(string)
	return data, ok
}

// RowCell is a row's value for a given field. A nil Cell means the row
// has no value for the column.
type RowCell struct {
	RowID string
	Cell  Cell
}

func NewRowCell(rowID string, cell Cell) *RowCell {
	return &RowCell{RowID: rowID, Cell: cell}
}
