package tabledb

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"columncalc/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Row holds one cell per field id. Fields the row has no value for are
// absent from Cells.
type Row struct {
	ID    string               `json:"id"`
	Cells map[string]core.Cell `json:"cells"`
}

func FieldToBytes(field *core.Field) ([]byte, error) {
	buf, err := json.Marshal(field)
	return buf, errors.Wrap(err, "encode field")
}

func BytesToField(buf []byte) (*core.Field, error) {
	field := &core.Field{}
	if err := json.Unmarshal(buf, field); err != nil {
		return nil, errors.Wrap(err, "decode field")
	}
	return field, nil
}

func RowToBytes(row *Row) ([]byte, error) {
	buf, err := json.Marshal(row)
	return buf, errors.Wrap(err, "encode row")
}

func BytesToRow(buf []byte) (*Row, error) {
	row := &Row{}
	if err := json.Unmarshal(buf, row); err != nil {
		return nil, errors.Wrap(err, "decode row")
	}
	return row, nil
}
