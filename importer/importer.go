package importer

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"columncalc/core"
	"columncalc/tabledb"
	"columncalc/typeoption"
)

var numberExtractor typeoption.NumberExtractor

// Sheet is a header row plus data rows, as read from a csv or xlsx file.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

type Result struct {
	Fields []*core.Field
	Rows   int
}

func ReadCSV(r io.Reader) (*Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	return newSheet(records)
}

// ReadXLSX reads sheetName, or the first sheet when sheetName is empty.
func ReadXLSX(r io.Reader, sheetName string) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open xlsx")
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("xlsx has no sheets")
		}
		sheetName = sheets[0]
	}
	records, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q", sheetName)
	}
	return newSheet(records)
}

func newSheet(records [][]string) (*Sheet, error) {
	if len(records) == 0 {
		return nil, errors.New("no header row")
	}
	headers := make([]string, len(records[0]))
	seen := make(map[string]bool, len(headers))
	for i, h := range records[0] {
		name := strings.TrimSpace(h)
		if name == "" {
			name = "column_" + strconv.Itoa(i+1)
		}
		// Repeated headers get _2, _3, ... so field names stay unique.
		unique := name
		for n := 2; seen[unique]; n++ {
			unique = name + "_" + strconv.Itoa(n)
		}
		seen[unique] = true
		headers[i] = unique
	}
	return &Sheet{Headers: headers, Rows: records[1:]}, nil
}

func (s *Sheet) column(i int) []string {
	values := make([]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		if i < len(row) {
			values = append(values, row[i])
		}
	}
	return values
}

// InferFieldType picks Number when every non-empty value reads as a number,
// Checkbox when every non-empty value is a checkbox word, RichText
// otherwise. A column with no values is RichText.
func InferFieldType(values []string) core.FieldType {
	numeric, checkbox, seen := true, true, 0
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		seen++
		if _, ok := numberExtractor.Extract(core.NewCell(core.Number, v)); !ok {
			numeric = false
		}
		if _, ok := typeoption.ParseCheckbox(v); !ok {
			checkbox = false
		}
	}
	switch {
	case seen == 0:
		return core.RichText
	case checkbox && !allDigits(values):
		return core.Checkbox
	case numeric:
		return core.Number
	default:
		return core.RichText
	}
}

// allDigits reports whether the non-empty values are all "0" or "1", which
// read better as numbers than as checkboxes.
func allDigits(values []string) bool {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" && v != "0" && v != "1" {
			return false
		}
	}
	return true
}

// Import creates one field per header and inserts every data row. Empty
// cells are stored as absent values. On failure the fields and rows
// created so far are removed again.
func Import(db *tabledb.DB, sheet *Sheet, logger *zap.Logger) (result *Result, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fields := make([]*core.Field, 0, len(sheet.Headers))
	rowIDs := make([]string, 0, len(sheet.Rows))
	defer func() {
		if err != nil {
			err = multierr.Append(err, rollback(db, fields, rowIDs))
			logger.Warn("sheet import rolled back", zap.Error(err))
		}
	}()

	for i, header := range sheet.Headers {
		field, err := db.CreateField(header, InferFieldType(sheet.column(i)))
		if err != nil {
			return nil, errors.Wrapf(err, "create field %q", header)
		}
		fields = append(fields, field)
	}

	for n, row := range sheet.Rows {
		values := make(map[string]string, len(row))
		for i, v := range row {
			if i >= len(fields) || strings.TrimSpace(v) == "" {
				continue
			}
			values[fields[i].ID] = v
		}
		rowID, err := db.InsertRow(values)
		if err != nil {
			return nil, errors.Wrapf(err, "insert row %d", n+2)
		}
		rowIDs = append(rowIDs, rowID)
	}

	logger.Info("sheet imported",
		zap.Int("fields", len(fields)),
		zap.Int("rows", len(rowIDs)))
	return &Result{Fields: fields, Rows: len(rowIDs)}, nil
}

func rollback(db *tabledb.DB, fields []*core.Field, rowIDs []string) error {
	var err error
	for _, id := range rowIDs {
		err = multierr.Append(err, db.DeleteRow(id))
	}
	for _, field := range fields {
		err = multierr.Append(err, db.DeleteField(field.ID))
	}
	return err
}
