package typeoption

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"columncalc/core"
)

func extract(t *testing.T, fieldType core.FieldType, data string) (float64, bool) {
	t.Helper()
	field := core.NewField("f", "f", fieldType)
	return NewResolver().Resolve(field).Extract(core.NewCell(fieldType, data))
}

func TestNumberExtractor(t *testing.T) {
	cases := map[string]float64{
		"42":        42,
		" -3.5 ":    -3.5,
		"$1,234.50": 1234.5,
		"€10":       10,
		"1_000":     1000,
		"12.5%":     12.5,
		"1e3":       1000,
		"-$7":       -7,
		"¥ 2 000":   2000,
	}
	for data, want := range cases {
		value, ok := extract(t, core.Number, data)
		assert.True(t, ok, data)
		assert.Equal(t, want, value, data)
	}

	for _, data := range []string{"", "   ", "abc", "1.2.3", "$"} {
		_, ok := extract(t, core.Number, data)
		assert.False(t, ok, data)
	}
}

func TestExtractor_RejectsNonFinite(t *testing.T) {
	words := []string{"NaN", "nan", "inf", "-Inf", "+inf", "Infinity", "-infinity", "1e400", "$inf"}
	for _, fieldType := range []core.FieldType{core.Number, core.RichText, core.URL} {
		for _, data := range words {
			_, ok := extract(t, fieldType, data)
			assert.False(t, ok, "%s %q", fieldType, data)
		}
	}
}

func TestResolver_NonFiniteCellsSkipped(t *testing.T) {
	service := core.NewCalculationsService(NewResolver())
	field := core.NewField("f", "score", core.Number)
	cells := []*core.RowCell{
		core.NewRowCell("1", core.NewCell(core.Number, "inf")),
		core.NewRowCell("2", core.NewCell(core.Number, "NaN")),
		core.NewRowCell("3", core.NewCell(core.Number, "5")),
	}

	for code := int64(0); code <= 4; code++ {
		assert.Equal(t, "5.00000", service.Calculate(field, code, cells))
	}
}

func TestTextExtractor(t *testing.T) {
	value, ok := extract(t, core.RichText, " 7.25 ")
	assert.True(t, ok)
	assert.Equal(t, 7.25, value)

	_, ok = extract(t, core.RichText, "$5")
	assert.False(t, ok)

	value, ok = extract(t, core.URL, "3")
	assert.True(t, ok)
	assert.Equal(t, 3.0, value)
}

func TestCheckboxExtractor(t *testing.T) {
	for _, data := range []string{"Yes", "true", "1", "YES"} {
		value, ok := extract(t, core.Checkbox, data)
		assert.True(t, ok, data)
		assert.Equal(t, 1.0, value, data)
	}
	for _, data := range []string{"No", "false", "0", ""} {
		value, ok := extract(t, core.Checkbox, data)
		assert.True(t, ok, data)
		assert.Equal(t, 0.0, value, data)
	}
	_, ok := extract(t, core.Checkbox, "maybe")
	assert.False(t, ok)
}

func TestParseCheckbox_Labels(t *testing.T) {
	checked, ok := ParseCheckbox(CheckboxChecked)
	assert.True(t, ok)
	assert.True(t, checked)

	checked, ok = ParseCheckbox(" " + CheckboxUnchecked + " ")
	assert.True(t, ok)
	assert.False(t, checked)

	_, ok = ParseCheckbox("yess")
	assert.False(t, ok)
}

func TestExtractorForType(t *testing.T) {
	assert.Equal(t, NumberExtractor{}, ExtractorForType(core.Number))
	assert.Equal(t, CheckboxExtractor{}, ExtractorForType(core.Checkbox))
	assert.Equal(t, core.RejectAll, ExtractorForType(core.SingleSelect))
	assert.Equal(t, core.RejectAll, ExtractorForType(core.FieldType(99)))

	cache := testCache(t)
	resolver := NewResolver(WithCellDataCache(cache))
	assert.Equal(t, core.RejectAll, resolver.Resolve(core.NewField("f", "f", core.Relation)))
}

func TestTimestampExtractor(t *testing.T) {
	for _, fieldType := range []core.FieldType{core.DateTime, core.CreatedTime, core.LastEditedTime} {
		value, ok := extract(t, fieldType, "1700000000")
		assert.True(t, ok)
		assert.Equal(t, 1700000000.0, value)

		_, ok = extract(t, fieldType, "2024-01-01")
		assert.False(t, ok)
	}
}

func TestRejectingTypes(t *testing.T) {
	for _, fieldType := range []core.FieldType{
		core.SingleSelect, core.MultiSelect, core.Checklist, core.Relation, core.FieldType(99),
	} {
		_, ok := extract(t, fieldType, "12")
		assert.False(t, ok, fieldType.String())
	}
}

func TestExtractor_MissingData(t *testing.T) {
	field := core.NewField("f", "f", core.Number)
	extractor := NewResolver().Resolve(field)

	_, ok := extractor.Extract(core.Cell{})
	assert.False(t, ok)
	_, ok = extractor.Extract(core.Cell{core.CellDataKey: 12})
	assert.False(t, ok)
}

func TestResolver_FeedsCalculationsService(t *testing.T) {
	service := core.NewCalculationsService(NewResolver())
	field := core.NewField("f", "price", core.Number)
	cells := []*core.RowCell{
		core.NewRowCell("1", core.NewCell(core.Number, "$1,000")),
		core.NewRowCell("2", core.NewCell(core.Number, "250")),
		core.NewRowCell("3", nil),
		core.NewRowCell("4", core.NewCell(core.Number, "tbd")),
	}

	assert.Equal(t, "1250.00000", service.Calculate(field, int64(core.Sum), cells))
	assert.Equal(t, "625.00000", service.Calculate(field, int64(core.Average), cells))
	assert.Equal(t, "625.00000", service.Calculate(field, int64(core.Median), cells))
}
