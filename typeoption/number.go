package typeoption

import (
	"math"
	"strconv"
	"strings"

	"columncalc/core"
)

var numberReplacer = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	"¥", "",
	"₹", "",
	",", "",
	"_", "",
	" ", "",
)

// NumberExtractor reads number cells, tolerating currency symbols,
// thousands separators and a trailing percent sign.
type NumberExtractor struct{}

func (NumberExtractor) Extract(cell core.Cell) (float64, bool) {
	data, ok := cell.Data()
	if !ok {
		return 0, false
	}
	data = numberReplacer.Replace(strings.TrimSpace(data))
	data = strings.TrimSuffix(data, "%")
	return parseFloat(data)
}

// TextExtractor reads text and url cells that hold a plain number.
type TextExtractor struct{}

func (TextExtractor) Extract(cell core.Cell) (float64, bool) {
	data, ok := cell.Data()
	if !ok {
		return 0, false
	}
	return parseFloat(strings.TrimSpace(data))
}

// parseFloat only accepts finite values. ParseFloat would also read
// "NaN", "inf" and "Infinity" and overflowing literals like "1e400".
func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
