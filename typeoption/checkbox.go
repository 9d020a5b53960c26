package typeoption

import (
	"strings"

	"columncalc/core"
)

const (
	CheckboxChecked   = "Yes"
	CheckboxUnchecked = "No"
)

// CheckboxExtractor reads a checked box as 1 and an unchecked one as 0.
type CheckboxExtractor struct{}

func (CheckboxExtractor) Extract(cell core.Cell) (float64, bool) {
	data, ok := cell.Data()
	if !ok {
		return 0, false
	}
	checked, ok := ParseCheckbox(data)
	if !ok {
		return 0, false
	}
	if checked {
		return 1, true
	}
	return 0, true
}

func ParseCheckbox(s string) (checked bool, ok bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, CheckboxChecked), strings.EqualFold(s, "true"), s == "1":
		return true, true
	case strings.EqualFold(s, CheckboxUnchecked), strings.EqualFold(s, "false"), s == "0", s == "":
		return false, true
	default:
		return false, false
	}
}
