package typeoption

import (
	"strconv"
	"strings"

	"columncalc/core"
)

// TimestampExtractor reads date, created and last edited cells. Their data
// is a unix timestamp in seconds.
type TimestampExtractor struct{}

func (TimestampExtractor) Extract(cell core.Cell) (float64, bool) {
	data, ok := cell.Data()
	if !ok {
		return 0, false
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(data), 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(ts), true
}
