package core

import (
	"math"
	"sort"
)

// totalKey maps a float64 onto an int64 whose natural order is the IEEE 754
// totalOrder predicate: -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN.
func totalKey(f float64) int64 {
	bits := int64(math.Float64bits(f))
	return bits ^ int64(uint64(bits>>63)>>1)
}

func TotalCompare(a, b float64) int {
	ka, kb := totalKey(a), totalKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

func TotalLess(a, b float64) bool {
	return totalKey(a) < totalKey(b)
}

// SortTotal sorts values ascending in place using TotalLess.
func SortTotal(values []float64) {
	sort.Slice(values, func(i, j int) bool {
		return TotalLess(values[i], values[j])
	})
}
