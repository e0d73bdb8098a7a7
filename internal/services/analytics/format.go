package analytics

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// fixed2 renders v with exactly two decimals, rounding half away from zero.
func fixed2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatNumber(v)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// formatNumber renders v in its shortest round-trip form (2, 0.5, 1.25).
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
