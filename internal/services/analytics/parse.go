package analytics

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leading decimal literal, the way spreadsheet and CSV exports usually write prices
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseSeries splits text on commas or newlines and returns the positive numbers
// found, in order. Tokens that do not start with a number, or that parse to a
// non-positive or non-finite value, are skipped. It never fails.
func ParseSeries(text string) []float64 {
	out := []float64{}
	if strings.TrimSpace(text) == "" {
		return out
	}
	tokens := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == '\n' })
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		lit := numberPrefix.FindString(tok)
		if lit == "" {
			continue
		}
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil || math.IsInf(v, 0) || v <= 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}
