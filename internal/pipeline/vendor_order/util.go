package vendor_order

import (
	"math"
	"strings"
)

// ceilEpsilon absorbs float error so that e.g. 2.5*4 stays 10 instead of ceiling to 11.
const ceilEpsilon = 1e-9

// roundFloat rounds v to the given number of decimal places.
func roundFloat(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}

	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

func roundQty(v float64) float64 { return roundFloat(v, 1) }

// minorToCurrency converts integer minor units to a 2dp currency amount.
func minorToCurrency(minor int64) float64 {
	return roundFloat(float64(minor)/100, 2)
}

func ceilTolerant(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return int(math.Ceil(v - ceilEpsilon))
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeKeywords lower-cases keywords and drops blanks, which would otherwise match everything.
func normalizeKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k = normalizeKey(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
