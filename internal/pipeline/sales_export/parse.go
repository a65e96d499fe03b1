package sales_export

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var columnNameSanitizer = strings.NewReplacer(" ", "", "_", "", ".", "", "-", "", "/", "", "\ufeff", "")

func normalizeColumnName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	return columnNameSanitizer.Replace(name)
}

// colIndex returns the index of the header matching the earliest alias in names, or -1.
func colIndex(header []string, names ...string) int {
	normalized := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeColumnName(h)
		if _, seen := normalized[key]; !seen {
			normalized[key] = i
		}
	}
	for _, name := range names {
		if i, ok := normalized[normalizeColumnName(name)]; ok {
			return i
		}
	}
	return -1
}

var numberSanitizer = strings.NewReplacer(",", "", "$", "", " ", "", "\u00a0", "")

// ParseQuantity parses a count such as "1,204" or "3.5". Blank values are zero.
func ParseQuantity(raw string) (float64, bool) {
	v := numberSanitizer.Replace(strings.TrimSpace(raw))
	if v == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseMoneyMinor converts a money string like "$1,234.50", "-$3.00" or "(3.00)" into minor units.
func ParseMoneyMinor(raw string) (int64, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, true
	}

	negative := false
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		negative = true
		v = strings.TrimSuffix(strings.TrimPrefix(v, "("), ")")
	}
	v = numberSanitizer.Replace(v)
	if strings.HasPrefix(v, "-") {
		negative = !negative
		v = strings.TrimPrefix(v, "-")
	}
	if v == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	minor := int64(math.Round(f * 100))
	if negative {
		minor = -minor
	}
	return minor, true
}

// ParseRowDate accepts ISO dates and day-first slash dates.
func ParseRowDate(raw string) (time.Time, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range rowDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

var filenameDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\d{8}`)
