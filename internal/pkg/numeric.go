package pkg

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount coerces a free-text amount to a float64, treating anything that
// does not parse (or is empty) as zero. Mirrors the defensive handling of
// user-entered number fields throughout the planner and calculators.
func ParseAmount(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// IsProvided reports whether a free-text field should be rendered as a value.
// Empty fields display as "Not Provided" but still aggregate as zero.
func IsProvided(s string) bool {
	return strings.TrimSpace(s) != ""
}

// RoundCurrency rounds to two decimals for currency comparisons.
func RoundCurrency(val float64) float64 {
	return math.Round(val*100) / 100
}

// RoundPercent rounds to the nearest whole percent.
func RoundPercent(val float64) int {
	return int(math.Round(val))
}
