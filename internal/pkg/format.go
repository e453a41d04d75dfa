package pkg

import (
	"fmt"
	"math"
	"strings"
)

// NotProvided is the display sentinel for empty optional fields.
const NotProvided = "Not Provided"

// Currency formats an amount with the rupee symbol and Indian digit grouping
// (e.g., "₹12,34,567.89", "-₹500.00").
func Currency(amount float64) string {
	formatted := groupIndian(math.Abs(amount))
	if amount < 0 {
		return "-₹" + formatted
	}
	return "₹" + formatted
}

// CurrencyOrNotProvided renders a free-text amount field for display: empty
// fields become the sentinel, everything else is formatted as currency.
func CurrencyOrNotProvided(s string) string {
	if !IsProvided(s) {
		return NotProvided
	}
	return Currency(ParseAmount(s))
}

// groupIndian applies the Indian numbering system: the last three digits are
// grouped together, every preceding group has two digits.
func groupIndian(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]

		var builder strings.Builder
		for i, digit := range head {
			if i > 0 && (len(head)-i)%2 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String() + "," + tail
	}

	return intPart + "." + decPart
}
