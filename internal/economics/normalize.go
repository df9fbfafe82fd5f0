package economics

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The entry form feeds raw text-field values on every recalculation, so
// every numeric input goes through the same rule before use: parse as a
// number, substitute 0 when parsing fails or the value is NaN, and
// clamp negatives to 0 where the domain requires non-negativity.

// Round2 rounds a value to 2 decimal places, half up.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Amount normalizes a monetary value: NaN, infinite or negative inputs
// become 0, everything else is rounded to cents.
func Amount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return Round2(v)
}

// Quantity normalizes a point quantity the same way as Amount.
func Quantity(v float64) float64 {
	return Amount(v)
}

// ParseAmount parses a monetary text field. Blank or malformed input
// reads as 0 so a half-filled form never produces an error.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return Amount(v)
}

// ParseQuantity parses a point-quantity text field.
func ParseQuantity(s string) float64 {
	return ParseAmount(s)
}

// ParseCount parses a non-negative integer field such as the tour count.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
