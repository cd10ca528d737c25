// Package format renders calculated amounts for display.
package format

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount formats a value with exactly two decimals, rounding half away from zero.
// NaN and infinities are rendered as "NaN", "+Inf" and "-Inf".
func Amount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// Currency formats a value as dollars with 2 decimals.
func Currency(amount float64) string { return "$" + Amount(amount) }

// Percentage formats a whole tip percentage, e.g. "15%".
func Percentage(p int) string { return strconv.Itoa(p) + "%" }
