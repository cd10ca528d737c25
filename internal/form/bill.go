package form

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmptyBill    = errors.New("bill amount is empty")
	ErrInvalidBill  = errors.New("bill amount is not a number")
	ErrNegativeBill = errors.New("bill amount cannot be negative")
	ErrBillTooLarge = errors.New("bill amount is too large")
)

// MaxBillAmount is the largest bill accepted. It keeps bill plus a 100% tip
// finite and exact to the cent.
const MaxBillAmount = 1e12

// ParseBill turns user-entered text into a bill amount.
// Surrounding whitespace and a leading "$" are ignored.
func ParseBill(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if s == "" {
		return 0, ErrEmptyBill
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidBill
	}
	if amount < 0 {
		return 0, ErrNegativeBill
	}
	if amount > MaxBillAmount {
		return 0, ErrBillTooLarge
	}
	return amount, nil
}
