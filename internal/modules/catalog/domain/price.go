package domain

import (
	"fmt"
	"math"
)

// FormatPrice renders an amount as a fixed two-decimal price with a comma
// decimal separator and the currency suffix, e.g. 3.5 -> "3,50 EUR".
func FormatPrice(amount float64) string {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	cents := int64(math.Round(amount * 100))
	return fmt.Sprintf("%d,%02d EUR", cents/100, cents%100)
}
