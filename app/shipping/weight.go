package shipping

import (
	"math"

	"github.com/shopspring/decimal"
)

// CartLine is the part of a cart item that matters for shipping.
type CartLine struct {
	WeightKg float64 `json:"weight_kg"`
	Qty      int     `json:"qty"`
}

// TotalWeight sums WeightKg * Qty over lines, skipping lines with a
// non-positive or non-finite weight, or a non-positive quantity.
func TotalWeight(lines []CartLine) float64 {
	total := decimal.Zero
	for _, l := range lines {
		if l.Qty <= 0 || !(l.WeightKg > 0) || math.IsInf(l.WeightKg, 1) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(l.WeightKg).Mul(decimal.NewFromInt(int64(l.Qty))))
	}
	return total.InexactFloat64()
}
