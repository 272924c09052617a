package shipping

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

type WeightTier struct {
	MaxWeight  float64 `json:"max_weight" yaml:"max_weight"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
	Label      string  `json:"label" yaml:"label"`
}

// Unbounded reports whether the tier is the catch-all last tier.
func (t WeightTier) Unbounded() bool {
	return math.IsInf(t.MaxWeight, 1)
}

// MarshalJSON writes the unbounded bound as null, since JSON has no infinity.
func (t WeightTier) MarshalJSON() ([]byte, error) {
	type tierJSON struct {
		MaxWeight  *float64 `json:"max_weight"`
		Multiplier float64  `json:"multiplier"`
		Label      string   `json:"label"`
	}
	out := tierJSON{Multiplier: t.Multiplier, Label: t.Label}
	if !t.Unbounded() {
		bound := t.MaxWeight
		out.MaxWeight = &bound
	}
	return json.Marshal(out)
}

// weightTiers must stay sorted by MaxWeight and end with an unbounded tier.
var weightTiers = []WeightTier{
	{MaxWeight: 1, Multiplier: 1.0, Label: "Up to 1 kg"},
	{MaxWeight: 3, Multiplier: 1.5, Label: "1 - 3 kg"},
	{MaxWeight: 5, Multiplier: 2.0, Label: "3 - 5 kg"},
	{MaxWeight: 10, Multiplier: 3.0, Label: "5 - 10 kg"},
	{MaxWeight: 20, Multiplier: 4.5, Label: "10 - 20 kg"},
	{MaxWeight: math.Inf(1), Multiplier: 6.0, Label: "Over 20 kg"},
}

// WeightTiers returns a copy of the tier table.
func WeightTiers() []WeightTier {
	out := make([]WeightTier, len(weightTiers))
	copy(out, weightTiers)
	return out
}

// GetWeightTier returns the first tier whose bound is at least weightKg.
// Negative and NaN weights count as zero.
func GetWeightTier(weightKg float64) WeightTier {
	w := normalizeWeight(weightKg)
	for _, t := range weightTiers {
		if w <= t.MaxWeight {
			return t
		}
	}
	return weightTiers[len(weightTiers)-1]
}

// CalculateWeightAdjustedRate multiplies baseRate by the tier multiplier for
// weightKg and rounds half-up to a whole peso.
func CalculateWeightAdjustedRate(baseRate int, weightKg float64) int {
	return applyMultiplier(baseRate, GetWeightTier(weightKg).Multiplier)
}

func applyMultiplier(baseRate int, multiplier float64) int {
	price := decimal.NewFromInt(int64(baseRate)).Mul(decimal.NewFromFloat(multiplier))
	return int(price.Round(0).IntPart())
}

func normalizeWeight(weightKg float64) float64 {
	if math.IsNaN(weightKg) || weightKg < 0 {
		return 0
	}
	return weightKg
}
