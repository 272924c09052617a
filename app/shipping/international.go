package shipping

// RestOfWorld is the catch-all international entry.
const RestOfWorld = "Rest of World"

// InternationalRate is a flat per-country rate. It is never consulted by
// FindShippingRate.
type InternationalRate struct {
	Country       string        `json:"country" yaml:"country"`
	StandardRate  int           `json:"standard_rate" yaml:"standard_rate"`
	ExpressRate   int           `json:"express_rate" yaml:"express_rate"`
	EstimatedDays EstimatedDays `json:"estimated_days" yaml:"estimated_days"`
}

var internationalRates = []InternationalRate{
	{Country: "Singapore", StandardRate: 850, ExpressRate: 1500, EstimatedDays: EstimatedDays{Standard: "7-10 business days", Express: "3-5 business days"}},
	{Country: "Malaysia", StandardRate: 850, ExpressRate: 1500, EstimatedDays: EstimatedDays{Standard: "7-10 business days", Express: "3-5 business days"}},
	{Country: "Hong Kong", StandardRate: 900, ExpressRate: 1600, EstimatedDays: EstimatedDays{Standard: "7-10 business days", Express: "3-5 business days"}},
	{Country: "Japan", StandardRate: 1100, ExpressRate: 1900, EstimatedDays: EstimatedDays{Standard: "7-12 business days", Express: "3-5 business days"}},
	{Country: "South Korea", StandardRate: 1100, ExpressRate: 1900, EstimatedDays: EstimatedDays{Standard: "7-12 business days", Express: "3-5 business days"}},
	{Country: "Australia", StandardRate: 1500, ExpressRate: 2600, EstimatedDays: EstimatedDays{Standard: "10-15 business days", Express: "4-6 business days"}},
	{Country: "United Arab Emirates", StandardRate: 1600, ExpressRate: 2800, EstimatedDays: EstimatedDays{Standard: "10-15 business days", Express: "4-7 business days"}},
	{Country: "United States", StandardRate: 1800, ExpressRate: 3200, EstimatedDays: EstimatedDays{Standard: "12-20 business days", Express: "5-7 business days"}},
	{Country: "Canada", StandardRate: 1800, ExpressRate: 3200, EstimatedDays: EstimatedDays{Standard: "12-20 business days", Express: "5-7 business days"}},
	{Country: "United Kingdom", StandardRate: 1900, ExpressRate: 3400, EstimatedDays: EstimatedDays{Standard: "12-20 business days", Express: "5-8 business days"}},
	{Country: RestOfWorld, StandardRate: 2200, ExpressRate: 3800, EstimatedDays: EstimatedDays{Standard: "15-30 business days", Express: "7-10 business days"}},
}

// InternationalRates returns a copy of the international table.
func InternationalRates() []InternationalRate {
	out := make([]InternationalRate, len(internationalRates))
	copy(out, internationalRates)
	return out
}

// FindInternationalRate looks up a country. ok is false when the country is
// not listed; rate is then the Rest of World entry.
func FindInternationalRate(country string) (rate InternationalRate, ok bool) {
	for _, r := range internationalRates {
		if r.Country != RestOfWorld && sameName(r.Country, country) {
			return r, true
		}
	}
	return internationalRates[len(internationalRates)-1], false
}

// GetInternationalShippingMethods prices standard and express international
// shipping for weightKg using the domestic weight tiers.
func GetInternationalShippingMethods(country string, weightKg float64) []ShippingMethod {
	rate, _ := FindInternationalRate(country)
	return []ShippingMethod{
		newMethod(Standard, rate.EstimatedDays.Standard, CalculateWeightAdjustedRate(rate.StandardRate, weightKg)),
		newMethod(Express, rate.EstimatedDays.Express, CalculateWeightAdjustedRate(rate.ExpressRate, weightKg)),
	}
}
