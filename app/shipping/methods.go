package shipping

import "strings"

type MethodID string

const (
	Standard  MethodID = "standard"
	Express   MethodID = "express"
	Overnight MethodID = "overnight"
)

// ParseMethodID parses a method id case-insensitively.
func ParseMethodID(s string) (MethodID, bool) {
	switch MethodID(strings.ToLower(strings.TrimSpace(s))) {
	case Standard:
		return Standard, true
	case Express:
		return Express, true
	case Overnight:
		return Overnight, true
	}
	return "", false
}

// ShippingMethod is one option offered to the buyer. Price is in whole pesos.
type ShippingMethod struct {
	ID            MethodID `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	EstimatedDays string   `json:"estimated_days"`
	Price         int      `json:"price"`
}

type methodInfo struct {
	name        string
	description string
}

var methodInfos = map[MethodID]methodInfo{
	Standard:  {name: "Standard Shipping", description: "Regular delivery via partner couriers"},
	Express:   {name: "Express Shipping", description: "Priority handling and faster delivery"},
	Overnight: {name: "Overnight Shipping", description: "Next-day delivery for orders placed before cutoff"},
}

func newMethod(id MethodID, days string, price int) ShippingMethod {
	info := methodInfos[id]
	return ShippingMethod{
		ID:            id,
		Name:          info.name,
		Description:   info.description,
		EstimatedDays: days,
		Price:         price,
	}
}

// GetShippingMethods lists the methods available for a destination, priced
// for weightKg. Unknown destinations get the default standard and express
// rates. Overnight is listed only when the matched record offers it.
func GetShippingMethods(country, province, city string, weightKg float64) []ShippingMethod {
	return buildMethods(country, province, city, GetWeightTier(weightKg).Multiplier)
}

// GetBaseShippingMethods is GetShippingMethods without weight adjustment, for
// previews where the cart weight is not known yet.
func GetBaseShippingMethods(country, province, city string) []ShippingMethod {
	return buildMethods(country, province, city, 1)
}

func buildMethods(country, province, city string, multiplier float64) []ShippingMethod {
	rate, ok := FindShippingRate(country, province, city)
	if !ok {
		return []ShippingMethod{
			newMethod(Standard, DefaultStandardDays, applyMultiplier(DefaultStandardRate, multiplier)),
			newMethod(Express, DefaultExpressDays, applyMultiplier(DefaultExpressRate, multiplier)),
		}
	}

	methods := []ShippingMethod{
		newMethod(Standard, rate.EstimatedDays.Standard, applyMultiplier(rate.StandardRate, multiplier)),
		newMethod(Express, rate.EstimatedDays.Express, applyMultiplier(rate.ExpressRate, multiplier)),
	}
	if rate.OffersOvernight() {
		methods = append(methods, newMethod(Overnight, rate.EstimatedDays.Overnight, applyMultiplier(rate.OvernightRate, multiplier)))
	}
	return methods
}

// CalculateShippingFee prices a single method for weightKg.
//
// Overnight on a destination without overnight service is charged at the
// express rate, while GetShippingMethods leaves overnight out for the same
// destination. Unrecognised methods are charged at the standard rate.
func CalculateShippingFee(country, province, city string, weightKg float64, method MethodID) int {
	return CalculateWeightAdjustedRate(baseRateFor(country, province, city, method), weightKg)
}

func baseRateFor(country, province, city string, method MethodID) int {
	rate, ok := FindShippingRate(country, province, city)
	if !ok {
		rate = ShippingRate{StandardRate: DefaultStandardRate, ExpressRate: DefaultExpressRate}
	}

	switch method {
	case Express:
		return rate.ExpressRate
	case Overnight:
		if rate.OffersOvernight() {
			return rate.OvernightRate
		}
		return rate.ExpressRate
	default:
		return rate.StandardRate
	}
}

// FindMethod returns the method with the given id from a list.
func FindMethod(methods []ShippingMethod, id MethodID) (ShippingMethod, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return ShippingMethod{}, false
}
