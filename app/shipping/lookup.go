package shipping

import "strings"

// MatchKind records which lookup step resolved a destination.
type MatchKind string

const (
	MatchCity     MatchKind = "city"
	MatchProvince MatchKind = "province"
	MatchNone     MatchKind = "default"
)

type lookupStep struct {
	kind  MatchKind
	match func(r ShippingRate, province, city string) bool
}

// lookupChain is evaluated in order; the first step with a matching record wins.
var lookupChain = []lookupStep{
	{
		kind: MatchCity,
		match: func(r ShippingRate, province, city string) bool {
			return sameName(r.Province, province) && containsName(r.Cities, city)
		},
	},
	{
		kind: MatchProvince,
		match: func(r ShippingRate, province, _ string) bool {
			return sameName(r.Province, province)
		},
	},
}

// FindShippingRate resolves a domestic destination. ok is false for any
// country other than the Philippines and for unknown provinces; callers fall
// back to the default rates in that case.
func FindShippingRate(country, province, city string) (rate ShippingRate, ok bool) {
	rate, kind := resolve(country, province, city)
	return rate, kind != MatchNone
}

// Resolve is FindShippingRate that also reports which lookup step matched.
func Resolve(country, province, city string) (ShippingRate, MatchKind) {
	return resolve(country, province, city)
}

func resolve(country, province, city string) (ShippingRate, MatchKind) {
	if !sameName(country, DomesticCountry) {
		return ShippingRate{}, MatchNone
	}
	for _, step := range lookupChain {
		for _, r := range domesticRates {
			if step.match(r, province, city) {
				return r.clone(), step.kind
			}
		}
	}
	return ShippingRate{}, MatchNone
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if sameName(n, name) {
			return true
		}
	}
	return false
}
