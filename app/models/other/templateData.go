package other

import (
	"net/url"

	"github.com/Rakhulsr/go-shipping/app/shipping"
)

type BasePageData struct {
	Title         string
	Message       string
	MessageStatus string
	Query         url.Values
	CurrentPath   string
}

type RateRow struct {
	shipping.ShippingRate
	StandardLabel  string
	ExpressLabel   string
	OvernightLabel string
}

type TierRow struct {
	shipping.WeightTier
	Bound string
}

type RatesPageData struct {
	BasePageData
	Rates         []RateRow
	Tiers         []TierRow
	International []shipping.InternationalRate
	DefaultRates  []shipping.ShippingMethod
}
