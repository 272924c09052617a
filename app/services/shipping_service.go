package services

import (
	"fmt"

	"github.com/Rakhulsr/go-shipping/app/models"
	"github.com/Rakhulsr/go-shipping/app/models/other"
	"github.com/Rakhulsr/go-shipping/app/shipping"
	"github.com/Rakhulsr/go-shipping/app/utils/format"
	"go.uber.org/zap"
)

type ShippingService struct {
	logger *zap.SugaredLogger
}

func NewShippingService(logger *zap.SugaredLogger) *ShippingService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ShippingService{logger: logger}
}

func (s *ShippingService) Methods(dest models.Destination, weightKg float64) []shipping.ShippingMethod {
	s.logResolution("Methods", dest)
	return shipping.GetShippingMethods(dest.Country, dest.Province, dest.City, weightKg)
}

func (s *ShippingService) BaseMethods(dest models.Destination) []shipping.ShippingMethod {
	s.logResolution("BaseMethods", dest)
	return shipping.GetBaseShippingMethods(dest.Country, dest.Province, dest.City)
}

func (s *ShippingService) Fee(dest models.Destination, weightKg float64, method shipping.MethodID) other.FeeResponse {
	rate, kind := shipping.Resolve(dest.Country, dest.Province, dest.City)
	if method == shipping.Overnight && kind != shipping.MatchNone && !rate.OffersOvernight() {
		s.logger.Infof("ShippingService: Overnight requested for %q which has no overnight service, charging express rate", dest.String())
	}

	fee := shipping.CalculateShippingFee(dest.Country, dest.Province, dest.City, weightKg, method)
	s.logger.Debugf("ShippingService: Fee for %q, %.3f kg, method %s = %d (matched by %s)", dest.String(), weightKg, method, fee, kind)
	return other.FeeResponse{Method: method, Fee: fee, Label: format.Peso(fee)}
}

// Quote totals the cart lines and prices every available method. The
// selected method, when given, is priced with CalculateShippingFee.
func (s *ShippingService) Quote(req other.QuoteRequest) other.QuoteResponse {
	lines := make([]shipping.CartLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = shipping.CartLine{WeightKg: item.WeightKg, Qty: item.Qty}
	}
	totalWeight := shipping.TotalWeight(lines)

	rate, kind := shipping.Resolve(req.Country, req.Province, req.City)
	methods := shipping.GetShippingMethods(req.Country, req.Province, req.City, totalWeight)

	resp := other.QuoteResponse{
		Destination:   req.Destination.String(),
		MatchedBy:     kind,
		Province:      rate.Province,
		TotalWeightKg: totalWeight,
		WeightTier:    shipping.GetWeightTier(totalWeight),
		Methods:       withLabels(methods),
	}

	if id, ok := shipping.ParseMethodID(req.Method); ok {
		fee := shipping.CalculateShippingFee(req.Country, req.Province, req.City, totalWeight, id)
		resp.SelectedMethod = id
		resp.ShippingFee = &fee
		resp.FeeLabel = format.Peso(fee)
	}

	s.logger.Infof("ShippingService: Quoted %d methods for %q (%s match), %d items, %.3f kg",
		len(methods), resp.Destination, kind, len(req.Items), totalWeight)
	return resp
}

func (s *ShippingService) Locations() []other.ProvinceCities {
	rates := shipping.Rates()
	out := make([]other.ProvinceCities, len(rates))
	for i, r := range rates {
		out[i] = other.ProvinceCities{Region: r.Region, Province: r.Province, Cities: r.Cities}
	}
	return out
}

func (s *ShippingService) Cities(province string) ([]string, bool) {
	return shipping.CitiesOf(province)
}

func (s *ShippingService) Tiers() []shipping.WeightTier {
	return shipping.WeightTiers()
}

func (s *ShippingService) International(country string, weightKg float64) []shipping.ShippingMethod {
	if _, ok := shipping.FindInternationalRate(country); !ok {
		s.logger.Debugf("ShippingService: %q not in international table, using %s rate", country, shipping.RestOfWorld)
	}
	return shipping.GetInternationalShippingMethods(country, weightKg)
}

// RateCard assembles the rows of the public rate card page.
func (s *ShippingService) RateCard() other.RatesPageData {
	rates := shipping.Rates()
	rows := make([]other.RateRow, len(rates))
	for i, r := range rates {
		rows[i] = other.RateRow{
			ShippingRate:  r,
			StandardLabel: format.Peso(r.StandardRate),
			ExpressLabel:  format.Peso(r.ExpressRate),
		}
		if r.OffersOvernight() {
			rows[i].OvernightLabel = format.Peso(r.OvernightRate)
		}
	}

	tiers := shipping.WeightTiers()
	tierRows := make([]other.TierRow, len(tiers))
	for i, t := range tiers {
		bound := "no limit"
		if !t.Unbounded() {
			bound = fmt.Sprintf("%g kg", t.MaxWeight)
		}
		tierRows[i] = other.TierRow{WeightTier: t, Bound: bound}
	}

	return other.RatesPageData{
		Rates:         rows,
		Tiers:         tierRows,
		International: shipping.InternationalRates(),
		DefaultRates:  shipping.GetBaseShippingMethods("", "", ""),
	}
}

func (s *ShippingService) logResolution(op string, dest models.Destination) {
	rate, kind := shipping.Resolve(dest.Country, dest.Province, dest.City)
	switch kind {
	case shipping.MatchNone:
		s.logger.Debugf("ShippingService.%s: No rate for %q, using default rates", op, dest.String())
	default:
		s.logger.Debugf("ShippingService.%s: %q resolved to %s by %s", op, dest.String(), rate.Province, kind)
	}
}

func withLabels(methods []shipping.ShippingMethod) []other.MethodOption {
	out := make([]other.MethodOption, len(methods))
	for i, m := range methods {
		out[i] = other.MethodOption{ShippingMethod: m, PriceLabel: format.Peso(m.Price)}
	}
	return out
}
