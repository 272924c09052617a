package other

import (
	"github.com/Rakhulsr/go-shipping/app/models"
	"github.com/Rakhulsr/go-shipping/app/shipping"
)

type QuoteItem struct {
	ProductID string  `json:"product_id,omitempty"`
	WeightKg  float64 `json:"weight_kg" validate:"gte=0"`
	Qty       int     `json:"qty" validate:"gte=0"`
}

// QuoteRequest is what the cart page posts when the buyer picks an address.
type QuoteRequest struct {
	models.Destination
	Items  []QuoteItem `json:"items" validate:"dive"`
	Method string      `json:"method" validate:"omitempty,oneof=standard express overnight"`
}

type MethodOption struct {
	shipping.ShippingMethod
	PriceLabel string `json:"price_label"`
}

type QuoteResponse struct {
	Destination    string              `json:"destination"`
	MatchedBy      shipping.MatchKind  `json:"matched_by"`
	Province       string              `json:"province,omitempty"`
	TotalWeightKg  float64             `json:"total_weight_kg"`
	WeightTier     shipping.WeightTier `json:"weight_tier"`
	Methods        []MethodOption      `json:"methods"`
	SelectedMethod shipping.MethodID   `json:"selected_method,omitempty"`
	ShippingFee    *int                `json:"shipping_fee,omitempty"`
	FeeLabel       string              `json:"fee_label,omitempty"`
}

type FeeResponse struct {
	Method shipping.MethodID `json:"method"`
	Fee    int               `json:"fee"`
	Label  string            `json:"label"`
}

type ProvinceCities struct {
	Region   string   `json:"region"`
	Province string   `json:"province"`
	Cities   []string `json:"cities"`
}
