package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func methodIDs(methods []ShippingMethod) []MethodID {
	ids := make([]MethodID, len(methods))
	for i, m := range methods {
		ids[i] = m.ID
	}
	return ids
}

func TestGetShippingMethodsWithOvernight(t *testing.T) {
	methods := GetShippingMethods("Philippines", "Cebu", "Cebu City", 0)

	require.Equal(t, []MethodID{Standard, Express, Overnight}, methodIDs(methods))
	assert.Equal(t, ShippingMethod{
		ID:            Standard,
		Name:          "Standard Shipping",
		Description:   "Regular delivery via partner couriers",
		EstimatedDays: "3-5 business days",
		Price:         150,
	}, methods[0])
	assert.Equal(t, 250, methods[1].Price)
	assert.Equal(t, 350, methods[2].Price)
	assert.Equal(t, "Next day", methods[2].EstimatedDays)
}

func TestGetShippingMethodsOmitsOvernightWhenNotOffered(t *testing.T) {
	methods := GetShippingMethods("Philippines", "Batanes", "Basco", 0)

	assert.Equal(t, []MethodID{Standard, Express}, methodIDs(methods))
	assert.Equal(t, 250, methods[0].Price)
	assert.Equal(t, 400, methods[1].Price)
	assert.Equal(t, "10-14 business days", methods[0].EstimatedDays)
}

func TestGetShippingMethodsDefaults(t *testing.T) {
	for _, dest := range [][3]string{
		{"Japan", "Tokyo", "Shibuya"},
		{"Philippines", "Atlantis", ""},
		{"", "", ""},
	} {
		methods := GetShippingMethods(dest[0], dest[1], dest[2], 0)

		require.Equal(t, []MethodID{Standard, Express}, methodIDs(methods), "%v", dest)
		assert.Equal(t, DefaultStandardRate, methods[0].Price)
		assert.Equal(t, DefaultExpressRate, methods[1].Price)
		assert.Equal(t, DefaultStandardDays, methods[0].EstimatedDays)
		assert.Equal(t, DefaultExpressDays, methods[1].EstimatedDays)
	}
}

func TestGetShippingMethodsAppliesWeightTier(t *testing.T) {
	methods := GetShippingMethods("Philippines", "Cebu", "Cebu City", 2)
	assert.Equal(t, []int{225, 375, 525}, []int{methods[0].Price, methods[1].Price, methods[2].Price})

	defaults := GetShippingMethods("Japan", "Tokyo", "Shibuya", 4)
	assert.Equal(t, 300, defaults[0].Price)
	assert.Equal(t, 500, defaults[1].Price)
}

func TestGetBaseShippingMethodsIgnoresWeight(t *testing.T) {
	base := GetBaseShippingMethods("Philippines", "Cebu", "Cebu City")
	light := GetShippingMethods("Philippines", "Cebu", "Cebu City", 0)
	heavy := GetShippingMethods("Philippines", "Cebu", "Cebu City", 50)

	assert.Equal(t, light, base)
	assert.NotEqual(t, heavy, base)
	assert.Equal(t, []MethodID{Standard, Express}, methodIDs(GetBaseShippingMethods("Philippines", "Sulu", "Jolo")))
}

func TestCalculateShippingFee(t *testing.T) {
	tests := []struct {
		name                    string
		country, province, city string
		weight                  float64
		method                  MethodID
		want                    int
	}{
		{"standard", "Philippines", "Cebu", "Cebu City", 0, Standard, 150},
		{"express", "Philippines", "Cebu", "Cebu City", 0, Express, 250},
		{"overnight", "Philippines", "Cebu", "Cebu City", 0, Overnight, 350},
		{"overnight weight adjusted", "Philippines", "Cebu", "Cebu City", 2, Overnight, 525},
		{"overnight not offered uses express", "Philippines", "Batanes", "Basco", 0, Overnight, 400},
		{"default standard", "Japan", "Tokyo", "Shibuya", 0, Standard, 150},
		{"default express", "Japan", "Tokyo", "Shibuya", 0, Express, 250},
		{"default overnight uses express", "Japan", "Tokyo", "Shibuya", 0, Overnight, 250},
		{"unknown method uses standard", "Philippines", "Cebu", "Cebu City", 0, MethodID("drone"), 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateShippingFee(tt.country, tt.province, tt.city, tt.weight, tt.method))
		})
	}
}

func TestOvernightFeeFallbackDiffersFromMethodList(t *testing.T) {
	overnight := CalculateShippingFee("Philippines", "Palawan", "El Nido", 3, Overnight)
	express := CalculateShippingFee("Philippines", "Palawan", "El Nido", 3, Express)
	assert.Equal(t, express, overnight)

	_, listed := FindMethod(GetShippingMethods("Philippines", "Palawan", "El Nido", 3), Overnight)
	assert.False(t, listed)
}

func TestCalculateShippingFeeAgreesWithMethodList(t *testing.T) {
	for _, province := range Provinces() {
		for _, weight := range []float64{0, 2, 7, 25} {
			for _, m := range GetShippingMethods("Philippines", province, "", weight) {
				assert.Equal(t, m.Price, CalculateShippingFee("Philippines", province, "", weight, m.ID), "%s %s %v", province, m.ID, weight)
			}
		}
	}
}

func TestParseMethodID(t *testing.T) {
	id, ok := ParseMethodID(" Overnight ")
	assert.True(t, ok)
	assert.Equal(t, Overnight, id)

	_, ok = ParseMethodID("teleport")
	assert.False(t, ok)
}
