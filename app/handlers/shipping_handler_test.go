package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rakhulsr/go-shipping/app/handlers"
	"github.com/Rakhulsr/go-shipping/app/routes"
	"github.com/Rakhulsr/go-shipping/app/services"
	"github.com/Rakhulsr/go-shipping/app/utils/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type method struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EstimatedDays string `json:"estimated_days"`
	Price         int    `json:"price"`
}

func newServer(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop().Sugar()
	h := handlers.NewShippingHandler(renderer.New("../../templates", true), services.NewShippingService(logger), logger)
	return routes.NewRouter(h, logger)
}

func do(t *testing.T, srv http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	var env envelope
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	}
	return rr, env
}

func TestGetMethods(t *testing.T) {
	srv := newServer(t)

	rr, env := do(t, srv, http.MethodGet, "/api/shipping/methods?country=Philippines&province=Cebu&city=Cebu%20City&weight=2", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "success", env.Status)

	var methods []method
	require.NoError(t, json.Unmarshal(env.Data, &methods))
	require.Len(t, methods, 3)
	assert.Equal(t, "overnight", methods[2].ID)
	assert.Equal(t, 225, methods[0].Price)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestGetMethodsDefaultsForForeignCountry(t *testing.T) {
	srv := newServer(t)

	rr, env := do(t, srv, http.MethodGet, "/api/shipping/methods?country=Japan&province=Tokyo&city=Shibuya", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var methods []method
	require.NoError(t, json.Unmarshal(env.Data, &methods))
	require.Len(t, methods, 2)
	assert.Equal(t, 150, methods[0].Price)
	assert.Equal(t, 250, methods[1].Price)
}

func TestGetMethodsRejectsBadWeight(t *testing.T) {
	srv := newServer(t)

	for _, weight := range []string{"abc", "-1", "NaN", "Inf"} {
		rr, env := do(t, srv, http.MethodGet, "/api/shipping/methods?province=Cebu&weight="+weight, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, weight)
		assert.Equal(t, "error", env.Status, weight)
	}
}

func TestGetBaseMethods(t *testing.T) {
	srv := newServer(t)

	rr, env := do(t, srv, http.MethodGet, "/api/shipping/methods/base?province=Batanes&weight=50", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var methods []method
	require.NoError(t, json.Unmarshal(env.Data, &methods))
	require.Len(t, methods, 2)
	assert.Equal(t, 250, methods[0].Price)
}

func TestGetFee(t *testing.T) {
	srv := newServer(t)

	rr, env := do(t, srv, http.MethodGet, "/api/shipping/fee?province=Batanes&city=Basco&weight=0.5&method=overnight", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var fee struct {
		Method string `json:"method"`
		Fee    int    `json:"fee"`
		Label  string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &fee))
	assert.Equal(t, "overnight", fee.Method)
	assert.Equal(t, 400, fee.Fee)
	assert.Equal(t, "₱400", fee.Label)
}

func TestGetFeeDefaultsToStandard(t *testing.T) {
	srv := newServer(t)

	_, env := do(t, srv, http.MethodGet, "/api/shipping/fee?province=Cebu", "")

	var fee struct {
		Method string `json:"method"`
		Fee    int    `json:"fee"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &fee))
	assert.Equal(t, "standard", fee.Method)
	assert.Equal(t, 150, fee.Fee)
}

func TestGetFeeRejectsUnknownMethod(t *testing.T) {
	srv := newServer(t)

	rr, env := do(t, srv, http.MethodGet, "/api/shipping/fee?province=Cebu&method=teleport", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "error", env.Status)
}

func TestQuote(t *testing.T) {
	srv := newServer(t)

	body := `{
		"country": "Philippines",
		"province": "Metro Manila",
		"city": "Makati",
		"items": [{"product_id": "p1", "weight_kg": 0.1, "qty": 3}, {"product_id": "p2", "weight_kg": 2.7, "qty": 1}],
		"method": "overnight"
	}`
	rr, env := do(t, srv, http.MethodPost, "/api/shipping/quote", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var quote struct {
		MatchedBy     string  `json:"matched_by"`
		TotalWeightKg float64 `json:"total_weight_kg"`
		WeightTier    struct {
			MaxWeight *float64 `json:"max_weight"`
		} `json:"weight_tier"`
		Methods []struct {
			ID         string `json:"id"`
			Price      int    `json:"price"`
			PriceLabel string `json:"price_label"`
		} `json:"methods"`
		SelectedMethod string `json:"selected_method"`
		ShippingFee    *int   `json:"shipping_fee"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quote))

	assert.Equal(t, "city", quote.MatchedBy)
	assert.Equal(t, 3.0, quote.TotalWeightKg)
	require.NotNil(t, quote.WeightTier.MaxWeight)
	assert.Equal(t, 3.0, *quote.WeightTier.MaxWeight)
	require.Len(t, quote.Methods, 3)
	assert.Equal(t, 150, quote.Methods[0].Price)
	assert.Equal(t, "₱150", quote.Methods[0].PriceLabel)
	assert.Equal(t, "overnight", quote.SelectedMethod)
	require.NotNil(t, quote.ShippingFee)
	assert.Equal(t, 375, *quote.ShippingFee)
}

func TestQuoteValidation(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing country", `{"province": "Cebu"}`, "country"},
		{"negative weight", `{"country": "Philippines", "items": [{"weight_kg": -1, "qty": 1}]}`, "weight_kg"},
		{"unknown method", `{"country": "Philippines", "method": "drone"}`, "method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, env := do(t, srv, http.MethodPost, "/api/shipping/quote", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "error", env.Status)
			assert.Contains(t, env.Errors, tt.field)
		})
	}
}

func TestQuoteRejectsMalformedJSON(t *testing.T) {
	srv := newServer(t)

	for _, body := range []string{`{"country":`, `{"country": "Philippines", "coupon": "FREE"}`, `{} {}`} {
		rr, env := do(t, srv, http.MethodPost, "/api/shipping/quote", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, "Invalid request payload.", env.Message, body)
	}
}

func TestProvincesAndCities(t *testing.T) {
	srv := newServer(t)

	rr, env := do(t, srv, http.MethodGet, "/api/shipping/provinces", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var provinces []struct {
		Province string   `json:"province"`
		Cities   []string `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &provinces))
	assert.NotEmpty(t, provinces)

	rr, env = do(t, srv, http.MethodGet, "/api/shipping/provinces/Metro%20Manila/cities", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var cities []string
	require.NoError(t, json.Unmarshal(env.Data, &cities))
	assert.Contains(t, cities, "Makati")

	rr, _ = do(t, srv, http.MethodGet, "/api/shipping/provinces/Atlantis/cities", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetTiers(t *testing.T) {
	srv := newServer(t)

	rr, env := do(t, srv, http.MethodGet, "/api/shipping/tiers", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var tiers []struct {
		MaxWeight  *float64 `json:"max_weight"`
		Multiplier float64  `json:"multiplier"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tiers))
	require.NotEmpty(t, tiers)
	assert.Nil(t, tiers[len(tiers)-1].MaxWeight)
}

func TestGetInternational(t *testing.T) {
	srv := newServer(t)

	rr, env := do(t, srv, http.MethodGet, "/api/shipping/international?country=Japan&weight=2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var methods []method
	require.NoError(t, json.Unmarshal(env.Data, &methods))
	require.Len(t, methods, 2)
	assert.Equal(t, 1650, methods[0].Price)

	rr, _ = do(t, srv, http.MethodGet, "/api/shipping/international", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRatesPage(t *testing.T) {
	srv := newServer(t)

	rr, _ := do(t, srv, http.MethodGet, "/rates", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Cebu")
	assert.Contains(t, rr.Body.String(), "₱350")
	assert.Contains(t, rr.Body.String(), "not offered")
}

func TestRootRedirectsToRates(t *testing.T) {
	srv := newServer(t)

	rr, _ := do(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/rates", rr.Header().Get("Location"))
}
