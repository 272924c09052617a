package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/Rakhulsr/go-shipping/app/helpers"
	"github.com/Rakhulsr/go-shipping/app/models/other"
	"github.com/Rakhulsr/go-shipping/app/services"
	"github.com/Rakhulsr/go-shipping/app/shipping"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type ShippingHandler struct {
	render      *render.Render
	validator   *validator.Validate
	shippingSvc *services.ShippingService
	logger      *zap.SugaredLogger
}

func NewShippingHandler(render *render.Render, shippingSvc *services.ShippingService, logger *zap.SugaredLogger) *ShippingHandler {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ShippingHandler{
		render:      render,
		validator:   v,
		shippingSvc: shippingSvc,
		logger:      logger,
	}
}

func (h *ShippingHandler) success(w http.ResponseWriter, message string, data interface{}) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func (h *ShippingHandler) fail(w http.ResponseWriter, status int, message string, errs map[string]string) {
	body := map[string]interface{}{
		"status":  "error",
		"message": message,
	}
	if len(errs) > 0 {
		body["errors"] = errs
	}
	h.render.JSON(w, status, body)
}

func (h *ShippingHandler) GetMethods(w http.ResponseWriter, r *http.Request) {
	dest := helpers.DestinationFromQuery(r.URL.Query())
	weight, err := helpers.ParseWeight(r.URL.Query().Get("weight"))
	if err != nil {
		h.logger.Infof("GetMethods: Invalid weight %q: %v", r.URL.Query().Get("weight"), err)
		h.fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	methods := h.shippingSvc.Methods(dest, weight)
	h.success(w, "Shipping methods found.", methods)
}

func (h *ShippingHandler) GetBaseMethods(w http.ResponseWriter, r *http.Request) {
	dest := helpers.DestinationFromQuery(r.URL.Query())
	h.success(w, "Base shipping methods found.", h.shippingSvc.BaseMethods(dest))
}

func (h *ShippingHandler) GetFee(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dest := helpers.DestinationFromQuery(q)

	weight, err := helpers.ParseWeight(q.Get("weight"))
	if err != nil {
		h.logger.Infof("GetFee: Invalid weight %q: %v", q.Get("weight"), err)
		h.fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	method := shipping.Standard
	if raw := q.Get("method"); raw != "" {
		parsed, ok := shipping.ParseMethodID(raw)
		if !ok {
			h.logger.Infof("GetFee: Unknown shipping method %q", raw)
			h.fail(w, http.StatusBadRequest, "method must be one of: standard, express, overnight", nil)
			return
		}
		method = parsed
	}

	h.success(w, "Shipping fee calculated.", h.shippingSvc.Fee(dest, weight, method))
}

func (h *ShippingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req other.QuoteRequest
	if err := helpers.DecodeJSONBody(w, r, &req); err != nil {
		h.logger.Infof("Quote: Error decoding JSON body: %v", err)
		h.fail(w, http.StatusBadRequest, "Invalid request payload.", nil)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.fail(w, http.StatusBadRequest, "Invalid quote request.", helpers.FormatValidationErrors(validationErrs))
			return
		}
		h.logger.Errorf("Quote: Unexpected validation error: %v", err)
		h.fail(w, http.StatusBadRequest, "Invalid quote request.", nil)
		return
	}

	h.success(w, "Shipping quote calculated.", h.shippingSvc.Quote(req))
}

func (h *ShippingHandler) GetProvinces(w http.ResponseWriter, r *http.Request) {
	h.success(w, "Provinces found.", h.shippingSvc.Locations())
}

func (h *ShippingHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	province := mux.Vars(r)["province"]
	cities, ok := h.shippingSvc.Cities(province)
	if !ok {
		h.fail(w, http.StatusNotFound, "Province not found.", nil)
		return
	}
	h.success(w, "Cities found.", cities)
}

func (h *ShippingHandler) GetTiers(w http.ResponseWriter, r *http.Request) {
	h.success(w, "Weight tiers found.", h.shippingSvc.Tiers())
}

func (h *ShippingHandler) GetInternational(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	country := strings.TrimSpace(q.Get("country"))
	if country == "" {
		h.fail(w, http.StatusBadRequest, "country is required", nil)
		return
	}

	weight, err := helpers.ParseWeight(q.Get("weight"))
	if err != nil {
		h.fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	h.success(w, "International shipping methods found.", h.shippingSvc.International(country, weight))
}

func (h *ShippingHandler) RatesPage(w http.ResponseWriter, r *http.Request) {
	pageData := h.shippingSvc.RateCard()
	pageData.BasePageData = helpers.GetBaseData(r, "Shipping Rates")

	if err := h.render.HTML(w, http.StatusOK, "rates", pageData); err != nil {
		h.logger.Errorf("RatesPage: Failed to render rate card: %v", err)
	}
}
