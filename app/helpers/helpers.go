package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Rakhulsr/go-shipping/app/models"
	"github.com/Rakhulsr/go-shipping/app/models/other"
	"github.com/go-playground/validator/v10"
)

type contextKey string

const (
	ContextKeyRequestID contextKey = "requestID"
	RequestIDHeader                = "X-Request-ID"
)

const maxJSONBodyBytes = 1 << 20

var ErrInvalidWeight = errors.New("weight must be a non-negative number")

// RequestID returns the id stored by the request id middleware, if any.
func RequestID(r *http.Request) string {
	if id, ok := r.Context().Value(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func GetBaseData(r *http.Request, title string) other.BasePageData {
	data := other.BasePageData{
		Title:       title,
		Query:       r.URL.Query(),
		CurrentPath: r.URL.Path,
	}
	if data.Title == "" {
		data.Title = "Shipping Rates"
	}
	data.MessageStatus = r.URL.Query().Get("status")
	data.Message = r.URL.Query().Get("message")
	return data
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode JSON body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// ParseWeight parses a weight in kilograms. An empty value is zero.
func ParseWeight(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, ErrInvalidWeight
	}
	return w, nil
}

// DestinationFromQuery reads country, province and city. Country defaults
// to the Philippines when omitted.
func DestinationFromQuery(q url.Values) models.Destination {
	dest := models.Destination{
		Country:  strings.TrimSpace(q.Get("country")),
		Province: strings.TrimSpace(q.Get("province")),
		City:     strings.TrimSpace(q.Get("city")),
	}
	if dest.Country == "" {
		dest.Country = "Philippines"
	}
	return dest
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "gte":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters.", err.Field(), err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s must be one of: %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Validation %s failed on field %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}
