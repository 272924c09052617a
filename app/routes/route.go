package routes

import (
	"net/http"

	"github.com/Rakhulsr/go-shipping/app/handlers"
	"github.com/Rakhulsr/go-shipping/app/middlewares"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func NewRouter(shippingHandler *handlers.ShippingHandler, logger *zap.SugaredLogger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.RequestID, middlewares.RequestLogger(logger))

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/rates", http.StatusFound)
	}).Methods("GET")
	router.HandleFunc("/rates", shippingHandler.RatesPage).Methods("GET")

	api := router.PathPrefix("/api/shipping").Subrouter()
	api.HandleFunc("/methods", shippingHandler.GetMethods).Methods("GET")
	api.HandleFunc("/methods/base", shippingHandler.GetBaseMethods).Methods("GET")
	api.HandleFunc("/fee", shippingHandler.GetFee).Methods("GET")
	api.HandleFunc("/quote", shippingHandler.Quote).Methods("POST")
	api.HandleFunc("/provinces", shippingHandler.GetProvinces).Methods("GET")
	api.HandleFunc("/provinces/{province}/cities", shippingHandler.GetCities).Methods("GET")
	api.HandleFunc("/tiers", shippingHandler.GetTiers).Methods("GET")
	api.HandleFunc("/international", shippingHandler.GetInternational).Methods("GET")

	return router
}
