package api

import (
	"net/http"

	"mileage-service/internal/api/handlers"
	"mileage-service/internal/ports"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(geocoder ports.Geocoder, router ports.RouteProvider) http.Handler {
	r := mux.NewRouter()

	routeHandler := &handlers.RouteHandler{
		Geocoder: geocoder,
		Router:   router,
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/routes", routeHandler.Plan).Methods(http.MethodPost)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	// Request ids must be on the context before the logger reads them.
	return requestIDMiddleware(loggingMiddleware(r))
}
