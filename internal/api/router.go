package api

import (
	"net/http"

	"tour-planner-service/internal/api/handlers"
	"tour-planner-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(geocoder ports.Geocoder, provider ports.MatrixProvider, notifier ports.Notifier) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{
		Geocoder: geocoder,
		Provider: provider,
		Notifier: notifier,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/plans", planHandler.Plan)

	return loggingMiddleware(mux)
}
