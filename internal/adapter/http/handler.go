package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dd-backend/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the health checker and a
// logger; routes are registered on a chi.Router.
type Handler struct {
	health port.HealthChecker
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(health port.HealthChecker, logger *slog.Logger) *Handler {
	h := &Handler{health: health, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
