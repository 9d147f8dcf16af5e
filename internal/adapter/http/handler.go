package httpadapter

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"viewpay/internal/core/port"
)

// APIKeyHeader carries the shared secret for the ops API.
const APIKeyHeader = "X-Internal-API-Key"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// that lets operators trigger payout and engagement runs.
type Handler struct {
	payouts  port.PayoutUseCase
	tracking port.TrackingUseCase
	apiKey   string
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. When apiKey is
// empty the /api/v1 routes are open.
func NewHandler(payouts port.PayoutUseCase, tracking port.TrackingUseCase, apiKey string, logger *slog.Logger) *Handler {
	h := &Handler{payouts: payouts, tracking: tracking, apiKey: apiKey, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.requireAPIKey)
		r.Post("/payouts/run", h.handleRunPayouts)
		r.Post("/payouts/submissions/{id}", h.handleProcessSubmission)
		r.Post("/engagement/run", h.handleRunTracking)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.apiKey != "" {
			got := r.Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(h.apiKey)) != 1 {
				writeError(w, http.StatusUnauthorized, "invalid api key")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
