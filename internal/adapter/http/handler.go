package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"brand-lift/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the simulation usecase, a
// logger and the chi router the routes are registered on.
type Handler struct {
	svc     port.SimulationUseCase
	logger  *slog.Logger
	limiter *rate.Limiter
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. A nil limiter
// disables rate limiting; a non-positive maxBody leaves simulation request
// bodies unbounded.
func NewHandler(svc port.SimulationUseCase, logger *slog.Logger, limiter *rate.Limiter, maxBody int64) *Handler {
	h := &Handler{svc: svc, logger: logger, limiter: limiter}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/channels", h.handleChannels)
		r.Group(func(r chi.Router) {
			r.Use(h.rateLimit)
			if maxBody > 0 {
				r.Use(middleware.RequestSize(maxBody))
			}
			r.Post("/simulations", h.handleSimulate)
			r.Post("/simulations/export", h.handleExport)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// rateLimit rejects requests with 429 once the shared token bucket is empty.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter != nil && !h.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
