package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/adapter/http/handler"
	"github.com/iho/gobank/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler     *handler.AccountHandler
	TransferHandler    *handler.TransferHandler
	TransactionHandler *handler.TransactionHandler
	HealthHandler      *handler.HealthHandler
	RateLimiter        *middleware.RateLimiter
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// Accounts
	r.Route("/api/accounts", func(r chi.Router) {
		r.Post("/", cfg.AccountHandler.Create)
		r.Get("/", cfg.AccountHandler.List)
		r.Post("/transfer", cfg.TransferHandler.Transfer)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", cfg.AccountHandler.Get)
			r.Delete("/", cfg.AccountHandler.Delete)
			r.Put("/deposit", cfg.AccountHandler.Deposit)
			r.Put("/withdraw", cfg.AccountHandler.Withdraw)
			r.Get("/transactions", cfg.TransactionHandler.ListByAccount)
		})
	})

	return r
}
