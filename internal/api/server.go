// Package api wires the HTTP surface: router, middleware stack, and routes.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/dugoutgrid/dugout-data/internal/api/handler"
	"github.com/dugoutgrid/dugout-data/internal/cache"
	"github.com/dugoutgrid/dugout-data/internal/config"
	"github.com/dugoutgrid/dugout-data/internal/db"
)

// NewRouter builds the chi router with the full middleware stack and all
// routes mounted.
func NewRouter(pool *db.Pool, appCache *cache.Cache, cfg *config.Config, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip
	r.Use(corsMiddleware(cfg))
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	h := handler.New(pool, appCache, cfg, log)

	r.Get("/", h.Root)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/grid", h.GetGridSuggestions)
	})

	return r
}

// corsMiddleware allows the grid frontends to read the caching and timing
// headers cross-origin. The API is read-only, so only safe methods pass.
func corsMiddleware(cfg *config.Config) func(next http.Handler) http.Handler {
	return corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	}).Handler
}
