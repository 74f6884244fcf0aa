package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gradepulse/internal/config"
	custommw "gradepulse/internal/middleware"
)

// NewRouter assembles the HTTP routes with the full middleware chain.
func NewRouter(cfg config.ServerConfig, reportSvc ReportGenerator, healthHandler *HealthHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	registry := prometheus.NewRegistry()
	metrics := custommw.NewMetrics(registry)
	rateLimiter := custommw.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger)

	r.Use(custommw.RequestID)
	r.Use(custommw.StructuredLogger(logger))
	r.Use(custommw.Recoverer(logger))
	r.Use(custommw.SecurityHeaders)
	r.Use(rateLimiter.Handler)
	r.Use(metrics.Handler)

	reportHandler := NewReportHandler(reportSvc, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/report", reportHandler.GetReport)
		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/version", healthHandler.Version)
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
