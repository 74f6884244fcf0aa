// Command web serves the grade analysis as a JSON API with health and
// metrics endpoints.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gradepulse/internal/analytics"
	"gradepulse/internal/config"
	"gradepulse/internal/infrastructure"
	"gradepulse/internal/services"
	transport "gradepulse/internal/transport/http"
)

func main() {
	configFile := flag.String("config", "gradepulse.yaml", "configuration file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	shutdownTracing, err := infrastructure.InitializeTracing(logger)
	if err != nil {
		logger.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	reportSvc := services.NewReportService(cfg.Paths.DataFile, analytics.Options{
		TopN:                 cfg.Analysis.TopN,
		AtRiskThreshold:      cfg.Analysis.AtRiskThreshold,
		ImprovementThreshold: cfg.Analysis.ImprovementThreshold,
	}, logger)
	healthHandler := transport.NewHealthHandler(services.NewHealthService(), logger)

	router := transport.NewRouter(cfg.Server, reportSvc, healthHandler, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("Starting HTTP server",
			"addr", server.Addr,
			"data_file", cfg.Paths.DataFile)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down", "timeout", cfg.Server.ShutdownTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("Tracing shutdown failed", "error", err)
	}
	logger.Info("Shutdown complete")
}
