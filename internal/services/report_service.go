// Package services holds the application services the HTTP transport
// delegates to.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"gradepulse/internal/analytics"
	"gradepulse/internal/dataset"
)

// ReportService loads the grades dataset and runs the analysis on
// demand. The dataset is re-read per request so a refreshed export is
// picked up without a restart; cohort files are small enough that this
// costs little.
type ReportService struct {
	dataPath string
	defaults analytics.Options
	logger   *slog.Logger
}

// NewReportService creates a report service reading from dataPath.
func NewReportService(dataPath string, defaults analytics.Options, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		dataPath: dataPath,
		defaults: defaults,
		logger:   logger.With(slog.String("service", "report")),
	}
}

// Defaults returns the configured default tunables.
func (s *ReportService) Defaults() analytics.Options {
	return s.defaults
}

// Generate loads the dataset and computes the full analysis result
// with the given tunables. A loader failure is surfaced as an error;
// it is never masked as an empty result.
func (s *ReportService) Generate(ctx context.Context, opts analytics.Options) (*analytics.Result, error) {
	ds, err := dataset.Load(s.dataPath)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load dataset",
			slog.String("path", s.dataPath),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	analyzer := analytics.NewAnalyzer(opts, s.logger)
	res, err := analyzer.Analyze(ctx, ds)
	if err != nil {
		return nil, fmt.Errorf("analyze dataset: %w", err)
	}
	return res, nil
}
