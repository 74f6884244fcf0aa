// Command analyzer loads a student grades dataset, runs the full
// analysis, prints the formatted report, and saves the report plus
// per-group CSV exports.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gradepulse/internal/analytics"
	"gradepulse/internal/config"
	"gradepulse/internal/dataset"
	"gradepulse/internal/exporter"
	"gradepulse/internal/infrastructure"
	"gradepulse/internal/report"
)

func main() {
	dataFile := flag.String("data", "", "grades dataset file (.csv or .xlsx; defaults to configured path)")
	outputDir := flag.String("out", "", "output directory for reports (defaults to configured path)")
	configFile := flag.String("config", "gradepulse.yaml", "configuration file")
	topN := flag.Int("top", 0, "number of top/bottom students to rank (defaults to configured value)")
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

	if *dataFile == "" {
		*dataFile = cfg.Paths.DataFile
	}
	if *outputDir == "" {
		*outputDir = cfg.Paths.ReportsDir
	}
	opts := analytics.Options{
		TopN:                 cfg.Analysis.TopN,
		AtRiskThreshold:      cfg.Analysis.AtRiskThreshold,
		ImprovementThreshold: cfg.Analysis.ImprovementThreshold,
	}
	if *topN > 0 {
		opts.TopN = *topN
	}

	logger.Info("Loading grades dataset", "path", *dataFile)
	ds, err := dataset.Load(*dataFile)
	if err != nil {
		logger.Error("Failed to load dataset", "path", *dataFile, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	analyzer := analytics.NewAnalyzer(opts, logger)
	res, err := analyzer.Analyze(ctx, ds)
	if err != nil {
		logger.Error("Analysis failed", "error", err)
		os.Exit(1)
	}

	// Print the report to the console and save it.
	rendered := report.Render(res)
	fmt.Println(rendered)

	reportPath := filepath.Join(*outputDir, "students_analysis_report.txt")
	if err := report.Save(rendered, reportPath); err != nil {
		logger.Error("Failed to save report", "path", reportPath, "error", err)
		os.Exit(1)
	}

	// CSV exports for back-office tooling.
	w := exporter.NewCSVWriter(*outputDir)
	if err := w.WriteRankings("rankings.csv", res.Rankings); err != nil {
		logger.Error("Failed to export rankings", "error", err)
		os.Exit(1)
	}
	if err := w.WriteAtRisk("at_risk.csv", res.AtRisk); err != nil {
		logger.Error("Failed to export at-risk list", "error", err)
		os.Exit(1)
	}
	if err := w.WriteSections("sections.csv", res.Sections); err != nil {
		logger.Error("Failed to export section statistics", "error", err)
		os.Exit(1)
	}

	logger.Info("Analysis complete",
		"report", reportPath,
		"students", ds.Len(),
		"improved", res.Improvements.Improved.Count,
		"declined", res.Improvements.Declined.Count,
		"at_risk", res.AtRisk.Count)

	fmt.Println("\nKey Insights:")
	fmt.Printf("- %d students improved significantly\n", res.Improvements.Improved.Count)
	fmt.Printf("- %d students declined significantly\n", res.Improvements.Declined.Count)
	fmt.Printf("- %d students need additional support\n", res.AtRisk.Count)
}
