package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"gradepulse/internal/dataset"
)

// Options holds the three tunable parameters of the analysis.
type Options struct {
	TopN                 int
	AtRiskThreshold      float64
	ImprovementThreshold float64
}

// DefaultOptions returns the documented default tunables.
func DefaultOptions() Options {
	return Options{
		TopN:                 DefaultTopN,
		AtRiskThreshold:      DefaultAtRiskThreshold,
		ImprovementThreshold: DefaultImprovementThreshold,
	}
}

// Validate checks the tunables for usable values.
func (o Options) Validate() error {
	if o.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", o.TopN)
	}
	return nil
}

// Analyzer runs the full analysis over one dataset. It holds no state
// beyond the tunables and a logger; every run is a pure function of
// the dataset it is given.
type Analyzer struct {
	opts   Options
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer with the given tunables.
func NewAnalyzer(opts Options, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{opts: opts, logger: logger}
}

// Analyze computes the seven result groups for ds. The groups are
// independent pure functions of the immutable dataset, so they run
// concurrently; each uses exact sequential summation internally, which
// keeps the result bit-identical to sequential evaluation.
//
// A dataset that fails shape validation, or an empty dataset (where
// the aggregate statistics are undefined), is an error.
func (a *Analyzer) Analyze(ctx context.Context, ds *dataset.Dataset) (*Result, error) {
	ctx, span := otel.Tracer("gradepulse/analytics").Start(ctx, "Analyze")
	defer span.End()
	span.SetAttributes(attribute.Int("students", ds.Len()))

	start := time.Now()
	a.logger.InfoContext(ctx, "starting grade analysis",
		slog.Int("students", ds.Len()),
		slog.Int("top_n", a.opts.TopN),
		slog.Float64("at_risk_threshold", a.opts.AtRiskThreshold),
		slog.Float64("improvement_threshold", a.opts.ImprovementThreshold))

	if err := a.opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}

	var res Result
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		res.Overall, err = Overall(ds.Grades)
		return err
	})
	g.Go(func() error {
		var err error
		res.Semester, err = Semester(ds.Grades)
		return err
	})
	g.Go(func() error {
		var err error
		res.Distribution, err = Distribution(ds.Grades)
		return err
	})
	g.Go(func() error {
		var err error
		res.Sections, err = BySection(ds.Sections, ds.Grades)
		return err
	})
	g.Go(func() error {
		res.Rankings = Rank(ds.StudentIDs, ds.Grades, a.opts.TopN)
		return nil
	})
	g.Go(func() error {
		res.AtRisk = AtRisk(ds.StudentIDs, ds.Grades, a.opts.AtRiskThreshold)
		return nil
	})
	g.Go(func() error {
		res.Improvements = TrackImprovement(ds.StudentIDs, ds.Grades, a.opts.ImprovementThreshold)
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.ErrorContext(ctx, "grade analysis failed", slog.String("error", err.Error()))
		return nil, err
	}

	a.logger.InfoContext(ctx, "grade analysis completed",
		slog.Duration("duration", time.Since(start)),
		slog.Int("sections", len(res.Sections)),
		slog.Int("at_risk", res.AtRisk.Count))
	return &res, nil
}
