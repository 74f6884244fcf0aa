package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"gradepulse/internal/analytics"
	apierrors "gradepulse/internal/errors"
)

// ReportGenerator is the service contract the report handler depends
// on.
type ReportGenerator interface {
	Defaults() analytics.Options
	Generate(ctx context.Context, opts analytics.Options) (*analytics.Result, error)
}

var validate = validator.New()

// reportParams are the optional query overrides for one report
// request. Absent parameters fall back to the configured defaults.
type reportParams struct {
	TopN                 int     `validate:"gt=0"`
	AtRiskThreshold      float64 `validate:"gte=0,lte=100"`
	ImprovementThreshold float64 `validate:"gte=0"`
}

// ReportHandler handles report generation requests.
type ReportHandler struct {
	service ReportGenerator
	logger  *slog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service ReportGenerator, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "report")),
	}
}

// GetReport handles GET /api/report. Optional query parameters top_n,
// at_risk_threshold, and improvement_threshold override the configured
// defaults for this request only.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := h.parseParams(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid report parameters", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	if err := validate.Struct(params); err != nil {
		h.logger.WarnContext(ctx, "report parameter validation failed", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.ValidationFailedWithDetails(err.Error()))
		return
	}

	res, err := h.service.Generate(ctx, analytics.Options{
		TopN:                 params.TopN,
		AtRiskThreshold:      params.AtRiskThreshold,
		ImprovementThreshold: params.ImprovementThreshold,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "report generation failed", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.ErrDatasetUnavailable)
		return
	}

	render.JSON(w, r, res)
}

// parseParams reads the query overrides, starting from the configured
// defaults.
func (h *ReportHandler) parseParams(r *http.Request) (reportParams, error) {
	defaults := h.service.Defaults()
	params := reportParams{
		TopN:                 defaults.TopN,
		AtRiskThreshold:      defaults.AtRiskThreshold,
		ImprovementThreshold: defaults.ImprovementThreshold,
	}

	q := r.URL.Query()
	if v := q.Get("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, err
		}
		params.TopN = n
	}
	if v := q.Get("at_risk_threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, err
		}
		params.AtRiskThreshold = f
	}
	if v := q.Get("improvement_threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, err
		}
		params.ImprovementThreshold = f
	}
	return params, nil
}
