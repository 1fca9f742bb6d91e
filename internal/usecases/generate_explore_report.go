package usecases

import (
	"context"
	"fmt"
	"math"

	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/docexplore/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ExploreParams holds the parameters of one explore run.
type ExploreParams struct {
	InputPath  string
	OutputPath string
	Cutoff     float64
}

// Validate checks the explore parameters.
func (p ExploreParams) Validate() error {
	if p.InputPath == "" {
		return domain.NewValidationErr("input path cannot be empty")
	}
	if p.OutputPath == "" {
		return domain.NewValidationErr("output path cannot be empty")
	}
	if math.IsNaN(p.Cutoff) || math.IsInf(p.Cutoff, 0) {
		return domain.NewValidationErr(fmt.Sprintf("cutoff must be a finite number, got %v", p.Cutoff))
	}
	return nil
}

// GenerateExploreReport defines the interface for producing the explore report.
type GenerateExploreReport interface {
	Execute(ctx context.Context, params ExploreParams) (domain.ExploreReport, error)
}

// GenerateExploreReportImpl is the implementation of the GenerateExploreReport use case.
type GenerateExploreReportImpl struct {
	source  domain.DocumentSource
	matcher MatchDocuments
	writer  domain.ReportWriter
}

// NewGenerateExploreReportImpl creates a new instance of GenerateExploreReportImpl.
func NewGenerateExploreReportImpl(source domain.DocumentSource, matcher MatchDocuments, writer domain.ReportWriter) GenerateExploreReportImpl {
	return GenerateExploreReportImpl{
		source:  source,
		matcher: matcher,
		writer:  writer,
	}
}

// Execute loads the input workbook, matches its documents against its topics and
// writes the report. Nothing is written when any step fails.
func (g GenerateExploreReportImpl) Execute(ctx context.Context, params ExploreParams) (domain.ExploreReport, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("input", params.InputPath),
		attribute.String("output", params.OutputPath),
	))
	defer span.End()

	if err := params.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.ExploreReport{}, err
	}

	input, err := g.source.Load(spanCtx, params.InputPath)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ExploreReport{}, err
	}

	matches, err := g.matcher.Execute(spanCtx, input, params.Cutoff)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ExploreReport{}, err
	}

	report := domain.ExploreReport{
		Documents: input.Documents,
		Topics:    input.Topics,
		Matches:   matches,
	}

	if err := g.writer.Write(spanCtx, params.OutputPath, report); telemetry.RecordErrorAndStatus(span, err) {
		return domain.ExploreReport{}, err
	}

	return report, nil
}

// InitGenerateExploreReport initializes the GenerateExploreReport use case and registers it in the dependency container.
type InitGenerateExploreReport struct {
	Source  domain.DocumentSource `resolve:""`
	Matcher MatchDocuments        `resolve:""`
	Writer  domain.ReportWriter   `resolve:""`
}

// Initialize initializes the GenerateExploreReportImpl use case and registers it in the dependency container.
func (i InitGenerateExploreReport) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateExploreReport](NewGenerateExploreReportImpl(i.Source, i.Matcher, i.Writer))
	return ctx, nil
}
