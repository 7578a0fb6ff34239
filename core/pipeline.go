// Package core derives disturbance records and orchestrates the analysis pipeline.
package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/core/agg"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/core/algo"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/observability"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/jonboulle/clockwork"
)

// Pipeline refreshes the dataset, computes every analysis and renders its artifact.
type Pipeline struct {
	data     contract.DatasetProvider
	renderer contract.ArtifactRenderer
	logger   *slog.Logger
	metrics  *observability.Metrics
	clock    clockwork.Clock

	horizonDays int
	topCauses   int
}

var _ contract.Analyzer = &Pipeline{} // Compile-time check

// NewPipeline wires a pipeline. horizonDays and topCauses fall back to their defaults when not positive.
func NewPipeline(
	data contract.DatasetProvider,
	renderer contract.ArtifactRenderer,
	logger *slog.Logger,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	horizonDays, topCauses int,
) *Pipeline {
	if horizonDays <= 0 {
		horizonDays = schema.DefaultHorizonDays
	}
	if topCauses <= 0 {
		topCauses = schema.DefaultTopCauses
	}
	return &Pipeline{
		data:        data,
		renderer:    renderer,
		logger:      logger,
		metrics:     metrics,
		clock:       clock,
		horizonDays: horizonDays,
		topCauses:   topCauses,
	}
}

// step produces one artifact kind. written=false with a nil error means there was nothing to draw.
type step struct {
	kind schema.ArtifactKind
	run  func() (bool, error)
}

// steps returns the analyses in their fixed order. Each one computes its result before rendering.
func (p *Pipeline) steps(records []schema.Record) []step {
	return []step{
		{schema.TrendArtifact, func() (bool, error) {
			return p.renderer.RenderTrend(agg.DailyTrend(records))
		}},
		{schema.HistogramArtifact, func() (bool, error) {
			return p.renderer.RenderHistogram(agg.DurationHistogram(records, schema.DurationBins))
		}},
		{schema.CausesArtifact, func() (bool, error) {
			return p.renderer.RenderCauses(agg.RankCauses(records, p.topCauses))
		}},
		{schema.HoursArtifact, func() (bool, error) {
			return p.renderer.RenderHours(agg.HourHistogram(records))
		}},
		{schema.ForecastArtifact, func() (bool, error) {
			forecast, err := algo.Forecast(records, p.horizonDays)
			if err != nil {
				return false, err
			}
			history := agg.DailyTrend(agg.Tail(records, schema.HistoryTailPoints))
			return p.renderer.RenderForecast(history, forecast)
		}},
	}
}

// Run performs one complete refresh, compute and render cycle.
// It never panics: an unexpected failure is logged and reported as a failed outcome.
func (p *Pipeline) Run(ctx context.Context) (outcome schema.RunOutcome) {
	start := p.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline run aborted", "panic", r)
			outcome.Status = schema.StatusFailed
			outcome.Message = fmt.Sprintf("unexpected failure: %v", r)
		}
		outcome.Duration = p.clock.Since(start)
		p.metrics.PipelineRuns.WithLabelValues(string(outcome.Status)).Inc()
		p.metrics.RunDuration.Observe(outcome.Duration.Seconds())
		p.logger.Info("pipeline run finished",
			"status", outcome.Status,
			"written", len(outcome.Written),
			"skipped", len(outcome.Skipped),
			"failed", len(outcome.Failed),
			"duration", outcome.Duration)
	}()

	ds := p.data.Get(ctx, true)
	if ds != nil {
		outcome.NumRecords = ds.Len()
		outcome.NumRejected = len(ds.Rejected)
	}
	if ds.Empty() {
		outcome.Status = schema.StatusNoData
		outcome.Message = "no data"
		return outcome
	}

	for _, s := range p.steps(ds.Records) {
		written, err := s.run()
		switch {
		case err != nil:
			if outcome.Failed == nil {
				outcome.Failed = make(map[schema.ArtifactKind]error)
				outcome.Failures = make(map[schema.ArtifactKind]string)
			}
			outcome.Failed[s.kind] = err
			outcome.Failures[s.kind] = err.Error()
			p.metrics.ArtifactFailures.WithLabelValues(string(s.kind)).Inc()
			p.logger.Error("artifact failed", "kind", s.kind, "error", err)
		case written:
			outcome.Written = append(outcome.Written, s.kind)
			p.metrics.ArtifactsWritten.WithLabelValues(string(s.kind)).Inc()
			p.logger.Debug("artifact written", "kind", s.kind)
		default:
			outcome.Skipped = append(outcome.Skipped, s.kind)
			p.logger.Info("artifact skipped, not enough data", "kind", s.kind)
		}
	}

	switch {
	case len(outcome.Failed) > 0:
		outcome.Status = schema.StatusFailed
		outcome.Message = fmt.Sprintf("%d of %d artifacts failed", len(outcome.Failed), len(schema.AllArtifactKinds))
	case len(outcome.Skipped) > 0:
		outcome.Status = schema.StatusPartial
		outcome.Message = fmt.Sprintf("%d artifacts written, %d skipped", len(outcome.Written), len(outcome.Skipped))
	default:
		outcome.Status = schema.StatusSuccess
		outcome.Message = fmt.Sprintf("%d artifacts written", len(outcome.Written))
	}
	return outcome
}

// Summary returns the statistics of the current dataset without rendering anything.
func (p *Pipeline) Summary(ctx context.Context) schema.Summary {
	ds := p.data.Get(ctx, false)
	if ds == nil {
		return agg.Summarize(nil, p.topCauses)
	}
	summary := agg.Summarize(ds.Records, p.topCauses)
	summary.NumRejected = len(ds.Rejected)
	return summary
}

// Forecast returns the duration forecast of the current dataset over horizonDays.
// A non-positive horizon uses the configured one.
func (p *Pipeline) Forecast(ctx context.Context, horizonDays int) ([]schema.ForecastPoint, error) {
	if horizonDays <= 0 {
		horizonDays = p.horizonDays
	}
	ds := p.data.Get(ctx, false)
	if ds == nil {
		return nil, nil
	}
	return algo.Forecast(ds.Records, horizonDays)
}
