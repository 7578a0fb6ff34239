// Package contract provides interfaces and shared utilities for protokoll's internal architecture.
package contract

import (
	"context"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
)

// RecordReader is the read side of the disturbance store.
// The pipeline depends on this interface only.
type RecordReader interface {
	// FetchAll returns the full, unfiltered disturbance history in insertion order.
	FetchAll(ctx context.Context) ([]schema.RawRecord, error)
}

// ActionReader is the secondary read interface for remedial actions.
// It is consumed by the protocol report, never by the pipeline.
type ActionReader interface {
	FetchActions(ctx context.Context) ([]schema.RemedialAction, error)
}

// RecordStore defines the full record store used by the entry layer.
// This allows mocking the store for testing.
type RecordStore interface {
	RecordReader
	ActionReader

	// InsertRecord persists a validated disturbance record and returns its ID.
	InsertRecord(ctx context.Context, rec schema.RawRecord) (int64, error)

	// InsertAction persists a validated remedial action and returns its ID.
	InsertAction(ctx context.Context, action schema.RemedialAction) (int64, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// DatasetProvider hands out the derived dataset.
// Get with forceReload rebuilds from the store; otherwise the last built dataset is returned.
type DatasetProvider interface {
	Get(ctx context.Context, forceReload bool) *schema.Dataset
}

// ArtifactRenderer turns analytical results into artifacts.
// Each method reports written=false with a nil error when its input is empty.
type ArtifactRenderer interface {
	RenderTrend(points []schema.TrendPoint) (bool, error)
	RenderHistogram(hist schema.DurationHistogram) (bool, error)
	RenderCauses(ranked []schema.CauseCount) (bool, error)
	RenderHours(hours schema.HourHistogram) (bool, error)
	RenderForecast(history []schema.TrendPoint, forecast []schema.ForecastPoint) (bool, error)
}

// Analyzer is the analysis surface shared by the CLI and the MCP server.
type Analyzer interface {
	// Run executes one full pipeline run and writes the artifacts.
	Run(ctx context.Context) schema.RunOutcome

	// Summary returns the statistics of the cached dataset.
	Summary(ctx context.Context) schema.Summary

	// Forecast predicts the mean duration for the next horizonDays days.
	Forecast(ctx context.Context, horizonDays int) ([]schema.ForecastPoint, error)
}
