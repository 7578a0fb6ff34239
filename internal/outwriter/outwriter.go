// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
)

// OutWriter provides a unified interface for all console output.
// Every method honours cfg.Output and writes to cfg.OutputFile, or stdout when it is empty.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints the dataset summary.
func (ow *OutWriter) WriteSummary(summary schema.Summary, cfg *contract.Config, duration time.Duration) error {
	return PrintSummary(summary, cfg, duration)
}

// WriteForecast prints the forecast sequence.
func (ow *OutWriter) WriteForecast(points []schema.ForecastPoint, cfg *contract.Config) error {
	return PrintForecast(points, cfg)
}

// WriteOutcome prints the outcome of a pipeline run.
func (ow *OutWriter) WriteOutcome(outcome schema.RunOutcome, outputDir string, cfg *contract.Config) error {
	return PrintOutcome(outcome, outputDir, cfg)
}

// WriteRecords prints stored disturbance records.
func (ow *OutWriter) WriteRecords(records []schema.RawRecord, cfg *contract.Config) error {
	return PrintRecords(records, cfg)
}

// WriteActions prints stored remedial actions.
func (ow *OutWriter) WriteActions(actions []schema.RemedialAction, cfg *contract.Config) error {
	return PrintActions(actions, cfg)
}
