// Package parquet exports the derived disturbance dataset and the remedial actions
// to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/parquet-go/parquet-go"
)

// Disturbance is one derived disturbance record in columnar form.
type Disturbance struct {
	ID int64 `parquet:"id,snappy"`

	// Day is the calendar date at UTC midnight
	Day time.Time `parquet:"day,snappy"`

	BeginAt         time.Time `parquet:"begin_at,snappy"`
	EndAt           time.Time `parquet:"end_at,snappy"`
	DurationMinutes float64   `parquet:"duration_minutes,snappy"`
	BeginHour       int32     `parquet:"begin_hour,snappy"`
	Cause           string    `parquet:"cause,dict,snappy"`
	Responsible     string    `parquet:"responsible,dict,snappy"`
	Impact          int32     `parquet:"impact,snappy"`
}

// RemedialAction is one remedial action in columnar form.
// Outcome is nullable so an action without a recorded result stays distinguishable.
type RemedialAction struct {
	ID          int64   `parquet:"id,snappy"`
	Period      string  `parquet:"period,snappy"`
	Description string  `parquet:"description,snappy"`
	Outcome     *string `parquet:"outcome,optional,snappy"`
}

// FromRecords converts derived records into Parquet rows, keeping their order.
func FromRecords(records []schema.Record) []Disturbance {
	rows := make([]Disturbance, len(records))
	for i, r := range records {
		rows[i] = Disturbance{
			ID:              r.ID,
			Day:             r.Day,
			BeginAt:         r.BeginAt,
			EndAt:           r.EndAt,
			DurationMinutes: r.DurationMinutes,
			BeginHour:       int32(r.BeginAt.Hour()),
			Cause:           r.Cause,
			Responsible:     r.Responsible,
			Impact:          int32(r.Impact),
		}
	}
	return rows
}

// FromActions converts remedial actions into Parquet rows. An empty outcome becomes null.
func FromActions(actions []schema.RemedialAction) []RemedialAction {
	rows := make([]RemedialAction, len(actions))
	for i, a := range actions {
		rows[i] = RemedialAction{ID: a.ID, Period: a.Period, Description: a.Description}
		if a.Outcome != "" {
			outcome := a.Outcome
			rows[i].Outcome = &outcome
		}
	}
	return rows
}

// WriteDisturbancesParquet writes derived records to a Parquet file.
func WriteDisturbancesParquet(data []Disturbance, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteActionsParquet writes remedial actions to a Parquet file.
func WriteActionsParquet(data []RemedialAction, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes rows with a schema inferred from the struct tags of T.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
