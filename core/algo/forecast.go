// Package algo has the ranking and forecasting algorithms.
package algo

import (
	"fmt"
	"math"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/sajari/regression"
	"gonum.org/v1/gonum/stat"
)

const secondsPerDay = 24 * 60 * 60

// TrendLine is a least-squares line of duration in minutes over ordinal days.
type TrendLine struct {
	Intercept float64
	Slope     float64
}

// At evaluates the line at an ordinal day.
func (l TrendLine) At(ordinal int64) float64 {
	return l.Intercept + l.Slope*float64(ordinal)
}

// OrdinalDay returns the number of whole days between the Unix epoch and the calendar date of t.
func OrdinalDay(t time.Time) int64 {
	return int64(math.Floor(float64(t.Unix()) / secondsPerDay))
}

// FitTrend fits duration against the ordinal day of each record.
// With a single distinct day the fit degenerates to the mean duration with slope zero.
func FitTrend(records []schema.Record) (TrendLine, error) {
	if len(records) == 0 {
		return TrendLine{}, fmt.Errorf("cannot fit a trend without records")
	}

	first := OrdinalDay(records[0].Day)
	distinct := false
	ys := make([]float64, len(records))
	for i, r := range records {
		ys[i] = r.DurationMinutes
		if OrdinalDay(r.Day) != first {
			distinct = true
		}
	}
	if !distinct {
		return TrendLine{Intercept: stat.Mean(ys, nil)}, nil
	}

	r := new(regression.Regression)
	r.SetObserved("duration_minutes")
	r.SetVar(0, "ordinal_day")
	for _, rec := range records {
		r.Train(regression.DataPoint(rec.DurationMinutes, []float64{float64(OrdinalDay(rec.Day))}))
	}
	if err := r.Run(); err != nil {
		return TrendLine{}, fmt.Errorf("failed to fit duration trend: %w", err)
	}
	return TrendLine{Intercept: r.Coeff(0), Slope: r.Coeff(1)}, nil
}

// Forecast extrapolates the duration trend to the horizon days following the latest record.
// Fewer than MinForecastRecords records or a non-positive horizon give an empty result.
// Predictions are not clamped and may be negative.
func Forecast(records []schema.Record, horizon int) ([]schema.ForecastPoint, error) {
	if len(records) < schema.MinForecastRecords || horizon <= 0 {
		return nil, nil
	}

	line, err := FitTrend(records)
	if err != nil {
		return nil, err
	}

	last := OrdinalDay(records[0].Day)
	for _, r := range records[1:] {
		last = max(last, OrdinalDay(r.Day))
	}

	points := make([]schema.ForecastPoint, horizon)
	for i := range points {
		ordinal := last + int64(i+1)
		points[i] = schema.ForecastPoint{
			Date:             time.Unix(ordinal*secondsPerDay, 0).UTC(),
			PredictedMinutes: line.At(ordinal),
		}
	}
	return points, nil
}
