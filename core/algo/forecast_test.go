package algo

import (
	"testing"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordOn(day time.Time, minutes float64) schema.Record {
	return schema.Record{Day: day, BeginAt: day.Add(8 * time.Hour), DurationMinutes: minutes}
}

func linearRecords(n int, intercept, slope float64) []schema.Record {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]schema.Record, n)
	for i := range records {
		records[i] = recordOn(start.AddDate(0, 0, i), intercept+slope*float64(i))
	}
	return records
}

func TestOrdinalDay(t *testing.T) {
	assert.Equal(t, int64(0), OrdinalDay(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(19723), OrdinalDay(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(-1), OrdinalDay(time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestForecast_TooFewRecords(t *testing.T) {
	for n := 0; n < schema.MinForecastRecords; n++ {
		points, err := Forecast(linearRecords(n, 10, 1), 14)
		require.NoError(t, err)
		assert.Empty(t, points, "n=%d", n)
	}
}

func TestForecast_NonPositiveHorizon(t *testing.T) {
	for _, h := range []int{0, -3} {
		points, err := Forecast(linearRecords(10, 10, 1), h)
		require.NoError(t, err)
		assert.Empty(t, points)
	}
}

func TestForecast_ExtendsLinearTrend(t *testing.T) {
	records := linearRecords(5, 20, 2)

	points, err := Forecast(records, 3)
	require.NoError(t, err)
	require.Len(t, points, 3)

	for i, p := range points {
		assert.Equal(t, time.Date(2024, 1, 6+i, 0, 0, 0, 0, time.UTC), p.Date)
		assert.InDelta(t, 20+2*float64(5+i), p.PredictedMinutes, 1e-6)
	}
}

func TestForecast_StartsAfterLatestDateNotLastRecord(t *testing.T) {
	records := linearRecords(6, 30, 0)
	records[0], records[5] = records[5], records[0]

	points, err := Forecast(records, 1)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.InDelta(t, 30, points[0].PredictedMinutes, 1e-6)
}

func TestForecast_SingleDayIsFlatMean(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	records := []schema.Record{
		recordOn(day, 10), recordOn(day, 20), recordOn(day, 30), recordOn(day, 40), recordOn(day, 50),
	}

	points, err := Forecast(records, 4)
	require.NoError(t, err)
	require.Len(t, points, 4)
	for _, p := range points {
		assert.InDelta(t, 30, p.PredictedMinutes, 1e-9)
	}
	assert.Equal(t, day.AddDate(0, 0, 1), points[0].Date)
}

func TestForecast_NotClamped(t *testing.T) {
	points, err := Forecast(linearRecords(5, 8, -2), 5)
	require.NoError(t, err)
	require.Len(t, points, 5)
	assert.Negative(t, points[4].PredictedMinutes)
}

func TestForecast_IsDeterministic(t *testing.T) {
	records := linearRecords(8, 12, 0.5)
	records[3].DurationMinutes = 40

	a, err := Forecast(records, 7)
	require.NoError(t, err)
	b, err := Forecast(records, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFitTrend_Empty(t *testing.T) {
	_, err := FitTrend(nil)
	assert.Error(t, err)
}

func BenchmarkForecast(b *testing.B) {
	records := linearRecords(365, 30, 0.5)
	for b.Loop() {
		_, _ = Forecast(records, schema.DefaultHorizonDays)
	}
}
