package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textConfig() *contract.Config {
	return &contract.Config{Output: schema.TextOut, Precision: 1, Width: 120}
}

func sampleSummary() schema.Summary {
	var hours schema.HourHistogram
	hours[7] = 1
	hours[22] = 2
	return schema.Summary{
		NumRecords:     3,
		NumRejected:    1,
		TopCause:       "Music",
		HasTopCause:    true,
		TopResponsible: "Flat 2",
		MeanImpact:     3.67,
		MeanDuration:   45.25,
		RankedCauses:   []schema.CauseCount{{Cause: "Music", Count: 2}, {Cause: "Drilling", Count: 1}},
		Hours:          hours,
	}
}

func TestWriteSummary_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, sampleSummary(), textConfig(), 20*time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "Music")
	assert.Contains(t, out, "Flat 2")
	assert.Contains(t, out, "3.7 (High)")
	assert.Contains(t, out, "45.2")
	assert.Contains(t, out, "Drilling")
	assert.Contains(t, out, "22:00 *")
	assert.Contains(t, out, "07:00")
	assert.Contains(t, out, "Summary computed in 20ms")
}

func TestWriteSummary_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, schema.Summary{}, textConfig(), 0))
	out := buf.String()
	assert.Contains(t, out, "Top cause")
	assert.NotContains(t, out, "Rank")
}

func TestWriteSummary_JSON(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, sampleSummary(), cfg, 0))

	var decoded schema.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Music", decoded.TopCause)
	assert.Equal(t, 2, decoded.Hours[22])
}

func TestWriteSummary_CSV(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.CSVOut
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, sampleSummary(), cfg, 0))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// header + 6 figures + 2 causes + 24 hours
	assert.Len(t, rows, 1+6+2+24)
	assert.Equal(t, []string{"summary", "mean_duration", "45.2"}, rows[6])
	assert.Equal(t, []string{"cause", "Music", "2"}, rows[7])
	assert.Equal(t, []string{"hour", "22", "2"}, rows[9+22])
}

func TestWriteForecast(t *testing.T) {
	points := []schema.ForecastPoint{
		{Date: time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), PredictedMinutes: 54},
		{Date: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), PredictedMinutes: 56.5},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteForecast(&buf, points, textConfig()))
		assert.Contains(t, buf.String(), "13-03-2024")
		assert.Contains(t, buf.String(), "56.5")
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteForecast(&buf, nil, textConfig()))
		assert.Contains(t, buf.String(), "Not enough data for a forecast")
	})

	t.Run("csv", func(t *testing.T) {
		cfg := textConfig()
		cfg.Output = schema.CSVOut
		var buf bytes.Buffer
		require.NoError(t, WriteForecast(&buf, points, cfg))
		assert.Equal(t, "date,predicted_minutes\n13-03-2024,54.0\n14-03-2024,56.5\n", buf.String())
	})

	t.Run("empty json is a list", func(t *testing.T) {
		cfg := textConfig()
		cfg.Output = schema.JSONOut
		var buf bytes.Buffer
		require.NoError(t, WriteForecast(&buf, nil, cfg))
		assert.Equal(t, "[]\n", buf.String())
	})
}

func TestWriteOutcome(t *testing.T) {
	outcome := schema.RunOutcome{
		Status:     schema.StatusFailed,
		NumRecords: 5,
		Written:    []schema.ArtifactKind{schema.HistogramArtifact, schema.CausesArtifact, schema.HoursArtifact},
		Skipped:    []schema.ArtifactKind{schema.ForecastArtifact},
		Failed:     map[schema.ArtifactKind]error{schema.TrendArtifact: errors.New("permission denied")},
		Failures:   map[schema.ArtifactKind]string{schema.TrendArtifact: "permission denied"},
		Message:    "1 of 5 artifacts failed",
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutcome(&buf, outcome, "plots", textConfig()))
		out := buf.String()
		assert.Contains(t, out, "Run failed: 1 of 5 artifacts failed")
		assert.Contains(t, out, "permission denied")
		assert.Contains(t, out, filepath.Join("plots", "03_top_causes.png"))
		assert.Contains(t, out, "skipped")
	})

	t.Run("csv in pipeline order", func(t *testing.T) {
		cfg := textConfig()
		cfg.Output = schema.CSVOut
		var buf bytes.Buffer
		require.NoError(t, WriteOutcome(&buf, outcome, "plots", cfg))
		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 6)
		assert.Equal(t, []string{"trend", "failed", "", "permission denied"}, rows[1])
		assert.Equal(t, []string{"forecast", "skipped", "", ""}, rows[5])
	})

	t.Run("json", func(t *testing.T) {
		cfg := textConfig()
		cfg.Output = schema.JSONOut
		var buf bytes.Buffer
		require.NoError(t, WriteOutcome(&buf, outcome, "plots", cfg))
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "failed", decoded["status"])
		assert.Equal(t, map[string]any{"trend": "permission denied"}, decoded["failures"])
	})

	t.Run("no data has no rows", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutcome(&buf, schema.RunOutcome{Status: schema.StatusNoData, Message: "no data"}, "plots", textConfig()))
		assert.Equal(t, "Run no_data: no data (0 records, 0 rejected)\n", buf.String())
	})
}

func TestWriteRecordsAndActions(t *testing.T) {
	records := []schema.RawRecord{
		{ID: 1, Date: "12-03-2024", Begin: "22:00", End: "23:00", Cause: "Music", Responsible: "Flat 2", Impact: 5},
	}
	actions := []schema.RemedialAction{
		{ID: 1, Period: "March", Description: "Letter to landlord", Outcome: "Pending"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, records, textConfig()))
	assert.Contains(t, buf.String(), "5 Severe")
	assert.Contains(t, buf.String(), "1 disturbances recorded")

	buf.Reset()
	require.NoError(t, WriteActions(&buf, actions, textConfig()))
	assert.Contains(t, buf.String(), "Letter to landlord")

	cfg := textConfig()
	cfg.Output = schema.CSVOut
	buf.Reset()
	require.NoError(t, WriteRecords(&buf, records, cfg))
	assert.Equal(t, "id,date,begin,end,cause,responsible,impact\n1,12-03-2024,22:00,23:00,Music,Flat 2,5\n", buf.String())

	cfg.Output = schema.JSONOut
	buf.Reset()
	require.NoError(t, WriteActions(&buf, nil, cfg))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrintForecast_ToFile(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "forecast.csv")

	require.NoError(t, NewOutWriter().WriteForecast([]schema.ForecastPoint{
		{Date: time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), PredictedMinutes: 54},
	}, cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "date,predicted_minutes\n13-03-2024,54.0\n", string(data))
}
