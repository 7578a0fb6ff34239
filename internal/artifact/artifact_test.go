package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

func sampleTrend() []schema.TrendPoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []schema.TrendPoint{
		{Date: start, MeanDuration: 30, NumDisturbances: 2},
		{Date: start.AddDate(0, 0, 1), MeanDuration: 45, NumDisturbances: 1},
		{Date: start.AddDate(0, 0, 3), MeanDuration: 20, NumDisturbances: 3},
	}
}

func TestRenderer_Path(t *testing.T) {
	r := NewRenderer("plots")
	assert.Equal(t, filepath.Join("plots", "01_trend_duration.png"), r.Path(schema.TrendArtifact))
	assert.Equal(t, filepath.Join("plots", "05_forecast.png"), r.Path(schema.ForecastArtifact))
}

func TestRenderer_WritesEveryKind(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "plots")
	r := NewRenderer(dir)

	hist := schema.DurationHistogram{
		Bins: []schema.DurationBin{
			{Min: 0, Max: 10, Count: 1},
			{Min: 10, Max: 20, Count: 4},
			{Min: 20, Max: 30, Count: 2},
		},
		ModalBin: 1,
	}
	var hours schema.HourHistogram
	hours[7] = 2
	hours[22] = 5
	forecast := []schema.ForecastPoint{
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), PredictedMinutes: 25},
		{Date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), PredictedMinutes: 27},
	}

	steps := []struct {
		kind   schema.ArtifactKind
		render func() (bool, error)
	}{
		{schema.TrendArtifact, func() (bool, error) { return r.RenderTrend(sampleTrend()) }},
		{schema.HistogramArtifact, func() (bool, error) { return r.RenderHistogram(hist) }},
		{schema.CausesArtifact, func() (bool, error) {
			return r.RenderCauses([]schema.CauseCount{{Cause: "Music", Count: 5}, {Cause: "A very long cause description that needs truncation", Count: 2}})
		}},
		{schema.HoursArtifact, func() (bool, error) { return r.RenderHours(hours) }},
		{schema.ForecastArtifact, func() (bool, error) { return r.RenderForecast(sampleTrend(), forecast) }},
	}

	for _, step := range steps {
		t.Run(string(step.kind), func(t *testing.T) {
			written, err := step.render()
			require.NoError(t, err)
			assert.True(t, written)
			assertPNG(t, r.Path(step.kind))
		})
	}

	kinds, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, schema.AllArtifactKinds, kinds)
}

func TestRenderer_EmptyInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)

	checks := []func() (bool, error){
		func() (bool, error) { return r.RenderTrend(nil) },
		func() (bool, error) { return r.RenderHistogram(schema.DurationHistogram{ModalBin: -1}) },
		func() (bool, error) { return r.RenderCauses(nil) },
		func() (bool, error) { return r.RenderHours(schema.HourHistogram{}) },
		func() (bool, error) { return r.RenderForecast(sampleTrend(), nil) },
	}
	for _, check := range checks {
		written, err := check()
		assert.NoError(t, err)
		assert.False(t, written)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenderer_OverwritesSameIdentity(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)

	_, err := r.RenderTrend(sampleTrend())
	require.NoError(t, err)
	_, err = r.RenderTrend(sampleTrend()[:1])
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "01_trend_duration.png", entries[0].Name())
}

func TestRenderer_UnwritableDirectory(t *testing.T) {
	// A regular file where the directory should be makes every write fail.
	blocker := filepath.Join(t.TempDir(), "plots")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))
	r := NewRenderer(blocker)

	written, err := r.RenderTrend(sampleTrend())
	assert.False(t, written)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	kinds, err := List(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, kinds)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "04_hour_of_day.png"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.png"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "01_trend_duration.png"), 0o755))

	kinds, err = List(dir)
	require.NoError(t, err)
	assert.Equal(t, []schema.ArtifactKind{schema.HoursArtifact}, kinds)
}
