//go:build basic

// Package integration contains end-to-end tests for the protokoll binary.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sqliteEnv points protokoll at a fresh SQLite file in dir.
func sqliteEnv(dir string) []string {
	return []string{
		"PROTOKOLL_DB_BACKEND=sqlite",
		"PROTOKOLL_DB_CONNECT=" + filepath.Join(dir, "protokoll.db"),
		"PROTOKOLL_OUTPUT_DIR=" + filepath.Join(dir, "plots"),
		"PROTOKOLL_LOG_LEVEL=error", // keep stderr out of the parsed output
	}
}

func TestAnalyzeEmptyStore(t *testing.T) {
	dir := t.TempDir()
	out, err := runCommand(t, dir, sqliteEnv(dir), "analyze", "--output", "json")
	require.NoError(t, err)

	var outcome schema.RunOutcome
	require.NoError(t, json.Unmarshal([]byte(out), &outcome))
	assert.Equal(t, schema.StatusNoData, outcome.Status)
	assert.Equal(t, "no data", outcome.Message)

	_, err = os.Stat(filepath.Join(dir, "plots"))
	assert.True(t, os.IsNotExist(err), "no artifacts directory should be created")
}

func TestAnalyzeWritesEveryChart(t *testing.T) {
	dir := t.TempDir()
	env := sqliteEnv(dir)
	require.NoError(t, addScenarioEvents(t, dir, env))

	out, err := runCommand(t, dir, env, "analyze", "--output", "json")
	require.NoError(t, err)

	var outcome schema.RunOutcome
	require.NoError(t, json.Unmarshal([]byte(out), &outcome))
	assert.Equal(t, schema.StatusSuccess, outcome.Status)
	assert.Equal(t, 5, outcome.NumRecords)
	assert.Equal(t, schema.AllArtifactKinds, outcome.Written)

	for _, name := range schema.ArtifactFileNames {
		_, err := os.Stat(filepath.Join(dir, "plots", name))
		assert.NoError(t, err, name)
	}
}

func TestSummaryAndForecast(t *testing.T) {
	dir := t.TempDir()
	env := sqliteEnv(dir)
	require.NoError(t, addScenarioEvents(t, dir, env))

	out, err := runCommand(t, dir, env, "summary", "--output", "json")
	require.NoError(t, err)
	var summary schema.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "Music", summary.TopCause)
	assert.Equal(t, 5, summary.NumRecords)

	out, err = runCommand(t, dir, env, "forecast", "--horizon", "3", "--output", "json")
	require.NoError(t, err)
	var points []schema.ForecastPoint
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	assert.Len(t, points, 3)
}

func TestEventAddRejectsInvalidInput(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, dir, sqliteEnv(dir), "event", "add",
		"--date", "2024-03-12", "--begin", "08:00", "--end", "09:00", "--cause", "Music", "--responsible", "Flat 2")
	assert.Error(t, err)
}

func TestExportFormats(t *testing.T) {
	dir := t.TempDir()
	env := sqliteEnv(dir)
	require.NoError(t, addScenarioEvents(t, dir, env))

	for _, format := range []string{"pdf", "xlsx"} {
		file := filepath.Join(dir, "protokoll."+format)
		_, err := runCommand(t, dir, env, "export", format, "--file", file)
		require.NoError(t, err)
		_, err = os.Stat(file)
		assert.NoError(t, err)
	}

	_, err := runCommand(t, dir, env, "export", "parquet", "--file", filepath.Join(dir, "data"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "data.disturbances.parquet"))
	assert.NoError(t, err)
}
