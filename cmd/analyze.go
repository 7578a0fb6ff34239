package cmd

import (
	"fmt"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/artifact"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/outwriter"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/spf13/cobra"
)

// analyzeCmd runs the full pipeline.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Reload the protocol, compute every analysis and write the charts.",
	Long: `Run one complete analysis over the recorded disturbances.

Writes up to five charts into the output directory:
- 01_trend_duration.png      mean duration per day
- 02_duration_histogram.png  distribution of durations
- 03_top_causes.png          most frequent causes
- 04_hour_of_day.png         disturbances per begin hour
- 05_forecast.png            duration forecast

Charts without enough data are skipped. The command exits with status 1
when any chart could not be written.

Examples:
  # Analyze with the defaults
  protokoll analyze

  # Write charts somewhere else and forecast a month
  protokoll analyze --output-dir ./report --horizon 30`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		outcome := pipeline.Run(rootCtx)
		if err := outwriter.NewOutWriter().WriteOutcome(outcome, cfg.OutputDir, cfg); err != nil {
			return err
		}
		if outcome.Status == schema.StatusFailed {
			return fmt.Errorf("analysis failed: %w", outcome.Err())
		}
		return nil
	},
}

// summaryCmd prints the statistics of the protocol.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the most frequent cause, mean impact and duration of the disturbances.",
	Long: `Summarize the recorded disturbances without writing charts.

Shows:
- Most frequent cause and responsible party
- Mean impact and mean duration
- Ranked causes (limited by --top-causes)
- Disturbances per begin hour

Examples:
  protokoll summary
  protokoll summary --output json`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		start := clock.Now()
		summary := pipeline.Summary(rootCtx)
		return outwriter.NewOutWriter().WriteSummary(summary, cfg, clock.Since(start))
	},
}

// forecastCmd prints the duration forecast.
var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast the disturbance duration for the coming days.",
	Long: `Fit a linear trend through the disturbance durations and extend it
--horizon days past the latest recorded date. At least five records are needed.

Examples:
  protokoll forecast --horizon 7
  protokoll forecast --output csv --output-file forecast.csv`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		points, err := pipeline.Forecast(rootCtx, cfg.HorizonDays)
		if err != nil {
			return fmt.Errorf("forecast failed: %w", err)
		}
		return outwriter.NewOutWriter().WriteForecast(points, cfg)
	},
}

// artifactsCmd lists the charts present in the output directory.
var artifactsCmd = &cobra.Command{
	Use:     "artifacts",
	Short:   "List the charts present in the output directory.",
	PreRunE: configSetupWrapper,
	RunE: func(cmd *cobra.Command, _ []string) error {
		kinds, err := artifact.List(cfg.OutputDir)
		if err != nil {
			return err
		}
		if len(kinds) == 0 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No charts in %s. Run 'protokoll analyze' first.\n", cfg.OutputDir)
			return nil
		}
		renderer := artifact.NewRenderer(cfg.OutputDir)
		for _, kind := range kinds {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", kind, renderer.Path(kind))
		}
		return nil
	},
}
