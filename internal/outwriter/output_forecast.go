package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintForecast writes the forecast to the configured destination.
func PrintForecast(points []schema.ForecastPoint, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteForecast(w, points, cfg)
	}, "Wrote forecast")
}

// WriteForecast outputs the forecast, dispatching based on the output format configured.
// An empty forecast is reported as such in table mode and as an empty list otherwise.
func WriteForecast(w io.Writer, points []schema.ForecastPoint, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if points == nil {
			points = []schema.ForecastPoint{}
		}
		if err := writeJSON(w, points); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeCSVWithHeader(w, []string{"date", "predicted_minutes"}, func(cw *csv.Writer) error {
			for _, p := range points {
				if err := cw.Write([]string{p.Date.Format(schema.DateLayout), fmtFloat(p.PredictedMinutes)}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if len(points) == 0 {
			_, err := fmt.Fprintf(w, "Not enough data for a forecast (at least %d records required).\n", schema.MinForecastRecords)
			return err
		}
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Date", "Predicted (min)"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		rows := make([][]string, 0, len(points))
		for _, p := range points {
			rows = append(rows, []string{p.Date.Format(schema.DateLayout), fmtFloat(p.PredictedMinutes)})
		}
		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("error writing forecast table: %w", err)
		}
	}
	return nil
}
