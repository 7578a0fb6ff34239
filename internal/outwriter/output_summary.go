package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSummary writes the summary to the configured destination.
func PrintSummary(summary schema.Summary, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteSummary(w, summary, cfg, duration)
	}, "Wrote summary")
}

// WriteSummary outputs the summary, dispatching based on the output format configured.
func WriteSummary(w io.Writer, summary schema.Summary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, summary); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSummaryCSV(w, summary, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeSummaryTable(w, summary, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing summary table: %w", err)
		}
	}
	return nil
}

// writeSummaryCSV writes one row per value: scalar figures, then causes, then hours.
func writeSummaryCSV(w io.Writer, s schema.Summary, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"section", "key", "value"}, func(cw *csv.Writer) error {
		rows := [][]string{
			{"summary", "num_records", strconv.Itoa(s.NumRecords)},
			{"summary", "num_rejected", strconv.Itoa(s.NumRejected)},
			{"summary", "top_cause", s.TopCause},
			{"summary", "top_responsible", s.TopResponsible},
			{"summary", "mean_impact", fmtFloat(s.MeanImpact)},
			{"summary", "mean_duration", fmtFloat(s.MeanDuration)},
		}
		for _, c := range s.RankedCauses {
			rows = append(rows, []string{"cause", c.Cause, strconv.Itoa(c.Count)})
		}
		for hour, count := range s.Hours {
			rows = append(rows, []string{"hour", strconv.Itoa(hour), strconv.Itoa(count)})
		}
		return cw.WriteAll(rows)
	})
}

// writeSummaryTable writes the key figures, the ranked causes and the busiest hours as tables.
func writeSummaryTable(w io.Writer, s schema.Summary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	topCause := "-"
	if s.HasTopCause {
		topCause = s.TopCause
	}
	topResponsible := "-"
	if s.TopResponsible != "" {
		topResponsible = s.TopResponsible
	}
	impact := fmtFloat(s.MeanImpact)
	if s.NumRecords > 0 {
		impact += " (" + impactLabel(cfg, s.MeanImpact) + ")"
	}

	figures := tablewriter.NewWriter(w)
	figures.Header([]string{"Figure", "Value"})
	if err := figures.Bulk([][]string{
		{"Disturbances", strconv.Itoa(s.NumRecords)},
		{"Rejected records", strconv.Itoa(s.NumRejected)},
		{"Top cause", topCause},
		{"Top responsible", topResponsible},
		{"Mean impact", impact},
		{"Mean duration (min)", fmtFloat(s.MeanDuration)},
	}); err != nil {
		return err
	}
	if err := figures.Render(); err != nil {
		return err
	}

	if len(s.RankedCauses) > 0 {
		maxWidth := GetMaxTableLabelWidth(cfg, 20)
		causes := tablewriter.NewWriter(w)
		causes.Header([]string{"Rank", "Cause", "Count"})
		causes.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		rows := make([][]string, 0, len(s.RankedCauses))
		for i, c := range s.RankedCauses {
			rows = append(rows, []string{strconv.Itoa(i + 1), contract.TruncateLabel(c.Cause, maxWidth), strconv.Itoa(c.Count)})
		}
		if err := causes.Bulk(rows); err != nil {
			return err
		}
		if err := causes.Render(); err != nil {
			return err
		}
	}

	if peak, ok := s.Hours.Peak(); ok {
		hours := tablewriter.NewWriter(w)
		hours.Header([]string{"Hour", "Disturbances"})
		hours.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		var rows [][]string
		for hour, count := range s.Hours {
			if count == 0 {
				continue
			}
			label := fmt.Sprintf("%02d:00", hour)
			if hour == peak {
				label += " *"
			}
			rows = append(rows, []string{label, strconv.Itoa(count)})
		}
		if err := hours.Bulk(rows); err != nil {
			return err
		}
		if err := hours.Render(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Summary computed in %v.\n", duration)
	return err
}
