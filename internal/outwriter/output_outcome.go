package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintOutcome writes the run outcome to the configured destination.
func PrintOutcome(outcome schema.RunOutcome, outputDir string, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteOutcome(w, outcome, outputDir, cfg)
	}, "Wrote run outcome")
}

// WriteOutcome outputs the outcome of a pipeline run with one row per artifact kind.
func WriteOutcome(w io.Writer, outcome schema.RunOutcome, outputDir string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, outcome); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeCSVWithHeader(w, []string{"kind", "result", "file", "detail"}, func(cw *csv.Writer) error {
			for _, row := range outcomeRows(outcome, outputDir) {
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeOutcomeText(w, outcome, outputDir, cfg); err != nil {
			return fmt.Errorf("error writing outcome table: %w", err)
		}
	}
	return nil
}

// outcomeRows lists every artifact kind with its result, in pipeline order.
// A run without data has no rows.
func outcomeRows(outcome schema.RunOutcome, outputDir string) [][]string {
	if outcome.Status == schema.StatusNoData {
		return nil
	}
	result := make(map[schema.ArtifactKind]string, len(schema.AllArtifactKinds))
	for _, k := range outcome.Written {
		result[k] = "written"
	}
	for _, k := range outcome.Skipped {
		result[k] = "skipped"
	}
	for k := range outcome.Failures {
		result[k] = "failed"
	}

	var rows [][]string
	for _, kind := range schema.AllArtifactKinds {
		res, ok := result[kind]
		if !ok {
			continue
		}
		file := ""
		if res == "written" {
			file = filepath.Join(outputDir, schema.ArtifactFileNames[kind])
		}
		rows = append(rows, []string{string(kind), res, file, outcome.Failures[kind]})
	}
	return rows
}

func writeOutcomeText(w io.Writer, outcome schema.RunOutcome, outputDir string, cfg *contract.Config) error {
	status := string(outcome.Status)
	if cfg.UseColors {
		status = contract.GetStatusColor(outcome.Status).Sprint(status)
	}
	if _, err := fmt.Fprintf(w, "Run %s: %s (%d records, %d rejected)\n",
		status, outcome.Message, outcome.NumRecords, outcome.NumRejected); err != nil {
		return err
	}

	rows := outcomeRows(outcome, outputDir)
	if len(rows) == 0 {
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Artifact", "Result", "File", "Detail"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Run completed in %v.\n", outcome.Duration)
	return err
}
