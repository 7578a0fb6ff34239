package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintRecords writes the stored disturbance records to the configured destination.
func PrintRecords(records []schema.RawRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteRecords(w, records, cfg)
	}, "Wrote records")
}

// WriteRecords outputs disturbance records in storage order.
func WriteRecords(w io.Writer, records []schema.RawRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if records == nil {
			records = []schema.RawRecord{}
		}
		return writeJSON(w, records)
	case schema.CSVOut:
		header := []string{"id", "date", "begin", "end", "cause", "responsible", "impact"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, r := range records {
				row := []string{
					strconv.FormatInt(r.ID, 10), r.Date, r.Begin, r.End, r.Cause, r.Responsible, strconv.Itoa(r.Impact),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}

	maxWidth := GetMaxTableLabelWidth(cfg, 60)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Date", "Begin", "End", "Cause", "Responsible", "Impact"})
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.Date,
			r.Begin,
			r.End,
			contract.TruncateLabel(r.Cause, maxWidth),
			contract.TruncateLabel(r.Responsible, maxWidth/2),
			fmt.Sprintf("%d %s", r.Impact, impactLabel(cfg, float64(r.Impact))),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d disturbances recorded.\n", len(records))
	return err
}

// PrintActions writes the stored remedial actions to the configured destination.
func PrintActions(actions []schema.RemedialAction, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteActions(w, actions, cfg)
	}, "Wrote remedial actions")
}

// WriteActions outputs remedial actions in storage order.
func WriteActions(w io.Writer, actions []schema.RemedialAction, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if actions == nil {
			actions = []schema.RemedialAction{}
		}
		return writeJSON(w, actions)
	case schema.CSVOut:
		return writeCSVWithHeader(w, []string{"id", "period", "description", "outcome"}, func(cw *csv.Writer) error {
			for _, a := range actions {
				if err := cw.Write([]string{strconv.FormatInt(a.ID, 10), a.Period, a.Description, a.Outcome}); err != nil {
					return err
				}
			}
			return nil
		})
	}

	maxWidth := GetMaxTableLabelWidth(cfg, 30)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Period", "Description", "Outcome"})
	rows := make([][]string, 0, len(actions))
	for _, a := range actions {
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			a.Period,
			contract.TruncateLabel(a.Description, maxWidth),
			contract.TruncateLabel(a.Outcome, maxWidth/2),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d remedial actions recorded.\n", len(actions))
	return err
}
