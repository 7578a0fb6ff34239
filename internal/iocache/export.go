package iocache

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/parquet"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/report"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
)

// ExportProtocol writes the protocol to outputFile in the given format and reports progress to w.
// Parquet produces two files next to each other: outputFile.disturbances.parquet and
// outputFile.actions.parquet.
func ExportProtocol(w io.Writer, format schema.ExportFormat, outputFile string, p report.Protocol) error {
	if outputFile == "" {
		return errors.New("--file is required for export command")
	}
	if len(p.Records) == 0 && len(p.Actions) == 0 {
		return errors.New("no disturbance data found to export")
	}

	switch format {
	case schema.ParquetExport:
		return exportParquet(w, outputFile, p)
	case schema.PDFExport:
		return exportDocument(w, outputFile, p, report.BuildProtocolPDF)
	case schema.XLSXExport:
		return exportDocument(w, outputFile, p, report.BuildProtocolXLSX)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

func exportParquet(w io.Writer, outputFile string, p report.Protocol) error {
	recordsFile := outputFile + ".disturbances.parquet"
	if err := parquet.WriteDisturbancesParquet(parquet.FromRecords(p.Records), recordsFile); err != nil {
		return fmt.Errorf("failed to write disturbances: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d disturbances to: %s\n", len(p.Records), recordsFile)

	actionsFile := outputFile + ".actions.parquet"
	if err := parquet.WriteActionsParquet(parquet.FromActions(p.Actions), actionsFile); err != nil {
		return fmt.Errorf("failed to write remedial actions: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d remedial actions to: %s\n", len(p.Actions), actionsFile)
	return nil
}

func exportDocument(w io.Writer, outputFile string, p report.Protocol, build func(report.Protocol) ([]byte, error)) error {
	data, err := build(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	_, _ = fmt.Fprintf(w, "Exported protocol with %d disturbances and %d remedial actions to: %s\n",
		len(p.Records), len(p.Actions), outputFile)
	return nil
}
