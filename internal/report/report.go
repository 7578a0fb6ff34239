// Package report renders the disturbance protocol as PDF and XLSX documents.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX protocol.
const (
	summarySheet = "summary"
	recordsSheet = "disturbances"
	actionsSheet = "actions"
)

// Protocol is everything that goes into one protocol document.
type Protocol struct {
	Generated time.Time
	Summary   schema.Summary
	Records   []schema.Record
	Actions   []schema.RemedialAction
}

// recordColumns are the headers and PDF widths (mm) of the disturbance table.
var recordColumns = []struct {
	title string
	width float64
}{
	{"Date", 22}, {"Begin", 14}, {"End", 14}, {"Minutes", 16},
	{"Cause", 50}, {"Responsible", 44}, {"Impact", 14},
}

// BuildProtocolPDF renders the protocol as an A4 PDF.
func BuildProtocolPDF(p Protocol) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Disturbance Protocol")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", p.Generated.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Disturbances: %d", p.Summary.NumRecords))
	pdf.Ln(5)
	if p.Summary.HasTopCause {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Most frequent cause: %s", p.Summary.TopCause)))
		pdf.Ln(5)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Most frequent responsible party: %s", p.Summary.TopResponsible)))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Mean impact: %.1f", p.Summary.MeanImpact))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Mean duration (min): %.1f", p.Summary.MeanDuration))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	for _, col := range recordColumns {
		pdf.CellFormat(col.width, 6, col.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, r := range p.Records {
		cells := []string{
			r.Date, r.Begin, r.End,
			fmt.Sprintf("%.0f", r.DurationMinutes),
			tr(r.Cause), tr(r.Responsible),
			fmt.Sprintf("%d", r.Impact),
		}
		for i, col := range recordColumns {
			align := "L"
			if i == 3 || i == 6 {
				align = "R"
			}
			pdf.CellFormat(col.width, 6, cells[i], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(p.Actions) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "Remedial Actions")
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 9)
		for _, a := range p.Actions {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s: %s -> %s", a.Period, a.Description, a.Outcome)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render protocol PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildProtocolXLSX renders the protocol as a workbook with a summary,
// a disturbance and a remedial action sheet.
func BuildProtocolXLSX(p Protocol) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}
	for _, name := range []string{recordsSheet, actionsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	_ = f.SetCellValue(summarySheet, "A1", "Disturbance Protocol")
	_ = f.SetCellValue(summarySheet, "A3", "Generated")
	_ = f.SetCellValue(summarySheet, "B3", p.Generated.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A4", "Disturbances")
	_ = f.SetCellValue(summarySheet, "B4", p.Summary.NumRecords)
	_ = f.SetCellValue(summarySheet, "A5", "Rejected")
	_ = f.SetCellValue(summarySheet, "B5", p.Summary.NumRejected)
	_ = f.SetCellValue(summarySheet, "A6", "Top cause")
	_ = f.SetCellValue(summarySheet, "B6", p.Summary.TopCause)
	_ = f.SetCellValue(summarySheet, "A7", "Top responsible")
	_ = f.SetCellValue(summarySheet, "B7", p.Summary.TopResponsible)
	_ = f.SetCellValue(summarySheet, "A8", "Mean impact")
	_ = f.SetCellValue(summarySheet, "B8", p.Summary.MeanImpact)
	_ = f.SetCellValue(summarySheet, "A9", "Mean duration (min)")
	_ = f.SetCellValue(summarySheet, "B9", p.Summary.MeanDuration)

	for i, col := range recordColumns {
		_ = f.SetCellValue(recordsSheet, cell(i, 1), col.title)
	}
	for i, r := range p.Records {
		row := i + 2
		values := []any{r.Date, r.Begin, r.End, r.DurationMinutes, r.Cause, r.Responsible, r.Impact}
		for c, v := range values {
			_ = f.SetCellValue(recordsSheet, cell(c, row), v)
		}
	}

	_ = f.SetCellValue(actionsSheet, "A1", "Period")
	_ = f.SetCellValue(actionsSheet, "B1", "Description")
	_ = f.SetCellValue(actionsSheet, "C1", "Outcome")
	for i, a := range p.Actions {
		row := i + 2
		_ = f.SetCellValue(actionsSheet, fmt.Sprintf("A%d", row), a.Period)
		_ = f.SetCellValue(actionsSheet, fmt.Sprintf("B%d", row), a.Description)
		_ = f.SetCellValue(actionsSheet, fmt.Sprintf("C%d", row), a.Outcome)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render protocol XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

// cell returns the A1 reference of a zero-based column and one-based row.
func cell(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(col), row)
}
