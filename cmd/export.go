package cmd

import (
	"fmt"
	"os"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/iocache"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/report"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/spf13/cobra"
)

// exportCmd writes the protocol to a file.
var exportCmd = &cobra.Command{
	Use:       "export parquet|pdf|xlsx",
	Short:     "Export the protocol to Parquet, PDF or XLSX.",
	ValidArgs: []string{string(schema.ParquetExport), string(schema.PDFExport), string(schema.XLSXExport)},
	Long: `Export the recorded disturbances and remedial actions.

Formats:
- parquet  two files, FILE.disturbances.parquet and FILE.actions.parquet,
           for DuckDB, pandas or Spark
- pdf      printable protocol with summary, disturbances and actions
- xlsx     workbook with a summary, a disturbance and an action sheet

Malformed records are left out of every format.

Examples:
  protokoll export pdf --file protokoll.pdf
  protokoll export parquet --file data
  duckdb -c "SELECT cause, count(*) FROM read_parquet('data.disturbances.parquet') GROUP BY cause"`,
	Args:    cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := schema.ExportFormat(args[0])
		file, _ := cmd.Flags().GetString("file")

		ds := dataset.Get(rootCtx, true)
		actions, err := store.FetchActions(rootCtx)
		if err != nil {
			return fmt.Errorf("failed to read remedial actions: %w", err)
		}

		p := report.Protocol{
			Generated: clock.Now(),
			Summary:   pipeline.Summary(rootCtx),
			Records:   ds.Records,
			Actions:   actions,
		}
		return iocache.ExportProtocol(os.Stdout, format, file, p)
	},
}
