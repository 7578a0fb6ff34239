package cmd

import (
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the protokoll MCP server",
	Long: `Launch an MCP server on stdio that lets AI agents run the analysis,
read the summary and forecast, and list the written charts.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, pipeline)
	},
}
