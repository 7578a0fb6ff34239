// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the protokoll MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, analyzer contract.Analyzer) *server.MCPServer {
	s := server.NewMCPServer(
		"Disturbance Protocol Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		analyzer: analyzer,
	}

	s.AddTool(mcp.NewTool("run_analysis",
		mcp.WithDescription("Reload the disturbance records, compute every analysis and write the chart artifacts."),
	), h.handleRunAnalysis)

	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Summarize the recorded disturbances: top cause, top responsible party, mean impact, mean duration, ranked causes and hour-of-day counts."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked causes returned.")),
	), h.handleGetSummary)

	s.AddTool(mcp.NewTool("get_forecast",
		mcp.WithDescription("Forecast the disturbance duration in minutes for the coming days from a linear trend."),
		mcp.WithNumber("horizon", mcp.Description("Number of days to forecast (defaults to the configured horizon).")),
	), h.handleGetForecast)

	s.AddTool(mcp.NewTool("list_artifacts",
		mcp.WithDescription("List the chart artifacts currently present in the output directory."),
	), h.handleListArtifacts)

	return s
}

// StartMCPServer starts the protokoll MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, analyzer contract.Analyzer) error {
	s := NewMCPServer(baseCfg, analyzer)
	return server.ServeStdio(s)
}
