package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/artifact"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	analyzer contract.Analyzer
}

// artifactEntry is one listed artifact file.
type artifactEntry struct {
	Kind schema.ArtifactKind `json:"kind"`
	Path string              `json:"path"`
}

func (h *toolHandler) handleRunAnalysis(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outcome := h.analyzer.Run(ctx)
	if outcome.Status == schema.StatusFailed {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", outcome.Err())), nil
	}
	return jsonResult(outcome)
}

func (h *toolHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 0)
	if limit < 0 {
		return mcp.NewToolResultError("limit must not be negative"), nil
	}

	summary := h.analyzer.Summary(ctx)
	if limit > 0 && len(summary.RankedCauses) > limit {
		summary.RankedCauses = summary.RankedCauses[:limit]
	}
	return jsonResult(summary)
}

func (h *toolHandler) handleGetForecast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	horizon := request.GetInt("horizon", h.baseCfg.HorizonDays)
	if horizon <= 0 || horizon > contract.MaxHorizonDays {
		return mcp.NewToolResultError(fmt.Sprintf("horizon must be between 1 and %d (received %d)", contract.MaxHorizonDays, horizon)), nil
	}

	points, err := h.analyzer.Forecast(ctx, horizon)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("forecast failed: %v", err)), nil
	}
	if points == nil {
		points = []schema.ForecastPoint{}
	}
	return jsonResult(points)
}

func (h *toolHandler) handleListArtifacts(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kinds, err := artifact.List(h.baseCfg.OutputDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing artifacts failed: %v", err)), nil
	}

	renderer := artifact.NewRenderer(h.baseCfg.OutputDir)
	entries := make([]artifactEntry, 0, len(kinds))
	for _, kind := range kinds {
		entries = append(entries, artifactEntry{Kind: kind, Path: renderer.Path(kind)})
	}
	return jsonResult(entries)
}

// jsonResult renders v as an indented JSON text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
