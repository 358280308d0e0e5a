// ABOUTME: MCP tool handler implementations for the eventscout server
// ABOUTME: Wraps the ranking engine with JSON tool responses
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/eventscout/eventscout/internal/recommend"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	engine *recommend.Engine
}

// RecommendEvents handles the recommend_events tool
func (h *Handlers) RecommendEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	if query == "" {
		return mcp.NewToolResultError("query must not be empty"), nil
	}

	result, err := h.engine.Recommend(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"outcome":   string(result.Outcome),
		"sentiment": string(result.Context.Sentiment),
	}
	if result.Context.Month != "" {
		response["month"] = result.Context.Month
	}

	switch result.Outcome {
	case recommend.OutcomeNoEventsForMonth:
		response["message"] = fmt.Sprintf("No events found for %s.", result.Context.Month)
	case recommend.OutcomeNoMatches:
		response["message"] = "No relevant events found."
	default:
		events := make([]map[string]interface{}, len(result.Events))
		for i, re := range result.Events {
			events[i] = map[string]interface{}{
				"fields": re.Event.Fields,
				"score":  re.Score,
			}
		}
		response["events"] = events
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListCatalog handles the list_catalog tool
func (h *Handlers) ListCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	month := request.GetString("month", "")

	rows := h.engine.Catalog().FilterByMonth(month)

	entries := make([]map[string]interface{}, len(rows))
	for i, ev := range rows {
		entries[i] = map[string]interface{}{
			"record_id": ev.RecordID,
			"index":     ev.Index,
			"fields":    ev.Fields,
		}
	}

	response := map[string]interface{}{
		"total": len(rows),
		"rows":  entries,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
