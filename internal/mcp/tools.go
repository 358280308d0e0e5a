// ABOUTME: MCP tool definitions and registration for the eventscout server
// ABOUTME: Exposes the recommendation pipeline and catalog inspection as tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/eventscout/eventscout/internal/recommend"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, engine *recommend.Engine) *Handlers {
	handlers := &Handlers{engine: engine}

	// 1. recommend_events - Rank catalog events against a free-text query
	server.AddTool(mcp.Tool{
		Name:        "recommend_events",
		Description: "Recommend up to 3 catalog events matching a free-text query. Detects a mentioned month, derives a similarity threshold from sentiment, and ranks events by semantic similarity.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text description of what the user is looking for",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.RecommendEvents)

	// 2. list_catalog - Inspect the loaded event catalog
	server.AddTool(mcp.Tool{
		Name:        "list_catalog",
		Description: "List the loaded event catalog, optionally narrowed to rows whose Month field contains the given month.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"month": map[string]interface{}{
					"type":        "string",
					"description": "Optional month name to filter by (substring match)",
				},
			},
		},
	}, handlers.ListCatalog)

	return handlers
}
