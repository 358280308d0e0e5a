// ABOUTME: Tests for MCP command
// ABOUTME: Verifies command structure and example configuration
package commands

import (
	"testing"
)

func TestNewMCPCmd(t *testing.T) {
	cmd := NewMCPCmd()

	if cmd.Use != "mcp" {
		t.Errorf("Use = %q, want %q", cmd.Use, "mcp")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Example == "" {
		t.Error("Example should show MCP client configuration")
	}

	if !findSubstring(cmd.Example, "mcpServers") {
		t.Error("Example should contain an mcpServers snippet")
	}
}
