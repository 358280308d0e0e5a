// ABOUTME: Tests for serve command
// ABOUTME: Verifies command structure and documentation
package commands

import (
	"testing"
)

func TestNewServeCmd(t *testing.T) {
	cmd := NewServeCmd()

	if cmd.Use != "serve" {
		t.Errorf("Use = %q, want %q", cmd.Use, "serve")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestServeCmd_Examples(t *testing.T) {
	cmd := NewServeCmd()

	expectedParts := []string{
		"EVENTSCOUT_PORT",
		"--verbose",
	}

	for _, part := range expectedParts {
		if !findSubstring(cmd.Long, part) {
			t.Errorf("Long description should contain %q", part)
		}
	}
}
