// ABOUTME: Tests for recommend command
// ABOUTME: Verifies command structure and argument validation
package commands

import (
	"testing"
)

func TestNewRecommendCmd(t *testing.T) {
	cmd := NewRecommendCmd()

	if cmd.Use != "recommend <query>" {
		t.Errorf("Use = %q, want %q", cmd.Use, "recommend <query>")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestRecommendCmd_ArgsValidation(t *testing.T) {
	cmd := NewRecommendCmd()

	// Should require exactly 1 argument
	if cmd.Args == nil {
		t.Error("Args validator should be set")
	}
	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("expected error for zero arguments")
	}
	if err := cmd.Args(cmd, []string{"a", "b"}); err == nil {
		t.Error("expected error for two arguments")
	}
	if err := cmd.Args(cmd, []string{"a query"}); err != nil {
		t.Errorf("one argument should validate, got: %v", err)
	}
}

func TestRecommendCmd_Examples(t *testing.T) {
	cmd := NewRecommendCmd()

	expectedParts := []string{
		"--format json",
		"December",
	}

	for _, part := range expectedParts {
		if !findSubstring(cmd.Long, part) {
			t.Errorf("Long description should contain %q", part)
		}
	}
}
