// ABOUTME: Tests for version command
// ABOUTME: Verifies version output and SetVersion wiring
package commands

import (
	"bytes"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-01-01")
	defer SetVersion("dev", "none", "unknown")

	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	output := out.String()
	for _, want := range []string{"1.2.3", "abc1234", "2026-01-01"} {
		if !findSubstring(output, want) {
			t.Errorf("output %q should contain %q", output, want)
		}
	}
}
