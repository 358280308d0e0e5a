// ABOUTME: Tests for catalog loading and projection
// ABOUTME: Covers csv ingestion, header validation, and pass-through fields
package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	cat, err := New([][]string{
		{"Month", "Description", "Venue"},
		{"December", "Ice skating under holiday lights", "City Park"},
		{"July", "Beach bonfire with live music", "North Shore"},
		{"", "Year-round museum exhibit"},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if cat.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cat.Len())
	}

	events := cat.Events()
	if events[0].Month != "December" {
		t.Errorf("events[0].Month = %q, want December", events[0].Month)
	}
	if events[0].Index != 0 || events[2].Index != 2 {
		t.Error("events should carry their positional index")
	}
	if events[0].RecordID == "" || events[0].RecordID == events[1].RecordID {
		t.Error("events should have distinct non-empty record IDs")
	}

	// Short row: missing Venue cell becomes ""
	if got := events[2].Fields["Venue"]; got != "" {
		t.Errorf("short row Venue = %q, want empty string", got)
	}

	// All original columns are preserved
	if got := events[1].Fields["Venue"]; got != "North Shore" {
		t.Errorf("Fields[Venue] = %q, want North Shore", got)
	}
	if got := events[1].Fields["Month"]; got != "July" {
		t.Errorf("Fields[Month] = %q, want July", got)
	}
}

func TestNew_MissingColumns(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
	}{
		{"no rows", nil},
		{"missing Month", [][]string{{"Description", "Venue"}}},
		{"missing Description", [][]string{{"Month", "Venue"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.rows); err == nil {
				t.Error("New() = nil error, want error")
			}
		})
	}
}

func TestDescriptions(t *testing.T) {
	cat, err := New([][]string{
		{"Month", "Description"},
		{"May", "Spring flower festival"},
		{"May", ""},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	descs := cat.Descriptions()
	if len(descs) != 2 {
		t.Fatalf("Descriptions() returned %d entries, want 2", len(descs))
	}
	if descs[0] != "Spring flower festival" || descs[1] != "" {
		t.Errorf("Descriptions() = %v, want projected column with empty cell preserved", descs)
	}
}

func TestMonths(t *testing.T) {
	cat, err := New([][]string{
		{"Month", "Description"},
		{"December", "a"},
		{"July", "b"},
		{"December", "c"},
		{"", "d"},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	months := cat.Months()
	if len(months) != 2 {
		t.Fatalf("Months() = %v, want 2 distinct months", months)
	}
	if months[0] != "December" || months[1] != "July" {
		t.Errorf("Months() = %v, want sorted [December July]", months)
	}
}

func TestLoadFile_CSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.csv")
	data := "Month,Description,Venue\nDecember,Ice skating,City Park\nJuly,Beach bonfire,North Shore\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}
	if cat.Events()[1].Description != "Beach bonfire" {
		t.Errorf("Description = %q, want Beach bonfire", cat.Events()[1].Description)
	}
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	if _, err := LoadFile("events.parquet"); err == nil {
		t.Error("LoadFile() = nil error for unsupported extension, want error")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("LoadFile() = nil error for missing file, want error")
	}
}
