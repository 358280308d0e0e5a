// ABOUTME: Event catalog models for recommendation and ranking
// ABOUTME: Defines Event, RankedEvent and the pass-through field payload
package models

import "encoding/json"

// Event represents one catalog row, loaded once at startup and immutable
// for the process lifetime.
type Event struct {
	// RecordID is a stable identifier minted at catalog load.
	RecordID string

	// Index is the row's position in the full catalog. It aligns the row
	// with its precomputed embedding and survives month filtering.
	Index int

	// Month is the raw value of the catalog's Month column ("" if absent).
	Month string

	// Description is the raw value of the Description column ("" if absent).
	Description string

	// Fields holds every original catalog column for this row, passed
	// through unmodified to API responses.
	Fields map[string]string
}

// MarshalJSON emits the row's original catalog columns only, so API
// consumers see exactly the fields the source spreadsheet carried.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Fields)
}

// RankedEvent pairs an event with its similarity score for one query.
type RankedEvent struct {
	Event Event   `json:"event"`
	Score float64 `json:"score"`
}
