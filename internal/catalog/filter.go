// ABOUTME: Month filtering over the catalog with retained positional indices
// ABOUTME: Case-insensitive substring match against the Month column
package catalog

import (
	"strings"

	"github.com/eventscout/eventscout/internal/models"
)

// FilterByMonth returns the rows whose Month field contains month as a
// case-insensitive substring, preserving catalog order and each row's
// original Index. A row whose Month is "November/December" matches
// "December". Rows with an empty Month field never match.
//
// An empty month means no filter: the full catalog is returned.
func (c *Catalog) FilterByMonth(month string) []models.Event {
	if month == "" {
		return c.events
	}

	needle := strings.ToLower(month)
	var subset []models.Event
	for _, ev := range c.events {
		if ev.Month == "" {
			continue
		}
		if strings.Contains(strings.ToLower(ev.Month), needle) {
			subset = append(subset, ev)
		}
	}
	return subset
}
