// ABOUTME: Lexical month detection over the 12 canonical English month names
// ABOUTME: Case-insensitive substring scan in calendar order, no word boundaries
package nlp

import "strings"

// Months lists the canonical month names in calendar order. Detection
// iterates this slice, so January wins over December when both appear.
var Months = []string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

// DetectMonth returns the first canonical month name (in calendar order)
// whose lowercase form appears anywhere in the lowercased input, and true.
// There is no word-boundary check: "decemberfest" matches December.
// Returns ("", false) when no month name appears.
func DetectMonth(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, month := range Months {
		if strings.Contains(lower, strings.ToLower(month)) {
			return month, true
		}
	}
	return "", false
}
