// Package query turns free-text venue queries into structured filters.
package query

import "strings"

// Normalize lower-cases a query and collapses runs of whitespace to single
// spaces. The rule parser and every substring predicate go through the same
// normalization so matching is case-insensitive everywhere. ASCII case
// folding only; no locale handling.
func Normalize(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	return strings.Join(strings.Fields(lower), " ")
}
