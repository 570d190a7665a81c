package domain

import "strings"

// Government scheme categories. The rule parser assigns one of these from
// query text, and the search engine matches a venue's free-text scheme tag
// against the same synonym table, so both sides agree on what a category
// means.
const (
	SchemeAIM   = "AIM"   // Atal Incubation Centres
	SchemeSISFS = "SISFS" // Startup India Seed Fund Scheme
	SchemeDST   = "DST"   // DST / NSTEDB technology business incubators
	SchemeState = "state" // generic state / central government
)

// schemeSynonyms maps a category to the substrings that identify it in a
// venue's scheme tag. Checked case-insensitively.
var schemeSynonyms = map[string][]string{
	SchemeAIM:   {"aim", "atal", "niti"},
	SchemeSISFS: {"sisfs", "seed"},
	SchemeDST:   {"dst", "nstedb", "nidhi"},
	SchemeState: {"govt", "government", "state"},
}

// SchemeMatches reports whether a venue's scheme tag belongs to the requested
// category. Unknown categories fall back to a plain substring test so an
// explicit caller-supplied tag still matches itself.
func SchemeMatches(category, tag string) bool {
	if tag == "" {
		return false
	}
	cat := strings.ToLower(category)
	lower := strings.ToLower(tag)
	syns, ok := schemeSynonyms[categoryKey(cat)]
	if !ok {
		return strings.Contains(lower, cat)
	}
	for _, s := range syns {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// categoryKey normalizes a category string to its canonical constant.
func categoryKey(cat string) string {
	switch cat {
	case "aim":
		return SchemeAIM
	case "sisfs":
		return SchemeSISFS
	case "dst":
		return SchemeDST
	case "state":
		return SchemeState
	}
	return cat
}
