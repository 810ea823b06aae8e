package render

import "strings"

// DefaultKeywords trigger a highlight callout when found in a prose line.
var DefaultKeywords = []string{"LPA", "Growth", "Salary"}

// Highlighter flags prose lines containing any of a fixed set of
// case-sensitive trigger substrings.
type Highlighter struct {
	keywords []string
}

// NewHighlighter builds a Highlighter; empty and duplicate keywords are ignored.
func NewHighlighter(keywords ...string) Highlighter {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return Highlighter{keywords: out}
}

// Match reports whether text contains any keyword.
func (h Highlighter) Match(text string) bool {
	for _, k := range h.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Keywords returns a copy of the trigger set.
func (h Highlighter) Keywords() []string {
	return append([]string(nil), h.keywords...)
}
