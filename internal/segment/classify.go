// Package segment splits freeform response text into typed blocks.
package segment

import (
	"regexp"
	"strings"

	"github.com/mithrel/blockfmt/pkg/api"
)

// TableSeparator delimits cells in a table row.
const TableSeparator = "|"

// listMarkerRe matches "* ", "- " or "12. " at the start of a trimmed line.
// The separator may be any Unicode space, including no-break and BOM.
var listMarkerRe = regexp.MustCompile(`^(\*|-|[0-9]+\.)[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]`)

// IsHeader reports whether a trimmed line opens with one or more '#'.
func IsHeader(line string) bool {
	return strings.HasPrefix(line, "#")
}

// IsTableRow reports whether splitting the line on the separator yields more
// than two parts, i.e. the line holds at least two separators.
func IsTableRow(line string) bool {
	return strings.Count(line, TableSeparator) >= 2
}

// IsListItem reports whether a trimmed line starts with a list marker
// followed by whitespace.
func IsListItem(line string) bool {
	return listMarkerRe.MatchString(line)
}

// IsBoldLine reports whether the line carries at least one emphasis delimiter.
func IsBoldLine(line string) bool {
	return strings.Contains(line, "**")
}

// rule pairs a block kind with the predicate that starts it. Grouping rules
// keep consuming following lines while the same predicate holds.
type rule struct {
	kind  api.Kind
	match func(string) bool
	group bool
}

// rules is the classification order; the first match wins.
var rules = []rule{
	{kind: api.KindHeader, match: IsHeader},
	{kind: api.KindTable, match: IsTableRow, group: true},
	{kind: api.KindList, match: IsListItem, group: true},
	{kind: api.KindBoldLine, match: IsBoldLine},
}

func classify(line string) rule {
	for _, r := range rules {
		if r.match(line) {
			return r
		}
	}
	return rule{kind: api.KindText}
}

// Classify returns the block kind a trimmed, non-blank line starts.
func Classify(line string) api.Kind {
	return classify(line).kind
}

// StripHeader removes the leading '#' run and any whitespace after it.
func StripHeader(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

// StripListMarker removes a leading list marker and the whitespace after it.
// Lines without a marker are returned trimmed.
func StripListMarker(line string) string {
	line = strings.TrimSpace(line)
	if loc := listMarkerRe.FindStringIndex(line); loc != nil {
		line = line[loc[1]:]
	}
	return strings.TrimSpace(line)
}
