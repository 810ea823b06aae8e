package render

import (
	"strings"

	"github.com/mithrel/blockfmt/pkg/api"
)

const emphasisDelim = "**"

// SplitEmphasis splits a line into plain and emphasized spans. Each opening
// "**" is closed by the next "**"; an opener without a closer is kept as
// literal text. Empty fragments are dropped.
func SplitEmphasis(line string) []api.Span {
	var spans []api.Span

	add := func(text string, emphasized bool) {
		if text == "" {
			return
		}
		spans = append(spans, api.Span{Text: strings.Clone(text), Emphasized: emphasized})
	}

	rest := line
	for {
		open := strings.Index(rest, emphasisDelim)
		if open < 0 {
			break
		}
		afterOpen := rest[open+len(emphasisDelim):]
		closeAt := strings.Index(afterOpen, emphasisDelim)
		if closeAt < 0 {
			break
		}
		add(rest[:open], false)
		add(afterOpen[:closeAt], true)
		rest = afterOpen[closeAt+len(emphasisDelim):]
	}
	add(rest, false)

	if spans == nil {
		spans = []api.Span{}
	}
	return spans
}
