// Package render converts segmented blocks into renderable units.
package render

import (
	"strings"

	"github.com/mithrel/blockfmt/internal/segment"
	"github.com/mithrel/blockfmt/pkg/api"
)

// Renderer turns blocks into units. It holds only immutable configuration
// and is safe for concurrent use.
type Renderer struct {
	highlight Highlighter
}

// New returns a Renderer using the given highlight keywords.
func New(h Highlighter) *Renderer {
	return &Renderer{highlight: h}
}

var defaultRenderer = New(NewHighlighter(DefaultKeywords...))

// Render renders b with the default highlight keywords.
func Render(b api.Block) (api.Unit, bool) {
	return defaultRenderer.Render(b)
}

// Highlighter returns the keyword set used for Text blocks.
func (r *Renderer) Highlighter() Highlighter { return r.highlight }

// Render converts one block. The boolean is false when the block yields no
// unit, which only happens for a table with fewer than two lines.
func (r *Renderer) Render(b api.Block) (api.Unit, bool) {
	switch b.Kind {
	case api.KindHeader:
		return api.HeaderUnit{Text: strings.Clone(b.Line())}, true
	case api.KindTable:
		return renderTable(b.Lines)
	case api.KindList:
		return renderList(b.Lines), true
	case api.KindBoldLine:
		return api.ProseUnit{Spans: SplitEmphasis(b.Line())}, true
	default:
		return r.renderText(b.Line()), true
	}
}

// RenderAll renders blocks in order, omitting blocks that yield no unit.
func (r *Renderer) RenderAll(blocks []api.Block) []api.Unit {
	units := make([]api.Unit, 0, len(blocks))
	for _, b := range blocks {
		if u, ok := r.Render(b); ok {
			units = append(units, u)
		}
	}
	return units
}

func (r *Renderer) renderText(line string) api.Unit {
	text := strings.Clone(line)
	if r.highlight.Match(text) {
		return api.HighlightUnit{Text: text}
	}
	return api.ProseUnit{Spans: []api.Span{{Text: text}}}
}

// renderTable reads the header from the first line, skips the second as a
// separator row and parses the rest as data rows.
func renderTable(lines []string) (api.Unit, bool) {
	if len(lines) < 2 {
		return nil, false
	}
	rows := make([][]string, 0, len(lines)-2)
	for _, line := range lines[2:] {
		rows = append(rows, SplitCells(line))
	}
	return api.TableUnit{Headers: SplitCells(lines[0]), Rows: rows}, true
}

// SplitCells splits a table row on the separator, trims each cell and
// drops empty cells.
func SplitCells(line string) []string {
	parts := strings.Split(line, segment.TableSeparator)
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			cells = append(cells, strings.Clone(c))
		}
	}
	return cells
}

func renderList(lines []string) api.Unit {
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		items = append(items, strings.Clone(segment.StripListMarker(line)))
	}
	return api.ListUnit{Items: items}
}
