package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"

	"github.com/mithrel/blockfmt/pkg/api"
)

const (
	bullet      = "•"
	cellGap     = "  "
	highlightOn = "! "
)

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

// grid pads a table to a rectangle: the header row first, then every data
// row, each with as many cells as the widest row.
func grid(t api.TableUnit) [][]string {
	cols := len(t.Headers)
	for _, r := range t.Rows {
		cols = max(cols, len(r))
	}
	if cols == 0 {
		return nil
	}
	pad := func(r []string) []string {
		out := make([]string, cols)
		copy(out, r)
		return out
	}
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, pad(t.Headers))
	for _, r := range t.Rows {
		out = append(out, pad(r))
	}
	return out
}

// columnWidths returns the display width of each column, at least 1.
func columnWidths(g [][]string) []int {
	if len(g) == 0 {
		return nil
	}
	widths := make([]int, len(g[0]))
	for i := range widths {
		widths[i] = 1
	}
	for _, r := range g {
		for i, c := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}
	return widths
}

func plainTable(t api.TableUnit) string {
	g := grid(t)
	if g == nil {
		return ""
	}
	widths := columnWidths(g)
	var b strings.Builder
	line := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = runewidth.FillRight(c, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, cellGap), " "))
		b.WriteByte('\n')
	}
	line(g[0])
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	line(rule)
	for _, r := range g[1:] {
		line(r)
	}
	return b.String()
}

func plainSpans(spans []api.Span) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Emphasized {
			b.WriteString("*" + s.Text + "*")
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// PlainUnit renders one unit as terminal-neutral text ending in a newline.
func PlainUnit(u api.Unit) string {
	switch v := u.(type) {
	case api.HeaderUnit:
		return v.Text + "\n" + strings.Repeat("=", max(1, runewidth.StringWidth(v.Text))) + "\n"
	case api.TableUnit:
		return plainTable(v)
	case api.ListUnit:
		var b strings.Builder
		for _, item := range v.Items {
			b.WriteString(bullet + " " + item + "\n")
		}
		return b.String()
	case api.ProseUnit:
		return plainSpans(v.Spans) + "\n"
	case api.HighlightUnit:
		return highlightOn + v.Text + "\n"
	default:
		return ""
	}
}

// WritePlainUnits writes units separated by blank lines.
func WritePlainUnits(w io.Writer, units []api.Unit) error {
	bw := bufio.NewWriter(w)
	first := true
	for _, u := range units {
		s := PlainUnit(u)
		if s == "" {
			continue
		}
		if !first {
			_ = bw.WriteByte('\n')
		}
		first = false
		_, _ = bw.WriteString(s)
	}
	return bw.Flush()
}

// WritePlainBlocks writes one TSV row per block line: block index, kind, line.
func WritePlainBlocks(w io.Writer, blocks []api.Block, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, "block\tkind\tline\n")
	}
	for i, b := range blocks {
		for _, line := range b.Lines {
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", i, b.Kind, esc(line))
		}
	}
	return tw.Flush()
}
