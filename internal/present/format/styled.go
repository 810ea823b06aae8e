package format

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/blockfmt/pkg/api"
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Header    lipgloss.Style
	Emphasis  lipgloss.Style
	Bullet    lipgloss.Style
	Highlight lipgloss.Style
	Table     table.Styles
}

func DefaultStyles() Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Tables are printed, not navigated.
	ts.Selected = lipgloss.NewStyle()

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")),
		Emphasis: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(0, 1),
		Table: ts,
	}
}

func (s Styles) wrap(st lipgloss.Style, width int) lipgloss.Style {
	if width > 0 {
		return st.Width(width)
	}
	return st
}

func (s Styles) table(t api.TableUnit) string {
	g := grid(t)
	if g == nil {
		return ""
	}
	widths := columnWidths(g)
	cols := make([]table.Column, len(widths))
	for i, w := range widths {
		cols[i] = table.Column{Title: g[0][i], Width: w}
	}
	rows := make([]table.Row, 0, len(g)-1)
	for _, r := range g[1:] {
		rows = append(rows, table.Row(r))
	}

	tm := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithStyles(s.Table),
		table.WithHeight(len(rows)+2),
	)
	return trimBlankTail(tm.View())
}

// trimBlankTail drops the empty lines the table viewport pads itself with.
func trimBlankTail(view string) string {
	lines := strings.Split(view, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// StyledUnit renders one unit for a color terminal. Width wraps prose and
// headers when positive.
func (s Styles) StyledUnit(u api.Unit, width int) string {
	switch v := u.(type) {
	case api.HeaderUnit:
		return s.wrap(s.Header, width).Render(v.Text)
	case api.TableUnit:
		return s.table(v)
	case api.ListUnit:
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			lines[i] = s.Bullet.Render(bullet) + " " + item
		}
		return strings.Join(lines, "\n")
	case api.ProseUnit:
		var b strings.Builder
		for _, sp := range v.Spans {
			if sp.Emphasized {
				b.WriteString(s.Emphasis.Render(sp.Text))
				continue
			}
			b.WriteString(sp.Text)
		}
		return s.wrap(lipgloss.NewStyle(), width).Render(b.String())
	case api.HighlightUnit:
		st := s.Highlight
		if width > 4 {
			st = st.Width(width - 2)
		}
		return st.Render(v.Text)
	default:
		return ""
	}
}

// StyledString renders units separated by blank lines.
func StyledString(units []api.Unit, styles Styles, width int) string {
	parts := make([]string, 0, len(units))
	for _, u := range units {
		if out := styles.StyledUnit(u, width); out != "" {
			parts = append(parts, out)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func WriteStyledUnits(w io.Writer, units []api.Unit, width int) error {
	_, err := io.WriteString(w, StyledString(units, DefaultStyles(), width))
	return err
}
