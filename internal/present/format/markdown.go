package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mithrel/blockfmt/pkg/api"
)

// mdEscaper backslash-escapes the punctuation that can start or close a
// Markdown construct, so unit text is always rendered literally.
var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`,
	"<", `\<`, ">", `\>`, "#", `\#`, "+", `\+`, "-", `\-`, "!", `\!`,
	"|", `\|`, "~", `\~`, "&", `\&`, "=", `\=`, ".", `\.`, "(", `\(`, ")", `\)`,
)

func mdEscape(s string) string {
	return mdEscaper.Replace(s)
}

func mdEscapeAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = mdEscape(s)
	}
	return out
}

// ToMarkdown re-emits units as normalized Markdown.
func ToMarkdown(units []api.Unit) string {
	parts := make([]string, 0, len(units))
	for _, u := range units {
		if md := markdownUnit(u); md != "" {
			parts = append(parts, md)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func markdownUnit(u api.Unit) string {
	switch v := u.(type) {
	case api.HeaderUnit:
		return "## " + mdEscape(v.Text)
	case api.TableUnit:
		g := grid(v)
		if g == nil {
			return ""
		}
		lines := make([]string, 0, len(g)+1)
		lines = append(lines, "| "+strings.Join(mdEscapeAll(g[0]), " | ")+" |")
		rule := make([]string, len(g[0]))
		for i := range rule {
			rule[i] = "---"
		}
		lines = append(lines, "| "+strings.Join(rule, " | ")+" |")
		for _, r := range g[1:] {
			lines = append(lines, "| "+strings.Join(mdEscapeAll(r), " | ")+" |")
		}
		return strings.Join(lines, "\n")
	case api.ListUnit:
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			lines[i] = "- " + mdEscape(item)
		}
		return strings.Join(lines, "\n")
	case api.ProseUnit:
		var b strings.Builder
		for _, s := range v.Spans {
			if s.Emphasized {
				b.WriteString("**" + mdEscape(s.Text) + "**")
				continue
			}
			b.WriteString(mdEscape(s.Text))
		}
		return b.String()
	case api.HighlightUnit:
		return "> **" + mdEscape(v.Text) + "**"
	default:
		return ""
	}
}

// WritePrettyUnits renders units through glamour with the named style.
func WritePrettyUnits(w io.Writer, units []api.Unit, style string, width int) error {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(ToMarkdown(units))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
