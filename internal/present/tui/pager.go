// Package tui shows rendered output in a scrollable Bubble Tea pager.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// chromeHeight is the number of lines taken by the title and footer.
const chromeHeight = 2

// Run opens a full-screen pager over content until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, title, content string) error {
	p := tea.NewProgram(newModel(title, content), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newModel(title, content string) model {
	return model{title: title, content: content}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h := max(1, msg.Height-chromeHeight)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	footer := footerStyle.Render(fmt.Sprintf("↑/↓ scroll • q quit • %3.f%%", m.viewport.ScrollPercent()*100))
	return titleStyle.Render(m.title) + "\n" + m.viewport.View() + "\n" + footer
}
