// Package tui implements the interactive link browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/srazash/linkledger/internal/domain"
)

type linkItem struct {
	href string
	text string
}

func (l linkItem) Title() string {
	if l.text != "" {
		return l.text
	}
	return l.href
}

func (l linkItem) Description() string { return l.href }
func (l linkItem) FilterValue() string { return l.href + " " + l.text }

type model struct {
	theme  Theme
	source string
	links  list.Model
}

// Browse shows the anchors of an already-resolved document in a filterable
// list. It blocks until the user quits.
func Browse(source string, anchors []domain.Element) error {
	m := newModel(source, anchors)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(source string, anchors []domain.Element) model {
	items := make([]list.Item, 0, len(anchors))
	for _, a := range anchors {
		href, _ := a.Attr("href")
		items = append(items, linkItem{href: href, text: a.Text()})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Links (%d)", len(items))
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return model{
		theme:  DefaultTheme(),
		source: source,
		links:  l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.links.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.links.FilterState() != list.Filtering {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.links, cmd = m.links.Update(msg)
	return m, cmd
}

func (m model) View() string {
	header := m.theme.Source.Render(m.source)
	return header + "\n" + m.links.View()
}
