package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// menuItem pairs a sidebar label with the page it opens.
type menuItem struct {
	label string
	page  string
}

// MenuModel is the home page: pick which node application to inspect.
type MenuModel struct {
	items  []menuItem
	cursor int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{label: "bitcoind configuration (bitcoin.conf)", page: "daemon"},
			{label: "p2pool configuration (*.toml)", page: "pool"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd { return nil }

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		return m, func() tea.Msg { return NavigateTo{Page: m.items[m.cursor].page} }
	}
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("nodeconf"))
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.label
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.label)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: open   ↑/↓: move   q: quit"))
	return b.String()
}
