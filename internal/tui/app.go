package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global quit keys
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string) RootModel {
	return RootModel{
		pages:   pages,
		current: startPage,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c", "q":
			return r, tea.Quit
		}

	case tea.WindowSizeMsg:
		// Every page tracks its own size; fan the message out so a page
		// opened later still knows the terminal dimensions.
		for name, page := range r.pages {
			updated, _ := page.Update(m)
			r.pages[name] = updated
		}
		return r, nil

	case NavigateTo:
		if _, exists := r.pages[m.Page]; !exists {
			return r, nil
		}
		r.current = m.Page

		if m.Payload != nil {
			payload := m.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.pages[r.current].Init()
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	page, ok := r.pages[r.current]
	if !ok {
		return ""
	}
	return page.View()
}
