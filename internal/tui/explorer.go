package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// ExplorerModel is a modal file browser. It is armed with a target page
// via exploreFor; the next selected file is delivered to that page as
// FileSelected. The explorer never reads configuration itself.
type ExplorerModel struct {
	picker filepicker.Model
	target string
}

func NewExplorerModel(startDir string) *ExplorerModel {
	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.DirAllowed = false
	fp.FileAllowed = true
	return &ExplorerModel{picker: fp}
}

func (m *ExplorerModel) Init() tea.Cmd { return m.picker.Init() }

func (m *ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exploreFor:
		m.target = msg.Target
		return m, m.picker.Init()

	case tea.WindowSizeMsg:
		height := msg.Height - 5
		if height < 3 {
			height = 3
		}
		m.picker.Height = height

	case tea.KeyMsg:
		if msg.String() == "esc" {
			target := m.target
			if target == "" {
				target = "menu"
			}
			return m, func() tea.Msg { return NavigateTo{Page: target} }
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect && m.target != "" {
		target, selected := m.target, path
		return m, func() tea.Msg {
			return NavigateTo{Page: target, Payload: FileSelected{Target: target, Path: selected}}
		}
	}

	return m, cmd
}

func (m *ExplorerModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("select a configuration file"))
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: select   esc: cancel   q: quit"))
	return b.String()
}
