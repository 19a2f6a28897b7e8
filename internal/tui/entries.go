package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/nodeconf/internal/logger"
)

// entryLine is one rendered configuration entry. Both domains are mapped
// into this shape before display; the page knows nothing about resolvers
// beyond the injected resolve function.
type entryLine struct {
	key   string
	value string
	desc  string
	dim   bool
}

// resolveFunc resolves a configuration file into display lines.
type resolveFunc func(path string) ([]entryLine, error)

// EntriesModel shows the resolved entry list of one domain, scrollable,
// with the selected value copyable to the clipboard.
type EntriesModel struct {
	domain  string
	title   string
	resolve resolveFunc
	log     *logger.Logger

	path   string
	lines  []entryLine
	cursor int
	status string

	vp     viewport.Model
	ready  bool
	width  int
	height int
}

func NewEntriesModel(domain, title string, resolve resolveFunc, log *logger.Logger) *EntriesModel {
	return &EntriesModel{domain: domain, title: title, resolve: resolve, log: log}
}

func (m *EntriesModel) Init() tea.Cmd { return nil }

func (m *EntriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		body := msg.Height - 6
		if body < 3 {
			body = 3
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, body)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = body
		}
		m.refresh()

	case FileSelected:
		if msg.Target != m.domain {
			return m, nil
		}
		m.load(msg.Path)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}
		case "down", "j":
			if m.cursor < len(m.lines)-1 {
				m.cursor++
				m.refresh()
			}
		case "enter", "o":
			return m, func() tea.Msg {
				return NavigateTo{Page: "explorer", Payload: exploreFor{Target: m.domain}}
			}
		case "y":
			m.copySelected()
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
	}
	return m, nil
}

func (m *EntriesModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle(m.title))

	if m.path == "" {
		b.WriteString("\n  no file loaded\n")
	} else if m.ready {
		b.WriteString(m.vp.View())
		b.WriteString("\n")
		if m.cursor < len(m.lines) && m.lines[m.cursor].desc != "" {
			b.WriteString(helpStyle.Render("  " + fitText(m.lines[m.cursor].desc, m.width-4)))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter/o: pick file   y: copy value   ↑/↓: move   esc: back   q: quit"))
	return b.String()
}

// load resolves path and replaces the entry list wholesale. On failure
// the previous list stays on screen and the error lands in the status
// line; a resolution error must never take the shell down.
func (m *EntriesModel) load(path string) {
	lines, err := m.resolve(path)
	if err != nil {
		m.log.Error().Err(err).Str("path", path).Str("domain", m.domain).Msg("resolve failed")
		m.status = err.Error()
		return
	}

	m.log.Info().Str("path", path).Str("domain", m.domain).Int("entries", len(lines)).Msg("config resolved")
	m.path = path
	m.lines = lines
	m.cursor = 0
	m.status = ""
	m.refresh()
}

func (m *EntriesModel) copySelected() {
	if m.cursor >= len(m.lines) {
		return
	}
	if err := clipboard.WriteAll(m.lines[m.cursor].value); err != nil {
		m.status = "clipboard unavailable"
		return
	}
	m.status = fmt.Sprintf("copied %s", m.lines[m.cursor].key)
}

// refresh re-renders the viewport content and keeps the cursor visible.
func (m *EntriesModel) refresh() {
	if !m.ready || len(m.lines) == 0 {
		return
	}

	keyWidth := 0
	for _, l := range m.lines {
		if len(l.key) > keyWidth {
			keyWidth = len(l.key)
		}
	}

	var b strings.Builder
	for i, l := range m.lines {
		text := "  " + padRight(l.key, keyWidth) + "  " + fitText(l.value, m.width-keyWidth-8)
		switch {
		case i == m.cursor:
			text = selectedStyle.Render(text)
		case l.dim:
			text = defaultStyle.Render(text)
		default:
			text = explicitStyle.Render(text)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	m.vp.SetContent(b.String())

	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}
