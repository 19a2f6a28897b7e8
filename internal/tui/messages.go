package tui

import tea "github.com/charmbracelet/bubbletea"

// NavigateTo switches the active page. When Payload is non-nil it is
// delivered to the target page as its first message instead of Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// exploreFor arms the explorer page: the next selected file is reported
// to Target.
type exploreFor struct {
	Target string
}

// FileSelected carries an explorer selection back to the page that
// requested it.
type FileSelected struct {
	Target string
	Path   string
}
