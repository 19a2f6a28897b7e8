package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/nodeconf/internal/config"
	"github.com/avolkov/nodeconf/internal/daemon"
	"github.com/avolkov/nodeconf/internal/logger"
	"github.com/avolkov/nodeconf/internal/pool"
	"github.com/avolkov/nodeconf/internal/source"
)

// Run wires the pages together and blocks until the user quits.
func Run(cfg *config.Config, log *logger.Logger) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"daemon":   NewEntriesModel("daemon", "bitcoind configuration", resolveDaemon, log),
		"pool":     NewEntriesModel("pool", "p2pool configuration", resolvePool, log),
		"explorer": NewExplorerModel(cfg.StartDir),
	}

	root := NewRootModel(pages, "menu")
	_, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	return err
}

// resolveDaemon adapts the daemon resolver to display lines. Schema
// defaults show dimmed; file-set values show highlighted.
func resolveDaemon(path string) ([]entryLine, error) {
	entries, err := daemon.Resolve(path)
	if err != nil {
		return nil, err
	}

	lines := make([]entryLine, 0, len(entries))
	for _, e := range entries {
		line := entryLine{key: e.Key, value: e.Value, dim: !e.Enabled}
		if e.Schema != nil {
			line.desc = e.Schema.Description
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// resolvePool adapts the pool resolver to display lines. The process
// environment is snapshotted here, at the edge; the resolver itself only
// sees the injected map.
func resolvePool(path string) ([]entryLine, error) {
	entries, err := pool.Resolve(path, source.EnvironMap(os.Environ()))
	if err != nil {
		return nil, err
	}

	lines := make([]entryLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, entryLine{key: e.Section + "." + e.Key, value: e.Value, dim: e.IsDefault})
	}
	return lines, nil
}
