package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI and blocks until it exits
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.Cleanup()

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.settings.Mouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}

	m.log.Info("starting", "version", m.version, "tabs", m.state.Tabs.Len(), "mouse", m.settings.Mouse)

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(&m, progOpts...)
	if _, err := p.Run(); err != nil {
		return err
	}

	m.log.Info("exited")
	return nil
}
