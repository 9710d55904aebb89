package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/watzon/tintbox/config"
)

// RunStudio starts the interactive palette studio
func RunStudio(cfg *config.Config) error {
	model, err := NewStudioModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(StudioModel); ok && m.err != nil {
		return m.err
	}

	return nil
}
