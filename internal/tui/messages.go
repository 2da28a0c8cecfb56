package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/schoolnet/internal/session"
)

// saveDoneMsg reports the outcome of an asynchronous save.
type saveDoneMsg struct {
	location string
	err      error
}

func saveCmd(ctx context.Context, s *session.Session, location string) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{location: location, err: s.Save(ctx, location)}
	}
}
