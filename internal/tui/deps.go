package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/katalvlaran/schoolnet/internal/session"
)

// Deps are the collaborators of the interactive menu. Session is required.
type Deps struct {
	Session *session.Session

	// Context bounds save operations; context.Background when nil.
	Context context.Context
	Logger  *slog.Logger

	// Input and Output replace the terminal (tests, pipes).
	Input  io.Reader
	Output io.Writer
}
