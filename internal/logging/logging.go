// Package logging builds the slog loggers used across recpath.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level is debug when RECPATH_DEBUG or DEBUG is set, info otherwise.
func Level() slog.Level {
	if os.Getenv("RECPATH_DEBUG") != "" || os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// New returns a text logger on stderr whose records carry component.
func New(component string) *slog.Logger {
	return NewTo(os.Stderr, component)
}

func NewTo(w io.Writer, component string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(),
	}
	return slog.New(slog.NewTextHandler(w, opts)).With(slog.String("component", component))
}
