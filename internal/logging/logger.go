// Package logging builds the slog logger used across wiktitrage.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pdiddy/wiktitrage/pkg/types"
)

// New creates a *slog.Logger writing to w.
//
// Format "json" produces JSON records; anything else produces text.
// Level is one of debug, info, warn, error (case-insensitive) and
// defaults to warn so that log lines do not interleave with the display.
func New(cfg types.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: parseLevel(cfg.Level) <= slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
