// Package logger builds the slog loggers used by kwzctl.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Options configures logger construction.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	JSON    bool       // Emit JSON records instead of key=value text
	Level   slog.Level // Minimum log level
	Writer  io.Writer  // Destination. Default: os.Stderr
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// New returns a logger for opts.
func New(opts Options) *slog.Logger {
	if !opts.Enabled {
		return Discard()
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
