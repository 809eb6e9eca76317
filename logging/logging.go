// SPDX-License-Identifier: MIT

// Package logging builds the structured loggers used across tabview.
//
// Loggers are plain *slog.Logger values; components accept one through a
// WithLogger option and default to Discard, so library use stays silent
// unless a caller opts in. The CLI builds its logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/tabview/errs"
)

// Output encodings.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects level, encoding and destination.
type Config struct {
	Level  string    // debug | info | warn | error; empty means info
	Format string    // text | json; empty means text
	Output io.Writer // nil means os.Stderr
}

// ParseLevel maps a level name to slog.Level.
// Errors: errs.ErrValue for unknown names.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("logging: unknown level %q: %w", name, errs.ErrValue)
}

// New returns a logger for cfg.
// Errors: errs.ErrValue for an unknown level or format.
func New(cfg Config) (*slog.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(out, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("logging: unknown format %q: %w", cfg.Format, errs.ErrValue)
	}

	return slog.New(h), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}

	return l
}
