// Package logging builds the slog loggers used by the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the debug log written under the config directory.
const FileName = "debug.log"

// New returns a text logger writing to w. A nil w discards everything.
func New(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Open returns the logger for a CLI run. Without debug, logs are discarded.
// With debug, they are appended to dir/debug.log and the returned close
// function releases the file.
func Open(dir string, debug bool) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if !debug {
		return New(nil, false), noop, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, noop, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("opening debug log: %w", err)
	}
	return New(f, true), f.Close, nil
}
