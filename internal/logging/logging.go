// Package logging builds the structured loggers shared by every host.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to w.
func New(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// WithLevel parses level ("debug", "info", "warn", "error") and applies it to l.
// An empty level leaves the default in place.
func WithLevel(l *log.Logger, level string) (*log.Logger, error) {
	if level == "" {
		return l, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return l, fmt.Errorf("logging: %w", err)
	}
	l.SetLevel(lvl)
	return l, nil
}

// OpenFile returns a logger appending to path, creating parent directories.
// An empty path yields a logger that discards everything. The returned
// closer must be called when the host exits.
func OpenFile(path, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}
	return New(f, prefix), f, nil
}
