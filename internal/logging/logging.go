// Package logging sets up the audit log written alongside analysis outputs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger writes structured entries to the audit log and mirrors warnings
// to the console.
type Logger struct {
	zerolog.Logger
	file *os.File
}

// Open creates (or appends to) the audit log at path. Debug lowers the
// level from info to debug.
func Open(path string, debug bool) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	l := New(zerolog.MultiLevelWriter(file, minLevel{w: console, level: zerolog.WarnLevel}), debug)
	l.file = file
	return l, nil
}

// New builds a Logger on an arbitrary writer. Entries carry an RFC 3339
// timestamp; zerolog's package-level settings are left alone.
func New(w io.Writer, debug bool) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return &Logger{
		Logger: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Component returns a child logger tagged with the component name.
func (l *Logger) Component(name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Close closes the underlying audit log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// LogRunStart records the script name and version as the first entries of
// a run.
func (l *Logger) LogRunStart(script, version string) {
	l.Info().Str("script", filepath.Base(script)).Msg("Script name")
	l.Info().Str("version", version).Msg("Script version")
}

// minLevel forwards only entries at or above level.
type minLevel struct {
	w     io.Writer
	level zerolog.Level
}

func (m minLevel) Write(p []byte) (int, error) {
	return m.w.Write(p)
}

func (m minLevel) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l < m.level {
		return len(p), nil
	}
	return m.w.Write(p)
}
