// Package logging builds the logrus logger shared by the board and the TUI.
//
// The board runs full screen, so log lines never go to the terminal: they are
// appended as JSON to the configured file, or discarded when no file is set.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pablasso/kanban/internal/config"
)

// Logger wraps a logrus logger together with the file it writes to, if any.
type Logger struct {
	*logrus.Logger
	file  *os.File
	runID string
}

// New creates a Logger from the logging config.
// The level is parsed case-insensitively; unknown levels fall back to info.
func New(cfg config.LoggingConfig) (*Logger, error) {
	l := logrus.New()
	runID := uuid.NewString()
	l.SetLevel(ParseLevel(cfg.Level))
	l.SetFormatter(&logrus.JSONFormatter{})

	if cfg.File == "" {
		l.SetOutput(io.Discard)
		return &Logger{Logger: l, runID: runID}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l.SetOutput(file)

	return &Logger{Logger: l, file: file, runID: runID}, nil
}

// RunID identifies this process in the log file, which is appended to
// across runs.
func (l *Logger) RunID() string {
	return l.runID
}

// Run returns an entry that tags every line with the run ID.
func (l *Logger) Run() *logrus.Entry {
	return l.WithField("run_id", l.runID)
}

// ParseLevel converts a config level string to a logrus level.
// Unknown or empty levels fall back to info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Close closes the log file. It is a no-op for a discarding logger.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
