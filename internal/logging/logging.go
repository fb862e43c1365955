// Package logging builds the file logger. The terminal belongs to the UI, so
// log output never goes to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jask/quizgame/internal/config"
)

// New opens cfg.Log.Path for appending and returns a logger writing JSON lines
// to it, plus the file to close on exit. An empty path disables logging.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(f, level), f, nil
}

// NewWriter returns a timestamped logger on w at level.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", "quizgame").Logger()
}

func parseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
