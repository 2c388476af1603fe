// Package logging sets up the structured logger shared by every doze
// component. Records are written as JSON to a size-rotated file so that the
// terminal output of commands stays clean.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/doze/internal/osutil"
)

// Rotation limits for the log file.
const (
	MaxSizeMB  = 10
	MaxBackups = 3
	MaxAgeDays = 28
)

// Options controls where and how much is logged.
type Options struct {
	// Writer overrides the rotating file. Used in tests.
	Writer io.Writer
	// Path is the log file. Ignored when Writer is set.
	Path  string
	Level slog.Level
}

// New returns a JSON logger and a function that flushes and closes the
// underlying file.
func New(opts Options) (*slog.Logger, func() error, error) {
	closeFn := func() error { return nil }

	w := opts.Writer
	if w == nil {
		if err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission); err != nil {
			return nil, nil, err
		}

		rotator := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    MaxSizeMB,
			MaxBackups: MaxBackups,
			MaxAge:     MaxAgeDays,
		}

		w = rotator
		closeFn = rotator.Close
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: opts.Level,
	})

	return slog.New(handler), closeFn, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
