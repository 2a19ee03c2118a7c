// Package logger holds the process-wide structured logger.
// Log lines go to stdout and, once Init succeeds, to a log file as well,
// so a failed batch can be diagnosed without re-running.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	log  *slog.Logger
	once sync.Once
)

// Init initializes the global logger, teeing output into the given file.
// A file that cannot be opened falls back to stdout-only logging.
func Init(logFile string) {
	once.Do(func() {
		var w io.Writer = os.Stdout
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				w = io.MultiWriter(os.Stdout, f)
			}
		}
		log = slog.New(slog.NewTextHandler(w, nil))
		slog.SetDefault(log)
	})
}

// L returns the global logger instance.
func L() *slog.Logger {
	if log == nil {
		Init("")
	}
	return log
}

// Info is a shorthand for L().Info.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Error is a shorthand for L().Error.
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}
