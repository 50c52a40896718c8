// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gnames/ibupdater/pkg/config"
	"github.com/google/uuid"
)

// runID marks all log records of one process run, so runs can be told
// apart in an appended log file.
var runID = uuid.NewString()

// logFile is the log file opened by the last Init, nil if logs do not go
// to a file.
var logFile *os.File

// RunID returns the identifier attached to every log record of this run.
func RunID() string {
	return runID
}

// Init initializes the global slog logger with the given configuration.
// Writes to logPath if destination is "file".
// If append is true, appends to existing log file; otherwise creates fresh file.
func Init(logPath string, cfg config.LogConfig, append bool) error {
	var writer io.Writer
	var file *os.File

	// Determine output destination
	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		var err error
		if append {
			// Append to existing log file (preserve previous logs)
			file, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		} else {
			// Create fresh log file (truncate if exists)
			file, err = os.Create(logPath)
		}
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}

	slog.SetDefault(New(writer, cfg))

	// The previous file is closed only after the default logger stopped
	// using it.
	if logFile != nil {
		logFile.Close()
	}
	logFile = file
	return nil
}

// New creates a logger writing to w with level and format from cfg.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)

	// Create handler based on format
	var handler slog.Handler
	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	case "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	case "tint":
		// Colored human-readable output. charmbracelet levels share
		// numeric values with slog levels.
		handler = log.NewWithOptions(w, log.Options{
			Level:           log.Level(level),
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		})
	default:
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler).With("run_id", runID)
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
