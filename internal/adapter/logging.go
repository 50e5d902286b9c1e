package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// SetupLogger opens the log file named by cfg and returns a JSON logger
// writing to it, plus the file to close on exit. The terminal belongs to the
// TUI, so records never go to stdout. An empty file name discards logging.
func SetupLogger(cfg *LoggingConfig) (*slog.Logger, io.Closer, error) {
	logPath, err := ExpandPath(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	if logPath == "" {
		return NullLogger(), io.NopCloser(nil), nil
	}

	// The log names titles from the collection; keep it private like the database
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	})
	return slog.New(handler).With("pid", os.Getpid()), logFile, nil
}

// parseLogLevel accepts slog level names ("debug", "warn", "info+2") and
// "warning". Anything unparseable logs at INFO.
func parseLogLevel(level string) slog.Level {
	name := strings.TrimSpace(level)
	if strings.EqualFold(name, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NullLogger returns a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
