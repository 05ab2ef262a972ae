// Package logging builds the per-invocation deployment log: a timestamped
// file in the staging log directory, mirrored to standard output.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logPrefix     = "winstage-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Options configures logger construction.
type Options struct {
	LogDir  string     // Directory for log files. Required.
	Level   slog.Level // Minimum log level. Default: LevelInfo.
	Console bool       // Mirror log lines to stdout in addition to the file.
}

// New creates a logger writing to a fresh timestamped log file under
// opts.LogDir. The returned path is the log file created for this invocation.
// Callers own the logger and pass it explicitly to each operation; there is
// no package-global logger.
func New(opts Options) (*slog.Logger, string, error) {
	if opts.LogDir == "" {
		return nil, "", fmt.Errorf("logging: log directory not set")
	}

	if err := os.MkdirAll(opts.LogDir, 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create log directory %s: %w", opts.LogDir, err)
	}

	// Clean up old logs (best-effort, ignore errors)
	cleanOldLogs(opts.LogDir)

	path := filepath.Join(opts.LogDir, logPrefix+time.Now().Format("20060102-150405")+logSuffix)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	var w io.Writer = f
	if opts.Console {
		w = io.MultiWriter(f, os.Stdout)
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: opts.Level}))
	return logger, path, nil
}

// Discard returns a logger that drops everything. Used as a default so
// operations never have to nil-check their logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// Parse timestamp from filename: winstage-20240105-131500.log
		stamp := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logTime, err := time.Parse("20060102-150405", stamp)
		if err != nil {
			continue
		}

		if logTime.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}
