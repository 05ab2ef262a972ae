// Package mirror wraps the robocopy directory-mirroring tool: it builds the
// fixed flag set, runs the tool to completion, and classifies the bitmask
// exit code into a deployment outcome.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const toolName = "robocopy"

var (
	// ErrSourceMissing indicates the source directory does not exist or is
	// not readable; the external tool is never invoked in this case.
	ErrSourceMissing = errors.New("mirror: source missing")

	// ErrDestinationUnwritable indicates the destination's parent directory
	// could not be created.
	ErrDestinationUnwritable = errors.New("mirror: destination unwritable")
)

// Job describes one mirror invocation. Immutable after construction.
type Job struct {
	Source  string
	Dest    string
	LogPath string
}

// flags is the fixed robocopy flag set: recurse including empty directories,
// copy data/attributes/timestamps/ACLs (not owner or auditing), retry twice
// with a 5 second wait, and keep the console quiet in favor of the log file.
var flags = []string{
	"/E",
	"/COPY:DATS",
	"/R:2",
	"/W:5",
	"/NP",
	"/NFL",
	"/NDL",
	"/NJH",
	"/NJS",
}

// Runner is the subset of execx.Runner the mirror operation needs.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// Run executes the mirror job and returns the classified outcome.
//
// All tool outcomes, including copy failures, are returned as a Class rather
// than an error; the error return covers only the cases where the tool was
// not run (missing source, unwritable destination, binary not found).
func Run(ctx context.Context, runner Runner, log *slog.Logger, job Job) (Class, error) {
	info, err := os.Stat(job.Source)
	if err != nil || !info.IsDir() {
		log.Warn("mirror source missing, skipping copy", "source", job.Source)
		return NoChange, fmt.Errorf("%w: %s", ErrSourceMissing, job.Source)
	}

	if err := os.MkdirAll(filepath.Dir(job.Dest), 0755); err != nil {
		return NoChange, fmt.Errorf("%w: %s: %v", ErrDestinationUnwritable, job.Dest, err)
	}

	args := make([]string, 0, len(flags)+3)
	args = append(args, job.Source, job.Dest)
	args = append(args, flags...)
	if job.LogPath != "" {
		args = append(args, "/LOG:"+job.LogPath)
	}

	code, err := runner.Run(ctx, toolName, args...)
	if err != nil {
		return NoChange, fmt.Errorf("mirror failed to start: %w", err)
	}

	class := Classify(code)
	switch class.Severity() {
	case SeverityFailure:
		log.Error("mirror completed with failures",
			"source", job.Source, "dest", job.Dest, "exitCode", code, "result", class.String())
	case SeverityWarning:
		log.Warn("mirror completed with mismatches",
			"source", job.Source, "dest", job.Dest, "exitCode", code, "result", class.String())
	default:
		log.Info("mirror completed",
			"source", job.Source, "dest", job.Dest, "exitCode", code, "result", class.String())
	}

	if job.LogPath != "" {
		if summary, err := ReadSummary(job.LogPath); err == nil && len(summary) > 0 {
			log.Info("mirror summary", "lines", summary)
		}
	}

	return class, nil
}
