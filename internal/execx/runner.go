// Package execx abstracts external process invocation behind a narrow
// interface so deployment steps can be exercised in tests without running
// real OS tools.
package execx

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Runner executes an external command and reports its exit code.
//
// A non-zero exit code is not an error: several of the tools winstage drives
// (robocopy in particular) encode their result in the exit code, and callers
// classify it themselves. The error return is reserved for failures to run
// the process at all (binary not found, context cancelled before start).
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// ErrToolNotFound indicates the external binary could not be located.
var ErrToolNotFound = errors.New("execx: tool not found")

// ExecRunner runs commands with os/exec. Output is discarded; the tools we
// invoke write their own log files.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	if _, err := exec.LookPath(name); err != nil {
		return -1, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to run %s: %w", name, err)
}
