// Package testutil provides fakes for the external collaborators so
// deployment logic can be tested without running reg.exe or robocopy.
package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/osdeploy/winstage/internal/hivemount"
)

// Call records one invocation seen by a FakeRunner.
type Call struct {
	Name string
	Args []string
}

// Command returns the full command line of the call for assertions.
func (c Call) Command() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// FakeRunner scripts exit codes per command prefix and records every call.
type FakeRunner struct {
	// ExitCodes maps a command prefix (e.g. "reg load", "robocopy") to the
	// exit code to return. Unmatched commands return DefaultCode.
	ExitCodes map[string]int
	// Errs maps a command prefix to a start error.
	Errs map[string]error
	// DefaultCode is returned when no prefix matches.
	DefaultCode int

	Calls []Call
}

// Run implements the runner interface used across the deployment steps.
func (f *FakeRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	call := Call{Name: name, Args: args}
	f.Calls = append(f.Calls, call)

	cmd := call.Command()
	for prefix, err := range f.Errs {
		if strings.HasPrefix(cmd, prefix) {
			return -1, err
		}
	}
	for prefix, code := range f.ExitCodes {
		if strings.HasPrefix(cmd, prefix) {
			return code, nil
		}
	}
	return f.DefaultCode, nil
}

// CallsWithPrefix returns the recorded calls whose command line starts with
// the given prefix.
func (f *FakeRunner) CallsWithPrefix(prefix string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if strings.HasPrefix(c.Command(), prefix) {
			out = append(out, c)
		}
	}
	return out
}

// FakeKeyWriter stores writes in a map keyed by alias\key\name.
type FakeKeyWriter struct {
	// FailOn makes writes to the given value name fail.
	FailOn string

	Values map[string]any
	Writes int
}

// NewFakeKeyWriter returns an empty fake writer.
func NewFakeKeyWriter() *FakeKeyWriter {
	return &FakeKeyWriter{Values: make(map[string]any)}
}

func (f *FakeKeyWriter) set(alias, keyPath, name string, value any) error {
	if f.FailOn != "" && name == f.FailOn {
		return fmt.Errorf("injected write failure for %s", name)
	}
	f.Writes++
	f.Values[alias+`\`+keyPath+`\`+name] = value
	return nil
}

// SetString implements hivemount.KeyWriter.
func (f *FakeKeyWriter) SetString(alias, keyPath, name, value string) error {
	return f.set(alias, keyPath, name, value)
}

// SetDWord implements hivemount.KeyWriter.
func (f *FakeKeyWriter) SetDWord(alias, keyPath, name string, value uint32) error {
	return f.set(alias, keyPath, name, value)
}

var _ hivemount.KeyWriter = (*FakeKeyWriter)(nil)
