// Package installer runs silent software installs during staging.
package installer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/osdeploy/winstage/internal/execx"
)

// Reboot-required is a success for staging purposes; the task sequence
// reboots after the install phase anyway.
const exitRebootRequired = 3010

// Package describes one silent install.
type Package struct {
	Name string   `yaml:"name"`
	Path string   `yaml:"path"`
	Args []string `yaml:"args"`
}

// Step installs each package in order and records a success flag per
// package. A failed or missing package never stops the remaining installs.
type Step struct {
	Packages []Package
	Runner   execx.Runner
	Log      *slog.Logger

	// Results holds the per-package success flag after Run.
	Results map[string]bool
}

// Name implements deploy.Step.
func (s *Step) Name() string { return "install" }

// Run executes the installers sequentially. The returned error summarizes
// failed packages; callers treat it as non-fatal.
func (s *Step) Run(ctx context.Context) error {
	s.Results = make(map[string]bool, len(s.Packages))

	failed := 0
	for _, pkg := range s.Packages {
		ok := s.install(ctx, pkg)
		s.Results[pkg.Name] = ok
		if !ok {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d packages failed to install", failed, len(s.Packages))
	}
	return nil
}

func (s *Step) install(ctx context.Context, pkg Package) bool {
	if _, err := os.Stat(pkg.Path); err != nil {
		s.Log.Warn("installer not found, skipping", "package", pkg.Name, "path", pkg.Path)
		return false
	}

	s.Log.Info("installing package", "package", pkg.Name, "path", pkg.Path)
	code, err := s.Runner.Run(ctx, pkg.Path, pkg.Args...)
	if err != nil {
		s.Log.Error("installer failed to start", "package", pkg.Name, "err", err)
		return false
	}

	switch code {
	case 0:
		s.Log.Info("package installed", "package", pkg.Name)
		return true
	case exitRebootRequired:
		s.Log.Info("package installed, reboot required", "package", pkg.Name)
		return true
	default:
		s.Log.Error("installer reported failure", "package", pkg.Name, "exitCode", code)
		return false
	}
}
