// Package appassoc will import a default-app-associations definition into
// the staged image. The import itself is not implemented yet; the step
// validates its input and records that it ran.
package appassoc

import (
	"context"
	"log/slog"
	"os"
)

// Step is the settings-configuration placeholder.
type Step struct {
	// AssocFile is a DISM default-app-associations XML export.
	AssocFile string
	Log       *slog.Logger
}

// Name implements deploy.Step.
func (s *Step) Name() string { return "app-associations" }

// Run checks the association file and returns without applying anything.
//
// TODO: apply the associations via DISM /Import-DefaultAppAssociations once
// the association export is finalized.
func (s *Step) Run(ctx context.Context) error {
	if s.AssocFile == "" {
		s.Log.Info("no app-association file configured, nothing to do")
		return nil
	}
	if _, err := os.Stat(s.AssocFile); err != nil {
		s.Log.Warn("app-association file not found", "path", s.AssocFile)
		return nil
	}
	s.Log.Info("app-association import not implemented, skipping", "path", s.AssocFile)
	return nil
}
