package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/osdeploy/winstage/internal/appassoc"
	"github.com/osdeploy/winstage/internal/branding"
	"github.com/osdeploy/winstage/internal/deploy"
	"github.com/osdeploy/winstage/internal/installer"
	"github.com/osdeploy/winstage/internal/mirror"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full staging sequence",
		Long: `The run command executes every staging step in order: folder mirror,
default-user branding, silent installs, and app-association configuration.
A failed step is logged and the sequence continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}

			seq := deploy.NewSequence(e.log,
				mirrorStep(e),
				brandingStep(e),
				installStep(e),
				assocStep(e),
			)
			seq.Run(context.Background())
			return nil
		},
	}
}

func mirrorStep(e *env) *mirror.Step {
	return &mirror.Step{
		Job: mirror.Job{
			Source:  e.cfg.Mirror.Source,
			Dest:    e.cfg.Mirror.Dest,
			LogPath: filepath.Join(e.cfg.LogDir, "mirror.log"),
		},
		Runner: e.runner,
		Log:    e.log,
	}
}

func brandingStep(e *env) *branding.Step {
	return &branding.Step{
		HivePath:      e.cfg.Branding.HivePath,
		WallpaperPath: e.cfg.Branding.WallpaperPath,
		Session:       e.session,
		Log:           e.log,
	}
}

func installStep(e *env) *installer.Step {
	return &installer.Step{
		Packages: e.cfg.Installers,
		Runner:   e.runner,
		Log:      e.log,
	}
}

func assocStep(e *env) *appassoc.Step {
	return &appassoc.Step{
		AssocFile: e.cfg.AssocFile,
		Log:       e.log,
	}
}
