package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/osdeploy/winstage/internal/execx"
	"github.com/osdeploy/winstage/internal/hivemount"
	"github.com/osdeploy/winstage/internal/logging"
	"github.com/osdeploy/winstage/pkg/config"
)

var (
	// Global flags
	cfgPath string
	logDir  string
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "winstage",
	Short: "Stage a Windows deployment: mirror, brand, install",
	Long: `winstage runs the imaging-time staging steps of a Windows deployment:
a robust folder mirror, default-user registry branding (wallpaper and
touch-keyboard visibility), silent software installs, and default-app
association configuration.

Each step logs to a per-invocation log file and a failed step never stops
the remaining steps.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		StringVarP(&cfgPath, "config", "c", config.DefaultPath, "Deployment config file")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Override the log directory from the config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Do not mirror log lines to the console")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env bundles everything a subcommand needs to run steps.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	logPath string
	runner  execx.Runner
	session *hivemount.Session
}

// setup loads the config and builds the per-invocation logger and
// collaborators. Every subcommand starts here.
func setup() (*env, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if logDir != "" {
		cfg.LogDir = logDir
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	log, logPath, err := logging.New(logging.Options{
		LogDir:  cfg.LogDir,
		Level:   level,
		Console: !quiet,
	})
	if err != nil {
		return nil, err
	}

	runner := execx.ExecRunner{}
	return &env{
		cfg:     cfg,
		log:     log,
		logPath: logPath,
		runner:  runner,
		session: hivemount.NewSession(runner, hivemount.NewKeyWriter(), log),
	}, nil
}
