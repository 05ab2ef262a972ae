// Package config loads the winstage deployment configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osdeploy/winstage/internal/installer"
)

// DefaultPath is where the task sequence drops the staging config.
const DefaultPath = `C:\ProgramData\winstage\winstage.yaml`

// MirrorConfig configures the folder mirror step.
type MirrorConfig struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// BrandingConfig configures the default-user branding step.
type BrandingConfig struct {
	HivePath      string `yaml:"hivePath"`
	WallpaperPath string `yaml:"wallpaperPath"`
}

// Config is the full deployment configuration.
type Config struct {
	LogDir     string              `yaml:"logDir"`
	Mirror     MirrorConfig        `yaml:"mirror"`
	Branding   BrandingConfig      `yaml:"branding"`
	Installers []installer.Package `yaml:"installers"`
	AssocFile  string              `yaml:"defaultAppAssociations"`
}

// defaults fills in the values the task sequence rarely overrides.
func defaults() Config {
	return Config{
		LogDir: `C:\ProgramData\winstage\logs`,
		Branding: BrandingConfig{
			HivePath:      `C:\Users\Default\NTUSER.DAT`,
			WallpaperPath: `C:\Windows\Web\Wallpaper\corp\wallpaper.jpg`,
		},
	}
}

// Load reads and validates the YAML config at path. Missing optional fields
// take their defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the fields the sequence cannot run without.
func (c *Config) Validate() error {
	if c.LogDir == "" {
		return fmt.Errorf("logDir must be set")
	}
	if c.Mirror.Source == "" || c.Mirror.Dest == "" {
		return fmt.Errorf("mirror.source and mirror.dest must be set")
	}
	if c.Branding.HivePath == "" {
		return fmt.Errorf("branding.hivePath must be set")
	}
	for i, pkg := range c.Installers {
		if pkg.Name == "" || pkg.Path == "" {
			return fmt.Errorf("installers[%d]: name and path must be set", i)
		}
	}
	return nil
}
