// Package branding stages the default-user profile: desktop wallpaper and
// touch-keyboard visibility, written into the profile's registry hive
// through two independent mount sessions.
package branding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/osdeploy/winstage/internal/hivemount"
)

// Mount aliases for the two hive sessions. Each session owns its alias
// exclusively for its duration.
const (
	wallpaperAlias     = "StageWallpaper"
	touchKeyboardAlias = "StageTouchKeyboard"
)

// Step applies the branding write sets to the default-user hive.
type Step struct {
	// HivePath is the on-disk hive of the profile to brand, typically
	// C:\Users\Default\NTUSER.DAT.
	HivePath string
	// WallpaperPath is the staged wallpaper image path written into the
	// profile's desktop settings.
	WallpaperPath string

	Session *hivemount.Session
	Log     *slog.Logger
}

// Name implements deploy.Step.
func (s *Step) Name() string { return "branding" }

// Run mounts the default-user hive twice: once for the wallpaper settings,
// once for the touch-keyboard visibility flag. The two sessions are
// independent; a failure in one does not stop the other. A missing hive
// file skips both sessions with a warning and no error.
func (s *Step) Run(ctx context.Context) error {
	if _, err := os.Stat(s.HivePath); err != nil {
		s.Log.Warn("default-user hive not found, skipping branding", "hive", s.HivePath)
		return nil
	}

	var errs []error

	if err := s.Session.WithMountedHive(ctx, s.HivePath, wallpaperAlias, s.wallpaperWrites()); err != nil {
		s.Log.Error("wallpaper branding failed", "err", err)
		errs = append(errs, fmt.Errorf("wallpaper: %w", err))
	}

	if err := s.Session.WithMountedHive(ctx, s.HivePath, touchKeyboardAlias, touchKeyboardWrites()); err != nil {
		s.Log.Error("touch keyboard branding failed", "err", err)
		errs = append(errs, fmt.Errorf("touch keyboard: %w", err))
	}

	return errors.Join(errs...)
}

// wallpaperWrites sets the wallpaper image with fill scaling, untiled.
func (s *Step) wallpaperWrites() []hivemount.Write {
	const desktopKey = `Control Panel\Desktop`
	return []hivemount.Write{
		hivemount.String(desktopKey, "Wallpaper", s.WallpaperPath),
		hivemount.String(desktopKey, "TileWallpaper", "0"),
		hivemount.String(desktopKey, "WallpaperStyle", "10"),
	}
}

// touchKeyboardWrites makes the touch-keyboard icon visible in the taskbar.
func touchKeyboardWrites() []hivemount.Write {
	return []hivemount.Write{
		hivemount.DWord(`SOFTWARE\Microsoft\TabletTip\1.7`, "TipbandDesiredVisibility", 1),
	}
}
