package branding_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osdeploy/winstage/internal/branding"
	"github.com/osdeploy/winstage/internal/hivemount"
	"github.com/osdeploy/winstage/internal/logging"
	"github.com/osdeploy/winstage/internal/testutil"
)

func newStep(t *testing.T, runner *testutil.FakeRunner, writer hivemount.KeyWriter, hivePath string) *branding.Step {
	t.Helper()
	log := logging.Discard()
	return &branding.Step{
		HivePath:      hivePath,
		WallpaperPath: `C:\Windows\Web\Wallpaper\corp\wallpaper.jpg`,
		Session:       hivemount.NewSession(runner, writer, log),
		Log:           log,
	}
}

func newHiveFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "NTUSER.DAT")
	require.NoError(t, os.WriteFile(path, []byte("regf-stand-in"), 0644))
	return path
}

func TestRun_HiveMissingSkipsBothSessions(t *testing.T) {
	runner := &testutil.FakeRunner{}
	step := newStep(t, runner, testutil.NewFakeKeyWriter(), filepath.Join(t.TempDir(), "gone.dat"))

	err := step.Run(context.Background())

	assert.NoError(t, err, "a missing hive is a warning, not a failure")
	assert.Empty(t, runner.Calls, "neither mount may be attempted")
}

func TestRun_AppliesBothWriteSets(t *testing.T) {
	runner := &testutil.FakeRunner{ExitCodes: map[string]int{"reg query": 1}}
	writer := testutil.NewFakeKeyWriter()
	step := newStep(t, runner, writer, newHiveFile(t))

	require.NoError(t, step.Run(context.Background()))

	// Two independent sessions: two loads, two unloads.
	assert.Len(t, runner.CallsWithPrefix("reg load"), 2)
	assert.Len(t, runner.CallsWithPrefix("reg unload"), 2)

	assert.Equal(t, `C:\Windows\Web\Wallpaper\corp\wallpaper.jpg`,
		writer.Values[`StageWallpaper\Control Panel\Desktop\Wallpaper`])
	assert.Equal(t, "0", writer.Values[`StageWallpaper\Control Panel\Desktop\TileWallpaper`])
	assert.Equal(t, "10", writer.Values[`StageWallpaper\Control Panel\Desktop\WallpaperStyle`])
	assert.Equal(t, uint32(1),
		writer.Values[`StageTouchKeyboard\SOFTWARE\Microsoft\TabletTip\1.7\TipbandDesiredVisibility`])
}

func TestRun_WallpaperFailureDoesNotStopTouchKeyboard(t *testing.T) {
	runner := &testutil.FakeRunner{ExitCodes: map[string]int{"reg query": 1}}
	writer := testutil.NewFakeKeyWriter()
	writer.FailOn = "Wallpaper"
	step := newStep(t, runner, writer, newHiveFile(t))

	err := step.Run(context.Background())

	assert.ErrorIs(t, err, hivemount.ErrWriteFailed)
	assert.Equal(t, uint32(1),
		writer.Values[`StageTouchKeyboard\SOFTWARE\Microsoft\TabletTip\1.7\TipbandDesiredVisibility`],
		"the touch keyboard session still runs after a wallpaper failure")
	assert.Len(t, runner.CallsWithPrefix("reg unload"), 2)
}
