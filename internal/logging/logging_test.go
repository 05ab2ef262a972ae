package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	dir := t.TempDir()

	log, path, err := New(Options{LogDir: dir})
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	log.Info("staging started", "step", "mirror")
	log.Warn("mirror source missing")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "level=INFO")
	assert.Contains(t, content, "staging started")
	assert.Contains(t, content, "level=WARN")
}

func TestNew_RequiresLogDir(t *testing.T) {
	_, _, err := New(Options{})
	assert.Error(t, err)
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, logPrefix+time.Now().AddDate(0, 0, -60).Format("20060102-150405")+logSuffix)
	recent := filepath.Join(dir, logPrefix+time.Now().Format("20060102-150405")+logSuffix)
	other := filepath.Join(dir, "unrelated.log")
	for _, p := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}

	cleanOldLogs(dir)

	assert.NoFileExists(t, old)
	assert.FileExists(t, recent)
	assert.FileExists(t, other, "files without the winstage prefix are left alone")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Info("dropped")
	})
}
