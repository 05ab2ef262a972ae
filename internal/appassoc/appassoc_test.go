package appassoc_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osdeploy/winstage/internal/appassoc"
	"github.com/osdeploy/winstage/internal/logging"
)

func TestRun_NoFileConfigured(t *testing.T) {
	step := &appassoc.Step{Log: logging.Discard()}
	assert.NoError(t, step.Run(context.Background()))
}

func TestRun_FileMissing(t *testing.T) {
	step := &appassoc.Step{
		AssocFile: filepath.Join(t.TempDir(), "assoc.xml"),
		Log:       logging.Discard(),
	}
	assert.NoError(t, step.Run(context.Background()))
}

func TestRun_FileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assoc.xml")
	require.NoError(t, os.WriteFile(path, []byte("<DefaultAssociations/>"), 0644))

	step := &appassoc.Step{AssocFile: path, Log: logging.Discard()}
	assert.NoError(t, step.Run(context.Background()))
}
