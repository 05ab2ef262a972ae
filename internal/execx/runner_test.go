package execx

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_ToolNotFound(t *testing.T) {
	code, err := ExecRunner{}.Run(context.Background(), "winstage-no-such-tool")

	assert.Equal(t, -1, code)
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestExecRunner_ExitCodes(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	code, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "exit 0")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = ExecRunner{}.Run(context.Background(), "sh", "-c", "exit 3")
	require.NoError(t, err, "a non-zero exit is a code, not an error")
	assert.Equal(t, 3, code)
}
