package mirror

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `
-------------------------------------------------------------------------------

               Total    Copied   Skipped  Mismatch    FAILED    Extras
    Dirs :         3         1         2         0         0         0
   Files :        10        10         0         0         0         0
   Bytes :    1.2 mb    1.2 mb         0         0         0         0
   Times :   0:00:01   0:00:01                       0:00:00   0:00:00
`

func writeUTF16LE(t *testing.T, path, text string) {
	t.Helper()
	units := utf16.Encode([]rune(text))
	buf := []byte{0xFF, 0xFE}
	for _, u := range units {
		buf = append(buf, byte(u), byte(u>>8))
	}
	require.NoError(t, os.WriteFile(path, buf, 0644))
}

func TestReadSummary_ANSI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.log")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0644))

	lines, err := ReadSummary(path)
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Files :")
}

func TestReadSummary_UTF16(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.log")
	writeUTF16LE(t, path, sampleLog)

	lines, err := ReadSummary(path)
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Dirs :")
}

func TestReadSummary_MissingFile(t *testing.T) {
	_, err := ReadSummary(filepath.Join(t.TempDir(), "nope.log"))
	assert.Error(t, err)
}
