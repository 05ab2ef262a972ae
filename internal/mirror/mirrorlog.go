package mirror

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// summaryFields are the row labels of robocopy's closing summary table.
var summaryFields = []string{"Dirs :", "Files :", "Bytes :", "Times :"}

// ReadSummary extracts the summary rows from a robocopy log file. Robocopy
// writes UTF-16LE when invoked with /UNICODE and the console code page
// otherwise, so the decoder sniffs the BOM.
func ReadSummary(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mirror log %s: %w", path, err)
	}

	text, err := decodeLogBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode mirror log %s: %w", path, err)
	}

	var lines []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		for _, field := range summaryFields {
			if strings.HasPrefix(line, field) {
				lines = append(lines, line)
				break
			}
		}
	}
	return lines, sc.Err()
}

func decodeLogBytes(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}
	return string(raw), nil
}
