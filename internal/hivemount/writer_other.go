//go:build !windows

package hivemount

import "errors"

type unsupportedWriter struct{}

// NewKeyWriter returns the platform KeyWriter. On non-Windows builds every
// write fails; the session logic itself stays portable for testing.
func NewKeyWriter() KeyWriter {
	return unsupportedWriter{}
}

var errUnsupported = errors.New("hivemount: registry writes require windows")

func (unsupportedWriter) SetString(alias, keyPath, name, value string) error {
	return errUnsupported
}

func (unsupportedWriter) SetDWord(alias, keyPath, name string, value uint32) error {
	return errUnsupported
}
