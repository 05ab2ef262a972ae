//go:build windows

package hivemount

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// registryWriter applies writes through the Windows registry API against a
// hive mounted under HKLM.
type registryWriter struct{}

// NewKeyWriter returns the platform KeyWriter.
func NewKeyWriter() KeyWriter {
	return registryWriter{}
}

func (registryWriter) openKey(alias, keyPath string) (registry.Key, error) {
	full := alias + `\` + keyPath
	k, _, err := registry.CreateKey(registry.LOCAL_MACHINE, full, registry.SET_VALUE)
	if err != nil {
		return 0, fmt.Errorf("failed to open HKLM\\%s: %w", full, err)
	}
	return k, nil
}

func (w registryWriter) SetString(alias, keyPath, name, value string) error {
	k, err := w.openKey(alias, keyPath)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.SetStringValue(name, value); err != nil {
		return fmt.Errorf("failed to set %s under HKLM\\%s\\%s: %w", name, alias, keyPath, err)
	}
	return nil
}

func (w registryWriter) SetDWord(alias, keyPath, name string, value uint32) error {
	k, err := w.openKey(alias, keyPath)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.SetDWordValue(name, value); err != nil {
		return fmt.Errorf("failed to set %s under HKLM\\%s\\%s: %w", name, alias, keyPath, err)
	}
	return nil
}
