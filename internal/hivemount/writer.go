package hivemount

// ValueKind enumerates the registry value kinds the deployment writes.
type ValueKind int

const (
	// KindString is a REG_SZ value.
	KindString ValueKind = iota
	// KindDWord is a 32-bit REG_DWORD value.
	KindDWord
)

// Write describes one key/value mutation under a mounted hive root. Key is
// relative to the mount alias; missing key segments are created. Applying
// the same Write twice yields the same end state as applying it once.
type Write struct {
	Key   string
	Name  string
	Kind  ValueKind
	Str   string
	DWord uint32
}

// String builds a REG_SZ write.
func String(key, name, value string) Write {
	return Write{Key: key, Name: name, Kind: KindString, Str: value}
}

// DWord builds a REG_DWORD write.
func DWord(key, name string, value uint32) Write {
	return Write{Key: key, Name: name, Kind: KindDWord, DWord: value}
}

// KeyWriter applies value writes beneath a mount alias in the live registry.
// Implementations create the key path (including intermediate segments) when
// it does not exist and overwrite existing values unconditionally.
type KeyWriter interface {
	SetString(alias, keyPath, name, value string) error
	SetDWord(alias, keyPath, name string, value uint32) error
}
