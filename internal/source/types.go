package source

// Flags encodes metadata about an input.
type Flags uint8

const (
	// FlagVirtual marks css that did not come from a file (test, stdin, etc.).
	FlagVirtual Flags = 1 << iota // не с диска
	FlagHadBOM
	FlagMapped // есть предыдущая карта
)

// LineCol represents a human-readable position in css text.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, в байтах
}
