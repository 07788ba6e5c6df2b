package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Tracer receives trace events. Implementations are goroutine-safe.
type Tracer interface {
	Emit(ev *Event)
	// Flush writes buffered events out.
	Flush() error
	// Close flushes and releases the output.
	Close() error
	Level() Level
	Enabled() bool
}

// StorageMode determines how events are stored.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // immediate write
	ModeRing                          // circular buffer
	ModeBoth                          // stream + ring
)

var modeNames = [...]string{
	ModeStream: "stream",
	ModeRing:   "ring",
	ModeBoth:   "both",
}

func (m StorageMode) String() string {
	if m > 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode converts a flag value to StorageMode; "" means stream.
func ParseMode(s string) (StorageMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeStream, nil
	}
	for m, name := range modeNames {
		if name != "" && name == s {
			return StorageMode(m), nil
		}
	}
	return ModeStream, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
}

// Config holds tracer configuration.
type Config struct {
	Level  Level
	Mode   StorageMode
	Format Format // FormatAuto picks NDJSON for *.json and *.ndjson paths
	// Output wins over Path when set.
	Output io.Writer
	// Path of the stream output, "" or "-" for stderr.
	Path     string
	RingSize int // 4096 when zero
	// FS opens Path; the OS file system when nil.
	FS afero.Fs
}

// New builds the tracer described by cfg. LevelOff gives Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	switch cfg.Mode {
	case ModeRing:
		return NewRingTracer(cfg.RingSize, cfg.Level), nil
	case ModeStream, ModeBoth, 0:
	default:
		return nil, fmt.Errorf("unknown storage mode: %v", cfg.Mode)
	}

	w, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}
	stream := NewStreamTracer(w, cfg.Level, cfg.format())
	if cfg.Mode != ModeBoth {
		return stream, nil
	}
	return NewMultiTracer(cfg.Level, stream, NewRingTracer(cfg.RingSize, cfg.Level)), nil
}

func (cfg Config) format() Format {
	if cfg.Format != FormatAuto {
		return cfg.Format
	}
	switch filepath.Ext(cfg.Path) {
	case ".json", ".ndjson":
		return FormatNDJSON
	default:
		return FormatText
	}
}

func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.Path == "" || cfg.Path == "-" {
		return os.Stderr, nil
	}
	fsys := cfg.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	f, err := fsys.Create(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// RingOf returns the ring buffer behind t, nil when there is none.
func RingOf(t Tracer) *RingTracer {
	switch v := t.(type) {
	case *RingTracer:
		return v
	case *MultiTracer:
		return v.Ring()
	default:
		return nil
	}
}
