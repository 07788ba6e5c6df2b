package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the last N events in memory for a dump after a failure.
type RingTracer struct {
	mu     sync.RWMutex
	events []Event
	next   int  // позиция следующей записи
	full   bool // буфер уже сделал круг
	level  Level
}

// NewRingTracer creates a ring of capacity events, 4096 when not positive.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.events[t.next] = *ev
	t.events[t.next].Seq = nextSeq()
	t.next++
	if t.next == len(t.events) {
		t.next, t.full = 0, true
	}
}

// Snapshot returns the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.full {
		return append([]Event(nil), t.events[:t.next]...)
	}
	out := make([]Event, 0, len(t.events))
	out = append(out, t.events[t.next:]...)
	return append(out, t.events[:t.next]...)
}

// Dump writes the stored events of file, or all of them when file is "".
func (t *RingTracer) Dump(w io.Writer, format Format, file string) error {
	for _, ev := range t.Snapshot() {
		if file != "" && ev.File != file {
			continue
		}
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
