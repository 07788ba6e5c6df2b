package trace

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// StreamTracer writes every event as it comes. Output to a file is
// buffered until Flush; stderr and stdout are written through.
type StreamTracer struct {
	mu     sync.Mutex
	dst    io.Writer
	buf    *bufio.Writer // nil for standard streams
	level  Level
	format Format
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	t := &StreamTracer{dst: w, level: level, format: format}
	if w != os.Stderr && w != os.Stdout {
		t.buf = bufio.NewWriter(w)
	}
	return t
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	ev.Seq = nextSeq()
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	defer t.mu.Unlock()
	// ошибка записи трассы не должна ронять обработку
	if t.buf != nil {
		_, _ = t.buf.Write(data)
		return
	}
	_, _ = t.dst.Write(data)
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.buf == nil {
		return nil
	}
	return t.buf.Flush()
}

// Close flushes and closes the writer unless it is a standard stream.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if t.buf == nil {
		return nil
	}
	if closer, ok := t.dst.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
