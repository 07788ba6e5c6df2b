package trace

import (
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

func nextSeq() uint64 { return seqCounter.Add(1) }

// Span tracks one begin/end pair. A disabled span is safe to use and
// does nothing.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	scope    Scope
	file     string
	name     string
	started  time.Time
	extra    map[string]string
}

// Begin starts a span under parent (0 for a top level span) and emits
// KindSpanBegin.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	return begin(t, scope, name, "", parent)
}

func begin(t Tracer, scope Scope, name, file string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{tracer: Nop}
	}
	s := &Span{
		tracer:   t,
		id:       spanCounter.Add(1),
		parentID: parent,
		scope:    scope,
		file:     file,
		name:     name,
		started:  time.Now(),
	}
	t.Emit(&Event{
		Time:     s.started,
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   s.id,
		ParentID: parent,
		File:     file,
		Name:     name,
	})
	return s
}

// ID returns the span ID, 0 for a disabled span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// End emits KindSpanEnd with the elapsed time and returns it.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.id == 0 {
		return 0
	}
	now := time.Now()
	dur := now.Sub(s.started)
	s.tracer.Emit(&Event{
		Time:     now,
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		File:     s.file,
		Name:     s.name,
		Detail:   detail,
		Dur:      dur,
		Extra:    s.extra,
	})
	return dur
}

// WithExtra adds a key-value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.id == 0 {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// Point emits an instant event.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}
