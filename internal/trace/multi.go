package trace

import "go.uber.org/multierr"

// MultiTracer fans out trace events to several tracers.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers, level: level}
}

// Emit hands every tracer its own copy: tracers stamp Seq in place.
func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		cp := *ev
		tr.Emit(&cp)
	}
}

// Flush flushes every tracer and returns all errors combined.
func (t *MultiTracer) Flush() error {
	var err error
	for _, tr := range t.tracers {
		err = multierr.Append(err, tr.Flush())
	}
	return err
}

// Close closes every tracer and returns all errors combined.
func (t *MultiTracer) Close() error {
	var err error
	for _, tr := range t.tracers {
		err = multierr.Append(err, tr.Close())
	}
	return err
}

// Ring returns the first ring tracer, if any.
func (t *MultiTracer) Ring() *RingTracer {
	for _, tr := range t.tracers {
		if r, ok := tr.(*RingTracer); ok {
			return r
		}
	}
	return nil
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }
