package observ

import (
	"fmt"
	"io"
	"time"
)

// Timer collects the stages of one processing run in the order they ran:
// parse, every plugin, stringify.
type Timer struct {
	phases []phase
}

type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]phase, 0, 8)} }

// Start opens a phase; calling the returned func closes it with a note.
// A nil Timer measures nothing.
func (t *Timer) Start(name string) (stop func(note string)) {
	if t == nil {
		return func(string) {}
	}
	idx := len(t.phases)
	t.phases = append(t.phases, phase{name: name, start: time.Now()})
	return func(note string) {
		p := &t.phases[idx]
		p.dur = time.Since(p.start)
		p.note = note
	}
}

// Measure runs fn as a named phase noted "failed" when fn errs.
func (t *Timer) Measure(name string, fn func() error) error {
	stop := t.Start(name)
	err := fn()
	if err != nil {
		stop("failed")
	} else {
		stop("")
	}
	return err
}

// PhaseReport is the serializable form of a phase.
type PhaseReport struct {
	Name       string  `json:"name" msgpack:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms"`
	Note       string  `json:"note,omitempty" msgpack:"note,omitempty"`
}

// Report is what a Result and the disk cache keep of a Timer.
type Report struct {
	TotalMS float64       `json:"total_ms" msgpack:"total_ms"`
	Phases  []PhaseReport `json:"phases" msgpack:"phases"`
}

// Report snapshots the phases; TotalMS is their sum.
func (t *Timer) Report() Report {
	if t == nil || len(t.phases) == 0 {
		return Report{}
	}
	r := Report{Phases: make([]PhaseReport, 0, len(t.phases))}
	for _, p := range t.phases {
		ms := millis(p.dur)
		r.TotalMS += ms
		r.Phases = append(r.Phases, PhaseReport{Name: p.name, DurationMS: ms, Note: p.note})
	}
	return r
}

// Slowest returns the phase that took longest, false for an empty report.
func (r Report) Slowest() (PhaseReport, bool) {
	if len(r.Phases) == 0 {
		return PhaseReport{}, false
	}
	best := r.Phases[0]
	for _, p := range r.Phases[1:] {
		if p.DurationMS > best.DurationMS {
			best = p
		}
	}
	return best, true
}

// Print writes the report as an indented table under title:
//
//	a.css 1.2 ms
//	  parse          0.8 ms  67%
//	  stringify      0.4 ms  33%
func (r Report) Print(w io.Writer, title string) {
	fmt.Fprintf(w, "%s %.1f ms\n", title, r.TotalMS)
	for _, p := range r.Phases {
		share := 0.0
		if r.TotalMS > 0 {
			share = p.DurationMS / r.TotalMS * 100
		}
		fmt.Fprintf(w, "  %-14s %5.1f ms %3.0f%%", p.Name, p.DurationMS, share)
		if p.Note != "" {
			fmt.Fprintf(w, "  (%s)", p.Note)
		}
		fmt.Fprintln(w)
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
