package observ

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	if err := timer.Measure("parse", func() error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	boom := errors.New("boom")
	if err := timer.Measure("plugin:0", func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Measure must return fn error, got %v", err)
	}
	stop := timer.Start("stringify")
	stop("")

	report := timer.Report()
	if len(report.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(report.Phases))
	}
	if report.Phases[1].Note != "failed" || report.Phases[0].Note != "" {
		t.Errorf("unexpected notes %+v", report.Phases)
	}
	sum := 0.0
	for _, p := range report.Phases {
		sum += p.DurationMS
	}
	if sum != report.TotalMS {
		t.Errorf("total %v is not the sum %v", report.TotalMS, sum)
	}

	var buf bytes.Buffer
	report.Print(&buf, "a.css")
	out := buf.String()
	if !strings.HasPrefix(out, "a.css ") || !strings.Contains(out, "plugin:0") || !strings.Contains(out, "(failed)") {
		t.Errorf("unexpected table:\n%s", out)
	}
}

func TestSlowest(t *testing.T) {
	if _, ok := (Report{}).Slowest(); ok {
		t.Fatal("empty report has no slowest phase")
	}
	r := Report{Phases: []PhaseReport{{Name: "parse", DurationMS: 1}, {Name: "autoprefixer", DurationMS: 3}, {Name: "stringify", DurationMS: 2}}}
	if p, _ := r.Slowest(); p.Name != "autoprefixer" {
		t.Fatalf("slowest = %s", p.Name)
	}
}

func TestNilTimer(t *testing.T) {
	var timer *Timer
	timer.Start("x")("")
	if err := timer.Measure("y", func() error { return nil }); err != nil {
		t.Fatal(err)
	}
	if r := timer.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer should report nothing")
	}
}
