package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/morishitter/postcss/internal/driver"
)

func TestApplyTracksFiles(t *testing.T) {
	m := NewProgressModel("postcss", []string{"a.css", "b.css", "c.css"}, nil).(*progressModel)

	m.apply(driver.Event{File: "a.css", Stage: driver.StageProcess, Status: driver.StatusWorking})
	if got := m.rows[0].state; got != stateProcessing {
		t.Fatalf("state = %s, want processing", got)
	}
	m.apply(driver.Event{File: "a.css", Stage: driver.StageWrite, Status: driver.StatusDone, Elapsed: 3 * time.Millisecond})
	m.apply(driver.Event{File: "b.css", Stage: driver.StageProcess, Status: driver.StatusError, Err: errors.New("b.css:1:1: Unclosed block\nmore")})
	m.apply(driver.Event{File: "c.css", Stage: driver.StageProcess, Status: driver.StatusCached})
	m.apply(driver.Event{File: "c.css", Stage: driver.StageWrite, Status: driver.StatusDone})
	m.apply(driver.Event{File: "unknown.css", Stage: driver.StageRead, Status: driver.StatusWorking})

	if m.finished() != 3 {
		t.Fatalf("finished = %d, want 3", m.finished())
	}
	m.closed = true
	view := m.View()
	for _, want := range []string{"(3/3)", "a.css", "3ms", "Unclosed block", "cached", "1 written, 1 from cache, 1 failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "more") {
		t.Errorf("view should show only the first line of an error:\n%s", view)
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		stage  driver.Stage
		status driver.Status
		want   string
	}{
		{driver.StageRead, driver.StatusQueued, "queued"},
		{driver.StageRead, driver.StatusWorking, "reading"},
		{driver.StageProcess, driver.StatusCached, "cached"},
		{driver.StageWrite, driver.StatusWorking, "writing"},
		{driver.StageWrite, driver.StatusDone, "done"},
		{driver.StageRead, driver.StatusError, "error"},
		{driver.Stage("other"), driver.StatusWorking, ""},
	}
	for _, tt := range tests {
		if got := stateOf(tt.stage, tt.status).String(); got != tt.want {
			t.Errorf("stateOf(%s, %s) = %q, want %q", tt.stage, tt.status, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	if got := fit("styles/very/long/name.css", 10); got != "styles/..." {
		t.Errorf("fit = %q", got)
	}
	if got := fit("короткий", 20); got != "короткий" {
		t.Errorf("fit = %q", got)
	}
	if got := fit("стили.css", 2); got != "ст" {
		t.Errorf("fit = %q", got)
	}
}
