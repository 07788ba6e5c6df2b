package driver

import "time"

// Stage is a step of processing one file.
type Stage string

const (
	// StageRead covers reading and decoding the input.
	StageRead Stage = "read"
	// StageProcess covers parsing, plugins and stringify.
	StageProcess Stage = "process"
	// StageWrite covers writing css and map files.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stage is running.
	StatusWorking Status = "working"
	// StatusCached indicates the result came from the disk cache.
	StatusCached Status = "cached"
	// StatusDone indicates the file is finished.
	StatusDone Status = "done"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: events arrive from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events to a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- ev
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(ev Event) { f(ev) }

func emit(sink ProgressSink, ev Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(ev)
}
