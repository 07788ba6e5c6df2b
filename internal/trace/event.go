package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1 // начало операции
	KindSpanEnd                   // конец операции, Dur заполнен
	KindPoint                     // мгновенное событие
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event. Coarser scopes have lower values,
// so a Level lets through every scope up to some bound.
type Scope uint8

const (
	// ScopeDriver covers a whole CLI command or a batch of files.
	ScopeDriver Scope = iota + 1
	// ScopeFile covers processing of one input file.
	ScopeFile
	// ScopeStage covers a pipeline stage (parse, stringify, map).
	ScopeStage
	// ScopePlugin covers a single plugin invocation.
	ScopePlugin
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopeFile:   "file",
	ScopeStage:  "stage",
	ScopePlugin: "plugin",
}

func (s Scope) String() string {
	if s > 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one record written by a Tracer.
type Event struct {
	Time     time.Time
	Seq      uint64 // assigned by the tracer that stores the event
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for top level spans
	// File is the css input the event belongs to, empty outside of a file.
	File   string
	Name   string // "parse", "stringify", plugin name
	Detail string
	// Dur is set on KindSpanEnd.
	Dur   time.Duration
	Extra map[string]string
}
