package trace

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatAuto   Format = iota // choose by output path
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// FormatEvent renders one event, newline included.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return formatNDJSON(ev)
	}
	return formatText(ev)
}

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id,omitempty"`
	ParentID uint64            `json:"parent_id,omitempty"`
	File     string            `json:"file,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	DurMS    float64           `json:"dur_ms,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func formatNDJSON(ev *Event) []byte {
	data, err := json.Marshal(jsonEvent{
		Time:     ev.Time.Format(time.RFC3339Nano),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		File:     ev.File,
		Name:     ev.Name,
		Detail:   ev.Detail,
		DurMS:    float64(ev.Dur) / float64(time.Millisecond),
		Extra:    ev.Extra,
	})
	if err != nil {
		return nil
	}
	return append(data, '\n')
}

var kindMarks = map[Kind]string{
	KindSpanBegin: "→ ",
	KindSpanEnd:   "← ",
	KindPoint:     "• ",
}

// formatText renders
//
//	[15:04:05.000]   ← stage parse a.css 0.42ms (detail) {k=v}
func formatText(ev *Event) []byte {
	var sb strings.Builder
	sb.WriteString(ev.Time.Format("[15:04:05.000] "))
	if ev.ParentID > 0 {
		sb.WriteString("  ")
	}
	sb.WriteString(kindMarks[ev.Kind])
	sb.WriteString(ev.Scope.String())
	sb.WriteByte(' ')
	sb.WriteString(ev.Name)
	if ev.File != "" {
		sb.WriteByte(' ')
		sb.WriteString(ev.File)
	}
	if ev.Kind == KindSpanEnd {
		fmt.Fprintf(&sb, " %.2fms", float64(ev.Dur)/float64(time.Millisecond))
	}
	if ev.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", ev.Detail)
	}
	if len(ev.Extra) > 0 {
		sb.WriteString(" {")
		for i, k := range slices.Sorted(maps.Keys(ev.Extra)) {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k + "=" + ev.Extra[k])
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
