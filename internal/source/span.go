package source

import "fmt"

// Span is a byte range [Start, End) of one Input.
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.Start >= s.End }

func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start
}

// Text cuts the span out of css; a span past the end of css is clamped.
func (s Span) Text(css string) string {
	n := uint32(len(css))
	start, end := min(s.Start, n), min(s.End, n)
	if start >= end {
		return ""
	}
	return css[start:end]
}

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Start, s.End) }
