package format

import (
	"strings"
)

// Writer accumulates output and tracks the position of its end.
type Writer struct {
	buf    strings.Builder
	line   int // 1-based
	column int // 1-based, в байтах
}

// NewWriter creates a writer positioned at 1:1.
func NewWriter() *Writer {
	return &Writer{line: 1, column: 1}
}

// WriteString appends s and advances the position.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.buf.WriteString(s)
	if n := strings.Count(s, "\n"); n > 0 {
		w.line += n
		w.column = len(s) - strings.LastIndexByte(s, '\n')
	} else {
		w.column += len(s)
	}
}

// Line returns the line the next byte will be written to.
func (w *Writer) Line() int { return w.line }

// Column returns the 1-based column the next byte will be written to.
func (w *Writer) Column() int { return w.column }

func (w *Writer) String() string { return w.buf.String() }

func (w *Writer) Len() int { return w.buf.Len() }
