package diag

import (
	"fmt"
	"strings"
)

// NoFile is printed in place of the file name for inputs without a path.
const NoFile = "<css input>"

// Position is a point in some css text.
type Position struct {
	File   string
	Line   int
	Column int
	Source string
}

// SyntaxError is a positioned error in css text.
type SyntaxError struct {
	Code   Code
	Reason string
	File   string
	Line   int // 1-based, 0 when the error has no position
	Column int // 1-based
	Source string

	// Generated is set when Line/Column were mapped back to an original
	// file through a previous source map; it keeps the position inside the
	// text that was actually parsed.
	Generated *Position
}

// New returns an error with no position.
func New(code Code, reason string) *SyntaxError {
	return &SyntaxError{Code: code, Reason: reason}
}

// At returns an error positioned inside source.
func At(code Code, reason, file string, line, column int, source string) *SyntaxError {
	return &SyntaxError{
		Code:   code,
		Reason: reason,
		File:   file,
		Line:   line,
		Column: column,
		Source: source,
	}
}

// HasPosition reports whether Line/Column are set.
func (e *SyntaxError) HasPosition() bool {
	return e.Line > 0
}

// Message returns "file:line:column: reason".
func (e *SyntaxError) Message() string {
	file := e.File
	if file == "" {
		file = NoFile
	}
	if !e.HasPosition() {
		return fmt.Sprintf("%s: %s", file, e.Reason)
	}
	return fmt.Sprintf("%s:%d:%d: %s", file, e.Line, e.Column, e.Reason)
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return e.Message()
}

// ClearSource drops the text so rendering falls back to the message only.
func (e *SyntaxError) ClearSource() {
	e.Source = ""
}

// Render returns the message and, on the next line, the highlighted snippet.
func (e *SyntaxError) Render(color bool) string {
	var sb strings.Builder
	sb.WriteString(e.Message())
	if e.Source != "" && e.HasPosition() {
		sb.WriteByte('\n')
		sb.WriteString(e.Highlight(color))
	}
	return sb.String()
}

// String renders the error without colors.
func (e *SyntaxError) String() string {
	return e.Render(false)
}
