package main

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/morishitter/postcss/internal/diag"
)

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// printError renders syntax errors with the offending line and a caret,
// everything else as a single line.
func printError(w io.Writer, err error, color bool) {
	for _, e := range multierr.Errors(err) {
		var se *diag.SyntaxError
		if errors.As(e, &se) {
			fmt.Fprintf(w, "CssSyntaxError: %s\n", se.Render(color))
			continue
		}
		fmt.Fprintf(w, "error: %v\n", e)
	}
}

// failedFiles is returned after per-file errors were already printed.
type failedFiles struct {
	count int
}

func (e *failedFiles) Error() string {
	if e.count == 1 {
		return "1 file failed"
	}
	return fmt.Sprintf("%d files failed", e.count)
}
