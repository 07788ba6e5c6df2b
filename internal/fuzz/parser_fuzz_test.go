package fuzztests

import (
	"errors"
	"testing"
	"time"

	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/parser"
	"github.com/morishitter/postcss/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		in := newInput(clampInput(input))
		root, err := parser.Parse(in)
		if err != nil {
			var se *diag.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error %v is not a SyntaxError", err)
			}
			return
		}
		if err := testkit.CheckTree(root, in.CSS); err != nil {
			t.Fatalf("%v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang fails when a single parse runs longer than parseTimeout.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// глубокая вложенность и длинные цепочки без закрывающих скобок
	f.Add([]byte("a { b { c { d { e { } } } } }"))
	f.Add([]byte("@a @b @c @d {"))
	f.Add([]byte("a { b: ((((((((c }"))
	f.Add([]byte(";;;;;;;;;;;;;;;;;;;;"))

	f.Fuzz(func(t *testing.T, input []byte) {
		in := newInput(clampInput(input))
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = parser.Parse(in)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
