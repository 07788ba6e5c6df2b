package fuzztests

import (
	"testing"

	"github.com/morishitter/postcss/internal/lexer"
	"github.com/morishitter/postcss/internal/source"
	"github.com/morishitter/postcss/internal/sourcemap"
	"github.com/morishitter/postcss/internal/testkit"
)

func newInput(input []byte) *source.Input {
	return source.NewInput(string(input), source.Options{Prev: sourcemap.PrevOptions{Disabled: true}})
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		in := newInput(clampInput(input))
		tokens, err := lexer.Tokenize(in)
		if err != nil {
			return
		}
		if err := testkit.CheckTokens(in, tokens); err != nil {
			t.Fatalf("%v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}
