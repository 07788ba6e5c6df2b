package driver

import (
	"github.com/spf13/afero"

	"github.com/morishitter/postcss/internal/lexer"
	"github.com/morishitter/postcss/internal/source"
	"github.com/morishitter/postcss/internal/sourcemap"
	"github.com/morishitter/postcss/internal/token"
)

type TokenizeResult struct {
	Input  *source.Input
	Tokens []token.Token
}

// Tokenize reads path and splits it into tokens. A lexer error (unclosed
// quote, comment or bracket) is returned together with the input.
func Tokenize(fsys afero.Fs, path string) (*TokenizeResult, error) {
	css, err := ReadInput(fsys, path)
	if err != nil {
		return nil, err
	}
	in := source.NewInput(css, source.Options{From: path, Prev: previousOff()})
	tokens, err := lexer.Tokenize(in)
	return &TokenizeResult{Input: in, Tokens: tokens}, err
}

func previousOff() sourcemap.PrevOptions { return sourcemap.PrevOptions{Disabled: true} }
