package token_test

import (
	"testing"

	"github.com/morishitter/postcss/internal/source"
	"github.com/morishitter/postcss/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsTrivia(t *testing.T) {
	for _, k := range []token.Kind{token.Space, token.Comment} {
		if !tok(k).IsTrivia() {
			t.Fatalf("%v should be trivia", k)
		}
	}
	non := []token.Kind{token.Word, token.String, token.AtWord, token.Brackets, token.Semicolon}
	for _, k := range non {
		if tok(k).IsTrivia() {
			t.Fatalf("%v must NOT be trivia", k)
		}
	}
}

func TestIsPunct(t *testing.T) {
	punct := []token.Kind{
		token.LBrace, token.RBrace, token.Colon, token.Semicolon,
		token.LParen, token.RParen, token.LBracket, token.RBracket,
	}
	for _, k := range punct {
		if !k.IsPunct() {
			t.Fatalf("%v should be punct", k)
		}
	}
	for _, k := range []token.Kind{token.Word, token.Brackets, token.EOF} {
		if k.IsPunct() {
			t.Fatalf("%v must NOT be punct", k)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.AtWord:    "at-word",
		token.Brackets:  "brackets",
		token.LBrace:    "{",
		token.Kind(200): "kind(?)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
