package token

import (
	"github.com/morishitter/postcss/internal/source"
)

// Token represents a single css token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool {
	return t.Kind == Space || t.Kind == Comment
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }
