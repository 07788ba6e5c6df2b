// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/format"
	"github.com/morishitter/postcss/internal/source"
	"github.com/morishitter/postcss/internal/token"
)

// CheckTokens verifies that tokens cover in.CSS exactly:
// 1) every span is non-empty and starts where the previous one ended
// 2) every token text equals the bytes under its span
// 3) the last span ends at the end of the text
func CheckTokens(in *source.Input, tokens []token.Token) error {
	if in == nil {
		return fmt.Errorf("nil input")
	}
	limit, err := safecast.Conv[uint32](len(in.CSS))
	if err != nil {
		return err
	}
	var off uint32
	for i, tok := range tokens {
		if tok.Span.Start != off {
			return fmt.Errorf("token %d (%s) starts at %d, previous ended at %d", i, tok.Kind, tok.Span.Start, off)
		}
		if tok.Span.End <= tok.Span.Start || tok.Span.End > limit {
			return fmt.Errorf("token %d (%s) has bad span %d..%d", i, tok.Kind, tok.Span.Start, tok.Span.End)
		}
		if got := tok.Span.Text(in.CSS); got != tok.Text {
			return fmt.Errorf("token %d text %q, source has %q", i, tok.Text, got)
		}
		off = tok.Span.End
	}
	if off != limit {
		return fmt.Errorf("tokens stop at %d of %d bytes", off, limit)
	}
	return nil
}

// CheckTree verifies a freshly parsed tree:
// 1) every child points back at its container
// 2) source ranges are ordered and nested inside the parent range
// 3) printing the tree gives back css
func CheckTree(root *ast.Root, css string) error {
	if root == nil {
		return fmt.Errorf("nil root")
	}
	if err := checkChildren(root); err != nil {
		return err
	}
	if got := format.String(root); got != css {
		return fmt.Errorf("round trip mismatch:\n got %q\nwant %q", got, css)
	}
	return nil
}

func checkChildren(c ast.Container) error {
	outer := c.Source()
	for i, n := range c.Nodes() {
		if n.Parent() != c {
			return fmt.Errorf("%s #%d: wrong parent", n.Kind(), i)
		}
		src := n.Source()
		if src == nil {
			return fmt.Errorf("%s #%d: no source", n.Kind(), i)
		}
		if src.End != (ast.Position{}) && before(src.End, src.Start) {
			return fmt.Errorf("%s #%d: ends at %v before start %v", n.Kind(), i, src.End, src.Start)
		}
		if outer != nil {
			if before(src.Start, outer.Start) {
				return fmt.Errorf("%s #%d: starts at %v before parent %v", n.Kind(), i, src.Start, outer.Start)
			}
			if outer.End != (ast.Position{}) && src.End != (ast.Position{}) && before(outer.End, src.End) {
				return fmt.Errorf("%s #%d: ends at %v after parent %v", n.Kind(), i, src.End, outer.End)
			}
		}
		if inner, ok := n.(ast.Container); ok {
			if err := checkChildren(inner); err != nil {
				return err
			}
		}
	}
	return nil
}

func before(a, b ast.Position) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}
