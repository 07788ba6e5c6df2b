package ast

import (
	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/source"
)

// Position is a 1-based line/column inside an Input.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Source is where a parsed node came from.
type Source struct {
	Input *source.Input
	Start Position
	// End is the last byte of the node; zero for nodes still open.
	End Position
}

// Node is one of *Root, *Rule, *AtRule, *Decl, *Comment.
type Node interface {
	Insertable

	Kind() Kind
	// Parent returns the enclosing container, nil for detached nodes.
	Parent() Container
	Raws() *Raws
	Source() *Source
	SetSource(src *Source)

	// Root returns the top of the tree the node is in.
	Root() Node
	Next() Node
	Prev() Node
	RemoveSelf() error
	// ReplaceWith inserts items in place of the node and detaches it.
	ReplaceWith(items ...Insertable) error
	// Error builds a positioned error pointing at the node.
	Error(reason string) *diag.SyntaxError

	nodeBase() *base
}

type base struct {
	self   Node
	parent Container
	raws   Raws
	source *Source
}

func (b *base) init(self Node) { b.self = self }

func (b *base) nodeBase() *base { return b }

func (*base) insertable() {}

func (b *base) Parent() Container { return b.parent }

func (b *base) Raws() *Raws { return &b.raws }

func (b *base) Source() *Source { return b.source }

func (b *base) SetSource(src *Source) { b.source = src }

func (b *base) Root() Node {
	n := b.self
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

func (b *base) Next() Node {
	if b.parent == nil {
		return nil
	}
	i := b.parent.Index(b.self)
	if i < 0 || i+1 >= b.parent.Len() {
		return nil
	}
	return b.parent.At(i + 1)
}

func (b *base) Prev() Node {
	if b.parent == nil {
		return nil
	}
	i := b.parent.Index(b.self)
	if i <= 0 {
		return nil
	}
	return b.parent.At(i - 1)
}

func (b *base) RemoveSelf() error {
	if b.parent == nil {
		return ErrNoParent
	}
	return b.parent.Remove(b.self)
}

func (b *base) ReplaceWith(items ...Insertable) error {
	if b.parent == nil {
		return ErrNoParent
	}
	if err := b.parent.InsertBeforeNode(b.self, items...); err != nil {
		return err
	}
	return b.RemoveSelf()
}

func (b *base) Error(reason string) *diag.SyntaxError {
	if b.source == nil || b.source.Input == nil {
		return diag.New(diag.UserError, reason)
	}
	return b.source.Input.Error(diag.UserError, reason, b.source.Start.Line, b.source.Start.Column)
}

// insertNear puts clone next to n in n's parent.
func insertNear(n, clone Node, after bool) error {
	p := n.Parent()
	if p == nil {
		return ErrNoParent
	}
	if after {
		return p.InsertAfterNode(n, clone)
	}
	return p.InsertBeforeNode(n, clone)
}

// isInside reports whether n is c or one of c's ancestors.
func isInside(c Container, n Node) bool {
	for cur := Node(c); cur != nil; {
		if cur == n {
			return true
		}
		p := cur.Parent()
		if p == nil {
			return false
		}
		cur = p
	}
	return false
}
