package ast

import (
	"fmt"
	"maps"
	"slices"
)

// Insertable is anything container mutators accept: a Node, a Descriptor,
// or Nodes. A *Root is flattened into its children.
type Insertable interface {
	insertable()
}

// Nodes is a list of nodes inserted in order.
type Nodes []Node

func (Nodes) insertable() {}

// Descriptor describes a node by its fields:
//
//	{Selector}            → Rule
//	{Name, Params}        → AtRule
//	{Prop, Value, Important} → Decl
//	{Text}                → Comment
//
// Raws sets raw slots (before, between, ...) on the new node.
type Descriptor struct {
	Prop      string
	Value     string
	Important bool
	Selector  string
	Name      string
	Params    string
	Text      string
	Raws      map[string]string
}

func (Descriptor) insertable() {}

// Node converts the descriptor. Exactly one of Prop, Selector, Name, Text
// must be set, and fields of other kinds must be empty.
func (d Descriptor) Node() (Node, error) {
	kind, err := d.kind()
	if err != nil {
		return nil, err
	}
	var n Node
	switch kind {
	case KindDecl:
		decl := NewDecl(d.Prop, d.Value)
		decl.Important = d.Important
		n = decl
	case KindRule:
		n = NewRule(d.Selector)
	case KindAtRule:
		n = NewAtRule(d.Name, d.Params)
	case KindComment:
		n = NewComment(d.Text)
	}
	for _, name := range slices.Sorted(maps.Keys(d.Raws)) {
		n.Raws().Set(name, d.Raws[name])
	}
	return n, nil
}

func (d Descriptor) kind() (Kind, error) {
	var kinds []Kind
	if d.Prop != "" {
		kinds = append(kinds, KindDecl)
	}
	if d.Selector != "" {
		kinds = append(kinds, KindRule)
	}
	if d.Name != "" {
		kinds = append(kinds, KindAtRule)
	}
	if d.Text != "" {
		kinds = append(kinds, KindComment)
	}
	switch len(kinds) {
	case 0:
		return KindInvalid, ErrUnknownDescriptor
	case 1:
	default:
		return KindInvalid, fmt.Errorf("%w: fields of %v", ErrAmbiguousDescriptor, kinds)
	}

	k := kinds[0]
	stray := (k != KindDecl && (d.Value != "" || d.Important)) ||
		(k != KindAtRule && d.Params != "")
	if stray {
		return KindInvalid, fmt.Errorf("%w: %v with foreign fields", ErrAmbiguousDescriptor, k)
	}
	return k, nil
}

// expand flattens one Insertable into nodes. Slices are copied so that
// moving nodes out of their container does not shift the list.
func expand(it Insertable) ([]Node, error) {
	switch v := it.(type) {
	case *Root:
		return slices.Clone(v.nodes), nil
	case Node:
		return []Node{v}, nil
	case Descriptor:
		n, err := v.Node()
		if err != nil {
			return nil, err
		}
		return []Node{n}, nil
	case *Descriptor:
		return expand(*v)
	case Nodes:
		var out []Node
		for _, n := range v {
			sub, err := expand(n)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownDescriptor, it)
}
