package format

import (
	"github.com/morishitter/postcss/internal/ast"
)

// Part tells a Builder which piece of a node s is.
type Part uint8

const (
	// Whole is a leaf node, or text that belongs to no node (n is nil).
	Whole Part = iota
	// Start is a container's opening "selector {".
	Start
	// End is a container's closing "}".
	End
)

// Builder receives the output piece by piece.
type Builder func(s string, n ast.Node, part Part)

type printer struct {
	build    Builder
	opt      Options
	defaults map[string]string
	cache    map[ast.Node]map[string]string // кэш детекторов на корень дерева
	semis    map[ast.Node]bool
}

func newPrinter(b Builder, opt Options) *printer {
	opt = opt.withDefaults()
	return &printer{
		build:    b,
		opt:      opt,
		defaults: defaultRaws(opt),
		cache:    make(map[ast.Node]map[string]string),
		semis:    make(map[ast.Node]bool),
	}
}

// Stringify prints n through b. A non-root node is printed together with
// the spacing before it.
func Stringify(n ast.Node, b Builder, opt Options) {
	p := newPrinter(b, opt)
	if n.Kind() != ast.KindRoot {
		if before := p.raw(n, ast.RawBefore, ""); before != "" {
			p.build(before, nil, Whole)
		}
	}
	p.stringify(n, false)
}

// String prints n with default options.
func String(n ast.Node) string {
	return StringWith(n, Options{})
}

// StringWith prints n with opt.
func StringWith(n ast.Node, opt Options) string {
	w := NewWriter()
	Stringify(n, func(s string, _ ast.Node, _ Part) { w.WriteString(s) }, opt)
	return w.String()
}

// Raw returns the raw slot own of n, detecting it with detect when unset.
// This is what the printer uses for nodes built by hand.
func Raw(n ast.Node, own, detect string, opt Options) string {
	return newPrinter(nil, opt).raw(n, own, detect)
}

func (p *printer) stringify(n ast.Node, semicolon bool) {
	switch v := n.(type) {
	case *ast.Root:
		p.body(v)
		if after, ok := v.Raws().Get(ast.RawAfter); ok && after != "" {
			p.build(after, nil, Whole)
		}
	case *ast.Rule:
		p.block(v, ast.StringifyRaw(v, "selector"))
	case *ast.AtRule:
		p.atRule(v, semicolon)
	case *ast.Decl:
		p.decl(v, semicolon)
	case *ast.Comment:
		left := p.raw(v, ast.RawLeft, rawCommentLeft)
		right := p.raw(v, ast.RawRight, rawCommentRight)
		p.build("/*"+left+v.Text+right+"*/", v, Whole)
	}
}

func (p *printer) decl(d *ast.Decl, semicolon bool) {
	s := d.Prop + p.raw(d, ast.RawBetween, rawColon) + ast.StringifyRaw(d, "value")
	if d.Important {
		if imp, ok := d.Raws().Get(ast.RawImportant); ok && imp != "" {
			s += imp
		} else {
			s += " !important"
		}
	}
	if semicolon {
		s += ";"
	}
	p.build(s, d, Whole)
}

func (p *printer) atRule(a *ast.AtRule, semicolon bool) {
	name := "@" + a.Name
	params := ""
	if a.Params != "" {
		params = ast.StringifyRaw(a, "params")
	}
	if afterName, ok := a.Raws().Get(ast.RawAfterName); ok {
		name += afterName
	} else if params != "" {
		name += " "
	}
	if a.HasBody() {
		p.block(a, name+params)
		return
	}
	between, _ := a.Raws().Get(ast.RawBetween)
	end := between
	if semicolon {
		end += ";"
	}
	p.build(name+params+end, a, Whole)
}

func (p *printer) block(c ast.Container, start string) {
	between := p.raw(c, ast.RawBetween, rawBeforeOpen)
	p.build(start+between+"{", c, Start)
	var after string
	if c.Len() > 0 {
		p.body(c)
		after = p.raw(c, ast.RawAfter, "")
	} else {
		after = p.raw(c, ast.RawAfter, rawEmptyBody)
	}
	if after != "" {
		p.build(after, nil, Whole)
	}
	p.build("}", c, End)
}

// body prints children. Every child but the last non-comment one gets ';'
// (declarations and block-less at-rules); the last one gets it only when
// the container had it.
func (p *printer) body(c ast.Container) {
	nodes := c.Nodes()
	last := len(nodes) - 1
	for last > 0 && nodes[last].Kind() == ast.KindComment {
		last--
	}
	semicolon := p.semicolon(c)
	for i, child := range nodes {
		if before := p.raw(child, ast.RawBefore, ""); before != "" {
			p.build(before, nil, Whole)
		}
		p.stringify(child, last != i || semicolon)
	}
}
