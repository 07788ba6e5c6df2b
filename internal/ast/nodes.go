package ast

// Root is the top of a parsed file.
type Root struct {
	base
	container
}

// Rule is a selector with a block.
type Rule struct {
	base
	container
	Selector string
}

// AtRule is '@name params' with an optional block. An at-rule without a
// block has no children; appending to it opens one.
type AtRule struct {
	base
	container
	Name   string
	Params string
}

// Decl is 'prop: value'.
type Decl struct {
	base
	Prop      string
	Value     string
	Important bool
}

// Comment is '/* text */'; the spaces around text live in raws left/right.
type Comment struct {
	base
	Text string
}

func NewRoot() *Root {
	r := &Root{}
	r.base.init(r)
	r.container.init(r, true)
	return r
}

func NewRule(selector string) *Rule {
	r := &Rule{Selector: selector}
	r.base.init(r)
	r.container.init(r, true)
	return r
}

// NewAtRule returns an at-rule without a block.
func NewAtRule(name, params string) *AtRule {
	a := &AtRule{Name: name, Params: params}
	a.base.init(a)
	a.container.init(a, false)
	return a
}

func NewDecl(prop, value string) *Decl {
	d := &Decl{Prop: prop, Value: value}
	d.base.init(d)
	return d
}

func NewComment(text string) *Comment {
	c := &Comment{Text: text}
	c.base.init(c)
	return c
}

func (*Root) Kind() Kind    { return KindRoot }
func (*Rule) Kind() Kind    { return KindRule }
func (*AtRule) Kind() Kind  { return KindAtRule }
func (*Decl) Kind() Kind    { return KindDecl }
func (*Comment) Kind() Kind { return KindComment }

// HasBody reports whether the at-rule has a block.
func (a *AtRule) HasBody() bool { return a.nodes != nil }

// OpenBody gives the at-rule an empty block if it has none.
func (a *AtRule) OpenBody() {
	if a.nodes == nil {
		a.nodes = []Node{}
	}
}

// HasChildren reports whether n is a container with a block. At-rules
// without a block are leaves.
func HasChildren(n Node) bool {
	switch v := n.(type) {
	case *Root, *Rule:
		return true
	case *AtRule:
		return v.HasBody()
	}
	return false
}
