package ast

// Clone returns a detached deep copy of n. Spacing raws (before, after,
// between, semicolon) are dropped so the copy takes the formatting of the
// place it is inserted into; source is shared.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Root:
		c := NewRoot()
		copyBase(c, v)
		cloneChildren(&c.container, &v.container)
		return c
	case *Rule:
		c := NewRule(v.Selector)
		copyBase(c, v)
		cloneChildren(&c.container, &v.container)
		return c
	case *AtRule:
		c := NewAtRule(v.Name, v.Params)
		copyBase(c, v)
		if v.HasBody() {
			c.OpenBody()
			cloneChildren(&c.container, &v.container)
		}
		return c
	case *Decl:
		c := NewDecl(v.Prop, v.Value)
		c.Important = v.Important
		copyBase(c, v)
		return c
	case *Comment:
		c := NewComment(v.Text)
		copyBase(c, v)
		return c
	}
	return nil
}

func copyBase(dst, src Node) {
	db, sb := dst.nodeBase(), src.nodeBase()
	db.raws = sb.raws.cloneStripped()
	db.source = sb.source
}

func cloneChildren(dst, src *container) {
	for _, child := range src.nodes {
		c := Clone(child)
		c.nodeBase().parent = dst.owner
		dst.nodes = append(dst.nodes, c)
	}
}

// apply sets the non-empty fields of d that fit n.
func (d Descriptor) apply(n Node) {
	switch v := n.(type) {
	case *Rule:
		if d.Selector != "" {
			v.Selector = d.Selector
		}
	case *AtRule:
		if d.Name != "" {
			v.Name = d.Name
		}
		if d.Params != "" {
			v.Params = d.Params
		}
	case *Decl:
		if d.Prop != "" {
			v.Prop = d.Prop
		}
		if d.Value != "" {
			v.Value = d.Value
		}
		if d.Important {
			v.Important = true
		}
	case *Comment:
		if d.Text != "" {
			v.Text = d.Text
		}
	}
	for name, value := range d.Raws {
		n.Raws().Set(name, value)
	}
}

func cloneWith[T Node](n T, overrides []Descriptor) T {
	c := Clone(n).(T)
	for _, d := range overrides {
		d.apply(c)
	}
	return c
}

func (r *Root) Clone(overrides ...Descriptor) *Root       { return cloneWith(r, overrides) }
func (r *Rule) Clone(overrides ...Descriptor) *Rule       { return cloneWith(r, overrides) }
func (a *AtRule) Clone(overrides ...Descriptor) *AtRule   { return cloneWith(a, overrides) }
func (d *Decl) Clone(overrides ...Descriptor) *Decl       { return cloneWith(d, overrides) }
func (c *Comment) Clone(overrides ...Descriptor) *Comment { return cloneWith(c, overrides) }

// CloneBefore inserts a clone right before r and returns it.
func (r *Rule) CloneBefore(overrides ...Descriptor) (*Rule, error) {
	c := r.Clone(overrides...)
	return c, insertNear(r, c, false)
}

// CloneAfter inserts a clone right after r and returns it.
func (r *Rule) CloneAfter(overrides ...Descriptor) (*Rule, error) {
	c := r.Clone(overrides...)
	return c, insertNear(r, c, true)
}

func (a *AtRule) CloneBefore(overrides ...Descriptor) (*AtRule, error) {
	c := a.Clone(overrides...)
	return c, insertNear(a, c, false)
}

func (a *AtRule) CloneAfter(overrides ...Descriptor) (*AtRule, error) {
	c := a.Clone(overrides...)
	return c, insertNear(a, c, true)
}

func (d *Decl) CloneBefore(overrides ...Descriptor) (*Decl, error) {
	c := d.Clone(overrides...)
	return c, insertNear(d, c, false)
}

func (d *Decl) CloneAfter(overrides ...Descriptor) (*Decl, error) {
	c := d.Clone(overrides...)
	return c, insertNear(d, c, true)
}

func (c *Comment) CloneBefore(overrides ...Descriptor) (*Comment, error) {
	cl := c.Clone(overrides...)
	return cl, insertNear(c, cl, false)
}

func (c *Comment) CloneAfter(overrides ...Descriptor) (*Comment, error) {
	cl := c.Clone(overrides...)
	return cl, insertNear(c, cl, true)
}
