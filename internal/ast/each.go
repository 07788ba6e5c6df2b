package ast

import (
	"slices"
	"strings"
)

// Visitor is called with a child and its index in its parent. Returning
// false stops the walk.
type Visitor func(n Node, i int) bool

// Each calls fn for every child. The position is a cursor that insertions
// and removals made by fn shift, so fn may mutate the container: children
// inserted before the cursor are not revisited, removed ones are not
// skipped over. Each returns false when fn stopped it.
func (c *container) Each(fn Visitor) bool {
	if c.cursors == nil {
		c.cursors = make(map[int]int)
	}
	c.lastEach++
	id := c.lastEach
	c.cursors[id] = 0
	defer delete(c.cursors, id)

	for c.cursors[id] < len(c.nodes) {
		i := c.cursors[id]
		if !fn(c.nodes[i], i) {
			return false
		}
		c.cursors[id]++
	}
	return true
}

// EachInside walks all descendants depth-first, pre-order.
func (c *container) EachInside(fn Visitor) bool {
	return c.Each(func(n Node, i int) bool {
		if !fn(n, i) {
			return false
		}
		if sub, ok := n.(Container); ok {
			return sub.EachInside(fn)
		}
		return true
	})
}

func (c *container) EachDecl(fn func(d *Decl, i int) bool) bool {
	return c.EachInside(func(n Node, i int) bool {
		if d, ok := n.(*Decl); ok {
			return fn(d, i)
		}
		return true
	})
}

// EachDeclProp is EachDecl limited to declarations of one property.
func (c *container) EachDeclProp(prop string, fn func(d *Decl, i int) bool) bool {
	return c.EachDecl(func(d *Decl, i int) bool {
		if d.Prop != prop {
			return true
		}
		return fn(d, i)
	})
}

func (c *container) EachRule(fn func(r *Rule, i int) bool) bool {
	return c.EachInside(func(n Node, i int) bool {
		if r, ok := n.(*Rule); ok {
			return fn(r, i)
		}
		return true
	})
}

func (c *container) EachAtRule(fn func(a *AtRule, i int) bool) bool {
	return c.EachInside(func(n Node, i int) bool {
		if a, ok := n.(*AtRule); ok {
			return fn(a, i)
		}
		return true
	})
}

func (c *container) EachComment(fn func(cm *Comment, i int) bool) bool {
	return c.EachInside(func(n Node, i int) bool {
		if cm, ok := n.(*Comment); ok {
			return fn(cm, i)
		}
		return true
	})
}

// Every reports whether pred holds for all children.
func (c *container) Every(pred func(n Node) bool) bool {
	for _, n := range c.nodes {
		if !pred(n) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for any child.
func (c *container) Some(pred func(n Node) bool) bool {
	for _, n := range c.nodes {
		if pred(n) {
			return true
		}
	}
	return false
}

// ReplaceValues replaces old with repl in every declaration value below c,
// only for the listed properties when props is not empty. It returns the
// number of declarations changed.
func (c *container) ReplaceValues(old, repl string, props ...string) int {
	changed := 0
	c.EachDecl(func(d *Decl, _ int) bool {
		if len(props) > 0 && !slices.Contains(props, d.Prop) {
			return true
		}
		if !strings.Contains(d.Value, old) {
			return true
		}
		d.Value = strings.ReplaceAll(d.Value, old, repl)
		changed++
		return true
	})
	return changed
}
