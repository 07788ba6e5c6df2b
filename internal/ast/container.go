package ast

import (
	"fmt"
	"slices"
)

// Container is a node with children: *Root, *Rule or *AtRule.
type Container interface {
	Node

	Nodes() []Node
	Len() int
	At(i int) Node
	First() Node
	Last() Node
	Index(n Node) int

	Append(items ...Insertable) error
	Prepend(items ...Insertable) error
	InsertBefore(index int, items ...Insertable) error
	InsertAfter(index int, items ...Insertable) error
	InsertBeforeNode(ref Node, items ...Insertable) error
	InsertAfterNode(ref Node, items ...Insertable) error
	Remove(n Node) error
	RemoveAt(i int)
	RemoveAll()
	SetNodes(nodes []Node)

	Each(fn Visitor) bool
	EachInside(fn Visitor) bool
	EachDecl(fn func(d *Decl, i int) bool) bool
	EachDeclProp(prop string, fn func(d *Decl, i int) bool) bool
	EachRule(fn func(r *Rule, i int) bool) bool
	EachAtRule(fn func(a *AtRule, i int) bool) bool
	EachComment(fn func(c *Comment, i int) bool) bool
	Every(pred func(n Node) bool) bool
	Some(pred func(n Node) bool) bool
	ReplaceValues(old, repl string, props ...string) int

	containerImpl() *container
}

type insertMode uint8

const (
	modeAppend insertMode = iota
	modePrepend
	modeInsert
)

type container struct {
	owner    Container
	nodes    []Node
	cursors  map[int]int // курсоры активных Each: id → индекс
	lastEach int
}

func (c *container) init(owner Container, withBody bool) {
	c.owner = owner
	if withBody {
		c.nodes = []Node{}
	}
}

func (c *container) containerImpl() *container { return c }

// Nodes returns the live child slice; callers must not modify it.
func (c *container) Nodes() []Node { return c.nodes }

func (c *container) Len() int { return len(c.nodes) }

func (c *container) At(i int) Node { return c.nodes[i] }

func (c *container) First() Node {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[0]
}

func (c *container) Last() Node {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[len(c.nodes)-1]
}

// Index returns the position of n among the children, or -1.
func (c *container) Index(n Node) int {
	for i, child := range c.nodes {
		if child == n {
			return i
		}
	}
	return -1
}

func (c *container) Append(items ...Insertable) error {
	nodes, err := c.normalize(items, c.Last(), modeAppend)
	if err != nil {
		return err
	}
	c.nodes = append(c.ensureBody(), nodes...)
	return nil
}

func (c *container) Prepend(items ...Insertable) error {
	nodes, err := c.normalize(items, c.First(), modePrepend)
	if err != nil {
		return err
	}
	c.nodes = slices.Insert(c.ensureBody(), 0, nodes...)
	for id := range c.cursors {
		c.cursors[id] += len(nodes)
	}
	return nil
}

// InsertBefore inserts items before the child at index; index == Len appends.
func (c *container) InsertBefore(index int, items ...Insertable) error {
	if index < 0 || index > len(c.nodes) {
		panic(fmt.Errorf("ast: InsertBefore index %d out of range [0, %d]", index, len(c.nodes)))
	}
	var ref Node
	if index < len(c.nodes) {
		ref = c.nodes[index]
	}
	mode := modeInsert
	if index == 0 {
		mode = modePrepend
	}
	prev := slices.Clone(c.nodes)
	nodes, err := c.normalize(items, ref, mode)
	if err != nil {
		return err
	}
	c.insertAt(c.kept(prev[:index]), nodes)
	return nil
}

// InsertAfter inserts items after the child at index; index -1 prepends.
func (c *container) InsertAfter(index int, items ...Insertable) error {
	if index < -1 || index >= len(c.nodes) {
		panic(fmt.Errorf("ast: InsertAfter index %d out of range [-1, %d)", index, len(c.nodes)))
	}
	var ref Node
	if index >= 0 {
		ref = c.nodes[index]
	}
	prev := slices.Clone(c.nodes)
	nodes, err := c.normalize(items, ref, modeInsert)
	if err != nil {
		return err
	}
	c.insertAt(c.kept(prev[:index+1]), nodes)
	return nil
}

// kept counts the nodes of prev that are still children after normalize
// moved some of them out: this is where an insert next to prev lands.
func (c *container) kept(prev []Node) int {
	n := 0
	for _, p := range prev {
		if c.Index(p) >= 0 {
			n++
		}
	}
	return n
}

func (c *container) insertAt(at int, nodes []Node) {
	c.nodes = slices.Insert(c.ensureBody(), at, nodes...)
	for id, cur := range c.cursors {
		if at <= cur {
			c.cursors[id] = cur + len(nodes)
		}
	}
}

func (c *container) InsertBeforeNode(ref Node, items ...Insertable) error {
	i := c.Index(ref)
	if i < 0 {
		return ErrNotChild
	}
	return c.InsertBefore(i, items...)
}

func (c *container) InsertAfterNode(ref Node, items ...Insertable) error {
	i := c.Index(ref)
	if i < 0 {
		return ErrNotChild
	}
	return c.InsertAfter(i, items...)
}

func (c *container) Remove(n Node) error {
	i := c.Index(n)
	if i < 0 {
		return ErrNotChild
	}
	c.RemoveAt(i)
	return nil
}

// RemoveAt detaches the child at i. Active Each cursors at or after i move
// back by one so no child is skipped.
func (c *container) RemoveAt(i int) {
	c.nodes[i].nodeBase().parent = nil
	c.nodes = slices.Delete(c.nodes, i, i+1)
	for id, cur := range c.cursors {
		if cur >= i {
			c.cursors[id] = cur - 1
		}
	}
}

func (c *container) RemoveAll() {
	for _, n := range c.nodes {
		n.nodeBase().parent = nil
	}
	if c.nodes != nil {
		c.nodes = []Node{}
	}
}

// SetNodes replaces the children. Nodes owned by another container are
// detached from it first; old children not in nodes lose their parent.
func (c *container) SetNodes(nodes []Node) {
	next := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if slices.Contains(next, n) {
			continue
		}
		next = append(next, n)
	}
	for _, old := range c.nodes {
		if !slices.Contains(next, old) {
			old.nodeBase().parent = nil
		}
	}
	for _, n := range next {
		b := n.nodeBase()
		if b.parent != nil && b.parent != c.owner {
			b.parent.containerImpl().detach(n)
		}
		b.parent = c.owner
	}
	c.nodes = next
}

func (c *container) ensureBody() []Node {
	if c.nodes == nil {
		c.nodes = []Node{}
	}
	return c.nodes
}

func (c *container) detach(n Node) {
	if i := c.Index(n); i >= 0 {
		c.RemoveAt(i)
	}
}

// normalize turns items into detached nodes ready to be placed next to
// sample. Nodes of this tree are moved, nodes of other trees are cloned.
// A missing before is copied from sample with everything but whitespace
// removed.
func (c *container) normalize(items []Insertable, sample Node, mode insertMode) ([]Node, error) {
	var flat []Node
	for _, it := range items {
		nodes, err := expand(it)
		if err != nil {
			return nil, err
		}
		flat = append(flat, nodes...)
	}

	myRoot := c.owner.Root()
	out := make([]Node, 0, len(flat))
	explicit := make([]bool, 0, len(flat))
	for _, n := range flat {
		// один узел дважды в одном вызове вставляется один раз
		if slices.Contains(out, n) {
			continue
		}
		b := n.nodeBase()
		if b.parent != nil {
			if n.Root() != myRoot {
				n = Clone(n)
				b = n.nodeBase()
			} else {
				if isInside(c.owner, n) {
					return nil, ErrCycle
				}
				b.parent.containerImpl().detach(n)
			}
		} else if cont, ok := n.(Container); ok && isInside(c.owner, cont) {
			return nil, ErrCycle
		}
		_, had := b.raws.Get(RawBefore)
		if !had && sample != nil {
			if before, ok := sample.Raws().Get(RawBefore); ok {
				b.raws.Set(RawBefore, onlySpaces(before))
			}
		}
		b.parent = c.owner
		out = append(out, n)
		explicit = append(explicit, had)
	}

	if _, ok := c.owner.(*Root); ok && sample != nil {
		c.normalizeRoot(out, explicit, sample, mode)
	}
	return out, nil
}

// normalizeRoot keeps blank lines between top-level nodes: a node added
// after the first one takes the full before of its sample, a prepend hands
// the second node's before to the old first node.
func (c *container) normalizeRoot(nodes []Node, explicit []bool, sample Node, mode insertMode) {
	if mode == modePrepend {
		if len(c.nodes) > 1 {
			if before, ok := c.nodes[1].Raws().Get(RawBefore); ok {
				sample.Raws().Set(RawBefore, before)
			} else {
				sample.Raws().Delete(RawBefore)
			}
		}
		return
	}
	if c.First() == sample {
		return
	}
	before, ok := sample.Raws().Get(RawBefore)
	if !ok {
		return
	}
	for i, n := range nodes {
		if !explicit[i] {
			n.Raws().Set(RawBefore, before)
		}
	}
}

func onlySpaces(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\n', '\t', '\r', '\f', '\v':
			out = append(out, s[i])
		}
	}
	return string(out)
}

// Push appends a detached n to c as is: no cloning, no raws normalization.
// The parser builds trees with it.
func Push(c Container, n Node) {
	impl := c.containerImpl()
	impl.nodes = append(impl.ensureBody(), n)
	n.nodeBase().parent = c
}
