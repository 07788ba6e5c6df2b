package format

import (
	"strings"

	"github.com/morishitter/postcss/internal/ast"
)

// raw returns n's own slot, or detects it from the tree. detect defaults
// to own. Detected values are cached per tree, except before/after which
// depend on the node's depth.
func (p *printer) raw(n ast.Node, own, detect string) string {
	if detect == "" {
		detect = own
	}
	if own != "" {
		if v, ok := n.Raws().Get(own); ok {
			return v
		}
	}
	parent := n.Parent()
	// первый узел файла и узел без родителя печатаются без отступа
	if detect == ast.RawBefore {
		if parent == nil || (parent.Kind() == ast.KindRoot && parent.First() == n) {
			return ""
		}
	}
	if parent == nil {
		return p.defaults[detect]
	}
	if detect == ast.RawBefore || detect == ast.RawAfter {
		return p.beforeAfter(n, detect)
	}

	root := n.Root()
	cache := p.cacheFor(root)
	if v, ok := cache[detect]; ok {
		return v
	}
	v, ok := p.detect(root, n, own, detect)
	if !ok {
		v = p.defaults[detect]
	}
	cache[detect] = v
	return v
}

func (p *printer) cacheFor(root ast.Node) map[string]string {
	c, ok := p.cache[root]
	if !ok {
		c = make(map[string]string)
		p.cache[root] = c
	}
	return c
}

func (p *printer) beforeAfter(n ast.Node, detect string) string {
	var value string
	switch {
	case n.Kind() == ast.KindDecl:
		value = p.raw(n, "", rawBeforeDecl)
	case n.Kind() == ast.KindComment:
		value = p.raw(n, "", rawBeforeComment)
	case detect == ast.RawBefore:
		value = p.raw(n, "", rawBeforeRule)
	default:
		if v, ok := siblingAfter(n); ok {
			value = v
		} else {
			value = p.raw(n, "", rawBeforeClose)
		}
	}

	depth := 0
	for buf := n.Parent(); buf != nil && buf.Kind() != ast.KindRoot; buf = buf.Parent() {
		depth++
	}
	if strings.Contains(value, "\n") {
		if indent := p.raw(n, "", rawIndent); indent != "" {
			value += strings.Repeat(indent, depth)
		}
	}
	return value
}

// siblingAfter takes the closing spacing of the nearest preceding sibling
// block, so a new block closes the way its neighbour does.
func siblingAfter(n ast.Node) (string, bool) {
	for prev := n.Prev(); prev != nil; prev = prev.Prev() {
		if !ast.HasChildren(prev) {
			continue
		}
		if after, ok := prev.Raws().Get(ast.RawAfter); ok {
			return trimLastLine(after), true
		}
	}
	return "", false
}

func (p *printer) detect(root, n ast.Node, own, detect string) (string, bool) {
	switch detect {
	case rawIndent:
		return p.detectIndent(root)
	case rawBeforeDecl:
		if v, ok := findBefore(root, func(i ast.Node) bool { return i.Kind() == ast.KindDecl }); ok {
			return v, true
		}
		return p.raw(n, "", rawBeforeRule), true
	case rawBeforeComment:
		if v, ok := findBefore(root, func(i ast.Node) bool { return i.Kind() == ast.KindComment }); ok {
			return v, true
		}
		return p.raw(n, "", rawBeforeDecl), true
	case rawBeforeRule:
		return findBefore(root, func(i ast.Node) bool {
			return ast.HasChildren(i) && (i.Parent() != root || firstOf(root) != i)
		})
	case rawBeforeClose:
		return walkFind(root, func(i ast.Node) (string, bool) {
			if !ast.HasChildren(i) || i.(ast.Container).Len() == 0 {
				return "", false
			}
			if v, ok := i.Raws().Get(ast.RawAfter); ok {
				return trimLastLine(v), true
			}
			return "", false
		})
	case rawEmptyBody:
		return walkFind(root, func(i ast.Node) (string, bool) {
			if !ast.HasChildren(i) || i.(ast.Container).Len() != 0 {
				return "", false
			}
			return i.Raws().Get(ast.RawAfter)
		})
	case rawBeforeOpen:
		return walkFind(root, func(i ast.Node) (string, bool) {
			if i.Kind() == ast.KindDecl {
				return "", false
			}
			return i.Raws().Get(ast.RawBetween)
		})
	case rawColon:
		return walkFind(root, func(i ast.Node) (string, bool) {
			if i.Kind() != ast.KindDecl {
				return "", false
			}
			v, ok := i.Raws().Get(ast.RawBetween)
			if !ok {
				return "", false
			}
			return keepOnly(v, func(b byte) bool { return isSpace(b) || b == ':' }), true
		})
	}
	if own == "" {
		return "", false
	}
	return walkFind(root, func(i ast.Node) (string, bool) {
		return i.Raws().Get(own)
	})
}

// detectIndent looks at the first node nested one level below a top-level
// block and takes the whitespace at the end of its before.
func (p *printer) detectIndent(root ast.Node) (string, bool) {
	if v, ok := root.Raws().Get(ast.RawIndent); ok {
		return v, true
	}
	return walkFind(root, func(i ast.Node) (string, bool) {
		parent := i.Parent()
		if parent == nil || parent == root || parent.Parent() != root {
			return "", false
		}
		before, ok := i.Raws().Get(ast.RawBefore)
		if !ok {
			return "", false
		}
		lastLine := before[strings.LastIndexByte(before, '\n')+1:]
		return keepOnly(lastLine, isSpace), true
	})
}

// semicolon reports whether the last child of c is followed by ';'.
func (p *printer) semicolon(c ast.Container) bool {
	if v, ok := c.Raws().Semicolon(); ok {
		return v
	}
	if c.Parent() == nil {
		return false
	}
	root := c.Root()
	if v, ok := p.semis[root]; ok {
		return v
	}
	value := false
	walk(root, func(i ast.Node) bool {
		if !ast.HasChildren(i) {
			return true
		}
		cont := i.(ast.Container)
		if cont.Len() == 0 || cont.Last().Kind() != ast.KindDecl {
			return true
		}
		if v, ok := cont.Raws().Semicolon(); ok {
			value = v
			return false
		}
		return true
	})
	p.semis[root] = value
	return value
}

func findBefore(root ast.Node, match func(i ast.Node) bool) (string, bool) {
	return walkFind(root, func(i ast.Node) (string, bool) {
		if !match(i) {
			return "", false
		}
		v, ok := i.Raws().Get(ast.RawBefore)
		if !ok {
			return "", false
		}
		return trimLastLine(v), true
	})
}

// walkFind returns the first value found in a pre-order walk below root.
func walkFind(root ast.Node, find func(i ast.Node) (string, bool)) (string, bool) {
	var (
		value string
		found bool
	)
	walk(root, func(i ast.Node) bool {
		value, found = find(i)
		return !found
	})
	return value, found
}

func walk(root ast.Node, fn func(i ast.Node) bool) {
	c, ok := root.(ast.Container)
	if !ok {
		return
	}
	c.EachInside(func(n ast.Node, _ int) bool { return fn(n) })
}

func firstOf(n ast.Node) ast.Node {
	if c, ok := n.(ast.Container); ok {
		return c.First()
	}
	return nil
}

// trimLastLine drops the text after the last newline: "\n  " → "\n".
func trimLastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[:i+1]
	}
	return s
}

func keepOnly(s string, keep func(b byte) bool) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if keep(s[i]) {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\n', '\t', '\r', '\f', '\v':
		return true
	}
	return false
}
