package pipeline

import (
	"fmt"

	"github.com/morishitter/postcss/internal/ast"
)

// Plugin transforms a tree. Returning a non-nil root replaces the tree.
type Plugin interface {
	Apply(root *ast.Root, opts Options) (*ast.Root, error)
}

// PluginFunc adapts a function to Plugin.
type PluginFunc func(root *ast.Root, opts Options) (*ast.Root, error)

func (f PluginFunc) Apply(root *ast.Root, opts Options) (*ast.Root, error) {
	return f(root, opts)
}

// Named plugins show their name in traces and timings.
type Named interface {
	Name() string
}

// NamedPlugin gives fn a name.
func NamedPlugin(name string, fn PluginFunc) Plugin {
	return namedFunc{name: name, fn: fn}
}

type namedFunc struct {
	name string
	fn   PluginFunc
}

func (n namedFunc) Apply(root *ast.Root, opts Options) (*ast.Root, error) {
	return n.fn(root, opts)
}

func (n namedFunc) Name() string { return n.name }

func pluginName(p Plugin, i int) string {
	if n, ok := p.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("plugin#%d", i)
}
