// Package postcss parses CSS into a tree that plugins can change, then
// prints it back byte for byte where nothing changed, with a source map.
//
//	p := postcss.New(myPlugin)
//	res, err := p.Process(ctx, postcss.CSS(css), postcss.Options{From: "a.css", To: "b.css"})
package postcss

import (
	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/format"
	"github.com/morishitter/postcss/internal/pipeline"
	"github.com/morishitter/postcss/internal/version"
)

type (
	Node       = ast.Node
	Container  = ast.Container
	Root       = ast.Root
	Rule       = ast.Rule
	AtRule     = ast.AtRule
	Decl       = ast.Decl
	Comment    = ast.Comment
	Descriptor = ast.Descriptor
	Nodes      = ast.Nodes

	// SyntaxError is returned for broken css and by Node.Error.
	SyntaxError = diag.SyntaxError

	CSS        = pipeline.CSS
	Options    = pipeline.Options
	MapOptions = pipeline.MapOptions
	Plugin     = pipeline.Plugin
	PluginFunc = pipeline.PluginFunc
	Processor  = pipeline.Processor
	Result     = pipeline.Result
)

// Version of the library.
func Version() string { return version.Version }

// New creates a processor that runs plugins in order.
func New(plugins ...Plugin) *Processor { return pipeline.New(plugins...) }

// Parse reads css into a tree without running plugins.
func Parse(css string, opts Options) (*Root, error) { return pipeline.Parse(css, opts) }

// Stringify prints n, inferring the style of nodes built by hand.
func Stringify(n Node) string { return format.String(n) }

// Bool is a helper for the tri-state MapOptions fields.
func Bool(v bool) *bool { return pipeline.Bool(v) }

func NewRoot() *Root                        { return ast.NewRoot() }
func NewRule(selector string) *Rule         { return ast.NewRule(selector) }
func NewAtRule(name, params string) *AtRule { return ast.NewAtRule(name, params) }
func NewDecl(prop, value string) *Decl      { return ast.NewDecl(prop, value) }
func NewComment(text string) *Comment       { return ast.NewComment(text) }
