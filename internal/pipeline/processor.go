package pipeline

import (
	"context"
	"fmt"

	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/observ"
	"github.com/morishitter/postcss/internal/parser"
	"github.com/morishitter/postcss/internal/source"
	"github.com/morishitter/postcss/internal/trace"
)

// CSS is css text given to Process.
type CSS string

// Input is what Process accepts: CSS (or a plain string), *ast.Root or a
// *Result of an earlier run.
type Input any

// Processor runs plugins over css in order.
type Processor struct {
	plugins []Plugin
}

// New creates a processor with plugins.
func New(plugins ...Plugin) *Processor {
	return new(Processor).Use(plugins...)
}

// Use appends plugins. Plugins of another processor are taken one by one.
func (p *Processor) Use(plugins ...Plugin) *Processor {
	for _, pl := range plugins {
		if other, ok := pl.(*Processor); ok {
			p.plugins = append(p.plugins, other.plugins...)
			continue
		}
		p.plugins = append(p.plugins, pl)
	}
	return p
}

// Plugins returns the plugin list.
func (p *Processor) Plugins() []Plugin {
	out := make([]Plugin, len(p.plugins))
	copy(out, p.plugins)
	return out
}

// Apply runs all plugins, so a processor can be used as a plugin.
func (p *Processor) Apply(root *ast.Root, opts Options) (*ast.Root, error) {
	for _, pl := range p.plugins {
		next, err := pl.Apply(root, opts)
		if err != nil {
			return nil, err
		}
		if next != nil {
			root = next
		}
	}
	return root, nil
}

// Process parses input when needed, runs the plugins and prints the result
// with its source map. Parse errors are *diag.SyntaxError.
func (p *Processor) Process(ctx context.Context, input Input, opts Options) (*Result, error) {
	ctx, span := trace.Start(ctx, trace.ScopeStage, "process")
	defer span.End("")

	timer := observ.NewTimer()
	var root *ast.Root
	switch v := input.(type) {
	case CSS:
		r, err := parse(ctx, timer, string(v), opts)
		if err != nil {
			return nil, err
		}
		root = r
	case string:
		r, err := parse(ctx, timer, v, opts)
		if err != nil {
			return nil, err
		}
		root = r
	case *ast.Root:
		root = v
	case *Result:
		root = v.Root
		if v.Map != nil {
			m := opts.mapOptions()
			if m.Inline == nil {
				m.Inline = Bool(false)
			}
			m.Prev = v.Map.Map()
			opts.Map = &m
		}
	default:
		return nil, fmt.Errorf("pipeline: unsupported input %T", input)
	}

	for i, pl := range p.plugins {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := pluginName(pl, i)
		_, pspan := trace.Start(ctx, trace.ScopePlugin, name)
		err := timer.Measure(name, func() error {
			next, err := pl.Apply(root, opts)
			if err != nil {
				return err
			}
			if next != nil {
				root = next
			}
			return nil
		})
		if err != nil {
			pspan.End("failed")
			// ошибка узла уже с позицией, отдаем как есть
			if serr, ok := err.(*diag.SyntaxError); ok {
				return nil, serr
			}
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		pspan.End("")
	}

	return stringify(ctx, timer, root, opts), nil
}

// Parse reads css with the previous map lookup opts describe.
func Parse(css string, opts Options) (*ast.Root, error) {
	in := source.NewInput(css, source.Options{From: opts.From, Prev: opts.PrevOptions()})
	return parser.Parse(in)
}

func parse(ctx context.Context, timer *observ.Timer, css string, opts Options) (*ast.Root, error) {
	_, span := trace.Start(ctx, trace.ScopeStage, "parse")
	var root *ast.Root
	err := timer.Measure("parse", func() error {
		var err error
		root, err = Parse(css, opts)
		return err
	})
	if err != nil {
		span.End("failed")
		return nil, err
	}
	span.End("")
	return root, nil
}

// ToResult prints root without running plugins.
func ToResult(ctx context.Context, root *ast.Root, opts Options) *Result {
	return stringify(ctx, observ.NewTimer(), root, opts)
}

func stringify(ctx context.Context, timer *observ.Timer, root *ast.Root, opts Options) *Result {
	_, span := trace.Start(ctx, trace.ScopeStage, "stringify")
	res := &Result{Root: root, Opts: opts}
	stop := timer.Start("stringify")
	res.CSS, res.Map = generate(root, opts)
	stop("")
	report := timer.Report()
	res.Timings = &report
	if res.Map != nil {
		span.WithExtra("map", res.Map.File())
	}
	span.End("")
	return res
}
