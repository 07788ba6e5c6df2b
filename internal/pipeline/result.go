package pipeline

import (
	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/observ"
	"github.com/morishitter/postcss/internal/sourcemap"
)

// Result is the output of one processing run.
type Result struct {
	CSS string
	// Map is the separate source map; nil when maps are off or inlined.
	Map  *sourcemap.Generator
	Root *ast.Root
	Opts Options
	// Timings holds parse, plugin and stringify durations.
	Timings *observ.Report
}

func (r *Result) String() string { return r.CSS }
