package pipeline

import (
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/format"
	"github.com/morishitter/postcss/internal/source"
	"github.com/morishitter/postcss/internal/sourcemap"
)

// mapEmitter prints a root and builds its source map.
type mapEmitter struct {
	root *ast.Root
	opts Options
	mo   MapOptions
	prev []*sourcemap.Previous
	css  string
	gen  *sourcemap.Generator
}

// generate prints root and, when maps are on, returns the separate map.
// Inline maps end up in the css and the returned generator is nil.
func generate(root *ast.Root, opts Options) (string, *sourcemap.Generator) {
	e := &mapEmitter{root: root, opts: opts, mo: opts.mapOptions()}
	e.prev = previousMaps(root)
	if e.isAnnotationCleared() {
		clearAnnotation(root)
	}
	if !e.isMap() {
		return format.StringWith(root, opts.Format), nil
	}
	return e.generateMap()
}

func previousMaps(root *ast.Root) []*sourcemap.Previous {
	var out []*sourcemap.Previous
	seen := make(map[*sourcemap.Previous]struct{})
	add := func(n ast.Node) {
		src := n.Source()
		if src == nil || src.Input == nil || src.Input.Map == nil {
			return
		}
		if _, ok := seen[src.Input.Map]; ok {
			return
		}
		seen[src.Input.Map] = struct{}{}
		out = append(out, src.Input.Map)
	}
	add(root)
	root.EachInside(func(n ast.Node, _ int) bool {
		add(n)
		return true
	})
	return out
}

// clearAnnotation drops old sourceMappingURL comments from the top level.
func clearAnnotation(root *ast.Root) {
	for i := root.Len() - 1; i >= 0; i-- {
		c, ok := root.At(i).(*ast.Comment)
		if !ok {
			continue
		}
		if strings.HasPrefix(c.Text, sourcemap.AnnotationPrefix) {
			root.RemoveAt(i)
		}
	}
}

func (e *mapEmitter) isAnnotationCleared() bool {
	return e.mo.Annotation == nil || *e.mo.Annotation
}

func (e *mapEmitter) isMap() bool {
	if e.opts.Map != nil {
		return !e.mo.Disabled
	}
	return len(e.prev) > 0
}

func (e *mapEmitter) isInline() bool {
	if e.mo.Inline != nil {
		return *e.mo.Inline
	}
	if (e.mo.Annotation != nil && !*e.mo.Annotation) || e.mo.AnnotationURL != "" {
		return false
	}
	if len(e.prev) > 0 {
		for _, p := range e.prev {
			if p.Inline {
				return true
			}
		}
		return false
	}
	return true
}

func (e *mapEmitter) isSourcesContent() bool {
	if e.mo.SourcesContent != nil {
		return *e.mo.SourcesContent
	}
	if len(e.prev) > 0 {
		for _, p := range e.prev {
			if p.WithContent() {
				return true
			}
		}
		return false
	}
	return true
}

func (e *mapEmitter) isAnnotation() bool {
	if e.isInline() || e.mo.AnnotationURL != "" {
		return true
	}
	if e.mo.Annotation != nil {
		return *e.mo.Annotation
	}
	if len(e.prev) > 0 {
		for _, p := range e.prev {
			if p.Annotation != "" {
				return true
			}
		}
		return false
	}
	return true
}

// relative makes file relative to the directory the map will live in.
func (e *mapEmitter) relative(file string) string {
	base := "."
	if e.opts.To != "" {
		base = filepath.Dir(e.opts.To)
	}
	if e.mo.AnnotationURL != "" {
		base = filepath.Dir(filepath.Join(base, e.mo.AnnotationURL))
	}
	return source.RelativePath(base, file)
}

func (e *mapEmitter) outputFile() string {
	switch {
	case e.opts.To != "":
		return e.relative(e.opts.To)
	case e.opts.From != "":
		return e.relative(e.opts.From)
	default:
		return "to.css"
	}
}

func (e *mapEmitter) sourcePath(n ast.Node) string {
	return e.relative(n.Source().Input.From())
}

func (e *mapEmitter) generateString() {
	e.gen = sourcemap.NewGenerator(e.outputFile())
	w := format.NewWriter()
	format.Stringify(e.root, func(s string, n ast.Node, part format.Part) {
		var src *ast.Source
		if n != nil && n.Source() != nil && n.Source().Input != nil {
			src = n.Source()
		}
		if src != nil && part != format.End && src.Start.Line > 0 {
			e.gen.AddMapping(sourcemap.Mapping{
				GenLine:    w.Line(),
				GenColumn:  w.Column() - 1,
				Source:     e.sourcePath(n),
				OrigLine:   src.Start.Line,
				OrigColumn: src.Start.Column - 1,
			})
		}
		w.WriteString(s)
		if src != nil && part != format.Start && src.End.Line > 0 {
			e.gen.AddMapping(sourcemap.Mapping{
				GenLine:    w.Line(),
				GenColumn:  w.Column() - 1,
				Source:     e.sourcePath(n),
				OrigLine:   src.End.Line,
				OrigColumn: src.End.Column,
			})
		}
	}, e.opts.Format)
	e.css = w.String()
}

func (e *mapEmitter) setSourcesContent() {
	seen := make(map[*source.Input]struct{})
	e.root.EachInside(func(n ast.Node, _ int) bool {
		src := n.Source()
		if src == nil || src.Input == nil {
			return true
		}
		if _, ok := seen[src.Input]; ok {
			return true
		}
		seen[src.Input] = struct{}{}
		e.gen.SetSourceContent(e.relative(src.Input.From()), src.Input.CSS)
		return true
	})
}

func (e *mapEmitter) applyPrevMaps() {
	for _, prev := range e.prev {
		if prev.Consumer() == nil {
			continue
		}
		from := e.relative(prev.File)
		root := prev.Root
		if root == "" {
			root = filepath.Dir(prev.File)
		}
		e.gen.ApplySourceMap(prev.Consumer(), from, e.relative(root), e.isSourcesContent())
	}
}

func (e *mapEmitter) addAnnotation() {
	var content string
	switch {
	case e.isInline():
		content = "data:application/json;base64," +
			base64.StdEncoding.EncodeToString([]byte(e.gen.String()))
	case e.mo.AnnotationURL != "":
		content = e.mo.AnnotationURL
	default:
		content = e.outputFile() + ".map"
	}
	eol := "\n"
	if strings.Contains(e.css, "\r\n") {
		eol = "\r\n"
	}
	e.css += eol + "/*" + sourcemap.AnnotationPrefix + content + " */"
}

func (e *mapEmitter) generateMap() (string, *sourcemap.Generator) {
	e.generateString()
	if e.isSourcesContent() {
		e.setSourcesContent()
	}
	if e.root.Len() > 0 {
		e.applyPrevMaps()
	}
	if e.isAnnotation() {
		e.addAnnotation()
	}
	if e.isInline() {
		return e.css, nil
	}
	return e.css, e.gen
}
