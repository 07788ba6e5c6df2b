package source

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"fortio.org/safecast"

	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/sourcemap"
)

var inputSeq atomic.Uint64

// Options tells NewInput where css came from.
type Options struct {
	// From is the path of css; relative paths are resolved against the
	// working directory.
	From string
	// Prev controls the lookup of a previous source map.
	Prev sourcemap.PrevOptions
}

// Input is css text ready for tokenizing.
type Input struct {
	// CSS is the text with a leading BOM removed.
	CSS string
	// File is the absolute path of css; empty for in-memory text.
	File string
	// ID names in-memory text, e.g. "<input css 3>".
	ID string
	// Map is the previous source map of css, nil when there is none.
	Map   *sourcemap.Previous
	Flags Flags

	lineIdx []uint32
}

// NewInput prepares css for parsing.
func NewInput(css string, opts Options) *Input {
	in := &Input{}
	var hadBOM bool
	in.CSS, hadBOM = removeBOM(css)
	if hadBOM {
		in.Flags |= FlagHadBOM
	}
	if opts.From != "" {
		in.File = absPath(opts.From)
	}

	in.Map = sourcemap.Load(in.CSS, in.File, opts.Prev)
	if in.Map != nil {
		in.Flags |= FlagMapped
		if in.File == "" {
			if file := in.Map.Consumer().File(); file != "" {
				in.File = absPath(file)
			}
		}
	}
	if in.File == "" {
		in.Flags |= FlagVirtual
		in.ID = fmt.Sprintf("<input css %d>", inputSeq.Add(1))
	}
	if in.Map != nil {
		in.Map.File = in.From()
	}
	in.lineIdx = buildLineIndex(in.CSS)
	return in
}

// From returns File, or ID for in-memory css.
func (in *Input) From() string {
	if in.File != "" {
		return in.File
	}
	return in.ID
}

// LineCol converts a byte offset into a 1-based position.
func (in *Input) LineCol(off uint32) LineCol {
	return toLineCol(in.lineIdx, off)
}

// Offset converts a 1-based position back into a byte offset.
func (in *Input) Offset(line, column int) (uint32, bool) {
	start, ok := lineStart(in.lineIdx, line)
	if !ok || column < 1 {
		return 0, false
	}
	col, err := safecast.Conv[uint32](column - 1)
	if err != nil {
		return 0, false
	}
	off := start + col
	if int(off) > len(in.CSS) {
		return 0, false
	}
	return off, true
}

// LineCount returns the number of lines in CSS.
func (in *Input) LineCount() int {
	return len(in.lineIdx) + 1
}

// Origin is a position inside the file a previous map points to.
type Origin struct {
	File   string
	Line   int
	Column int
	// Source is the embedded content of File; empty when the map has none.
	Source string
}

// Origin maps line/column of CSS through the previous map.
func (in *Input) Origin(line, column int) (Origin, bool) {
	if in.Map == nil {
		return Origin{}, false
	}
	consumer := in.Map.Consumer()
	pos, ok := consumer.OriginalPositionFor(line, column-1)
	if !ok {
		return Origin{}, false
	}
	out := Origin{
		File:   absPath(pos.Source),
		Line:   pos.Line,
		Column: pos.Column + 1,
	}
	if content, ok := consumer.SourceContentFor(pos.Source); ok {
		out.Source = content
	}
	return out, true
}

// Error builds a syntax error at line/column of CSS. When a previous map
// knows where that position came from, the error points there and keeps
// the parsed position in Generated.
func (in *Input) Error(code diag.Code, reason string, line, column int) *diag.SyntaxError {
	if origin, ok := in.Origin(line, column); ok {
		err := diag.At(code, reason, origin.File, origin.Line, origin.Column, origin.Source)
		err.Generated = &diag.Position{
			File:   in.File,
			Line:   line,
			Column: column,
			Source: in.CSS,
		}
		return err
	}
	return diag.At(code, reason, in.File, line, column, in.CSS)
}

// ErrorAt is Error for a byte offset.
func (in *Input) ErrorAt(code diag.Code, reason string, off uint32) *diag.SyntaxError {
	lc := in.LineCol(off)
	return in.Error(code, reason, int(lc.Line), int(lc.Col))
}

func absPath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
