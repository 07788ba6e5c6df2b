package driver

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/morishitter/postcss/internal/format"
	"github.com/morishitter/postcss/internal/pipeline"
)

// RoundTrip is the result of printing a parsed file back.
type RoundTrip struct {
	Path string
	OK   bool
	// Diff is a unified-style patch from the input to the output; empty when OK.
	Diff string
}

// CheckRoundTrip parses css and prints it back without changes. Anything
// but a byte-exact copy is reported with a patch.
func CheckRoundTrip(path, css string) (*RoundTrip, error) {
	root, err := pipeline.Parse(css, pipeline.Options{From: path, Map: &pipeline.MapOptions{IgnorePrev: true}})
	if err != nil {
		return nil, err
	}
	out := format.String(root)
	res := &RoundTrip{Path: path, OK: out == stripBOM(css)}
	if res.OK {
		return res, nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(stripBOM(css), out, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	res.Diff = dmp.PatchToText(dmp.PatchMake(stripBOM(css), diffs))
	return res, nil
}

func stripBOM(s string) string {
	const bom = "\uFEFF"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}
