package source

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/sourcemap"
)

func TestNewInputVirtual(t *testing.T) {
	in := NewInput("\uFEFFa{}", Options{})
	assert.Equal(t, "a{}", in.CSS)
	assert.Empty(t, in.File)
	assert.True(t, strings.HasPrefix(in.ID, "<input css "))
	assert.Equal(t, in.ID, in.From())
	assert.NotZero(t, in.Flags&FlagVirtual)
	assert.NotZero(t, in.Flags&FlagHadBOM)

	other := NewInput("a{}", Options{})
	assert.NotEqual(t, in.ID, other.ID)
}

func TestNewInputFrom(t *testing.T) {
	in := NewInput("a{}", Options{From: "a.css"})
	want, err := filepath.Abs("a.css")
	require.NoError(t, err)
	assert.Equal(t, want, in.File)
	assert.Equal(t, want, in.From())
	assert.Empty(t, in.ID)
}

func TestInputOffset(t *testing.T) {
	in := NewInput("a {\n  b: c\n}", Options{})
	off, ok := in.Offset(2, 3)
	require.True(t, ok)
	assert.Equal(t, uint32(6), off)
	assert.Equal(t, LineCol{Line: 2, Col: 3}, in.LineCol(off))
	_, ok = in.Offset(9, 1)
	assert.False(t, ok)
	assert.Equal(t, 3, in.LineCount())
}

func TestInputError(t *testing.T) {
	in := NewInput("a {\n  content: \"\n}", Options{})
	err := in.Error(diag.LexUnclosedQuote, "Unclosed quote", 2, 12)
	assert.Equal(t, "<css input>:2:12: Unclosed quote", err.Message())
	assert.Equal(t, in.CSS, err.Source)
	assert.Nil(t, err.Generated)

	err = in.ErrorAt(diag.SynUnclosedBlock, "Unclosed block", 0)
	assert.Equal(t, 1, err.Line)
	assert.Equal(t, 1, err.Column)
}

func concatMap(t *testing.T) string {
	t.Helper()
	g := sourcemap.NewGenerator("all.css")
	g.AddMapping(sourcemap.Mapping{GenLine: 1, GenColumn: 0, Source: "a.css", OrigLine: 1, OrigColumn: 0})
	g.AddMapping(sourcemap.Mapping{GenLine: 2, GenColumn: 0, Source: "b.css", OrigLine: 1, OrigColumn: 0})
	return g.String()
}

func TestInputErrorThroughPreviousMap(t *testing.T) {
	css := "a { }\nb {"
	in := NewInput(css, Options{
		From: "build/all.css",
		Prev: sourcemap.PrevOptions{Text: concatMap(t)},
	})
	require.NotNil(t, in.Map)

	err := in.Error(diag.SynUnclosedBlock, "Unclosed block", 2, 1)
	wantFile, _ := filepath.Abs("b.css")
	assert.Equal(t, wantFile, err.File)
	assert.Equal(t, 1, err.Line)
	assert.Equal(t, 1, err.Column)
	assert.Empty(t, err.Source)

	genFile, _ := filepath.Abs("build/all.css")
	require.NotNil(t, err.Generated)
	assert.Equal(t, diag.Position{File: genFile, Line: 2, Column: 1, Source: css}, *err.Generated)
}

func TestInputIgnoresMapWithoutSources(t *testing.T) {
	in := NewInput("a { }\nb {", Options{
		From: "build/all.css",
		Prev: sourcemap.PrevOptions{Map: &sourcemap.Map{
			Version:  3,
			File:     "build/all.css",
			Sources:  []string{"a.css", "b.css"},
			Mappings: "A",
		}},
	})
	err := in.Error(diag.SynUnclosedBlock, "Unclosed block", 2, 1)
	want, _ := filepath.Abs("build/all.css")
	assert.Equal(t, want, err.File)
}

func TestInputFileFromMap(t *testing.T) {
	m := &sourcemap.Map{Version: 3, File: "out.css", Sources: []string{"in.css"}, Mappings: "AAAA"}
	in := NewInput("a{}", Options{Prev: sourcemap.PrevOptions{Map: m}})
	want, _ := filepath.Abs("out.css")
	assert.Equal(t, want, in.File)
	assert.Equal(t, want, in.Map.File)
}
