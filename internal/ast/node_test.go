package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/format"
	"github.com/morishitter/postcss/internal/parser"
	"github.com/morishitter/postcss/internal/source"
)

func TestNodeError(t *testing.T) {
	root, err := parser.Parse(source.NewInput("a{}", source.Options{From: "/a.css"}))
	require.NoError(t, err)
	e := root.First().Error("Test")
	assert.Equal(t, diag.UserError, e.Code)
	assert.Equal(t, "/a.css:1:1: Test", e.Error())

	rule := ast.NewRule("a")
	assert.Equal(t, "<css input>: Test", rule.Error("Test").Error())
}

func TestRemoveSelf(t *testing.T) {
	rule := ast.NewRule("a")
	require.NoError(t, rule.Append(decl("color", "black")))
	require.NoError(t, rule.First().RemoveSelf())
	assert.Equal(t, 0, rule.Len())
	assert.ErrorIs(t, rule.RemoveSelf(), ast.ErrNoParent)
}

func TestSiblings(t *testing.T) {
	rule := smallRule(t)
	a, b := rule.At(0), rule.At(1)
	assert.Same(t, b, a.Next())
	assert.Same(t, a, b.Prev())
	assert.Nil(t, a.Prev())
	assert.Nil(t, b.Next())
	assert.Same(t, rule.Root(), a.Root())
	assert.Equal(t, ast.KindRoot, a.Root().Kind())
}

func TestClone(t *testing.T) {
	rule, err := ast.Descriptor{Selector: "a", Raws: map[string]string{ast.RawAfter: ""}}.Node()
	require.NoError(t, err)
	r := rule.(*ast.Rule)
	require.NoError(t, r.Append(ast.Descriptor{Prop: "color", Value: "/**/black", Raws: map[string]string{ast.RawBefore: ""}}))

	clone := r.Clone()
	require.NoError(t, clone.Append(decl("z-index", "1")))

	assert.Same(t, r, r.First().Parent())
	assert.Same(t, clone, clone.First().Parent())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 2, clone.Len())
	assert.Nil(t, clone.Parent())
	assert.False(t, clone.Raws().Has(ast.RawAfter))
}

func TestCloneOverrides(t *testing.T) {
	rule := ast.NewRule("a")
	assert.Equal(t, "b", rule.Clone(ast.Descriptor{Selector: "b"}).Selector)

	d := ast.NewDecl("color", "red")
	c := d.Clone(ast.Descriptor{Value: "blue", Important: true})
	assert.Equal(t, "color", c.Prop)
	assert.Equal(t, "blue", c.Value)
	assert.True(t, c.Important)
}

func TestCloneKeepsSource(t *testing.T) {
	root := parse(t, "a { color: red }")
	d := root.First().(*ast.Rule).First().(*ast.Decl)
	c := d.Clone()
	assert.Same(t, d.Source(), c.Source())
	assert.False(t, c.Raws().Has(ast.RawBefore))
	assert.False(t, c.Raws().Has(ast.RawBetween))
}

func TestCloneBeforeAfter(t *testing.T) {
	root := parse(t, "a { color: red }")
	rule := root.First().(*ast.Rule)
	d := rule.First().(*ast.Decl)

	before, err := d.CloneBefore(ast.Descriptor{Prop: "-webkit-color"})
	require.NoError(t, err)
	after, err := d.CloneAfter(ast.Descriptor{Value: "blue"})
	require.NoError(t, err)

	assert.Equal(t, 0, rule.Index(before))
	assert.Equal(t, 2, rule.Index(after))
	assert.Equal(t, "a { -webkit-color: red; color: red; color: blue }", format.String(root))

	_, err = ast.NewDecl("a", "b").CloneAfter()
	assert.ErrorIs(t, err, ast.ErrNoParent)
}

func TestReplaceWith(t *testing.T) {
	rule := ast.NewRule("a")
	require.NoError(t, rule.Append(decl("color", "black"), decl("width", "1px"), decl("height", "1px")))

	width := rule.At(1)
	require.NoError(t, width.ReplaceWith(ast.NewDecl("min-width", "1px")))
	assert.Nil(t, width.Parent())
	assert.Equal(t, []string{"color", "min-width", "height"}, props(rule))
}

func TestJSON(t *testing.T) {
	rule := ast.NewRule("a")
	require.NoError(t, rule.Append(decl("color", "b")))

	out, err := json.Marshal(rule)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"rule","nodes":[{"type":"decl","prop":"color","value":"b"}],"selector":"a"}`, string(out))
}

func TestJSONOfParsedTree(t *testing.T) {
	root, err := parser.Parse(source.NewInput("a /**/ { b: c }", source.Options{From: "/x.css"}))
	require.NoError(t, err)

	js := ast.ToJSON(root)
	require.NotNil(t, js.Nodes)
	ruleJS := (*js.Nodes)[0]
	assert.Equal(t, "rule", ruleJS.Type)
	assert.Equal(t, "a", *ruleJS.Selector)
	assert.Equal(t, map[string]any{
		"before":    "",
		"between":   " /**/ ",
		"after":     " ",
		"semicolon": false,
	}, ruleJS.Raws)
	require.NotNil(t, ruleJS.Source)
	assert.Equal(t, "/x.css", ruleJS.Source.Input)
	assert.Equal(t, ast.Position{Line: 1, Column: 1}, ruleJS.Source.Start)
	assert.Equal(t, &ast.Position{Line: 1, Column: 15}, ruleJS.Source.End)
}

func TestStringifyRaw(t *testing.T) {
	root := parse(t, "a { b: c /* d */ }")
	d := root.First().(*ast.Rule).First().(*ast.Decl)
	assert.Equal(t, "c /* d */", ast.StringifyRaw(d, "value"))
	d.Value = "e"
	assert.Equal(t, "e", ast.StringifyRaw(d, "value"))
}
