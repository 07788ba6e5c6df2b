package parser_test

import (
	"errors"
	"testing"

	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/format"
	"github.com/morishitter/postcss/internal/parser"
	"github.com/morishitter/postcss/internal/source"
)

func parse(t *testing.T, css string) *ast.Root {
	t.Helper()
	root, err := parser.Parse(source.NewInput(css, source.Options{}))
	if err != nil {
		t.Fatalf("parse %q: %v", css, err)
	}
	return root
}

func raw(t *testing.T, n ast.Node, name string) string {
	t.Helper()
	v, ok := n.Raws().Get(name)
	if !ok {
		t.Fatalf("%s: raw %q is not set", n.Kind(), name)
	}
	return v
}

// Any parsed and untouched tree prints back to the same bytes.
func TestRoundTrip(t *testing.T) {
	corpus := []string{
		"",
		"\n\n",
		"a{}",
		"a { color: black; }",
		"  a  {  b : c  ;  }  \n",
		"@charset \"utf-8\";",
		"@media screen { a { b: c } }\n",
		"/* c */ a{}",
		"/**/",
		"a { *zoom: 1; _height: 1px }",
		"a { b: c !important; d: e ! important; f: g!IMPORTANT }",
		"a /* x */ { b: c /* y */ }",
		"a /* x */ b { c: d /* e */ f }",
		"@import url(foo.css) ;;",
		";a{};",
		"{}",
		"a { b: c; }\n@page :first { margin: 1in }",
		"a{b:c}@x y",
		"a{b:c}  @x y  ",
		"@font-face{}",
		"a { b: url(data:image/png;base64,AAA=) }",
		"a[href=\"x\"] { content: \"}\" }",
		"a { b: (c; d) }",
		"@media (max-width: 100px) and (orientation: landscape) {\n    a { b: c }\n}\n",
		"a {\n\tb: c;\n\t/* d */\n}\n",
		"@supports (display: grid) { @media print { a { b: c; } } }",
		"a { b: c }\n\n/* end */\n",
	}
	for _, css := range corpus {
		root := parse(t, css)
		if got := format.String(root); got != css {
			t.Errorf("round trip:\n got %q\nwant %q", got, css)
		}
	}
}

func TestStripsBOM(t *testing.T) {
	root := parse(t, "\uFEFFa{}")
	if got := format.String(root); got != "a{}" {
		t.Fatalf("got %q", got)
	}
}

func TestRuleAndDecl(t *testing.T) {
	root := parse(t, "a { color: black }")
	if root.Len() != 1 {
		t.Fatalf("root has %d nodes", root.Len())
	}
	rule, ok := root.First().(*ast.Rule)
	if !ok {
		t.Fatalf("first node is %s", root.First().Kind())
	}
	if rule.Selector != "a" {
		t.Errorf("selector = %q", rule.Selector)
	}
	if got := raw(t, rule, ast.RawBetween); got != " " {
		t.Errorf("between = %q", got)
	}
	if got := raw(t, rule, ast.RawAfter); got != " " {
		t.Errorf("after = %q", got)
	}
	if semi, ok := rule.Raws().Semicolon(); !ok || semi {
		t.Errorf("semicolon = %v, %v", semi, ok)
	}

	decl := rule.First().(*ast.Decl)
	if decl.Prop != "color" || decl.Value != "black" || decl.Important {
		t.Errorf("decl = %q %q %v", decl.Prop, decl.Value, decl.Important)
	}
	if got := raw(t, decl, ast.RawBefore); got != " " {
		t.Errorf("before = %q", got)
	}
	if got := raw(t, decl, ast.RawBetween); got != ": " {
		t.Errorf("between = %q", got)
	}
}

func TestComments(t *testing.T) {
	tests := []struct {
		css, text, left, right string
	}{
		{"/* hi */", "hi", " ", " "},
		{"/**/", "", "", ""},
		{"/*   */", "", "   ", ""},
		{"/*\n a\n b\t*/", "a\n b", "\n ", "\t"},
	}
	for _, tt := range tests {
		c := parse(t, tt.css).First().(*ast.Comment)
		if c.Text != tt.text {
			t.Errorf("%q: text = %q, want %q", tt.css, c.Text, tt.text)
		}
		if got := raw(t, c, ast.RawLeft); got != tt.left {
			t.Errorf("%q: left = %q, want %q", tt.css, got, tt.left)
		}
		if got := raw(t, c, ast.RawRight); got != tt.right {
			t.Errorf("%q: right = %q, want %q", tt.css, got, tt.right)
		}
	}
}

func TestImportant(t *testing.T) {
	root := parse(t, "a { b: c !important; d: e ! important; f: g!IMPORTANT; h: i }")
	rule := root.First().(*ast.Rule)
	want := []struct {
		value     string
		important bool
		raw       string
	}{
		{"c", true, ""},
		{"e", true, " ! important"},
		{"g", true, "!IMPORTANT"},
		{"i", false, ""},
	}
	for i, w := range want {
		d := rule.At(i).(*ast.Decl)
		if d.Value != w.value || d.Important != w.important {
			t.Errorf("%s: value %q important %v", d.Prop, d.Value, d.Important)
		}
		got, _ := d.Raws().Get(ast.RawImportant)
		if got != w.raw {
			t.Errorf("%s: raws.important = %q, want %q", d.Prop, got, w.raw)
		}
	}
}

func TestPropertyHacks(t *testing.T) {
	rule := parse(t, "a { *zoom: 1; _height: 1px }").First().(*ast.Rule)
	zoom := rule.At(0).(*ast.Decl)
	if zoom.Prop != "zoom" || raw(t, zoom, ast.RawBefore) != " *" {
		t.Errorf("zoom: prop %q before %q", zoom.Prop, raw(t, zoom, ast.RawBefore))
	}
	height := rule.At(1).(*ast.Decl)
	if height.Prop != "height" || raw(t, height, ast.RawBefore) != " _" {
		t.Errorf("height: prop %q before %q", height.Prop, raw(t, height, ast.RawBefore))
	}
}

func TestCommentsInsideValues(t *testing.T) {
	rule := parse(t, "a /* x */ b { c: d /* e */ f }").First().(*ast.Rule)
	if rule.Selector != "a  b" {
		t.Errorf("selector = %q", rule.Selector)
	}
	rv, ok := rule.Raws().Value("selector")
	if !ok || rv.Raw != "a /* x */ b" || rv.Value != "a  b" {
		t.Errorf("selector raw = %+v, %v", rv, ok)
	}
	decl := rule.First().(*ast.Decl)
	if decl.Value != "d  f" {
		t.Errorf("value = %q", decl.Value)
	}
	decl.Value = "g"
	if got := format.String(rule); got != "a /* x */ b { c: g }" {
		t.Errorf("changed value printed as %q", got)
	}
}

func TestAtRules(t *testing.T) {
	root := parse(t, "@media screen { }@page{}@charset \"x\";")
	media := root.At(0).(*ast.AtRule)
	if media.Name != "media" || media.Params != "screen" || !media.HasBody() {
		t.Errorf("media: %q %q %v", media.Name, media.Params, media.HasBody())
	}
	if raw(t, media, ast.RawAfterName) != " " || raw(t, media, ast.RawBetween) != " " {
		t.Errorf("media raws: %v", media.Raws().Names())
	}
	page := root.At(1).(*ast.AtRule)
	if page.Params != "" || raw(t, page, ast.RawAfterName) != "" {
		t.Errorf("page: %q", page.Params)
	}
	charset := root.At(2).(*ast.AtRule)
	if charset.HasBody() || charset.Params != "\"x\"" {
		t.Errorf("charset: %q %v", charset.Params, charset.HasBody())
	}
	if semi, _ := root.Raws().Semicolon(); !semi {
		t.Errorf("root semicolon is not set")
	}
}

func TestAtRuleAtEOFGivesSpacesToRoot(t *testing.T) {
	root := parse(t, "a{b:c}  @x y  ")
	at := root.Last().(*ast.AtRule)
	if raw(t, at, ast.RawBetween) != "" {
		t.Errorf("between = %q", raw(t, at, ast.RawBetween))
	}
	if raw(t, root, ast.RawAfter) != "  " {
		t.Errorf("root after = %q", raw(t, root, ast.RawAfter))
	}
}

func TestStraySemicolons(t *testing.T) {
	root := parse(t, ";a{};")
	if got := raw(t, root.First(), ast.RawBefore); got != ";" {
		t.Errorf("before = %q", got)
	}
	if got := raw(t, root, ast.RawAfter); got != ";" {
		t.Errorf("after = %q", got)
	}
}

func TestEmptySelector(t *testing.T) {
	rule := parse(t, "{}").First().(*ast.Rule)
	if rule.Selector != "" || raw(t, rule, ast.RawBetween) != "" {
		t.Errorf("rule = %q", rule.Selector)
	}
}

func TestSourcePositions(t *testing.T) {
	root := parse(t, "a {\n  b: c;\n}\n/* d */")
	if root.Source().Start != (ast.Position{Line: 1, Column: 1}) {
		t.Errorf("root start = %+v", root.Source().Start)
	}
	rule := root.First().(*ast.Rule)
	if rule.Source().Start != (ast.Position{Line: 1, Column: 1}) || rule.Source().End != (ast.Position{Line: 3, Column: 1}) {
		t.Errorf("rule source = %+v", rule.Source())
	}
	decl := rule.First()
	if decl.Source().Start != (ast.Position{Line: 2, Column: 3}) || decl.Source().End != (ast.Position{Line: 2, Column: 7}) {
		t.Errorf("decl source = %+v %+v", decl.Source().Start, decl.Source().End)
	}
	comment := root.Last()
	if comment.Source().Start != (ast.Position{Line: 4, Column: 1}) || comment.Source().End != (ast.Position{Line: 4, Column: 7}) {
		t.Errorf("comment source = %+v %+v", comment.Source().Start, comment.Source().End)
	}
	if decl.Source().Input == nil || decl.Source().Input != root.Source().Input {
		t.Errorf("decl does not share the root input")
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		css    string
		code   diag.Code
		reason string
		line   int
		column int
	}{
		{"a {", diag.SynUnclosedBlock, "Unclosed block", 1, 1},
		{"a {\n  b {", diag.SynUnclosedBlock, "Unclosed block", 2, 3},
		{"}", diag.SynUnexpectedClose, "Unexpected }", 1, 1},
		{"a {}}", diag.SynUnexpectedClose, "Unexpected }", 1, 5},
		{"a { b }", diag.SynUnknownWord, "Unknown word", 1, 5},
		{"a;", diag.SynUnknownWord, "Unknown word", 1, 1},
		{"a { b: (c }", diag.SynUnclosedBracket, "Unclosed bracket", 1, 8},
		{"a { b: [c }", diag.SynUnclosedBracket, "Unclosed bracket", 1, 8},
		{"a {\n  content: \"\n}", diag.LexUnclosedQuote, "Unclosed quote", 2, 12},
	}
	for _, tt := range tests {
		_, err := parser.Parse(source.NewInput(tt.css, source.Options{}))
		var se *diag.SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("%q: error %v is not a SyntaxError", tt.css, err)
		}
		if se.Code != tt.code || se.Reason != tt.reason || se.Line != tt.line || se.Column != tt.column {
			t.Errorf("%q: got %v %q %d:%d, want %v %q %d:%d", tt.css,
				se.Code, se.Reason, se.Line, se.Column, tt.code, tt.reason, tt.line, tt.column)
		}
		if se.Source != tt.css {
			t.Errorf("%q: source = %q", tt.css, se.Source)
		}
	}
}
