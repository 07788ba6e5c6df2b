package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/editorconfig/editorconfig-core-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/format"
	"github.com/morishitter/postcss/internal/token"
)

func TestCheckRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a{}",
		"\uFEFF@charset \"utf-8\";\n\na { color : black !important ; }\n",
		"@media (min-width: 100px) {\n  a /* x */ , b { *zoom: 1 }\n}\n/* tail */",
	}
	for _, css := range inputs {
		res, err := CheckRoundTrip("a.css", css)
		require.NoError(t, err, css)
		assert.True(t, res.OK, css)
		assert.Empty(t, res.Diff)
	}
}

func TestCheckRoundTripSyntaxError(t *testing.T) {
	_, err := CheckRoundTrip("a.css", "a { b: c")
	var serr *diag.SyntaxError
	require.ErrorAs(t, err, &serr)
}

func TestIndentFromDefinition(t *testing.T) {
	tests := []struct {
		def  editorconfig.Definition
		want format.Options
	}{
		{editorconfig.Definition{IndentStyle: editorconfig.IndentStyleTab}, format.Options{UseTabs: true}},
		{editorconfig.Definition{IndentStyle: editorconfig.IndentStyleSpaces, IndentSize: "2"}, format.Options{IndentWidth: 2}},
		{editorconfig.Definition{IndentSize: "tab", TabWidth: 8}, format.Options{IndentWidth: 8}},
		{editorconfig.Definition{}, format.Options{}},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.want, indentFromDefinition(&tt.def), "case %d", i)
	}
}

func TestEditorConfigIndent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".editorconfig"),
		[]byte("root = true\n\n[*.css]\nindent_style = space\nindent_size = 2\n"), 0o644))

	assert.Equal(t, format.Options{IndentWidth: 2}, EditorConfigIndent(filepath.Join(dir, "a.css")))
	assert.Equal(t, format.Options{}, EditorConfigIndent(filepath.Join(dir, "a.txt")))
}

func TestTokenizeAndParse(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/a.css":   "a { color: black }",
		"/bad.css": "a { content: \"x }",
	})

	tok, err := Tokenize(fs, "/a.css")
	require.NoError(t, err)
	require.NotEmpty(t, tok.Tokens)
	assert.Equal(t, token.Word, tok.Tokens[0].Kind)
	assert.Equal(t, "/a.css", tok.Input.File)

	_, err = Tokenize(fs, "/bad.css")
	var serr *diag.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, diag.LexUnclosedQuote, serr.Code)

	parsed, err := Parse(fs, "/a.css")
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.Root.Len())
}
