package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/morishitter/postcss/internal/lexer"
	"github.com/morishitter/postcss/internal/parser"
	"github.com/morishitter/postcss/internal/source"
)

func TestFormatASTPretty(t *testing.T) {
	in := source.NewInput("a { color: black }\n@import \"x.css\";\n/* c */", source.Options{})
	root, err := parser.Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, root); err != nil {
		t.Fatal(err)
	}
	want := "Root (1:1)\n" +
		"├─ Rule \"a\" (1:1-1:18)\n" +
		"│  └─ Decl color: black (1:5-1:16)\n" +
		"├─ AtRule @import \"x.css\" (no body) (2:1-2:16)\n" +
		"└─ Comment \"c\" (3:1-3:7)\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatASTJSON(t *testing.T) {
	root, err := parser.Parse(source.NewInput("a{}", source.Options{}))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, root); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["type"] != "root" {
		t.Errorf("type = %v", decoded["type"])
	}
	nodes, _ := decoded["nodes"].([]any)
	if len(nodes) != 1 {
		t.Fatalf("nodes = %v", decoded["nodes"])
	}
}

func TestFormatTokens(t *testing.T) {
	in := source.NewInput("a{\n}", source.Options{})
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, in, tokens); err != nil {
		t.Fatal(err)
	}
	want := "  1: word      \"a\" at 1:1-1:1\n" +
		"  2: {         \"{\" at 1:2-1:2\n" +
		"  3: space     \"\\n\" at 1:3-1:3\n" +
		"  4: }         \"}\" at 2:1-2:1\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, in, tokens); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 4 || out[3].Start.Line != 2 {
		t.Errorf("json tokens = %+v", out)
	}
}
