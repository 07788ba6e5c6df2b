package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/morishitter/postcss/internal/ast"
)

// FormatASTPretty prints the tree one node per line with box-drawing
// branches, e.g.
//
//	Root (1:1)
//	└─ Rule "a" (1:1-1:18)
//	   └─ Decl color: black (1:5-1:16)
func FormatASTPretty(w io.Writer, root *ast.Root) error {
	var b strings.Builder
	b.WriteString(nodeLabel(root))
	b.WriteByte('\n')
	writeChildren(&b, root, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeChildren(b *strings.Builder, c ast.Container, prefix string) {
	nodes := c.Nodes()
	for i, n := range nodes {
		branch, next := "├─ ", "│  "
		if i == len(nodes)-1 {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix + branch + nodeLabel(n) + "\n")
		if inner, ok := n.(ast.Container); ok && ast.HasChildren(n) {
			writeChildren(b, inner, prefix+next)
		}
	}
}

func nodeLabel(n ast.Node) string {
	var label string
	switch v := n.(type) {
	case *ast.Root:
		label = "Root"
	case *ast.Rule:
		label = fmt.Sprintf("Rule %q", v.Selector)
	case *ast.AtRule:
		label = "AtRule @" + v.Name
		if v.Params != "" {
			label += " " + v.Params
		}
		if !v.HasBody() {
			label += " (no body)"
		}
	case *ast.Decl:
		label = "Decl " + v.Prop + ": " + v.Value
		if v.Important {
			label += " !important"
		}
	case *ast.Comment:
		label = fmt.Sprintf("Comment %q", v.Text)
	}
	if src := n.Source(); src != nil && src.Start.Line > 0 {
		pos := fmt.Sprintf("%d:%d", src.Start.Line, src.Start.Column)
		if src.End.Line > 0 {
			pos += fmt.Sprintf("-%d:%d", src.End.Line, src.End.Column)
		}
		label += " (" + pos + ")"
	}
	return label
}

// FormatASTJSON writes the JSON form of the tree with raws and positions.
func FormatASTJSON(w io.Writer, root *ast.Root) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ast.ToJSON(root))
}
