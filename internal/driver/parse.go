package driver

import (
	"github.com/spf13/afero"

	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/pipeline"
)

type ParseResult struct {
	Path string
	Root *ast.Root
}

// Parse reads path into a tree. Previous maps are looked up through fsys.
func Parse(fsys afero.Fs, path string) (*ParseResult, error) {
	css, err := ReadInput(fsys, path)
	if err != nil {
		return nil, err
	}
	root, err := pipeline.Parse(css, pipeline.Options{From: path, FS: fsys})
	if err != nil {
		return nil, err
	}
	return &ParseResult{Path: path, Root: root}, nil
}
