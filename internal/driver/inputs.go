package driver

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ExpandInputs resolves file names and glob patterns (with ** support) to a
// sorted list of files. A plain name that does not exist is an error; a
// pattern that matches nothing is not.
func ExpandInputs(fsys afero.Fs, patterns []string) ([]string, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, pattern := range patterns {
		slashed := filepath.ToSlash(pattern)
		if !hasMeta(slashed) {
			info, err := fsys.Stat(pattern)
			if err != nil {
				return nil, fmt.Errorf("input %s: %w", pattern, err)
			}
			if info.IsDir() {
				pattern = filepath.Join(pattern, "**", "*.css")
				slashed = filepath.ToSlash(pattern)
			} else {
				add(pattern)
				continue
			}
		}
		base, rest := doublestar.SplitPattern(slashed)
		if !doublestar.ValidatePattern(rest) {
			return nil, fmt.Errorf("input %s: bad pattern", pattern)
		}
		sub := fsys
		if base != "." {
			sub = afero.NewBasePathFs(fsys, filepath.FromSlash(base))
		}
		matches, err := doublestar.Glob(afero.NewIOFS(sub), rest, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", pattern, err)
		}
		for _, m := range matches {
			add(filepath.Join(filepath.FromSlash(base), filepath.FromSlash(m)))
		}
	}
	slices.Sort(files)
	return files, nil
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// ReadInput reads a css file. UTF-16 files with a byte order mark are
// converted to UTF-8; a UTF-8 BOM is dropped.
func ReadInput(fsys afero.Fs, path string) (string, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", err
	}
	return decodeCSS(data)
}

func decodeCSS(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(out), nil
}
