package sourcemap

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

// Map is the JSON form of a version 3 source map.
type Map struct {
	Version        int       `json:"version"`
	File           string    `json:"file,omitempty"`
	SourceRoot     string    `json:"sourceRoot,omitempty"`
	Sources        []string  `json:"sources"`
	SourcesContent []*string `json:"sourcesContent,omitempty"`
	Names          []string  `json:"names"`
	Mappings       string    `json:"mappings"`
}

// ParseMap decodes a JSON source map.
func ParseMap(text string) (*Map, error) {
	var m Map
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return nil, fmt.Errorf("sourcemap: %w", err)
	}
	if m.Version != 3 {
		return nil, fmt.Errorf("sourcemap: unsupported version %d", m.Version)
	}
	return &m, nil
}

// String encodes the map as compact JSON.
func (m *Map) String() string {
	data, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(data)
}

// Mapping links a generated position to an original one.
// A mapping without Source only marks a generated position.
type Mapping struct {
	GenLine    int // 1-based
	GenColumn  int // 0-based
	Source     string
	OrigLine   int // 1-based
	OrigColumn int // 0-based
	Name       string
}

func compareGenerated(a, b *Mapping) int {
	if a.GenLine != b.GenLine {
		return a.GenLine - b.GenLine
	}
	if a.GenColumn != b.GenColumn {
		return a.GenColumn - b.GenColumn
	}
	if c := strings.Compare(a.Source, b.Source); c != 0 {
		return c
	}
	if a.OrigLine != b.OrigLine {
		return a.OrigLine - b.OrigLine
	}
	if a.OrigColumn != b.OrigColumn {
		return a.OrigColumn - b.OrigColumn
	}
	return strings.Compare(a.Name, b.Name)
}

// Join resolves p against root the way map consumers do: absolute paths and
// URLs are returned unchanged, everything else is joined and cleaned.
func Join(root, p string) string {
	if p == "" {
		return root
	}
	if isAbsolute(p) || root == "" {
		return p
	}
	if scheme, rest, ok := splitURL(root); ok {
		return scheme + path.Join(rest, p)
	}
	return path.Join(root, p)
}

func isAbsolute(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	_, _, ok := splitURL(p)
	return ok
}

// splitURL splits "scheme://rest" or "data:rest".
func splitURL(p string) (scheme, rest string, ok bool) {
	if strings.HasPrefix(p, "data:") {
		return "data:", p[len("data:"):], true
	}
	idx := strings.Index(p, "://")
	if idx <= 0 {
		return "", "", false
	}
	for _, r := range p[:idx] {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isAlpha && r != '+' && r != '-' && r != '.' {
			return "", "", false
		}
	}
	return p[:idx+3], p[idx+3:], true
}
