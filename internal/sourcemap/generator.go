package sourcemap

import (
	"encoding/json"
	"slices"
	"strings"
)

// Generator accumulates mappings and produces a Map.
type Generator struct {
	file     string
	mappings []Mapping
	contents map[string]string
}

// NewGenerator creates a generator for the output named file.
func NewGenerator(file string) *Generator {
	return &Generator{file: file}
}

// File returns the output file name recorded in the map.
func (g *Generator) File() string { return g.file }

// AddMapping records one mapping.
func (g *Generator) AddMapping(m Mapping) {
	g.mappings = append(g.mappings, m)
}

// Mappings returns recorded mappings in insertion order.
func (g *Generator) Mappings() []Mapping {
	return slices.Clone(g.mappings)
}

// SetSourceContent embeds content for source.
func (g *Generator) SetSourceContent(source, content string) {
	if g.contents == nil {
		g.contents = make(map[string]string)
	}
	g.contents[source] = content
}

// SourceContent returns the content embedded for source.
func (g *Generator) SourceContent(source string) (string, bool) {
	content, ok := g.contents[source]
	return content, ok
}

// ApplySourceMap rewrites every mapping that points into sourceFile so it
// points to wherever prev says that position came from. Sources of prev
// are joined with mapPath, the directory of prev relative to this map.
// Positions prev does not know keep pointing at sourceFile.
func (g *Generator) ApplySourceMap(prev *Consumer, sourceFile, mapPath string, copyContent bool) {
	if sourceFile == "" {
		sourceFile = prev.File()
	}
	for i := range g.mappings {
		m := &g.mappings[i]
		if m.Source != sourceFile || m.OrigLine == 0 {
			continue
		}
		orig, ok := prev.OriginalPositionFor(m.OrigLine, m.OrigColumn)
		if !ok {
			continue
		}
		m.Source = Join(mapPath, orig.Source)
		m.OrigLine = orig.Line
		m.OrigColumn = orig.Column
		if orig.Name != "" {
			m.Name = orig.Name
		}
	}
	if !copyContent {
		return
	}
	for _, src := range prev.Sources() {
		if content, ok := prev.SourceContentFor(src); ok {
			g.SetSourceContent(Join(mapPath, src), content)
		}
	}
}

// Map builds the JSON form. Sources and names are listed in order of first
// use; sourcesContent is present only when some content was set.
func (g *Generator) Map() *Map {
	sorted := slices.Clone(g.mappings)
	slices.SortStableFunc(sorted, func(a, b Mapping) int { return compareGenerated(&a, &b) })

	m := &Map{Version: 3, File: g.file, Sources: []string{}, Names: []string{}}
	sourceIdx := make(map[string]int)
	nameIdx := make(map[string]int)
	for _, mp := range g.mappings {
		if mp.Source != "" {
			if _, ok := sourceIdx[mp.Source]; !ok {
				sourceIdx[mp.Source] = len(m.Sources)
				m.Sources = append(m.Sources, mp.Source)
			}
		}
		if mp.Name != "" {
			if _, ok := nameIdx[mp.Name]; !ok {
				nameIdx[mp.Name] = len(m.Names)
				m.Names = append(m.Names, mp.Name)
			}
		}
	}

	var (
		sb                                               strings.Builder
		prevLine                                         = 1
		prevCol, prevSrc, prevOrigL, prevOrigC, prevName int
	)
	for i := range sorted {
		mp := &sorted[i]
		if i > 0 && compareGenerated(mp, &sorted[i-1]) == 0 {
			continue
		}
		if mp.GenLine != prevLine {
			prevCol = 0
			for prevLine < mp.GenLine {
				sb.WriteByte(';')
				prevLine++
			}
		} else if i > 0 {
			sb.WriteByte(',')
		}
		encodeVLQ(&sb, mp.GenColumn-prevCol)
		prevCol = mp.GenColumn
		if mp.Source == "" {
			continue
		}
		src := sourceIdx[mp.Source]
		encodeVLQ(&sb, src-prevSrc)
		prevSrc = src
		encodeVLQ(&sb, mp.OrigLine-1-prevOrigL)
		prevOrigL = mp.OrigLine - 1
		encodeVLQ(&sb, mp.OrigColumn-prevOrigC)
		prevOrigC = mp.OrigColumn
		if mp.Name != "" {
			name := nameIdx[mp.Name]
			encodeVLQ(&sb, name-prevName)
			prevName = name
		}
	}
	m.Mappings = sb.String()

	if len(g.contents) > 0 {
		m.SourcesContent = make([]*string, len(m.Sources))
		for i, src := range m.Sources {
			if content, ok := g.contents[src]; ok {
				m.SourcesContent[i] = &content
			}
		}
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (g *Generator) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Map())
}

// String returns the map as JSON text.
func (g *Generator) String() string {
	return g.Map().String()
}

// Consumer parses the generated map back, for chaining and tests.
func (g *Generator) Consumer() (*Consumer, error) {
	return NewConsumerFromMap(g.Map())
}
