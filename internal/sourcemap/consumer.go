package sourcemap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// OriginalPosition is the answer of a Consumer lookup.
type OriginalPosition struct {
	Source string
	Line   int // 1-based
	Column int // 0-based
	Name   string
}

type segment struct {
	genColumn  int
	source     int // -1 when the segment carries no original position
	origLine   int
	origColumn int
	name       int
}

// Consumer answers original position lookups for one parsed map.
type Consumer struct {
	raw      *Map
	sources  []string // with sourceRoot applied
	lines    [][]segment
	maxLine  int
	contents map[string]string
}

// NewConsumer parses map text.
func NewConsumer(text string) (*Consumer, error) {
	m, err := ParseMap(text)
	if err != nil {
		return nil, err
	}
	return NewConsumerFromMap(m)
}

// NewConsumerFromMap builds a consumer for an already decoded map.
func NewConsumerFromMap(m *Map) (*Consumer, error) {
	if m == nil {
		return nil, errors.New("sourcemap: nil map")
	}
	c := &Consumer{
		raw:      m,
		sources:  make([]string, len(m.Sources)),
		contents: make(map[string]string),
	}
	for i, src := range m.Sources {
		c.sources[i] = Join(m.SourceRoot, src)
		if i < len(m.SourcesContent) && m.SourcesContent[i] != nil {
			c.contents[c.sources[i]] = *m.SourcesContent[i]
		}
	}
	if err := c.decode(m.Mappings); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Consumer) decode(mappings string) error {
	var (
		vals                          []int
		err                           error
		source, origLine, origCol, nm int
	)
	for lineIdx, line := range strings.Split(mappings, ";") {
		genCol := 0
		var segs []segment
		for _, raw := range strings.Split(line, ",") {
			if raw == "" {
				continue
			}
			vals, err = decodeSegment(raw, vals)
			if err != nil {
				return err
			}
			genCol += vals[0]
			seg := segment{genColumn: genCol, source: -1, name: -1}
			switch len(vals) {
			case 1:
			case 4, 5:
				source += vals[1]
				origLine += vals[2]
				origCol += vals[3]
				if source < 0 || source >= len(c.sources) {
					return fmt.Errorf("sourcemap: source index %d out of range", source)
				}
				if origLine < 0 || origCol < 0 {
					return fmt.Errorf("sourcemap: negative original position in %q", raw)
				}
				seg.source, seg.origLine, seg.origColumn = source, origLine+1, origCol
				if len(vals) == 5 {
					nm += vals[4]
					if nm < 0 || nm >= len(c.raw.Names) {
						return fmt.Errorf("sourcemap: name index %d out of range", nm)
					}
					seg.name = nm
				}
			default:
				return fmt.Errorf("sourcemap: segment %q has %d fields", raw, len(vals))
			}
			if genCol < 0 {
				return fmt.Errorf("sourcemap: negative generated column in %q", raw)
			}
			segs = append(segs, seg)
		}
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].genColumn < segs[j].genColumn })
		c.lines = append(c.lines, segs)
		if len(segs) > 0 {
			c.maxLine = lineIdx + 1
		}
	}
	return nil
}

// OriginalPositionFor finds the closest mapping at or before column on the
// given generated line. Mappings on other lines are never used.
func (c *Consumer) OriginalPositionFor(line, column int) (OriginalPosition, bool) {
	if line < 1 || line > len(c.lines) {
		return OriginalPosition{}, false
	}
	segs := c.lines[line-1]
	idx := sort.Search(len(segs), func(i int) bool { return segs[i].genColumn > column }) - 1
	if idx < 0 {
		return OriginalPosition{}, false
	}
	seg := segs[idx]
	if seg.source < 0 {
		return OriginalPosition{}, false
	}
	pos := OriginalPosition{
		Source: c.sources[seg.source],
		Line:   seg.origLine,
		Column: seg.origColumn,
	}
	if seg.name >= 0 {
		pos.Name = c.raw.Names[seg.name]
	}
	return pos, true
}

// SourceContentFor returns the embedded content of source.
func (c *Consumer) SourceContentFor(source string) (string, bool) {
	if content, ok := c.contents[source]; ok {
		return content, true
	}
	content, ok := c.contents[Join(c.raw.SourceRoot, source)]
	return content, ok
}

// HasContents reports whether the map embeds any source content.
func (c *Consumer) HasContents() bool {
	return len(c.contents) > 0
}

// Sources returns source names with the map's sourceRoot applied.
func (c *Consumer) Sources() []string {
	out := make([]string, len(c.sources))
	copy(out, c.sources)
	return out
}

// File returns the map's "file" field.
func (c *Consumer) File() string { return c.raw.File }

// SourceRoot returns the map's "sourceRoot" field.
func (c *Consumer) SourceRoot() string { return c.raw.SourceRoot }

// MaxGeneratedLine returns the last generated line that carries a mapping.
func (c *Consumer) MaxGeneratedLine() int { return c.maxLine }

// Map returns the decoded JSON form.
func (c *Consumer) Map() *Map { return c.raw }

// EachMapping calls fn for every mapping in generated order.
func (c *Consumer) EachMapping(fn func(m Mapping)) {
	for i, segs := range c.lines {
		for _, seg := range segs {
			m := Mapping{GenLine: i + 1, GenColumn: seg.genColumn}
			if seg.source >= 0 {
				m.Source = c.sources[seg.source]
				m.OrigLine = seg.origLine
				m.OrigColumn = seg.origColumn
			}
			if seg.name >= 0 {
				m.Name = c.raw.Names[seg.name]
			}
			fn(m)
		}
	}
}
