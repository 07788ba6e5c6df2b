package sourcemap

import (
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorMappings(t *testing.T) {
	g := NewGenerator("b.css")
	g.AddMapping(Mapping{GenLine: 1, GenColumn: 0, Source: "a.css", OrigLine: 1, OrigColumn: 0})
	g.AddMapping(Mapping{GenLine: 1, GenColumn: 4, Source: "a.css", OrigLine: 1, OrigColumn: 4})
	g.AddMapping(Mapping{GenLine: 2, GenColumn: 2, Source: "a.css", OrigLine: 2, OrigColumn: 2})
	// duplicates are written once
	g.AddMapping(Mapping{GenLine: 2, GenColumn: 2, Source: "a.css", OrigLine: 2, OrigColumn: 2})

	m := g.Map()
	assert.Equal(t, 3, m.Version)
	assert.Equal(t, "b.css", m.File)
	assert.Equal(t, []string{"a.css"}, m.Sources)
	assert.Equal(t, "AAAA,IAAI;EACF", m.Mappings)
	assert.Nil(t, m.SourcesContent)
}

func TestGeneratorSourcesContent(t *testing.T) {
	g := NewGenerator("out.css")
	g.AddMapping(Mapping{GenLine: 1, Source: "a.css", OrigLine: 1})
	g.AddMapping(Mapping{GenLine: 2, Source: "b.css", OrigLine: 1})
	g.SetSourceContent("b.css", "b {}")

	m := g.Map()
	require.Len(t, m.SourcesContent, 2)
	assert.Nil(t, m.SourcesContent[0])
	require.NotNil(t, m.SourcesContent[1])
	assert.Equal(t, "b {}", *m.SourcesContent[1])
}

func TestConsumerLookup(t *testing.T) {
	g := NewGenerator("b.css")
	g.AddMapping(Mapping{GenLine: 1, GenColumn: 0, Source: "a.css", OrigLine: 3, OrigColumn: 2, Name: "x"})
	g.AddMapping(Mapping{GenLine: 1, GenColumn: 10, Source: "a.css", OrigLine: 4, OrigColumn: 0})
	g.AddMapping(Mapping{GenLine: 3, GenColumn: 5, Source: "a.css", OrigLine: 9, OrigColumn: 1})

	c, err := NewConsumer(g.String())
	require.NoError(t, err)

	pos, ok := c.OriginalPositionFor(1, 7)
	require.True(t, ok)
	assert.Equal(t, OriginalPosition{Source: "a.css", Line: 3, Column: 2, Name: "x"}, pos)

	pos, ok = c.OriginalPositionFor(1, 10)
	require.True(t, ok)
	assert.Equal(t, 4, pos.Line)

	// the greatest lower bound never crosses lines
	_, ok = c.OriginalPositionFor(2, 0)
	assert.False(t, ok)
	_, ok = c.OriginalPositionFor(3, 4)
	assert.False(t, ok)
	assert.Equal(t, 3, c.MaxGeneratedLine())
}

func TestConsumerSourceRoot(t *testing.T) {
	content := "a{}"
	m := &Map{
		Version:        3,
		SourceRoot:     "src",
		Sources:        []string{"a.css"},
		SourcesContent: []*string{&content},
		Mappings:       "AAAA",
	}
	c, err := NewConsumerFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.css"}, c.Sources())
	got, ok := c.SourceContentFor("a.css")
	require.True(t, ok)
	assert.Equal(t, content, got)
}

func TestConsumerRejectsBrokenMaps(t *testing.T) {
	for name, text := range map[string]string{
		"not json":       "{",
		"wrong version":  `{"version":2,"sources":["a.css"],"mappings":"AAAA"}`,
		"bad source idx": `{"version":3,"sources":["a.css"],"mappings":"ACAA"}`,
		"bad vlq":        `{"version":3,"sources":["a.css"],"mappings":"A!"}`,
		"bad field num":  `{"version":3,"sources":["a.css"],"mappings":"AA"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewConsumer(text)
			assert.Error(t, err)
		})
	}
}

func TestApplySourceMap(t *testing.T) {
	prev := NewGenerator("b.css")
	prev.AddMapping(Mapping{GenLine: 1, GenColumn: 0, Source: "a.css", OrigLine: 3, OrigColumn: 2})
	prev.SetSourceContent("a.css", "original")
	prevConsumer, err := prev.Consumer()
	require.NoError(t, err)

	g := NewGenerator("c.css")
	g.AddMapping(Mapping{GenLine: 1, GenColumn: 0, Source: "b.css", OrigLine: 1, OrigColumn: 0})
	g.AddMapping(Mapping{GenLine: 2, GenColumn: 0, Source: "b.css", OrigLine: 5, OrigColumn: 0})
	g.ApplySourceMap(prevConsumer, "b.css", "..", true)

	got := g.Mappings()
	assert.Equal(t, Mapping{GenLine: 1, Source: "../a.css", OrigLine: 3, OrigColumn: 2}, got[0])
	assert.Equal(t, "b.css", got[1].Source, "unknown positions keep the intermediate file")

	content, ok := g.SourceContent("../a.css")
	require.True(t, ok)
	assert.Equal(t, "original", content)
	assert.Equal(t, []string{"../a.css", "b.css"}, g.Map().Sources)
}

func TestJoin(t *testing.T) {
	tests := []struct{ root, p, want string }{
		{"", "a.css", "a.css"},
		{"..", "../a.css", "../../a.css"},
		{"../one/maps", "../../source/a.css", "../source/a.css"},
		{"out", "/abs/a.css", "/abs/a.css"},
		{"http://host/css", "a.css", "http://host/css/a.css"},
		{"dir", "webpack://pkg/a.css", "webpack://pkg/a.css"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Join(tt.root, tt.p), "Join(%q, %q)", tt.root, tt.p)
	}
}

func TestAnnotation(t *testing.T) {
	url, ok := Annotation("a{}\n/*# sourceMappingURL=a.css.map */\nb{}")
	require.True(t, ok)
	assert.Equal(t, "a.css.map", url)

	_, ok = Annotation("a{}")
	assert.False(t, ok)
}

func simpleMap(t *testing.T) string {
	t.Helper()
	g := NewGenerator("b.css")
	g.AddMapping(Mapping{GenLine: 1, Source: "a.css", OrigLine: 1})
	return g.String()
}

func TestLoadInline(t *testing.T) {
	text := simpleMap(t)
	css := "a{}\n/*# sourceMappingURL=data:application/json;base64," +
		base64.StdEncoding.EncodeToString([]byte(text)) + " */"

	prev := Load(css, "", PrevOptions{})
	require.NotNil(t, prev)
	assert.True(t, prev.Inline)
	assert.Equal(t, text, prev.Text)
	assert.Equal(t, []string{"a.css"}, prev.Consumer().Sources())
}

func TestLoadURIEncoded(t *testing.T) {
	css := "a{}\n/*# sourceMappingURL=data:application/json,%7B%22version%22%3A3%2C%22sources%22%3A%5B%22a.css%22%5D%2C%22names%22%3A%5B%5D%2C%22mappings%22%3A%22AAAA%22%7D */"
	prev := Load(css, "", PrevOptions{})
	require.NotNil(t, prev)
	assert.Equal(t, []string{"a.css"}, prev.Consumer().Sources())
}

func TestLoadFromAnnotationFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := filepath.FromSlash("/work/one")
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "maps", "b.css.map"), []byte(simpleMap(t)+"\n"), 0o644))

	css := "a{}\n/*# sourceMappingURL=maps/b.css.map */"
	prev := Load(css, filepath.Join(dir, "b.css"), PrevOptions{FS: fsys})
	require.NotNil(t, prev)
	assert.False(t, prev.Inline)
	assert.Equal(t, filepath.Join(dir, "maps"), prev.Root)

	missing := Load("a{}\n/*# sourceMappingURL=none.map */", filepath.Join(dir, "b.css"), PrevOptions{FS: fsys})
	assert.Nil(t, missing)
}

func TestLoadDiscardsMalformed(t *testing.T) {
	assert.Nil(t, Load("a{}", "", PrevOptions{Text: "{broken"}))
	assert.Nil(t, Load("a{}", "", PrevOptions{Text: `{"version":3,"sources":[],"mappings":""}`}))
	// mappings for line 5 cannot belong to one-line css
	assert.Nil(t, Load("a{}", "", PrevOptions{Text: `{"version":3,"sources":["a.css"],"mappings":";;;;AAAA"}`}))
	assert.Nil(t, Load("/*# sourceMappingURL=data:application/json;charset=utf-16,xx */", "", PrevOptions{}))
	assert.Nil(t, Load("a{}", "", PrevOptions{Text: simpleMap(t), Disabled: true}))
}

func TestLoadExplicitMapObject(t *testing.T) {
	m, err := ParseMap(simpleMap(t))
	require.NoError(t, err)
	prev := Load("a{}\n/*# sourceMappingURL=b.css.map */", "", PrevOptions{Map: m})
	require.NotNil(t, prev)
	assert.False(t, prev.Inline)
	assert.Equal(t, "b.css.map", prev.Annotation)
}
