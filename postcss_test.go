package postcss_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morishitter/postcss"
)

func addContent() postcss.Plugin {
	return postcss.PluginFunc(func(root *postcss.Root, _ postcss.Options) (*postcss.Root, error) {
		var err error
		root.EachRule(func(r *postcss.Rule, _ int) bool {
			if !strings.Contains(r.Selector, "::before") && !strings.Contains(r.Selector, "::after") {
				return true
			}
			hasContent := r.Some(func(n postcss.Node) bool {
				d, ok := n.(*postcss.Decl)
				return ok && d.Prop == "content"
			})
			if !hasContent {
				err = r.Prepend(postcss.Descriptor{Prop: "content", Value: `""`})
			}
			return err == nil
		})
		return nil, err
	})
}

func TestProcessCSS(t *testing.T) {
	res, err := postcss.New(addContent()).Process(context.Background(), postcss.CSS("a::before{top:0}"), postcss.Options{})
	require.NoError(t, err)
	assert.Equal(t, `a::before{content:"";top:0}`, res.CSS)
}

func TestProcessParsedTree(t *testing.T) {
	root, err := postcss.Parse("a::before{top:0}", postcss.Options{})
	require.NoError(t, err)

	res, err := postcss.New(addContent()).Process(context.Background(), root, postcss.Options{})
	require.NoError(t, err)
	assert.Equal(t, `a::before{content:"";top:0}`, res.CSS)
}

func TestProcessPreviousResult(t *testing.T) {
	ctx := context.Background()
	first, err := postcss.New().Process(ctx, postcss.CSS("a::before{top:0}"), postcss.Options{})
	require.NoError(t, err)

	res, err := postcss.New(addContent()).Process(ctx, first, postcss.Options{})
	require.NoError(t, err)
	assert.Equal(t, `a::before{content:"";top:0}`, res.String())
}

func TestTakesMapFromPreviousResult(t *testing.T) {
	ctx := context.Background()
	one, err := postcss.New().Process(ctx, postcss.CSS("a{}"), postcss.Options{
		From: "a.css",
		To:   "b.css",
		Map:  &postcss.MapOptions{Inline: postcss.Bool(false)},
	})
	require.NoError(t, err)

	two, err := postcss.New().Process(ctx, one, postcss.Options{
		To:  "c.css",
		Map: &postcss.MapOptions{Inline: postcss.Bool(false)},
	})
	require.NoError(t, err)
	require.NotNil(t, two.Map)
	assert.Equal(t, []string{"a.css"}, two.Map.Map().Sources)
}

func TestAcceptsMapFromPreviousRun(t *testing.T) {
	ctx := context.Background()
	one, err := postcss.New().Process(ctx, postcss.CSS("a{}"), postcss.Options{
		From: "a.css",
		To:   "b.css",
		Map:  &postcss.MapOptions{Inline: postcss.Bool(false)},
	})
	require.NoError(t, err)

	two, err := postcss.New().Process(ctx, postcss.CSS(one.CSS), postcss.Options{
		From: "b.css",
		To:   "c.css",
		Map:  &postcss.MapOptions{Prev: one.Map.Map(), Inline: postcss.Bool(false)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.css"}, two.Map.Map().Sources)
}

func TestSyntaxErrorHasFileName(t *testing.T) {
	_, err := postcss.New().Process(context.Background(), postcss.CSS("a {"), postcss.Options{From: "a.css"})

	var serr *postcss.SyntaxError
	require.ErrorAs(t, err, &serr)
	abs, _ := filepath.Abs("a.css")
	assert.Equal(t, abs, serr.File)
	assert.True(t, strings.HasSuffix(serr.Error(), "a.css:1:1: Unclosed block"), serr.Error())
}

func TestPluginReplacesRoot(t *testing.T) {
	empty := postcss.PluginFunc(func(*postcss.Root, postcss.Options) (*postcss.Root, error) {
		return postcss.NewRoot(), nil
	})
	res, err := postcss.New(empty).Process(context.Background(), postcss.CSS("a {}"), postcss.Options{})
	require.NoError(t, err)
	assert.Equal(t, "", res.CSS)
}

func TestCallsAllPlugins(t *testing.T) {
	var calls string
	mark := func(s string) postcss.Plugin {
		return postcss.PluginFunc(func(*postcss.Root, postcss.Options) (*postcss.Root, error) {
			calls += s
			return nil, nil
		})
	}
	_, err := postcss.New(mark("a"), mark("b")).Process(context.Background(), postcss.CSS(""), postcss.Options{})
	require.NoError(t, err)
	assert.Equal(t, "ab", calls)
}

func TestUseReturnsProcessor(t *testing.T) {
	noop := postcss.PluginFunc(func(*postcss.Root, postcss.Options) (*postcss.Root, error) { return nil, nil })
	p := postcss.New().Use(noop).Use(postcss.New(noop, noop))
	assert.Len(t, p.Plugins(), 3)
	assert.Empty(t, postcss.New().Plugins())
}

func TestBuildOwnCSS(t *testing.T) {
	root := postcss.NewRoot()
	rule := postcss.NewRule("a")
	require.NoError(t, rule.Append(postcss.NewDecl("color", "black")))
	require.NoError(t, root.Append(rule))

	assert.Equal(t, "a {\n    color: black\n}", postcss.Stringify(root))
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, postcss.Version())
}
