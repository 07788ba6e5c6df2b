package pipeline

import (
	"github.com/spf13/afero"

	"github.com/morishitter/postcss/internal/format"
	"github.com/morishitter/postcss/internal/sourcemap"
)

// Options configure one processing run. Plugins receive them as is.
type Options struct {
	// From is the path of the input css.
	From string
	// To is the path the output will be written to. Map paths are
	// relative to its directory.
	To string
	// Map enables source maps. nil means "only if the input had one".
	Map *MapOptions
	// FS reads previous map files; the OS file system when nil.
	FS afero.Fs
	// Format is the fallback style for nodes built by plugins.
	Format format.Options
}

// MapOptions control the source map of the output. Unset *bool fields are
// derived from the previous maps of the input.
type MapOptions struct {
	// Disabled turns maps off even when the input has a previous map.
	Disabled bool
	// Inline embeds the map into the css as a data: URI.
	Inline *bool
	// Annotation adds the sourceMappingURL comment.
	Annotation *bool
	// AnnotationURL is a custom annotation path, relative to To.
	AnnotationURL string
	// Prev is the map of the input css, as JSON text or decoded.
	PrevText string
	Prev     *sourcemap.Map
	// IgnorePrev skips previous map lookup, annotations included.
	IgnorePrev bool
	// SourcesContent embeds the input css into the map.
	SourcesContent *bool
}

// Bool returns a pointer to v, for the tri-state MapOptions fields.
func Bool(v bool) *bool { return &v }

func (o Options) mapOptions() MapOptions {
	if o.Map == nil {
		return MapOptions{}
	}
	return *o.Map
}

// PrevOptions tells the parser where the previous map of the input is.
func (o Options) PrevOptions() sourcemap.PrevOptions {
	m := o.mapOptions()
	return sourcemap.PrevOptions{
		Text:     m.PrevText,
		Map:      m.Prev,
		Disabled: m.IgnorePrev,
		FS:       o.FS,
	}
}
