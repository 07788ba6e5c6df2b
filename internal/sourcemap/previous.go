package sourcemap

import (
	"encoding/base64"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

var annotationRe = regexp.MustCompile(`/\*\s*# sourceMappingURL=(.*)\s*\*/`)

// AnnotationPrefix starts the text of an annotation comment.
const AnnotationPrefix = "# sourceMappingURL="

// Annotation returns the URL of the first sourceMappingURL comment in css.
func Annotation(css string) (string, bool) {
	match := annotationRe.FindStringSubmatch(css)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// PrevOptions tells Load where a previous map may come from.
type PrevOptions struct {
	// Text is map JSON supplied by the caller.
	Text string
	// Map is a decoded map supplied by the caller; ignored when Text is set.
	Map *Map
	// Disabled turns off every lookup, including annotations.
	Disabled bool
	// FS reads annotation targets; the OS file system when nil.
	FS afero.Fs
}

// Previous is a map left by an earlier processing step.
type Previous struct {
	Text       string
	Annotation string
	Inline     bool
	// Root is the directory of the map file when it was read from disk.
	Root string
	// File is the absolute path (or id) of the input this map belongs to.
	File string

	consumer *Consumer
}

// Load finds the previous map of css. It returns nil when there is none or
// when the candidate cannot be decoded or does not fit css.
func Load(css, from string, opts PrevOptions) *Previous {
	if opts.Disabled {
		return nil
	}
	p := &Previous{}
	if ann, ok := Annotation(css); ok {
		p.Annotation = ann
		p.Inline = strings.HasPrefix(ann, "data:")
	}

	text, ok := p.loadText(from, opts)
	if !ok {
		return nil
	}
	consumer, err := NewConsumer(text)
	if err != nil || !fits(consumer, css) {
		return nil
	}
	p.Text = text
	p.consumer = consumer
	return p
}

func (p *Previous) loadText(from string, opts PrevOptions) (string, bool) {
	switch {
	case opts.Text != "":
		return opts.Text, true
	case opts.Map != nil:
		return opts.Map.String(), true
	case p.Inline:
		return decodeInline(p.Annotation)
	case p.Annotation != "":
		fsys := opts.FS
		if fsys == nil {
			fsys = afero.NewOsFs()
		}
		mapPath := p.Annotation
		if from != "" {
			mapPath = filepath.Join(filepath.Dir(from), mapPath)
		}
		p.Root = filepath.Dir(mapPath)
		data, err := afero.ReadFile(fsys, mapPath)
		if err != nil {
			return "", false
		}
		return strings.TrimSpace(string(data)), true
	default:
		return "", false
	}
}

var inlineBase64Re = regexp.MustCompile(`^data:application/json;(?:charset=[^;,]+;)?base64,`)

func decodeInline(annotation string) (string, bool) {
	const plain = "data:application/json,"
	if strings.HasPrefix(annotation, plain) {
		text, err := url.PathUnescape(annotation[len(plain):])
		return text, err == nil
	}
	if loc := inlineBase64Re.FindStringIndex(annotation); loc != nil {
		data, err := base64.StdEncoding.DecodeString(annotation[loc[1]:])
		return string(data), err == nil
	}
	return "", false
}

// fits rejects maps that cannot describe css: no sources at all, or
// mappings for lines css does not have.
func fits(c *Consumer, css string) bool {
	if len(c.Sources()) == 0 {
		return false
	}
	return c.MaxGeneratedLine() <= strings.Count(css, "\n")+1
}

// Consumer returns the decoded map.
func (p *Previous) Consumer() *Consumer { return p.consumer }

// WithContent reports whether the map embeds source contents.
func (p *Previous) WithContent() bool {
	return p.consumer != nil && p.consumer.HasContents()
}
