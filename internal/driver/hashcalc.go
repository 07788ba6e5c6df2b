package driver

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/morishitter/postcss/internal/pipeline"
	"github.com/morishitter/postcss/internal/version"
)

// Digest is a SHA-256 sum.
type Digest [sha256.Size]byte

// IsZero reports whether d was never computed.
func (d Digest) IsZero() bool { return d == Digest{} }

// cacheKey: H(version || path || options || plugins || css). Every part is
// length-prefixed so neighbours cannot run into each other.
func cacheKey(path, css string, opts pipeline.Options, plugins []string) Digest {
	h := sha256.New()
	write := func(s string) {
		_, _ = fmt.Fprintf(h, "%d:", len(s))
		_, _ = io.WriteString(h, s)
	}
	write(version.Version)
	write(path)
	write(opts.To)
	write(describeMap(opts.Map))
	write(fmt.Sprintf("%d/%t", opts.Format.IndentWidth, opts.Format.UseTabs))
	for _, p := range plugins {
		write(p)
	}
	write(css)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func describeMap(m *pipeline.MapOptions) string {
	if m == nil {
		return "auto"
	}
	tri := func(b *bool) string {
		if b == nil {
			return "-"
		}
		return fmt.Sprint(*b)
	}
	prev := m.PrevText
	if m.Prev != nil {
		prev = m.Prev.String()
	}
	return fmt.Sprintf("disabled=%t inline=%s annotation=%s url=%q content=%s ignoreprev=%t prev=%q",
		m.Disabled, tri(m.Inline), tri(m.Annotation), m.AnnotationURL, tri(m.SourcesContent), m.IgnorePrev, prev)
}
