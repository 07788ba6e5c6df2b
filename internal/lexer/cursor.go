package lexer

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"github.com/morishitter/postcss/internal/source"
)

// Cursor идет по байтам css; за концом текста все чтения дают 0.
type Cursor struct {
	Src   string
	Off   uint32
	Limit uint32 // len(Src)
}

func NewCursor(in *source.Input) Cursor {
	limit, err := safecast.Conv[uint32](len(in.CSS))
	if err != nil {
		panic(fmt.Errorf("len css overflow: %w", err))
	}
	return Cursor{Src: in.CSS, Limit: limit}
}

func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

// Peek returns the current byte.
func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// PeekAt returns the byte n positions ahead.
func (c *Cursor) PeekAt(n uint32) byte {
	if i := c.Off + n; i < c.Limit {
		return c.Src[i]
	}
	return 0
}

// Bump consumes one byte and returns it.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.Off++
	}
	return b
}

// Mark is the offset a token started at.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// Since returns the span and text consumed after m.
func (c *Cursor) Since(m Mark) (source.Span, string) {
	return source.Span{Start: uint32(m), End: c.Off}, c.Src[m:c.Off]
}

// Index returns the offset of the first s at or after Off+from, or -1.
func (c *Cursor) Index(s string, from uint32) int {
	start := c.Off + from
	if start >= c.Limit {
		return -1
	}
	if i := strings.Index(c.Src[start:c.Limit], s); i >= 0 {
		return int(start) + i
	}
	return -1
}

// SkipTo moves the cursor to off, clamped to Limit.
func (c *Cursor) SkipTo(off int) {
	u, err := safecast.Conv[uint32](off)
	if err != nil || u > c.Limit {
		u = c.Limit
	}
	c.Off = u
}
