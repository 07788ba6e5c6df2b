package diag

import (
	"bufio"
	"strings"

	"github.com/apparentlymart/go-textseg/v13/textseg"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// CaretColor paints the caret produced by Highlight(true).
var CaretColor = newCaretColor()

func newCaretColor() *color.Color {
	c := color.New(color.Bold, color.FgRed)
	c.EnableColor()
	return c
}

// Highlight renders the line before the error, the broken line, a caret
// under Column and the line after it. Without a source or a position it
// degrades to the plain message.
func (e *SyntaxError) Highlight(useColor bool) string {
	if e.Source == "" || !e.HasPosition() {
		return e.Message()
	}
	lines := strings.Split(e.Source, "\n")
	num := e.Line - 1
	if num >= len(lines) {
		num = len(lines) - 1
	}

	var sb strings.Builder
	if num > 0 {
		sb.WriteString(lines[num-1])
		sb.WriteByte('\n')
	}
	broken := lines[num]
	sb.WriteString(broken)
	sb.WriteByte('\n')
	sb.WriteString(caretPadding(broken, e.Column-1))
	if useColor {
		sb.WriteString(CaretColor.Sprint("^"))
	} else {
		sb.WriteByte('^')
	}
	if num < len(lines)-1 {
		sb.WriteByte('\n')
		sb.WriteString(lines[num+1])
	}
	return sb.String()
}

// caretPadding returns the whitespace that moves the caret under byte
// offset n of line. Tabs are copied, other grapheme clusters are replaced
// by as many spaces as they occupy on a terminal.
func caretPadding(line string, n int) string {
	if n <= 0 {
		return ""
	}
	prefix := line
	if n < len(line) {
		prefix = line[:n]
	}

	var sb strings.Builder
	sc := bufio.NewScanner(strings.NewReader(prefix))
	sc.Buffer(make([]byte, 0, len(prefix)+1), len(prefix)+1)
	sc.Split(textseg.ScanGraphemeClusters)
	for sc.Scan() {
		cluster := sc.Text()
		if cluster == "\t" {
			sb.WriteByte('\t')
			continue
		}
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			w = 1
		}
		sb.WriteString(strings.Repeat(" ", w))
	}
	// the position may point past the end of the line
	if n > len(line) {
		sb.WriteString(strings.Repeat(" ", n-len(line)))
	}
	return sb.String()
}
