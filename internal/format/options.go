package format

import "strings"

// Options tune the formatting used when a tree gives no example to copy.
type Options struct {
	// IndentWidth is the number of spaces per nesting level, 4 when zero.
	IndentWidth int
	// UseTabs indents with one tab per level.
	UseTabs bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

func (o Options) indent() string {
	o = o.withDefaults()
	if o.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", o.IndentWidth)
}

// Detector names.
const (
	rawColon         = "colon"
	rawIndent        = "indent"
	rawBeforeDecl    = "beforeDecl"
	rawBeforeRule    = "beforeRule"
	rawBeforeOpen    = "beforeOpen"
	rawBeforeClose   = "beforeClose"
	rawBeforeComment = "beforeComment"
	rawAfter         = "after"
	rawEmptyBody     = "emptyBody"
	rawCommentLeft   = "commentLeft"
	rawCommentRight  = "commentRight"
)

func defaultRaws(o Options) map[string]string {
	return map[string]string{
		rawColon:         ": ",
		rawIndent:        o.indent(),
		rawBeforeDecl:    "\n",
		rawBeforeRule:    "\n",
		rawBeforeOpen:    " ",
		rawBeforeClose:   "\n",
		rawBeforeComment: "\n",
		rawAfter:         "\n",
		rawEmptyBody:     "",
		rawCommentLeft:   " ",
		rawCommentRight:  " ",
	}
}
