package diag

import "fmt"

// Code identifies the kind of a SyntaxError.
type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnclosedQuote   Code = 1001
	LexUnclosedComment Code = 1002
	LexUnclosedBracket Code = 1003

	// Парсерные
	SynUnclosedBlock   Code = 2001
	SynUnexpectedClose Code = 2002
	SynUnknownWord     Code = 2003
	SynUnclosedBracket Code = 2004

	// Raised from user code through Node.Error.
	UserError Code = 9001
)

var codeTitle = map[Code]string{
	UnknownCode:        "Unknown error",
	LexUnclosedQuote:   "Unclosed quote",
	LexUnclosedComment: "Unclosed comment",
	LexUnclosedBracket: "Unclosed bracket",
	SynUnclosedBlock:   "Unclosed block",
	SynUnexpectedClose: "Unexpected }",
	SynUnknownWord:     "Unknown word",
	SynUnclosedBracket: "Unclosed bracket",
	UserError:          "User error",
}

// ID returns the stable identifier, e.g. "CSS2001".
func (c Code) ID() string {
	return fmt.Sprintf("CSS%04d", uint16(c))
}

// Title returns the reason text used for errors of this code.
func (c Code) Title() string {
	if title, ok := codeTitle[c]; ok {
		return title
	}
	return codeTitle[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}
