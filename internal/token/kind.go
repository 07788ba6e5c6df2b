package token

// Kind represents the category of a css token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// Space is a run of ' ', \n, \t, \r, \f.
	Space
	// Word is anything not covered by other kinds: identifiers, numbers,
	// selectors, escapes, '!important' pieces.
	Word
	// String is a quoted string including its quotes.
	String
	// AtWord is '@' followed by a name.
	AtWord
	// Comment is '/* ... */' including delimiters.
	Comment
	// Brackets is a parenthesized run kept as one token, e.g. url(a.png).
	Brackets

	LBrace    // {
	RBrace    // }
	Colon     // :
	Semicolon // ;
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
)

var kindNames = [...]string{
	Invalid:   "invalid",
	EOF:       "eof",
	Space:     "space",
	Word:      "word",
	String:    "string",
	AtWord:    "at-word",
	Comment:   "comment",
	Brackets:  "brackets",
	LBrace:    "{",
	RBrace:    "}",
	Colon:     ":",
	Semicolon: ";",
	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(?)"
}

// IsPunct reports whether k is a single-byte punctuation kind.
func (k Kind) IsPunct() bool {
	return k >= LBrace && k <= RBracket
}
