package lexer

import (
	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/source"
	"github.com/morishitter/postcss/internal/token"
)

// Lexer turns css text into tokens on demand.
type Lexer struct {
	in     *source.Input
	cursor Cursor
	look   *token.Token // 1 элементный буфер для токена
	prev   string       // текст последнего выданного токена, нужен для url(
	err    error        // первая ошибка; после неё Next всегда возвращает её
}

func New(in *source.Input) *Lexer {
	return &Lexer{
		in:     in,
		cursor: NewCursor(in),
	}
}

// Next возвращает следующий токен.
// После EOF всегда возвращает EOF, после ошибки всегда ту же ошибку.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, nil
	}
	if lx.err != nil {
		return token.Token{Kind: token.Invalid, Span: lx.emptySpan()}, lx.err
	}
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}, nil
	}

	var (
		tok token.Token
		err error
	)
	ch := lx.cursor.Peek()
	switch {
	case isSpace(ch):
		tok = lx.scanSpace()
	case ch == '(':
		tok, err = lx.scanParen()
	case ch == '\'' || ch == '"':
		tok, err = lx.scanString()
	case ch == '@':
		tok = lx.scanAtWord()
	case ch == '\\':
		tok = lx.scanEscape()
	case ch == '/' && lx.cursor.PeekAt(1) == '*':
		tok, err = lx.scanComment()
	default:
		if k, ok := punctKind(ch); ok {
			tok = lx.single(k)
		} else {
			tok = lx.scanWord()
		}
	}
	if err != nil {
		lx.err = err
		return token.Token{Kind: token.Invalid, Span: lx.emptySpan()}, err
	}
	lx.prev = tok.Text
	return tok, nil
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() (token.Token, error) {
	t, err := lx.Next()
	if err != nil {
		return t, err
	}
	lx.look = &t
	return t, nil
}

// Tokenize drains a fresh lexer over in. Tokens stop before EOF.
func Tokenize(in *source.Input) ([]token.Token, error) {
	lx := New(in)
	out := make([]token.Token, 0, len(in.CSS)/4)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return out, nil
		}
		out = append(out, tok)
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) single(k token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(k, start)
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp, text := lx.cursor.Since(start)
	return token.Token{Kind: k, Span: sp, Text: text}
}

func (lx *Lexer) unclosed(code diag.Code, what string, start Mark) error {
	return lx.in.ErrorAt(code, "Unclosed "+what, uint32(start))
}

func punctKind(b byte) (token.Kind, bool) {
	switch b {
	case '{':
		return token.LBrace, true
	case '}':
		return token.RBrace, true
	case ':':
		return token.Colon, true
	case ';':
		return token.Semicolon, true
	case ')':
		return token.RParen, true
	case '[':
		return token.LBracket, true
	case ']':
		return token.RBracket, true
	}
	return token.Invalid, false
}
