package lexer

import (
	"unicode/utf8"

	"github.com/morishitter/postcss/internal/token"
)

// scanWord читает word до первого isWordEnd или до "/*".
// Первый байт входит в word всегда: так "!important" и "#fff" остаются целыми.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isWordEnd(b) || (b == '/' && lx.cursor.PeekAt(1) == '*') {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Word, start)
}

// scanAtWord читает '@' и имя.
func (lx *Lexer) scanAtWord() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && !isAtEnd(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.AtWord, start)
}

// scanEscape читает серию '\' и, если последний не экранирован, следующий
// за ним байт (кроме '/' и пробельных).
func (lx *Lexer) scanEscape() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	escape := true
	for lx.cursor.Peek() == '\\' {
		lx.cursor.Bump()
		escape = !escape
	}
	if escape && !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b != '/' && !isSpace(b) {
			lx.bumpRune()
		}
	}
	return lx.emit(token.Word, start)
}

// bumpRune съедает текущую руну целиком, чтобы не резать UTF-8 между токенами.
func (lx *Lexer) bumpRune() {
	if lx.cursor.Peek() < utf8.RuneSelf {
		lx.cursor.Bump()
		return
	}
	_, size := utf8.DecodeRuneInString(lx.cursor.Src[lx.cursor.Off:lx.cursor.Limit])
	lx.cursor.SkipTo(int(lx.cursor.Off) + size)
}
