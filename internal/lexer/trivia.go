package lexer

import (
	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/token"
)

// scanSpace коалесцирует подряд идущие ' ', \n, \t, \r, \f в один токен.
func (lx *Lexer) scanSpace() token.Token {
	start := lx.cursor.Mark()
	for isSpace(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	return lx.emit(token.Space, start)
}

// scanComment читает /* ... */ вместе с ограничителями. Вложенности нет.
func (lx *Lexer) scanComment() (token.Token, error) {
	start := lx.cursor.Mark()
	end := lx.cursor.Index("*/", 2)
	if end < 0 {
		return token.Token{}, lx.unclosed(diag.LexUnclosedComment, "comment", start)
	}
	lx.cursor.SkipTo(end + 2)
	return lx.emit(token.Comment, start), nil
}
