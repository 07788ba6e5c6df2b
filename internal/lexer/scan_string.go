package lexer

import (
	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/token"
)

// scanString читает строку в ' или ". Перевод строки внутри допустим,
// экранированная кавычка строку не закрывает.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == quote {
			return lx.emit(token.String, start), nil
		}
	}
	return token.Token{}, lx.unclosed(diag.LexUnclosedQuote, "quote", start)
}

// scanParen читает '(' либо целиком скобки как один brackets токен.
// После url без кавычки аргумент всегда склеивается до ')' с учётом экранирования.
func (lx *Lexer) scanParen() (token.Token, error) {
	start := lx.cursor.Mark()
	next := lx.cursor.PeekAt(1)
	if lx.prev == "url" && next != '\'' && next != '"' && !isSpace(next) {
		from := uint32(0)
		for {
			end := lx.cursor.Index(")", from+1)
			if end < 0 {
				return token.Token{}, lx.unclosed(diag.LexUnclosedBracket, "bracket", start)
			}
			if !escapedAt(lx.cursor.Src, end) {
				lx.cursor.SkipTo(end + 1)
				return lx.emit(token.Brackets, start), nil
			}
			from = uint32(end) - lx.cursor.Off
		}
	}

	end := lx.cursor.Index(")", 1)
	if end < 0 || badBracket(lx.cursor.Src[lx.cursor.Off:end+1]) {
		return lx.single(token.LParen), nil
	}
	lx.cursor.SkipTo(end + 1)
	return lx.emit(token.Brackets, start), nil
}
