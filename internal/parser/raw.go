package parser

import (
	"strings"

	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/token"
)

const spaceChars = " \t\n\r\f\v"

// raw склеивает tokens в значение поля field. Если по дороге выброшены
// комментарии или хвостовой пробел, точный текст уходит в raws.
func (p *Parser) raw(n ast.Node, field string, tokens []token.Token) string {
	var value strings.Builder
	clean := true
	for i, tok := range tokens {
		if tok.Kind == token.Comment || (tok.Kind == token.Space && i == len(tokens)-1) {
			clean = false
			continue
		}
		value.WriteString(tok.Text)
	}
	if !clean {
		n.Raws().SetValue(field, ast.RawValue{Value: value.String(), Raw: joinTokens(tokens)})
	}
	return value.String()
}

func spacesFromEnd(tokens *[]token.Token) string {
	ts := *tokens
	i := len(ts)
	for i > 0 && ts[i-1].IsTrivia() {
		i--
	}
	*tokens = ts[:i]
	return joinTokens(ts[i:])
}

func spacesFromStart(tokens *[]token.Token) string {
	ts := *tokens
	i := 0
	for i < len(ts) && ts[i].IsTrivia() {
		i++
	}
	*tokens = ts[i:]
	return joinTokens(ts[:i])
}

func joinTokens(tokens []token.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}
