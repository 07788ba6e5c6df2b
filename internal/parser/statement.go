package parser

import (
	"slices"
	"strings"

	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/token"
)

func (p *Parser) comment(tok token.Token) {
	c := ast.NewComment("")
	p.init(c, p.startOf(tok))
	c.Source().End = p.endOf(tok)

	text := tok.Text[2 : len(tok.Text)-2]
	inner := strings.TrimLeft(text, spaceChars)
	if inner == "" {
		c.Raws().Set(ast.RawLeft, text)
		c.Raws().Set(ast.RawRight, "")
		return
	}
	left := text[:len(text)-len(inner)]
	c.Text = strings.TrimRight(inner, spaceChars)
	c.Raws().Set(ast.RawLeft, left)
	c.Raws().Set(ast.RawRight, inner[len(c.Text):])
}

// emptyRule — '{' без селектора.
func (p *Parser) emptyRule(tok token.Token) {
	r := ast.NewRule("")
	p.init(r, p.startOf(tok))
	r.Raws().Set(ast.RawBetween, "")
	p.current = r
}

// word собирает токены до '{' (правило), до ';' или конца блока
// (декларация, если был ':'). Всё прочее — Unknown word.
func (p *Parser) word() error {
	var (
		start    = p.pos
		end      bool
		colon    bool
		bracket  token.Token
		brackets []token.Kind // ожидаемые закрывающие скобки
	)
loop:
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		switch {
		case tok.Kind == token.LParen || tok.Kind == token.LBracket:
			if len(brackets) == 0 {
				bracket = tok
			}
			closer := token.RParen
			if tok.Kind == token.LBracket {
				closer = token.RBracket
			}
			brackets = append(brackets, closer)
		case len(brackets) > 0:
			if tok.Kind == brackets[len(brackets)-1] {
				brackets = brackets[:len(brackets)-1]
			}
		case tok.Kind == token.Semicolon:
			if colon {
				p.decl(p.tokens[start : p.pos+1])
				return nil
			}
			break loop
		case tok.Kind == token.LBrace:
			p.rule(p.tokens[start : p.pos+1])
			return nil
		case tok.Kind == token.RBrace:
			p.pos--
			end = true
			break loop
		case tok.Kind == token.Colon:
			colon = true
		}
		p.pos++
	}
	if p.pos == len(p.tokens) {
		p.pos--
		end = true
	}
	if len(brackets) > 0 {
		return p.fail(diag.SynUnclosedBracket, bracket)
	}

	if end && colon {
		for p.pos > start && p.tokens[p.pos].IsTrivia() {
			p.pos--
		}
		p.decl(p.tokens[start : p.pos+1])
		return nil
	}
	return p.fail(diag.SynUnknownWord, p.tokens[start])
}

func (p *Parser) rule(tokens []token.Token) {
	tokens = slices.Clone(tokens[:len(tokens)-1])
	r := ast.NewRule("")
	p.init(r, p.startOf(tokens[0]))
	r.Raws().Set(ast.RawBetween, spacesFromEnd(&tokens))
	r.Selector = p.raw(r, "selector", tokens)
	p.current = r
}

func (p *Parser) decl(tokens []token.Token) {
	tokens = slices.Clone(tokens)
	d := ast.NewDecl("", "")
	p.init(d, ast.Position{})
	raws := d.Raws()

	last := tokens[len(tokens)-1]
	if last.Kind == token.Semicolon {
		p.semicolon = true
		tokens = tokens[:len(tokens)-1]
	}
	d.Source().End = p.endOf(last)

	before, _ := raws.Get(ast.RawBefore)
	for len(tokens) > 0 && tokens[0].Kind != token.Word {
		before += tokens[0].Text
		tokens = tokens[1:]
	}
	if len(tokens) > 0 {
		d.Source().Start = p.startOf(tokens[0])
	} else {
		d.Source().Start = p.startOf(last)
	}

	var prop strings.Builder
	for len(tokens) > 0 {
		k := tokens[0].Kind
		if k == token.Colon || k == token.Space || k == token.Comment {
			break
		}
		prop.WriteString(tokens[0].Text)
		tokens = tokens[1:]
	}
	d.Prop = prop.String()

	var between strings.Builder
	for len(tokens) > 0 {
		tok := tokens[0]
		tokens = tokens[1:]
		between.WriteString(tok.Text)
		if tok.Kind == token.Colon {
			break
		}
	}

	// хаки для старых IE: _prop, *prop
	if d.Prop != "" && (d.Prop[0] == '_' || d.Prop[0] == '*') {
		before += d.Prop[:1]
		d.Prop = d.Prop[1:]
	}
	raws.Set(ast.RawBefore, before)
	between.WriteString(spacesFromStart(&tokens))
	raws.Set(ast.RawBetween, between.String())

	tokens = p.important(d, tokens)
	d.Value = p.raw(d, "value", tokens)
}

// important ищет !important в хвосте значения и возвращает токены без него.
func (p *Parser) important(d *ast.Decl, tokens []token.Token) []token.Token {
	for i := len(tokens) - 1; i > 0; i-- {
		tok := tokens[i]
		if strings.EqualFold(tok.Text, "!important") {
			d.Important = true
			str := joinTokens(tokens[i:])
			tokens = tokens[:i]
			str = spacesFromEnd(&tokens) + str
			if str != " !important" {
				d.Raws().Set(ast.RawImportant, str)
			}
			return tokens
		}
		if strings.EqualFold(tok.Text, "important") {
			// "! important", "!/**/important"
			cache := tokens
			str := ""
			for j := i; j > 0; j-- {
				if strings.HasPrefix(strings.TrimSpace(str), "!") && cache[j].Kind != token.Space {
					break
				}
				str = cache[len(cache)-1].Text + str
				cache = cache[:len(cache)-1]
			}
			if strings.HasPrefix(strings.TrimSpace(str), "!") {
				d.Important = true
				d.Raws().Set(ast.RawImportant, str)
				return cache
			}
		}
		if !tok.IsTrivia() {
			break
		}
	}
	return tokens
}

func (p *Parser) atRule(tok token.Token) error {
	a := ast.NewAtRule(tok.Text[1:], "")
	p.init(a, p.startOf(tok))

	var (
		params []token.Token
		open   bool
		last   bool
	)
	p.pos++
	for p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		if t.Kind == token.Semicolon {
			a.Source().End = p.startOf(t)
			p.semicolon = true
			break
		}
		if t.Kind == token.LBrace {
			open = true
			break
		}
		if t.Kind == token.RBrace {
			if len(params) > 0 {
				a.Source().End = p.endOf(params[len(params)-1])
			}
			if err := p.end(t); err != nil {
				return err
			}
			break
		}
		params = append(params, t)
		p.pos++
		if p.pos == len(p.tokens) {
			last = true
			break
		}
	}

	between := spacesFromEnd(&params)
	a.Raws().Set(ast.RawBetween, between)
	if len(params) > 0 {
		a.Raws().Set(ast.RawAfterName, spacesFromStart(&params))
		a.Params = p.raw(a, "params", params)
		if last {
			// пробелы в конце файла принадлежат корню
			a.Source().End = p.endOf(params[len(params)-1])
			p.spaces = between
			a.Raws().Set(ast.RawBetween, "")
		}
	} else {
		a.Raws().Set(ast.RawAfterName, "")
	}

	if open {
		a.OpenBody()
		p.current = a
	}
	return nil
}
