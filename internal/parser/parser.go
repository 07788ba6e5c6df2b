package parser

import (
	"github.com/morishitter/postcss/internal/ast"
	"github.com/morishitter/postcss/internal/diag"
	"github.com/morishitter/postcss/internal/lexer"
	"github.com/morishitter/postcss/internal/source"
	"github.com/morishitter/postcss/internal/token"
)

// Parser — состояние разбора одного Input.
type Parser struct {
	in        *source.Input
	tokens    []token.Token
	pos       int
	root      *ast.Root
	current   ast.Container // открытый сейчас блок
	spaces    string        // накопленные пробелы, станут before следующего узла
	semicolon bool          // был ли ';' после последней декларации current
}

// Parse разбирает in в дерево. Ошибка всегда *diag.SyntaxError.
func Parse(in *source.Input) (*ast.Root, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	p := &Parser{
		in:     in,
		tokens: tokens,
		root:   ast.NewRoot(),
	}
	p.current = p.root
	p.root.SetSource(&ast.Source{Input: in, Start: ast.Position{Line: 1, Column: 1}})
	if err := p.loop(); err != nil {
		return nil, err
	}
	return p.root, nil
}

// loop — основной цикл: по первому токену выбирает, что строить.
// Пробелы и лишние ';' копятся в spaces.
func (p *Parser) loop() error {
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		var err error
		switch tok.Kind {
		case token.Space, token.Semicolon:
			p.spaces += tok.Text
		case token.RBrace:
			err = p.end(tok)
		case token.Comment:
			p.comment(tok)
		case token.AtWord:
			err = p.atRule(tok)
		case token.LBrace:
			p.emptyRule(tok)
		default:
			err = p.word()
		}
		if err != nil {
			return err
		}
		p.pos++
	}
	return p.endFile()
}

// init кладёт n в текущий блок и отдаёт ему накопленные пробелы.
func (p *Parser) init(n ast.Node, start ast.Position) {
	ast.Push(p.current, n)
	n.SetSource(&ast.Source{Input: p.in, Start: start})
	n.Raws().Set(ast.RawBefore, p.spaces)
	p.spaces = ""
	if n.Kind() != ast.KindComment {
		p.semicolon = false
	}
}

// end закрывает текущий блок на '}'.
func (p *Parser) end(tok token.Token) error {
	p.closeBody()
	parent := p.current.Parent()
	if parent == nil {
		return p.fail(diag.SynUnexpectedClose, tok)
	}
	p.current.Source().End = p.startOf(tok)
	p.current = parent
	return nil
}

func (p *Parser) endFile() error {
	if p.current.Parent() != nil {
		start := p.current.Source().Start
		return p.in.Error(diag.SynUnclosedBlock, diag.SynUnclosedBlock.Title(), start.Line, start.Column)
	}
	p.closeBody()
	return nil
}

func (p *Parser) closeBody() {
	raws := p.current.Raws()
	if p.current.Len() > 0 {
		raws.SetSemicolon(p.semicolon)
	}
	p.semicolon = false
	after, _ := raws.Get(ast.RawAfter)
	raws.Set(ast.RawAfter, after+p.spaces)
	p.spaces = ""
}

func (p *Parser) fail(code diag.Code, tok token.Token) error {
	return p.in.ErrorAt(code, code.Title(), tok.Span.Start)
}

func (p *Parser) startOf(tok token.Token) ast.Position {
	lc := p.in.LineCol(tok.Span.Start)
	return ast.Position{Line: int(lc.Line), Column: int(lc.Col)}
}

// endOf — позиция последнего байта токена.
func (p *Parser) endOf(tok token.Token) ast.Position {
	off := tok.Span.Start
	if tok.Span.End > off {
		off = tok.Span.End - 1
	}
	lc := p.in.LineCol(off)
	return ast.Position{Line: int(lc.Line), Column: int(lc.Col)}
}
