package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/morishitter/postcss/internal/source"
	"github.com/morishitter/postcss/internal/token"
)

type TokenOutput struct {
	Kind  string         `json:"kind"`
	Text  string         `json:"text"`
	Start source.LineCol `json:"start"`
	End   source.LineCol `json:"end"`
}

func tokenOutput(in *source.Input, tok token.Token) TokenOutput {
	end := tok.Span.End
	if end > tok.Span.Start {
		end-- // последний байт токена
	}
	return TokenOutput{
		Kind:  tok.Kind.String(),
		Text:  tok.Text,
		Start: in.LineCol(tok.Span.Start),
		End:   in.LineCol(end),
	}
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, in *source.Input, tokens []token.Token) error {
	for i, tok := range tokens {
		out := tokenOutput(in, tok)
		if _, err := fmt.Fprintf(w, "%3d: %-9s %q at %d:%d-%d:%d\n",
			i+1, out.Kind, out.Text,
			out.Start.Line, out.Start.Col,
			out.End.Line, out.End.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, in *source.Input, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput(in, tok))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
