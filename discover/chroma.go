package discover

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/iw2rmb/livecode/buffer"
)

// Chroma tokenises text with a Chroma lexer and reports number tokens.
// It works for every language Chroma knows, at the cost of lexical rather
// than syntactic accuracy.
type Chroma struct {
	lexer chroma.Lexer
}

func NewChroma(language string) (*Chroma, error) {
	lex := lexers.Get(language)
	if lex == nil {
		return nil, fmt.Errorf("%w: no chroma lexer for %q", ErrUnsupportedLanguage, language)
	}
	return &Chroma{lexer: chroma.Coalesce(lex)}, nil
}

func (d *Chroma) Literals(ctx context.Context, buf *buffer.Buffer) ([]buffer.Range, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	it, err := d.lexer.Tokenise(nil, buf.Text())
	if err != nil {
		return nil, fmt.Errorf("tokenise: %w", err)
	}

	var out []buffer.Range
	offset := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		n := utf8.RuneCountInString(tok.Value)
		if tok.Type.InCategory(chroma.LiteralNumber) && n > 0 {
			start := buf.PositionForOffset(offset)
			end := buf.PositionForOffset(offset + n)
			if start.Line == end.Line {
				out = append(out, buffer.Range{Start: start, End: end})
			}
		}
		offset += n
	}
	return out, nil
}
