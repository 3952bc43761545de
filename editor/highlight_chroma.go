package editor

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// ChromaHighlighter highlights lines with a Chroma lexer and style.
// Lines are tokenised one at a time, so constructs spanning lines (block
// comments, template strings) are coloured per line.
type ChromaHighlighter struct {
	lexer    chroma.Lexer
	style    *chroma.Style
	renderer *lipgloss.Renderer
	cache    map[chroma.TokenType]tokenStyle
}

type tokenStyle struct {
	style lipgloss.Style
	ok    bool
}

// NewChromaHighlighter returns a highlighter for language using the named
// Chroma style. Unknown styles fall back to Chroma's default.
func NewChromaHighlighter(language, theme string) (*ChromaHighlighter, error) {
	lex := lexers.Get(language)
	if lex == nil {
		return nil, fmt.Errorf("no chroma lexer for language %q", language)
	}
	return &ChromaHighlighter{
		lexer:    chroma.Coalesce(lex),
		style:    styles.Get(theme),
		renderer: lipgloss.DefaultRenderer(),
		cache:    make(map[chroma.TokenType]tokenStyle),
	}, nil
}

// WithRenderer makes the highlighter build its styles with r.
func (h *ChromaHighlighter) WithRenderer(r *lipgloss.Renderer) *ChromaHighlighter {
	h.renderer = r
	h.cache = make(map[chroma.TokenType]tokenStyle)
	return h
}

func (h *ChromaHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	it, err := h.lexer.Tokenise(nil, ctx.Text)
	if err != nil {
		return nil, err
	}

	var spans []HighlightSpan
	col := 0
	for _, tok := range it.Tokens() {
		n := utf8.RuneCountInString(tok.Value)
		if n == 0 {
			continue
		}
		if ts := h.styleFor(tok.Type); ts.ok {
			spans = append(spans, HighlightSpan{StartCol: col, EndCol: col + n, Style: ts.style})
		}
		col += n
	}
	return spans, nil
}

func (h *ChromaHighlighter) styleFor(tt chroma.TokenType) tokenStyle {
	if ts, ok := h.cache[tt]; ok {
		return ts
	}
	entry := h.style.Get(tt)
	ts := tokenStyle{style: h.renderer.NewStyle()}
	if entry.Colour.IsSet() {
		ts.style = ts.style.Foreground(lipgloss.Color(entry.Colour.String()))
		ts.ok = true
	}
	if entry.Bold == chroma.Yes {
		ts.style = ts.style.Bold(true)
		ts.ok = true
	}
	if entry.Italic == chroma.Yes {
		ts.style = ts.style.Italic(true)
		ts.ok = true
	}
	h.cache[tt] = ts
	return ts
}
