package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type HighlightSpan struct {
	// StartCol and EndCol are rune indices in the line, half-open [StartCol, EndCol).
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

type LineContext struct {
	// Line is the 1-based line number.
	Line int
	Text string

	// CursorCol is the rune index of the cursor if it is on this line; otherwise -1.
	CursorCol int
	HasCursor bool
}

type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

func (m *Model) highlightForLine(line int, text string) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	runeLen := len([]rune(text))

	ctx := LineContext{Line: line, Text: text, CursorCol: -1}
	if m.cursor.Line == line {
		ctx.HasCursor = true
		ctx.CursorCol = clampInt(m.cursor.Column, 0, runeLen)
	}
	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		m.log.Debug().Err(err).Int("line", line).Msg("highlight line")
		return nil
	}
	return normalizeHighlightSpans(spans, runeLen)
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = maxInt(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	// Overlaps resolve deterministically: the earlier span wins.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}

	return merged
}
