package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/livecode/session"
)

// markSpan is a marking's cell span on one line.
type markSpan struct {
	start, end int
	active     bool
}

func (m *Model) renderContent() string {
	buf := m.sess.Buffer()
	lineCount := buf.LineCount()

	marks := make(map[int][]markSpan)
	for _, mk := range m.sess.Markings() {
		line := mk.Range.Start.Line
		marks[line] = append(marks[line], markSpanFor(mk))
	}

	// Only lines inside the viewport are highlighted.
	first, last := 0, -1
	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
		first = m.viewport.YOffset + 1
		last = first + h - 1
	}

	width := m.contentWidth(lineCount)
	out := make([]string, 0, lineCount)
	for line := 1; line <= lineCount; line++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(line, lineCount))
		}
		text := buf.Line(line)
		var highlights []HighlightSpan
		if line >= first && line <= last {
			highlights = m.highlightForLine(line, text)
		}
		sb.WriteString(m.renderLine(line, text, highlights, marks[line], width))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func markSpanFor(mk session.Marking) markSpan {
	return markSpan{start: mk.Rect.X, end: mk.Rect.X + mk.Rect.Width, active: mk.Dragging}
}

// renderLine renders the cells of one line visible in [xOffset, xOffset+width).
// A width of 0 renders the whole line.
func (m *Model) renderLine(line int, text string, highlights []HighlightSpan, marks []markSpan, width int) string {
	st := m.cfg.Style
	vl := layoutLine(text, m.cfg.TabWidth)

	left := maxInt(m.xOffset, 0)
	right := -1
	if width > 0 {
		right = left + width
	}
	visible := func(start, w int) bool {
		return start >= left && (right < 0 || start+w <= right)
	}

	hasCursor := m.focused && line == m.cursor.Line
	cursorCol := clampInt(m.cursor.Column, 0, vl.RuneLen)

	var sb strings.Builder
	for _, c := range vl.Clusters {
		if !visible(c.StartCell, c.Width) {
			if right >= 0 && c.StartCell >= right {
				break
			}
			// Wide cluster cut by the left edge: keep alignment with blanks.
			if c.StartCell < left && c.StartCell+c.Width > left {
				sb.WriteString(st.Text.Render(strings.Repeat(" ", c.StartCell+c.Width-left)))
			}
			continue
		}

		style := st.Text
		for _, sp := range highlights {
			if c.Col < sp.EndCol && c.Col+c.Runes > sp.StartCol {
				style = sp.Style.Inherit(st.Text)
				break
			}
		}
		for _, mk := range marks {
			if c.StartCell >= mk.start && c.StartCell < mk.end {
				markStyle := st.Marking
				if mk.active {
					markStyle = st.MarkingActive
				}
				style = markStyle.Inherit(style)
				break
			}
		}
		if hasCursor && cursorCol >= c.Col && cursorCol < c.Col+c.Runes {
			style = st.Cursor.Inherit(style)
		}

		sb.WriteString(renderCluster(style, c))
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if hasCursor && cursorCol == vl.RuneLen && visible(vl.Cells, 1) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func renderCluster(style lipgloss.Style, c visualCluster) string {
	if c.Text == "\t" {
		return style.Render(strings.Repeat(" ", c.Width))
	}
	return style.Render(c.Text)
}
