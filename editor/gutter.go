package editor

import (
	"fmt"
	"strconv"
)

// LineNumberWidth returns the line-number gutter width for lineCount: the
// digits plus one separating space.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

func (m Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return LineNumberWidth(lineCount)
}

// contentWidth is the number of text cells per row, or 0 when unbounded.
func (m Model) contentWidth(lineCount int) int {
	if m.viewport.Width <= 0 {
		return 0
	}
	return maxInt(m.viewport.Width-m.gutterWidth(lineCount), 1)
}

func (m Model) renderGutter(line, lineCount int) string {
	style := m.cfg.Style.LineNum
	if m.focused && line == m.cursor.Line {
		style = m.cfg.Style.LineNumActive
	}
	return style.Render(fmt.Sprintf("%*d", gutterDigits(lineCount), line)) + m.cfg.Style.Gutter.Render(" ")
}
