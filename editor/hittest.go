package editor

import (
	"github.com/iw2rmb/livecode/buffer"
	"github.com/iw2rmb/livecode/editable"
)

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells and are relative to the editor's viewport:
// (0,0) is the top-left of the visible content region. Gutter clicks map to
// the start of the line; x and y are clamped into document bounds.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	buf := m.sess.Buffer()
	line := clampInt(m.viewport.YOffset+y+1, 1, buf.LineCount())

	gw := m.gutterWidth(buf.LineCount())
	if x < gw {
		return buffer.Pos{Line: line}
	}
	cell := x - gw + m.xOffset
	col := layoutLine(buf.Line(line), m.cfg.TabWidth).colForCell(cell)
	return buffer.Pos{Line: line, Column: col}
}

// markingAtScreen returns the editable whose marking covers the cell at
// viewport-local (x, y).
func (m *Model) markingAtScreen(x, y int) (editable.ID, bool) {
	buf := m.sess.Buffer()
	gw := m.gutterWidth(buf.LineCount())
	if x < gw {
		return 0, false
	}
	line := m.viewport.YOffset + y + 1
	cell := x - gw + m.xOffset
	for _, mk := range m.sess.Markings() {
		if mk.Range.Start.Line != line {
			continue
		}
		if cell >= mk.Rect.X && cell < mk.Rect.X+mk.Rect.Width {
			return mk.ID, true
		}
	}
	return 0, false
}
