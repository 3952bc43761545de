package buffer

import "unicode"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move returns the position reached from p by m, clamped into the text.
func (b *Buffer) Move(p Pos, m Move) Pos {
	p = b.clampPos(p)
	switch m.Unit {
	case MoveRune:
		return b.moveRune(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveRune(p Pos, dir MoveDir) Pos {
	line, col := p.Line, p.Column
	lastLine := len(b.lines)

	switch dir {
	case DirLeft:
		if line == 1 && col == 0 {
			return p
		}
		if col > 0 {
			return Pos{Line: line, Column: col - 1}
		}
		return Pos{Line: line - 1, Column: b.LineLen(line - 1)}
	case DirRight:
		if line == lastLine && col == b.LineLen(lastLine) {
			return p
		}
		if col < b.LineLen(line) {
			return Pos{Line: line, Column: col + 1}
		}
		return Pos{Line: line + 1, Column: 0}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := []rune(b.Line(p.Line))

	switch dir {
	case DirLeft:
		return Pos{Line: p.Line, Column: prevWordBoundary(line, p.Column)}
	case DirRight:
		return Pos{Line: p.Line, Column: nextWordBoundary(line, p.Column)}
	case DirHome:
		return Pos{Line: p.Line, Column: 0}
	case DirEnd:
		return Pos{Line: p.Line, Column: len(line)}
	default:
		return p
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	line, col := p.Line, p.Column

	switch dir {
	case DirHome:
		return Pos{Line: line, Column: 0}
	case DirEnd:
		return Pos{Line: line, Column: b.LineLen(line)}
	case DirUp:
		if line == 1 {
			return p
		}
		return Pos{Line: line - 1, Column: minInt(col, b.LineLen(line-1))}
	case DirDown:
		if line == len(b.lines) {
			return p
		}
		return Pos{Line: line + 1, Column: minInt(col, b.LineLen(line+1))}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome, DirUp:
		return Pos{Line: 1, Column: 0}
	case DirEnd, DirDown:
		return b.EndPos()
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single line)
func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && unicode.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && unicode.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !unicode.IsSpace(line[i]) {
		i++
	}
	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
