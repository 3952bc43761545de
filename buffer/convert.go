package buffer

import (
	"sort"
	"unicode/utf8"
)

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// OffsetFor returns the offset of (line, column).
//
// column is not checked against the line length: a column past the end of the
// line yields an offset into the following line. Callers rely on this to
// address the end of the text.
func (b *Buffer) OffsetFor(line, column int) int {
	line = clampInt(line, 1, len(b.lineStarts))
	return b.lineStarts[line-1] + column
}

func (b *Buffer) OffsetForPos(p Pos) int {
	return b.OffsetFor(p.Line, p.Column)
}

// PositionForOffset returns the position containing offset.
//
// Offsets at or past the end of the text resolve to the final line, with the
// column measured from that line's start. Negative offsets resolve to the
// start of the text.
func (b *Buffer) PositionForOffset(offset int) Pos {
	if offset < 0 {
		return Pos{Line: 1, Column: 0}
	}
	// Index of the first line starting after offset; the line before it holds offset.
	i := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	return Pos{Line: i, Column: offset - b.lineStarts[i-1]}
}

// PosFromOffset converts a rune offset into a position under policy p.
func (b *Buffer) PosFromOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, len(b.runes), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.PositionForOffset(off), true
}

// OffsetFromPos converts a position into a rune offset under policy p.
func (b *Buffer) OffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.OffsetForPos(pos), true
}

// PosFromByteOffset converts a UTF-8 byte offset into a position under policy
// p. Offsets that fall inside a multi-byte rune are rejected.
func (b *Buffer) PosFromByteOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, len(b.text), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	if off < len(b.text) && !utf8.RuneStart(b.text[off]) {
		return Pos{}, false
	}
	return b.PositionForOffset(utf8.RuneCountInString(b.text[:off])), true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		clamped := b.clampPos(pos)
		if clamped != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.clampPos(pos), true
	default:
		return Pos{}, false
	}
}
