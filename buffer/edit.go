package buffer

import "strings"

// SliceText returns the text between two positions. end must not precede start.
func (b *Buffer) SliceText(start, end Pos) string {
	return b.substring(b.OffsetForPos(start), b.OffsetForPos(end))
}

// RangeText returns the text covered by r.
func (b *Buffer) RangeText(r Range) string {
	return b.SliceText(r.Start, r.End)
}

// Insert returns the text with s inserted at offset.
func (b *Buffer) Insert(offset int, s string) string {
	return b.ReplaceRange(offset, offset, s)
}

// RemoveRange returns the text with [offset1, offset2) removed.
func (b *Buffer) RemoveRange(offset1, offset2 int) string {
	return b.ReplaceRange(offset1, offset2, "")
}

// ReplaceRange returns the text with [offset1, offset2) replaced by s.
//
// Offsets are clamped into the text. offset1 > offset2 is a caller error and
// produces an unspecified (but well-formed) string.
func (b *Buffer) ReplaceRange(offset1, offset2 int, s string) string {
	var sb strings.Builder
	sb.Grow(len(b.text) + len(s))
	sb.WriteString(b.substring(0, offset1))
	sb.WriteString(s)
	sb.WriteString(b.substring(offset2, len(b.runes)))
	return sb.String()
}

// TextUpToColumn returns line-1 newlines followed by the first column
// characters of line.
//
// Rendering this string and measuring its extent yields the pixel (or cell)
// location of (line, column): the width of its last line is the x coordinate
// and its height is the baseline of the line.
func (b *Buffer) TextUpToColumn(line, column int) string {
	prefix := ""
	if line > 1 {
		prefix = strings.Repeat("\n", line-1)
	}
	runes := []rune(b.Line(line))
	column = clampInt(column, 0, len(runes))
	return prefix + string(runes[:column])
}

func (b *Buffer) substring(start, end int) string {
	start = clampInt(start, 0, len(b.runes))
	end = clampInt(end, 0, len(b.runes))
	if end <= start {
		return ""
	}
	return string(b.runes[start:end])
}
