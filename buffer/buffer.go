package buffer

import "strings"

// Buffer is an immutable snapshot of the full text.
//
// Lines and line start offsets are computed once by New; a Buffer is rebuilt
// from scratch on every accepted edit, so nothing is cached lazily.
type Buffer struct {
	text  string
	runes []rune

	lines      []string
	lineLens   []int
	lineStarts []int
}

func New(text string) *Buffer {
	lines := splitLines(text)
	lineLens := make([]int, len(lines))
	lineStarts := make([]int, len(lines))
	for i, line := range lines {
		lineLens[i] = len([]rune(line))
		if i > 0 {
			// one extra for the newline character itself
			lineStarts[i] = lineStarts[i-1] + lineLens[i-1] + 1
		}
	}
	return &Buffer{
		text:       text,
		runes:      []rune(text),
		lines:      lines,
		lineLens:   lineLens,
		lineStarts: lineStarts,
	}
}

func (b *Buffer) Text() string { return b.text }

// Len returns the text length in runes.
func (b *Buffer) Len() int { return len(b.runes) }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of the 1-based line, or "" when line is out of range.
func (b *Buffer) Line(line int) string {
	if line < 1 || line > len(b.lines) {
		return ""
	}
	return b.lines[line-1]
}

// LineLen returns the rune length of the 1-based line, or 0 when out of range.
func (b *Buffer) LineLen(line int) int {
	if line < 1 || line > len(b.lines) {
		return 0
	}
	return b.lineLens[line-1]
}

// Lines returns a copy of the lines of the text. Empty lines, including a
// trailing one after a final '\n', are kept.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// LineStartOffsets returns a copy of the offsets of the first character of
// every line: LineStartOffsets()[i] belongs to line i+1.
func (b *Buffer) LineStartOffsets() []int {
	return append([]int(nil), b.lineStarts...)
}

// EndPos returns the position just past the last character of the text.
func (b *Buffer) EndPos() Pos {
	last := len(b.lines)
	return Pos{Line: last, Column: b.lineLens[last-1]}
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}

func splitLines(text string) []string {
	parts := strings.Split(text, "\n")
	if len(parts) == 0 {
		parts = []string{""}
	}
	return parts
}
