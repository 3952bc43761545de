package buffer

// Pos points into the text by 1-based line and 0-based rune column.
type Pos struct {
	Line   int
	Column int
}

// Range is a half-open span of text: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

// SingleLine reports whether the range starts and ends on the same line.
func (r Range) SingleLine() bool {
	return r.Start.Line == r.End.Line
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by lineCount and lineLen.
//
// - lineCount is the number of lines.
// - lineLen(line) returns the rune length of the given 1-based line.
//
// The returned Pos always satisfies:
// - 1 <= Line <= lineCount (with lineCount treated as at least 1)
// - 0 <= Column <= lineLen(Line)
func ClampPos(p Pos, lineCount int, lineLen func(line int) int) Pos {
	if lineCount <= 0 {
		lineCount = 1
	}

	line := clampInt(p.Line, 1, lineCount)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(line)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Column, 0, maxCol)

	return Pos{Line: line, Column: col}
}
