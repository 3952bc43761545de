package editor

import (
	"unicode/utf8"

	"github.com/iw2rmb/livecode/internal/grapheme"
)

// visualCluster is one grapheme cluster of a line placed on terminal cells.
type visualCluster struct {
	Text      string
	Col       int // rune column of the first rune
	Runes     int
	StartCell int
	Width     int
}

type visualLine struct {
	Clusters []visualCluster
	RuneLen  int
	Cells    int
}

func layoutLine(line string, tabWidth int) visualLine {
	clusters := grapheme.Split(line)
	vl := visualLine{Clusters: make([]visualCluster, 0, len(clusters))}
	for _, c := range clusters {
		w := grapheme.CellWidth(c, vl.Cells, tabWidth)
		n := utf8.RuneCountInString(c)
		vl.Clusters = append(vl.Clusters, visualCluster{
			Text:      c,
			Col:       vl.RuneLen,
			Runes:     n,
			StartCell: vl.Cells,
			Width:     w,
		})
		vl.RuneLen += n
		vl.Cells += w
	}
	return vl
}

// colForCell maps a cell to the rune column of the cluster covering it.
// Cells past the end map to the end of the line.
func (vl visualLine) colForCell(cell int) int {
	if cell < 0 {
		return 0
	}
	for _, c := range vl.Clusters {
		if cell < c.StartCell+c.Width {
			return c.Col
		}
	}
	return vl.RuneLen
}

// cellForCol maps a rune column to the first cell of the cluster starting at
// or after it.
func (vl visualLine) cellForCol(col int) int {
	for _, c := range vl.Clusters {
		if c.Col >= col {
			return c.StartCell
		}
	}
	return vl.Cells
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
