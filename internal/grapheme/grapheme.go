// Package grapheme measures text in grapheme clusters and terminal cells.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop distance used when none is configured.
const DefaultTabWidth = 4

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// CellWidth returns the number of terminal cells cluster occupies when it
// starts at cell col. Tabs advance to the next tab stop.
func CellWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(col, tabWidth)
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// TabAdvance returns the distance from cell col to the next tab stop.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if col < 0 {
		col = 0
	}
	return tabWidth - col%tabWidth
}

// LineWidth returns the cell width of a single line, tabs expanded from cell 0.
func LineWidth(line string, tabWidth int) int {
	cells := 0
	for _, c := range Split(line) {
		cells += CellWidth(c, cells, tabWidth)
	}
	return cells
}

// Measure returns the cell width of the last line of text and the number of
// lines it spans. The empty string is one empty line.
func Measure(text string, tabWidth int) (width, height int) {
	last := text
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		last = text[i+1:]
	}
	return LineWidth(last, tabWidth), strings.Count(text, "\n") + 1
}
