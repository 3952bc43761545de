package editor

import (
	"context"
	"regexp"
	"unicode"

	"github.com/iw2rmb/livecode/buffer"
	"github.com/iw2rmb/livecode/discover"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

// digitRuns reports every run of ASCII digits as a literal.
var digitRuns = discover.Func(func(_ context.Context, b *buffer.Buffer) ([]buffer.Range, error) {
	var out []buffer.Range
	for line := 1; line <= b.LineCount(); line++ {
		runes := []rune(b.Line(line))
		for i := 0; i < len(runes); {
			if !unicode.IsDigit(runes[i]) {
				i++
				continue
			}
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			out = append(out, buffer.Range{
				Start: buffer.Pos{Line: line, Column: i},
				End:   buffer.Pos{Line: line, Column: j},
			})
			i = j
		}
	}
	return out, nil
})

func liveConfig(text string) Config {
	return Config{Text: text, Discoverer: digitRuns, Editables: true}
}
