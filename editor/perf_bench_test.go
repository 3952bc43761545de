package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func BenchmarkCursorMove(b *testing.B) {
	for _, lines := range []int{100, 1000, 3000} {
		doc := benchmarkDoc(lines)

		b.Run(fmt.Sprintf("plain/lines=%d", lines), func(b *testing.B) {
			m := New(Config{Text: doc})
			m = m.SetSize(160, 40)
			benchmarkCursorPingPong(b, m)
		})

		b.Run(fmt.Sprintf("editables/lines=%d", lines), func(b *testing.B) {
			cfg := liveConfig(doc)
			m := New(cfg)
			m = m.SetSize(160, 40)
			benchmarkCursorPingPong(b, m)
		})
	}
}

func BenchmarkDragMove(b *testing.B) {
	for _, lines := range []int{100, 1000} {
		b.Run(fmt.Sprintf("lines=%d", lines), func(b *testing.B) {
			m := New(liveConfig(benchmarkDoc(lines)))
			m = m.SetSize(160, 40)
			// First literal of line 1: "const w = 12.5, h = 40;".
			m, _ = m.Update(press(10, 0))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, _ = m.Update(motion(10+i%40, 0))
			}
		})
	}
}

func benchmarkCursorPingPong(b *testing.B, m Model) {
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			m, _ = m.Update(right)
		} else {
			m, _ = m.Update(left)
		}
	}
}

func benchmarkDoc(lines int) string {
	if lines <= 0 {
		return ""
	}
	const line = "const w = 12.5, h = 40; ctx.fillRect(w * 2, h / 3, 1e3, 0.25);"
	return strings.TrimSuffix(strings.Repeat(line+"\n", lines), "\n")
}
