package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/livecode/editable"
)

// TapMsg is sent when a literal is pressed and released without dragging.
// Hosts typically answer it with a hint that the literal can be dragged.
type TapMsg struct {
	ID   editable.ID
	Text string
}

// EditablesToggledMsg is sent after the toggle binding flips editables.
type EditablesToggledMsg struct {
	Enabled bool
}

func tapCmd(id editable.ID, text string) tea.Cmd {
	return func() tea.Msg { return TapMsg{ID: id, Text: text} }
}

func toggledCmd(enabled bool) tea.Cmd {
	return func() tea.Msg { return EditablesToggledMsg{Enabled: enabled} }
}
