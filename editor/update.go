package editor

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/livecode/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(buffer.MoveRune, buffer.DirLeft)
	case key.Matches(msg, km.Right):
		m.move(buffer.MoveRune, buffer.DirRight)
	case key.Matches(msg, km.Up):
		m.move(buffer.MoveRune, buffer.DirUp)
	case key.Matches(msg, km.Down):
		m.move(buffer.MoveRune, buffer.DirDown)

	case key.Matches(msg, km.WordLeft):
		m.move(buffer.MoveWord, buffer.DirLeft)
	case key.Matches(msg, km.WordRight):
		m.move(buffer.MoveWord, buffer.DirRight)

	case key.Matches(msg, km.Home):
		m.move(buffer.MoveLine, buffer.DirHome)
	case key.Matches(msg, km.End):
		m.move(buffer.MoveLine, buffer.DirEnd)
	case key.Matches(msg, km.DocStart):
		m.move(buffer.MoveDoc, buffer.DirHome)
	case key.Matches(msg, km.DocEnd):
		m.move(buffer.MoveDoc, buffer.DirEnd)

	case key.Matches(msg, km.Backspace):
		m.deleteBackward()
	case key.Matches(msg, km.Delete):
		m.deleteForward()
	case key.Matches(msg, km.Enter):
		m.insert("\n")

	case key.Matches(msg, km.ToggleEditables):
		var err error
		m, err = m.ToggleEditables()
		if err != nil {
			m.log.Warn().Err(err).Msg("toggle editables")
		}
		return m, toggledCmd(m.sess.EditablesEnabled())

	default:
		if msg.Type == tea.KeyTab {
			m.insert("\t")
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insert(string(msg.Runes))
		}
	}

	return m, nil
}

func (m *Model) move(unit buffer.MoveUnit, dir buffer.MoveDir) {
	m.cursor = m.sess.Buffer().Move(m.cursor, buffer.Move{Unit: unit, Dir: dir})
}

func (m *Model) insert(s string) {
	if m.cfg.ReadOnly || s == "" {
		return
	}
	buf := m.sess.Buffer()
	off := buf.OffsetForPos(m.cursor)
	m.applyText(buf.Insert(off, s), off+utf8.RuneCountInString(s))
}

func (m *Model) deleteBackward() {
	if m.cfg.ReadOnly {
		return
	}
	buf := m.sess.Buffer()
	off := buf.OffsetForPos(m.cursor)
	if off <= 0 {
		return
	}
	m.applyText(buf.RemoveRange(off-1, off), off-1)
}

func (m *Model) deleteForward() {
	if m.cfg.ReadOnly {
		return
	}
	buf := m.sess.Buffer()
	off := buf.OffsetForPos(m.cursor)
	if off >= buf.Len() {
		return
	}
	m.applyText(buf.RemoveRange(off, off+1), off)
}
