package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isScrollMouse(msg) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		if id, ok := m.markingAtScreen(msg.X, msg.Y); ok && !m.cfg.ReadOnly {
			if err := m.sess.DragStart(id); err != nil {
				m.log.Debug().Err(err).Int("editable", int(id)).Msg("drag start")
			} else {
				m.drag = mouseDrag{active: true, id: id, pressX: msg.X}
				return m, nil
			}
		}
		m.cursor = m.screenToDocPos(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if !m.drag.active {
			return m, nil
		}
		dx := msg.X - m.drag.pressX
		if dx == 0 && !m.drag.moved {
			return m, nil
		}
		m.drag.moved = true
		if err := m.sess.DragMove(float64(dx)); err != nil {
			m.log.Debug().Err(err).Msg("drag move")
			m.drag = mouseDrag{}
		}

	case tea.MouseActionRelease:
		if !m.drag.active {
			return m, nil
		}
		id, wasTap := m.drag.id, !m.drag.moved
		m.drag = mouseDrag{}
		if err := m.sess.DragEnd(wasTap); err != nil {
			m.log.Debug().Err(err).Msg("drag end")
			return m, nil
		}
		if wasTap {
			text := ""
			if n, ok := m.sess.Editable(id); ok {
				text = n.Text()
			}
			return m, tapCmd(id, text)
		}
	}

	return m, nil
}

func isScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
