package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/livecode/buffer"
	"github.com/iw2rmb/livecode/editable"
	"github.com/iw2rmb/livecode/session"
)

// mouseDrag tracks a left-button drag on a literal marking.
type mouseDrag struct {
	active bool
	id     editable.ID
	pressX int
	moved  bool
}

// Model is a Bubble Tea component that renders and interacts with a session.
type Model struct {
	cfg  Config
	sess *session.Session
	log  zerolog.Logger

	cursor  buffer.Pos
	focused bool

	viewport viewport.Model
	xOffset  int

	drag mouseDrag
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		log:      zerolog.Nop(),
		cursor:   buffer.Pos{Line: 1},
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	if cfg.Logger != nil {
		m.log = cfg.Logger.With().Str("component", "editor").Logger()
	}
	m.sess = session.New(cfg.Text, session.Options{
		Discoverer: cfg.Discoverer,
		Measurer:   session.CellMeasurer{TabWidth: cfg.TabWidth},
		Logger:     cfg.Logger,
		OnChange:   cfg.OnChange,
		OnTap:      cfg.OnTap,
	})
	if cfg.Editables {
		if err := m.sess.EnableEditables(); err != nil {
			m.log.Warn().Err(err).Msg("enable editables")
		}
	}
	m.rebuildContent()
	return m
}

func (m Model) Session() *session.Session { return m.sess }
func (m Model) Text() string              { return m.sess.Text() }
func (m Model) Cursor() buffer.Pos        { return m.cursor }

// SetCursor moves the cursor to p, clamped into the text.
func (m Model) SetCursor(p buffer.Pos) Model {
	buf := m.sess.Buffer()
	m.cursor = buffer.ClampPos(p, buf.LineCount(), buf.LineLen)
	m.rebuildContent()
	m.followCursor()
	return m
}

// SetText replaces the whole text, as if typed. The cursor keeps its offset.
func (m Model) SetText(text string) Model {
	off := m.sess.Buffer().OffsetForPos(m.cursor)
	m.applyText(text, off)
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.endDrag()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.rebuildContent()
		m.followCursor()
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		m.rebuildContent()
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// ToggleEditables flips live numbers on or off.
func (m Model) ToggleEditables() (Model, error) {
	var err error
	if m.sess.EditablesEnabled() {
		m.drag = mouseDrag{}
		m.sess.DisableEditables()
	} else {
		err = m.sess.EnableEditables()
	}
	m.rebuildContent()
	return m, err
}

// applyText feeds text to the session and places the cursor at offset.
func (m *Model) applyText(text string, offset int) {
	m.drag = mouseDrag{}
	if _, err := m.sess.Input(text); err != nil {
		m.log.Warn().Err(err).Msg("refresh editables")
	}
	m.cursor = m.sess.Buffer().PositionForOffset(offset)
}

func (m *Model) endDrag() {
	if !m.drag.active {
		return
	}
	m.drag = mouseDrag{}
	if err := m.sess.DragEnd(false); err != nil {
		m.log.Debug().Err(err).Msg("end drag")
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y, x := m.viewport.YOffset, m.xOffset

	row := m.cursor.Line - 1
	if row < y {
		m.viewport.SetYOffset(row)
	} else if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}

	if w := m.contentWidth(m.sess.Buffer().LineCount()); w > 0 {
		cell := layoutLine(m.sess.Buffer().Line(m.cursor.Line), m.cfg.TabWidth).cellForCol(m.cursor.Column)
		if cell < m.xOffset {
			m.xOffset = cell
		} else if cell >= m.xOffset+w {
			m.xOffset = cell - w + 1
		}
	}

	// Highlighting and horizontal clipping depend on the scroll position.
	if m.viewport.YOffset != y || m.xOffset != x {
		m.rebuildContent()
	}
}
