// Package session orchestrates a text buffer and its live numeric editables.
//
// A Session owns the current buffer snapshot and the editable registry. Hosts
// feed it whole new texts through Input and drag gestures through DragStart,
// DragMove and DragEnd; it keeps literal anchors consistent with the text.
//
// A Session is not safe for concurrent use, and callbacks must not call back
// into it.
package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/livecode/buffer"
	"github.com/iw2rmb/livecode/discover"
	"github.com/iw2rmb/livecode/editable"
	"github.com/iw2rmb/livecode/internal/grapheme"
)

// Options configures a Session. The zero value is usable: no discovery, cell
// measurement and no logging.
type Options struct {
	// Discoverer finds literal ranges on refresh. Nil disables discovery.
	Discoverer discover.Discoverer
	// Measurer positions markings. Defaults to CellMeasurer.
	Measurer Measurer
	Logger   *zerolog.Logger

	// OnChange is called after every accepted text change.
	OnChange func(ChangeEvent)
	// OnTap is called when a drag ends without having moved.
	OnTap func(id editable.ID)
}

type dragState struct {
	id     editable.ID
	number *editable.Number
}

type Session struct {
	opts     Options
	log      zerolog.Logger
	measurer Measurer

	buf      *buffer.Buffer
	registry *editable.Registry
	state    State
	version  uint64
	content  Size

	drag dragState
}

// New returns an idle session over text. Editables start disabled; call
// EnableEditables to discover them.
func New(text string, opts Options) *Session {
	s := &Session{
		opts:     opts,
		log:      zerolog.Nop(),
		measurer: opts.Measurer,
		buf:      buffer.New(text),
		registry: editable.NewRegistry(),
	}
	if opts.Logger != nil {
		s.log = opts.Logger.With().Str("component", "session").Logger()
	}
	if s.measurer == nil {
		s.measurer = CellMeasurer{TabWidth: grapheme.DefaultTabWidth}
	}
	s.measureContent()
	return s
}

func (s *Session) Text() string                 { return s.buf.Text() }
func (s *Session) Buffer() *buffer.Buffer       { return s.buf }
func (s *Session) State() State                 { return s.state }
func (s *Session) Version() uint64              { return s.version }
func (s *Session) ContentSize() Size            { return s.content }
func (s *Session) EditablesEnabled() bool       { return s.registry.Enabled() }
func (s *Session) Registry() *editable.Registry { return s.registry }

// Input replaces the whole text with raw. It reports whether the text changed.
// A drag in progress is cancelled: its literal is torn down with the rest and
// the text it last wrote stays. The returned error comes from rediscovery;
// the text change itself always succeeds.
func (s *Session) Input(raw string) (bool, error) {
	if raw == s.buf.Text() {
		return false, nil
	}
	if s.state == EditableDrag {
		s.log.Debug().Int("editable", int(s.drag.id)).Msg("drag cancelled by input")
		s.drag = dragState{}
	}

	s.state = TextDirty
	prev := s.buf
	s.buf = buffer.New(raw)
	s.version++
	s.measureContent()
	s.registry.RemoveAll()
	s.emit(SourceInput, prev)

	err := s.registry.Refresh(s.generate)
	s.state = Idle
	return true, err
}

// EnableEditables turns editables on and discovers them in the current text.
func (s *Session) EnableEditables() error {
	if s.state != Idle {
		return ErrBusy
	}
	return s.registry.Enable(s.generate)
}

// DisableEditables removes all editables and turns them off. A drag in
// progress is cancelled.
func (s *Session) DisableEditables() {
	if s.state == EditableDrag {
		s.drag = dragState{}
		s.state = Idle
	}
	s.registry.Disable()
}

// Refresh rediscovers editables in the current text. It does nothing while
// editables are disabled.
func (s *Session) Refresh() error {
	if s.state != Idle {
		return ErrBusy
	}
	return s.registry.Refresh(s.generate)
}

func (s *Session) generate(r *editable.Registry) error {
	if s.opts.Discoverer == nil {
		return nil
	}
	ranges, err := s.opts.Discoverer.Literals(context.Background(), s.buf)
	if err != nil {
		s.log.Warn().Err(err).Uint64("version", s.version).Msg("literal discovery failed")
		return fmt.Errorf("discover literals: %w", err)
	}
	added := 0
	for _, rng := range ranges {
		if _, ok := r.AddNumber(s.buf, rng); ok {
			added++
		}
	}
	s.log.Debug().
		Int("literals", len(ranges)).
		Int("editables", added).
		Uint64("version", s.version).
		Msg("editables refreshed")
	return nil
}

// Editable returns the registered number with the given ID.
func (s *Session) Editable(id editable.ID) (*editable.Number, bool) {
	return s.registry.Get(id)
}

// EditableAt returns the editable covering pos.
func (s *Session) EditableAt(pos buffer.Pos) (editable.ID, bool) {
	return s.registry.At(pos)
}

// Dragging returns the ID of the editable being dragged.
func (s *Session) Dragging() (editable.ID, bool) {
	if s.state != EditableDrag {
		return 0, false
	}
	return s.drag.id, true
}

// DragStart begins dragging the editable id.
func (s *Session) DragStart(id editable.ID) error {
	if s.state != Idle {
		return ErrBusy
	}
	if !s.registry.Enabled() {
		return ErrEditablesDisabled
	}
	n, ok := s.registry.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEditable, id)
	}
	n.DragStart(s.buf)
	s.drag = dragState{id: id, number: n}
	s.state = EditableDrag
	s.log.Debug().Int("editable", int(id)).Str("text", n.Text()).Msg("drag start")
	return nil
}

// DragMove moves the dragged literal to the value translationX units away
// from where the drag started. The new literal replaces the old one in the
// text and literals after it on the same line shift by the length change
// before DragMove returns.
func (s *Session) DragMove(translationX float64) error {
	if s.state != EditableDrag {
		return ErrNotDragging
	}
	n := s.drag.number
	line, column, before := n.Line(), n.Column(), n.Text()
	rep, ok := n.DragMove(translationX)
	if !ok {
		return ErrNotDragging
	}
	if rep.Text == before {
		return nil
	}

	prev := s.buf
	s.buf = buffer.New(prev.ReplaceRange(rep.Start, rep.End, rep.Text))
	s.registry.OffsetColumn(line, column, rep.Delta)
	s.version++
	s.measureContent()
	s.emit(SourceDrag, prev)
	return nil
}

// DragEnd finishes the drag. The literal is reparsed from its final text.
// When wasTap is set the OnTap hook runs.
func (s *Session) DragEnd(wasTap bool) error {
	if s.state != EditableDrag {
		return ErrNotDragging
	}
	id, n := s.drag.id, s.drag.number
	n.DragEnd()
	s.drag = dragState{}
	s.state = Idle
	s.log.Debug().Int("editable", int(id)).Str("text", n.Text()).Bool("tap", wasTap).Msg("drag end")

	if wasTap && s.opts.OnTap != nil {
		s.opts.OnTap(id)
	}
	return nil
}

// Markings returns one underline rectangle per editable, in discovery order.
func (s *Session) Markings() []Marking {
	ids := s.registry.IDs()
	out := make([]Marking, 0, len(ids))
	for _, id := range ids {
		n, _ := s.registry.Get(id)
		start := s.measurer.Measure(s.buf.TextUpToColumn(n.Line(), n.Column()))
		end := s.measurer.Measure(s.buf.TextUpToColumn(n.Line(), n.Column2()))
		out = append(out, Marking{
			ID:    id,
			Range: n.Range(),
			Text:  n.Text(),
			Rect: Rect{
				X:     start.Width,
				Y:     end.Height,
				Width: end.Width - start.Width,
			},
			Dragging: s.state == EditableDrag && s.drag.id == id,
		})
	}
	return out
}

func (s *Session) measureContent() {
	size := Size{}
	for _, line := range s.buf.Lines() {
		if w := s.measurer.Measure(line).Width; w > size.Width {
			size.Width = w
		}
	}
	size.Height = s.measurer.Measure(s.buf.Text()).Height
	s.content = size
}

func (s *Session) emit(src Source, prev *buffer.Buffer) {
	if s.opts.OnChange == nil {
		return
	}
	change, _ := buffer.Diff(prev, s.buf)
	s.opts.OnChange(ChangeEvent{
		Source:  src,
		Version: s.version,
		Text:    s.buf.Text(),
		Change:  change,
	})
}
