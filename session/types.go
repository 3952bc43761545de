package session

import (
	"github.com/iw2rmb/livecode/buffer"
	"github.com/iw2rmb/livecode/editable"
	"github.com/iw2rmb/livecode/internal/grapheme"
)

// State is the phase of the session's edit cycle.
type State uint8

const (
	// Idle waits for input or a gesture.
	Idle State = iota
	// TextDirty holds between accepting new text and finishing the refresh.
	TextDirty
	// EditableDrag holds while a numeric literal is being dragged.
	EditableDrag
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case TextDirty:
		return "text-dirty"
	case EditableDrag:
		return "editable-drag"
	default:
		return "unknown"
	}
}

// Size is a measured extent in host units (pixels, terminal cells).
type Size struct {
	Width  int
	Height int
}

// Rect is a marking rectangle in host units.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Measurer measures text laid out by the host.
//
// Measure receives the output of buffer.TextUpToColumn: some newlines followed
// by a line prefix. Width is the extent of the last line, Height the extent of
// all lines, so (Width, Height) is the baseline point after the text.
type Measurer interface {
	Measure(text string) Size
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(text string) Size

func (f MeasureFunc) Measure(text string) Size { return f(text) }

// CellMeasurer measures in monospace terminal cells with grapheme-aware
// widths and tab stops every TabWidth cells.
type CellMeasurer struct {
	TabWidth int
}

func (m CellMeasurer) Measure(text string) Size {
	w, h := grapheme.Measure(text, m.TabWidth)
	return Size{Width: w, Height: h}
}

// Marking places an editable on screen. Rect is an underline: Y is the
// baseline of the literal's line and Height is zero.
type Marking struct {
	ID       editable.ID
	Range    buffer.Range
	Text     string
	Rect     Rect
	Dragging bool
}

// Source tells what produced a text change.
type Source uint8

const (
	SourceInput Source = iota
	SourceDrag
)

func (s Source) String() string {
	switch s {
	case SourceInput:
		return "input"
	case SourceDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// ChangeEvent reports an accepted text change.
type ChangeEvent struct {
	Source  Source
	Version uint64
	Text    string
	Change  buffer.Change
}
