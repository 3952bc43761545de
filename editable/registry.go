package editable

import (
	"sort"

	"github.com/iw2rmb/livecode/buffer"
)

// ID identifies a Number within one generation of a Registry. IDs are
// invalidated by RemoveAll.
type ID int

// GenerateFunc discovers editables for the current text and adds them to r.
type GenerateFunc func(r *Registry) error

// Registry owns the live Numbers of a buffer.
//
// Numbers live in an arena in discovery order; byLine maps a line to the arena
// indices of the Numbers anchored on it.
type Registry struct {
	numbers []*Number
	byLine  map[int][]ID
	enabled bool
}

func NewRegistry() *Registry {
	return &Registry{byLine: make(map[int][]ID)}
}

// Add registers n and returns its ID.
func (r *Registry) Add(n *Number) ID {
	id := ID(len(r.numbers))
	r.numbers = append(r.numbers, n)
	r.byLine[n.line] = append(r.byLine[n.line], id)
	return id
}

// AddNumber binds a Number to rng in buf and registers it if it parses.
func (r *Registry) AddNumber(buf *buffer.Buffer, rng buffer.Range) (ID, bool) {
	if !rng.SingleLine() {
		return 0, false
	}
	n := NewNumber(buf, rng)
	if !n.IsValid() {
		return 0, false
	}
	return r.Add(n), true
}

func (r *Registry) Get(id ID) (*Number, bool) {
	if id < 0 || int(id) >= len(r.numbers) {
		return nil, false
	}
	return r.numbers[id], true
}

func (r *Registry) Len() int { return len(r.numbers) }

// IDs returns the IDs of all registered Numbers in discovery order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.numbers))
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// OnLine returns the Numbers anchored on line, in discovery order.
func (r *Registry) OnLine(line int) []*Number {
	ids := r.byLine[line]
	out := make([]*Number, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.numbers[id])
	}
	return out
}

// Lines returns the lines holding at least one Number, ascending.
func (r *Registry) Lines() []int {
	lines := make([]int, 0, len(r.byLine))
	for line := range r.byLine {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	return lines
}

// At returns the Number covering pos, if any.
func (r *Registry) At(pos buffer.Pos) (ID, bool) {
	for _, id := range r.byLine[pos.Line] {
		if r.numbers[id].Contains(pos) {
			return id, true
		}
	}
	return 0, false
}

// OffsetColumn shifts every Number on line lying at or after atColumn by delta.
func (r *Registry) OffsetColumn(line, atColumn, delta int) {
	for _, id := range r.byLine[line] {
		r.numbers[id].OffsetColumn(atColumn, delta)
	}
}

func (r *Registry) Enabled() bool { return r.enabled }

// Enable turns editables on and populates the registry through generate.
func (r *Registry) Enable(generate GenerateFunc) error {
	r.enabled = true
	return r.Refresh(generate)
}

// Disable removes every Number and turns editables off.
func (r *Registry) Disable() {
	r.RemoveAll()
	r.enabled = false
}

// RemoveAll detaches every Number and empties the registry. Detached Numbers
// ignore drag calls, so a caller still holding one cannot touch the text.
// It does nothing while editables are disabled.
func (r *Registry) RemoveAll() {
	if !r.enabled {
		return
	}
	for _, n := range r.numbers {
		n.detach()
	}
	r.numbers = nil
	r.byLine = make(map[int][]ID)
}

// Refresh rebuilds the registry: RemoveAll followed by generate. It does
// nothing while editables are disabled.
func (r *Registry) Refresh(generate GenerateFunc) error {
	if !r.enabled {
		return nil
	}
	r.RemoveAll()
	if generate == nil {
		return nil
	}
	return generate(r)
}
