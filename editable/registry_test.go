package editable

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/livecode/buffer"
)

func rangeOn(line, col, col2 int) buffer.Range {
	return buffer.Range{
		Start: buffer.Pos{Line: line, Column: col},
		End:   buffer.Pos{Line: line, Column: col2},
	}
}

func anchors(ns []*Number) [][2]int {
	out := make([][2]int, 0, len(ns))
	for _, n := range ns {
		out = append(out, [2]int{n.Column(), n.Column2()})
	}
	return out
}

func TestRegistry_AddAndIndexByLine(t *testing.T) {
	buf := buffer.New("a = 1, 22;\nb = 3;")
	r := NewRegistry()

	for _, rng := range []buffer.Range{rangeOn(1, 4, 5), rangeOn(2, 4, 5), rangeOn(1, 7, 9)} {
		if _, ok := r.AddNumber(buf, rng); !ok {
			t.Fatalf("AddNumber(%v) rejected", rng)
		}
	}

	if r.Len() != 3 {
		t.Fatalf("len=%d, want 3", r.Len())
	}
	if diff := cmp.Diff([][2]int{{4, 5}, {7, 9}}, anchors(r.OnLine(1))); diff != "" {
		t.Fatalf("line 1 anchors (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2}, r.Lines()); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}
	n, ok := r.Get(2)
	if !ok || n.Text() != "22" {
		t.Fatalf("Get(2)=%v,%v, want literal 22", n, ok)
	}
	if _, ok := r.Get(3); ok {
		t.Fatalf("Get(3) should fail")
	}
	if id, ok := r.At(buffer.Pos{Line: 1, Column: 8}); !ok || id != 2 {
		t.Fatalf("At(1,8)=%v,%v, want 2,true", id, ok)
	}
	if _, ok := r.At(buffer.Pos{Line: 2, Column: 0}); ok {
		t.Fatalf("At(2,0) should miss")
	}
}

func TestRegistry_AddNumberRejectsInvalid(t *testing.T) {
	buf := buffer.New("x = foo;\ny = 1\n2")
	r := NewRegistry()

	if _, ok := r.AddNumber(buf, rangeOn(1, 4, 7)); ok {
		t.Fatalf("expected non-numeric token to be rejected")
	}
	multi := buffer.Range{Start: buffer.Pos{Line: 2, Column: 4}, End: buffer.Pos{Line: 3, Column: 1}}
	if _, ok := r.AddNumber(buf, multi); ok {
		t.Fatalf("expected multi-line range to be rejected")
	}
	if r.Len() != 0 {
		t.Fatalf("len=%d, want 0", r.Len())
	}
}

func TestRegistry_OffsetColumnShiftsSiblings(t *testing.T) {
	buf := buffer.New("x = [11, 22];\ny = 33;")
	r := NewRegistry()
	r.AddNumber(buf, rangeOn(1, 5, 7))
	r.AddNumber(buf, rangeOn(1, 9, 11))
	r.AddNumber(buf, rangeOn(2, 4, 6))

	// The first literal grew by three characters.
	r.OffsetColumn(1, 5, 3)

	if diff := cmp.Diff([][2]int{{5, 10}, {12, 14}}, anchors(r.OnLine(1))); diff != "" {
		t.Fatalf("line 1 anchors (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][2]int{{4, 6}}, anchors(r.OnLine(2))); diff != "" {
		t.Fatalf("line 2 anchors must not move (-want +got):\n%s", diff)
	}
}

func TestRegistry_RefreshOnlyWhenEnabled(t *testing.T) {
	buf := buffer.New("n = 5;")
	calls := 0
	generate := func(r *Registry) error {
		calls++
		r.AddNumber(buf, rangeOn(1, 4, 5))
		return nil
	}

	r := NewRegistry()
	if err := r.Refresh(generate); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if calls != 0 || r.Len() != 0 {
		t.Fatalf("refresh while disabled ran generate (calls=%d len=%d)", calls, r.Len())
	}

	if err := r.Enable(generate); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if calls != 1 || r.Len() != 1 {
		t.Fatalf("after enable calls=%d len=%d, want 1,1", calls, r.Len())
	}

	old, _ := r.Get(0)
	if err := r.Refresh(generate); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if calls != 2 || r.Len() != 1 {
		t.Fatalf("after refresh calls=%d len=%d, want 2,1", calls, r.Len())
	}
	if !old.Detached() {
		t.Fatalf("refresh must detach the previous generation")
	}

	r.Disable()
	if r.Enabled() || r.Len() != 0 {
		t.Fatalf("disable left enabled=%v len=%d", r.Enabled(), r.Len())
	}
}

func TestRegistry_RefreshPropagatesGenerateError(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	err := r.Enable(func(*Registry) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want %v", err, boom)
	}
}

func TestRegistry_RemoveAllCancelsDrag(t *testing.T) {
	buf := buffer.New("v = 10;")
	r := NewRegistry()
	_ = r.Enable(func(r *Registry) error {
		r.AddNumber(buf, rangeOn(1, 4, 6))
		return nil
	})

	n, _ := r.Get(0)
	n.DragStart(buf)
	if _, ok := n.DragMove(20); !ok {
		t.Fatalf("expected drag step before teardown")
	}

	r.RemoveAll()
	if r.Len() != 0 {
		t.Fatalf("len=%d, want 0", r.Len())
	}
	if _, ok := n.DragMove(40); ok {
		t.Fatalf("detached literal must ignore drag steps")
	}
	n.DragEnd()
	n.DragStart(buf)
	if n.Dragging() {
		t.Fatalf("detached literal must not start dragging")
	}
}

func TestRegistry_AddNumberSkipsNonDecimalTokens(t *testing.T) {
	buf := buffer.New("x = 0x10 + 1_000 + 0b101 + 10n + 7;")
	r := NewRegistry()

	var added []string
	for _, rng := range []buffer.Range{
		rangeOn(1, 4, 8),   // 0x10
		rangeOn(1, 11, 16), // 1_000
		rangeOn(1, 19, 24), // 0b101
		rangeOn(1, 27, 30), // 10n
		rangeOn(1, 33, 34), // 7
	} {
		if id, ok := r.AddNumber(buf, rng); ok {
			n, _ := r.Get(id)
			added = append(added, n.Text())
		}
	}

	if diff := cmp.Diff([]string{"7"}, added); diff != "" {
		t.Fatalf("registered literals mismatch (-want +got):\n%s", diff)
	}
}
