package buffer

import "testing"

func TestRange_SingleLine(t *testing.T) {
	if !(Range{Start: Pos{Line: 2, Column: 1}, End: Pos{Line: 2, Column: 9}}).SingleLine() {
		t.Fatalf("range on one line reported as multi-line")
	}
	r := Range{Start: Pos{Line: 2, Column: 9}, End: Pos{Line: 3, Column: 3}}
	if r.SingleLine() {
		t.Fatalf("range spanning two lines reported as single-line")
	}
}

func TestClampPos(t *testing.T) {
	lineLens := []int{1, 0, 3}
	ll := func(line int) int { return lineLens[line-1] }

	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Line: 0, Column: -1}, want: Pos{Line: 1, Column: 0}},
		{in: Pos{Line: 999, Column: 999}, want: Pos{Line: 3, Column: 3}},
		{in: Pos{Line: 2, Column: 5}, want: Pos{Line: 2, Column: 0}},
		{in: Pos{Line: 1, Column: 1}, want: Pos{Line: 1, Column: 1}},
	}

	for _, tc := range cases {
		if got := ClampPos(tc.in, len(lineLens), ll); got != tc.want {
			t.Fatalf("ClampPos(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
