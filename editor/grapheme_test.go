package editor

import "testing"

func TestLayoutLine_TabUsesTabStops(t *testing.T) {
	vl := layoutLine("a\tb", 4)
	if len(vl.Clusters) != 3 {
		t.Fatalf("cluster count: got %d, want %d", len(vl.Clusters), 3)
	}

	if got, want := vl.Clusters[0].Width, 1; got != want {
		t.Fatalf("width of 'a': got %d, want %d", got, want)
	}
	if got, want := vl.Clusters[1].Width, 3; got != want {
		t.Fatalf("width of tab after col 1: got %d, want %d", got, want)
	}
	if got, want := vl.Clusters[2].StartCell, 4; got != want {
		t.Fatalf("start cell of 'b': got %d, want %d", got, want)
	}
	if got, want := vl.Cells, 5; got != want {
		t.Fatalf("line cells: got %d, want %d", got, want)
	}
}

func TestLayoutLine_UnicodeBoundariesAndWidths(t *testing.T) {
	cases := []struct {
		name           string
		text           string
		wantFirstWidth int
		wantFirstRunes int
	}{
		{name: "combining", text: "e\u0301x", wantFirstWidth: 1, wantFirstRunes: 2},
		{name: "emoji", text: "\U0001F642x", wantFirstWidth: 2, wantFirstRunes: 1},
		{name: "cjk", text: "界x", wantFirstWidth: 2, wantFirstRunes: 1},
		{name: "zwj", text: "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466x", wantFirstWidth: 2, wantFirstRunes: 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vl := layoutLine(tc.text, 4)
			if len(vl.Clusters) != 2 {
				t.Fatalf("clusters for %q: got %d, want %d", tc.text, len(vl.Clusters), 2)
			}
			first := vl.Clusters[0]
			if first.Width != tc.wantFirstWidth || first.Runes != tc.wantFirstRunes {
				t.Fatalf("first cluster: got (width=%d,runes=%d), want (%d,%d)", first.Width, first.Runes, tc.wantFirstWidth, tc.wantFirstRunes)
			}
			if got := vl.Clusters[1].Col; got != tc.wantFirstRunes {
				t.Fatalf("second cluster col: got %d, want %d", got, tc.wantFirstRunes)
			}
		})
	}
}

func TestVisualLine_CellColumnMapping(t *testing.T) {
	vl := layoutLine("a\t界b", 4)
	// cells: a[0] tab[1..3] 界[4,5] b[6]
	cellTests := map[int]int{-1: 0, 0: 0, 2: 1, 4: 2, 5: 2, 6: 3, 7: 4, 50: 4}
	for cell, want := range cellTests {
		if got := vl.colForCell(cell); got != want {
			t.Fatalf("colForCell(%d): got %d, want %d", cell, got, want)
		}
	}
	colTests := map[int]int{0: 0, 1: 1, 2: 4, 3: 6, 4: 7}
	for col, want := range colTests {
		if got := vl.cellForCol(col); got != want {
			t.Fatalf("cellForCol(%d): got %d, want %d", col, got, want)
		}
	}
}
