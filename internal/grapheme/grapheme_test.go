package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if IsSpace("") {
		t.Fatalf("empty cluster should not be space")
	}
}

func TestCellWidth(t *testing.T) {
	tests := []struct {
		name     string
		cluster  string
		col      int
		tabWidth int
		want     int
	}{
		{name: "ascii", cluster: "a", want: 1},
		{name: "wide", cluster: "世", want: 2},
		{name: "combining", cluster: "e\u0301", want: 1},
		{name: "tab at 0", cluster: "\t", col: 0, tabWidth: 4, want: 4},
		{name: "tab at 1", cluster: "\t", col: 1, tabWidth: 4, want: 3},
		{name: "tab at stop", cluster: "\t", col: 8, tabWidth: 4, want: 4},
		{name: "tab default width", cluster: "\t", col: 2, tabWidth: 0, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellWidth(tt.cluster, tt.col, tt.tabWidth); got != tt.want {
				t.Fatalf("CellWidth(%q, %d, %d)=%d, want %d", tt.cluster, tt.col, tt.tabWidth, got, tt.want)
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		text       string
		wantWidth  int
		wantHeight int
	}{
		{text: "", wantWidth: 0, wantHeight: 1},
		{text: "x = ", wantWidth: 4, wantHeight: 1},
		{text: "x = 42;\ny = ", wantWidth: 4, wantHeight: 2},
		{text: "a\n", wantWidth: 0, wantHeight: 2},
		{text: "\tv", wantWidth: 5, wantHeight: 1},
		{text: "世界 = ", wantWidth: 7, wantHeight: 1},
	}
	for _, tt := range tests {
		w, h := Measure(tt.text, 4)
		if w != tt.wantWidth || h != tt.wantHeight {
			t.Fatalf("Measure(%q)=(%d,%d), want (%d,%d)", tt.text, w, h, tt.wantWidth, tt.wantHeight)
		}
	}
}
