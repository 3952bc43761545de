package buffer

import "fmt"

// ChangeType categorizes a Change.
type ChangeType uint8

const (
	ChangeInsert ChangeType = iota
	ChangeDelete
	ChangeReplace
)

func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change describes one contiguous edit between two snapshots.
//
// Start and End are rune offsets into the text before the change.
type Change struct {
	Type    ChangeType
	Start   int
	End     int
	Text    string
	Removed string
}

// Delta returns the change in text length, in runes.
func (c Change) Delta() int {
	return len([]rune(c.Text)) - len([]rune(c.Removed))
}

func (c Change) String() string {
	switch c.Type {
	case ChangeInsert:
		return fmt.Sprintf("insert %q at %d", c.Text, c.Start)
	case ChangeDelete:
		return fmt.Sprintf("delete %q at [%d,%d)", c.Removed, c.Start, c.End)
	default:
		return fmt.Sprintf("replace %q with %q at [%d,%d)", c.Removed, c.Text, c.Start, c.End)
	}
}

// Diff returns the smallest single change turning before into after, found by
// trimming their common prefix and suffix. ok is false when the texts are equal.
func Diff(before, after *Buffer) (c Change, ok bool) {
	a, b := before.runes, after.runes
	if before.text == after.text {
		return Change{}, false
	}

	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	c = Change{
		Start:   prefix,
		End:     len(a) - suffix,
		Text:    string(b[prefix : len(b)-suffix]),
		Removed: string(a[prefix : len(a)-suffix]),
	}
	switch {
	case c.Removed == "":
		c.Type = ChangeInsert
	case c.Text == "":
		c.Type = ChangeDelete
	default:
		c.Type = ChangeReplace
	}
	return c, true
}
