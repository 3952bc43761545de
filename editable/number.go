package editable

import (
	"math"
	"strconv"
	"strings"

	"github.com/iw2rmb/livecode/buffer"
)

const (
	maxSignificant = 8
	// dragDamping shapes offset^3 / (offset^2 + dragDamping): nearly flat for
	// small drags, close to linear for large ones.
	dragDamping = 200
)

// Number is a numeric-literal editable bound to a single-line range of text.
type Number struct {
	line    int
	column  int
	column2 int
	text    string

	notation Notation
	value    float64
	decimals int
	invDelta float64
	valid    bool

	dragOffset int
	dragging   bool
	detached   bool
}

// Replacement is the text edit a drag step asks the host to apply.
// Start and End are rune offsets into the text the drag started on (as
// shifted by previous steps); Delta is the change in length.
type Replacement struct {
	Start int
	End   int
	Text  string
	Delta int
}

// NewNumber binds a Number to r in buf and parses the text it covers.
// Check IsValid before using the result.
func NewNumber(buf *buffer.Buffer, r buffer.Range) *Number {
	n := &Number{
		line:    r.Start.Line,
		column:  r.Start.Column,
		column2: r.End.Column,
		text:    buf.SliceText(r.Start, r.End),
	}
	n.parse()
	return n
}

func (n *Number) IsValid() bool { return n.valid }

func (n *Number) Line() int    { return n.line }
func (n *Number) Column() int  { return n.column }
func (n *Number) Column2() int { return n.column2 }

// Range returns the anchored range of the literal.
func (n *Number) Range() buffer.Range {
	return buffer.Range{
		Start: buffer.Pos{Line: n.line, Column: n.column},
		End:   buffer.Pos{Line: n.line, Column: n.column2},
	}
}

// Text returns the literal as currently displayed.
func (n *Number) Text() string { return n.text }

func (n *Number) Value() float64 { return n.value }

// Decimals returns the number of decimal places always emitted by MakeNumber.
func (n *Number) Decimals() int { return n.decimals }

// InvDelta returns the reciprocal of the value change per unit of drag.
func (n *Number) InvDelta() float64 { return n.invDelta }

func (n *Number) Dragging() bool { return n.dragging }

// Detached reports whether the registry holding n has let go of it.
func (n *Number) Detached() bool { return n.detached }

// Contains reports whether pos lies on the literal, end column included.
func (n *Number) Contains(pos buffer.Pos) bool {
	return pos.Line == n.line && pos.Column >= n.column && pos.Column <= n.column2
}

// OffsetColumn shifts the anchors of a literal lying at or after atColumn by
// delta. Column2 moves when it is past atColumn; Column moves only when the
// literal starts past atColumn too. It reports whether anything moved.
func (n *Number) OffsetColumn(atColumn, delta int) bool {
	if n.column2 <= atColumn {
		return false
	}
	n.column2 += delta
	if n.column > atColumn {
		n.column += delta
	}
	return true
}

// MakeNumber returns the literal text for the value reached by dragging offset
// units away from the original value.
func (n *Number) MakeNumber(offset float64) string {
	v := n.value + (offset*offset*offset)/((offset*offset+dragDamping)*n.invDelta)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return n.text
	}
	split, ok := SplitNumber(n.format(v, maxSignificant))
	if !ok {
		return n.text
	}

	var sb strings.Builder
	sb.WriteString(split.Integer)
	if n.decimals > 0 {
		sb.WriteByte('.')
		sb.WriteString(fitDigits(split.Decimals, n.decimals))
	}
	if split.HasExponent() {
		sb.WriteString(n.exponentLetter())
		sb.WriteString(split.Exponent)
	}
	out := sb.String()

	// The text must parse back to a finite number.
	f, err := strconv.ParseFloat(out, 64)
	if err != nil {
		return n.text
	}
	// Never render "-0".
	if split.Sign == "-" && f != 0 {
		out = "-" + out
	}
	return out
}

// DragStart records the offset of the literal in buf, the text the following
// DragMove replacements are computed against.
func (n *Number) DragStart(buf *buffer.Buffer) {
	if n.detached {
		return
	}
	n.dragOffset = buf.OffsetFor(n.line, n.column)
	n.dragging = true
}

// DragMove computes the literal for a drag of translationX units and returns
// the replacement to apply. n.Text is updated to the new literal; the anchors
// are left to the registry's OffsetColumn. ok is false when n is not dragging.
func (n *Number) DragMove(translationX float64) (r Replacement, ok bool) {
	if n.detached || !n.dragging {
		return Replacement{}, false
	}
	next := n.MakeNumber(translationX)
	oldLen := len([]rune(n.text))
	r = Replacement{
		Start: n.dragOffset,
		End:   n.dragOffset + oldLen,
		Text:  next,
		Delta: len([]rune(next)) - oldLen,
	}
	n.text = next
	return r, true
}

// DragEnd finishes a drag by reparsing the final text. Drag steps only
// approximate the value; the reparse is authoritative.
func (n *Number) DragEnd() {
	if !n.dragging {
		return
	}
	n.dragging = false
	n.parse()
}

func (n *Number) detach() {
	n.detached = true
	n.dragging = false
}

func (n *Number) parse() {
	split, ok := SplitNumber(n.text)
	if !ok {
		n.valid = false
		return
	}
	value, err := strconv.ParseFloat(split.String(), 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		n.valid = false
		return
	}

	n.notation = split
	n.value = value
	n.valid = true

	// Significant digits of the token, leading zeros trimmed.
	significant := len(strings.TrimLeft(split.Integer+split.Decimals, "0"))
	if significant == 0 {
		// The value is zero: keep the decimals the user typed.
		n.decimals = len(split.Decimals)
	} else {
		if significant > maxSignificant {
			significant = maxSignificant
		}
		// Count decimals on the reformatted value, since formatting may change
		// the digit layout (e.g. switch to exponential notation).
		formatted, _ := SplitNumber(n.format(value, significant))
		n.decimals = len(formatted.Decimals)
	}

	exponent := 0
	if split.Exponent != "" {
		exponent, _ = strconv.Atoi(split.Exponent)
	}
	// Dividing by a power of ten rounds better than multiplying by its
	// reciprocal: 57/100 == 0.57 but 57*0.01 != 0.57.
	n.invDelta = math.Pow(10, -float64(exponent-n.decimals))
}

// format renders v with p significant digits, keeping exponential notation
// when the literal was written with an exponent.
func (n *Number) format(v float64, p int) string {
	if n.notation.HasExponent() {
		return FormatExponential(v, p)
	}
	return FormatPrecision(v, p)
}

func (n *Number) exponentLetter() string {
	if n.notation.ExponentLetter != "" {
		return n.notation.ExponentLetter
	}
	return "e"
}

// fitDigits truncates or right-pads digits with '0' to exactly width digits.
func fitDigits(digits string, width int) string {
	if len(digits) >= width {
		return digits[:width]
	}
	return digits + strings.Repeat("0", width-len(digits))
}
