package editable

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// A leading '+' is accepted and dropped; so is a '+' after the exponent letter.
var numberRE = regexp.MustCompile(`^[+]?(-?)([0-9]+)(?:\.([0-9]+))?(?:([eE])[+]?(-?[0-9]+))?$`)

// Notation is the lexical anatomy of a numeric literal.
type Notation struct {
	Sign           string // "-" or ""
	Integer        string // integer digits, never empty
	Decimals       string // digits after '.', without the '.'
	ExponentLetter string // "e", "E" or ""
	Exponent       string // exponent digits with an optional '-', without the letter
}

// SplitNumber parses s as a decimal numeric literal. The whole of s must
// match, so hex, binary, BigInt and digit-separator forms are rejected.
func SplitNumber(s string) (Notation, bool) {
	m := numberRE.FindStringSubmatch(s)
	if m == nil {
		return Notation{}, false
	}
	return Notation{
		Sign:           m[1],
		Integer:        m[2],
		Decimals:       m[3],
		ExponentLetter: m[4],
		Exponent:       m[5],
	}, true
}

func (n Notation) HasExponent() bool { return n.ExponentLetter != "" }

// String reassembles the literal in canonical form.
func (n Notation) String() string {
	var sb strings.Builder
	sb.WriteString(n.Sign)
	sb.WriteString(n.Integer)
	if n.Decimals != "" {
		sb.WriteByte('.')
		sb.WriteString(n.Decimals)
	}
	if n.HasExponent() {
		sb.WriteString(n.ExponentLetter)
		sb.WriteString(n.Exponent)
	}
	return sb.String()
}

// FormatPrecision formats x with p significant digits the way JavaScript's
// Number.prototype.toPrecision does: fixed notation, switching to exponential
// notation ("1.5e+7", "2e-8") when the decimal exponent is below -6 or not
// smaller than p. Exact ties round away from zero.
func FormatPrecision(x float64, p int) string {
	if p < 1 {
		p = 1
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if x == 0 {
		if p == 1 {
			return "0"
		}
		return "0." + strings.Repeat("0", p-1)
	}
	x = breakTie(x, p)
	e := decimalExponent(x, p)
	if e < -6 || e >= p {
		return FormatExponential(x, p)
	}
	return strconv.FormatFloat(x, 'f', p-1-e, 64)
}

// FormatExponential formats x in exponential notation with p significant
// digits, with an unpadded, explicitly signed exponent ("2.50e+3"). Exact
// ties round away from zero.
func FormatExponential(x float64, p int) string {
	if p < 1 {
		p = 1
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	s := strconv.FormatFloat(breakTie(x, p), 'e', p-1, 64)
	i := strings.IndexByte(s, 'e')
	mantissa, exp := s[:i], s[i+1:]
	n, _ := strconv.Atoi(exp)
	if n < 0 {
		return mantissa + "e-" + strconv.Itoa(-n)
	}
	return mantissa + "e+" + strconv.Itoa(n)
}

// decimalExponent returns the exponent of x once rounded to p significant
// digits, so 9.99 at two digits reports 1 (it becomes 10).
func decimalExponent(x float64, p int) int {
	s := strconv.FormatFloat(x, 'e', p-1, 64)
	n, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	return n
}

// breakTie nudges x one ulp away from zero when its exact decimal expansion
// lies halfway between two p-digit values. strconv rounds such ties to even;
// toPrecision picks the larger magnitude.
func breakTie(x float64, p int) float64 {
	if x == 0 {
		return x
	}
	// 1100 digits hold the exact expansion of any float64.
	s := new(big.Float).SetFloat64(math.Abs(x)).Text('e', 1100)
	digits := strings.Replace(s[:strings.IndexByte(s, 'e')], ".", "", 1)
	if len(digits) <= p || digits[p] != '5' || strings.TrimRight(digits[p+1:], "0") != "" {
		return x
	}
	return math.Nextafter(x, math.Copysign(math.Inf(1), x))
}
