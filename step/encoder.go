package step

import (
	"math"
	"strconv"
	"strings"
)

// Encoder accumulates the comma separated parameter list of one entity
// instance. Entities call its methods in attribute order.
type Encoder struct {
	sb    strings.Builder
	count int
}

func (e *Encoder) sep() {
	if e.count > 0 {
		e.sb.WriteByte(',')
	}
	e.count++
}

func (e *Encoder) String(s string) {
	e.sep()
	e.sb.WriteString(quote(s))
}

func (e *Encoder) Real(f float64) {
	e.sep()
	e.sb.WriteString(FormatReal(f))
}

func (e *Encoder) Reals(fs ...float64) {
	e.sep()
	e.sb.WriteByte('(')
	for i, f := range fs {
		if i > 0 {
			e.sb.WriteByte(',')
		}
		e.sb.WriteString(FormatReal(f))
	}
	e.sb.WriteByte(')')
}

func (e *Encoder) Int(i int) {
	e.sep()
	e.sb.WriteString(strconv.Itoa(i))
}

func (e *Encoder) Ref(r Ref) {
	e.sep()
	e.sb.WriteString(r.String())
}

func (e *Encoder) Refs(rs []Ref) {
	e.sep()
	e.sb.WriteByte('(')
	for i, r := range rs {
		if i > 0 {
			e.sb.WriteByte(',')
		}
		e.sb.WriteString(r.String())
	}
	e.sb.WriteByte(')')
}

func (e *Encoder) Bool(b bool) {
	if b {
		e.Enum("T")
	} else {
		e.Enum("F")
	}
}

// Enum writes an enumeration value, e.g. Enum("BOTH") writes .BOTH.
func (e *Encoder) Enum(s string) {
	e.sep()
	e.sb.WriteString("." + strings.Trim(s, ".") + ".")
}

// Derived writes *, used for attributes redeclared as derived in a subtype.
func (e *Encoder) Derived() {
	e.Raw("*")
}

// Raw writes s verbatim as one parameter.
func (e *Encoder) Raw(s string) {
	e.sep()
	e.sb.WriteString(s)
}

func (e *Encoder) result() string {
	return e.sb.String()
}

// FormatReal renders f the way part 21 expects: always with a decimal point,
// upper case exponent, and no negative zero. Part 21 has no token for NaN or
// infinity; the loaders never produce them, so they are written as 0. only
// to keep a file built from hand-made entities parseable.
func FormatReal(f float64) string {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return "0."
	}
	s := strings.ToUpper(strconv.FormatFloat(f, 'g', -1, 64))
	if strings.ContainsRune(s, '.') {
		return s
	}
	if i := strings.IndexByte(s, 'E'); i >= 0 {
		return s[:i] + "." + s[i:]
	}
	return s + "."
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
