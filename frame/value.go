// Package frame implements the tabular containers validated by the contract
// package: Index (an ordered label sequence), Series (a labeled value
// sequence), and Frame (an ordered set of named Series sharing one Index).
//
// Containers are never mutated in place. Every transform returns a new
// container value, so validation code can hold references without defensive
// copying.
package frame

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the runtime type of a cell Value.
type Kind uint8

const (
	// KindNull marks a missing value. Floating-point NaN normalizes to this.
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// String returns a short lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a single cell: a tagged union over the supported kinds.
// The zero Value is Null. Value is comparable, so it can key maps directly,
// which keeps uniqueness checks allocation-light.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null returns the missing-value marker.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean cell.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer cell.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating-point cell. NaN normalizes to Null so that
// missing-value checks have a single representation, and so Value stays safe
// to use as a map key.
func Float(f float64) Value {
	if math.IsNaN(f) {
		return Null()
	}

	return Value{kind: KindFloat, f: f}
}

// Str returns a string cell.
func Str(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns the runtime kind of the cell.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the cell is missing.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsNumeric reports whether the cell holds an int or float.
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// AsBool returns the boolean payload. The second result is false when the
// cell is not a bool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer payload. The second result is false when the
// cell is not an int.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the cell as a float64. Ints convert losslessly where
// possible. The second result is false for non-numeric cells.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsString returns the string payload. The second result is false when the
// cell is not a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// String renders the cell for messages and debugging.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "<null>"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return "<invalid>"
	}
}

// kindRank groups kinds for cross-kind ordering: null < bool < numeric < string.
func kindRank(k Kind) int {
	switch k {
	case KindNull:
		return 0
	case KindBool:
		return 1
	case KindInt, KindFloat:
		return 2
	case KindString:
		return 3
	default:
		return 4
	}
}

// Compare imposes a total order on cells: nulls first, then bools
// (false before true), then numerics compared numerically across int and
// float, then strings in lexicographic order.
func Compare(a, b Value) int {
	ra, rb := kindRank(a.kind), kindRank(b.kind)
	if ra != rb {
		if ra < rb {
			return -1
		}

		return 1
	}

	switch ra {
	case 0: // both null
		return 0
	case 1: // both bool
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		default:
			return 1
		}
	case 2: // both numeric
		if a.kind == KindInt && b.kind == KindInt {
			switch {
			case a.i < b.i:
				return -1
			case a.i > b.i:
				return 1
			default:
				return 0
			}
		}

		af, _ := a.AsFloat()
		bf, _ := b.AsFloat()

		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	default: // both string
		return strings.Compare(a.s, b.s)
	}
}

// Less reports whether v orders strictly before other under Compare.
func (v Value) Less(other Value) bool {
	return Compare(v, other) < 0
}

// Equals reports whether two cells hold the same content. Numerically equal
// int and float cells compare equal (Int(1) equals Float(1)).
func (v Value) Equals(other Value) bool {
	return Compare(v, other) == 0
}

// canonical maps numerically equal cells onto one representative so that
// Value can key uniqueness maps consistently with Equals. Integral floats
// become ints; everything else is returned as-is.
func (v Value) canonical() Value {
	if v.kind == KindFloat && v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
		return Int(int64(v.f))
	}

	return v
}
