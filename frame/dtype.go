package frame

import (
	"fmt"
	"math"
	"strconv"
)

// DType is the declared element type of a column. It is a closed set; the
// container model deliberately has no open-ended type registry.
type DType uint8

const (
	DTypeBool DType = iota + 1
	DTypeInt
	DTypeFloat
	DTypeString
)

// String returns the conventional lowercase name of the dtype.
func (t DType) String() string {
	switch t {
	case DTypeBool:
		return "bool"
	case DTypeInt:
		return "int64"
	case DTypeFloat:
		return "float64"
	case DTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// ParseDType maps a dtype name back to its DType. Used by declarative suites.
func ParseDType(name string) (DType, error) {
	switch name {
	case "bool":
		return DTypeBool, nil
	case "int", "int64":
		return DTypeInt, nil
	case "float", "float64":
		return DTypeFloat, nil
	case "string":
		return DTypeString, nil
	default:
		return 0, fmt.Errorf("unknown dtype %q", name) //nolint:err113
	}
}

// InferDType derives a column dtype from its cells. Nulls carry no type
// information; precedence is string > float > int > bool. An all-null column
// infers float, matching the convention that missing numeric data is
// floating-point.
func InferDType(values []Value) DType {
	var sawFloat, sawInt, sawBool bool

	for _, v := range values {
		switch v.kind {
		case KindString:
			return DTypeString
		case KindFloat:
			sawFloat = true
		case KindInt:
			sawInt = true
		case KindBool:
			sawBool = true
		case KindNull:
		}
	}

	switch {
	case sawFloat:
		return DTypeFloat
	case sawInt:
		return DTypeInt
	case sawBool:
		return DTypeBool
	default:
		return DTypeFloat
	}
}

// matches reports whether a cell already satisfies the dtype. Nulls match
// every dtype, mirroring how missing values carry no type of their own.
func (t DType) matches(v Value) bool {
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return t == DTypeBool
	case KindInt:
		return t == DTypeInt
	case KindFloat:
		return t == DTypeFloat
	case KindString:
		return t == DTypeString
	default:
		return false
	}
}

// Cast converts a cell to the target dtype. Nulls pass through unchanged.
// Conversions that would lose information fail: non-integral floats do not
// cast to int, and only 0/1 numerics or "true"/"false" strings cast to bool.
func Cast(v Value, t DType) (Value, error) {
	if v.kind == KindNull {
		return v, nil
	}

	switch t {
	case DTypeBool:
		return castBool(v)
	case DTypeInt:
		return castInt(v)
	case DTypeFloat:
		return castFloat(v)
	case DTypeString:
		return Str(v.String()), nil
	default:
		return Null(), fmt.Errorf("unknown target dtype %d", t) //nolint:err113
	}
}

func castBool(v Value) (Value, error) {
	switch v.kind {
	case KindBool:
		return v, nil
	case KindInt:
		if v.i == 0 || v.i == 1 {
			return Bool(v.i == 1), nil
		}
	case KindFloat:
		if v.f == 0 || v.f == 1 {
			return Bool(v.f == 1), nil
		}
	case KindString:
		b, err := strconv.ParseBool(v.s)
		if err == nil {
			return Bool(b), nil
		}
	case KindNull:
	}

	return Null(), fmt.Errorf("cannot cast %s %q to bool", v.kind, v) //nolint:err113
}

func castInt(v Value) (Value, error) {
	switch v.kind {
	case KindInt:
		return v, nil
	case KindBool:
		if v.b {
			return Int(1), nil
		}

		return Int(0), nil
	case KindFloat:
		if v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
			return Int(int64(v.f)), nil
		}
	case KindString:
		i, err := strconv.ParseInt(v.s, 10, 64)
		if err == nil {
			return Int(i), nil
		}
	case KindNull:
	}

	return Null(), fmt.Errorf("cannot cast %s %q to int64", v.kind, v) //nolint:err113
}

func castFloat(v Value) (Value, error) {
	switch v.kind {
	case KindFloat:
		return v, nil
	case KindInt:
		return Float(float64(v.i)), nil
	case KindBool:
		if v.b {
			return Float(1), nil
		}

		return Float(0), nil
	case KindString:
		f, err := strconv.ParseFloat(v.s, 64)
		if err == nil {
			return Float(f), nil
		}
	case KindNull:
	}

	return Null(), fmt.Errorf("cannot cast %s %q to float64", v.kind, v) //nolint:err113
}
