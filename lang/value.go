package lang

import "strconv"

// ValueKind identifies the runtime kind of a Value.
type ValueKind int

const (
	// KindInt is a 64-bit signed integer.
	KindInt ValueKind = iota

	// KindFloat is a 64-bit IEEE floating point number.
	KindFloat

	// KindBool is a boolean.
	KindBool
)

// String returns a string representation of the value kind.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "Int"

	case KindFloat:
		return "Float"

	case KindBool:
		return "Bool"

	default:
		return "Unknown"
	}
}

// Value is a small copyable tagged union over the three runtime kinds.
// Exactly one of the payload fields is meaningful based on Kind.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Bool  bool
}

// IntValue creates an integer value.
func IntValue(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

// FloatValue creates a floating point value.
func FloatValue(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}

// BoolValue creates a boolean value.
func BoolValue(v bool) Value {
	return Value{Kind: KindBool, Bool: v}
}

// Float64 coerces the value to a 64-bit float: integers are cast
// numerically and booleans become 1.0 or 0.0. This is the coercion applied
// whenever an operation leaves pure integer arithmetic.
func (v Value) Float64() float64 {
	switch v.Kind {
	case KindFloat:
		return v.Float

	case KindInt:
		return float64(v.Int)

	case KindBool:
		if v.Bool {
			return 1.0
		}

		return 0.0

	default:
		return 0.0
	}
}

// String renders the value the way the print operation and the REPL show
// it: integers in decimal, floats with default formatting, booleans as
// "true" or "false".
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)

	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)

	case KindBool:
		return strconv.FormatBool(v.Bool)

	default:
		return "<invalid>"
	}
}
