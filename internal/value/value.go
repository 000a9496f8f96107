package value

import (
	"fmt"

	"github.com/ISibboI/evalexpr/internal/evalerr"
)

// ValueType enumerates the six kinds a Value can hold. It exists
// alongside Value so error messages and coercion checks can name a
// kind without constructing a payload (mirrors the Kind/Value split in
// go-dws's internal/jsonvalue package).
type ValueType int

const (
	TypeString ValueType = iota
	TypeInt
	TypeFloat
	TypeBoolean
	TypeTuple
	TypeEmpty
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBoolean:
		return "Boolean"
	case TypeTuple:
		return "Tuple"
	case TypeEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Value is a tagged sum of the six value kinds the language works
// with. The zero Value is a String holding ""; the Empty value is the
// Empty variable below. Values are plain data: copying a Value
// copies its tag and scalar payload; a Tuple's backing slice is shared
// on copy but the language only ever reads it, never mutates a Value
// in place, so aliasing is never observable.
type Value struct {
	kind ValueType

	str   string
	i     int64
	f     float64
	b     bool
	tuple []Value
}

// Empty is the singular Empty value.
var Empty = Value{kind: TypeEmpty}

// String constructs a String value.
func String(s string) Value { return Value{kind: TypeString, str: s} }

// Int constructs an Int value.
func Int(i int64) Value { return Value{kind: TypeInt, i: i} }

// Float constructs a Float value.
func Float(f float64) Value { return Value{kind: TypeFloat, f: f} }

// Boolean constructs a Boolean value.
func Boolean(b bool) Value { return Value{kind: TypeBoolean, b: b} }

// Tuple constructs a Tuple value from an ordered sequence of Values.
// The slice is not flattened here — flattening is a property of the
// aggregation operator (§3/§4.4), not of tuple construction itself, so
// builtins may freely build nested tuples via this constructor.
func Tuple(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: TypeTuple, tuple: cp}
}

// Kind reports the Value's ValueType.
func (v Value) Kind() ValueType { return v.kind }

// IsEmpty reports whether v is the Empty value.
func (v Value) IsEmpty() bool { return v.kind == TypeEmpty }

// AsString returns the string payload, or ExpectedString if v is not
// a String.
func (v Value) AsString() (string, error) {
	if v.kind != TypeString {
		return "", &evalerr.Error{Kind: evalerr.ExpectedString, Actual: v.kind.String()}
	}
	return v.str, nil
}

// AsInt returns the int payload, or ExpectedInt if v is not an Int.
func (v Value) AsInt() (int64, error) {
	if v.kind != TypeInt {
		return 0, &evalerr.Error{Kind: evalerr.ExpectedInt, Actual: v.kind.String()}
	}
	return v.i, nil
}

// AsFloat returns the float payload, or ExpectedFloat if v is not a
// Float.
func (v Value) AsFloat() (float64, error) {
	if v.kind != TypeFloat {
		return 0, &evalerr.Error{Kind: evalerr.ExpectedFloat, Actual: v.kind.String()}
	}
	return v.f, nil
}

// AsBoolean returns the bool payload, or ExpectedBoolean if v is not
// a Boolean.
func (v Value) AsBoolean() (bool, error) {
	if v.kind != TypeBoolean {
		return false, &evalerr.Error{Kind: evalerr.ExpectedBoolean, Actual: v.kind.String()}
	}
	return v.b, nil
}

// AsTuple returns the element slice, or ExpectedTuple if v is not a
// Tuple. The returned slice is a copy; mutating it never affects v.
func (v Value) AsTuple() ([]Value, error) {
	if v.kind != TypeTuple {
		return nil, &evalerr.Error{Kind: evalerr.ExpectedTuple, Actual: v.kind.String()}
	}
	cp := make([]Value, len(v.tuple))
	copy(cp, v.tuple)
	return cp, nil
}

// AsNumber returns v as a Float if it is Int or Float, else
// ExpectedNumber (§4.1).
func (v Value) AsNumber() (float64, error) {
	switch v.kind {
	case TypeInt:
		return float64(v.i), nil
	case TypeFloat:
		return v.f, nil
	default:
		return 0, &evalerr.Error{Kind: evalerr.ExpectedNumber, Actual: v.kind.String()}
	}
}

// Equal reports structural equality. Int and Float never compare
// equal across kinds (§4.1); Empty compares equal only to Empty.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case TypeString:
		return v.str == other.str
	case TypeInt:
		return v.i == other.i
	case TypeFloat:
		return v.f == other.f
	case TypeBoolean:
		return v.b == other.b
	case TypeEmpty:
		return true
	case TypeTuple:
		if len(v.tuple) != len(other.tuple) {
			return false
		}
		for i := range v.tuple {
			if !v.tuple[i].Equal(other.tuple[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders v for display (used by the CLI and %v formatting).
func (v Value) String() string {
	switch v.kind {
	case TypeString:
		return v.str
	case TypeInt:
		return fmt.Sprintf("%d", v.i)
	case TypeFloat:
		return fmt.Sprintf("%g", v.f)
	case TypeBoolean:
		return fmt.Sprintf("%t", v.b)
	case TypeEmpty:
		return "()"
	case TypeTuple:
		s := "("
		for i, e := range v.tuple {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + ")"
	default:
		return "<invalid>"
	}
}
