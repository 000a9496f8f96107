package evalexpr

// This file re-exports internal/value's public surface at the module
// root, the same alias-file convention CWBudde-go-dws uses to keep a
// package's public API stable while the implementation lives one layer
// deeper (internal/lexer/token_alias.go aliasing pkg/token).

import "github.com/ISibboI/evalexpr/internal/value"

type (
	// Value is a tagged sum of the six value kinds the language works
	// with: String, Int, Float, Boolean, Tuple, Empty.
	Value = value.Value
	// ValueType enumerates Value's kinds, for error reporting and
	// coercion checks.
	ValueType = value.ValueType
)

const (
	TypeString  = value.TypeString
	TypeInt     = value.TypeInt
	TypeFloat   = value.TypeFloat
	TypeBoolean = value.TypeBoolean
	TypeTuple   = value.TypeTuple
	TypeEmpty   = value.TypeEmpty
)

// Empty is the singular Empty value.
var Empty = value.Empty

// String constructs a String value.
func String(s string) Value { return value.String(s) }

// Int constructs an Int value.
func Int(i int64) Value { return value.Int(i) }

// Float constructs a Float value.
func Float(f float64) Value { return value.Float(f) }

// Boolean constructs a Boolean value.
func Boolean(b bool) Value { return value.Boolean(b) }

// Tuple constructs a Tuple value from an ordered sequence of Values.
func Tuple(elems ...Value) Value { return value.Tuple(elems...) }
