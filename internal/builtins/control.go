package builtins

import (
	"math/rand/v2"

	"github.com/ISibboI/evalexpr/internal/value"
)

// If returns then_val if cond is true, else else_val. Both branches are
// passed already evaluated (the grammar has no lazy argument forms), so
// unlike the language's own `&&`/`||` this does not short-circuit.
// If(cond, then_val, else_val): any
func If(arg value.Value) (value.Value, error) {
	vals, err := unpack(arg, 3)
	if err != nil {
		return value.Value{}, err
	}
	cond, err := vals[0].AsBoolean()
	if err != nil {
		return value.Value{}, err
	}
	if cond {
		return vals[1], nil
	}
	return vals[2], nil
}

// TypeOf returns the name of v's ValueType as a String.
func TypeOf(arg value.Value) (value.Value, error) {
	vals, err := unpack(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.String(vals[0].Kind().String()), nil
}

// Random returns a pseudo-random Float in [0, 1), per call.
func Random(arg value.Value) (value.Value, error) {
	if _, err := unpack(arg, 0); err != nil {
		return value.Value{}, err
	}
	return value.Float(rand.Float64()), nil
}
