// Package builtins implements the standard function library described
// in spec §4.5: plain Go functions over internal/value.Value, one per
// exported identifier, registered into a Context by the root package's
// RegisterBuiltins (builtins.go). The per-function doc-comment style
// mirrors CWBudde-go-dws/internal/builtins/ordinal.go.
package builtins

import (
	"math"

	"github.com/ISibboI/evalexpr/internal/evalerr"
	"github.com/ISibboI/evalexpr/internal/value"
)

func numberArgs(arg value.Value, n int) ([]float64, error) {
	vals, err := unpack(arg, n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, err := v.AsNumber()
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// unpack splits arg into exactly n Values: for n==0, arg must be Empty;
// for n==1, arg itself (which must not be a Tuple); for n>1, arg must
// be a Tuple of length n.
func unpack(arg value.Value, n int) ([]value.Value, error) {
	if n == 0 {
		if !arg.IsEmpty() {
			return nil, evalerr.ArgumentAmount(evalerr.WrongFunctionArgumentAmount, evalerr.Position{}, 0, 1)
		}
		return nil, nil
	}
	if n == 1 {
		if arg.Kind() == value.TypeTuple {
			return nil, evalerr.ArgumentAmount(evalerr.WrongFunctionArgumentAmount, evalerr.Position{}, 1, mustTupleLen(arg))
		}
		return []value.Value{arg}, nil
	}
	if arg.Kind() != value.TypeTuple {
		return nil, evalerr.ArgumentAmount(evalerr.WrongFunctionArgumentAmount, evalerr.Position{}, n, 1)
	}
	tup, _ := arg.AsTuple()
	if len(tup) != n {
		return nil, evalerr.ArgumentAmount(evalerr.WrongFunctionArgumentAmount, evalerr.Position{}, n, len(tup))
	}
	return tup, nil
}

func mustTupleLen(v value.Value) int {
	tup, _ := v.AsTuple()
	return len(tup)
}

// Min returns the smaller of two numbers, preserving Int when both
// operands are Int (§3 numeric coercion: Float only if either side is).
func Min(arg value.Value) (value.Value, error) {
	vals, err := unpack(arg, 2)
	if err != nil {
		return value.Value{}, err
	}
	return minMax(vals[0], vals[1], false)
}

// Max returns the larger of two numbers, preserving Int when both
// operands are Int (§3 numeric coercion: Float only if either side is).
func Max(arg value.Value) (value.Value, error) {
	vals, err := unpack(arg, 2)
	if err != nil {
		return value.Value{}, err
	}
	return minMax(vals[0], vals[1], true)
}

func minMax(a, b value.Value, wantMax bool) (value.Value, error) {
	if a.Kind() == value.TypeInt && b.Kind() == value.TypeInt {
		ai, _ := a.AsInt()
		bi, _ := b.AsInt()
		if (ai < bi) != wantMax {
			return value.Int(ai), nil
		}
		return value.Int(bi), nil
	}
	af, err := a.AsNumber()
	if err != nil {
		return value.Value{}, err
	}
	bf, err := b.AsNumber()
	if err != nil {
		return value.Value{}, err
	}
	if wantMax {
		return value.Float(math.Max(af, bf)), nil
	}
	return value.Float(math.Min(af, bf)), nil
}

// Abs returns the absolute value of x, preserving its kind: Int in,
// Int out; Float in, Float out.
func Abs(arg value.Value) (value.Value, error) {
	vals, err := unpack(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	v := vals[0]
	switch v.Kind() {
	case value.TypeInt:
		i, _ := v.AsInt()
		if i < 0 {
			i = -i
		}
		return value.Int(i), nil
	case value.TypeFloat:
		f, _ := v.AsFloat()
		return value.Float(math.Abs(f)), nil
	default:
		return value.Value{}, &evalerr.Error{Kind: evalerr.ExpectedNumber, Actual: v.Kind().String()}
	}
}

// Floor rounds x down to the nearest integer, returned as a Float.
func Floor(arg value.Value) (value.Value, error) {
	nums, err := numberArgs(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Float(math.Floor(nums[0])), nil
}

// Ceil rounds x up to the nearest integer, returned as a Float.
func Ceil(arg value.Value) (value.Value, error) {
	nums, err := numberArgs(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Float(math.Ceil(nums[0])), nil
}

// Round rounds x to the nearest integer, returned as a Float.
func Round(arg value.Value) (value.Value, error) {
	nums, err := numberArgs(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Float(math.Round(nums[0])), nil
}

// Sqrt returns the square root of x.
func Sqrt(arg value.Value) (value.Value, error) {
	nums, err := numberArgs(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Float(math.Sqrt(nums[0])), nil
}

// Pow returns base raised to exp, both coerced to Float, matching the
// language's own `^` operator semantics (§4.4).
func Pow(arg value.Value) (value.Value, error) {
	nums, err := numberArgs(arg, 2)
	if err != nil {
		return value.Value{}, err
	}
	return value.Float(math.Pow(nums[0], nums[1])), nil
}
