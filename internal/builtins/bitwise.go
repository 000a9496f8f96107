package builtins

import "github.com/ISibboI/evalexpr/internal/value"

func intArgs(arg value.Value, n int) ([]int64, error) {
	vals, err := unpack(arg, n)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(vals))
	for i, v := range vals {
		iv, err := v.AsInt()
		if err != nil {
			return nil, err
		}
		out[i] = iv
	}
	return out, nil
}

// BitAnd returns a & b.
func BitAnd(arg value.Value) (value.Value, error) {
	ints, err := intArgs(arg, 2)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(ints[0] & ints[1]), nil
}

// BitOr returns a | b.
func BitOr(arg value.Value) (value.Value, error) {
	ints, err := intArgs(arg, 2)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(ints[0] | ints[1]), nil
}

// BitXor returns a ^ b.
func BitXor(arg value.Value) (value.Value, error) {
	ints, err := intArgs(arg, 2)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(ints[0] ^ ints[1]), nil
}

// BitNot returns the bitwise complement of a.
func BitNot(arg value.Value) (value.Value, error) {
	ints, err := intArgs(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(^ints[0]), nil
}

// Shl returns a shifted left by n bits.
func Shl(arg value.Value) (value.Value, error) {
	ints, err := intArgs(arg, 2)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(ints[0] << uint64(ints[1])), nil
}

// Shr returns a shifted right by n bits (arithmetic shift, sign-preserving).
func Shr(arg value.Value) (value.Value, error) {
	ints, err := intArgs(arg, 2)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(ints[0] >> uint64(ints[1])), nil
}
