package evalexpr

import "github.com/ISibboI/evalexpr/internal/builtins"

// RegisterBuiltins registers the standard function library (§4.5) into
// ctx: math (min, max, abs, floor, ceil, round, sqrt, pow), string
// (str_len, to_uppercase, to_lowercase, trim, contains, regex_matches,
// regex_replace), bitwise (bitand, bitor, bitxor, bitnot, shl, shr),
// and control (if, typeof, random). internal/builtins.* functions are
// func(Value) (Value, error) — the same shape as Function.Call, since
// Value is a type alias for internal/value.Value rather than a
// distinct type, so no adapter is needed.
func RegisterBuiltins(ctx MutableContext) error {
	funcs := map[string]Function{
		"min":            {Call: builtins.Min, Arity: 2},
		"max":            {Call: builtins.Max, Arity: 2},
		"abs":            {Call: builtins.Abs, Arity: 1},
		"floor":          {Call: builtins.Floor, Arity: 1},
		"ceil":           {Call: builtins.Ceil, Arity: 1},
		"round":          {Call: builtins.Round, Arity: 1},
		"sqrt":           {Call: builtins.Sqrt, Arity: 1},
		"pow":            {Call: builtins.Pow, Arity: 2},
		"str_len":        {Call: builtins.StrLen, Arity: 1},
		"to_uppercase":   {Call: builtins.ToUppercase, Arity: 1},
		"to_lowercase":   {Call: builtins.ToLowercase, Arity: 1},
		"trim":           {Call: builtins.Trim, Arity: 1},
		"contains":       {Call: builtins.Contains, Arity: 2},
		"regex_matches":  {Call: builtins.RegexMatches, Arity: 2},
		"regex_replace":  {Call: builtins.RegexReplace, Arity: 3},
		"bitand":         {Call: builtins.BitAnd, Arity: 2},
		"bitor":          {Call: builtins.BitOr, Arity: 2},
		"bitxor":         {Call: builtins.BitXor, Arity: 2},
		"bitnot":         {Call: builtins.BitNot, Arity: 1},
		"shl":            {Call: builtins.Shl, Arity: 2},
		"shr":            {Call: builtins.Shr, Arity: 2},
		"if":             {Call: builtins.If, Arity: 3},
		"typeof":         {Call: builtins.TypeOf, Arity: 1},
		"random":         {Call: builtins.Random, Arity: 0},
	}
	for name, fn := range funcs {
		if err := ctx.SetFunction(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// NewContextWithBuiltins allocates a Context and registers the
// standard function library into it in one call.
func NewContextWithBuiltins() (*Context, error) {
	ctx := NewContext()
	if err := RegisterBuiltins(ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}
