package evalexpr

import (
	"math"

	"github.com/ISibboI/evalexpr/internal/ast"
	"github.com/ISibboI/evalexpr/internal/evalerr"
)

// eval is the post-order recursive walk described in spec §4.4. It is
// unexported; Node (the public wrapper defined in node.go) exposes the
// typed eval_T / eval_with_context entry points callers actually use,
// the same layering CWBudde-go-dws uses between Evaluator.Eval and its
// per-operator helper methods (internal/interp/evaluator/binary_ops.go).
func eval(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	switch n.Op {
	case ast.OpConst:
		return n.Val, nil
	case ast.OpVariableIdentifier:
		v, ok := ctx.GetValue(n.Name)
		if !ok {
			return Value{}, &evalerr.Error{Kind: evalerr.VariableIdentifierNotFound, Name: n.Name}
		}
		return v, nil
	case ast.OpNeg:
		return evalNeg(n, ctx)
	case ast.OpNot:
		return evalNot(n, ctx)
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		return evalArith(n, ctx)
	case ast.OpExp:
		return evalExp(n, ctx)
	case ast.OpEq, ast.OpNeq, ast.OpLt, ast.OpLeq, ast.OpGt, ast.OpGeq:
		return evalCompare(n, ctx)
	case ast.OpAnd, ast.OpOr:
		return evalLogical(n, ctx)
	case ast.OpAssign, ast.OpAddAssign, ast.OpSubAssign, ast.OpMulAssign, ast.OpDivAssign, ast.OpModAssign, ast.OpExpAssign, ast.OpAndAssign, ast.OpOrAssign:
		return evalAssign(n, ctx)
	case ast.OpAggregate:
		return evalAggregate(n, ctx)
	case ast.OpChain:
		return evalChain(n, ctx)
	case ast.OpCall:
		return evalCall(n, ctx)
	default:
		return Value{}, evalerr.Newf(evalerr.CustomMessage, evalerr.Position{}, "unhandled operator %s", n.Op)
	}
}

func evalNeg(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	v, err := eval(n.Children[0], ctx)
	if err != nil {
		return Value{}, err
	}
	switch v.Kind() {
	case TypeInt:
		i, _ := v.AsInt()
		return Int(-i), nil
	case TypeFloat:
		f, _ := v.AsFloat()
		return Float(-f), nil
	default:
		return Value{}, &evalerr.Error{Kind: evalerr.ExpectedNumber, Actual: v.Kind().String()}
	}
}

func evalNot(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	v, err := eval(n.Children[0], ctx)
	if err != nil {
		return Value{}, err
	}
	b, err := v.AsBoolean()
	if err != nil {
		return Value{}, err
	}
	return Boolean(!b), nil
}

// numericBinary coerces two Values per §3: if either is Float, both
// coerce to Float and the result is Float; otherwise both are Int.
func numericBinary(a, b Value) (af, bf float64, bothInt bool, err error) {
	an, aerr := a.AsNumber()
	if aerr != nil {
		return 0, 0, false, aerr
	}
	bn, berr := b.AsNumber()
	if berr != nil {
		return 0, 0, false, berr
	}
	return an, bn, a.Kind() == TypeInt && b.Kind() == TypeInt, nil
}

func evalArith(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	left, err := eval(n.Children[0], ctx)
	if err != nil {
		return Value{}, err
	}
	right, err := eval(n.Children[1], ctx)
	if err != nil {
		return Value{}, err
	}

	if n.Op == ast.OpAdd && (left.Kind() == TypeString || right.Kind() == TypeString) {
		ls, lerr := left.AsString()
		if lerr != nil {
			return Value{}, lerr
		}
		rs, rerr := right.AsString()
		if rerr != nil {
			return Value{}, rerr
		}
		return String(ls + rs), nil
	}

	af, bf, bothInt, err := numericBinary(left, right)
	if err != nil {
		return Value{}, err
	}

	if bothInt {
		li, _ := left.AsInt()
		ri, _ := right.AsInt()
		return intArith(n.Op, li, ri)
	}

	switch n.Op {
	case ast.OpAdd:
		return Float(af + bf), nil
	case ast.OpSub:
		return Float(af - bf), nil
	case ast.OpMul:
		return Float(af * bf), nil
	case ast.OpDiv:
		return Float(af / bf), nil
	case ast.OpMod:
		return Float(math.Mod(af, bf)), nil
	default:
		return Value{}, evalerr.Newf(evalerr.CustomMessage, evalerr.Position{}, "unreachable arith operator %s", n.Op)
	}
}

// intArith implements checked integer arithmetic: overflowing + - *
// and division/modulo by zero both surface as structured errors
// rather than wrapping or panicking (§7 open-question resolution,
// see DESIGN.md).
func intArith(op ast.Operator, a, b int64) (Value, error) {
	switch op {
	case ast.OpAdd:
		sum := a + b
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return Value{}, evalerr.New(evalerr.OverflowError, evalerr.Position{})
		}
		return Int(sum), nil
	case ast.OpSub:
		diff := a - b
		if (b < 0 && diff < a) || (b > 0 && diff > a) {
			return Value{}, evalerr.New(evalerr.OverflowError, evalerr.Position{})
		}
		return Int(diff), nil
	case ast.OpMul:
		if a == 0 || b == 0 {
			return Int(0), nil
		}
		if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
			return Value{}, evalerr.New(evalerr.OverflowError, evalerr.Position{})
		}
		prod := a * b
		if prod/b != a {
			return Value{}, evalerr.New(evalerr.OverflowError, evalerr.Position{})
		}
		return Int(prod), nil
	case ast.OpDiv:
		if b == 0 {
			return Value{}, evalerr.New(evalerr.DivisionError, evalerr.Position{})
		}
		return Int(a / b), nil
	case ast.OpMod:
		if b == 0 {
			return Value{}, evalerr.New(evalerr.DivisionError, evalerr.Position{})
		}
		return Int(a % b), nil
	default:
		return Value{}, evalerr.Newf(evalerr.CustomMessage, evalerr.Position{}, "unreachable int arith operator %s", op)
	}
}

// evalExp always returns Float, coercing both operands, per §3's
// exponentiation exception.
func evalExp(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	left, err := eval(n.Children[0], ctx)
	if err != nil {
		return Value{}, err
	}
	right, err := eval(n.Children[1], ctx)
	if err != nil {
		return Value{}, err
	}
	lf, err := left.AsNumber()
	if err != nil {
		return Value{}, err
	}
	rf, err := right.AsNumber()
	if err != nil {
		return Value{}, err
	}
	return Float(math.Pow(lf, rf)), nil
}

func evalCompare(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	left, err := eval(n.Children[0], ctx)
	if err != nil {
		return Value{}, err
	}
	right, err := eval(n.Children[1], ctx)
	if err != nil {
		return Value{}, err
	}

	if n.Op == ast.OpEq {
		return Boolean(left.Equal(right)), nil
	}
	if n.Op == ast.OpNeq {
		return Boolean(!left.Equal(right)), nil
	}

	if left.Kind() == TypeString || right.Kind() == TypeString {
		ls, lerr := left.AsString()
		if lerr != nil {
			return Value{}, lerr
		}
		rs, rerr := right.AsString()
		if rerr != nil {
			return Value{}, rerr
		}
		switch n.Op {
		case ast.OpLt:
			return Boolean(ls < rs), nil
		case ast.OpLeq:
			return Boolean(ls <= rs), nil
		case ast.OpGt:
			return Boolean(ls > rs), nil
		case ast.OpGeq:
			return Boolean(ls >= rs), nil
		}
	}

	lf, lerr := left.AsNumber()
	if lerr != nil {
		return Value{}, lerr
	}
	rf, rerr := right.AsNumber()
	if rerr != nil {
		return Value{}, rerr
	}
	switch n.Op {
	case ast.OpLt:
		return Boolean(lf < rf), nil
	case ast.OpLeq:
		return Boolean(lf <= rf), nil
	case ast.OpGt:
		return Boolean(lf > rf), nil
	case ast.OpGeq:
		return Boolean(lf >= rf), nil
	default:
		return Value{}, evalerr.Newf(evalerr.CustomMessage, evalerr.Position{}, "unreachable comparison operator %s", n.Op)
	}
}

// evalLogical implements short-circuit && / ||: the right operand is
// not evaluated at all once the left operand determines the result, so
// its side effects (and any error it would raise) never happen (§4.4).
func evalLogical(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	left, err := eval(n.Children[0], ctx)
	if err != nil {
		return Value{}, err
	}
	lb, err := left.AsBoolean()
	if err != nil {
		return Value{}, err
	}

	if n.Op == ast.OpAnd && !lb {
		return Boolean(false), nil
	}
	if n.Op == ast.OpOr && lb {
		return Boolean(true), nil
	}

	right, err := eval(n.Children[1], ctx)
	if err != nil {
		return Value{}, err
	}
	rb, err := right.AsBoolean()
	if err != nil {
		return Value{}, err
	}
	return Boolean(rb), nil
}

func evalAssign(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	target := n.Children[0]
	if target.Op != ast.OpVariableIdentifier {
		return Value{}, &evalerr.Error{Kind: evalerr.ExpectedVariable, Actual: target.Op.String()}
	}

	rhs, err := eval(n.Children[1], ctx)
	if err != nil {
		return Value{}, err
	}

	newVal := rhs
	if arith, ok := n.Op.CompoundArith(); ok {
		current, ok := ctx.GetValue(target.Name)
		if !ok {
			return Value{}, &evalerr.Error{Kind: evalerr.VariableIdentifierNotFound, Name: target.Name}
		}
		newVal, err = applyCompound(arith, current, rhs)
		if err != nil {
			return Value{}, err
		}
	}

	mctx, ok := ctx.(MutableContext)
	if !ok {
		return Value{}, &evalerr.Error{Kind: evalerr.ContextNotManipulable}
	}
	if err := mctx.SetValue(target.Name, newVal); err != nil {
		return Value{}, err
	}
	return Empty, nil
}

// applyCompound evaluates `<op>` between the variable's current value
// and the right-hand side, for compound assignment (§4.4).
func applyCompound(op ast.Operator, current, rhs Value) (Value, error) {
	fake := ast.NewBinary(op, ast.NewConst(current), ast.NewConst(rhs))
	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		return evalArith(fake, nil)
	case ast.OpExp:
		return evalExp(fake, nil)
	case ast.OpAnd, ast.OpOr:
		return evalLogical(fake, nil)
	default:
		return Value{}, evalerr.Newf(evalerr.CustomMessage, evalerr.Position{}, "unsupported compound operator %s", op)
	}
}

// evalAggregate builds a flat tuple: a side that is itself a tuple has
// its elements spliced in, per §4.4's "no directly-nested tuple
// children" guarantee for the aggregate chain.
func evalAggregate(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	var elems []Value
	for _, c := range n.Children {
		v, err := eval(c, ctx)
		if err != nil {
			return Value{}, err
		}
		if v.Kind() == TypeTuple {
			sub, _ := v.AsTuple()
			elems = append(elems, sub...)
		} else {
			elems = append(elems, v)
		}
	}
	return Tuple(elems...), nil
}

// evalChain evaluates every child for effect, keeping only the last
// value.
func evalChain(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	var last Value = Empty
	for _, c := range n.Children {
		v, err := eval(c, ctx)
		if err != nil {
			return Value{}, err
		}
		last = v
	}
	return last, nil
}

func evalCall(n ast.Node, ctx ReadOnlyContext) (Value, error) {
	arg, err := eval(n.Children[0], ctx)
	if err != nil {
		return Value{}, err
	}
	fn, ok := ctx.GetFunction(n.Name)
	if !ok {
		return Value{}, &evalerr.Error{Kind: evalerr.FunctionIdentifierNotFound, Name: n.Name}
	}
	if fn.Arity >= 0 {
		if err := checkArity(arg, fn.Arity); err != nil {
			return Value{}, err
		}
	}
	return fn.Call(arg)
}

func checkArity(arg Value, arity int) error {
	if arity == 0 {
		if arg.IsEmpty() {
			return nil
		}
		return evalerr.ArgumentAmount(evalerr.WrongFunctionArgumentAmount, evalerr.Position{}, 0, 1)
	}
	if arity == 1 {
		if arg.Kind() != TypeTuple {
			return nil
		}
		tup, _ := arg.AsTuple()
		if len(tup) == 1 {
			return nil
		}
		return evalerr.ArgumentAmount(evalerr.WrongFunctionArgumentAmount, evalerr.Position{}, arity, len(tup))
	}
	if arg.Kind() != TypeTuple {
		return evalerr.ArgumentAmount(evalerr.WrongFunctionArgumentAmount, evalerr.Position{}, arity, 1)
	}
	tup, _ := arg.AsTuple()
	if len(tup) != arity {
		return evalerr.ArgumentAmount(evalerr.WrongFunctionArgumentAmount, evalerr.Position{}, arity, len(tup))
	}
	return nil
}
