package evalexpr

import (
	"github.com/ISibboI/evalexpr/internal/ast"
	"github.com/ISibboI/evalexpr/internal/parser"
	"github.com/ISibboI/evalexpr/internal/token"
)

// Node is the compiled operator tree returned by Compile (§4.3/§4.4).
// It is immutable after construction and references no Context, so the
// same Node may be evaluated repeatedly, even concurrently, against
// distinct contexts (§5). The zero Node is not valid; only Compile (or
// a one-shot helper that calls it) produces one.
type Node struct {
	root ast.Node
}

// Compile tokenizes and parses source into a Node. Compilation is
// deterministic and referentially transparent: the same source always
// produces an equal tree, and Compile never consults or mutates any
// Context.
func Compile(source string) (Node, error) {
	toks, err := token.Tokenize(source)
	if err != nil {
		return Node{}, err
	}
	root, err := parser.Parse(toks)
	if err != nil {
		return Node{}, err
	}
	return Node{root: root}, nil
}

// Eval evaluates n against ctx, which may be a ReadOnlyContext or a
// MutableContext. Assignment sub-expressions fail with
// ContextNotManipulable unless ctx also implements MutableContext.
func (n Node) Eval(ctx ReadOnlyContext) (Value, error) {
	return eval(n.root, ctx)
}

// EvalWithNewContext evaluates n against a freshly allocated, empty
// mutable Context, discarding the context afterward. This is the
// convenience path one-shot callers use (§6: "bare assignments in a
// throwaway expression must still succeed").
func (n Node) EvalWithNewContext() (Value, error) {
	return eval(n.root, NewContext())
}

// EvalInt evaluates n and type-asserts the result to Int.
func (n Node) EvalInt(ctx ReadOnlyContext) (int64, error) {
	v, err := n.Eval(ctx)
	if err != nil {
		return 0, err
	}
	return v.AsInt()
}

// EvalFloat evaluates n and type-asserts the result to Float.
func (n Node) EvalFloat(ctx ReadOnlyContext) (float64, error) {
	v, err := n.Eval(ctx)
	if err != nil {
		return 0, err
	}
	return v.AsFloat()
}

// EvalString evaluates n and type-asserts the result to String.
func (n Node) EvalString(ctx ReadOnlyContext) (string, error) {
	v, err := n.Eval(ctx)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

// EvalBoolean evaluates n and type-asserts the result to Boolean.
func (n Node) EvalBoolean(ctx ReadOnlyContext) (bool, error) {
	v, err := n.Eval(ctx)
	if err != nil {
		return false, err
	}
	return v.AsBoolean()
}

// IterIdentifiers returns every VariableIdentifier and
// FunctionIdentifier name referenced by n, in source order, duplicates
// preserved.
func (n Node) IterIdentifiers() []string { return n.root.Identifiers(0) }

// IterVariableIdentifiers returns only the variable names n
// references.
func (n Node) IterVariableIdentifiers() []string { return n.root.Identifiers(1) }

// IterFunctionIdentifiers returns only the function names n calls.
func (n Node) IterFunctionIdentifiers() []string { return n.root.Identifiers(2) }

// Eval is a one-shot convenience wrapper: compile source and evaluate
// it against a fresh, empty mutable Context.
func Eval(source string) (Value, error) {
	n, err := Compile(source)
	if err != nil {
		return Value{}, err
	}
	return n.EvalWithNewContext()
}

// EvalWithContext is a one-shot convenience wrapper: compile source and
// evaluate it against ctx.
func EvalWithContext(source string, ctx ReadOnlyContext) (Value, error) {
	n, err := Compile(source)
	if err != nil {
		return Value{}, err
	}
	return n.Eval(ctx)
}

// EvalInt is a one-shot convenience wrapper returning an Int result.
func EvalInt(source string) (int64, error) {
	v, err := Eval(source)
	if err != nil {
		return 0, err
	}
	return v.AsInt()
}

// EvalFloat is a one-shot convenience wrapper returning a Float result.
func EvalFloat(source string) (float64, error) {
	v, err := Eval(source)
	if err != nil {
		return 0, err
	}
	return v.AsFloat()
}

// EvalString is a one-shot convenience wrapper returning a String
// result.
func EvalString(source string) (string, error) {
	v, err := Eval(source)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

// EvalBoolean is a one-shot convenience wrapper returning a Boolean
// result.
func EvalBoolean(source string) (bool, error) {
	v, err := Eval(source)
	if err != nil {
		return false, err
	}
	return v.AsBoolean()
}
