package ast

import "github.com/ISibboI/evalexpr/internal/value"

// Node is one point in the compiled operator tree: a tagged Operator
// plus its ordered children. Leaves carry a literal payload selected
// by Operator (Const carries Val, VariableIdentifier/FunctionIdentifier
// carry Name); every other operator carries only Children. A Node is
// immutable after construction and references no Context, so the same
// tree may be evaluated repeatedly against different contexts (§5).
type Node struct {
	Op       Operator
	Children []Node

	Val  value.Value // OpConst
	Name string      // OpVariableIdentifier, OpFunctionIdentifier, OpCall
}

// NewConst builds an OpConst leaf.
func NewConst(v value.Value) Node { return Node{Op: OpConst, Val: v} }

// NewVariable builds an OpVariableIdentifier leaf.
func NewVariable(name string) Node { return Node{Op: OpVariableIdentifier, Name: name} }

// NewFunctionCall builds an OpCall node: operator identifies the
// function by name, the single child is the argument sub-tree.
func NewFunctionCall(name string, arg Node) Node {
	return Node{Op: OpCall, Name: name, Children: []Node{arg}}
}

// NewUnary builds a 1-arity node.
func NewUnary(op Operator, child Node) Node {
	return Node{Op: op, Children: []Node{child}}
}

// NewBinary builds a 2-arity node.
func NewBinary(op Operator, left, right Node) Node {
	return Node{Op: op, Children: []Node{left, right}}
}

// NewChain builds a variadic OpChain node.
func NewChain(children []Node) Node {
	return Node{Op: OpChain, Children: children}
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

// Identifiers walks the tree in left-to-right source order and
// returns the name of every VariableIdentifier leaf and every Call
// node (a Call's name comes before the names in its argument),
// duplicates preserved. kind selects which names to collect: 0 both,
// 1 variables only, 2 functions only.
func (n Node) Identifiers(kind int) []string {
	var out []string
	var walk func(Node)
	walk = func(nd Node) {
		switch nd.Op {
		case OpVariableIdentifier:
			if kind == 0 || kind == 1 {
				out = append(out, nd.Name)
			}
		case OpCall:
			if kind == 0 || kind == 2 {
				out = append(out, nd.Name)
			}
		}
		for _, c := range nd.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
