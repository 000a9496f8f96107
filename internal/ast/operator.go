// Package ast holds the compiled operator tree: Operator (a tagged sum
// of every node kind, each with a fixed precedence/arity) and Node
// (the tree itself). The tagged-tree shape — an enum tag plus an
// ordered child slice instead of dynamic-dispatch subclasses — is
// grounded on wayneeseguin-graft/pkg/graft/interfaces.go's
// Expr{Type ExprType, Left, Right *Expr}, generalized from two fixed
// children to a slice so chain/aggregate roots can be variadic and a
// function call can hold its single argument.
package ast

import (
	"github.com/ISibboI/evalexpr/internal/token"
)

// Operator tags every Node kind. See spec §4.3 for the precedence
// table this mirrors.
type Operator int

const (
	// Leaves.
	OpConst Operator = iota
	OpVariableIdentifier
	OpFunctionIdentifier

	// Unary.
	OpNeg
	OpNot

	// Binary arithmetic.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpExp

	// Binary comparison.
	OpEq
	OpNeq
	OpLt
	OpLeq
	OpGt
	OpGeq

	// Binary logical (short-circuit).
	OpAnd
	OpOr

	// Binary assignment (left child must resolve to a VariableIdentifier leaf).
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpExpAssign
	OpAndAssign
	OpOrAssign

	// Variadic aggregate (flattening tuple construction).
	OpAggregate

	// Variadic chain (`;`).
	OpChain

	// Unary function call; the Node's Name names the function,
	// the single child is the argument sub-tree.
	OpCall
)

// Precedence returns the operator's binding strength per spec §4.3.
// Higher binds tighter.
func (o Operator) Precedence() int {
	switch o {
	case OpChain:
		return 0
	case OpAggregate:
		return 40
	case OpAssign, OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign, OpModAssign, OpExpAssign, OpAndAssign, OpOrAssign:
		return 50
	case OpOr:
		return 70
	case OpAnd:
		return 75
	case OpEq, OpNeq, OpLt, OpLeq, OpGt, OpGeq:
		return 80
	case OpAdd, OpSub:
		return 95
	case OpMul, OpDiv, OpMod:
		return 100
	case OpNeg, OpNot:
		return 110
	case OpExp:
		return 120
	case OpCall:
		return 190
	case OpConst, OpVariableIdentifier, OpFunctionIdentifier:
		return 200
	default:
		return 200
	}
}

// Arity returns the fixed number of children the operator takes, or
// -1 for variadic operators (chain, aggregate).
func (o Operator) Arity() int {
	switch o {
	case OpConst, OpVariableIdentifier, OpFunctionIdentifier:
		return 0
	case OpNeg, OpNot, OpCall:
		return 1
	case OpChain, OpAggregate:
		return -1
	default:
		return 2
	}
}

// IsAssignment reports whether o is `=` or a compound-assign variant.
func (o Operator) IsAssignment() bool {
	switch o {
	case OpAssign, OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign, OpModAssign, OpExpAssign, OpAndAssign, OpOrAssign:
		return true
	default:
		return false
	}
}

// CompoundArith returns the underlying arithmetic/logical operator a
// compound-assign desugars to (e.g. OpAddAssign -> OpAdd), and false
// for plain OpAssign.
func (o Operator) CompoundArith() (Operator, bool) {
	switch o {
	case OpAddAssign:
		return OpAdd, true
	case OpSubAssign:
		return OpSub, true
	case OpMulAssign:
		return OpMul, true
	case OpDivAssign:
		return OpDiv, true
	case OpModAssign:
		return OpMod, true
	case OpExpAssign:
		return OpExp, true
	case OpAndAssign:
		return OpAnd, true
	case OpOrAssign:
		return OpOr, true
	default:
		return 0, false
	}
}

func (o Operator) String() string {
	switch o {
	case OpConst:
		return "Const"
	case OpVariableIdentifier:
		return "VariableIdentifier"
	case OpFunctionIdentifier:
		return "FunctionIdentifier"
	case OpNeg:
		return "Neg"
	case OpNot:
		return "Not"
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	case OpMod:
		return "Mod"
	case OpExp:
		return "Exp"
	case OpEq:
		return "Eq"
	case OpNeq:
		return "Neq"
	case OpLt:
		return "Lt"
	case OpLeq:
		return "Leq"
	case OpGt:
		return "Gt"
	case OpGeq:
		return "Geq"
	case OpAnd:
		return "And"
	case OpOr:
		return "Or"
	case OpAssign:
		return "Assign"
	case OpAddAssign:
		return "AddAssign"
	case OpSubAssign:
		return "SubAssign"
	case OpMulAssign:
		return "MulAssign"
	case OpDivAssign:
		return "DivAssign"
	case OpModAssign:
		return "ModAssign"
	case OpExpAssign:
		return "ExpAssign"
	case OpAndAssign:
		return "AndAssign"
	case OpOrAssign:
		return "OrAssign"
	case OpAggregate:
		return "Aggregate"
	case OpChain:
		return "Chain"
	case OpCall:
		return "Call"
	default:
		return "Unknown"
	}
}

// FromTokenBinary maps a binary token type to its Operator, for the
// tree-build stage.
func FromTokenBinary(t token.Type) (Operator, bool) {
	switch t {
	case token.Plus:
		return OpAdd, true
	case token.Minus:
		return OpSub, true
	case token.Star:
		return OpMul, true
	case token.Slash:
		return OpDiv, true
	case token.Percent:
		return OpMod, true
	case token.Hat:
		return OpExp, true
	case token.Eq:
		return OpEq, true
	case token.Neq:
		return OpNeq, true
	case token.Lt:
		return OpLt, true
	case token.Leq:
		return OpLeq, true
	case token.Gt:
		return OpGt, true
	case token.Geq:
		return OpGeq, true
	case token.And:
		return OpAnd, true
	case token.Or:
		return OpOr, true
	case token.Comma:
		return OpAggregate, true
	case token.Semicolon:
		return OpChain, true
	case token.Assign:
		return OpAssign, true
	case token.PlusAssign:
		return OpAddAssign, true
	case token.MinusAssign:
		return OpSubAssign, true
	case token.StarAssign:
		return OpMulAssign, true
	case token.SlashAssign:
		return OpDivAssign, true
	case token.PercentAssign:
		return OpModAssign, true
	case token.HatAssign:
		return OpExpAssign, true
	case token.AndAssign:
		return OpAndAssign, true
	case token.OrAssign:
		return OpOrAssign, true
	default:
		return 0, false
	}
}
