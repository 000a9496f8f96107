package parser

import (
	"github.com/ISibboI/evalexpr/internal/ast"
	"github.com/ISibboI/evalexpr/internal/evalerr"
	"github.com/ISibboI/evalexpr/internal/token"
	"github.com/ISibboI/evalexpr/internal/value"
)

// treeBuilder walks a partial-token stream with a cursor, the same
// shape as wayneeseguin-graft/pkg/graft/parser.Parser, implementing
// the §6 EBNF grammar directly: each grammar rule is one method, and
// precedence/associativity fall out of which rule calls which (no
// generic shunting-yard stack is needed — recursive descent over an
// unambiguous precedence-ordered grammar produces the same trees the
// spec's stack-reduction algorithm would).
type treeBuilder struct {
	toks []PartialToken
	pos  int
}

// Parse compiles a raw token stream into a single operator tree,
// running stage 1 then stage 2.
func Parse(tokens []token.Token) (ast.Node, error) {
	partials, err := Stage1(tokens)
	if err != nil {
		return ast.Node{}, err
	}
	tb := &treeBuilder{toks: partials}
	n, err := tb.parseChain()
	if err != nil {
		return ast.Node{}, err
	}
	if !tb.atEnd() {
		cur := tb.peek()
		if cur.Kind == pkRBrace {
			return ast.Node{}, evalerr.New(evalerr.UnmatchedRBrace, evalerr.Position(cur.Pos))
		}
		return ast.Node{}, evalerr.Newf(evalerr.UnmatchedPartialToken, evalerr.Position(cur.Pos), "unexpected trailing token")
	}
	return n, nil
}

func (tb *treeBuilder) atEnd() bool { return tb.pos >= len(tb.toks) }

func (tb *treeBuilder) peek() PartialToken {
	if tb.atEnd() {
		return PartialToken{}
	}
	return tb.toks[tb.pos]
}

func (tb *treeBuilder) advance() PartialToken {
	t := tb.peek()
	tb.pos++
	return t
}

func (tb *treeBuilder) peekIsBinary(op ast.Operator) bool {
	return !tb.atEnd() && tb.peek().Kind == pkBinaryOp && tb.peek().Op == op
}

// parseChain implements `chain := assign (';' assign)* (';')?`.
// An empty input (or an empty group body) parses to Empty, matching
// spec §4.3 rule 4 ("a marker popped with no child yields Empty").
func (tb *treeBuilder) parseChain() (ast.Node, error) {
	if tb.atEnd() || tb.peek().Kind == pkRBrace {
		return ast.NewConst(value.Empty), nil
	}

	var children []ast.Node
	trailingSemicolon := false
	for {
		n, err := tb.parseAssign()
		if err != nil {
			return ast.Node{}, err
		}
		children = append(children, n)
		if tb.peekIsBinary(ast.OpChain) {
			tb.advance()
			trailingSemicolon = true
			if tb.atEnd() || tb.peek().Kind == pkRBrace {
				break
			}
			trailingSemicolon = false
			continue
		}
		trailingSemicolon = false
		break
	}

	if trailingSemicolon {
		children = append(children, ast.NewConst(value.Empty))
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return ast.NewChain(flattenSameOp(ast.OpChain, children)), nil
}

// parseAssign implements `assign := aggregate (assign_op assign)?`,
// right-recursive so `a = b = 5` is `a = (b = 5)`.
func (tb *treeBuilder) parseAssign() (ast.Node, error) {
	left, err := tb.parseAggregate()
	if err != nil {
		return ast.Node{}, err
	}
	if tb.atEnd() || tb.peek().Kind != pkBinaryOp || !tb.peek().Op.IsAssignment() {
		return left, nil
	}
	op := tb.advance().Op
	right, err := tb.parseAssign()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.NewBinary(op, left, right), nil
}

// parseAggregate implements `aggregate := logic_or (',' logic_or)*`,
// flattened into a single variadic OpAggregate node.
func (tb *treeBuilder) parseAggregate() (ast.Node, error) {
	first, err := tb.parseLogicOr()
	if err != nil {
		return ast.Node{}, err
	}
	if !tb.peekIsBinary(ast.OpAggregate) {
		return first, nil
	}
	children := []ast.Node{first}
	for tb.peekIsBinary(ast.OpAggregate) {
		tb.advance()
		next, err := tb.parseLogicOr()
		if err != nil {
			return ast.Node{}, err
		}
		children = append(children, next)
	}
	return ast.Node{Op: ast.OpAggregate, Children: flattenSameOp(ast.OpAggregate, children)}, nil
}

func leftAssocChain(tb *treeBuilder, next func() (ast.Node, error), ops ...ast.Operator) (ast.Node, error) {
	left, err := next()
	if err != nil {
		return ast.Node{}, err
	}
	for {
		matched := false
		for _, op := range ops {
			if tb.peekIsBinary(op) {
				tb.advance()
				right, err := next()
				if err != nil {
					return ast.Node{}, err
				}
				left = ast.NewBinary(op, left, right)
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	return left, nil
}

func (tb *treeBuilder) parseLogicOr() (ast.Node, error) {
	return leftAssocChain(tb, tb.parseLogicAnd, ast.OpOr)
}

func (tb *treeBuilder) parseLogicAnd() (ast.Node, error) {
	return leftAssocChain(tb, tb.parseCompare, ast.OpAnd)
}

func (tb *treeBuilder) parseCompare() (ast.Node, error) {
	return leftAssocChain(tb, tb.parseAdd, ast.OpEq, ast.OpNeq, ast.OpLt, ast.OpLeq, ast.OpGt, ast.OpGeq)
}

func (tb *treeBuilder) parseAdd() (ast.Node, error) {
	return leftAssocChain(tb, tb.parseMul, ast.OpAdd, ast.OpSub)
}

func (tb *treeBuilder) parseMul() (ast.Node, error) {
	return leftAssocChain(tb, tb.parseExp, ast.OpMul, ast.OpDiv, ast.OpMod)
}

// parseExp implements `exp := unary ('^' unary)*`. spec §9 resolves
// the associativity open question as left-associative (consistent
// with the stack-reduction rule "strictly greater precedence" applied
// literally to a run of equal-precedence operators), so this uses the
// same left-folding loop as every other binary level rather than
// right-recursion.
func (tb *treeBuilder) parseExp() (ast.Node, error) {
	return leftAssocChain(tb, tb.parseUnary, ast.OpExp)
}

// parseUnary implements `unary := ('-'|'!')? call`.
func (tb *treeBuilder) parseUnary() (ast.Node, error) {
	if !tb.atEnd() && tb.peek().Kind == pkUnaryOp {
		op := tb.advance().Op
		child, err := tb.parseCall()
		if err != nil {
			return ast.Node{}, err
		}
		return ast.NewUnary(op, child), nil
	}
	return tb.parseCall()
}

// parseCall implements `call := IDENT unary | atom`.
func (tb *treeBuilder) parseCall() (ast.Node, error) {
	if !tb.atEnd() && tb.peek().Kind == pkFunction {
		name := tb.advance().Name
		arg, err := tb.parseUnary()
		if err != nil {
			return ast.Node{}, err
		}
		return ast.NewFunctionCall(name, arg), nil
	}
	return tb.parseAtom()
}

// parseAtom implements `atom := literal | IDENT | '(' expr? ')'`.
func (tb *treeBuilder) parseAtom() (ast.Node, error) {
	if tb.atEnd() {
		return ast.Node{}, evalerr.ArgumentAmount(evalerr.WrongOperatorArgumentAmount, evalerr.Position{}, 1, 0)
	}
	t := tb.peek()
	switch t.Kind {
	case pkConst:
		tb.advance()
		return ast.NewConst(t.Val), nil
	case pkVariable:
		tb.advance()
		return ast.NewVariable(t.Name), nil
	case pkLBrace:
		tb.advance()
		inner, err := tb.parseChain()
		if err != nil {
			return ast.Node{}, err
		}
		if tb.atEnd() {
			return ast.Node{}, evalerr.New(evalerr.UnmatchedPartialToken, evalerr.Position(t.Pos))
		}
		if tb.peek().Kind != pkRBrace {
			return ast.Node{}, evalerr.New(evalerr.UnmatchedRBrace, evalerr.Position(tb.peek().Pos))
		}
		tb.advance()
		return inner, nil
	default:
		return ast.Node{}, evalerr.ArgumentAmount(evalerr.WrongOperatorArgumentAmount, evalerr.Position(t.Pos), 1, 0)
	}
}

// flattenSameOp merges any direct child that is already the same
// variadic operator into the parent's child list, so a run of `;` or
// `,` produces one flat variadic node rather than a nested tree.
func flattenSameOp(op ast.Operator, children []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(children))
	for _, c := range children {
		if c.Op == op {
			out = append(out, c.Children...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

