// Package parser implements the two-stage compile pipeline described
// in spec §4.3: stage 1 classifies the raw token stream into a flat
// partial-token stream (resolving unary/binary `-` and variable/function
// identifiers via look-behind/look-ahead), stage 2 builds the operator
// tree from that stream via a recursive-descent precedence climb that
// implements the precedence table exactly. The cursor-based Parser
// struct (tokens []Token, current int) follows
// wayneeseguin-graft/pkg/graft/parser.Parser.
package parser

import (
	"github.com/ISibboI/evalexpr/internal/ast"
	"github.com/ISibboI/evalexpr/internal/evalerr"
	"github.com/ISibboI/evalexpr/internal/token"
	"github.com/ISibboI/evalexpr/internal/value"
)

// PartialKind classifies one partial token.
type PartialKind int

const (
	pkConst PartialKind = iota
	pkVariable
	pkFunction
	pkBinaryOp
	pkUnaryOp
	pkLBrace
	pkRBrace
)

// PartialToken is a token after unary/binary and variable/function
// disambiguation, but before tree building (the glossary's "partial
// token").
type PartialToken struct {
	Kind PartialKind
	Op   ast.Operator // for pkBinaryOp, pkUnaryOp
	Val  value.Value  // for pkConst
	Name string       // for pkVariable, pkFunction
	Pos  token.Position
}

func isValueProducingRaw(k PartialKind) bool {
	return k == pkConst || k == pkVariable || k == pkRBrace
}

func isValueStartingRaw(k PartialKind) bool {
	return k == pkConst || k == pkVariable || k == pkLBrace
}

// functionTrigger reports whether tok is a token type that, appearing
// immediately after an identifier, makes that identifier a
// FunctionIdentifier per spec §4.3: "LBrace, another Identifier, a
// literal, or a unary-context token".
func functionTrigger(t token.Type) bool {
	switch t {
	case token.LBrace, token.Identifier, token.Int, token.Float, token.String, token.Boolean, token.Minus, token.Not:
		return true
	default:
		return false
	}
}

// Stage1 classifies a raw token stream into partial tokens.
func Stage1(tokens []token.Token) ([]PartialToken, error) {
	out := make([]PartialToken, 0, len(tokens))
	prevKind := PartialKind(-1)
	havePrev := false

	for i, t := range tokens {
		var pt PartialToken
		pt.Pos = t.Pos

		switch t.Type {
		case token.Int:
			pt.Kind, pt.Val = pkConst, value.Int(t.Int)
		case token.Float:
			pt.Kind, pt.Val = pkConst, value.Float(t.Flt)
		case token.String:
			pt.Kind, pt.Val = pkConst, value.String(t.Text)
		case token.Boolean:
			pt.Kind, pt.Val = pkConst, value.Boolean(t.Bool)
		case token.Identifier:
			var next token.Type = token.EOF
			if i+1 < len(tokens) {
				next = tokens[i+1].Type
			}
			if functionTrigger(next) {
				pt.Kind, pt.Name = pkFunction, t.Text
			} else {
				pt.Kind, pt.Name = pkVariable, t.Text
			}
		case token.Minus:
			if havePrev && isValueProducingRaw(prevKind) {
				pt.Kind, pt.Op = pkBinaryOp, ast.OpSub
			} else {
				pt.Kind, pt.Op = pkUnaryOp, ast.OpNeg
			}
		case token.Not:
			pt.Kind, pt.Op = pkUnaryOp, ast.OpNot
		case token.LBrace:
			pt.Kind = pkLBrace
		case token.RBrace:
			pt.Kind = pkRBrace
		default:
			if op, ok := ast.FromTokenBinary(t.Type); ok {
				pt.Kind, pt.Op = pkBinaryOp, op
			} else {
				return nil, evalerr.Newf(evalerr.TokenizeFailure, evalerr.Position(t.Pos), "unexpected token %s", t.Type)
			}
		}

		if havePrev && isValueProducingRaw(prevKind) && isValueStartingRaw(pt.Kind) {
			return nil, evalerr.Newf(evalerr.UnmatchedPartialToken, evalerr.Position(t.Pos),
				"unexpected %s following a value with no operator between them", describeKind(pt.Kind))
		}

		out = append(out, pt)
		prevKind, havePrev = pt.Kind, true
	}
	return out, nil
}

func describeKind(k PartialKind) string {
	switch k {
	case pkConst:
		return "literal"
	case pkVariable:
		return "identifier"
	case pkLBrace:
		return "'('"
	default:
		return "token"
	}
}
