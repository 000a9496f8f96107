package parser

import (
	"testing"

	"github.com/ISibboI/evalexpr/internal/token"
)

func TestStage1MinusDisambiguation(t *testing.T) {
	toks, err := token.Tokenize("1 - -2")
	if err != nil {
		t.Fatal(err)
	}
	parts, err := Stage1(toks)
	if err != nil {
		t.Fatal(err)
	}
	if parts[1].Kind != pkBinaryOp {
		t.Fatalf("first '-' classified as %v, want pkBinaryOp", parts[1].Kind)
	}
	if parts[2].Kind != pkUnaryOp {
		t.Fatalf("second '-' classified as %v, want pkUnaryOp", parts[2].Kind)
	}
}

func TestStage1FunctionVsVariable(t *testing.T) {
	toks, err := token.Tokenize("f(1)")
	if err != nil {
		t.Fatal(err)
	}
	parts, err := Stage1(toks)
	if err != nil {
		t.Fatal(err)
	}
	if parts[0].Kind != pkFunction {
		t.Fatalf("'f' classified as %v, want pkFunction", parts[0].Kind)
	}

	toks2, err := token.Tokenize("x")
	if err != nil {
		t.Fatal(err)
	}
	parts2, err := Stage1(toks2)
	if err != nil {
		t.Fatal(err)
	}
	if parts2[0].Kind != pkVariable {
		t.Fatalf("'x' classified as %v, want pkVariable", parts2[0].Kind)
	}
}

func TestStage1AdjacentValuesRejected(t *testing.T) {
	toks, err := token.Tokenize("1 x")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Stage1(toks); err == nil {
		t.Fatal("expected error for a literal directly followed by an identifier")
	}
}
