package ast

import "testing"

func TestPrecedenceOrdering(t *testing.T) {
	if OpExp.Precedence() <= OpMul.Precedence() {
		t.Fatal("Exp should bind tighter than Mul")
	}
	if OpMul.Precedence() <= OpAdd.Precedence() {
		t.Fatal("Mul should bind tighter than Add")
	}
	if OpAdd.Precedence() <= OpEq.Precedence() {
		t.Fatal("Add should bind tighter than comparison")
	}
	if OpEq.Precedence() <= OpAnd.Precedence() {
		t.Fatal("comparison should bind tighter than And")
	}
	if OpAnd.Precedence() <= OpOr.Precedence() {
		t.Fatal("And should bind tighter than Or")
	}
	if OpOr.Precedence() <= OpAssign.Precedence() {
		t.Fatal("Or should bind tighter than Assign")
	}
	if OpAssign.Precedence() <= OpChain.Precedence() {
		t.Fatal("Assign should bind tighter than Chain")
	}
}

func TestArity(t *testing.T) {
	if OpConst.Arity() != 0 {
		t.Fatal("Const should be arity 0")
	}
	if OpNeg.Arity() != 1 {
		t.Fatal("Neg should be arity 1")
	}
	if OpAdd.Arity() != 2 {
		t.Fatal("Add should be arity 2")
	}
	if OpChain.Arity() != -1 {
		t.Fatal("Chain should be variadic (-1)")
	}
}

func TestIsAssignment(t *testing.T) {
	if !OpAssign.IsAssignment() || !OpAddAssign.IsAssignment() {
		t.Fatal("Assign/AddAssign should report IsAssignment")
	}
	if OpAdd.IsAssignment() {
		t.Fatal("Add should not report IsAssignment")
	}
}

func TestCompoundArith(t *testing.T) {
	op, ok := OpAddAssign.CompoundArith()
	if !ok || op != OpAdd {
		t.Fatalf("OpAddAssign.CompoundArith() = %v, %v; want Add, true", op, ok)
	}
	if _, ok := OpAssign.CompoundArith(); ok {
		t.Fatal("plain Assign should not have a CompoundArith mapping")
	}
}

func TestNodeIdentifiers(t *testing.T) {
	n := NewBinary(OpAdd, NewVariable("x"), NewFunctionCall("f", NewVariable("y")))
	all := n.Identifiers(0)
	// Visit order is pre-order: the Call node's own name is recorded
	// before its argument sub-tree is walked, so "f" precedes "y".
	if len(all) != 3 || all[0] != "x" || all[1] != "f" || all[2] != "y" {
		t.Fatalf("Identifiers(0) = %v", all)
	}
	vars := n.Identifiers(1)
	if len(vars) != 2 || vars[0] != "x" || vars[1] != "y" {
		t.Fatalf("Identifiers(1) = %v", vars)
	}
	funcs := n.Identifiers(2)
	if len(funcs) != 1 || funcs[0] != "f" {
		t.Fatalf("Identifiers(2) = %v", funcs)
	}
}
