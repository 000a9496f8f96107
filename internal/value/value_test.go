package value

import (
	"testing"

	"github.com/ISibboI/evalexpr/internal/evalerr"
)

func TestAsNumberCoercion(t *testing.T) {
	if f, err := Int(3).AsNumber(); err != nil || f != 3 {
		t.Fatalf("Int(3).AsNumber() = %v, %v; want 3, nil", f, err)
	}
	if f, err := Float(2.5).AsNumber(); err != nil || f != 2.5 {
		t.Fatalf("Float(2.5).AsNumber() = %v, %v; want 2.5, nil", f, err)
	}
	if _, err := String("x").AsNumber(); err == nil {
		t.Fatal("String.AsNumber() should fail")
	}
}

func TestEqualNoCrossKind(t *testing.T) {
	if Int(1).Equal(Float(1)) {
		t.Fatal("Int(1) should not equal Float(1)")
	}
	if !Int(1).Equal(Int(1)) {
		t.Fatal("Int(1) should equal Int(1)")
	}
	if !Empty.Equal(Empty) {
		t.Fatal("Empty should equal Empty")
	}
}

func TestTupleEqualRecursive(t *testing.T) {
	a := Tuple(Int(1), String("x"))
	b := Tuple(Int(1), String("x"))
	c := Tuple(Int(1), String("y"))
	if !a.Equal(b) {
		t.Fatal("identical tuples should be equal")
	}
	if a.Equal(c) {
		t.Fatal("differing tuples should not be equal")
	}
}

func TestTupleCopiesOnConstructAndAccess(t *testing.T) {
	elems := []Value{Int(1), Int(2)}
	tup := Tuple(elems...)
	elems[0] = Int(99)

	got, err := tup.AsTuple()
	if err != nil {
		t.Fatal(err)
	}
	if i, _ := got[0].AsInt(); i != 1 {
		t.Fatalf("tuple should have been copied at construction, got %v", i)
	}

	got[1] = Int(1000)
	got2, _ := tup.AsTuple()
	if i, _ := got2[1].AsInt(); i != 2 {
		t.Fatalf("AsTuple should return a copy, got %v", i)
	}
}

func TestAsIntWrongKindError(t *testing.T) {
	_, err := String("x").AsInt()
	if err == nil {
		t.Fatal("expected error")
	}
	ee, ok := err.(*evalerr.Error)
	if !ok {
		t.Fatalf("expected *evalerr.Error, got %T", err)
	}
	if ee.Kind != evalerr.ExpectedInt {
		t.Fatalf("expected ExpectedInt, got %v", ee.Kind)
	}
}

func TestStringRendering(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{String("hi"), "hi"},
		{Int(42), "42"},
		{Float(1.5), "1.5"},
		{Boolean(true), "true"},
		{Empty, "()"},
		{Tuple(Int(1), Int(2)), "(1, 2)"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("%#v.String() = %q, want %q", c.v, got, c.want)
		}
	}
}
