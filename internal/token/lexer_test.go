package token

import "testing"

func typesOf(t *testing.T, toks []Token) []Type {
	t.Helper()
	out := make([]Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func assertTypes(t *testing.T, input string, want ...Type) {
	t.Helper()
	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", input, err)
	}
	got := typesOf(t, toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want %v", input, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q)[%d] = %v, want %v (full: %v)", input, i, got[i], want[i], got)
		}
	}
}

func TestTokenizeArithmetic(t *testing.T) {
	assertTypes(t, "1 + 2 * 3", Int, Plus, Int, Star, Int)
}

func TestTokenizeTwoCharOperators(t *testing.T) {
	assertTypes(t, "a += 1", Identifier, PlusAssign, Int)
	assertTypes(t, "a <= b >= c", Identifier, Leq, Identifier, Geq, Identifier)
	assertTypes(t, "a == b != c", Identifier, Eq, Identifier, Neq, Identifier)
	assertTypes(t, "a && b || c", Identifier, And, Identifier, Or, Identifier)
	assertTypes(t, "a &&= b ||= c", Identifier, AndAssign, Identifier, OrAssign, Identifier)
}

func TestTokenizeString(t *testing.T) {
	toks, err := Tokenize(`"hello \"world\""`)
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Type != String {
		t.Fatalf("got %v", toks)
	}
	if toks[0].Text != `hello "world"` {
		t.Fatalf("got %q", toks[0].Text)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestTokenizeFloat(t *testing.T) {
	toks, err := Tokenize("3.14 1e3 2.5e-2 .5")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{3.14, 1000, 0.025, 0.5}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != Float || toks[i].Flt != w {
			t.Errorf("token %d = %+v, want Float(%v)", i, toks[i], w)
		}
	}
}

func TestTokenizeIntNotConfusedWithFloatExponentBacktrack(t *testing.T) {
	toks, err := Tokenize("1e")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 || toks[0].Type != Int || toks[0].Int != 1 || toks[1].Type != Identifier || toks[1].Text != "e" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeBooleanKeywords(t *testing.T) {
	assertTypes(t, "true false", Boolean, Boolean)
}

func TestCompoundAssignOp(t *testing.T) {
	got, ok := CompoundAssignOp(PlusAssign)
	if !ok || got != Plus {
		t.Fatalf("CompoundAssignOp(PlusAssign) = %v, %v", got, ok)
	}
	if _, ok := CompoundAssignOp(Plus); ok {
		t.Fatal("CompoundAssignOp(Plus) should not be a compound op")
	}
}

func TestPositionTracking(t *testing.T) {
	toks, err := Tokenize("1\n22")
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Pos.Line != 1 {
		t.Fatalf("first token line = %d, want 1", toks[0].Pos.Line)
	}
	if toks[1].Pos.Line != 2 {
		t.Fatalf("second token line = %d, want 2", toks[1].Pos.Line)
	}
}
