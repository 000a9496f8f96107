package builtins

import (
	"testing"

	"github.com/ISibboI/evalexpr/internal/evalerr"
	"github.com/ISibboI/evalexpr/internal/value"
)

func TestMinMax(t *testing.T) {
	got, err := Min(value.Tuple(value.Int(3), value.Int(5)))
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := got.AsNumber(); f != 3 {
		t.Fatalf("Min(3,5) = %v, want 3", f)
	}

	got, err = Max(value.Tuple(value.Int(3), value.Int(5)))
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := got.AsNumber(); f != 5 {
		t.Fatalf("Max(3,5) = %v, want 5", f)
	}
}

func TestMinMaxPreservesIntKind(t *testing.T) {
	got, err := Min(value.Tuple(value.Int(3), value.Int(5)))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind() != value.TypeInt {
		t.Fatalf("Min(Int,Int) returned %v, want Int", got.Kind())
	}
	if !got.Equal(value.Int(3)) {
		t.Fatalf("Min(3,5) = %v, want Int(3)", got)
	}

	got, err = Max(value.Tuple(value.Int(3), value.Int(5)))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind() != value.TypeInt {
		t.Fatalf("Max(Int,Int) returned %v, want Int", got.Kind())
	}
	if !got.Equal(value.Int(5)) {
		t.Fatalf("Max(3,5) = %v, want Int(5)", got)
	}
}

func TestMinMaxPromotesToFloatWhenEitherOperandIsFloat(t *testing.T) {
	got, err := Min(value.Tuple(value.Int(3), value.Float(5)))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind() != value.TypeFloat {
		t.Fatalf("Min(Int,Float) returned %v, want Float", got.Kind())
	}
	if f, _ := got.AsFloat(); f != 3 {
		t.Fatalf("Min(3,5.0) = %v, want 3", f)
	}
}

func TestAbsPreservesKind(t *testing.T) {
	got, err := Abs(value.Int(-7))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind() != value.TypeInt {
		t.Fatalf("Abs(Int) returned %v, want Int", got.Kind())
	}
	if i, _ := got.AsInt(); i != 7 {
		t.Fatalf("Abs(-7) = %v, want 7", i)
	}

	gotF, err := Abs(value.Float(-2.5))
	if err != nil {
		t.Fatal(err)
	}
	if gotF.Kind() != value.TypeFloat {
		t.Fatalf("Abs(Float) returned %v, want Float", gotF.Kind())
	}
}

func TestAbsRejectsNonNumber(t *testing.T) {
	_, err := Abs(value.String("x"))
	if err == nil {
		t.Fatal("expected error for Abs of a String")
	}
}

func TestFloorCeilRound(t *testing.T) {
	if got, _ := Floor(value.Float(1.7)); mustFloat(t, got) != 1 {
		t.Fatal("Floor(1.7) should be 1")
	}
	if got, _ := Ceil(value.Float(1.2)); mustFloat(t, got) != 2 {
		t.Fatal("Ceil(1.2) should be 2")
	}
	if got, _ := Round(value.Float(1.5)); mustFloat(t, got) != 2 {
		t.Fatal("Round(1.5) should be 2")
	}
}

func TestSqrtAndPow(t *testing.T) {
	got, err := Sqrt(value.Float(9))
	if err != nil {
		t.Fatal(err)
	}
	if mustFloat(t, got) != 3 {
		t.Fatal("Sqrt(9) should be 3")
	}

	got, err = Pow(value.Tuple(value.Int(2), value.Int(10)))
	if err != nil {
		t.Fatal(err)
	}
	if mustFloat(t, got) != 1024 {
		t.Fatal("Pow(2,10) should be 1024")
	}
}

func mustFloat(t *testing.T, v value.Value) float64 {
	t.Helper()
	f, err := v.AsFloat()
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestStringBuiltins(t *testing.T) {
	if got, _ := StrLen(value.String("hello")); mustInt(t, got) != 5 {
		t.Fatal("StrLen(hello) should be 5")
	}
	if got, _ := ToUppercase(value.String("hi")); mustStr(t, got) != "HI" {
		t.Fatal("ToUppercase(hi) should be HI")
	}
	if got, _ := ToLowercase(value.String("HI")); mustStr(t, got) != "hi" {
		t.Fatal("ToLowercase(HI) should be hi")
	}
	if got, _ := Trim(value.String("  hi  ")); mustStr(t, got) != "hi" {
		t.Fatal("Trim('  hi  ') should be hi")
	}
	if got, _ := Contains(value.Tuple(value.String("hello"), value.String("ell"))); !mustBool(t, got) {
		t.Fatal("Contains(hello, ell) should be true")
	}
}

func TestRegexBuiltins(t *testing.T) {
	got, err := RegexMatches(value.Tuple(value.String("foo123"), value.String(`\d+`)))
	if err != nil {
		t.Fatal(err)
	}
	if !mustBool(t, got) {
		t.Fatal("RegexMatches(foo123, \\d+) should be true")
	}

	got, err = RegexReplace(value.Tuple(value.String("foo123"), value.String(`\d+`), value.String("X")))
	if err != nil {
		t.Fatal(err)
	}
	if mustStr(t, got) != "fooX" {
		t.Fatalf("RegexReplace result = %q, want fooX", mustStr(t, got))
	}
}

func TestRegexInvalidPattern(t *testing.T) {
	_, err := RegexMatches(value.Tuple(value.String("x"), value.String("(")))
	if err == nil {
		t.Fatal("expected error for invalid regex pattern")
	}
}

func TestRegexCacheReusesCompiledPattern(t *testing.T) {
	pattern := value.String(`^a+$`)
	if _, err := RegexMatches(value.Tuple(value.String("aaa"), pattern)); err != nil {
		t.Fatal(err)
	}
	// Second call with the same pattern should hit the cache and still
	// produce a correct result.
	got, err := RegexMatches(value.Tuple(value.String("bbb"), pattern))
	if err != nil {
		t.Fatal(err)
	}
	if mustBool(t, got) {
		t.Fatal("RegexMatches(bbb, ^a+$) should be false")
	}
}

func mustInt(t *testing.T, v value.Value) int64 {
	t.Helper()
	i, err := v.AsInt()
	if err != nil {
		t.Fatal(err)
	}
	return i
}

func mustStr(t *testing.T, v value.Value) string {
	t.Helper()
	s, err := v.AsString()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustBool(t *testing.T, v value.Value) bool {
	t.Helper()
	b, err := v.AsBoolean()
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestBitwiseBuiltins(t *testing.T) {
	if got, _ := BitAnd(value.Tuple(value.Int(6), value.Int(3))); mustInt(t, got) != 2 {
		t.Fatal("6 & 3 should be 2")
	}
	if got, _ := BitOr(value.Tuple(value.Int(6), value.Int(1))); mustInt(t, got) != 7 {
		t.Fatal("6 | 1 should be 7")
	}
	if got, _ := BitXor(value.Tuple(value.Int(6), value.Int(3))); mustInt(t, got) != 5 {
		t.Fatal("6 ^ 3 should be 5")
	}
	if got, _ := BitNot(value.Int(0)); mustInt(t, got) != -1 {
		t.Fatal("^0 should be -1")
	}
	if got, _ := Shl(value.Tuple(value.Int(1), value.Int(4))); mustInt(t, got) != 16 {
		t.Fatal("1 << 4 should be 16")
	}
	if got, _ := Shr(value.Tuple(value.Int(16), value.Int(4))); mustInt(t, got) != 1 {
		t.Fatal("16 >> 4 should be 1")
	}
}

func TestIfBuiltin(t *testing.T) {
	got, err := If(value.Tuple(value.Boolean(true), value.Int(1), value.Int(2)))
	if err != nil {
		t.Fatal(err)
	}
	if mustInt(t, got) != 1 {
		t.Fatal("If(true,1,2) should be 1")
	}

	got, err = If(value.Tuple(value.Boolean(false), value.Int(1), value.Int(2)))
	if err != nil {
		t.Fatal(err)
	}
	if mustInt(t, got) != 2 {
		t.Fatal("If(false,1,2) should be 2")
	}
}

func TestTypeOfBuiltin(t *testing.T) {
	got, err := TypeOf(value.String("x"))
	if err != nil {
		t.Fatal(err)
	}
	if mustStr(t, got) != "String" {
		t.Fatalf("TypeOf(String) = %q, want String", mustStr(t, got))
	}
}

func TestRandomBuiltin(t *testing.T) {
	got, err := Random(value.Empty)
	if err != nil {
		t.Fatal(err)
	}
	f, err := got.AsFloat()
	if err != nil {
		t.Fatal(err)
	}
	if f < 0 || f >= 1 {
		t.Fatalf("Random() = %v, want [0,1)", f)
	}
}

func TestRandomRejectsArguments(t *testing.T) {
	_, err := Random(value.Int(1))
	if err == nil {
		t.Fatal("expected WrongFunctionArgumentAmount for Random(1)")
	}
	ee, ok := err.(*evalerr.Error)
	if !ok || ee.Kind != evalerr.WrongFunctionArgumentAmount {
		t.Fatalf("got %v, want WrongFunctionArgumentAmount", err)
	}
}

func TestUnpackArityZeroRejectsNonEmpty(t *testing.T) {
	_, err := unpack(value.Int(1), 0)
	if err == nil {
		t.Fatal("expected error for a non-Empty argument against arity 0")
	}
}

func TestUnpackArityOneRejectsTuple(t *testing.T) {
	_, err := unpack(value.Tuple(value.Int(1), value.Int(2)), 1)
	if err == nil {
		t.Fatal("expected error: arity-1 builtin called with a 2-tuple")
	}
}

func TestUnpackArityMismatch(t *testing.T) {
	_, err := unpack(value.Tuple(value.Int(1)), 2)
	if err == nil {
		t.Fatal("expected error: arity-2 builtin called with a 1-tuple")
	}
}
