package eval

import (
	"math"
	"strings"
	"testing"

	"algexpr/internal/ast"
	"algexpr/internal/parser"
)

func parseOK(t *testing.T, source string) ast.Expr {
	t.Helper()
	expr, diags := parser.ParseText(source)
	if len(diags) > 0 {
		t.Fatalf("parse errors for %q: %v", source, diags)
	}
	return expr
}

// ---- Evaluate ----

func TestEvaluateArithmetic(t *testing.T) {
	cases := []struct {
		source string
		value  float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 6 / 2", 7},
		{"10 - 5 - 2", 3},
		{"100 / 10 / 2", 5},
		{"2^3", 8},
		{"2^-2", 0.25},
		{"--5", 5},
		{"3.5 + 1.25", 4.75},
	}
	for _, tc := range cases {
		expr := parseOK(t, tc.source)
		v, ok := Evaluate(expr)
		if !ok {
			t.Errorf("%q: expected %v, stayed symbolic", tc.source, tc.value)
			continue
		}
		if math.Abs(v-tc.value) > 1e-9 {
			t.Errorf("%q: expected %v, got %v", tc.source, tc.value, v)
		}
	}
}

func TestEvaluateDivisionByZeroStaysSymbolic(t *testing.T) {
	cases := []string{"1 / 0", "5 / (2 - 2)", "3 + 1 / 0"}
	for _, source := range cases {
		expr := parseOK(t, source)
		if v, ok := Evaluate(expr); ok {
			t.Errorf("%q: expected symbolic, folded to %v", source, v)
		}
	}
}

func TestEvaluatePowerStaysFinite(t *testing.T) {
	// 0^-2 and a negative base under a fractional exponent have no
	// finite value; both stay symbolic instead of leaking Inf or NaN
	// into printed output.
	cases := []string{"0^-2", "(0 - 2)^1.5"}
	for _, source := range cases {
		expr := parseOK(t, source)
		if v, ok := Evaluate(expr); ok {
			t.Errorf("%q: expected symbolic, folded to %v", source, v)
		}
		if got := AstToString(Simplify(expr)); strings.Contains(got, "Inf") || strings.Contains(got, "NaN") {
			t.Errorf("%q: simplified form leaked %q", source, got)
		}
	}
}

func TestEvaluateVariableStaysSymbolic(t *testing.T) {
	expr := parseOK(t, "x + 1")
	if v, ok := Evaluate(expr); ok {
		t.Errorf("expected symbolic, folded to %v", v)
	}
}

// ---- Simplify ----

func TestSimplifyFoldsConstants(t *testing.T) {
	expr := parseOK(t, "2 + 3 * 4")
	simplified := Simplify(expr)
	num, ok := simplified.(*ast.Number)
	if !ok {
		t.Fatalf("expected Number, got %T", simplified)
	}
	if num.Value != 14 {
		t.Errorf("expected 14, got %v", num.Value)
	}
}

func TestSimplifyIdentities(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"x + 0", "x"},
		{"0 + x", "x"},
		{"x - 0", "x"},
		{"x * 1", "x"},
		{"1 * x", "x"},
		{"x * 0", "0"},
		{"0 * x", "0"},
		{"x / 1", "x"},
		{"x + (2 - 2)", "x"},     // other operand folds to the literal first
		{"x * (3 - 2)", "x"},
		{"x + 1", "x + 1"},       // no speculative rewrites
		{"x / 0", "x ÷ 0"},       // division by zero literal stays put
	}
	for _, tc := range cases {
		expr := parseOK(t, tc.source)
		got := AstToString(Simplify(expr))
		if got != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.source, tc.want, got)
		}
	}
}

func TestSimplifyDoesNotMutateInput(t *testing.T) {
	expr := parseOK(t, "x + 0")
	before := AstToString(expr)
	Simplify(expr)
	if after := AstToString(expr); after != before {
		t.Errorf("input mutated: %q became %q", before, after)
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	cases := []string{
		"x + 0",
		"2 + 3 * 4",
		"x * 1 + 0 * y",
		"3x + 2x",
		"-x^2",
		"(x + 1) / 1",
		"1 / 0",
	}
	for _, source := range cases {
		once := Simplify(parseOK(t, source))
		twice := Simplify(once)
		if !ast.Equal(once, twice) {
			t.Errorf("%q: simplify not idempotent: %q vs %q",
				source, AstToString(once), AstToString(twice))
		}
	}
}

func TestSimplifyInheritsSpan(t *testing.T) {
	expr := parseOK(t, "2 + 3")
	simplified := Simplify(expr)
	sp := simplified.Span()
	if sp == nil {
		t.Fatal("folded constant lost its span")
	}
	if sp.Start != 0 || sp.End != 5 {
		t.Errorf("expected span [0,5), got %s", sp)
	}
}

// ---- AstToString ----

func TestAstToStringNumbers(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{3, "3"},
		{-2, "-2"},
		{3.14, "3.14"},
		{2.5, "2.5"},
		{2.50, "2.5"},
		{0.1, "0.1"},
		{100, "100"},
	}
	for _, tc := range cases {
		got := FormatNumber(tc.value)
		if got != tc.want {
			t.Errorf("FormatNumber(%v): expected %q, got %q", tc.value, tc.want, got)
		}
	}
}

func TestAstToStringOperators(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3", "1 + 2 × 3"},
		{"6 / 2", "6 ÷ 2"},
		{"(1 + 2) * 3", "(1 + 2) × 3"},
		{"1 + (2 + 3)", "1 + 2 + 3"},   // equal precedence on '+': no parens
		{"10 - (5 - 2)", "10 - (5 - 2)"}, // right-assoc guard keeps parens
		{"10 - 5 - 2", "10 - 5 - 2"},
		{"100 / (10 / 2)", "100 ÷ (10 ÷ 2)"},
		{"-x", "-x"},
		{"-(x + 1)", "-(x + 1)"},
		{"-x^2", "-x^2"},
		{"(x + 1)^2", "(x + 1)^2"},
		{"x^-2", "x^-2"},
		{"3x", "3 × x"},
	}
	for _, tc := range cases {
		expr := parseOK(t, tc.source)
		got := AstToString(expr)
		if got != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.source, tc.want, got)
		}
	}
}

func TestAstToStringCoefficientVariable(t *testing.T) {
	// A pre-folded coefficient renders as one unit without an operator.
	v := &ast.Variable{Name: "x", Coefficient: 3}
	if got := AstToString(v); got != "3x" {
		t.Errorf("expected \"3x\", got %q", got)
	}
}

func TestRoundTripOnFoldedConstants(t *testing.T) {
	cases := []string{
		"2 + 3 * 4",
		"10 - 6 / 2",
		"(2 + 3) * 4",
		"2^3 - 1",
		"3.5 * 2",
		"100 / 10 / 2",
	}
	for _, source := range cases {
		want, ok := Evaluate(parseOK(t, source))
		if !ok {
			t.Fatalf("%q: did not fold", source)
		}
		printed := AstToString(Simplify(parseOK(t, source)))
		got, ok := Evaluate(parseOK(t, printed))
		if !ok {
			t.Fatalf("%q: round-tripped form %q did not fold", source, printed)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%q: round trip changed value: %v vs %v", source, want, got)
		}
	}
}
