package lexer

import (
	"testing"

	"algexpr/internal/token"
)

func tokenize(t *testing.T, source string) []token.Token {
	t.Helper()
	return New(source).Tokenize()
}

func checkKinds(t *testing.T, tokens []token.Token, expected []token.Kind) {
	t.Helper()
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token[%d]: expected %s, got %s (%q)", i, exp, tokens[i].Kind, tokens[i].Lexeme)
		}
	}
}

func TestTokenizeSimple(t *testing.T) {
	tokens := tokenize(t, "1 + 2 * 3")
	checkKinds(t, tokens, []token.Kind{
		token.NUMBER, token.PLUS, token.NUMBER,
		token.MULTIPLY, token.NUMBER, token.EOF,
	})
}

func TestTokenizeOperators(t *testing.T) {
	tokens := tokenize(t, "+ - * / ^ ( )")
	checkKinds(t, tokens, []token.Kind{
		token.PLUS, token.MINUS, token.MULTIPLY, token.DIVIDE,
		token.POWER, token.LPAREN, token.RPAREN, token.EOF,
	})
}

func TestTokenizeNumbers(t *testing.T) {
	tokens := tokenize(t, "123 3.14 0")
	checkKinds(t, tokens, []token.Kind{
		token.NUMBER, token.NUMBER, token.NUMBER, token.EOF,
	})

	if tokens[0].Value != 123 {
		t.Errorf("token[0]: expected value 123, got %v", tokens[0].Value)
	}
	if tokens[1].Value != 3.14 {
		t.Errorf("token[1]: expected value 3.14, got %v", tokens[1].Value)
	}
	if tokens[1].Lexeme != "3.14" {
		t.Errorf("token[1]: expected lexeme '3.14', got %q", tokens[1].Lexeme)
	}
}

func TestTokenizeVariables(t *testing.T) {
	cases := []struct {
		source string
		lexeme string
	}{
		{"x", "x"},
		{"x1", "x1"},
		{"xy", "xy"},
		{"sin", "sin"}, // whole match is one variable, not a function
	}
	for _, tc := range cases {
		tokens := tokenize(t, tc.source)
		checkKinds(t, tokens, []token.Kind{token.VARIABLE, token.EOF})
		if tokens[0].Lexeme != tc.lexeme {
			t.Errorf("%q: expected lexeme %q, got %q", tc.source, tc.lexeme, tokens[0].Lexeme)
		}
	}
}

func TestTokenizeImplicitMultiplication(t *testing.T) {
	tokens := tokenize(t, "3x")
	checkKinds(t, tokens, []token.Kind{
		token.NUMBER, token.MULTIPLY, token.VARIABLE, token.EOF,
	})

	mul := tokens[1]
	if !mul.Synthetic() {
		t.Error("implicit multiply should be synthetic")
	}
	if mul.Span.Start != 1 || mul.Span.End != 1 {
		t.Errorf("implicit multiply span: expected [1,1), got %s", mul.Span)
	}
	if tokens[2].Span.Start != 1 || tokens[2].Span.End != 2 {
		t.Errorf("variable span: expected [1,2), got %s", tokens[2].Span)
	}
}

func TestTokenizeNoImplicitMultiplyAcrossSpace(t *testing.T) {
	tokens := tokenize(t, "3 x")
	checkKinds(t, tokens, []token.Kind{
		token.NUMBER, token.VARIABLE, token.EOF,
	})
}

func TestTokenizeGlyphNormalization(t *testing.T) {
	cases := []struct {
		source string
		kind   token.Kind
	}{
		{"2 × 3", token.MULTIPLY},
		{"2 · 3", token.MULTIPLY},
		{"2 ÷ 3", token.DIVIDE},
	}
	for _, tc := range cases {
		tokens := tokenize(t, tc.source)
		checkKinds(t, tokens, []token.Kind{token.NUMBER, tc.kind, token.NUMBER, token.EOF})
		// Glyphs count as one character, so the second number sits at
		// offset 4 regardless of the glyph's UTF-8 width.
		if tokens[2].Span.Start != 4 {
			t.Errorf("%q: expected second number at offset 4, got %d", tc.source, tokens[2].Span.Start)
		}
	}
}

func TestTokenizeSkipsUnknownCharacters(t *testing.T) {
	tokens := tokenize(t, "2 $ + # 3")
	checkKinds(t, tokens, []token.Kind{
		token.NUMBER, token.PLUS, token.NUMBER, token.EOF,
	})
}

func TestTokenizeAlwaysEndsWithEOF(t *testing.T) {
	cases := []string{"", "   ", "!!", "1 + 2", "???abc"}
	for _, source := range cases {
		tokens := tokenize(t, source)
		if len(tokens) == 0 {
			t.Fatalf("%q: no tokens", source)
		}
		eofCount := 0
		for _, tok := range tokens {
			if tok.Kind == token.EOF {
				eofCount++
			}
		}
		if eofCount != 1 {
			t.Errorf("%q: expected exactly one EOF, got %d", source, eofCount)
		}
		last := tokens[len(tokens)-1]
		if last.Kind != token.EOF {
			t.Errorf("%q: last token is %s, not EOF", source, last.Kind)
		}
		if !last.Span.Empty() {
			t.Errorf("%q: EOF span should be empty, got %s", source, last.Span)
		}
	}
}

func TestTokenizeSpans(t *testing.T) {
	tokens := tokenize(t, "10 + x")

	expected := []struct{ start, end int }{
		{0, 2}, // 10
		{3, 4}, // +
		{5, 6}, // x
		{6, 6}, // EOF
	}
	for i, exp := range expected {
		if tokens[i].Span.Start != exp.start || tokens[i].Span.End != exp.end {
			t.Errorf("token[%d]: expected [%d,%d), got %s", i, exp.start, exp.end, tokens[i].Span)
		}
	}
}

func TestTokenizeDecimalEdgeCases(t *testing.T) {
	// A trailing dot is not part of the number; the dot itself is not a
	// token and gets skipped.
	tokens := tokenize(t, "3.")
	checkKinds(t, tokens, []token.Kind{token.NUMBER, token.EOF})
	if tokens[0].Value != 3 {
		t.Errorf("expected value 3, got %v", tokens[0].Value)
	}
}
