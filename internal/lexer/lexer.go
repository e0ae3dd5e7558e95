// Package lexer implements tokenization of algebraic expression strings.
package lexer

import (
	"strconv"
	"unicode"

	"algexpr/internal/span"
	"algexpr/internal/token"
)

// Lexer tokenizes an expression string into a sequence of tokens.
// Tokenization is total: unrecognized characters are skipped without
// producing a token, so the lexer never reports errors.
type Lexer struct {
	src []rune
	pos int // current read position in src
}

// New creates a new Lexer for the given expression text. Alternate
// multiplication and division glyphs are normalized up front; each
// replacement is rune-for-rune, so spans keep pointing at the original
// character offsets.
func New(source string) *Lexer {
	src := []rune(source)
	for i, r := range src {
		switch r {
		case '×', '·':
			src[i] = '*'
		case '÷':
			src[i] = '/'
		}
	}
	return &Lexer{src: src}
}

// Tokenize scans the entire source and returns all tokens. The result
// always ends with exactly one EOF token carrying an empty span at
// end-of-input.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok, ok := l.nextToken()
		if !ok {
			continue // unrecognized character, skip silently
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
		// Implicit multiplication: a number immediately followed by a
		// letter reads as a product (e.g. "3x"). The injected MULTIPLY
		// token has a zero-width span at the boundary.
		if tok.Kind == token.NUMBER && l.pos < len(l.src) && unicode.IsLetter(l.src[l.pos]) {
			tokens = append(tokens, token.Token{
				Kind:   token.MULTIPLY,
				Lexeme: "",
				Span:   span.New(l.pos, l.pos),
			})
		}
	}
	return tokens
}

// ---- internal helpers ----

// peek returns the current character without advancing, or 0 if at end.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes the current character and returns it.
func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	return r
}

// skipWhitespace skips whitespace between tokens.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.src[l.pos]) {
		l.pos++
	}
}

// ---- token reading ----

// nextToken reads the next token. The second return value is false when
// the current character is not part of the token alphabet; the caller
// skips it and keeps scanning.
func (l *Lexer) nextToken() (token.Token, bool) {
	l.skipWhitespace()

	if l.pos >= len(l.src) {
		return token.Token{Kind: token.EOF, Span: span.New(l.pos, l.pos)}, true
	}

	start := l.pos
	ch := l.peek()

	if isDigit(ch) {
		return l.readNumber(start), true
	}

	if unicode.IsLetter(ch) {
		return l.readVariable(start), true
	}

	l.advance()
	kind, ok := operatorKind(ch)
	if !ok {
		return token.Token{}, false
	}
	return token.Token{Kind: kind, Lexeme: string(ch), Span: span.New(start, l.pos)}, true
}

// readNumber reads a numeric literal: digits with an optional single
// fractional part.
func (l *Lexer) readNumber(start int) token.Token {
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	if l.pos+1 < len(l.src) && l.peek() == '.' && isDigit(l.src[l.pos+1]) {
		l.advance() // skip '.'
		for l.pos < len(l.src) && isDigit(l.peek()) {
			l.advance()
		}
	}

	lexeme := string(l.src[start:l.pos])
	value, _ := strconv.ParseFloat(lexeme, 64)
	return token.Token{
		Kind:   token.NUMBER,
		Lexeme: lexeme,
		Value:  value,
		Span:   span.New(start, l.pos),
	}
}

// readVariable reads a variable name: one or more letters followed by
// optional trailing digits, so subscripted names like "x1" are a single
// token. The whole match is the variable's identity; multi-letter names
// are one variable, not a product of letters.
func (l *Lexer) readVariable(start int) token.Token {
	for l.pos < len(l.src) && unicode.IsLetter(l.peek()) {
		l.advance()
	}
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	return token.Token{
		Kind:   token.VARIABLE,
		Lexeme: string(l.src[start:l.pos]),
		Span:   span.New(start, l.pos),
	}
}

// operatorKind maps a single operator or paren character to its kind.
func operatorKind(ch rune) (token.Kind, bool) {
	switch ch {
	case '+':
		return token.PLUS, true
	case '-':
		return token.MINUS, true
	case '*':
		return token.MULTIPLY, true
	case '/':
		return token.DIVIDE, true
	case '^':
		return token.POWER, true
	case '(':
		return token.LPAREN, true
	case ')':
		return token.RPAREN, true
	default:
		return token.EOF, false
	}
}

// ---- character classification ----

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
