// Package token defines the token types produced by the lexer.
package token

import (
	"fmt"

	"algexpr/internal/span"
)

// Kind represents the type of a token.
type Kind int

const (
	// Special tokens
	EOF Kind = iota

	// Literals
	NUMBER   // numeric literals: 3, 3.14
	VARIABLE // variable names: x, y2, area

	// Operators
	PLUS     // +
	MINUS    // -
	MULTIPLY // * (also the synthetic implicit-multiplication token)
	DIVIDE   // /
	POWER    // ^

	// Delimiters
	LPAREN // (
	RPAREN // )
)

var kindNames = map[Kind]string{
	EOF:      "EOF",
	NUMBER:   "NUMBER",
	VARIABLE: "VARIABLE",
	PLUS:     "+",
	MINUS:    "-",
	MULTIPLY: "*",
	DIVIDE:   "/",
	POWER:    "^",
	LPAREN:   "(",
	RPAREN:   ")",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsOperator returns true if the kind is an arithmetic operator.
func (k Kind) IsOperator() bool {
	return k >= PLUS && k <= POWER
}

// Token represents a lexical token with its kind, text, and source span.
// Value carries the parsed numeric value for NUMBER tokens and is zero
// otherwise.
type Token struct {
	Kind   Kind      `json:"kind"`
	Lexeme string    `json:"lexeme"`
	Value  float64   `json:"value,omitempty"`
	Span   span.Span `json:"span"`
}

// Synthetic reports whether the token was injected by the lexer rather
// than read from the source. Implicit multiplication between a number
// and an adjacent variable is the only case; such tokens have a
// zero-width span and must be filtered by anything rendering tokens
// back to the user.
func (t Token) Synthetic() bool {
	return t.Kind == MULTIPLY && t.Span.Empty()
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span)
}
