// Package algexpr is an algebraic expression engine: a lexer, a
// recursive-descent parser, a constant-folding evaluator/simplifier,
// and a static analyzer that detects simplification opportunities
// (common factors, like terms, reducible fractions) with exact source
// spans for editor highlighting.
//
// Every function here is pure and allocation-only: no state persists
// across calls, so concurrent callers need no locking. Tokenization
// never fails; parsing reports a *ParseError; evaluation, simplification,
// and analysis degrade gracefully instead of failing.
package algexpr

import (
	"fmt"

	"algexpr/internal/analyze"
	"algexpr/internal/ast"
	"algexpr/internal/eval"
	"algexpr/internal/lexer"
	"algexpr/internal/parser"
	"algexpr/internal/span"
	"algexpr/internal/token"
)

// Aliases for the boundary types, so callers can name everything the
// API returns without reaching into internal packages.
type (
	Span  = span.Span
	Token = token.Token
	Expr  = ast.Expr

	Number   = ast.Number
	Variable = ast.Variable
	Binary   = ast.Binary
	Unary    = ast.Unary
	Power    = ast.Power

	Opportunity       = analyze.Opportunity
	CommonFactor      = analyze.CommonFactor
	LikeTerms         = analyze.LikeTerms
	ReducibleFraction = analyze.ReducibleFraction
)

// ParseError describes why an expression string could not be parsed.
// Pos is the character offset of the offending token.
type ParseError struct {
	Code    string
	Message string
	Pos     int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

// Tokenize converts an expression string into its token sequence. It
// never fails; unrecognized characters are skipped, and the result
// always ends with an EOF token.
func Tokenize(text string) []Token {
	return lexer.New(text).Tokenize()
}

// Parse parses an expression string into an AST. The error, when
// non-nil, is a *ParseError.
func Parse(text string) (Expr, error) {
	expr, diags := parser.ParseText(text)
	if len(diags) > 0 {
		d := diags[0]
		return nil, &ParseError{Code: d.Code, Message: d.Message, Pos: d.Span.Start}
	}
	return expr, nil
}

// TryParse parses an expression string, returning nil on any failure.
// Used where best-effort parsing is wanted, such as live analysis while
// the user is still typing.
func TryParse(text string) Expr {
	expr, diags := parser.ParseText(text)
	if len(diags) > 0 {
		return nil
	}
	return expr
}

// Evaluate folds a tree to a numeric value. The second return value is
// false when the tree is still symbolic (contains a variable or a
// division by a zero literal).
func Evaluate(e Expr) (float64, bool) {
	return eval.Evaluate(e)
}

// Simplify returns a simplified copy of the tree; the input is never
// mutated.
func Simplify(e Expr) Expr {
	return eval.Simplify(e)
}

// AstToString pretty-prints a tree with minimal parenthesization.
func AstToString(e Expr) string {
	return eval.AstToString(e)
}

// AnalyzeExpression reports like-term and reducible-fraction
// opportunities within a single expression.
func AnalyzeExpression(e Expr) []Opportunity {
	return analyze.Expression(e)
}

// AnalyzeFraction reports common-factor opportunities between the
// numerator and denominator of a displayed fraction, plus the per-side
// expression opportunities. Spans in the result index into whichever
// side's source string the tree was parsed from.
func AnalyzeFraction(numerator, denominator Expr) []Opportunity {
	return analyze.Fraction(numerator, denominator)
}

// EvaluateString parses and folds an expression string in one step. The
// second return value is false when the string does not parse or the
// tree does not fold.
func EvaluateString(text string) (float64, bool) {
	expr := TryParse(text)
	if expr == nil {
		return 0, false
	}
	return eval.Evaluate(expr)
}

// SimplifyString parses, simplifies, and pretty-prints an expression
// string. Unparsable input is echoed back unchanged so callers can
// always display the result.
func SimplifyString(text string) string {
	expr := TryParse(text)
	if expr == nil {
		return text
	}
	return eval.AstToString(eval.Simplify(expr))
}
