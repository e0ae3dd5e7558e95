// Package ast defines the abstract syntax tree for algebraic expressions.
//
// The node set is a closed union: Number, Variable, Binary, Unary, and
// Power. Every consumer (evaluator, printer, analyzer) dispatches with a
// type switch over exactly these five variants; adding a variant means
// revisiting each switch.
package ast

import (
	"algexpr/internal/span"
	"algexpr/internal/token"
)

// ============================================================
// Node interface
// ============================================================

// Expr is the interface implemented by all expression nodes.
//
// Span returns nil for nodes synthesized during simplification that
// have no source location; every node built by the parser carries the
// span of the substring it was derived from.
type Expr interface {
	exprNode()
	Span() *span.Span
}

// ExprBase provides the common optional span for all nodes.
type ExprBase struct {
	Sp *span.Span
}

func (b ExprBase) exprNode()        {}
func (b ExprBase) Span() *span.Span { return b.Sp }

// At returns an ExprBase carrying the given span.
func At(s span.Span) ExprBase {
	return ExprBase{Sp: &s}
}

// ============================================================
// Node variants
// ============================================================

// Number represents a numeric literal.
type Number struct {
	ExprBase
	Value float64
}

// Variable represents a variable reference. Coefficient is 1 for a
// plain variable; a pre-folded form like "3x" carries 3 so the printer
// can render coefficient and name as one unit. The parser itself always
// produces Binary(*, Number, Variable) for "3x".
type Variable struct {
	ExprBase
	Name        string
	Coefficient float64
}

// Op is a binary operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
)

var opNames = map[Op]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "?"
}

// OpFromToken maps an operator token kind to its Op.
func OpFromToken(kind token.Kind) (Op, bool) {
	switch kind {
	case token.PLUS:
		return Add, true
	case token.MINUS:
		return Sub, true
	case token.MULTIPLY:
		return Mul, true
	case token.DIVIDE:
		return Div, true
	default:
		return Add, false
	}
}

// Binary represents a binary operation: a + b, a / b.
type Binary struct {
	ExprBase
	Op    Op
	Left  Expr
	Right Expr
}

// Unary represents negation: -x.
type Unary struct {
	ExprBase
	Operand Expr
}

// Power represents base^exponent. The grammar only accepts a literal
// (optionally negated) number after '^', so the exponent is a plain
// float, not a subtree.
type Power struct {
	ExprBase
	Base     Expr
	Exponent float64
}

// ============================================================
// Predicates
// ============================================================

// NumberValue returns the value of e if it is a Number literal.
func NumberValue(e Expr) (float64, bool) {
	if n, ok := e.(*Number); ok {
		return n.Value, true
	}
	return 0, false
}

// IsZero reports whether e is the literal 0.
func IsZero(e Expr) bool {
	v, ok := NumberValue(e)
	return ok && v == 0
}

// IsOne reports whether e is the literal 1.
func IsOne(e Expr) bool {
	v, ok := NumberValue(e)
	return ok && v == 1
}

// Equal reports structural equality of two trees, ignoring spans.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name && x.Coefficient == y.Coefficient
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Unary:
		y, ok := b.(*Unary)
		return ok && Equal(x.Operand, y.Operand)
	case *Power:
		y, ok := b.(*Power)
		return ok && x.Exponent == y.Exponent && Equal(x.Base, y.Base)
	default:
		return a == nil && b == nil
	}
}
