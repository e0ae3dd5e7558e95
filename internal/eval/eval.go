// Package eval implements constant-folding evaluation, algebraic
// simplification, and pretty-printing of expression trees.
//
// Nothing in this package fails: an expression that cannot be reduced
// to a number (a variable reference, a division by a zero literal)
// simply stays symbolic.
package eval

import (
	"math"

	"algexpr/internal/ast"
)

// Evaluate attempts to fold the whole tree to a single numeric value.
// The second return value is false when any part of the tree is still
// symbolic. Division by a zero right-hand operand does not fold and
// never produces NaN or Inf.
func Evaluate(e ast.Expr) (float64, bool) {
	switch n := e.(type) {
	case *ast.Number:
		return n.Value, true

	case *ast.Variable:
		return 0, false

	case *ast.Binary:
		left, lok := Evaluate(n.Left)
		if !lok {
			return 0, false
		}
		right, rok := Evaluate(n.Right)
		if !rok {
			return 0, false
		}
		return foldBinary(n.Op, left, right)

	case *ast.Unary:
		v, ok := Evaluate(n.Operand)
		if !ok {
			return 0, false
		}
		return -v, true

	case *ast.Power:
		base, ok := Evaluate(n.Base)
		if !ok {
			return 0, false
		}
		v := math.Pow(base, n.Exponent)
		// 0^-2 or a negative base with a fractional exponent have no
		// finite value; stay symbolic rather than propagating Inf/NaN.
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false
		}
		return v, true

	default:
		return 0, false
	}
}

// foldBinary applies a binary operator to two folded operands.
func foldBinary(op ast.Op, left, right float64) (float64, bool) {
	switch op {
	case ast.Add:
		return left + right, true
	case ast.Sub:
		return left - right, true
	case ast.Mul:
		return left * right, true
	case ast.Div:
		if right == 0 {
			return 0, false
		}
		return left / right, true
	default:
		return 0, false
	}
}
