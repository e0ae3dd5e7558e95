package eval

import "algexpr/internal/ast"

// Simplify returns a simplified copy of the tree. The input is never
// mutated. If the whole tree folds to a number the result is a single
// Number node; otherwise children are simplified structurally and local
// identities (x+0, x*1, x*0, x/1 and their mirrored forms) are applied
// where the relevant operand has folded to the exact literal.
//
// Simplify is idempotent: applying it to its own output returns a
// structurally identical tree.
func Simplify(e ast.Expr) ast.Expr {
	if e == nil {
		return nil
	}
	if v, ok := Evaluate(e); ok {
		return &ast.Number{ExprBase: inherit(e), Value: v}
	}

	switch n := e.(type) {
	case *ast.Number, *ast.Variable:
		return e

	case *ast.Binary:
		return simplifyBinary(n)

	case *ast.Unary:
		operand := Simplify(n.Operand)
		if v, ok := ast.NumberValue(operand); ok {
			return &ast.Number{ExprBase: inherit(n), Value: -v}
		}
		return &ast.Unary{ExprBase: n.ExprBase, Operand: operand}

	case *ast.Power:
		base := Simplify(n.Base)
		if v, ok := ast.NumberValue(base); ok {
			folded, fok := Evaluate(&ast.Power{Base: &ast.Number{Value: v}, Exponent: n.Exponent})
			if fok {
				return &ast.Number{ExprBase: inherit(n), Value: folded}
			}
		}
		return &ast.Power{ExprBase: n.ExprBase, Base: base, Exponent: n.Exponent}

	default:
		return e
	}
}

func simplifyBinary(n *ast.Binary) ast.Expr {
	left := Simplify(n.Left)
	right := Simplify(n.Right)

	// Constant fold when both sides reduced to literals. Division by a
	// zero literal stays symbolic.
	if lv, lok := ast.NumberValue(left); lok {
		if rv, rok := ast.NumberValue(right); rok {
			if v, ok := foldBinary(n.Op, lv, rv); ok {
				return &ast.Number{ExprBase: inherit(n), Value: v}
			}
		}
	}

	// Identity rewrites; applied only against exact literal operands.
	switch n.Op {
	case ast.Add:
		if ast.IsZero(left) {
			return right
		}
		if ast.IsZero(right) {
			return left
		}
	case ast.Sub:
		if ast.IsZero(right) {
			return left
		}
	case ast.Mul:
		if ast.IsZero(left) || ast.IsZero(right) {
			return &ast.Number{ExprBase: inherit(n), Value: 0}
		}
		if ast.IsOne(left) {
			return right
		}
		if ast.IsOne(right) {
			return left
		}
	case ast.Div:
		if ast.IsOne(right) {
			return left
		}
	}

	return &ast.Binary{ExprBase: n.ExprBase, Op: n.Op, Left: left, Right: right}
}

// inherit carries the source span of the node being replaced onto its
// replacement, so downstream highlighting still maps folded literals
// back to the substring they came from.
func inherit(e ast.Expr) ast.ExprBase {
	if sp := e.Span(); sp != nil {
		return ast.At(*sp)
	}
	return ast.ExprBase{}
}
