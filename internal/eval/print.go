package eval

import (
	"math"
	"strconv"
	"strings"

	"algexpr/internal/ast"
)

// Operator display precedence, used for minimal parenthesization.
const (
	precAdditive = 1 // + -
	precMultiply = 2 // * /
	precAtom     = 3 // literals, variables, unary, power
)

// AstToString pretty-prints a tree with minimal parenthesization.
// Multiplication and division render with spaced Unicode glyphs
// ("a × b", "a ÷ b") rather than ASCII operators.
func AstToString(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Number:
		return FormatNumber(n.Value)

	case *ast.Variable:
		if n.Coefficient != 1 {
			return FormatNumber(n.Coefficient) + n.Name
		}
		return n.Name

	case *ast.Binary:
		left := childString(n.Left, n.Op, false)
		right := childString(n.Right, n.Op, true)
		return left + opGlyph(n.Op) + right

	case *ast.Unary:
		// Parens only around a binary operand: -(a + b) but -x, -3.
		if _, ok := n.Operand.(*ast.Binary); ok {
			return "-(" + AstToString(n.Operand) + ")"
		}
		return "-" + AstToString(n.Operand)

	case *ast.Power:
		base := AstToString(n.Base)
		switch n.Base.(type) {
		case *ast.Binary, *ast.Unary:
			base = "(" + base + ")"
		}
		return base + "^" + FormatNumber(n.Exponent)

	default:
		return ""
	}
}

// FormatNumber renders a value the way the equation display expects:
// integral values without decimals, everything else with two decimal
// places and trailing zeros stripped.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// childString renders a child of a binary node, parenthesizing when the
// child binds looser than the parent. The right child of '-' or '/' is
// also parenthesized at equal precedence, so (a-b)-c round-trips as
// "a - b - c" while a-(b-c) keeps its parens.
func childString(child ast.Expr, parentOp ast.Op, isRight bool) string {
	s := AstToString(child)

	childPrec := precAtom
	if b, ok := child.(*ast.Binary); ok {
		childPrec = opPrec(b.Op)
	}
	parentPrec := opPrec(parentOp)

	needsParens := childPrec < parentPrec
	if !needsParens && isRight && childPrec == parentPrec {
		needsParens = parentOp == ast.Sub || parentOp == ast.Div
	}
	if needsParens {
		return "(" + s + ")"
	}
	return s
}

func opPrec(op ast.Op) int {
	switch op {
	case ast.Add, ast.Sub:
		return precAdditive
	default:
		return precMultiply
	}
}

func opGlyph(op ast.Op) string {
	switch op {
	case ast.Add:
		return " + "
	case ast.Sub:
		return " - "
	case ast.Mul:
		return " × "
	case ast.Div:
		return " ÷ "
	default:
		return " ? "
	}
}
