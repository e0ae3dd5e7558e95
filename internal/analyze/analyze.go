// Package analyze detects simplification opportunities in parsed
// expression trees: common factors across a fraction, like terms, and
// reducible literal fractions.
//
// The analyses are pure and total: nil inputs and malformed trees yield
// an empty opportunity list, never an error. Reported spans point into
// the original source string of whichever tree they were computed from;
// the caller tracks which string each side of a fraction came from.
package analyze

import (
	"math"

	"algexpr/internal/ast"
	"algexpr/internal/span"
)

// ============================================================
// Opportunity variants
// ============================================================

// Opportunity is a detected pattern worth surfacing to the user as a
// possible next simplification step. It is purely advisory and never
// mutates the tree.
type Opportunity interface {
	opportunityNode()
}

// CommonFactor reports a factor shared between the numerator and
// denominator of a displayed fraction. The span lists cover exactly the
// literals divisible by the factor on each side.
type CommonFactor struct {
	Factor           uint64
	NumeratorSpans   []span.Span
	DenominatorSpans []span.Span
}

// LikeTerms reports additive terms sharing a variable identity and
// exponent. Variable is empty for constant terms (exponent 0).
type LikeTerms struct {
	Variable string
	Exponent float64
	Spans    []span.Span
}

// ReducibleFraction reports a literal-over-literal division anywhere in
// the tree whose operands share a common divisor.
type ReducibleFraction struct {
	GCD             uint64
	NumeratorSpan   span.Span
	DenominatorSpan span.Span
}

func (CommonFactor) opportunityNode()      {}
func (LikeTerms) opportunityNode()         {}
func (ReducibleFraction) opportunityNode() {}

// ============================================================
// Entry points
// ============================================================

// Expression finds like-term and reducible-fraction opportunities
// within a single expression.
func Expression(e ast.Expr) []Opportunity {
	if e == nil {
		return nil
	}
	var out []Opportunity
	out = append(out, findLikeTerms(e)...)
	out = append(out, findReducibleFractions(e)...)
	return out
}

// Fraction finds common-factor opportunities between two independently
// parsed trees forming the top and bottom of a displayed fraction, then
// analyzes each side on its own.
func Fraction(numerator, denominator ast.Expr) []Opportunity {
	var out []Opportunity
	out = append(out, findCommonFactors(numerator, denominator)...)
	out = append(out, Expression(numerator)...)
	out = append(out, Expression(denominator)...)
	return out
}

// ============================================================
// Common factors
// ============================================================

// findCommonFactors runs the two detection passes over the numerator
// and denominator literal sets.
func findCommonFactors(numerator, denominator ast.Expr) []Opportunity {
	numLits := collectLiterals(numerator)
	denLits := collectLiterals(denominator)
	if len(numLits) == 0 || len(denLits) == 0 {
		return nil
	}

	var out []Opportunity

	// Pass 1: GCD across every literal on both sides. Literals not
	// divisible by the overall GCD are excluded from the span lists.
	overall := uint64(0)
	for _, l := range numLits {
		overall = gcd(overall, l.value)
	}
	for _, l := range denLits {
		overall = gcd(overall, l.value)
	}
	if overall > 1 {
		opp := CommonFactor{
			Factor:           overall,
			NumeratorSpans:   spansDivisibleBy(numLits, overall),
			DenominatorSpans: spansDivisibleBy(denLits, overall),
		}
		if len(opp.NumeratorSpans) > 0 && len(opp.DenominatorSpans) > 0 {
			out = append(out, opp)
		}
	}

	// Pass 2: each denominator literal greater than 1 that divides some
	// numerator literal is its own, narrower opportunity, unless pass 1
	// already reported that factor.
	for _, d := range denLits {
		if d.value <= 1 || d.value == overall {
			continue
		}
		numSpans := spansDivisibleBy(numLits, d.value)
		if len(numSpans) == 0 {
			continue
		}
		out = append(out, CommonFactor{
			Factor:           d.value,
			NumeratorSpans:   numSpans,
			DenominatorSpans: []span.Span{d.sp},
		})
	}

	return out
}

// literal is an integral numeric literal with its source span.
type literal struct {
	value uint64
	sp    span.Span
}

// collectLiterals gathers the absolute value of every integral numeric
// literal in the tree. The walk descends through Binary, Unary, and
// Power nodes but never into a Variable: a variable's identity is not a
// number, even when it carries a folded coefficient. Non-integral
// literals and span-less synthesized nodes are skipped, since neither
// can participate in integer factoring with a source highlight.
func collectLiterals(e ast.Expr) []literal {
	var out []literal
	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		switch n := e.(type) {
		case *ast.Number:
			v, ok := integralAbs(n.Value)
			if !ok || n.Sp == nil {
				return
			}
			out = append(out, literal{value: v, sp: *n.Sp})
		case *ast.Binary:
			walk(n.Left)
			walk(n.Right)
		case *ast.Unary:
			walk(n.Operand)
		case *ast.Power:
			walk(n.Base)
		}
	}
	if e != nil {
		walk(e)
	}
	return out
}

func spansDivisibleBy(lits []literal, factor uint64) []span.Span {
	var out []span.Span
	for _, l := range lits {
		if l.value%factor == 0 {
			out = append(out, l.sp)
		}
	}
	return out
}

// ============================================================
// Reducible fractions
// ============================================================

// findReducibleFractions walks the whole tree for literal-over-literal
// divisions, at any depth, whose operands share a divisor greater
// than 1.
func findReducibleFractions(e ast.Expr) []Opportunity {
	var out []Opportunity
	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		switch n := e.(type) {
		case *ast.Binary:
			if n.Op == ast.Div {
				if opp, ok := reducible(n); ok {
					out = append(out, opp)
				}
			}
			walk(n.Left)
			walk(n.Right)
		case *ast.Unary:
			walk(n.Operand)
		case *ast.Power:
			walk(n.Base)
		}
	}
	walk(e)
	return out
}

func reducible(n *ast.Binary) (ReducibleFraction, bool) {
	num, nok := n.Left.(*ast.Number)
	den, dok := n.Right.(*ast.Number)
	if !nok || !dok || num.Sp == nil || den.Sp == nil {
		return ReducibleFraction{}, false
	}
	nv, nIntOK := integralAbs(num.Value)
	dv, dIntOK := integralAbs(den.Value)
	if !nIntOK || !dIntOK {
		return ReducibleFraction{}, false
	}
	g := gcd(nv, dv)
	if g <= 1 {
		return ReducibleFraction{}, false
	}
	return ReducibleFraction{
		GCD:             g,
		NumeratorSpan:   *num.Sp,
		DenominatorSpan: *den.Sp,
	}, true
}

// ============================================================
// Like terms
// ============================================================

// findLikeTerms flattens the additive chain, reduces each term to a
// (variable, exponent) signature, and groups terms sharing one.
func findLikeTerms(e ast.Expr) []Opportunity {
	var terms []ast.Expr
	flattenTerms(e, &terms)
	if len(terms) < 2 {
		return nil
	}

	type sigKey struct {
		variable string
		exponent float64
	}
	groups := make(map[sigKey][]span.Span)
	var order []sigKey

	for _, t := range terms {
		name, exp, ok := termSignature(t)
		if !ok {
			continue
		}
		sp := t.Span()
		if sp == nil {
			continue
		}
		key := sigKey{variable: name, exponent: exp}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], *sp)
	}

	var out []Opportunity
	for _, key := range order {
		spans := groups[key]
		if len(spans) < 2 {
			continue
		}
		out = append(out, LikeTerms{
			Variable: key.variable,
			Exponent: key.exponent,
			Spans:    spans,
		})
	}
	return out
}

// flattenTerms splits +/- chains into their additive terms. Anything
// that is not an additive Binary node is a term; the sign a term is
// reached through does not affect its signature, so only the nodes are
// kept.
func flattenTerms(e ast.Expr, terms *[]ast.Expr) {
	if b, ok := e.(*ast.Binary); ok {
		if b.Op == ast.Add || b.Op == ast.Sub {
			flattenTerms(b.Left, terms)
			flattenTerms(b.Right, terms)
			return
		}
	}
	*terms = append(*terms, e)
}

// termSignature reduces a term to its variable identity and exponent by
// walking multiplicative chains and powers. Division walks only into
// its left operand: the right side of a division is excluded from the
// signature. A constant term yields an empty name and exponent 0; a
// term mixing two or more distinct variables has no usable signature.
func termSignature(e ast.Expr) (string, float64, bool) {
	vars := make(map[string]float64)
	var order []string

	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		switch n := e.(type) {
		case *ast.Variable:
			if _, seen := vars[n.Name]; !seen {
				order = append(order, n.Name)
			}
			vars[n.Name]++
		case *ast.Power:
			if v, ok := n.Base.(*ast.Variable); ok {
				if _, seen := vars[v.Name]; !seen {
					order = append(order, v.Name)
				}
				vars[v.Name] += n.Exponent
			} else {
				walk(n.Base)
			}
		case *ast.Binary:
			switch n.Op {
			case ast.Mul:
				walk(n.Left)
				walk(n.Right)
			case ast.Div:
				walk(n.Left)
			}
		case *ast.Unary:
			walk(n.Operand)
		}
	}
	walk(e)

	switch len(order) {
	case 0:
		return "", 0, true
	case 1:
		name := order[0]
		return name, vars[name], true
	default:
		return "", 0, false
	}
}

// ============================================================
// Arithmetic helpers
// ============================================================

// integralAbs returns |v| as an integer when v is a finite whole
// number.
func integralAbs(v float64) (uint64, bool) {
	a := math.Abs(v)
	if math.IsInf(a, 0) || math.IsNaN(a) || a != math.Trunc(a) || a > math.MaxUint32 {
		return 0, false
	}
	return uint64(a), true
}

// gcd computes the greatest common divisor; gcd(0, x) == x.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
