// Package parser implements recursive-descent parsing of algebraic
// expressions.
//
// Grammar, lowest to highest precedence:
//
//	Expression → Term (('+' | '-') Term)*
//	Term       → Factor (('*' | '/') Factor)*
//	Factor     → '-' Factor | Power
//	Power      → Atom ('^' exponent)?
//	Atom       → NUMBER | VARIABLE | '(' Expression ')'
//
// '+'/'-' and '*'/'/' are left-associative, parsed iteratively. Unary
// minus sits above Power in the chain so that -x^2 parses as -(x^2).
package parser

import (
	"algexpr/internal/ast"
	"algexpr/internal/diag"
	"algexpr/internal/lexer"
	"algexpr/internal/span"
	"algexpr/internal/token"
)

// Parser performs syntax analysis on a token stream.
type Parser struct {
	tokens []token.Token
	pos    int
	diags  []diag.Diagnostic
}

// New creates a new parser from a token slice.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseText tokenizes and parses an expression string in one step.
func ParseText(text string) (ast.Expr, []diag.Diagnostic) {
	tokens := lexer.New(text).Tokenize()
	return New(tokens).ParseExpr()
}

// ParseExpr parses the token stream as a single expression. The entire
// stream (excluding EOF) must be consumed; trailing tokens are an
// error. On error the returned expression is nil and the diagnostics
// slice is non-empty.
func (p *Parser) ParseExpr() (ast.Expr, []diag.Diagnostic) {
	expr := p.parseExpression()
	if expr != nil && !p.isAtEnd() {
		tok := p.peek()
		p.error("E2002", tok.Span, "unexpected token '%s'", tok.Kind)
		expr = nil
	}
	return expr, p.diags
}

// ---- navigation helpers ----

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekKind() token.Kind {
	return p.peek().Kind
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peekKind() == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) isAtEnd() bool {
	return p.peekKind() == token.EOF
}

func (p *Parser) error(code string, s span.Span, format string, args ...interface{}) {
	p.diags = append(p.diags, diag.Errorf(code, s, format, args...))
}

// ============================================================
// Grammar rules
// ============================================================

// parseExpression parses: Term (('+' | '-') Term)*
func (p *Parser) parseExpression() ast.Expr {
	left := p.parseTerm()
	if left == nil {
		return nil
	}

	for p.match(token.PLUS, token.MINUS) {
		opTok := p.advance()
		right := p.parseTerm()
		if right == nil {
			return nil
		}
		op, _ := ast.OpFromToken(opTok.Kind)
		left = &ast.Binary{
			ExprBase: spanning(left, right),
			Op:       op,
			Left:     left,
			Right:    right,
		}
	}
	return left
}

// parseTerm parses: Factor (('*' | '/') Factor)*
func (p *Parser) parseTerm() ast.Expr {
	left := p.parseFactor()
	if left == nil {
		return nil
	}

	for p.match(token.MULTIPLY, token.DIVIDE) {
		opTok := p.advance()
		right := p.parseFactor()
		if right == nil {
			return nil
		}
		op, _ := ast.OpFromToken(opTok.Kind)
		left = &ast.Binary{
			ExprBase: spanning(left, right),
			Op:       op,
			Left:     left,
			Right:    right,
		}
	}
	return left
}

// parseFactor parses: '-' Factor | Power
//
// Recursing into parseFactor after the minus makes --5 parse as
// negate(negate(5)) while a lone minus still binds looser than '^'.
func (p *Parser) parseFactor() ast.Expr {
	if p.check(token.MINUS) {
		minus := p.advance()
		operand := p.parseFactor()
		if operand == nil {
			return nil
		}
		end := minus.Span.End
		if sp := operand.Span(); sp != nil {
			end = sp.End
		}
		return &ast.Unary{
			ExprBase: ast.At(span.New(minus.Span.Start, end)),
			Operand:  operand,
		}
	}
	return p.parsePower()
}

// parsePower parses: Atom ('^' exponent)?
//
// The exponent must be a literal number, optionally prefixed by one
// minus. Anything else after '^' leaves the exponent at its default of
// 2 without consuming the offending token and without raising an
// error; the surrounding editor tolerates half-typed exponents.
func (p *Parser) parsePower() ast.Expr {
	base := p.parseAtom()
	if base == nil {
		return nil
	}

	if !p.check(token.POWER) {
		return base
	}
	caret := p.advance()

	exponent := 2.0
	end := caret.Span.End
	switch {
	case p.check(token.NUMBER):
		numTok := p.advance()
		exponent = numTok.Value
		end = numTok.Span.End
	case p.check(token.MINUS) && p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind == token.NUMBER:
		p.advance() // consume '-'
		numTok := p.advance()
		exponent = -numTok.Value
		end = numTok.Span.End
	}

	start := caret.Span.Start
	if sp := base.Span(); sp != nil {
		start = sp.Start
	}
	return &ast.Power{
		ExprBase: ast.At(span.New(start, end)),
		Base:     base,
		Exponent: exponent,
	}
}

// parseAtom parses: NUMBER | VARIABLE | '(' Expression ')'
func (p *Parser) parseAtom() ast.Expr {
	tok := p.peek()

	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		return &ast.Number{
			ExprBase: ast.At(tok.Span),
			Value:    tok.Value,
		}

	case token.VARIABLE:
		p.advance()
		return &ast.Variable{
			ExprBase:    ast.At(tok.Span),
			Name:        tok.Lexeme,
			Coefficient: 1,
		}

	case token.LPAREN:
		open := p.advance()
		inner := p.parseExpression()
		if inner == nil {
			return nil
		}
		if !p.check(token.RPAREN) {
			p.error("E2003", p.peek().Span, "expected ')', got '%s'", p.peekKind())
			return nil
		}
		closing := p.advance()
		// Widen the span so highlighting a parenthesized group covers
		// both paren characters.
		return widen(inner, span.New(open.Span.Start, closing.Span.End))

	default:
		p.error("E2001", tok.Span, "expected number, variable, or '(', got '%s'", tok.Kind)
		return nil
	}
}

// ============================================================
// Span helpers
// ============================================================

// spanning returns an ExprBase covering both children's spans, when
// both are present.
func spanning(left, right ast.Expr) ast.ExprBase {
	ls, rs := left.Span(), right.Span()
	if ls == nil || rs == nil {
		return ast.ExprBase{}
	}
	return ast.At(ls.Join(*rs))
}

// widen returns a copy of e with its span replaced by s.
func widen(e ast.Expr, s span.Span) ast.Expr {
	switch n := e.(type) {
	case *ast.Number:
		out := *n
		out.ExprBase = ast.At(s)
		return &out
	case *ast.Variable:
		out := *n
		out.ExprBase = ast.At(s)
		return &out
	case *ast.Binary:
		out := *n
		out.ExprBase = ast.At(s)
		return &out
	case *ast.Unary:
		out := *n
		out.ExprBase = ast.At(s)
		return &out
	case *ast.Power:
		out := *n
		out.ExprBase = ast.At(s)
		return &out
	default:
		return e
	}
}
