package parser

import (
	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/span"
)

// precedence levels, low to high, per the grammar's
// Any < Assign < Or < And < BitOr < BitXor < BitAnd < Compare < Shift
// < Arithmetic < Term ladder. precNone marks "not an infix operator".
type precedence int

const (
	precNone precedence = iota
	precAssign
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precCompare
	precShift
	precArithmetic
	precTerm
)

// binOpPrec returns the precedence of the current token if it starts
// a plain binary operator (not an assignment form), else precNone.
func (p *Parser) binOpPrec() precedence {
	switch p.cur.Kind {
	case ast.TCondOp:
		return precCompare
	case ast.TBinOp:
		switch p.cur.Bin {
		case ast.BinOr:
			return precOr
		case ast.BinAnd:
			return precAnd
		case ast.BinBitOr:
			return precBitOr
		case ast.BinBitXor:
			return precBitXor
		case ast.BinBitAnd:
			return precBitAnd
		case ast.BinShl, ast.BinShr:
			return precShift
		case ast.BinAdd, ast.BinSub:
			return precArithmetic
		case ast.BinMul, ast.BinDiv, ast.BinRem:
			return precTerm
		}
	}
	return precNone
}

// isAssignStart reports whether the current token starts an
// assignment form (`=` or a compound `op=`).
func (p *Parser) isAssignStart() bool {
	return p.cur.Kind == ast.TEq || p.cur.Kind == ast.TBinOpEq
}

// parseExpr is the Pratt entry point: parse a unary LHS, then climb
// operators at or above the minimum precedence.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseExprPrec(precNone)
}

// withBraceIndexRestriction runs f with noBraceIndex set to restricted,
// restoring the previous setting before returning. Control-flow heads
// set restricted=true around their condition/iterator expression; any
// nested paren/bracket/brace grouping parsed along the way clears it
// back to false, since that enclosing delimiter already disambiguates
// where the expression ends.
func (p *Parser) withBraceIndexRestriction(restricted bool, f func() ast.Expr) ast.Expr {
	prev := p.noBraceIndex
	p.noBraceIndex = restricted
	x := f()
	p.noBraceIndex = prev
	return x
}

// parseExprPrec climbs operators at or above minPrec: parse a unary
// LHS, then repeatedly fold in an operator whose precedence clears
// minPrec, recursing for its RHS at the precedence required by that
// operator's associativity (strictly higher for left-assoc binary
// operators, the same level for right-assoc Assign).
func (p *Parser) parseExprPrec(minPrec precedence) ast.Expr {
	lhs := p.parseUnary()

	for {
		if p.isAssignStart() {
			if precAssign < minPrec {
				return lhs
			}
			lhs = p.parseAssignLike(lhs)
			continue
		}

		prec := p.binOpPrec()
		if prec == precNone || prec < minPrec {
			return lhs
		}

		opTok := p.cur
		p.advance()
		rhs := p.parseExprPrec(prec + 1)

		var op ast.BinOp
		if opTok.Kind == ast.TCondOp {
			op = ast.FromCondOp(opTok.Cond)
		} else {
			op = opTok.Bin
		}
		lhs = &ast.ExprBinary{Op: op, Lhs: lhs, Rhs: rhs, Span: exprSpan(lhs).To(exprSpan(rhs))}
	}
}

// parseAssignLike consumes `=` or `op=` and builds Assign/AssignOp.
// Assign is right-associative: the RHS is parsed at precAssign so an
// equal-precedence assignment on the right nests instead of closing.
func (p *Parser) parseAssignLike(lhs ast.Expr) ast.Expr {
	tok := p.cur
	p.advance()
	rhs := p.parseExprPrec(precAssign)
	full := exprSpan(lhs).To(exprSpan(rhs))
	if tok.Kind == ast.TEq {
		return &ast.ExprAssign{Lhs: lhs, Rhs: rhs, Span: full}
	}
	return &ast.ExprAssignOp{Op: tok.Bin, Lhs: lhs, Rhs: rhs, Span: full}
}

// parseUnary handles the prefix operators. `-` always lexes as
// BinOp(Sub), never UnOp(Neg), so numeric negation is not reachable
// here. `~` is not lexed at all (it is an unexpected character), so
// `!` is the only prefix operator that reaches this function.
func (p *Parser) parseUnary() ast.Expr {
	if p.cur.Kind == ast.TUnOp {
		start := p.cur.Span
		op := p.cur.Un
		p.advance()
		x := p.parseUnary()
		return &ast.ExprUnary{Op: op, X: x, Span: start.To(exprSpan(x))}
	}
	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix chains call, index, and field-access suffixes onto x.
func (p *Parser) parsePostfix(x ast.Expr) ast.Expr {
	for {
		start := exprSpan(x)
		switch {
		case p.checkOpenDelim(ast.DelimParen):
			args := parseParenthesized(p, func() ast.Expr { return p.withBraceIndexRestriction(false, p.parseExpr) })
			x = &ast.ExprCall{Callee: x, Args: args, Span: start.To(p.prev.Span)}

		case p.checkOpenDelim(ast.DelimBrace) && !p.noBraceIndex:
			p.advance()
			idx := p.withBraceIndexRestriction(false, p.parseExpr)
			p.eatCloseDelim(ast.DelimBrace)
			x = &ast.ExprIndex{X: x, Index: idx, Span: start.To(p.prev.Span)}

		case p.check(ast.TDot):
			field := p.parseFieldName()
			x = &ast.ExprField{X: x, Field: field, Span: start.To(field.Span)}

		default:
			return x
		}
	}
}

// parseFieldName consumes the current Dot token and parses either a
// plain `ident` field or a tuple-index field like the `0` in `x.0`.
// The lookahead is a raw character peek rather than a normal advance,
// because the normal token stream would happily fold `0.1` into one
// float literal — AdvanceInt is the dedicated scan that stops that.
func (p *Parser) parseFieldName() span.Ident {
	digitNext := p.lex.PeekIsDigit()
	p.prev = p.cur // the Dot

	var tok ast.Token
	if digitNext {
		tok = p.lex.AdvanceInt()
	} else {
		tok = p.lex.Advance()
	}
	p.cur = tok

	if p.cur.Kind == ast.TLit && p.cur.Lit.Kind == ast.LitInt {
		id := span.Ident{Name: p.cur.Lit.Sym, Span: p.cur.Span}
		p.advance()
		return id
	}
	if p.cur.Kind == ast.TIdent {
		id := span.Ident{Name: p.cur.Ident, Span: p.cur.Span}
		p.advance()
		return id
	}

	p.addError(ErrExpectedIdent, "expected a field name or tuple index after '.'", "")
	return span.EmptyIdent()
}

// parsePrimary parses a literal, control-flow form, path, or a
// bracket/paren/brace/hash-delimited grouping expression.
func (p *Parser) parsePrimary() ast.Expr {
	start := p.cur.Span

	switch {
	case p.cur.Kind == ast.TLit:
		lit := p.cur.Lit
		p.advance()
		return &ast.ExprLit{Lit: lit, Span: start}

	case p.checkKeyword(span.Kw.If):
		return p.parseIfExpr()

	case p.checkKeyword(span.Kw.While):
		return p.parseWhileExpr()

	case p.checkKeyword(span.Kw.For):
		return p.parseForExpr()

	case p.checkKeyword(span.Kw.Loop):
		p.advance()
		body := p.parseBlock()
		return &ast.ExprLoop{Body: body, Span: start.To(body.Span)}

	case p.checkKeyword(span.Kw.Return):
		p.advance()
		return p.parseOptionalPayload(start, func(v ast.Expr, s span.Span) ast.Expr {
			return &ast.ExprReturn{Value: v, Span: s}
		})

	case p.checkKeyword(span.Kw.Break):
		p.advance()
		return p.parseOptionalPayload(start, func(v ast.Expr, s span.Span) ast.Expr {
			return &ast.ExprBreak{Value: v, Span: s}
		})

	case p.checkKeyword(span.Kw.Continue):
		p.advance()
		return &ast.ExprContinue{Span: start}

	case p.checkOpenDelim(ast.DelimParen):
		return p.parseParenOrTupleExpr(start)

	case p.checkOpenDelim(ast.DelimBrace):
		block := p.parseBlock()
		return &ast.ExprBlock{Block: block, Span: block.Span}

	case p.checkOpenDelim(ast.DelimBracket):
		elems := parseBracketed(p, func() ast.Expr { return p.withBraceIndexRestriction(false, p.parseExpr) })
		return &ast.ExprArray{Elems: elems, Span: start.To(p.prev.Span)}

	case p.check(ast.THash):
		p.advance()
		fields := parseBraced(p, p.parseStructExprField)
		return &ast.ExprStruct{Fields: fields, Span: start.To(p.prev.Span)}

	case p.cur.Kind == ast.TIdent:
		path := p.parsePath(PathExpr)
		return &ast.ExprPath{Path: path, Span: path.Span}

	default:
		p.addError(ErrInvalidExpr, "expected an expression, found "+p.cur.Kind.String(), "")
		bad := &ast.ExprBad{Span: start}
		p.advance()
		return bad
	}
}

// parseOptionalPayload implements the `return`/`break` rule: if the
// very next token is `;` (left for the enclosing statement to consume),
// a closing `}`, a `,`, or Eof, the payload is absent; otherwise parse
// an expression payload.
func (p *Parser) parseOptionalPayload(start span.Span, build func(ast.Expr, span.Span) ast.Expr) ast.Expr {
	if p.check(ast.TSemi) || p.checkCloseDelim(ast.DelimBrace) || p.check(ast.TEof) || p.check(ast.TComma) {
		return build(nil, start)
	}
	v := p.parseExpr()
	return build(v, start.To(exprSpan(v)))
}

func (p *Parser) parseParenOrTupleExpr(start span.Span) ast.Expr {
	elems := parseParenthesized(p, func() ast.Expr { return p.withBraceIndexRestriction(false, p.parseExpr) })
	full := start.To(p.prev.Span)
	switch len(elems) {
	case 1:
		return &ast.ExprParen{X: elems[0], Span: full}
	default:
		return &ast.ExprTuple{Elems: elems, Span: full}
	}
}

func (p *Parser) parseStructExprField() ast.StructExprField {
	start := p.cur.Span
	ident, _ := p.expectIdent()
	if p.eat(ast.TColon) {
		val := p.withBraceIndexRestriction(false, p.parseExpr)
		return ast.StructExprField{Ident: ident, Value: val, Span: start.To(exprSpan(val))}
	}
	return ast.StructExprField{
		Ident: ident,
		Value: &ast.ExprPath{Path: ast.Path{Segments: []ast.PathSegment{{Ident: ident, Span: ident.Span}}, Span: ident.Span}, Span: ident.Span},
		Span:  ident.Span,
	}
}

func (p *Parser) parseIfExpr() ast.Expr {
	start := p.cur.Span
	p.expectKeyword(span.Kw.If)
	cond := p.withBraceIndexRestriction(true, p.parseExpr)
	then := p.parseBlock()

	var elseExpr ast.Expr
	if p.eatKeyword(span.Kw.Else) {
		if p.checkKeyword(span.Kw.If) {
			elseExpr = p.parseIfExpr()
		} else {
			block := p.parseBlock()
			elseExpr = &ast.ExprBlock{Block: block, Span: block.Span}
		}
	}

	end := then.Span
	if elseExpr != nil {
		end = exprSpan(elseExpr)
	}
	return &ast.ExprIf{Cond: cond, Then: then, Else: elseExpr, Span: start.To(end)}
}

func (p *Parser) parseWhileExpr() ast.Expr {
	start := p.cur.Span
	p.expectKeyword(span.Kw.While)
	cond := p.withBraceIndexRestriction(true, p.parseExpr)
	body := p.parseBlock()
	return &ast.ExprWhile{Cond: cond, Body: body, Span: start.To(body.Span)}
}

func (p *Parser) parseForExpr() ast.Expr {
	start := p.cur.Span
	p.expectKeyword(span.Kw.For)
	pat := p.parsePat()
	p.expectKeyword(span.Kw.In)
	iter := p.withBraceIndexRestriction(true, p.parseExpr)
	body := p.parseBlock()
	return &ast.ExprFor{Pat: pat, Iter: iter, Body: body, Span: start.To(body.Span)}
}

// exprSpan extracts the Span embedded in any Expr variant. Go's sum
// type has no shared field accessor, so this is a small type switch
// rather than a common base struct.
func exprSpan(e ast.Expr) span.Span {
	switch v := e.(type) {
	case *ast.ExprLit:
		return v.Span
	case *ast.ExprBinary:
		return v.Span
	case *ast.ExprAssign:
		return v.Span
	case *ast.ExprAssignOp:
		return v.Span
	case *ast.ExprUnary:
		return v.Span
	case *ast.ExprPath:
		return v.Span
	case *ast.ExprCall:
		return v.Span
	case *ast.ExprIndex:
		return v.Span
	case *ast.ExprField:
		return v.Span
	case *ast.ExprStruct:
		return v.Span
	case *ast.ExprTuple:
		return v.Span
	case *ast.ExprArray:
		return v.Span
	case *ast.ExprBlock:
		return v.Span
	case *ast.ExprIf:
		return v.Span
	case *ast.ExprLoop:
		return v.Span
	case *ast.ExprWhile:
		return v.Span
	case *ast.ExprFor:
		return v.Span
	case *ast.ExprMatch:
		return v.Span
	case *ast.ExprReturn:
		return v.Span
	case *ast.ExprBreak:
		return v.Span
	case *ast.ExprContinue:
		return v.Span
	case *ast.ExprParen:
		return v.Span
	case *ast.ExprBad:
		return v.Span
	default:
		return span.DummySpan
	}
}
