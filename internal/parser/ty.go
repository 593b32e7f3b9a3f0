package parser

import (
	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/span"
)

// parseTy parses a type: an array `[elem]`, a parenthesized group
// (unit, a single paren'd type, or a tuple of arity >= 2), the `_`
// inference placeholder, or a path type.
func (p *Parser) parseTy() *ast.Ty {
	start := p.cur.Span

	switch {
	case p.checkOpenDelim(ast.DelimBracket):
		p.advance()
		elem := p.parseTy()
		end := p.cur.Span
		p.expectCloseDelim(ast.DelimBracket)
		return &ast.Ty{Kind: &ast.TyArray{Elem: elem}, Span: start.To(end)}

	case p.checkOpenDelim(ast.DelimParen):
		return p.parseParenTy(start)

	case p.checkKeyword(span.Kw.Wildcard):
		p.advance()
		return &ast.Ty{Kind: ast.TyInfer{}, Span: start}

	case p.cur.Kind == ast.TIdent:
		path := p.parsePath(PathType)
		return &ast.Ty{Kind: &ast.TyPath{Path: path}, Span: path.Span}

	default:
		p.addError(ErrExpectedToken, "expected a type, found "+p.cur.Kind.String(), "")
		return &ast.Ty{Kind: ast.TyBad{}, Span: start}
	}
}

// parseParenTy handles `()` (unit), `(t)` (a paren'd single type), and
// `(t1, t2, ...)` (a tuple type, arity >= 2).
func (p *Parser) parseParenTy(start span.Span) *ast.Ty {
	elems := parseParenthesized(p, p.parseTy)
	end := p.prev.Span
	full := start.To(end)

	switch len(elems) {
	case 0:
		return &ast.Ty{Kind: ast.TyUnit{}, Span: full}
	case 1:
		return &ast.Ty{Kind: &ast.TyParen{Inner: elems[0]}, Span: full}
	default:
		return &ast.Ty{Kind: &ast.TyTuple{Elems: elems}, Span: full}
	}
}
