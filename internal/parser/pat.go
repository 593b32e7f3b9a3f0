package parser

import (
	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/span"
)

// parsePat parses a pattern: a tuple pattern, a slice pattern, a bare
// binding identifier, or a path-rooted pattern (unit struct/variant,
// struct destructure, or tuple-variant destructure), disambiguated by
// what follows the path.
func (p *Parser) parsePat() *ast.Pat {
	start := p.cur.Span

	switch {
	case p.checkOpenDelim(ast.DelimParen):
		elems := parseParenthesized(p, p.parsePat)
		return &ast.Pat{Kind: &ast.PatTuple{Elems: elems}, Span: start.To(p.prev.Span)}

	case p.checkOpenDelim(ast.DelimBracket):
		elems := parseBracketed(p, p.parsePat)
		return &ast.Pat{Kind: &ast.PatSlice{Elems: elems}, Span: start.To(p.prev.Span)}

	case p.cur.Kind == ast.TIdent:
		return p.parsePathOrIdentPat(start)

	default:
		p.addError(ErrExpectedToken, "expected a pattern, found "+p.cur.Kind.String(), "")
		return &ast.Pat{Kind: ast.PatBad{}, Span: start}
	}
}

// parsePathOrIdentPat handles the path-vs-binding-identifier ambiguity:
// a single non-keyword identifier not followed by `::`, `{`, or `(` is
// a binding (PatIdent); anything else rooted in a path is a unit,
// struct, or tuple-variant pattern.
func (p *Parser) parsePathOrIdentPat(start span.Span) *ast.Pat {
	if !span.IsKeyword(p.cur.Ident) && !p.nextStartsPathContinuation() {
		id, _ := p.expectIdent()
		return &ast.Pat{Kind: &ast.PatIdent{Ident: id}, Span: id.Span}
	}

	path := p.parsePath(PathExpr)

	switch {
	case p.checkOpenDelim(ast.DelimBrace):
		fields := parseBraced(p, p.parsePatField)
		return &ast.Pat{Kind: &ast.PatStruct{Path: path, Fields: fields}, Span: start.To(p.prev.Span)}

	case p.checkOpenDelim(ast.DelimParen):
		elems := parseParenthesized(p, p.parsePat)
		return &ast.Pat{Kind: &ast.PatEnum{Path: path, Elems: elems}, Span: start.To(p.prev.Span)}

	default:
		return &ast.Pat{Kind: &ast.PatPath{Path: path}, Span: path.Span}
	}
}

// nextStartsPathContinuation peeks, without consuming, whether the
// token after the current identifier plausibly continues a path or
// introduces a struct/tuple-variant pattern. The parser's one-token
// lookahead means this has to use a real checkpoint rather than a
// cheap peek.
func (p *Parser) nextStartsPathContinuation() bool {
	cp := p.mark()
	p.advance()
	follows := p.check(ast.TDoubleColon) || p.checkOpenDelim(ast.DelimBrace) || p.checkOpenDelim(ast.DelimParen)
	p.reset(cp)
	return follows
}

func (p *Parser) parsePatField() ast.PatFieldShorthand {
	start := p.cur.Span
	ident, _ := p.expectIdent()
	if p.eat(ast.TColon) {
		pat := p.parsePat()
		return ast.PatFieldShorthand{Ident: ident, Pat: pat, Span: start.To(p.prev.Span)}
	}
	return ast.PatFieldShorthand{Ident: ident, Pat: &ast.Pat{Kind: &ast.PatIdent{Ident: ident}, Span: ident.Span}, Span: ident.Span}
}
