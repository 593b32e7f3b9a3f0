package parser

import (
	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/span"
)

// parseBlock parses a brace-delimited statement list. It reuses the
// same comma-separated generic helper every other delimited list in
// this grammar uses — see the comment on ast.Block — so a block with
// more than one statement needs commas between them, not semicolons,
// to parse as written.
func (p *Parser) parseBlock() *ast.Block {
	start := p.cur.Span
	restricted := p.noBraceIndex
	p.noBraceIndex = false
	stmts := parseBraced(p, p.parseStmt)
	p.noBraceIndex = restricted
	return &ast.Block{Stmts: stmts, Span: start.To(p.prev.Span)}
}

// parseStmt always returns a non-nil Stmt so that parseBlock's
// delimited-list helper can keep walking the comma-separated list even
// after a malformed statement; the real ParseError is recorded
// separately.
func (p *Parser) parseStmt() ast.Stmt {
	start := p.cur.Span

	switch {
	case p.checkKeyword(span.Kw.Let):
		return &ast.StmtLet{Let: p.parseLet(start)}

	case p.check(ast.TSemi):
		p.advance()
		return &ast.StmtEmpty{Span: start}

	case p.checkKeyword(span.Kw.Fn), p.checkKeyword(span.Kw.Struct),
		p.checkKeyword(span.Kw.Enum), p.checkKeyword(span.Kw.Mod),
		p.checkKeyword(span.Kw.Use), p.checkKeyword(span.Kw.Pub):
		if item, ok := p.parseItem(); ok {
			return &ast.StmtItem{Item: item}
		}
		return &ast.StmtExpr{Expr: &ast.ExprBad{Span: start}}

	default:
		expr := p.parseExpr()
		p.eat(ast.TSemi)
		return &ast.StmtExpr{Expr: expr}
	}
}

// parseLet parses `let pat (: ty)? (= expr)? ;`.
func (p *Parser) parseLet(start span.Span) *ast.Let {
	p.expectKeyword(span.Kw.Let)
	pat := p.parsePat()

	var ty *ast.Ty
	if p.eat(ast.TColon) {
		ty = p.parseTy()
	}

	var init ast.Expr
	if p.eat(ast.TEq) {
		init = p.parseExpr()
	}

	p.expectSemi()
	return &ast.Let{Pat: pat, Ty: ty, Init: init, Span: start.To(p.prev.Span)}
}
