package parser

import (
	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/span"
)

// PathStyle selects how a trailing `::` is treated while parsing a
// Path: in Mod style, `::{` and `::*` terminate the path so the
// use-tree parser can take over.
type PathStyle int

const (
	PathExpr PathStyle = iota
	PathType
	PathMod
)

// parsePath parses one or more `::`-separated segments. The first
// segment must be a non-keyword identifier; subsequent segments may
// additionally be a path-segment keyword (self, Self, super, crate).
func (p *Parser) parsePath(style PathStyle) ast.Path {
	first, ok := p.expectIdent()
	if !ok {
		return ast.Path{Span: p.cur.Span}
	}
	segments := []ast.PathSegment{{Ident: first, Span: first.Span}}

	for p.check(ast.TDoubleColon) {
		if style == PathMod {
			cp := p.mark()
			p.advance() // tentatively consume '::'
			if p.checkOpenDelim(ast.DelimBrace) || p.isGlobStar() {
				p.reset(cp)
				break
			}
		} else {
			p.advance()
		}

		segStart := p.cur.Span
		if p.cur.Kind != ast.TIdent {
			p.addError(ErrExpectedIdent, "expected a path segment, found "+p.cur.Kind.String(), "")
			break
		}
		sym := p.cur.Ident
		if span.IsKeyword(sym) && !span.IsPathSegmentKeyword(sym) {
			p.addError(ErrExpectedIdent, "keyword is not a valid path segment here", "")
			break
		}
		seg := span.Ident{Name: sym, Span: segStart}
		p.advance()
		segments = append(segments, ast.PathSegment{Ident: seg, Span: segStart})
	}

	last := segments[len(segments)-1]
	return ast.Path{Segments: segments, Span: first.Span.To(last.Span)}
}

// isGlobStar reports whether the current token is the `*` that
// begins a use-tree glob (lexed as a plain BinOp(Mul)).
func (p *Parser) isGlobStar() bool {
	return p.cur.Kind == ast.TBinOp && p.cur.Bin == ast.BinMul
}
