package parser

import (
	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/span"
)

// parseItem parses one optional-`pub`, keyword-dispatched item. It
// returns (nil, false) when the leading token is not an item keyword
// and visibility was Inherited — the caller may try another
// production (a block falls back to parsing an expression statement).
// An explicit `pub` with no valid keyword following is a parse error.
func (p *Parser) parseItem() (*ast.Item, bool) {
	start := p.cur.Span
	vis := ast.VisInherited
	explicitPub := false
	if p.eatKeyword(span.Kw.Pub) {
		vis = ast.VisPublic
		explicitPub = true
	}

	switch {
	case p.checkKeyword(span.Kw.Fn):
		return p.parseFnItem(start, vis), true
	case p.checkKeyword(span.Kw.Struct):
		return p.parseStructItem(start, vis), true
	case p.checkKeyword(span.Kw.Enum):
		return p.parseEnumItem(start, vis), true
	case p.checkKeyword(span.Kw.Mod):
		return p.parseModItem(start, vis), true
	case p.checkKeyword(span.Kw.Use):
		return p.parseUseItem(start, vis), true
	}

	if explicitPub {
		p.addError(ErrUnexpectedItem, "expected an item after 'pub', found "+p.cur.Kind.String(), "expected one of: fn, struct, enum, mod, use")
		return nil, true
	}
	return nil, false
}

func (p *Parser) parseFnItem(start span.Span, vis ast.Visibility) *ast.Item {
	p.expectKeyword(span.Kw.Fn)
	name, _ := p.expectIdent()

	sigStart := p.cur.Span
	params := parseParenthesized(p, p.parseParam)
	var retTy *ast.Ty
	if p.eat(ast.TRArrow) {
		retTy = p.parseTy()
	}
	sig := ast.FnSig{Params: params, RetTy: retTy, Span: sigStart.To(p.prev.Span)}

	body := p.parseBlock()
	return &ast.Item{Vis: vis, Ident: name, Kind: &ast.FnItem{Sig: sig, Body: body}, Span: start.To(body.Span)}
}

func (p *Parser) parseParam() ast.Param {
	start := p.cur.Span
	pat := p.parsePat()
	var ty *ast.Ty
	if p.eat(ast.TColon) {
		ty = p.parseTy()
	}
	return ast.Param{Pat: pat, Ty: ty, Span: start.To(p.prev.Span)}
}

func (p *Parser) parseStructItem(start span.Span, vis ast.Visibility) *ast.Item {
	p.expectKeyword(span.Kw.Struct)
	name, _ := p.expectIdent()

	var fields ast.StructFields
	switch {
	case p.checkOpenDelim(ast.DelimBrace):
		named := parseBraced(p, p.parseNamedField)
		fields = &ast.StructFieldsNamed{Fields: named}

	case p.checkOpenDelim(ast.DelimParen):
		tuple := parseParenthesized(p, p.parseTupleField)
		fields = &ast.StructFieldsTuple{Fields: tuple}
		p.expectSemi()

	default:
		fields = ast.StructFieldsUnit{}
		p.expectSemi()
	}

	return &ast.Item{Vis: vis, Ident: name, Kind: &ast.StructItem{Fields: fields}, Span: start.To(p.prev.Span)}
}

func (p *Parser) parseNamedField() ast.NamedField {
	start := p.cur.Span
	fieldVis := ast.VisInherited
	if p.eatKeyword(span.Kw.Pub) {
		fieldVis = ast.VisPublic
	}
	name, _ := p.expectIdent()
	p.expect(ast.TColon)
	ty := p.parseTy()
	return ast.NamedField{Vis: fieldVis, Ident: name, Ty: ty, Span: start.To(p.prev.Span)}
}

func (p *Parser) parseTupleField() ast.TupleField {
	start := p.cur.Span
	fieldVis := ast.VisInherited
	if p.eatKeyword(span.Kw.Pub) {
		fieldVis = ast.VisPublic
	}
	ty := p.parseTy()
	return ast.TupleField{Vis: fieldVis, Ty: ty, Span: start.To(p.prev.Span)}
}

func (p *Parser) parseEnumItem(start span.Span, vis ast.Visibility) *ast.Item {
	p.expectKeyword(span.Kw.Enum)
	name, _ := p.expectIdent()

	var variants []ast.EnumVariant
	if p.checkOpenDelim(ast.DelimBrace) {
		variants = parseBraced(p, p.parseEnumVariant)
	} else {
		p.expectSemi()
	}

	return &ast.Item{Vis: vis, Ident: name, Kind: &ast.EnumItem{Variants: variants}, Span: start.To(p.prev.Span)}
}

func (p *Parser) parseEnumVariant() ast.EnumVariant {
	start := p.cur.Span
	name, _ := p.expectIdent()

	var fields ast.EnumVariantFields
	switch {
	case p.checkOpenDelim(ast.DelimBrace):
		named := parseBraced(p, p.parseNamedField)
		fields = &ast.EnumVariantStruct{Fields: named}

	case p.checkOpenDelim(ast.DelimParen):
		tys := parseParenthesized(p, p.parseTy)
		fields = &ast.EnumVariantTuple{Fields: tys}

	default:
		fields = ast.EnumVariantUnit{}
	}

	return ast.EnumVariant{Ident: name, Fields: fields, Span: start.To(p.prev.Span)}
}

func (p *Parser) parseModItem(start span.Span, vis ast.Visibility) *ast.Item {
	p.expectKeyword(span.Kw.Mod)
	name, _ := p.expectIdent()

	var kind ast.ModKind
	if p.checkOpenDelim(ast.DelimBrace) {
		bodyStart := p.cur.Span
		p.advance()
		var items []*ast.Item
		for !p.checkCloseDelim(ast.DelimBrace) && !p.check(ast.TEof) {
			before := p.cur
			item, ok := p.parseItem()
			if ok {
				items = append(items, item)
				continue
			}
			if p.cur == before {
				p.addError(ErrUnexpectedItem, "expected an item inside 'mod', found "+p.cur.Kind.String(), "")
				p.syncToTop()
				if p.checkCloseDelim(ast.DelimBrace) || p.check(ast.TEof) {
					break
				}
			}
		}
		p.expectCloseDelim(ast.DelimBrace)
		kind = &ast.ModLoaded{Items: items, Inline: true, Span: bodyStart.To(p.prev.Span)}
	} else {
		p.expectSemi()
		kind = ast.ModUnloaded{}
	}

	return &ast.Item{Vis: vis, Ident: name, Kind: &ast.ModItem{Kind: kind}, Span: start.To(p.prev.Span)}
}

func (p *Parser) parseUseItem(start span.Span, vis ast.Visibility) *ast.Item {
	p.expectKeyword(span.Kw.Use)
	tree := p.parseUseTree()
	p.expectSemi()
	return &ast.Item{Vis: vis, Ident: span.EmptyIdent(), Kind: &ast.UseItem{Tree: tree}, Span: start.To(p.prev.Span)}
}

// parseUseTree parses a module-style path followed by one of: `::*`
// (Glob), `::{ tree, ... }` (Nested), or nothing / `as ident` (Single,
// optionally renamed).
func (p *Parser) parseUseTree() *ast.UseTree {
	start := p.cur.Span
	base := p.parsePath(PathMod)

	var kind ast.UseTreeKind
	switch {
	case p.check(ast.TDoubleColon):
		p.advance()
		if p.isGlobStar() {
			p.advance()
			kind = ast.UseGlob{}
		} else {
			children := parseBraced(p, p.parseUseTree)
			kind = &ast.UseNested{Children: children}
		}

	default:
		var rename *span.Ident
		if p.eatKeyword(span.Kw.As) {
			id, _ := p.expectIdent()
			rename = &id
		}
		kind = &ast.UseSingle{Rename: rename}
	}

	return &ast.UseTree{Base: base, Kind: kind, Span: start.To(p.prev.Span)}
}
