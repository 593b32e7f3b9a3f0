// Package parser implements the hand-written recursive-descent parser
// that turns a token stream into a Crate AST.
package parser

import (
	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/lexer"
	"github.com/raccoon-lang/raccoon/internal/span"
)

// Parser holds a one-token lookahead window over a Lexer: the current
// token and the token before it.
type Parser struct {
	lex  *lexer.Lexer
	file string

	cur  ast.Token
	prev ast.Token

	errs []ParseError

	// noBraceIndex suppresses parsePostfix's brace-index case, the way
	// Rust's NO_STRUCT_LITERAL restriction suppresses struct-literal
	// parsing while reading an if/while/for head expression — otherwise
	// `if a {}` reads the block as `a`'s index operand. It is cleared
	// while parsing inside any nested paren/bracket/brace grouping,
	// where the enclosing delimiter already resolves the ambiguity.
	noBraceIndex bool
}

// New returns a parser over src, reading path only for diagnostics.
func New(path, src string) *Parser {
	return NewWithInterner(path, src, nil)
}

// NewWithInterner returns a parser that interns against in (nil means
// the process-wide global Interner).
func NewWithInterner(path, src string, in *span.Interner) *Parser {
	p := &Parser{lex: lexer.NewWithInterner(path, src, in), file: path}
	p.cur = ast.Dummy()
	p.prev = ast.Dummy()
	p.advance()
	return p
}

// Parse is a convenience wrapper around New/ParseCrate for callers
// that don't need an intermediate Parser value, mirroring the shape
// the driver package builds on.
func Parse(path, src string) (*ast.Crate, []lexer.LexError, []ParseError) {
	p := New(path, src)
	crate := p.ParseCrate()
	return crate, p.LexErrors(), p.Errors()
}

// Errors returns parse errors accumulated so far.
func (p *Parser) Errors() []ParseError {
	return p.errs
}

// LexErrors returns lex errors surfaced by the underlying Lexer.
func (p *Parser) LexErrors() []lexer.LexError {
	return p.lex.Errors()
}

func (p *Parser) advance() {
	p.prev = p.cur
	p.cur = p.lex.Advance()
}

// checkpoint captures enough state to undo a speculative advance()
// used to look one token past the current one (see parsePath's
// Mod-style `::` lookahead).
type checkpoint struct {
	cur, prev ast.Token
	lex       lexer.Checkpoint
	lexErrs   int
}

func (p *Parser) mark() checkpoint {
	return checkpoint{cur: p.cur, prev: p.prev, lex: p.lex.Mark(), lexErrs: len(p.lex.Errors())}
}

func (p *Parser) reset(c checkpoint) {
	p.cur, p.prev = c.cur, c.prev
	p.lex.Reset(c.lex)
	p.lex.TruncateErrors(c.lexErrs)
}

func (p *Parser) addError(code, msg, hint string) {
	p.errs = append(p.errs, ParseError{Code: code, Message: msg, Hint: hint, File: p.file, Span: p.cur.Span})
}

// check reports whether the current token has kind k, without
// consuming it.
func (p *Parser) check(k ast.TokenKind) bool {
	return p.cur.Kind == k
}

func (p *Parser) checkKeyword(sym span.Symbol) bool {
	return p.cur.Kind == ast.TIdent && p.cur.Ident == sym
}

func (p *Parser) checkOpenDelim(d ast.Delimiter) bool {
	return p.cur.Kind == ast.TOpenDelim && p.cur.Delim == d
}

func (p *Parser) checkCloseDelim(d ast.Delimiter) bool {
	return p.cur.Kind == ast.TCloseDelim && p.cur.Delim == d
}

// eat consumes and reports true if the current token has kind k.
func (p *Parser) eat(k ast.TokenKind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) eatKeyword(sym span.Symbol) bool {
	if p.checkKeyword(sym) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) eatOpenDelim(d ast.Delimiter) bool {
	if p.checkOpenDelim(d) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) eatCloseDelim(d ast.Delimiter) bool {
	if p.checkCloseDelim(d) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind k, else records a
// ParseError and leaves the cursor unmoved.
func (p *Parser) expect(k ast.TokenKind) bool {
	if p.eat(k) {
		return true
	}
	p.addError(ErrExpectedToken, "expected "+k.String()+", found "+p.cur.Kind.String(), "check the preceding production for an unclosed delimiter or missing token")
	return false
}

func (p *Parser) expectKeyword(sym span.Symbol) bool {
	if p.eatKeyword(sym) {
		return true
	}
	p.addError(ErrExpectedKeyword, "expected keyword '"+span.Lookup(sym)+"', found "+p.cur.Kind.String(), "")
	return false
}

func (p *Parser) expectOpenDelim(d ast.Delimiter) bool {
	if p.eatOpenDelim(d) {
		return true
	}
	p.addError(ErrExpectedToken, "expected an opening delimiter", "")
	return false
}

func (p *Parser) expectCloseDelim(d ast.Delimiter) bool {
	if p.eatCloseDelim(d) {
		return true
	}
	p.addError(ErrExpectedToken, "expected a closing delimiter", "")
	return false
}

func (p *Parser) expectSemi() bool {
	return p.expect(ast.TSemi)
}

// parseIdent succeeds only when the current token is a non-keyword
// identifier. Path-segment keywords are deliberately not accepted
// here — the path parser admits them explicitly after the first
// segment.
func (p *Parser) parseIdent(consume bool) (span.Ident, bool) {
	if p.cur.Kind != ast.TIdent || span.IsKeyword(p.cur.Ident) {
		return span.Ident{}, false
	}
	id := span.Ident{Name: p.cur.Ident, Span: p.cur.Span}
	if consume {
		p.advance()
	}
	return id, true
}

func (p *Parser) expectIdent() (span.Ident, bool) {
	if id, ok := p.parseIdent(true); ok {
		return id, true
	}
	p.addError(ErrExpectedIdent, "expected an identifier, found "+p.cur.Kind.String(), "")
	return span.Ident{}, false
}

// parseDelimited implements the generic `parse_terminals` helper:
// expect open, then repeatedly parse an item via f, separated by sep,
// until close is seen (a trailing separator is permitted), then
// expect close.
func parseDelimited[T any](p *Parser, open, close ast.Delimiter, sep ast.TokenKind, f func() T) []T {
	if !p.expectOpenDelim(open) {
		return nil
	}
	var items []T
	for {
		if p.checkCloseDelim(close) {
			break
		}
		items = append(items, f())
		if p.checkCloseDelim(close) {
			break
		}
		if !p.expect(sep) {
			break
		}
	}
	p.expectCloseDelim(close)
	return items
}

func parseParenthesized[T any](p *Parser, f func() T) []T {
	return parseDelimited(p, ast.DelimParen, ast.DelimParen, ast.TComma, f)
}

func parseBraced[T any](p *Parser, f func() T) []T {
	return parseDelimited(p, ast.DelimBrace, ast.DelimBrace, ast.TComma, f)
}

func parseBracketed[T any](p *Parser, f func() T) []T {
	return parseDelimited(p, ast.DelimBracket, ast.DelimBracket, ast.TComma, f)
}

// syncToStmtEnd skips tokens until a `;`, a closing brace, or Eof is
// reached, consuming the `;` if that is what stopped it. No grammar
// production calls it: a malformed statement ends its block's
// delimited list instead, and top-level recovery uses syncToTop.
func (p *Parser) syncToStmtEnd() {
	for {
		if p.check(ast.TEof) || p.checkCloseDelim(ast.DelimBrace) {
			return
		}
		if p.eat(ast.TSemi) {
			return
		}
		p.advance()
	}
}

// syncToTop skips tokens until a point where another top-level item
// plausibly starts (one of the leading item keywords) or Eof.
func (p *Parser) syncToTop() {
	for {
		if p.check(ast.TEof) {
			return
		}
		if p.checkKeyword(span.Kw.Fn) || p.checkKeyword(span.Kw.Struct) ||
			p.checkKeyword(span.Kw.Enum) || p.checkKeyword(span.Kw.Mod) ||
			p.checkKeyword(span.Kw.Use) || p.checkKeyword(span.Kw.Pub) {
			return
		}
		p.advance()
	}
}

// ParseCrate parses the whole token stream as a flat list of items
// until Eof.
func (p *Parser) ParseCrate() *ast.Crate {
	start := p.cur.Span
	var items []*ast.Item
	for !p.check(ast.TEof) {
		before := p.cur
		item, ok := p.parseItem()
		if ok {
			items = append(items, item)
			continue
		}
		if p.cur == before {
			// no progress was made and no item was produced; this is a
			// genuine parse error at the top level rather than "no item
			// here, try another production".
			p.addError(ErrUnexpectedItem, "expected an item, found "+p.cur.Kind.String(), "expected one of: fn, struct, enum, mod, use")
			p.syncToTop()
		}
	}
	end := p.prev.Span
	crateSpan := start
	if len(items) > 0 {
		crateSpan = start.To(end)
	}
	return &ast.Crate{Items: items, Span: crateSpan}
}
