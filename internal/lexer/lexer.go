// Package lexer implements the hand-written scanner that turns source
// text into a stream of ast.Token values for the parser.
package lexer

import (
	"strings"
	"unicode"

	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/span"
)

// Lexer scans one source buffer into tokens on demand.
type Lexer struct {
	path string
	cur  *cursor
	in   *span.Interner

	errs []LexError
}

// New returns a lexer over src, interning identifiers and literals
// against the process-wide global Interner.
func New(path, src string) *Lexer {
	return NewWithInterner(path, src, nil)
}

// NewWithInterner returns a lexer that interns against in instead of
// the global Interner. Passing nil behaves like New. Bool-literal
// recognition compares Symbols against span.Kw, so it is correct only
// when in assigns the keyword table its fixed indices (as span.Global
// does); an interner from span.NewInterner starts empty and does not.
func NewWithInterner(path, src string, in *span.Interner) *Lexer {
	return &Lexer{path: path, cur: newCursor(src), in: in}
}

// Errors returns the lex errors accumulated so far.
func (l *Lexer) Errors() []LexError {
	return l.errs
}

// Checkpoint is an opaque cursor position the parser can rewind to,
// used where a token boundary ambiguity (e.g. a `::` that may or may
// not belong to the surrounding path) can only be resolved by looking
// one token further ahead than the one-token window the grammar
// otherwise needs.
type Checkpoint struct {
	idx     int
	bytePos int
}

// Mark returns a Checkpoint for the cursor's current position.
func (l *Lexer) Mark() Checkpoint {
	return Checkpoint{idx: l.cur.idx, bytePos: l.cur.bytePos}
}

// Reset rewinds the cursor to a previously captured Checkpoint.
func (l *Lexer) Reset(c Checkpoint) {
	l.cur.idx = c.idx
	l.cur.bytePos = c.bytePos
}

// TruncateErrors discards any errors recorded after the first n,
// undoing diagnostics produced by a speculative scan that a Reset
// then rewound.
func (l *Lexer) TruncateErrors(n int) {
	l.errs = l.errs[:n]
}

func (l *Lexer) intern(s string) span.Symbol {
	if l.in != nil {
		return l.in.Intern(s)
	}
	return span.Intern(s)
}

func (l *Lexer) addError(code, msg, hint string, sp span.Span) {
	l.errs = append(l.errs, LexError{Code: code, Message: msg, Hint: hint, File: l.path, Span: sp})
}

// Advance scans and returns the next token, or an Eof token at end of
// input. Whitespace and comments are skipped silently; scanning
// recurses (via the outer loop) to produce the next real token.
func (l *Lexer) Advance() ast.Token {
	for {
		l.skipWhitespace()

		if l.cur.isEof() {
			pos := l.cur.pos()
			return ast.Token{Kind: ast.TEof, Span: span.Span{Lo: pos, Hi: pos}}
		}

		start := l.cur.pos()
		r := l.cur.peekChar()

		switch {
		case r == '/' && l.cur.peekCharAt(1) == '/':
			l.skipInlineComment()
			continue
		case r == '/' && l.cur.peekCharAt(1) == '*':
			l.skipBlockComment(start)
			continue
		case isIdentStart(r):
			return l.scanIdentOrKeyword(start)
		case unicode.IsDigit(r):
			return l.scanNumber(start, true)
		case r == '"':
			return l.scanStringLit(start)
		}

		if tok, ok := l.scanOperatorOrPunct(start); ok {
			return tok
		}

		l.cur.bump()
		errSpan := span.Span{Lo: start, Hi: l.cur.pos()}
		l.addError(ErrUnexpectedChar, "unexpected character", "remove or replace the character", errSpan)
		continue
	}
}

// PeekIsDigit reports whether the next unconsumed character is a
// digit (unicode.IsDigit, the same test scanNumber uses), without
// consuming it. The parser uses this immediately
// after a Dot token to choose between a normal Advance (field name) and
// an AdvanceInt (tuple-index field).
func (l *Lexer) PeekIsDigit() bool {
	return unicode.IsDigit(l.cur.peekChar())
}

// AdvanceInt scans a bare run of digits as Lit(Int), without float
// lexing — used by the parser to harvest a tuple-index field name
// like the `0` in `x.0` immediately after consuming a Dot token,
// without re-entering the normal token stream.
func (l *Lexer) AdvanceInt() ast.Token {
	start := l.cur.pos()
	return l.scanNumber(start, false)
}

func (l *Lexer) skipWhitespace() {
	for {
		r := l.cur.peekChar()
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			l.cur.bump()
			continue
		}
		return
	}
}

func (l *Lexer) skipInlineComment() {
	for {
		r := l.cur.peekChar()
		if r == 0 && l.cur.isEof() {
			return
		}
		if r == '\n' {
			return
		}
		l.cur.bump()
	}
}

func (l *Lexer) skipBlockComment(start span.BytePos) {
	l.cur.bumpBy(2) // consume "/*"
	for {
		if l.cur.isEof() {
			l.addError(ErrUnterminatedComment, "unterminated block comment", "close the comment with '*/'", span.Span{Lo: start, Hi: l.cur.pos()})
			return
		}
		if l.cur.peekChar() == '*' && l.cur.peekCharAt(1) == '/' {
			l.cur.bumpBy(2)
			return
		}
		l.cur.bump()
	}
}

func (l *Lexer) scanIdentOrKeyword(start span.BytePos) ast.Token {
	var b strings.Builder
	for isIdentCont(l.cur.peekChar()) {
		b.WriteRune(l.cur.bump())
	}
	sym := l.intern(b.String())
	sp := span.Span{Lo: start, Hi: l.cur.pos()}
	if sym == span.Kw.True {
		return ast.Token{Kind: ast.TLit, Lit: ast.Lit{Kind: ast.LitBool, Sym: sym}, Span: sp}
	}
	if sym == span.Kw.False {
		return ast.Token{Kind: ast.TLit, Lit: ast.Lit{Kind: ast.LitBool, Sym: sym}, Span: sp}
	}
	return ast.Token{Kind: ast.TIdent, Ident: sym, Span: sp}
}

func (l *Lexer) scanNumber(start span.BytePos, scanFloat bool) ast.Token {
	var b strings.Builder
	for unicode.IsDigit(l.cur.peekChar()) {
		b.WriteRune(l.cur.bump())
	}
	isFloat := false
	if scanFloat && l.cur.peekChar() == '.' && l.cur.peekCharAt(1) != '.' {
		isFloat = true
		b.WriteRune(l.cur.bump()) // '.'
		for unicode.IsDigit(l.cur.peekChar()) {
			b.WriteRune(l.cur.bump())
		}
	}
	sym := l.intern(b.String())
	sp := span.Span{Lo: start, Hi: l.cur.pos()}
	kind := ast.LitInt
	if isFloat {
		kind = ast.LitFloat
	}
	return ast.Token{Kind: ast.TLit, Lit: ast.Lit{Kind: kind, Sym: sym}, Span: sp}
}

func (l *Lexer) scanStringLit(start span.BytePos) ast.Token {
	l.cur.bump() // opening quote
	var b strings.Builder
	for {
		if l.cur.isEof() {
			l.addError(ErrUnterminatedString, "unterminated string literal", "close the string with '\"'", span.Span{Lo: start, Hi: l.cur.pos()})
			break
		}
		r := l.cur.peekChar()
		if r == '"' {
			l.cur.bump()
			break
		}
		b.WriteRune(l.cur.bump())
	}
	sym := l.intern(b.String())
	sp := span.Span{Lo: start, Hi: l.cur.pos()}
	return ast.Token{Kind: ast.TLit, Lit: ast.Lit{Kind: ast.LitStr, Sym: sym}, Span: sp}
}

// scanOperatorOrPunct implements the maximal-munch disambiguation
// table for every multi-character operator prefix plus the
// unambiguous single-character punctuation.
func (l *Lexer) scanOperatorOrPunct(start span.BytePos) (ast.Token, bool) {
	mk := func(kind ast.TokenKind) ast.Token {
		return ast.Token{Kind: kind, Span: span.Span{Lo: start, Hi: l.cur.pos()}}
	}
	mkCond := func(c ast.CondOp) ast.Token {
		t := mk(ast.TCondOp)
		t.Cond = c
		return t
	}
	mkBin := func(b ast.BinOp) ast.Token {
		t := mk(ast.TBinOp)
		t.Bin = b
		return t
	}
	mkBinEq := func(b ast.BinOp) ast.Token {
		t := mk(ast.TBinOpEq)
		t.Bin = b
		return t
	}
	mkUn := func(u ast.UnOp) ast.Token {
		t := mk(ast.TUnOp)
		t.Un = u
		return t
	}
	mkDelim := func(kind ast.TokenKind, d ast.Delimiter) ast.Token {
		t := mk(kind)
		t.Delim = d
		return t
	}

	switch l.cur.peekChar() {
	case '=':
		l.cur.bump()
		if l.cur.peekChar() == '=' {
			l.cur.bump()
			return mkCond(ast.CondEq), true
		}
		return mk(ast.TEq), true

	case '+':
		l.cur.bump()
		if l.cur.peekChar() == '=' {
			l.cur.bump()
			return mkBinEq(ast.BinAdd), true
		}
		return mkBin(ast.BinAdd), true

	case '-':
		l.cur.bump()
		switch l.cur.peekChar() {
		case '=':
			l.cur.bump()
			return mkBinEq(ast.BinSub), true
		case '>':
			l.cur.bump()
			return mk(ast.TRArrow), true
		}
		return mkBin(ast.BinSub), true

	case '*':
		l.cur.bump()
		if l.cur.peekChar() == '=' {
			l.cur.bump()
			return mkBinEq(ast.BinMul), true
		}
		return mkBin(ast.BinMul), true

	case '/':
		l.cur.bump()
		if l.cur.peekChar() == '=' {
			l.cur.bump()
			return mkBinEq(ast.BinDiv), true
		}
		return mkBin(ast.BinDiv), true

	case '%':
		l.cur.bump()
		if l.cur.peekChar() == '=' {
			l.cur.bump()
			return mkBinEq(ast.BinRem), true
		}
		return mkBin(ast.BinRem), true

	case '^':
		l.cur.bump()
		if l.cur.peekChar() == '=' {
			l.cur.bump()
			return mkBinEq(ast.BinBitXor), true
		}
		return mkBin(ast.BinBitXor), true

	case '!':
		l.cur.bump()
		if l.cur.peekChar() == '=' {
			l.cur.bump()
			return mkCond(ast.CondNe), true
		}
		return mkUn(ast.UnNot), true

	case ':':
		l.cur.bump()
		if l.cur.peekChar() == ':' {
			l.cur.bump()
			return mk(ast.TDoubleColon), true
		}
		return mk(ast.TColon), true

	case '&':
		l.cur.bump()
		if l.cur.peekChar() == '&' {
			l.cur.bump()
			if l.cur.peekChar() == '=' {
				l.cur.bump()
				return mkBinEq(ast.BinAnd), true
			}
			return mkBin(ast.BinAnd), true
		}
		if l.cur.peekChar() == '=' {
			l.cur.bump()
			return mkBinEq(ast.BinBitAnd), true
		}
		return mkBin(ast.BinBitAnd), true

	case '|':
		l.cur.bump()
		if l.cur.peekChar() == '|' {
			l.cur.bump()
			if l.cur.peekChar() == '=' {
				l.cur.bump()
				return mkBinEq(ast.BinOr), true
			}
			return mkBin(ast.BinOr), true
		}
		if l.cur.peekChar() == '=' {
			l.cur.bump()
			return mkBinEq(ast.BinBitOr), true
		}
		return mkBin(ast.BinBitOr), true

	case '<':
		l.cur.bump()
		switch l.cur.peekChar() {
		case '=':
			l.cur.bump()
			return mkCond(ast.CondLe), true
		case '<':
			l.cur.bump()
			if l.cur.peekChar() == '=' {
				l.cur.bump()
				return mkBinEq(ast.BinShl), true
			}
			return mkBin(ast.BinShl), true
		}
		return mkCond(ast.CondLt), true

	case '>':
		l.cur.bump()
		switch l.cur.peekChar() {
		case '=':
			l.cur.bump()
			return mkCond(ast.CondGe), true
		case '>':
			l.cur.bump()
			if l.cur.peekChar() == '=' {
				l.cur.bump()
				return mkBinEq(ast.BinShr), true
			}
			return mkBin(ast.BinShr), true
		}
		return mkCond(ast.CondGt), true

	case '.':
		l.cur.bump()
		return mk(ast.TDot), true
	case ',':
		l.cur.bump()
		return mk(ast.TComma), true
	case ';':
		l.cur.bump()
		return mk(ast.TSemi), true
	case '#':
		l.cur.bump()
		return mk(ast.THash), true
	case '(':
		l.cur.bump()
		return mkDelim(ast.TOpenDelim, ast.DelimParen), true
	case ')':
		l.cur.bump()
		return mkDelim(ast.TCloseDelim, ast.DelimParen), true
	case '{':
		l.cur.bump()
		return mkDelim(ast.TOpenDelim, ast.DelimBrace), true
	case '}':
		l.cur.bump()
		return mkDelim(ast.TCloseDelim, ast.DelimBrace), true
	case '[':
		l.cur.bump()
		return mkDelim(ast.TOpenDelim, ast.DelimBracket), true
	case ']':
		l.cur.bump()
		return mkDelim(ast.TCloseDelim, ast.DelimBracket), true
	}

	return ast.Token{}, false
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}
