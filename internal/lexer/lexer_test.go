package lexer

import (
	"testing"

	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/span"
)

func lexAll(src string) ([]ast.Token, []LexError) {
	in := span.Global()
	l := NewWithInterner("test.rn", src, in)
	var toks []ast.Token
	for {
		tok := l.Advance()
		toks = append(toks, tok)
		if tok.Kind == ast.TEof {
			break
		}
	}
	return toks, l.Errors()
}

func TestMaximalMunch(t *testing.T) {
	cases := []struct {
		src  string
		kind ast.TokenKind
	}{
		{"<<=", ast.TBinOpEq},
		{">>", ast.TBinOp},
		{"-=", ast.TBinOpEq},
		{"->", ast.TRArrow},
		{"::", ast.TDoubleColon},
		{"<=", ast.TCondOp},
		{"<<", ast.TBinOp},
		{"&&", ast.TBinOp},
		{"&&=", ast.TBinOpEq},
		{"||", ast.TBinOp},
		{"==", ast.TCondOp},
		{"!=", ast.TCondOp},
	}
	for _, c := range cases {
		toks, errs := lexAll(c.src)
		if len(errs) != 0 {
			t.Fatalf("%q: unexpected errors %v", c.src, errs)
		}
		if len(toks) != 2 { // token + Eof
			t.Fatalf("%q: expected exactly one token before Eof, got %d", c.src, len(toks)-1)
		}
		if toks[0].Kind != c.kind {
			t.Fatalf("%q: got kind %v, want %v", c.src, toks[0].Kind, c.kind)
		}
	}
}

func TestShiftAndCompoundShift(t *testing.T) {
	toks, _ := lexAll("<<= >>=")
	if toks[0].Kind != ast.TBinOpEq || toks[0].Bin != ast.BinShl {
		t.Fatalf("<<=  got %+v", toks[0])
	}
	if toks[1].Kind != ast.TBinOpEq || toks[1].Bin != ast.BinShr {
		t.Fatalf(">>= got %+v", toks[1])
	}
}

func TestIdentVsKeywordVsBoolLiteral(t *testing.T) {
	toks, errs := lexAll("let true false foo")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[0].Kind != ast.TIdent || toks[0].Ident != span.Kw.Let {
		t.Fatalf("let: got %+v", toks[0])
	}
	if toks[1].Kind != ast.TLit || toks[1].Lit.Kind != ast.LitBool {
		t.Fatalf("true: expected Lit(Bool), got %+v", toks[1])
	}
	if toks[2].Kind != ast.TLit || toks[2].Lit.Kind != ast.LitBool {
		t.Fatalf("false: expected Lit(Bool), got %+v", toks[2])
	}
	if toks[3].Kind != ast.TIdent {
		t.Fatalf("foo: expected Ident, got %+v", toks[3])
	}
	if span.IsKeyword(toks[3].Ident) {
		t.Fatalf("foo: should not be a keyword")
	}
}

func TestNumberLiterals(t *testing.T) {
	toks, _ := lexAll("123 1.5 1..2")
	if toks[0].Lit.Kind != ast.LitInt {
		t.Fatalf("123: expected Int, got %+v", toks[0])
	}
	if toks[1].Lit.Kind != ast.LitFloat {
		t.Fatalf("1.5: expected Float, got %+v", toks[1])
	}
	// "1..2" must not be consumed as a float: a second '.' immediately
	// following the first stops float scanning (range-like syntax is
	// not otherwise supported by this grammar, but the lexer must not
	// eat two dots into one number).
	if toks[2].Lit.Kind != ast.LitInt {
		t.Fatalf("1..2: expected leading Int, got %+v", toks[2])
	}
	if toks[3].Kind != ast.TDot || toks[4].Kind != ast.TDot {
		t.Fatalf("1..2: expected two Dot tokens, got %+v %+v", toks[3], toks[4])
	}
}

func TestTupleIndexScan(t *testing.T) {
	in := span.NewInterner()
	l := NewWithInterner("t.rn", "x.0", in)
	ident := l.Advance()
	if ident.Kind != ast.TIdent {
		t.Fatalf("expected ident, got %+v", ident)
	}
	dot := l.Advance()
	if dot.Kind != ast.TDot {
		t.Fatalf("expected dot, got %+v", dot)
	}
	idx := l.AdvanceInt()
	if idx.Kind != ast.TLit || idx.Lit.Kind != ast.LitInt {
		t.Fatalf("expected Lit(Int) tuple index, got %+v", idx)
	}
	if in.Lookup(idx.Lit.Sym) != "0" {
		t.Fatalf("expected tuple index text %q, got %q", "0", in.Lookup(idx.Lit.Sym))
	}
}

func TestStringLiteralNoEscapes(t *testing.T) {
	in := span.NewInterner()
	l := NewWithInterner("t.rn", `"a\"b"`, in)
	tok := l.Advance()
	if tok.Kind != ast.TLit || tok.Lit.Kind != ast.LitStr {
		t.Fatalf("expected Lit(Str), got %+v", tok)
	}
	// No escape handling: the backslash terminates nothing special,
	// but the first unescaped '"' after it closes the string, so the
	// stored text is the raw bytes up to (not including) that quote.
	if got := in.Lookup(tok.Lit.Sym); got != `a\` {
		t.Fatalf("got %q", got)
	}
}

func TestUnterminatedStringIsNonFatal(t *testing.T) {
	toks, errs := lexAll(`"abc`)
	if len(errs) != 1 || errs[0].Code != ErrUnterminatedString {
		t.Fatalf("expected one %s error, got %v", ErrUnterminatedString, errs)
	}
	if toks[0].Kind != ast.TLit {
		t.Fatalf("expected a placeholder Lit token despite the error, got %+v", toks[0])
	}
	if toks[1].Kind != ast.TEof {
		t.Fatalf("expected Eof after the unterminated string, got %+v", toks[1])
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, errs := lexAll("/* never closed")
	if len(errs) != 1 || errs[0].Code != ErrUnterminatedComment {
		t.Fatalf("expected one %s error, got %v", ErrUnterminatedComment, errs)
	}
}

func TestInlineCommentSkipped(t *testing.T) {
	toks, errs := lexAll("let // trailing comment\nx")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(toks) != 3 { // let, x, Eof
		t.Fatalf("expected 2 real tokens, got %d", len(toks)-1)
	}
}

func TestSpanCoverage(t *testing.T) {
	src := "x+y*z;"
	toks, errs := lexAll(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for i := 0; i+2 < len(toks); i++ { // exclude trailing Eof
		if toks[i].Span.Hi != toks[i+1].Span.Lo {
			t.Fatalf("gap between tokens %d (%v) and %d (%v): source has no whitespace or comments between any tokens here",
				i, toks[i].Span, i+1, toks[i+1].Span)
		}
	}
}

func TestUnexpectedCharacterIsNonFatal(t *testing.T) {
	toks, errs := lexAll("let ` x")
	if len(errs) != 1 || errs[0].Code != ErrUnexpectedChar {
		t.Fatalf("expected one %s error, got %v", ErrUnexpectedChar, errs)
	}
	if toks[0].Kind != ast.TIdent || toks[1].Kind != ast.TIdent {
		t.Fatalf("expected scanning to continue past the bad character, got %+v", toks)
	}
}
