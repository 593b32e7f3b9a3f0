package ast

import "github.com/raccoon-lang/raccoon/internal/span"

// TokenKind discriminates the kind of a Token. Go has no native tagged
// union, so the discriminant lives in Kind and the payload for that
// discriminant lives in the matching field below (CondOp, BinOp, UnOp,
// Lit, Delim, Ident) — exactly one of which is meaningful for any
// given Kind.
type TokenKind int

const (
	// comparison operators
	TCondOp TokenKind = iota
	// arithmetic/bitwise/logical binary operators
	TBinOp
	// a binary operator immediately followed by '=' (compound assign)
	TBinOpEq
	// unary operators: ! - ~
	TUnOp

	// single-character punctuation
	TEq          // =
	TDot         // .
	TComma       // ,
	TSemi        // ;
	TColon       // :
	TDoubleColon // ::
	TQuote       // "
	TRArrow      // ->
	THash        // #

	TLit
	TOpenDelim
	TCloseDelim
	TIdent

	TEof
	TDummy
)

var tokenKindNames = [...]string{
	TCondOp: "CondOp", TBinOp: "BinOp", TBinOpEq: "BinOpEq", TUnOp: "UnOp",
	TEq: "Eq", TDot: "Dot", TComma: "Comma", TSemi: "Semi", TColon: "Colon",
	TDoubleColon: "DoubleColon", TQuote: "Quote", TRArrow: "RArrow", THash: "Hash",
	TLit: "Lit", TOpenDelim: "OpenDelim", TCloseDelim: "CloseDelim", TIdent: "Ident",
	TEof: "Eof", TDummy: "Dummy",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "Unknown"
}

// CondOp enumerates the comparison operators.
type CondOp int

const (
	CondEq CondOp = iota
	CondNe
	CondLt
	CondLe
	CondGt
	CondGe
)

// BinOp enumerates binary operators, including the two short-circuit
// logical operators, which the lexer's disambiguation table treats
// uniformly with the bitwise/arithmetic operators.
type BinOp int

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
	BinAnd
	BinOr

	// Comparison operators. The lexer keeps these in the separate
	// CondOp enum (mirroring the source's own token-level split), but
	// the expression grammar folds them into the same Binary node as
	// every other binary operator, so BinOp carries them too.
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
)

// FromCondOp maps a comparison token's CondOp payload onto the
// corresponding BinOp variant used in a Binary expression node.
func FromCondOp(c CondOp) BinOp {
	switch c {
	case CondEq:
		return BinEq
	case CondNe:
		return BinNe
	case CondLt:
		return BinLt
	case CondLe:
		return BinLe
	case CondGt:
		return BinGt
	default:
		return BinGe
	}
}

// UnOp enumerates unary operators. The lexer only ever produces Not
// for the current grammar (see parseUnary in the parser); Neg and BitNot
// are declared for completeness of the sum type but are unreachable
// from the lexer today.
type UnOp int

const (
	UnNot UnOp = iota
	UnNeg
	UnBitNot
)

// Delimiter enumerates the three bracket families.
type Delimiter int

const (
	DelimParen Delimiter = iota
	DelimBracket
	DelimBrace
)

// LitKind enumerates literal token kinds.
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitStr
	LitBool
)

// Lit is a literal token payload: its kind and the interned text.
type Lit struct {
	Kind LitKind
	Sym  span.Symbol
}

// Token is (kind, span) plus whichever payload field Kind selects.
type Token struct {
	Kind  TokenKind
	Span  span.Span
	Cond  CondOp
	Bin   BinOp
	Un    UnOp
	Lit   Lit
	Delim Delimiter
	Ident span.Symbol
}

// Dummy is the zero-value placeholder token the parser primes its
// lookahead window with before the first real advance.
func Dummy() Token {
	return Token{Kind: TDummy, Span: span.DummySpan}
}

func (t Token) IsEof() bool {
	return t.Kind == TEof
}
