package ast

import "github.com/raccoon-lang/raccoon/internal/span"

// Crate is the root AST node: an ordered list of top-level items.
type Crate struct {
	Items []*Item
	Span  span.Span
}

// Visibility is an item's declared visibility.
type Visibility int

const (
	VisInherited Visibility = iota
	VisPublic
	VisCrate
)

// Item is (vis, ident, kind, span).
type Item struct {
	Vis   Visibility
	Ident span.Ident
	Kind  ItemKind
	Span  span.Span
}

// ItemKind marks the kind-specific payload of an Item.
type ItemKind interface {
	itemKindNode()
}

// ModKind marks the body of a ModItem: either Loaded with inline
// items, or Unloaded, deferring to an external file a later pass must
// load (out of scope here — see driver.ParseFile).
type ModKind interface {
	modKindNode()
}

// ModLoaded is a module with an inline brace body.
type ModLoaded struct {
	Items  []*Item
	Inline bool
	Span   span.Span
}

func (*ModLoaded) modKindNode() {}

// ModUnloaded is a module declared with `mod name;`, body elsewhere.
type ModUnloaded struct{}

func (ModUnloaded) modKindNode() {}

// ModItem is `mod name { ... }` or `mod name;`.
type ModItem struct {
	Kind ModKind
}

func (*ModItem) itemKindNode() {}

// UseTreeKind marks the tail shape of a use tree.
type UseTreeKind interface {
	useTreeKindNode()
}

// UseSingle is a plain or renamed leaf of a use tree: `path` or
// `path as name`.
type UseSingle struct {
	Rename *span.Ident
}

func (*UseSingle) useTreeKindNode() {}

// UseNested is `path::{a, b, c}`.
type UseNested struct {
	Children []*UseTree
}

func (*UseNested) useTreeKindNode() {}

// UseGlob is `path::*`.
type UseGlob struct{}

func (UseGlob) useTreeKindNode() {}

// UseTree is a module-style import path with a tail kind.
type UseTree struct {
	Base Path
	Kind UseTreeKind
	Span span.Span
}

// UseItem is `use <tree>;`. The enclosing Item's ident is Empty.
type UseItem struct {
	Tree *UseTree
}

func (*UseItem) itemKindNode() {}

// Param is a function parameter: `pat : ty`.
type Param struct {
	Pat  *Pat
	Ty   *Ty
	Span span.Span
}

// FnSig is a function's parameter list and optional return type.
type FnSig struct {
	Params []Param
	RetTy  *Ty
	Span   span.Span
}

// FnItem is `fn name(params) -> ret { body }`.
type FnItem struct {
	Sig  FnSig
	Body *Block
}

func (*FnItem) itemKindNode() {}

// StructFields marks the field shape of a struct.
type StructFields interface {
	structFieldsNode()
}

// TupleField is one element of a tuple struct: `vis ty`.
type TupleField struct {
	Vis  Visibility
	Ty   *Ty
	Span span.Span
}

// StructFieldsTuple is `struct Name(vis ty, ...);`.
type StructFieldsTuple struct {
	Fields []TupleField
}

func (*StructFieldsTuple) structFieldsNode() {}

// NamedField is one field of a record struct: `vis ident : ty`.
type NamedField struct {
	Vis   Visibility
	Ident span.Ident
	Ty    *Ty
	Span  span.Span
}

// StructFieldsNamed is `struct Name { vis ident : ty, ... }`.
type StructFieldsNamed struct {
	Fields []NamedField
}

func (*StructFieldsNamed) structFieldsNode() {}

// StructFieldsUnit is `struct Name;`.
type StructFieldsUnit struct{}

func (StructFieldsUnit) structFieldsNode() {}

// StructItem is a struct declaration.
type StructItem struct {
	Fields StructFields
}

func (*StructItem) itemKindNode() {}

// EnumVariantFields marks the field shape of an enum variant.
type EnumVariantFields interface {
	enumVariantFieldsNode()
}

// EnumVariantTuple is `Name(ty, ...)`.
type EnumVariantTuple struct {
	Fields []*Ty
}

func (*EnumVariantTuple) enumVariantFieldsNode() {}

// EnumVariantStruct is `Name { ident : ty, ... }`.
type EnumVariantStruct struct {
	Fields []NamedField
}

func (*EnumVariantStruct) enumVariantFieldsNode() {}

// EnumVariantUnit is a bare `Name` variant.
type EnumVariantUnit struct{}

func (EnumVariantUnit) enumVariantFieldsNode() {}

// EnumVariant is one arm of an enum.
type EnumVariant struct {
	Ident  span.Ident
	Fields EnumVariantFields
	Span   span.Span
}

// EnumItem is `enum Name { variant, ... }` or `enum Name;` (Variants
// is nil for the declaration-only form).
type EnumItem struct {
	Variants []EnumVariant
}

func (*EnumItem) itemKindNode() {}

// TyKind marks the shape of a Ty node.
type TyKind interface {
	tyKindNode()
}

// TyArray is `[elem]`.
type TyArray struct {
	Elem *Ty
}

func (*TyArray) tyKindNode() {}

// TyTuple is `(t1, t2, ...)` with arity >= 2 (`()` is TyUnit).
type TyTuple struct {
	Elems []*Ty
}

func (*TyTuple) tyKindNode() {}

// TyParen is a single parenthesized type.
type TyParen struct {
	Inner *Ty
}

func (*TyParen) tyKindNode() {}

// TyInfer is the `_` placeholder type.
type TyInfer struct{}

func (TyInfer) tyKindNode() {}

// TyImplicitSelf is the implicit `self` receiver type in a method
// parameter position.
type TyImplicitSelf struct{}

func (TyImplicitSelf) tyKindNode() {}

// TyPath is a named type reference.
type TyPath struct {
	Path Path
}

func (*TyPath) tyKindNode() {}

// TyUnit is `()`.
type TyUnit struct{}

func (TyUnit) tyKindNode() {}

// TyBad stands in for a type production that failed to parse.
type TyBad struct{}

func (TyBad) tyKindNode() {}

// Ty is (kind, span).
type Ty struct {
	Kind TyKind
	Span span.Span
}

// Block is a brace-delimited ordered statement list.
//
// The statement separator is the same comma used by every other
// delimited-list production in this grammar (struct/enum bodies, call
// arguments); it is not `;`, so a multi-statement block without commas
// between statements fails to parse. A Let consumes its required
// trailing `;` and an expression statement consumes an optional one,
// which is why single-statement and Let-only blocks read naturally
// despite this.
type Block struct {
	Stmts []Stmt
	Span  span.Span
}

// Stmt marks a statement node inside a Block.
type Stmt interface {
	stmtNode()
}

// StmtItem wraps a nested item declaration as a statement.
type StmtItem struct {
	Item *Item
}

func (*StmtItem) stmtNode() {}

// Let is `let pat (: ty)? (= expr)? ;`.
type Let struct {
	Pat  *Pat
	Ty   *Ty
	Init Expr
	Span span.Span
}

// StmtLet wraps a Let binding as a statement.
type StmtLet struct {
	Let *Let
}

func (*StmtLet) stmtNode() {}

// StmtExpr is a bare expression used as a statement.
type StmtExpr struct {
	Expr Expr
}

func (*StmtExpr) stmtNode() {}

// StmtSemi is a design slot: the grammar does not currently produce
// this variant (see Stmt kind discussion in the block-statement
// production), but it is retained in the sum type for a future pass
// that distinguishes a trailing-`;` expression statement from a
// tail expression.
type StmtSemi struct {
	Expr Expr
}

func (*StmtSemi) stmtNode() {}

// StmtEmpty is a bare `;` with no payload.
type StmtEmpty struct {
	Span span.Span
}

func (*StmtEmpty) stmtNode() {}

// PatKind marks the shape of a Pat node.
type PatKind interface {
	patKindNode()
}

// PatIdent is a binding pattern: a bare identifier.
type PatIdent struct {
	Ident span.Ident
}

func (*PatIdent) patKindNode() {}

// PatTuple is `(p1, p2, ...)`.
type PatTuple struct {
	Elems []*Pat
}

func (*PatTuple) patKindNode() {}

// PatPath is a bare path pattern, e.g. a unit-struct or unit-variant
// match target.
type PatPath struct {
	Path Path
}

func (*PatPath) patKindNode() {}

// PatFieldShorthand is one field of a struct pattern: `ident` or
// `ident: pat`.
type PatFieldShorthand struct {
	Ident span.Ident
	Pat   *Pat
	Span  span.Span
}

// PatStruct is `Path { field, ... }`.
type PatStruct struct {
	Path   Path
	Fields []PatFieldShorthand
}

func (*PatStruct) patKindNode() {}

// PatEnum is `Path(p1, p2, ...)`, a tuple-variant destructure.
type PatEnum struct {
	Path  Path
	Elems []*Pat
}

func (*PatEnum) patKindNode() {}

// PatSlice is `[p1, p2, ...]`.
type PatSlice struct {
	Elems []*Pat
}

func (*PatSlice) patKindNode() {}

// PatBad stands in for a pattern production that failed to parse.
type PatBad struct{}

func (PatBad) patKindNode() {}

// Pat is (kind, span).
type Pat struct {
	Kind PatKind
	Span span.Span
}

// PathSegment is one `ident` in a qualified path.
type PathSegment struct {
	Ident span.Ident
	Span  span.Span
}

// Path is a non-empty, `::`-separated sequence of segments.
type Path struct {
	Segments []PathSegment
	Span     span.Span
}

// Expr marks an expression node.
type Expr interface {
	exprNode()
}

// ExprLit is a literal expression.
type ExprLit struct {
	Lit  Lit
	Span span.Span
}

func (*ExprLit) exprNode() {}

// ExprBinary is `lhs op rhs` for a plain binary operator.
type ExprBinary struct {
	Op   BinOp
	Lhs  Expr
	Rhs  Expr
	Span span.Span
}

func (*ExprBinary) exprNode() {}

// ExprAssign is `lhs = rhs`.
type ExprAssign struct {
	Lhs  Expr
	Rhs  Expr
	Span span.Span
}

func (*ExprAssign) exprNode() {}

// ExprAssignOp is `lhs op= rhs`, e.g. `lhs += rhs`.
type ExprAssignOp struct {
	Op   BinOp
	Lhs  Expr
	Rhs  Expr
	Span span.Span
}

func (*ExprAssignOp) exprNode() {}

// ExprUnary is a prefix unary operator applied to an expression.
type ExprUnary struct {
	Op   UnOp
	X    Expr
	Span span.Span
}

func (*ExprUnary) exprNode() {}

// ExprPath is a bare path used as an expression (variable/const/unit
// reference).
type ExprPath struct {
	Path Path
	Span span.Span
}

func (*ExprPath) exprNode() {}

// ExprCall is `callee(args...)`.
type ExprCall struct {
	Callee Expr
	Args   []Expr
	Span   span.Span
}

func (*ExprCall) exprNode() {}

// ExprIndex is `x { index }` — see the brace-not-bracket open question
// recorded against the block-vs-index grammar collision.
type ExprIndex struct {
	X     Expr
	Index Expr
	Span  span.Span
}

func (*ExprIndex) exprNode() {}

// ExprField is `x.ident` or the tuple-index form `x.0`.
type ExprField struct {
	X     Expr
	Field span.Ident
	Span  span.Span
}

func (*ExprField) exprNode() {}

// StructExprField is one `ident: expr` (or shorthand `ident`) in a
// `#{ ... }` struct literal.
type StructExprField struct {
	Ident span.Ident
	Value Expr
	Span  span.Span
}

// ExprStruct is `#{ field, ... }`.
type ExprStruct struct {
	Fields []StructExprField
	Span   span.Span
}

func (*ExprStruct) exprNode() {}

// ExprTuple is `(e1, e2, ...)` with arity != 1 (arity 0 is the unit
// expression, arity 1 collapses to ExprParen).
type ExprTuple struct {
	Elems []Expr
	Span  span.Span
}

func (*ExprTuple) exprNode() {}

// ExprArray is `[e1, e2, ...]`.
type ExprArray struct {
	Elems []Expr
	Span  span.Span
}

func (*ExprArray) exprNode() {}

// ExprBlock wraps a Block used in expression position.
type ExprBlock struct {
	Block *Block
	Span  span.Span
}

func (*ExprBlock) exprNode() {}

// ExprIf is `if cond block (else ...)?`. Else, when present, is
// either another ExprIf (else-if chains) or an ExprBlock.
type ExprIf struct {
	Cond Expr
	Then *Block
	Else Expr
	Span span.Span
}

func (*ExprIf) exprNode() {}

// ExprLoop is `loop block`.
type ExprLoop struct {
	Body *Block
	Span span.Span
}

func (*ExprLoop) exprNode() {}

// ExprWhile is `while cond block`.
type ExprWhile struct {
	Cond Expr
	Body *Block
	Span span.Span
}

func (*ExprWhile) exprNode() {}

// ExprFor is `for pat in iter block`.
type ExprFor struct {
	Pat  *Pat
	Iter Expr
	Body *Block
	Span span.Span
}

func (*ExprFor) exprNode() {}

// MatchArm is one `pat => expr` arm of a match expression. Present in
// the AST to keep the sum type complete, but no parser production
// currently constructs either MatchArm or ExprMatch (see the
// incomplete match grammar open question).
type MatchArm struct {
	Pat  *Pat
	Body Expr
	Span span.Span
}

// ExprMatch is `match scrutinee { arm, ... }`. No parser production
// currently builds this node.
type ExprMatch struct {
	Scrutinee Expr
	Arms      []MatchArm
	Span      span.Span
}

func (*ExprMatch) exprNode() {}

// ExprReturn is `return expr?`.
type ExprReturn struct {
	Value Expr
	Span  span.Span
}

func (*ExprReturn) exprNode() {}

// ExprBreak is `break expr?`.
type ExprBreak struct {
	Value Expr
	Span  span.Span
}

func (*ExprBreak) exprNode() {}

// ExprContinue is `continue`.
type ExprContinue struct {
	Span span.Span
}

func (*ExprContinue) exprNode() {}

// ExprParen is a single parenthesized expression, distinct from the
// zero/multi-arity ExprTuple.
type ExprParen struct {
	X    Expr
	Span span.Span
}

func (*ExprParen) exprNode() {}

// ExprBad stands in for an expression production that failed to
// parse, so callers that always need an Expr (a statement, a call
// argument) can keep going after recording the real ParseError.
type ExprBad struct {
	Span span.Span
}

func (*ExprBad) exprNode() {}
