package span

// keywordStrings is the fixed pre-registration order: Empty and
// Wildcard first, then the reserved words in the exact order that
// defines the contiguous keyword Symbol range.
var keywordStrings = []string{
	"", "_",
	"let", "const", "if", "else", "while", "for", "in", "loop",
	"break", "continue", "return", "mod", "use", "fn", "struct", "enum",
	"pub", "true", "false", "as", "crate", "self", "Self", "super",
}

// kw holds the pre-interned Symbol for every reserved word, in the
// exact order keywordStrings registers them.
var kw = struct {
	Empty, Wildcard Symbol

	Let, Const, If, Else, While, For, In, Loop Symbol

	Break, Continue, Return, Mod, Use, Fn, Struct, Enum Symbol

	Pub, True, False, As, Crate, SelfValue, SelfType, Super Symbol
}{
	Empty: 0, Wildcard: 1,

	Let: 2, Const: 3, If: 4, Else: 5, While: 6, For: 7, In: 8, Loop: 9,

	Break: 10, Continue: 11, Return: 12, Mod: 13, Use: 14, Fn: 15, Struct: 16, Enum: 17,

	Pub: 18, True: 19, False: 20, As: 21, Crate: 22, SelfValue: 23, SelfType: 24, Super: 25,
}

// Kw exposes the pre-interned keyword Symbol constants.
var Kw = kw

// IsKeyword reports whether sym lies in the contiguous reserved-word
// range. Empty and Wildcard precede the range and are not keywords.
func IsKeyword(sym Symbol) bool {
	return sym >= Kw.Let && sym <= Kw.Super
}

// IsPathSegmentKeyword reports whether sym is one of the reserved
// words permitted as a non-initial path segment.
func IsPathSegmentKeyword(sym Symbol) bool {
	switch sym {
	case Kw.SelfValue, Kw.SelfType, Kw.Super, Kw.Crate:
		return true
	default:
		return false
	}
}
