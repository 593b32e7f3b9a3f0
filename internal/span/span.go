// Package span defines byte-offset source ranges and the interned
// Symbol identity used throughout the lexer, parser, and AST.
package span

import "fmt"

// BytePos is a non-negative byte offset into a source buffer.
type BytePos uint32

// Add returns the position advanced by n bytes.
func (p BytePos) Add(n uint32) BytePos {
	return p + BytePos(n)
}

// Sub returns the distance in bytes from other to p.
func (p BytePos) Sub(other BytePos) BytePos {
	return p - other
}

// Span is a half-open byte range [Lo, Hi) into a source buffer.
type Span struct {
	Lo BytePos
	Hi BytePos
}

// DummySpan marks a synthetic token with no real source location.
var DummySpan = Span{Lo: 0, Hi: 0}

// IsDummy reports whether s is the dummy span.
func (s Span) IsDummy() bool {
	return s == DummySpan
}

// To joins s with other, producing the span from s.Lo to other.Hi.
func (s Span) To(other Span) Span {
	return Span{Lo: s.Lo, Hi: other.Hi}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Lo, s.Hi)
}

// NewSpan builds a span, asserting the well-formedness invariant lo <= hi.
func NewSpan(lo, hi BytePos) Span {
	if hi < lo {
		panic(fmt.Sprintf("span: hi %d < lo %d", hi, lo))
	}
	return Span{Lo: lo, Hi: hi}
}
