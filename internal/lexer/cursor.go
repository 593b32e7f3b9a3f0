package lexer

import "github.com/raccoon-lang/raccoon/internal/span"

// cursor is a peekable stream of Unicode scalar values over source
// text, plus each rune's byte length and a running byte offset —
// enough to recover the current byte offset without re-walking
// consumed runes.
type cursor struct {
	runes    []rune
	byteLens []int // byte length of each rune in runes, same index
	idx      int    // index into runes of the next unconsumed rune
	bytePos  int    // byte offset corresponding to idx
}

func newCursor(src string) *cursor {
	runes := make([]rune, 0, len(src))
	lens := make([]int, 0, len(src))
	for _, r := range src {
		runes = append(runes, r)
		lens = append(lens, runeLen(r))
	}
	return &cursor{runes: runes, byteLens: lens}
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// pos returns the current byte offset.
func (c *cursor) pos() span.BytePos {
	return span.BytePos(c.bytePos)
}

// isEof reports whether the cursor has consumed every rune.
func (c *cursor) isEof() bool {
	return c.idx >= len(c.runes)
}

// peekChar returns the next unconsumed rune without advancing, or 0
// at end of input.
func (c *cursor) peekChar() rune {
	if c.isEof() {
		return 0
	}
	return c.runes[c.idx]
}

// peekCharAt looks n runes ahead of the current position (0 == peekChar).
func (c *cursor) peekCharAt(n int) rune {
	i := c.idx + n
	if i < 0 || i >= len(c.runes) {
		return 0
	}
	return c.runes[i]
}

// bump consumes and returns one rune, or 0 at end of input.
func (c *cursor) bump() rune {
	if c.isEof() {
		return 0
	}
	r := c.runes[c.idx]
	c.bytePos += c.byteLens[c.idx]
	c.idx++
	return r
}

// bumpBy consumes n runes.
func (c *cursor) bumpBy(n int) {
	for i := 0; i < n && !c.isEof(); i++ {
		c.bump()
	}
}
