package lexer

import (
	"fmt"

	"github.com/raccoon-lang/raccoon/internal/span"
)

const (
	ErrUnterminatedString  = "E_LEX_UNTERMINATED_STRING"
	ErrUnterminatedComment = "E_LEX_UNTERMINATED_COMMENT"
	ErrUnexpectedChar      = "E_LEX_UNEXPECTED_CHAR"
)

// LexError captures a lexer diagnostic. Unlike the grammar this front
// end started from, lex errors no longer abort the process: they are
// accumulated on the Lexer and the scan continues so the parser still
// gets a token stream to work with: an unterminated string still
// yields its Lit(Str) token, while an unterminated block comment or an
// unexpected character yields no token of its own.
type LexError struct {
	Code    string
	Message string
	Hint    string
	File    string
	Span    span.Span
}

func (e LexError) Error() string {
	return fmt.Sprintf("%s %s:%s %s", e.Code, e.File, e.Span, e.Message)
}
