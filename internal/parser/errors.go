package parser

import (
	"fmt"

	"github.com/raccoon-lang/raccoon/internal/span"
)

const (
	ErrExpectedToken   = "E_PARSE_EXPECTED_TOKEN"
	ErrExpectedKeyword = "E_PARSE_EXPECTED_KEYWORD"
	ErrExpectedIdent   = "E_PARSE_EXPECTED_IDENT"
	ErrUnexpectedItem  = "E_PARSE_UNEXPECTED_ITEM"
	ErrInvalidExpr     = "E_PARSE_INVALID_EXPR"
)

// ParseError captures a parser diagnostic. Unlike the first-failure
// bailout this grammar started from, parse errors are accumulated and
// parsing continues: a delimited list stops at its first missing
// separator, and at the top level (or inside an inline `mod`) the
// parser skips ahead to the next item keyword or Eof.
type ParseError struct {
	Code    string
	Message string
	Hint    string
	File    string
	Span    span.Span
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s %s:%s %s", e.Code, e.File, e.Span, e.Message)
}
