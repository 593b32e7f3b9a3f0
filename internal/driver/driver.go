// Package driver ties the lexer, parser, and diagnostics packages
// together for a single source file: no semantic validation, no
// multi-file import graph, just "parse this file, hand back a Crate
// and the diagnostics that came out of doing so".
package driver

import (
	"os"

	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/diagnostics"
	"github.com/raccoon-lang/raccoon/internal/parser"
)

// ParseFile reads path from disk and parses it. A read failure is
// reported as a single diagnostic with a nil Crate; a lex/parse
// failure still returns the (possibly partial) Crate produced so far
// alongside the diagnostics describing what went wrong.
func ParseFile(path string) (*ast.Crate, []diagnostics.Diagnostic) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, []diagnostics.Diagnostic{{
			Severity: "error",
			Code:     "E_DRIVER_READ",
			Message:  err.Error(),
			File:     path,
			Hint:     "check that the file exists and is readable",
		}}
	}
	return ParseSource(path, string(src))
}

// ParseSource parses src as if it were loaded from path. path is used
// only for diagnostic attribution; no file I/O occurs. ParseFile
// delegates to it after reading the file, and tests call it directly.
func ParseSource(path, src string) (*ast.Crate, []diagnostics.Diagnostic) {
	crate, lexErrs, parseErrs := parser.Parse(path, src)

	var diags []diagnostics.Diagnostic
	for _, e := range lexErrs {
		diags = append(diags, diagnostics.Diagnostic{
			Severity: "error",
			Code:     e.Code,
			Message:  e.Message,
			File:     e.File,
			Offset:   int(e.Span.Lo),
			Hint:     e.Hint,
		})
	}
	for _, e := range parseErrs {
		diags = append(diags, diagnostics.Diagnostic{
			Severity: "error",
			Code:     e.Code,
			Message:  e.Message,
			File:     e.File,
			Offset:   int(e.Span.Lo),
			Hint:     e.Hint,
		})
	}
	return crate, diagnostics.SortAndDedupe(diags)
}
