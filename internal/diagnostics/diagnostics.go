// Package diagnostics defines the canonical diagnostic shape the lexer
// and parser's accumulated errors are converted into at the driver
// boundary, plus deterministic ordering for reporting.
package diagnostics

import (
	"sort"
	"strconv"
)

// Related points to a secondary source location relevant to a
// diagnostic, e.g. the opening delimiter an "unexpected EOF" pairs
// with.
type Related struct {
	File    string
	Offset  int
	Message string
}

// Diagnostic is the canonical compiler diagnostic contract surfaced by
// the driver. Source positions are byte offsets, not line/column,
// because spans are byte-offset-only (see internal/span) — a
// line/column projection belongs to a presentation layer that knows
// how to re-scan the source, not to this type.
type Diagnostic struct {
	Severity string
	Code     string
	Message  string
	File     string
	Offset   int
	Hint     string
	Related  *Related
}

// SortAndDedupe enforces deterministic output ordering and duplicate
// removal, so two runs over the same source produce byte-identical
// reports regardless of the order errors were accumulated in.
func SortAndDedupe(in []Diagnostic) []Diagnostic {
	if len(in) == 0 {
		return nil
	}
	out := append([]Diagnostic(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		if a.Message != b.Message {
			return a.Message < b.Message
		}
		ar, br := relatedSortKey(a.Related), relatedSortKey(b.Related)
		if ar.file != br.file {
			return ar.file < br.file
		}
		return ar.offset < br.offset
	})
	seen := map[string]struct{}{}
	result := make([]Diagnostic, 0, len(out))
	for _, d := range out {
		key := dedupeKey(d)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, d)
	}
	return result
}

type relatedKey struct {
	file   string
	offset int
}

func relatedSortKey(r *Related) relatedKey {
	if r == nil {
		return relatedKey{}
	}
	return relatedKey{file: r.File, offset: r.Offset}
}

func dedupeKey(d Diagnostic) string {
	rk := relatedSortKey(d.Related)
	return d.Code + "|" + d.File + "|" + strconv.Itoa(d.Offset) + "|" + d.Message + "|" + rk.file + "|" + strconv.Itoa(rk.offset)
}
