package diagnostics

import "testing"

func TestSortAndDedupeNilAndEmpty(t *testing.T) {
	if got := SortAndDedupe(nil); got != nil {
		t.Fatalf("expected nil for nil input, got %#v", got)
	}
	if got := SortAndDedupe([]Diagnostic{}); got != nil {
		t.Fatalf("expected nil for empty input, got %#v", got)
	}
}

func TestSortAndDedupeOrdersByCanonicalKey(t *testing.T) {
	in := []Diagnostic{
		{Code: "E_B", File: "z.rc", Offset: 3, Message: "z"},
		{Code: "E_A", File: "a.rc", Offset: 3, Message: "b"},
		{Code: "E_A", File: "a.rc", Offset: 1, Message: "b"},
		{Code: "E_A", File: "a.rc", Offset: 2, Message: "b"},
		{Code: "E_A", File: "a.rc", Offset: 2, Message: "a"},
		{Code: "E_A", File: "a.rc", Offset: 2, Message: "a", Related: &Related{File: "r.rc", Offset: 9}},
	}

	got := SortAndDedupe(in)
	if len(got) != len(in) {
		t.Fatalf("expected no dedupe in this set, got %d entries", len(got))
	}

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.File > cur.File {
			t.Fatalf("diagnostics are not sorted by file: %+v then %+v", prev, cur)
		}
	}
	if got[0].Offset != 1 {
		t.Fatalf("expected earliest source location first, got %+v", got[0])
	}
	if got[len(got)-1].File != "z.rc" {
		t.Fatalf("expected z.rc to be last, got %+v", got[len(got)-1])
	}
}

func TestSortAndDedupeUsesCanonicalTuple(t *testing.T) {
	in := []Diagnostic{
		{Code: "E_X", File: "a.rc", Offset: 10, Message: "same"},
		{Code: "E_X", File: "a.rc", Offset: 10, Message: "same"},
	}

	got := SortAndDedupe(in)
	if len(got) != 1 {
		t.Fatalf("expected canonical dedupe to collapse duplicates, got %d", len(got))
	}
}

func TestSortAndDedupeIncludesRelatedLocationInDeduping(t *testing.T) {
	in := []Diagnostic{
		{Code: "E_X", File: "a.rc", Offset: 10, Message: "same", Related: &Related{File: "r.rc", Offset: 1}},
		{Code: "E_X", File: "a.rc", Offset: 10, Message: "same", Related: &Related{File: "r.rc", Offset: 2}},
	}

	got := SortAndDedupe(in)
	if len(got) != 2 {
		t.Fatalf("expected distinct related locations to remain distinct, got %d", len(got))
	}
}
