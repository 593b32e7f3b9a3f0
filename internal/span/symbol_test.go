package span

import "testing"

func TestInternerRoundTrip(t *testing.T) {
	in := NewInterner()
	for _, s := range []string{"foo", "bar", "baz", "foo"} {
		sym := in.Intern(s)
		if got := in.Lookup(sym); got != s {
			t.Fatalf("Lookup(Intern(%q)) = %q", s, got)
		}
	}
}

func TestInternerDedupe(t *testing.T) {
	in := NewInterner()
	a := in.Intern("hello")
	b := in.Intern("hello")
	c := in.Intern("world")
	if a != b {
		t.Fatalf("interning the same string twice produced different symbols: %d != %d", a, b)
	}
	if a == c {
		t.Fatalf("interning distinct strings produced the same symbol")
	}
}

func TestInternerInsertionOrder(t *testing.T) {
	in := NewInterner()
	first := in.Intern("a")
	second := in.Intern("b")
	if first != 0 || second != 1 {
		t.Fatalf("symbols not assigned in insertion order starting at 0: got %d, %d", first, second)
	}
}

func TestPrefillKeywordIndices(t *testing.T) {
	in := Prefill(keywordStrings)
	for i, s := range keywordStrings {
		if sym := in.Intern(s); sym != Symbol(i) {
			t.Fatalf("prefilled string %q: got symbol %d, want %d", s, sym, i)
		}
	}
	if sym := in.Intern("notakeyword"); sym < Symbol(len(keywordStrings)) {
		t.Fatalf("new symbol %d collides with prefilled range [0,%d)", sym, len(keywordStrings))
	}
}

func TestIsKeyword(t *testing.T) {
	for _, s := range keywordStrings[2:] {
		sym := Intern(s)
		if !IsKeyword(sym) {
			t.Errorf("IsKeyword(%q) = false, want true", s)
		}
	}
	if IsKeyword(Kw.Empty) {
		t.Errorf("IsKeyword(Empty) = true, want false")
	}
	if IsKeyword(Kw.Wildcard) {
		t.Errorf("IsKeyword(Wildcard) = true, want false")
	}
	if IsKeyword(Intern("definitely_not_reserved")) {
		t.Errorf("IsKeyword(non-reserved ident) = true, want false")
	}
}

func TestIsPathSegmentKeyword(t *testing.T) {
	for _, sym := range []Symbol{Kw.SelfValue, Kw.SelfType, Kw.Super, Kw.Crate} {
		if !IsPathSegmentKeyword(sym) {
			t.Errorf("IsPathSegmentKeyword(%d) = false, want true", sym)
		}
	}
	if IsPathSegmentKeyword(Kw.If) {
		t.Errorf("IsPathSegmentKeyword(If) = true, want false")
	}
}
