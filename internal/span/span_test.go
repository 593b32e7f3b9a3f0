package span

import "testing"

func TestSpanTo(t *testing.T) {
	a := Span{Lo: 3, Hi: 7}
	b := Span{Lo: 10, Hi: 14}
	got := a.To(b)
	want := Span{Lo: 3, Hi: 14}
	if got != want {
		t.Fatalf("To: got %v want %v", got, want)
	}
}

func TestDummySpan(t *testing.T) {
	if !DummySpan.IsDummy() {
		t.Fatalf("DummySpan.IsDummy() = false")
	}
	if (Span{Lo: 0, Hi: 1}).IsDummy() {
		t.Fatalf("non-dummy span reported as dummy")
	}
}

func TestBytePosArithmetic(t *testing.T) {
	p := BytePos(10)
	if got := p.Add(5); got != 15 {
		t.Fatalf("Add: got %d want 15", got)
	}
	if got := BytePos(15).Sub(p); got != 5 {
		t.Fatalf("Sub: got %d want 5", got)
	}
}
