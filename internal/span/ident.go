package span

// Ident is a Symbol paired with the span it was parsed from.
type Ident struct {
	Name Symbol
	Span Span
}

// EmptyIdent returns the placeholder ident used where a name is
// absent (e.g. a use item's synthetic name).
func EmptyIdent() Ident {
	return Ident{Name: Kw.Empty, Span: DummySpan}
}

func (i Ident) String() string {
	return Lookup(i.Name)
}
