package source

// Meta is the source information carried by statements and declarations.
// When code was produced by expansion (macros, compiler-introduced
// statements), Span points at the use site and GeneratedFromSpan at the
// definition it was expanded from.
type Meta struct {
	Span              Span
	GeneratedFromSpan *Span
}

// CombineMeta merges the meta of two adjacent statements into one, keeping
// the span that covers both. Generated-from information survives only when
// both sides agree on it; mixing distinct origins would be misleading.
func CombineMeta(m0, m1 Meta) Meta {
	out := Meta{Span: meetSpans(m0.Span, m1.Span)}
	if m0.GeneratedFromSpan != nil && m1.GeneratedFromSpan != nil &&
		*m0.GeneratedFromSpan == *m1.GeneratedFromSpan {
		gen := *m0.GeneratedFromSpan
		out.GeneratedFromSpan = &gen
	}
	return out
}

func meetSpans(a, b Span) Span {
	if a.File != b.File {
		return a
	}
	out := a
	if less(b.Beg, a.Beg) {
		out.Beg = b.Beg
	}
	if less(a.End, b.End) {
		out.End = b.End
	}
	return out
}

func less(a, b Loc) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Col < b.Col
}
