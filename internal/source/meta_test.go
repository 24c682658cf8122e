package source_test

import (
	"testing"

	"llbc/internal/source"
)

func span(file source.FileID, bl, bc, el, ec uint32) source.Span {
	return source.Span{
		File: file,
		Beg:  source.Loc{Line: bl, Col: bc},
		End:  source.Loc{Line: el, Col: ec},
	}
}

func TestCombineMetaCoversBothSpans(t *testing.T) {
	m0 := source.Meta{Span: span(0, 3, 4, 3, 9)}
	m1 := source.Meta{Span: span(0, 1, 0, 2, 5)}

	got := source.CombineMeta(m0, m1)
	want := span(0, 1, 0, 3, 9)
	if got.Span != want {
		t.Fatalf("CombineMeta span = %v, want %v", got.Span, want)
	}
	if got.GeneratedFromSpan != nil {
		t.Fatal("unexpected generated-from span")
	}
}

func TestCombineMetaDifferentFilesKeepsFirst(t *testing.T) {
	m0 := source.Meta{Span: span(0, 1, 0, 1, 5)}
	m1 := source.Meta{Span: span(1, 9, 0, 9, 5)}

	got := source.CombineMeta(m0, m1)
	if got.Span != m0.Span {
		t.Fatalf("CombineMeta span = %v, want %v", got.Span, m0.Span)
	}
}

func TestCombineMetaKeepsAgreeingOrigin(t *testing.T) {
	origin := span(2, 10, 0, 12, 0)
	m0 := source.Meta{Span: span(0, 1, 0, 1, 5), GeneratedFromSpan: &origin}
	other := origin
	m1 := source.Meta{Span: span(0, 2, 0, 2, 5), GeneratedFromSpan: &other}

	got := source.CombineMeta(m0, m1)
	if got.GeneratedFromSpan == nil || *got.GeneratedFromSpan != origin {
		t.Fatalf("generated-from span = %v, want %v", got.GeneratedFromSpan, origin)
	}
}
