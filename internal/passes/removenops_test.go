package passes

import (
	"testing"

	"llbc/internal/ir"
	"llbc/internal/source"
)

func span(line uint32) source.Meta {
	return source.Meta{Span: source.Span{
		Beg: source.Loc{Line: line, Col: 0},
		End: source.Loc{Line: line, Col: 10},
	}}
}

func TestRemoveNopsSplicesLeadingNop(t *testing.T) {
	nop := &ir.Statement{Meta: span(3), Kind: ir.StNop}
	ret := &ir.Statement{Meta: span(4), Kind: ir.StReturn}
	st := ir.NewSequence(nop, ret)

	RemoveNops(st)

	if st.Kind != ir.StReturn {
		t.Fatalf("statement kind %d after splice, want StReturn", st.Kind)
	}
	// The nop's span is folded into the survivor's.
	if st.Meta.Span.Beg.Line != 3 || st.Meta.Span.End.Line != 4 {
		t.Errorf("combined span %s, want lines 3-4", st.Meta.Span)
	}
}

func TestRemoveNopsHandlesRuns(t *testing.T) {
	st := ir.NewSequence(
		&ir.Statement{Meta: span(1), Kind: ir.StNop},
		ir.NewSequence(
			&ir.Statement{Meta: span(2), Kind: ir.StNop},
			&ir.Statement{Meta: span(3), Kind: ir.StReturn},
		),
	)

	RemoveNops(st)

	if st.Kind != ir.StReturn {
		t.Fatalf("statement kind %d, want StReturn", st.Kind)
	}
	if st.Meta.Span.Beg.Line != 1 {
		t.Errorf("combined span starts at line %d, want 1", st.Meta.Span.Beg.Line)
	}
}

func TestRemoveNopsReachesBranches(t *testing.T) {
	branch := ir.NewSequence(
		&ir.Statement{Kind: ir.StNop},
		&ir.Statement{Kind: ir.StBreak},
	)
	loop := &ir.Statement{
		Kind: ir.StLoop,
		Loop: &ir.Statement{
			Kind: ir.StSwitch,
			Switch: ir.Switch{
				Kind:      ir.SwitchIf,
				Scrutinee: ir.CopyOp(ir.NewPlace(1)),
				IfTrue:    branch,
				IfFalse:   &ir.Statement{Kind: ir.StContinue},
			},
		},
	}

	RemoveNops(loop)

	if branch.Kind != ir.StBreak {
		t.Errorf("branch kind %d after cleanup, want StBreak", branch.Kind)
	}
}

func TestRemoveNopsLeavesOtherStatementsAlone(t *testing.T) {
	ret := &ir.Statement{Meta: span(9), Kind: ir.StReturn}
	st := ir.NewSequence(&ir.Statement{Meta: span(8), Kind: ir.StDrop}, ret)

	RemoveNops(st)

	if st.Kind != ir.StSequence {
		t.Errorf("sequence without a leading nop was rewritten to kind %d", st.Kind)
	}
}
