package passes

import (
	"llbc/internal/ir"
	"llbc/internal/source"
)

// RemoveNops splices out no-op statements heading a sequence, folding
// their source metadata into the following statement. It is a standalone
// peephole cleanup and may run independently of the other passes.
func RemoveNops(st *ir.Statement) {
	switch st.Kind {
	case ir.StSequence:
		RemoveNops(st.First)
		RemoveNops(st.Second)
		if st.First.Kind == ir.StNop {
			meta := source.CombineMeta(st.First.Meta, st.Second.Meta)
			*st = *st.Second
			st.Meta = meta
		}
	case ir.StSwitch:
		switch st.Switch.Kind {
		case ir.SwitchIf:
			RemoveNops(st.Switch.IfTrue)
			RemoveNops(st.Switch.IfFalse)
		case ir.SwitchInt:
			for i := range st.Switch.Targets {
				RemoveNops(st.Switch.Targets[i].Target)
			}
			RemoveNops(st.Switch.Otherwise)
		case ir.SwitchMatch:
			for i := range st.Switch.MatchTargets {
				RemoveNops(st.Switch.MatchTargets[i].Target)
			}
		}
	case ir.StLoop:
		RemoveNops(st.Loop)
	}
}
