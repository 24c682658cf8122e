package ir

// The statement traversal extends the expression traversal with statement
// hooks and two scoping hooks:
//
//   - Spawn runs a sub-traversal, e.g. one branch of a switch. Visitors
//     that accumulate scoped state derive a child state inside Spawn.
//   - Merge folds the sub-traversal's state back into the parent, called
//     once after each Spawn returns.
//
// Visitors without scoped state implement Spawn as "run the closure" and
// Merge as a no-op (the bases do exactly that).

// SharedAstVisitor observes statement trees.
type SharedAstVisitor interface {
	SharedExprVisitor

	Spawn(visit func())
	Merge()
	VisitStatement(s *Statement)
	VisitSwitch(sw *Switch)
}

// DefaultVisitStatement recurses into the children of a statement.
func DefaultVisitStatement(v SharedAstVisitor, s *Statement) {
	switch s.Kind {
	case StAssign:
		v.VisitPlace(&s.Assign.Dst)
		v.VisitRvalue(&s.Assign.Src)
	case StFakeRead:
		v.VisitPlace(&s.FakeRead)
	case StSetDiscriminant:
		v.VisitPlace(&s.SetDiscriminant.Place)
	case StDrop:
		v.VisitPlace(&s.Drop)
	case StAssert:
		v.VisitOperand(&s.Assert.Cond)
	case StCall:
		v.VisitCall(&s.Call)
	case StSequence:
		v.VisitStatement(s.First)
		v.VisitStatement(s.Second)
	case StSwitch:
		v.VisitSwitch(&s.Switch)
	case StLoop:
		v.VisitStatement(s.Loop)
	}
}

// DefaultVisitSwitch visits the scrutinee, then each branch inside its own
// Spawn/Merge pair.
func DefaultVisitSwitch(v SharedAstVisitor, sw *Switch) {
	switch sw.Kind {
	case SwitchIf:
		v.VisitOperand(&sw.Scrutinee)
		v.Spawn(func() { v.VisitStatement(sw.IfTrue) })
		v.Merge()
		v.Spawn(func() { v.VisitStatement(sw.IfFalse) })
		v.Merge()
	case SwitchInt:
		v.VisitOperand(&sw.Scrutinee)
		for i := range sw.Targets {
			target := sw.Targets[i].Target
			v.Spawn(func() { v.VisitStatement(target) })
			v.Merge()
		}
		v.Spawn(func() { v.VisitStatement(sw.Otherwise) })
		v.Merge()
	case SwitchMatch:
		v.VisitPlace(&sw.Place)
		for i := range sw.MatchTargets {
			target := sw.MatchTargets[i].Target
			v.Spawn(func() { v.VisitStatement(target) })
			v.Merge()
		}
	}
}

// SharedAstVisitorBase provides the default recursion for SharedAstVisitor.
type SharedAstVisitorBase struct {
	SharedExprVisitorBase
	self SharedAstVisitor
}

// Init sets the dispatch target. Must be called before the first visit.
func (b *SharedAstVisitorBase) Init(self SharedAstVisitor) {
	b.SharedExprVisitorBase.Init(self)
	b.self = self
}

func (b *SharedAstVisitorBase) Spawn(visit func())          { visit() }
func (b *SharedAstVisitorBase) Merge()                      {}
func (b *SharedAstVisitorBase) VisitStatement(s *Statement) { DefaultVisitStatement(b.self, s) }
func (b *SharedAstVisitorBase) VisitSwitch(sw *Switch)      { DefaultVisitSwitch(b.self, sw) }

// MutAstVisitor rewrites statement trees in place.
type MutAstVisitor interface {
	MutExprVisitor

	Spawn(visit func())
	Merge()
	VisitStatement(s *Statement)
	VisitSwitch(sw *Switch)
}

// DefaultVisitStatementMut recurses into the children of a statement.
func DefaultVisitStatementMut(v MutAstVisitor, s *Statement) {
	switch s.Kind {
	case StAssign:
		v.VisitPlace(&s.Assign.Dst)
		v.VisitRvalue(&s.Assign.Src)
	case StFakeRead:
		v.VisitPlace(&s.FakeRead)
	case StSetDiscriminant:
		v.VisitPlace(&s.SetDiscriminant.Place)
	case StDrop:
		v.VisitPlace(&s.Drop)
	case StAssert:
		v.VisitOperand(&s.Assert.Cond)
	case StCall:
		v.VisitCall(&s.Call)
	case StSequence:
		v.VisitStatement(s.First)
		v.VisitStatement(s.Second)
	case StSwitch:
		v.VisitSwitch(&s.Switch)
	case StLoop:
		v.VisitStatement(s.Loop)
	}
}

// DefaultVisitSwitchMut visits the scrutinee, then each branch inside its
// own Spawn/Merge pair.
func DefaultVisitSwitchMut(v MutAstVisitor, sw *Switch) {
	switch sw.Kind {
	case SwitchIf:
		v.VisitOperand(&sw.Scrutinee)
		v.Spawn(func() { v.VisitStatement(sw.IfTrue) })
		v.Merge()
		v.Spawn(func() { v.VisitStatement(sw.IfFalse) })
		v.Merge()
	case SwitchInt:
		v.VisitOperand(&sw.Scrutinee)
		for i := range sw.Targets {
			target := sw.Targets[i].Target
			v.Spawn(func() { v.VisitStatement(target) })
			v.Merge()
		}
		v.Spawn(func() { v.VisitStatement(sw.Otherwise) })
		v.Merge()
	case SwitchMatch:
		v.VisitPlace(&sw.Place)
		for i := range sw.MatchTargets {
			target := sw.MatchTargets[i].Target
			v.Spawn(func() { v.VisitStatement(target) })
			v.Merge()
		}
	}
}

// MutAstVisitorBase provides the default recursion for MutAstVisitor.
type MutAstVisitorBase struct {
	MutExprVisitorBase
	self MutAstVisitor
}

// Init sets the dispatch target. Must be called before the first visit.
func (b *MutAstVisitorBase) Init(self MutAstVisitor) {
	b.MutExprVisitorBase.Init(self)
	b.self = self
}

func (b *MutAstVisitorBase) Spawn(visit func())          { visit() }
func (b *MutAstVisitorBase) Merge()                      {}
func (b *MutAstVisitorBase) VisitStatement(s *Statement) { DefaultVisitStatementMut(b.self, s) }
func (b *MutAstVisitorBase) VisitSwitch(sw *Switch)      { DefaultVisitSwitchMut(b.self, sw) }
