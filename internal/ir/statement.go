package ir

import (
	"fmt"

	"llbc/internal/source"
	"llbc/internal/types"
)

// StatementKind enumerates statement kinds of the structured body tree.
type StatementKind uint8

const (
	// StAssign stores an rvalue into a place.
	StAssign StatementKind = iota
	// StFakeRead marks a read for borrow-tracking purposes.
	StFakeRead
	// StSetDiscriminant writes a variant tag.
	StSetDiscriminant
	// StDrop releases a place.
	StDrop
	// StAssert checks a boolean operand against its expected value.
	StAssert
	// StCall invokes a function.
	StCall
	// StPanic aborts execution.
	StPanic
	// StReturn leaves the body, yielding the return slot.
	StReturn
	// StBreak leaves the given number of enclosing loops.
	StBreak
	// StContinue restarts the given enclosing loop.
	StContinue
	// StNop does nothing.
	StNop
	// StSequence runs two statements in order.
	StSequence
	// StSwitch branches.
	StSwitch
	// StLoop repeats its body until broken out of.
	StLoop
)

// AssignStmt stores Src into Dst.
type AssignStmt struct {
	Dst Place
	Src Rvalue
}

// SetDiscriminantStmt writes a variant tag into a place.
type SetDiscriminantStmt struct {
	Place   Place
	Variant types.VariantID
}

// AssertStmt checks that Cond evaluates to Expected.
type AssertStmt struct {
	Cond     Operand
	Expected bool
}

// Statement is one node of the structured body tree. Every statement
// carries source meta; sequencing combines metas when statements are
// spliced (see passes.RemoveNops).
type Statement struct {
	Meta source.Meta
	Kind StatementKind

	Assign          AssignStmt          // StAssign
	FakeRead        Place               // StFakeRead
	SetDiscriminant SetDiscriminantStmt // StSetDiscriminant
	Drop            Place               // StDrop
	Assert          AssertStmt          // StAssert
	Call            Call                // StCall
	Depth           int                 // StBreak, StContinue
	First           *Statement          // StSequence
	Second          *Statement          // StSequence
	Switch          Switch              // StSwitch
	Loop            *Statement          // StLoop
}

// NewSequence chains two statements.
func NewSequence(first, second *Statement) *Statement {
	return &Statement{
		Meta:   source.CombineMeta(first.Meta, second.Meta),
		Kind:   StSequence,
		First:  first,
		Second: second,
	}
}

// IsNop reports whether the statement does nothing.
func (s *Statement) IsNop() bool {
	return s.Kind == StNop
}

// ToSequence returns the two halves of a sequence statement. Calling it on
// any other kind is a programming error.
func (s *Statement) ToSequence() (*Statement, *Statement) {
	if s.Kind != StSequence {
		panic(fmt.Errorf("ir: ToSequence on %d statement", s.Kind))
	}
	return s.First, s.Second
}

// SwitchKind enumerates branching forms.
type SwitchKind uint8

const (
	// SwitchIf branches on a boolean operand.
	SwitchIf SwitchKind = iota
	// SwitchInt branches on integer values with an otherwise branch.
	SwitchInt
	// SwitchMatch branches on the variant tag of a place.
	SwitchMatch
)

// SwitchIntTarget is one arm of an integer switch; several values may share
// a target.
type SwitchIntTarget struct {
	Values []types.ScalarValue
	Target *Statement
}

// MatchTarget is one arm of a match; several variants may share a target.
type MatchTarget struct {
	Variants []types.VariantID
	Target   *Statement
}

// Switch is the payload of a branching statement.
type Switch struct {
	Kind SwitchKind

	Scrutinee Operand // SwitchIf, SwitchInt
	IfTrue    *Statement
	IfFalse   *Statement

	IntTy     types.IntegerTy // SwitchInt
	Targets   []SwitchIntTarget
	Otherwise *Statement

	Place        Place // SwitchMatch
	MatchTargets []MatchTarget
}
