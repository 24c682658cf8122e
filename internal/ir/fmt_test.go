package ir_test

import (
	"testing"

	"llbc/internal/ir"
	"llbc/internal/types"
)

func u32(v uint64) types.ScalarValue {
	s, err := types.ScalarFromUint(types.U32, v)
	if err != nil {
		panic(err)
	}
	return s
}

func u32Const(v uint64) ir.ConstantValue {
	return ir.LiteralConst(types.ScalarLit(u32(v)))
}

func TestFmtPlace(t *testing.T) {
	ctx := ir.DummyFormatter{}
	tests := []struct {
		place ir.Place
		want  string
	}{
		{ir.NewPlace(0), "var@0"},
		{
			ir.Place{Var: 1, Projection: ir.Projection{{Kind: ir.ProjDeref}}},
			"*(var@1)",
		},
		{
			ir.Place{Var: 1, Projection: ir.Projection{{Kind: ir.ProjDerefBox}}},
			"deref_box (var@1)",
		},
		{
			ir.Place{Var: 2, Projection: ir.Projection{
				{Kind: ir.ProjField, Field: ir.FieldProj{Class: ir.FieldProjTuple, Arity: 2}, FieldID: 1},
			}},
			"(var@2).1",
		},
		{
			ir.Place{Var: 2, Projection: ir.Projection{
				{Kind: ir.ProjField, Field: ir.FieldProj{Class: ir.FieldProjAdt, Adt: 0, Variant: 1}, FieldID: 0},
			}},
			"(var@2 as variant @1).0",
		},
		{
			ir.Place{Var: 3, Projection: ir.Projection{{Kind: ir.ProjIndex, Index: 4}}},
			"(var@3)[var@4]",
		},
	}
	for _, tt := range tests {
		if got := tt.place.FmtWithCtx(ctx); got != tt.want {
			t.Errorf("FmtWithCtx = %q, want %q", got, tt.want)
		}
	}
}

func TestFmtOperandAndRvalue(t *testing.T) {
	ctx := ir.DummyFormatter{}

	op := ir.CopyOp(ir.NewPlace(0))
	if got := op.FmtWithCtx(ctx); got != "copy (var@0)" {
		t.Errorf("copy operand = %q", got)
	}
	op = ir.MoveOp(ir.NewPlace(1))
	if got := op.FmtWithCtx(ctx); got != "move (var@1)" {
		t.Errorf("move operand = %q", got)
	}
	op = ir.ConstOp(types.TLiteral(types.IntTy(types.U32)), u32Const(7))
	if got := op.FmtWithCtx(ctx); got != "const (7 : u32)" {
		t.Errorf("const operand = %q", got)
	}

	rv := ir.Rvalue{Kind: ir.RvRef, Ref: ir.RefRvalue{Place: ir.NewPlace(2), Kind: ir.BorrowMut}}
	if got := rv.FmtWithCtx(ctx); got != "&mut var@2" {
		t.Errorf("ref rvalue = %q", got)
	}

	rv = ir.Rvalue{Kind: ir.RvBinaryOp, Binary: ir.BinaryRvalue{
		Op:    ir.BinAdd,
		Left:  ir.CopyOp(ir.NewPlace(0)),
		Right: ir.ConstOp(types.TLiteral(types.IntTy(types.U32)), u32Const(1)),
	}}
	if got := rv.FmtWithCtx(ctx); got != "copy (var@0) + const (1 : u32)" {
		t.Errorf("binary rvalue = %q", got)
	}
}

func TestFmtOptionAggregates(t *testing.T) {
	ctx := ir.DummyFormatter{}

	none := ir.Rvalue{Kind: ir.RvAggregate, Aggregate: ir.AggregateRvalue{
		Kind: ir.AggregateKind{Class: ir.AggOption, OptionVariant: types.OptionNoneVariantID},
	}}
	if got := none.FmtWithCtx(ctx); got != "@Option::None" {
		t.Errorf("none aggregate = %q", got)
	}

	some := ir.Rvalue{Kind: ir.RvAggregate, Aggregate: ir.AggregateRvalue{
		Kind: ir.AggregateKind{Class: ir.AggOption, OptionVariant: types.OptionSomeVariantID},
		Ops:  []ir.Operand{ir.CopyOp(ir.NewPlace(0))},
	}}
	if got := some.FmtWithCtx(ctx); got != "@Option::Some(copy (var@0))" {
		t.Errorf("some aggregate = %q", got)
	}
}

func TestFmtOptionAggregateArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Option::None with an operand did not panic")
		}
	}()
	bad := ir.Rvalue{Kind: ir.RvAggregate, Aggregate: ir.AggregateRvalue{
		Kind: ir.AggregateKind{Class: ir.AggOption, OptionVariant: types.OptionNoneVariantID},
		Ops:  []ir.Operand{ir.CopyOp(ir.NewPlace(0))},
	}}
	_ = bad.FmtWithCtx(ir.DummyFormatter{})
}

func TestSubstituteClonesDeeply(t *testing.T) {
	orig := ir.Rvalue{Kind: ir.RvAggregate, Aggregate: ir.AggregateRvalue{
		Kind: ir.AggregateKind{Class: ir.AggTuple},
		Ops: []ir.Operand{
			ir.CopyOp(ir.Place{Var: 1, Projection: ir.Projection{{Kind: ir.ProjDeref}}}),
		},
	}}

	cp := orig.Substitute(nil)
	cp.Aggregate.Ops[0].Place.Var = 9
	cp.Aggregate.Ops[0].Place.Projection[0].Kind = ir.ProjDerefBox

	if orig.Aggregate.Ops[0].Place.Var != 1 {
		t.Fatal("mutating the copy changed the original base variable")
	}
	if orig.Aggregate.Ops[0].Place.Projection[0].Kind != ir.ProjDeref {
		t.Fatal("mutating the copy changed the original projection")
	}
}
