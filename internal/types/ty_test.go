package types_test

import (
	"testing"

	"llbc/internal/types"
)

func TestScalarFromIntRangeChecks(t *testing.T) {
	tests := []struct {
		ty      types.IntegerTy
		v       int64
		wantErr bool
	}{
		{types.I8, 127, false},
		{types.I8, 128, true},
		{types.I8, -128, false},
		{types.I8, -129, true},
		{types.I16, 1 << 14, false},
		{types.I16, 1 << 15, true},
		{types.I32, -(1 << 31), false},
		{types.I32, 1 << 31, true},
		{types.I64, -1 << 62, false},
		{types.Isize, 1 << 40, false},
		{types.U8, 1, true}, // unsigned type through the signed constructor
	}
	for _, tt := range tests {
		s, err := types.ScalarFromInt(tt.ty, tt.v)
		if (err != nil) != tt.wantErr {
			t.Errorf("ScalarFromInt(%s, %d) error = %v, wantErr %t", tt.ty, tt.v, err, tt.wantErr)
			continue
		}
		if err == nil && s.Int != tt.v {
			t.Errorf("ScalarFromInt(%s, %d) value = %d", tt.ty, tt.v, s.Int)
		}
	}
}

func TestScalarFromUintRangeChecks(t *testing.T) {
	tests := []struct {
		ty      types.IntegerTy
		v       uint64
		wantErr bool
	}{
		{types.U8, 255, false},
		{types.U8, 256, true},
		{types.U16, 1 << 16, true},
		{types.U32, 1<<32 - 1, false},
		{types.U64, 1 << 63, false},
		{types.Usize, 1 << 40, false},
		{types.I8, 1, true}, // signed type through the unsigned constructor
	}
	for _, tt := range tests {
		s, err := types.ScalarFromUint(tt.ty, tt.v)
		if (err != nil) != tt.wantErr {
			t.Errorf("ScalarFromUint(%s, %d) error = %v, wantErr %t", tt.ty, tt.v, err, tt.wantErr)
			continue
		}
		if err == nil && s.Uint != tt.v {
			t.Errorf("ScalarFromUint(%s, %d) value = %d", tt.ty, tt.v, s.Uint)
		}
	}
}

func TestContainsNever(t *testing.T) {
	never := types.TNever()
	if !never.ContainsNever() {
		t.Fatal("TNever does not contain never")
	}
	tup := types.TTuple(types.TLiteral(types.IntTy(types.U32)), types.TNever())
	if !tup.ContainsNever() {
		t.Fatal("tuple with never element does not contain never")
	}
	ref := types.TRef(types.RefShared, types.TLiteral(types.BoolTy()))
	if ref.ContainsNever() {
		t.Fatal("&bool reported as containing never")
	}
}

func TestUnit(t *testing.T) {
	if !types.UnitTy().IsUnit() {
		t.Fatal("UnitTy not recognized as unit")
	}
	one := types.TTuple(types.TLiteral(types.BoolTy()))
	if one.IsUnit() {
		t.Fatal("(bool) recognized as unit")
	}
}

func TestSubstituteIsDeepCopy(t *testing.T) {
	orig := types.TAdt(
		types.AdtID(3),
		[]types.Ty{types.TVar(0)},
		[]types.ConstGeneric{types.CgVarOf(1)},
	)
	cp := orig.Substitute(types.TypeSubst{0: types.TLiteral(types.BoolTy())})

	// The placeholder substitution clones; it must not replace variables yet.
	if cp.TypeArgs[0].Kind != types.TyTypeVar {
		t.Fatal("placeholder substitution replaced a type variable")
	}

	// And the clone must not alias the original.
	cp.TypeArgs[0] = types.TNever()
	if orig.TypeArgs[0].Kind != types.TyTypeVar {
		t.Fatal("mutating the copy changed the original")
	}
}

func TestFmtTypes(t *testing.T) {
	ctx := types.DummyFormatter{}
	tests := []struct {
		ty   types.Ty
		want string
	}{
		{types.TLiteral(types.IntTy(types.I32)), "i32"},
		{types.UnitTy(), "()"},
		{types.TTuple(types.TLiteral(types.BoolTy()), types.TLiteral(types.CharTy())), "(bool, char)"},
		{types.TRef(types.RefMut, types.TLiteral(types.BoolTy())), "&mut (bool)"},
		{types.TNever(), "!"},
	}
	for _, tt := range tests {
		if got := tt.ty.FmtWithCtx(ctx); got != tt.want {
			t.Errorf("FmtWithCtx = %q, want %q", got, tt.want)
		}
	}
}
