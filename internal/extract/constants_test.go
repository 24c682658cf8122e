package extract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"llbc/internal/ids"
	"llbc/internal/ir"
	"llbc/internal/names"
	"llbc/internal/types"
)

// fakeOracle serves canned destructure and eval answers.
type fakeOracle struct {
	fields []HostConst
	evals  map[DeclID]HostConst

	destructures int
	evalCalls    int
}

func (o *fakeOracle) Destructure(HostConst) ([]HostConst, error) {
	o.destructures++
	if o.fields == nil {
		return nil, fmt.Errorf("nothing to destructure")
	}
	return o.fields, nil
}

func (o *fakeOracle) Eval(def DeclID) (HostConst, error) {
	o.evalCalls++
	c, ok := o.evals[def]
	if !ok {
		return HostConst{}, fmt.Errorf("unknown decl %d", def)
	}
	return c, nil
}

func newBodyCtx(t *testing.T, mode Mode) *BodyCtx {
	t.Helper()
	return NewBodyCtx(NewCtx(testConfig(t, mode), nil), 1)
}

func uintScalar(ty types.IntegerTy, v uint64) HostConst {
	return ScalarConst(HostInt(ty), NewHostScalar(v, ty.Size()))
}

func TestScalarLiteralRoundTrip(t *testing.T) {
	bx := newBodyCtx(t, ModeTopLevel)
	orc := &fakeOracle{}

	tests := []struct {
		name string
		c    HostConst
		want string
	}{
		{"bool", ScalarConst(HostBool(), NewHostScalar(1, 1)), "true"},
		{"char", ScalarConst(HostChar(), NewHostScalar(0x2764, 4)), "'❤'"},
		{"i8", ScalarConst(HostInt(types.I8), NewHostScalar(0x80, 1)), "-128 : i8"},
		{"u8", uintScalar(types.U8, 255), "255 : u8"},
		{"i16", ScalarConst(HostInt(types.I16), NewHostScalar(0xff38, 2)), "-200 : i16"},
		{"u16", uintScalar(types.U16, 65535), "65535 : u16"},
		{"i32", ScalarConst(HostInt(types.I32), NewHostScalar(0xffffffff, 4)), "-1 : i32"},
		{"u32", uintScalar(types.U32, 4000000000), "4000000000 : u32"},
		{"i64", ScalarConst(HostInt(types.I64), NewHostScalar(0xffffffffffffffff, 8)), "-1 : i64"},
		{"u64", uintScalar(types.U64, 1<<63), "9223372036854775808 : u64"},
		{"isize", ScalarConst(HostInt(types.Isize), NewHostScalar(0xfffffffffffffffe, 8)), "-2 : isize"},
		{"usize", uintScalar(types.Usize, 4096), "4096 : usize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, v, err := bx.TranslateConst(orc, tt.c)
			if err != nil {
				t.Fatalf("TranslateConst: %v", err)
			}
			if v.Kind != ir.ConstLiteral {
				t.Fatalf("constant kind %d, want ConstLiteral", v.Kind)
			}
			if got := v.Literal.String(); got != tt.want {
				t.Errorf("literal = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTupleConstantDestructures(t *testing.T) {
	bx := newBodyCtx(t, ModeTopLevel)
	pair := HostTuple(HostInt(types.U32), HostInt(types.U32))
	orc := &fakeOracle{fields: []HostConst{
		uintScalar(types.U32, 1),
		uintScalar(types.U32, 2),
	}}

	ty, v, err := bx.TranslateConst(orc, ByRefConst(pair))
	if err != nil {
		t.Fatalf("TranslateConst: %v", err)
	}
	if !ty.Equal(types.TTuple(
		types.TLiteral(types.IntTy(types.U32)),
		types.TLiteral(types.IntTy(types.U32)),
	)) {
		t.Errorf("translated type = %s", ty)
	}
	if v.Kind != ir.ConstAdt || v.Variant != types.NoVariantID {
		t.Fatalf("constant = %s, want tagless Adt", v)
	}
	if len(v.Fields) != 2 ||
		v.Fields[0].Literal.Scalar.Uint != 1 ||
		v.Fields[1].Literal.Scalar.Uint != 2 {
		t.Fatalf("fields = %v", v.Fields)
	}

	// The Adt wrapping is translation-internal: serializing it without a
	// pass lowering it first must fail.
	if _, err := msgpack.Marshal(&v); !errors.Is(err, ir.ErrNonLiteralConstant) {
		t.Errorf("Marshal err = %v, want ErrNonLiteralConstant", err)
	}
}

func TestTupleFieldTypeMismatchPanics(t *testing.T) {
	bx := newBodyCtx(t, ModeTopLevel)
	pair := HostTuple(HostInt(types.U32), HostInt(types.U32))
	orc := &fakeOracle{fields: []HostConst{
		uintScalar(types.U32, 1),
		uintScalar(types.U8, 2), // declared u32
	}}

	defer func() {
		if recover() == nil {
			t.Fatal("mismatched tuple field type did not panic")
		}
	}()
	_, _, _ = bx.TranslateConst(orc, ByRefConst(pair))
}

func TestTopLevelModeRegistersGlobalOnce(t *testing.T) {
	bx := newBodyCtx(t, ModeTopLevel)
	orc := &fakeOracle{}
	c := UnevaluatedConst(HostInt(types.U32), 77)

	_, first, err := bx.TranslateConst(orc, c)
	if err != nil {
		t.Fatalf("TranslateConst: %v", err)
	}
	if first.Kind != ir.ConstRef {
		t.Fatalf("constant kind %d, want ConstRef", first.Kind)
	}
	if bx.Ctx.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", bx.Ctx.Pending())
	}

	// A second use site refers to the same global without re-enqueuing.
	_, second, err := bx.TranslateConst(orc, c)
	if err != nil {
		t.Fatalf("TranslateConst: %v", err)
	}
	if second.Global != first.Global {
		t.Errorf("second use references global %d, first %d", second.Global, first.Global)
	}
	if bx.Ctx.Pending() != 1 {
		t.Errorf("pending = %d after second use, want 1", bx.Ctx.Pending())
	}
	if orc.evalCalls != 0 {
		t.Errorf("top-level mode evaluated the constant %d times", orc.evalCalls)
	}
}

func TestInlineModeEvaluates(t *testing.T) {
	bx := newBodyCtx(t, ModeInline)
	orc := &fakeOracle{evals: map[DeclID]HostConst{
		77: uintScalar(types.U32, 9),
	}}

	_, v, err := bx.TranslateConst(orc, UnevaluatedConst(HostInt(types.U32), 77))
	if err != nil {
		t.Fatalf("TranslateConst: %v", err)
	}
	if v.Kind != ir.ConstLiteral || v.Literal.Scalar.Uint != 9 {
		t.Errorf("inlined constant = %s, want 9 : u32", v)
	}
	if bx.Ctx.Pending() != 0 {
		t.Errorf("inline mode enqueued %d globals", bx.Ctx.Pending())
	}
	if orc.evalCalls != 1 {
		t.Errorf("eval called %d times, want 1", orc.evalCalls)
	}
}

func TestZeroSizedMustBeUnit(t *testing.T) {
	bx := newBodyCtx(t, ModeTopLevel)
	orc := &fakeOracle{}

	ty, v, err := bx.TranslateConst(orc, ZeroSizedConst(HostTuple()))
	if err != nil {
		t.Fatalf("TranslateConst: %v", err)
	}
	if !ty.IsUnit() {
		t.Errorf("translated type = %s, want unit", ty)
	}
	if v.Kind != ir.ConstAdt || v.Variant != types.NoVariantID || len(v.Fields) != 0 {
		t.Errorf("constant = %s, want the unit value", v)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("non-unit zero-sized constant did not panic")
		}
	}()
	_, _, _ = bx.TranslateConst(orc, ZeroSizedConst(HostInt(types.U32)))
}

func TestDegenerateAdtScalar(t *testing.T) {
	bx := newBodyCtx(t, ModeTopLevel)
	orc := &fakeOracle{}

	// Pre-translate a single-variant, field-free enum under host decl 5.
	id := bx.Ctx.RegisterType(5)
	variants := ids.NewVector[types.VariantID, types.Variant]()
	variants.Push(0, types.Variant{Name: "Only", Fields: ids.NewVector[types.FieldID, types.Field]()})
	bx.Ctx.Crate.Types.Decls.Push(id, &types.TypeDecl{
		ID:                 id,
		Name:               names.New("demo", "Only"),
		RegionParams:       ids.NewVector[types.RegionVarID, types.RegionVar](),
		TypeParams:         ids.NewVector[types.TypeVarID, types.TypeVar](),
		ConstGenericParams: ids.NewVector[types.ConstGenericVarID, types.ConstGenericVar](),
		Kind:               types.DeclEnum,
		Variants:           variants,
	})

	_, v, err := bx.TranslateConst(orc, ScalarConst(HostAdt(5), NewHostScalar(0, 1)))
	if err != nil {
		t.Fatalf("TranslateConst: %v", err)
	}
	if v.Kind != ir.ConstAdt || v.Variant != 0 || len(v.Fields) != 0 {
		t.Errorf("constant = %s, want variant-0 Adt with no fields", v)
	}
}

func TestParamConstant(t *testing.T) {
	bx := newBodyCtx(t, ModeTopLevel)
	orc := &fakeOracle{}
	cg := bx.PushConstGenericVar(3, "N", types.IntTy(types.Usize))

	_, v, err := bx.TranslateConst(orc, ParamConst(HostInt(types.Usize), 3))
	if err != nil {
		t.Fatalf("TranslateConst: %v", err)
	}
	if v.Kind != ir.ConstVar || v.Var != cg {
		t.Errorf("constant = %s, want reference to const generic %d", v, cg)
	}
}

func TestUnsupportedConstants(t *testing.T) {
	bx := newBodyCtx(t, ModeTopLevel)
	orc := &fakeOracle{}

	for _, c := range []HostConst{
		{Kind: HostConstFloat, Ty: HostTy{Kind: HostTyFloat}},
		{Kind: HostConstSlice, Ty: HostTy{Kind: HostTyOther}},
	} {
		if _, _, err := bx.TranslateConst(orc, c); !errors.Is(err, ErrUnsupported) {
			t.Errorf("kind %d: err = %v, want ErrUnsupported", c.Kind, err)
		}
	}
}

func TestStaticReferenceScalar(t *testing.T) {
	bx := newBodyCtx(t, ModeTopLevel)
	orc := &fakeOracle{}

	c := ScalarConst(HostSharedRef(HostInt(types.U8)), StaticScalar(12))
	_, v, err := bx.TranslateConst(orc, c)
	if err != nil {
		t.Fatalf("TranslateConst: %v", err)
	}
	if v.Kind != ir.ConstStatic {
		t.Fatalf("constant kind %d, want ConstStatic", v.Kind)
	}
	if bx.Ctx.Pending() != 1 {
		t.Errorf("pending = %d, want the static enqueued once", bx.Ctx.Pending())
	}
}

func TestConstGenericArgument(t *testing.T) {
	bx := newBodyCtx(t, ModeTopLevel)
	orc := &fakeOracle{}

	cg, err := bx.TranslateConstAsConstGeneric(orc, uintScalar(types.Usize, 16))
	if err != nil {
		t.Fatalf("TranslateConstAsConstGeneric: %v", err)
	}
	if cg.Kind != types.CgValue || cg.Value.Scalar.Uint != 16 {
		t.Errorf("const generic = %s, want the literal 16", cg)
	}
}
