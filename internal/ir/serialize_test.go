package ir_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"llbc/internal/ir"
	"llbc/internal/names"
	"llbc/internal/source"
	"llbc/internal/types"
)

func sampleCrate() *ir.Crate {
	c := ir.NewCrate("demo")
	c.Files.Push(0, source.FileName{Kind: source.FileLocal, Path: "src/lib.rs"})

	u32Ty := types.TLiteral(types.IntTy(types.U32))
	body := ir.NewExprBody(source.Meta{}, 0)
	body.Locals.Push(0, ir.Var{Index: 0, Name: "ret", Ty: u32Ty})
	assign := &ir.Statement{
		Kind: ir.StAssign,
		Assign: ir.AssignStmt{
			Dst: ir.NewPlace(0),
			Src: ir.Rvalue{Kind: ir.RvUse, Use: ir.ConstOp(u32Ty, u32Const(42))},
		},
	}
	ret := &ir.Statement{Kind: ir.StReturn}
	body.Body = ir.NewSequence(assign, ret)

	c.Globals.Push(0, &ir.GlobalDecl{
		ID:   0,
		Name: names.New("demo", "ANSWER"),
		Ty:   u32Ty,
		Body: body,
	})
	return c
}

func TestCrateRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := ir.WriteCrate(&buf, sampleCrate()); err != nil {
		t.Fatalf("WriteCrate: %v", err)
	}

	got, err := ir.ReadCrate(&buf)
	if err != nil {
		t.Fatalf("ReadCrate: %v", err)
	}
	if got.Name != "demo" {
		t.Errorf("crate name %q, want %q", got.Name, "demo")
	}
	if got.Files.Len() != 1 || got.Globals.Len() != 1 {
		t.Fatalf("files=%d globals=%d, want 1 and 1", got.Files.Len(), got.Globals.Len())
	}

	g := got.Globals.MustGet(0)
	if g.Name.String() != "demo::ANSWER" {
		t.Errorf("global name %q, want %q", g.Name, "demo::ANSWER")
	}
	first, _ := g.Body.Body.ToSequence()
	if first.Kind != ir.StAssign {
		t.Fatalf("first statement kind %d, want StAssign", first.Kind)
	}
	cv := first.Assign.Src.Use.Const
	if cv.Kind != ir.ConstLiteral || cv.Literal.Scalar.Uint != 42 {
		t.Errorf("round-tripped constant = %s, want 42 : u32", cv)
	}
}

func TestSchemaMismatchRejected(t *testing.T) {
	var buf bytes.Buffer
	if err := ir.WriteCrate(&buf, sampleCrate()); err != nil {
		t.Fatalf("WriteCrate: %v", err)
	}
	// Corrupt the envelope by re-encoding with a bumped schema field.
	dec := msgpack.NewDecoder(bytes.NewReader(buf.Bytes()))
	var raw map[string]msgpack.RawMessage
	if err := dec.Decode(&raw); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	bad, err := msgpack.Marshal(ir.SchemaVersion + 1)
	if err != nil {
		t.Fatal(err)
	}
	raw["Schema"] = bad
	out, err := msgpack.Marshal(raw)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ir.ReadCrate(bytes.NewReader(out)); err == nil {
		t.Fatal("ReadCrate accepted a crate with a mismatched schema")
	}
}

func TestNonLiteralConstantsRefuseToSerialize(t *testing.T) {
	tests := []struct {
		name string
		cv   ir.ConstantValue
	}{
		{"adt", ir.AdtConst(types.OptionSomeVariantID, []ir.ConstantValue{u32Const(1)})},
		{"ref", ir.RefConst(0)},
		{"static", ir.StaticConst(0)},
		{"var", ir.VarConst(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := msgpack.Marshal(&tt.cv)
			if !errors.Is(err, ir.ErrNonLiteralConstant) {
				t.Fatalf("Marshal err = %v, want ErrNonLiteralConstant", err)
			}
		})
	}
}
