package ir

import (
	"fmt"
	"strings"

	"llbc/internal/types"
)

// Formatter resolves identifiers to display names when rendering
// expressions. Rendering is for diagnostics only, not a correctness
// contract.
type Formatter interface {
	types.Formatter
	FormatVarID(id VarID) string
	FormatFunDeclID(id FunDeclID) string
	FormatField(id types.TypeDeclID, variant types.VariantID, field types.FieldID) string
	FormatVariant(id types.TypeDeclID, variant types.VariantID) string
}

// DummyFormatter renders identifiers as raw indices.
type DummyFormatter struct {
	types.DummyFormatter
}

func (DummyFormatter) FormatVarID(id VarID) string         { return fmt.Sprintf("var@%d", id) }
func (DummyFormatter) FormatFunDeclID(id FunDeclID) string { return fmt.Sprintf("fun@%d", id) }
func (DummyFormatter) FormatField(_ types.TypeDeclID, _ types.VariantID, field types.FieldID) string {
	return fmt.Sprintf("%d", field)
}
func (DummyFormatter) FormatVariant(id types.TypeDeclID, variant types.VariantID) string {
	return fmt.Sprintf("@adt%d::@variant%d", id, variant)
}

// FmtWithCtx renders the place using ctx.
func (p Place) FmtWithCtx(ctx Formatter) string {
	out := ctx.FormatVarID(p.Var)
	for _, pe := range p.Projection {
		switch pe.Kind {
		case ProjDeref:
			out = fmt.Sprintf("*(%s)", out)
		case ProjDerefBox:
			out = fmt.Sprintf("deref_box (%s)", out)
		case ProjDerefRawPtr:
			out = fmt.Sprintf("deref_raw_ptr (%s)", out)
		case ProjDerefPtrUnique:
			out = fmt.Sprintf("deref_ptr_unique (%s)", out)
		case ProjDerefPtrNonNull:
			out = fmt.Sprintf("deref_ptr_non_null (%s)", out)
		case ProjField:
			out = fmtFieldProj(ctx, out, pe)
		case ProjIndex:
			out = fmt.Sprintf("(%s)[%s]", out, ctx.FormatVarID(pe.Index))
		}
	}
	return out
}

func fmtFieldProj(ctx Formatter, base string, pe ProjectionElem) string {
	switch pe.Field.Class {
	case FieldProjAdt:
		name := ctx.FormatField(pe.Field.Adt, pe.Field.Variant, pe.FieldID)
		downcast := ""
		if pe.Field.Variant != types.NoVariantID {
			downcast = fmt.Sprintf(" as variant @%d", pe.Field.Variant)
		}
		return fmt.Sprintf("(%s%s).%s", base, downcast, name)
	default:
		return fmt.Sprintf("(%s).%d", base, pe.FieldID)
	}
}

func (p Place) String() string {
	return p.FmtWithCtx(DummyFormatter{})
}

// FmtWithCtx renders the constant value using ctx.
func (cv ConstantValue) FmtWithCtx(ctx Formatter) string {
	switch cv.Kind {
	case ConstLiteral:
		return cv.Literal.String()
	case ConstAdt:
		variant := "None"
		if cv.Variant != types.NoVariantID {
			variant = fmt.Sprintf("Some(%d)", cv.Variant)
		}
		fields := make([]string, len(cv.Fields))
		for i, f := range cv.Fields {
			fields[i] = f.FmtWithCtx(ctx)
		}
		return fmt.Sprintf("ConstAdt %s [%s]", variant, strings.Join(fields, ", "))
	case ConstRef:
		return ctx.FormatGlobalDeclID(cv.Global)
	case ConstStatic:
		return fmt.Sprintf("alloc: &%s", ctx.FormatGlobalDeclID(cv.Global))
	case ConstVar:
		return fmt.Sprintf("const %s", ctx.FormatConstGenericVarID(cv.Var))
	default:
		return "unknown"
	}
}

func (cv ConstantValue) String() string {
	return cv.FmtWithCtx(DummyFormatter{})
}

// FmtWithCtx renders the operand using ctx.
func (o Operand) FmtWithCtx(ctx Formatter) string {
	switch o.Kind {
	case OperandCopy:
		return fmt.Sprintf("copy (%s)", o.Place.FmtWithCtx(ctx))
	case OperandMove:
		return fmt.Sprintf("move (%s)", o.Place.FmtWithCtx(ctx))
	case OperandConst:
		return fmt.Sprintf("const (%s)", o.Const.FmtWithCtx(ctx))
	default:
		return "unknown"
	}
}

func (o Operand) String() string {
	return o.FmtWithCtx(DummyFormatter{})
}

// FmtWithCtx renders the rvalue using ctx.
func (rv Rvalue) FmtWithCtx(ctx Formatter) string {
	switch rv.Kind {
	case RvUse:
		return rv.Use.FmtWithCtx(ctx)
	case RvRef:
		place := rv.Ref.Place.FmtWithCtx(ctx)
		switch rv.Ref.Kind {
		case BorrowShared:
			return "&" + place
		case BorrowMut:
			return "&mut " + place
		case BorrowTwoPhaseMut:
			return "&two-phase-mut " + place
		default:
			return "&shallow " + place
		}
	case RvUnaryOp:
		return fmt.Sprintf("%s(%s)", rv.Unary.Op, rv.Unary.Arg.FmtWithCtx(ctx))
	case RvBinaryOp:
		return fmt.Sprintf("%s %s %s",
			rv.Binary.Left.FmtWithCtx(ctx), rv.Binary.Op, rv.Binary.Right.FmtWithCtx(ctx))
	case RvDiscriminant:
		return fmt.Sprintf("@discriminant(%s)", rv.Discriminant.FmtWithCtx(ctx))
	case RvAggregate:
		return fmtAggregate(ctx, rv.Aggregate)
	case RvGlobal:
		return ctx.FormatGlobalDeclID(rv.Global)
	case RvLen:
		return fmt.Sprintf("len(%s)", rv.Len.Place.FmtWithCtx(ctx))
	default:
		return "unknown"
	}
}

func fmtAggregate(ctx Formatter, agg AggregateRvalue) string {
	ops := make([]string, len(agg.Ops))
	for i, op := range agg.Ops {
		ops[i] = op.FmtWithCtx(ctx)
	}

	switch agg.Kind.Class {
	case AggTuple:
		return fmt.Sprintf("(%s)", strings.Join(ops, ", "))
	case AggOption:
		switch agg.Kind.OptionVariant {
		case types.OptionNoneVariantID:
			if len(agg.Ops) != 0 {
				panic(fmt.Errorf("ir: Option::None aggregate with %d operands", len(agg.Ops)))
			}
			return "@Option::None"
		case types.OptionSomeVariantID:
			if len(agg.Ops) != 1 {
				panic(fmt.Errorf("ir: Option::Some aggregate with %d operands", len(agg.Ops)))
			}
			return fmt.Sprintf("@Option::Some(%s)", ops[0])
		default:
			panic(fmt.Errorf("ir: invalid option variant %d", agg.Kind.OptionVariant))
		}
	case AggAdt:
		fields := make([]string, len(agg.Ops))
		for i, op := range ops {
			name := ctx.FormatField(agg.Kind.Adt, agg.Kind.Variant, types.FieldID(int32(i)))
			fields[i] = fmt.Sprintf("%s: %s", name, op)
		}
		head := ctx.FormatTypeDeclID(agg.Kind.Adt)
		if agg.Kind.Variant != types.NoVariantID {
			head = ctx.FormatVariant(agg.Kind.Adt, agg.Kind.Variant)
		}
		return fmt.Sprintf("%s { %s }", head, strings.Join(fields, ", "))
	case AggArray:
		return fmt.Sprintf("[%s]", strings.Join(ops, ", "))
	case AggRange:
		return fmt.Sprintf("@Range[%s]", strings.Join(ops, ", "))
	default:
		return "unknown"
	}
}

func (rv Rvalue) String() string {
	return rv.FmtWithCtx(DummyFormatter{})
}

// FmtWithCtx renders the call using ctx.
func (c Call) FmtWithCtx(ctx Formatter) string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.FmtWithCtx(ctx)
	}
	var callee string
	if c.Func.Kind == FunRegular {
		callee = ctx.FormatFunDeclID(c.Func.Regular)
	} else {
		callee = "@" + c.Func.Assumed.String()
	}
	return fmt.Sprintf("%s := %s(%s)", c.Dest.FmtWithCtx(ctx), callee, strings.Join(args, ", "))
}

// FmtWithCtx renders the statement tree using ctx, one statement per line,
// indented by tab.
func (s *Statement) FmtWithCtx(ctx Formatter, indent string) string {
	switch s.Kind {
	case StAssign:
		return fmt.Sprintf("%s%s := %s", indent,
			s.Assign.Dst.FmtWithCtx(ctx), s.Assign.Src.FmtWithCtx(ctx))
	case StFakeRead:
		return fmt.Sprintf("%s@fake_read(%s)", indent, s.FakeRead.FmtWithCtx(ctx))
	case StSetDiscriminant:
		return fmt.Sprintf("%sset_discriminant(%s, %d)", indent,
			s.SetDiscriminant.Place.FmtWithCtx(ctx), s.SetDiscriminant.Variant)
	case StDrop:
		return fmt.Sprintf("%sdrop %s", indent, s.Drop.FmtWithCtx(ctx))
	case StAssert:
		return fmt.Sprintf("%sassert(%s == %t)", indent,
			s.Assert.Cond.FmtWithCtx(ctx), s.Assert.Expected)
	case StCall:
		return indent + s.Call.FmtWithCtx(ctx)
	case StPanic:
		return indent + "panic"
	case StReturn:
		return indent + "return"
	case StBreak:
		return fmt.Sprintf("%sbreak %d", indent, s.Depth)
	case StContinue:
		return fmt.Sprintf("%scontinue %d", indent, s.Depth)
	case StNop:
		return indent + "nop"
	case StSequence:
		return s.First.FmtWithCtx(ctx, indent) + "\n" + s.Second.FmtWithCtx(ctx, indent)
	case StSwitch:
		return s.Switch.fmtWithCtx(ctx, indent)
	case StLoop:
		return fmt.Sprintf("%sloop {\n%s\n%s}", indent,
			s.Loop.FmtWithCtx(ctx, indent+"\t"), indent)
	default:
		return indent + "unknown"
	}
}

func (sw *Switch) fmtWithCtx(ctx Formatter, indent string) string {
	inner := indent + "\t"
	switch sw.Kind {
	case SwitchIf:
		return fmt.Sprintf("%sif %s {\n%s\n%s} else {\n%s\n%s}",
			indent, sw.Scrutinee.FmtWithCtx(ctx),
			sw.IfTrue.FmtWithCtx(ctx, inner), indent,
			sw.IfFalse.FmtWithCtx(ctx, inner), indent)
	case SwitchInt:
		var b strings.Builder
		fmt.Fprintf(&b, "%sswitch %s {", indent, sw.Scrutinee.FmtWithCtx(ctx))
		for _, t := range sw.Targets {
			vals := make([]string, len(t.Values))
			for i, v := range t.Values {
				vals[i] = v.String()
			}
			fmt.Fprintf(&b, "\n%s%s =>\n%s", inner, strings.Join(vals, " | "),
				t.Target.FmtWithCtx(ctx, inner+"\t"))
		}
		fmt.Fprintf(&b, "\n%s_ =>\n%s", inner, sw.Otherwise.FmtWithCtx(ctx, inner+"\t"))
		fmt.Fprintf(&b, "\n%s}", indent)
		return b.String()
	case SwitchMatch:
		var b strings.Builder
		fmt.Fprintf(&b, "%smatch %s {", indent, sw.Place.FmtWithCtx(ctx))
		for _, t := range sw.MatchTargets {
			vars := make([]string, len(t.Variants))
			for i, v := range t.Variants {
				vars[i] = fmt.Sprintf("@%d", v)
			}
			fmt.Fprintf(&b, "\n%s%s =>\n%s", inner, strings.Join(vars, " | "),
				t.Target.FmtWithCtx(ctx, inner+"\t"))
		}
		fmt.Fprintf(&b, "\n%s}", indent)
		return b.String()
	default:
		return indent + "unknown"
	}
}

// FmtWithCtx renders the body: the locals first, then the statement tree.
func (b *ExprBody) FmtWithCtx(ctx Formatter, indent string) string {
	var out strings.Builder
	for id, v := range b.Locals.All {
		role := ""
		switch {
		case id == 0:
			role = " // return"
		case int(id) <= b.ArgCount:
			role = fmt.Sprintf(" // arg #%d", id)
		}
		fmt.Fprintf(&out, "%slet %s: %s;%s\n", indent, v, v.Ty.FmtWithCtx(ctx), role)
	}
	out.WriteString("\n")
	out.WriteString(b.Body.FmtWithCtx(ctx, indent))
	return out.String()
}
