package extract

import (
	"fmt"

	"llbc/internal/ir"
	"llbc/internal/trace"
	"llbc/internal/types"
)

// hostWordBytes pins the host's pointer width. Isize and Usize constants
// are read as 64-bit values; a host with another word size is rejected
// rather than approximated.
const hostWordBytes = 8

// translateScalarLiteral reads a raw scalar out according to the
// destination literal type's width and signedness.
func translateScalarLiteral(ty types.LiteralTy, s HostScalar) types.Literal {
	switch ty.Kind {
	case types.LiteralBool:
		v, err := s.ToBool()
		if err != nil {
			panic(fmt.Errorf("extract: reading bool constant: %w", err))
		}
		return types.BoolLit(v)
	case types.LiteralChar:
		v, err := s.ToChar()
		if err != nil {
			panic(fmt.Errorf("extract: reading char constant: %w", err))
		}
		return types.CharLit(v)
	case types.LiteralInteger:
		it := ty.Int
		size := it.Size()
		if (it == types.Isize || it == types.Usize) && size != hostWordBytes {
			panic(fmt.Errorf("extract: %s is pinned to %d bytes, host uses %d",
				it, hostWordBytes, size))
		}
		var lit types.ScalarValue
		var err error
		if it.IsSigned() {
			var v int64
			if v, err = s.ToInt(size); err == nil {
				lit, err = types.ScalarFromInt(it, v)
			}
		} else {
			var v uint64
			if v, err = s.ToUint(size); err == nil {
				lit, err = types.ScalarFromUint(it, v)
			}
		}
		if err != nil {
			panic(fmt.Errorf("extract: reading %s constant: %w", it, err))
		}
		return types.ScalarLit(lit)
	default:
		panic(fmt.Errorf("extract: literal type %s cannot hold a scalar constant", ty))
	}
}

// translateScalarValue translates a directly readable scalar against its
// already-translated type. Besides primitives, a scalar can encode a
// degenerate ADT (single no-field variant), the unit tuple, or a static
// reference.
func (bx *BodyCtx) translateScalarValue(ty types.Ty, s HostScalar) ir.ConstantValue {
	switch {
	case ty.Kind == types.TyLiteral:
		return ir.LiteralConst(translateScalarLiteral(ty.Literal, s))

	case ty.Kind == types.TyAdt && ty.ID.Kind == types.TypeIDAdt:
		if len(ty.TypeArgs) != 0 || len(ty.CgArgs) != 0 {
			panic(fmt.Errorf("extract: scalar constant of a parameterized ADT"))
		}
		decl, ok := bx.Ctx.Crate.Types.Get(ty.ID.Adt)
		if !ok {
			panic(fmt.Errorf("extract: scalar constant of untranslated type %d", ty.ID.Adt))
		}
		variant := degenerateVariant(decl)
		return ir.AdtConst(variant, nil)

	case ty.IsUnit():
		return ir.AdtConst(types.NoVariantID, nil)

	case ty.Kind == types.TyRef && ty.Ref == types.RefShared:
		// A scalar of reference type is a pointer into a static item.
		if !s.IsStatic {
			panic(fmt.Errorf("extract: reference-typed scalar without a static pointer"))
		}
		return ir.StaticConst(bx.Ctx.RegisterGlobal(s.Static))

	default:
		panic(fmt.Errorf("extract: unexpected type for a scalar constant: %s",
			ty))
	}
}

// degenerateVariant checks that decl can appear as a bare scalar (single
// variant, no fields, no parameters) and returns the variant tag to record.
func degenerateVariant(decl *types.TypeDecl) types.VariantID {
	if decl.TypeParams.Len() != 0 || decl.ConstGenericParams.Len() != 0 {
		panic(fmt.Errorf("extract: scalar constant of parameterized type %s", decl.Name))
	}
	switch decl.Kind {
	case types.DeclEnum:
		if decl.Variants.Len() != 1 {
			panic(fmt.Errorf("extract: scalar constant of multi-variant enum %s", decl.Name))
		}
		if v := decl.Variants.MustGet(0); v.Fields.Len() != 0 {
			panic(fmt.Errorf("extract: scalar constant of field-bearing enum %s", decl.Name))
		}
		return 0
	case types.DeclStruct:
		if decl.Fields.Len() != 0 {
			panic(fmt.Errorf("extract: scalar constant of field-bearing struct %s", decl.Name))
		}
		return types.NoVariantID
	default:
		panic(fmt.Errorf("extract: scalar constant of opaque type %s", decl.Name))
	}
}

// translateByRef destructures a by-reference constant (in practice always a
// tuple) into per-field constants, each translated independently.
func (bx *BodyCtx) translateByRef(orc Oracle, ty types.Ty, c HostConst) (ir.ConstantValue, error) {
	if !(ty.Kind == types.TyAdt && ty.ID.Kind == types.TypeIDTuple) {
		panic(fmt.Errorf("extract: by-ref constant of non-tuple type %s",
			ty))
	}

	hostFields, err := orc.Destructure(c)
	if err != nil {
		return ir.ConstantValue{}, fmt.Errorf("extract: destructuring constant: %w", err)
	}
	if len(hostFields) != len(ty.TypeArgs) {
		panic(fmt.Errorf("extract: tuple constant has %d fields, type has %d",
			len(hostFields), len(ty.TypeArgs)))
	}

	// Each field is strictly smaller than its parent, so the mutual
	// recursion with TranslateConst bottoms out.
	fields := make([]ir.ConstantValue, len(hostFields))
	for i, hf := range hostFields {
		fty, fv, err := bx.TranslateConst(orc, hf)
		if err != nil {
			return ir.ConstantValue{}, err
		}
		if !fty.Equal(ty.TypeArgs[i]) {
			panic(fmt.Errorf("extract: tuple field %d has type %s, declaration says %s",
				i, fty, ty.TypeArgs[i]))
		}
		fields[i] = fv
	}
	return ir.AdtConst(types.NoVariantID, fields), nil
}

// TranslateConst normalizes one host constant into a (type, value) pair of
// the closed constant sublanguage.
//
// Unevaluated constants branch on the extraction mode: in top-level mode
// the defining declaration is registered as a global (translated once,
// referenced everywhere); in inline mode it is forced through the oracle
// and the result translated in place.
func (bx *BodyCtx) TranslateConst(orc Oracle, c HostConst) (types.Ty, ir.ConstantValue, error) {
	trace.Emit(bx.Ctx.Tracer(), trace.LevelDetail, "const",
		fmt.Sprintf("kind %d", c.Kind))

	switch c.Kind {
	case HostConstScalar:
		ty, err := bx.TranslateTy(c.Ty)
		if err != nil {
			return types.Ty{}, ir.ConstantValue{}, err
		}
		return ty, bx.translateScalarValue(ty, c.Scalar), nil

	case HostConstByRef:
		ty, err := bx.TranslateTy(c.Ty)
		if err != nil {
			return types.Ty{}, ir.ConstantValue{}, err
		}
		v, err := bx.translateByRef(orc, ty, c)
		if err != nil {
			return types.Ty{}, ir.ConstantValue{}, err
		}
		return ty, v, nil

	case HostConstZeroSized:
		ty, err := bx.TranslateTy(c.Ty)
		if err != nil {
			return types.Ty{}, ir.ConstantValue{}, err
		}
		if !ty.IsUnit() {
			panic(fmt.Errorf("extract: zero-sized constant of non-unit type %s",
				ty))
		}
		return ty, ir.UnitConst(), nil

	case HostConstUnevaluated:
		if bx.Ctx.Cfg.Mode == ModeTopLevel {
			id := bx.Ctx.RegisterGlobal(c.Def)
			ty, err := bx.TranslateTy(c.Ty)
			if err != nil {
				return types.Ty{}, ir.ConstantValue{}, err
			}
			return ty, ir.RefConst(id), nil
		}
		ev, err := orc.Eval(c.Def)
		if err != nil {
			return types.Ty{}, ir.ConstantValue{},
				fmt.Errorf("extract: evaluating constant decl %d: %w", c.Def, err)
		}
		if ev.Kind == HostConstUnevaluated {
			panic(fmt.Errorf("extract: oracle returned decl %d still unevaluated", c.Def))
		}
		return bx.TranslateConst(orc, ev)

	case HostConstParam:
		id, ok := bx.ConstGenericVarID(uint64(c.Param))
		if !ok {
			panic(fmt.Errorf("extract: const-generic param %d not in scope", c.Param))
		}
		ty, err := bx.TranslateTy(c.Ty)
		if err != nil {
			return types.Ty{}, ir.ConstantValue{}, err
		}
		return ty, ir.VarConst(id), nil

	case HostConstSlice:
		return types.Ty{}, ir.ConstantValue{},
			fmt.Errorf("%w: slice constant", ErrUnsupported)

	case HostConstFloat:
		return types.Ty{}, ir.ConstantValue{},
			fmt.Errorf("%w: floating-point constant", ErrUnsupported)

	default:
		// Error and placeholder constants cannot survive a successful
		// host compilation.
		panic(fmt.Errorf("extract: unexpected host constant kind %d", c.Kind))
	}
}

// TranslateConstAsConstGeneric translates a constant appearing in argument
// position of a parameterized type, where only literal-typed values are
// legal.
func (bx *BodyCtx) TranslateConstAsConstGeneric(orc Oracle, c HostConst) (types.ConstGeneric, error) {
	ty, v, err := bx.TranslateConst(orc, c)
	if err != nil {
		return types.ConstGeneric{}, err
	}
	if !ty.IsLiteral() {
		panic(fmt.Errorf("extract: const-generic argument of non-literal type %s",
			ty))
	}
	switch v.Kind {
	case ir.ConstLiteral:
		return types.CgValueOf(v.Literal), nil
	case ir.ConstRef:
		return types.CgGlobalOf(v.Global), nil
	case ir.ConstVar:
		return types.CgVarOf(v.Var), nil
	default:
		panic(fmt.Errorf("extract: constant kind %d cannot be a const-generic argument", v.Kind))
	}
}
