package extract

import (
	"fmt"

	"llbc/internal/ids"
	"llbc/internal/ir"
	"llbc/internal/source"
	"llbc/internal/types"
)

// BodyCtx is the per-body translation context. It owns the local variable,
// region, type-parameter, const-generic and basic-block namespaces of the
// one body being translated, plus the memoizing maps from host indices into
// them. A BodyCtx never outlives or aliases across bodies.
type BodyCtx struct {
	Ctx *Ctx

	// Def is the host declaration whose body this is. Unevaluated
	// constants encountered in the body are resolved in its context.
	Def DeclID

	Locals             *ids.Vector[ir.VarID, ir.Var]
	RegionParams       *ids.Vector[types.RegionVarID, types.RegionVar]
	TypeParams         *ids.Vector[types.TypeVarID, types.TypeVar]
	ConstGenericParams *ids.Vector[types.ConstGenericVarID, types.ConstGenericVar]

	vars     *ids.Map[uint64, ir.VarID]
	regions  *ids.Map[uint64, types.RegionVarID]
	typeVars *ids.Map[uint64, types.TypeVarID]
	cgVars   *ids.Map[uint64, types.ConstGenericVarID]
	blocks   *ids.Map[uint64, ir.BlockID]
}

// NewBodyCtx returns a per-body context for the given host declaration.
func NewBodyCtx(cx *Ctx, def DeclID) *BodyCtx {
	return &BodyCtx{
		Ctx:                cx,
		Def:                def,
		Locals:             ids.NewVector[ir.VarID, ir.Var](),
		RegionParams:       ids.NewVector[types.RegionVarID, types.RegionVar](),
		TypeParams:         ids.NewVector[types.TypeVarID, types.TypeVar](),
		ConstGenericParams: ids.NewVector[types.ConstGenericVarID, types.ConstGenericVar](),
		vars:               ids.NewMap[uint64, ir.VarID](),
		regions:            ids.NewMap[uint64, types.RegionVarID](),
		typeVars:           ids.NewMap[uint64, types.TypeVarID](),
		cgVars:             ids.NewMap[uint64, types.ConstGenericVarID](),
		blocks:             ids.NewMap[uint64, ir.BlockID](),
	}
}

// PushVar registers a local under the given host index.
func (bx *BodyCtx) PushVar(host uint64, ty types.Ty, name string) ir.VarID {
	id, fresh := bx.vars.GetOrInsert(host)
	if !fresh {
		panic(fmt.Errorf("extract: host local %d pushed twice", host))
	}
	bx.Locals.Push(id, ir.Var{Index: id, Name: name, Ty: ty})
	return id
}

// VarID resolves a host local index registered with PushVar.
func (bx *BodyCtx) VarID(host uint64) (ir.VarID, bool) {
	return bx.vars.Get(host)
}

// PushRegionVar registers a region parameter under the given host index.
func (bx *BodyCtx) PushRegionVar(host uint64, name string) types.RegionVarID {
	id, fresh := bx.regions.GetOrInsert(host)
	if !fresh {
		panic(fmt.Errorf("extract: host region %d pushed twice", host))
	}
	bx.RegionParams.Push(id, types.RegionVar{Index: id, Name: name})
	return id
}

// PushTypeVar registers a type parameter under the given host index.
func (bx *BodyCtx) PushTypeVar(host uint64, name string) types.TypeVarID {
	id, fresh := bx.typeVars.GetOrInsert(host)
	if !fresh {
		panic(fmt.Errorf("extract: host type param %d pushed twice", host))
	}
	bx.TypeParams.Push(id, types.TypeVar{Index: id, Name: name})
	return id
}

// PushConstGenericVar registers a const-generic parameter under the given
// host index.
func (bx *BodyCtx) PushConstGenericVar(host uint64, name string, ty types.LiteralTy) types.ConstGenericVarID {
	id, fresh := bx.cgVars.GetOrInsert(host)
	if !fresh {
		panic(fmt.Errorf("extract: host const generic %d pushed twice", host))
	}
	bx.ConstGenericParams.Push(id, types.ConstGenericVar{Index: id, Name: name, Ty: ty})
	return id
}

// ConstGenericVarID resolves a host const-generic index registered with
// PushConstGenericVar.
func (bx *BodyCtx) ConstGenericVarID(host uint64) (types.ConstGenericVarID, bool) {
	return bx.cgVars.Get(host)
}

// BlockID returns the dense identifier for a host basic block, assigning
// one on first sight. Blocks are discovered out of order while following
// terminator edges, so this is memoized rather than push-in-order.
func (bx *BodyCtx) BlockID(host uint64) ir.BlockID {
	id, _ := bx.blocks.GetOrInsert(host)
	return id
}

// TranslateTy converts the host view of a constant's type into an IR type,
// registering referenced type declarations along the way.
func (bx *BodyCtx) TranslateTy(h HostTy) (types.Ty, error) {
	switch h.Kind {
	case HostTyBool:
		return types.TLiteral(types.BoolTy()), nil
	case HostTyChar:
		return types.TLiteral(types.CharTy()), nil
	case HostTyInt:
		return types.TLiteral(types.IntTy(h.Int)), nil
	case HostTyTuple:
		elems := make([]types.Ty, len(h.Elems))
		for i, e := range h.Elems {
			t, err := bx.TranslateTy(e)
			if err != nil {
				return types.Ty{}, err
			}
			elems[i] = t
		}
		return types.TTuple(elems...), nil
	case HostTyAdt:
		id := bx.Ctx.RegisterType(h.Adt)
		return types.TAdt(types.AdtID(id), nil, nil), nil
	case HostTyRef:
		elem, err := bx.TranslateTy(*h.Elem)
		if err != nil {
			return types.Ty{}, err
		}
		return types.TRef(types.RefShared, elem), nil
	case HostTyFloat:
		return types.Ty{}, fmt.Errorf("%w: floating-point type", ErrUnsupported)
	default:
		panic(fmt.Errorf("extract: unexpected host type kind %d for a constant", h.Kind))
	}
}

// Finish packages the accumulated locals into an expression body.
func (bx *BodyCtx) Finish(meta source.Meta, argCount int, root *ir.Statement) *ir.ExprBody {
	return &ir.ExprBody{
		Meta:     meta,
		ArgCount: argCount,
		Locals:   bx.Locals,
		Body:     root,
	}
}
