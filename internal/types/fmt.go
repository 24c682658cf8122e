package types

import (
	"fmt"
	"strings"
)

// Formatter resolves identifiers to display names when rendering types.
// Rendering is a debugging aid, not a stability contract.
type Formatter interface {
	FormatTypeDeclID(id TypeDeclID) string
	FormatTypeVarID(id TypeVarID) string
	FormatConstGenericVarID(id ConstGenericVarID) string
	FormatGlobalDeclID(id GlobalDeclID) string
}

// DummyFormatter renders identifiers as raw indices. Used by the String
// methods when no context is at hand.
type DummyFormatter struct{}

func (DummyFormatter) FormatTypeDeclID(id TypeDeclID) string { return fmt.Sprintf("@adt%d", id) }
func (DummyFormatter) FormatTypeVarID(id TypeVarID) string   { return fmt.Sprintf("@T%d", id) }
func (DummyFormatter) FormatConstGenericVarID(id ConstGenericVarID) string {
	return fmt.Sprintf("@const%d", id)
}
func (DummyFormatter) FormatGlobalDeclID(id GlobalDeclID) string {
	return fmt.Sprintf("@global%d", id)
}

// FmtWithCtx renders the type using ctx to resolve identifiers.
func (t Ty) FmtWithCtx(ctx Formatter) string {
	switch t.Kind {
	case TyLiteral:
		return t.Literal.String()
	case TyAdt:
		return fmtAdt(ctx, t)
	case TyRef:
		if t.Ref == RefMut {
			return fmt.Sprintf("&mut (%s)", t.Elem.FmtWithCtx(ctx))
		}
		return fmt.Sprintf("&(%s)", t.Elem.FmtWithCtx(ctx))
	case TyTypeVar:
		return ctx.FormatTypeVarID(t.Var)
	case TyNever:
		return "!"
	default:
		return "unknown"
	}
}

func fmtAdt(ctx Formatter, t Ty) string {
	args := make([]string, 0, len(t.TypeArgs)+len(t.CgArgs))
	for _, arg := range t.TypeArgs {
		args = append(args, arg.FmtWithCtx(ctx))
	}
	for _, cg := range t.CgArgs {
		args = append(args, cg.FmtWithCtx(ctx))
	}

	switch t.ID.Kind {
	case TypeIDTuple:
		return fmt.Sprintf("(%s)", strings.Join(args, ", "))
	case TypeIDAssumed:
		if len(args) == 0 {
			return t.ID.Assumed.String()
		}
		return fmt.Sprintf("%s<%s>", t.ID.Assumed, strings.Join(args, ", "))
	default:
		name := ctx.FormatTypeDeclID(t.ID.Adt)
		if len(args) == 0 {
			return name
		}
		return fmt.Sprintf("%s<%s>", name, strings.Join(args, ", "))
	}
}

func (t Ty) String() string {
	return t.FmtWithCtx(DummyFormatter{})
}

// FmtWithCtx renders the const-generic argument using ctx.
func (cg ConstGeneric) FmtWithCtx(ctx Formatter) string {
	switch cg.Kind {
	case CgVar:
		return ctx.FormatConstGenericVarID(cg.Var)
	case CgValue:
		return cg.Value.String()
	case CgGlobal:
		return ctx.FormatGlobalDeclID(cg.Global)
	default:
		return "unknown"
	}
}
