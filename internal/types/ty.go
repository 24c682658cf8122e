package types

import "fmt"

// AssumedTy enumerates the built-in types the extraction knows about.
type AssumedTy uint8

const (
	AssumedBox AssumedTy = iota
	AssumedOption
	AssumedArray
	AssumedSlice
	AssumedRange
)

func (t AssumedTy) String() string {
	switch t {
	case AssumedBox:
		return "alloc::boxed::Box"
	case AssumedOption:
		return "core::option::Option"
	case AssumedArray:
		return "@Array"
	case AssumedSlice:
		return "@Slice"
	case AssumedRange:
		return "@Range"
	default:
		return "unknown"
	}
}

// TypeIDKind enumerates the heads an ADT type can have.
type TypeIDKind uint8

const (
	// TypeIDAdt is a user-declared type.
	TypeIDAdt TypeIDKind = iota
	// TypeIDTuple is the anonymous tuple constructor.
	TypeIDTuple
	// TypeIDAssumed is a built-in type.
	TypeIDAssumed
)

// TypeID is the head of an ADT type: a declared type, the tuple constructor,
// or a built-in.
type TypeID struct {
	Kind    TypeIDKind
	Adt     TypeDeclID
	Assumed AssumedTy
}

// AdtID, TupleID and AssumedID build type heads.
func AdtID(id TypeDeclID) TypeID { return TypeID{Kind: TypeIDAdt, Adt: id} }
func TupleID() TypeID            { return TypeID{Kind: TypeIDTuple} }
func AssumedID(t AssumedTy) TypeID {
	return TypeID{Kind: TypeIDAssumed, Assumed: t}
}

// RefKind distinguishes shared from mutable references.
type RefKind uint8

const (
	RefShared RefKind = iota
	RefMut
)

// TyKind enumerates the type constructors of the erased IR.
type TyKind uint8

const (
	// TyLiteral is a primitive type (bool, char, integer).
	TyLiteral TyKind = iota
	// TyAdt is an ADT, tuple or built-in type applied to its arguments.
	TyAdt
	// TyRef is a reference. Regions are erased.
	TyRef
	// TyTypeVar is a type parameter of the enclosing declaration.
	TyTypeVar
	// TyNever is the uninhabited bottom type.
	TyNever
)

// Ty is an erased-region type.
type Ty struct {
	Kind     TyKind
	Literal  LiteralTy      // TyLiteral
	ID       TypeID         // TyAdt
	TypeArgs []Ty           // TyAdt
	CgArgs   []ConstGeneric // TyAdt
	Ref      RefKind        // TyRef
	Elem     *Ty            // TyRef
	Var      TypeVarID      // TyTypeVar
}

// TLiteral, TAdt, TTuple, TRef, TVar and TNever build types.
func TLiteral(lt LiteralTy) Ty { return Ty{Kind: TyLiteral, Literal: lt} }
func TAdt(id TypeID, typeArgs []Ty, cgArgs []ConstGeneric) Ty {
	return Ty{Kind: TyAdt, ID: id, TypeArgs: typeArgs, CgArgs: cgArgs}
}
func TTuple(elems ...Ty) Ty { return TAdt(TupleID(), elems, nil) }
func TRef(kind RefKind, elem Ty) Ty {
	return Ty{Kind: TyRef, Ref: kind, Elem: &elem}
}
func TVar(id TypeVarID) Ty { return Ty{Kind: TyTypeVar, Var: id} }
func TNever() Ty           { return Ty{Kind: TyNever} }

// UnitTy returns the unit type, encoded as the empty tuple.
func UnitTy() Ty { return TTuple() }

// IsUnit reports whether the type is the empty tuple.
func (t Ty) IsUnit() bool {
	return t.Kind == TyAdt && t.ID.Kind == TypeIDTuple && len(t.TypeArgs) == 0
}

// IsNever reports whether the type is the bottom type.
func (t Ty) IsNever() bool {
	return t.Kind == TyNever
}

// ContainsNever reports whether the bottom type occurs anywhere in t.
func (t Ty) ContainsNever() bool {
	switch t.Kind {
	case TyNever:
		return true
	case TyAdt:
		for _, arg := range t.TypeArgs {
			if arg.ContainsNever() {
				return true
			}
		}
		return false
	case TyRef:
		return t.Elem.ContainsNever()
	default:
		return false
	}
}

// IsLiteral reports whether the type is a primitive type.
func (t Ty) IsLiteral() bool {
	return t.Kind == TyLiteral
}

// AsLiteral returns the literal type.
func (t Ty) AsLiteral() (LiteralTy, bool) {
	if t.Kind != TyLiteral {
		return LiteralTy{}, false
	}
	return t.Literal, true
}

// Clone returns a deep copy of the type.
func (t Ty) Clone() Ty {
	out := t
	if t.TypeArgs != nil {
		out.TypeArgs = make([]Ty, len(t.TypeArgs))
		for i, arg := range t.TypeArgs {
			out.TypeArgs[i] = arg.Clone()
		}
	}
	if t.CgArgs != nil {
		out.CgArgs = append([]ConstGeneric(nil), t.CgArgs...)
	}
	if t.Elem != nil {
		elem := t.Elem.Clone()
		out.Elem = &elem
	}
	return out
}

// Equal reports whether two types are structurally identical.
func (t Ty) Equal(other Ty) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TyLiteral:
		return t.Literal == other.Literal
	case TyAdt:
		if t.ID != other.ID ||
			len(t.TypeArgs) != len(other.TypeArgs) ||
			len(t.CgArgs) != len(other.CgArgs) {
			return false
		}
		for i := range t.TypeArgs {
			if !t.TypeArgs[i].Equal(other.TypeArgs[i]) {
				return false
			}
		}
		for i := range t.CgArgs {
			if t.CgArgs[i] != other.CgArgs[i] {
				return false
			}
		}
		return true
	case TyRef:
		return t.Ref == other.Ref && t.Elem.Equal(*other.Elem)
	case TyTypeVar:
		return t.Var == other.Var
	default:
		return true
	}
}

// TypeSubst maps type variables to types.
type TypeSubst map[TypeVarID]Ty

// Substitute applies a type-variable substitution.
//
// Types reaching this IR have already been monomorphized, so this is a
// structural clone. A future component that instantiates generics over this
// IR must replace it with a real substitution.
func (t Ty) Substitute(_ TypeSubst) Ty {
	return t.Clone()
}

// ConstGenericKind enumerates const-generic argument kinds.
type ConstGenericKind uint8

const (
	// CgVar refers to a const-generic parameter in scope.
	CgVar ConstGenericKind = iota
	// CgValue is an evaluated literal.
	CgValue
	// CgGlobal refers to a global declaration.
	CgGlobal
)

// ConstGeneric is a value-level argument of an ADT type.
type ConstGeneric struct {
	Kind   ConstGenericKind
	Var    ConstGenericVarID
	Value  Literal
	Global GlobalDeclID
}

// CgVarOf, CgValueOf and CgGlobalOf build const-generic arguments.
func CgVarOf(id ConstGenericVarID) ConstGeneric {
	return ConstGeneric{Kind: CgVar, Var: id}
}
func CgValueOf(v Literal) ConstGeneric {
	return ConstGeneric{Kind: CgValue, Value: v}
}
func CgGlobalOf(id GlobalDeclID) ConstGeneric {
	return ConstGeneric{Kind: CgGlobal, Global: id}
}

func (cg ConstGeneric) String() string {
	switch cg.Kind {
	case CgVar:
		return fmt.Sprintf("const@%d", cg.Var)
	case CgValue:
		return cg.Value.String()
	case CgGlobal:
		return fmt.Sprintf("global@%d", cg.Global)
	default:
		return "unknown"
	}
}
