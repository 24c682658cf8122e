package ir

import "llbc/internal/types"

// ConstantValueKind enumerates the constant-value sublanguage.
type ConstantValueKind uint8

const (
	// ConstLiteral is a closed literal. The only kind allowed to reach the
	// serialized IR.
	ConstLiteral ConstantValueKind = iota
	// ConstAdt is an ADT value: optional variant tag plus ordered fields.
	// Used for struct-like and sum-like constants, and for the built-in
	// option type.
	ConstAdt
	// ConstRef refers to a separately translated named constant.
	ConstRef
	// ConstStatic refers to a static item.
	ConstStatic
	// ConstVar refers to a const-generic parameter in scope.
	ConstVar
)

// ConstantValue is a constant of the value sublanguage. Every kind except
// ConstLiteral is transient: it must be resolved to a literal or a global
// reference before serialization.
type ConstantValue struct {
	Kind ConstantValueKind

	Literal types.Literal           // ConstLiteral
	Variant types.VariantID         // ConstAdt; NoVariantID for struct-like values
	Fields  []ConstantValue         // ConstAdt
	Global  GlobalDeclID            // ConstRef, ConstStatic
	Var     types.ConstGenericVarID // ConstVar
}

// LiteralConst, AdtConst, RefConst, StaticConst and VarConst build constant
// values.
func LiteralConst(l types.Literal) ConstantValue {
	return ConstantValue{Kind: ConstLiteral, Literal: l}
}
func AdtConst(variant types.VariantID, fields []ConstantValue) ConstantValue {
	return ConstantValue{Kind: ConstAdt, Variant: variant, Fields: fields}
}
func RefConst(id GlobalDeclID) ConstantValue {
	return ConstantValue{Kind: ConstRef, Global: id}
}
func StaticConst(id GlobalDeclID) ConstantValue {
	return ConstantValue{Kind: ConstStatic, Global: id}
}
func VarConst(id types.ConstGenericVarID) ConstantValue {
	return ConstantValue{Kind: ConstVar, Var: id}
}

// UnitConst returns the unit value.
func UnitConst() ConstantValue {
	return AdtConst(types.NoVariantID, nil)
}

// Clone returns a deep copy of the constant value.
func (cv ConstantValue) Clone() ConstantValue {
	out := cv
	if cv.Fields != nil {
		out.Fields = make([]ConstantValue, len(cv.Fields))
		for i, f := range cv.Fields {
			out.Fields[i] = f.Clone()
		}
	}
	return out
}

// OperandKind enumerates how an operand reads its value.
type OperandKind uint8

const (
	// OperandCopy duplicates the current value of a place.
	OperandCopy OperandKind = iota
	// OperandMove takes the value out of a place; the place is logically
	// uninitialized afterwards (enforced upstream, not here).
	OperandMove
	// OperandConst is a typed constant.
	OperandConst
)

// Operand is a value read: by copy, by move, or a constant.
type Operand struct {
	Kind OperandKind

	Place Place         // OperandCopy, OperandMove
	Ty    types.Ty      // OperandConst
	Const ConstantValue // OperandConst
}

// CopyOp, MoveOp and ConstOp build operands.
func CopyOp(p Place) Operand { return Operand{Kind: OperandCopy, Place: p} }
func MoveOp(p Place) Operand { return Operand{Kind: OperandMove, Place: p} }
func ConstOp(ty types.Ty, cv ConstantValue) Operand {
	return Operand{Kind: OperandConst, Ty: ty, Const: cv}
}

// Clone returns a deep copy of the operand.
func (o Operand) Clone() Operand {
	out := o
	out.Place = o.Place.Clone()
	out.Ty = o.Ty.Clone()
	out.Const = o.Const.Clone()
	return out
}

// Substitute applies a type-variable substitution (structural clone, see
// Ty.Substitute).
func (o Operand) Substitute(_ types.TypeSubst) Operand {
	return o.Clone()
}
