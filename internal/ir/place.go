package ir

import "llbc/internal/types"

// ProjectionKind enumerates the projection elements a place path is made of.
//
// The deref variants are tracked separately because each pointer wrapper
// erases differently downstream.
type ProjectionKind uint8

const (
	// ProjDeref dereferences a plain reference.
	ProjDeref ProjectionKind = iota
	// ProjDerefBox dereferences a box.
	ProjDerefBox
	// ProjDerefRawPtr dereferences a raw pointer.
	ProjDerefRawPtr
	// ProjDerefPtrUnique dereferences the unique-pointer wrapper.
	ProjDerefPtrUnique
	// ProjDerefPtrNonNull dereferences the non-null-pointer wrapper.
	ProjDerefPtrNonNull
	// ProjField accesses a field.
	ProjField
	// ProjIndex indexes by another variable.
	ProjIndex
)

// FieldProjClass distinguishes what kind of value a field projection reads
// from.
type FieldProjClass uint8

const (
	// FieldProjAdt reads a field of a declared ADT, possibly downcast to a
	// variant first.
	FieldProjAdt FieldProjClass = iota
	// FieldProjTuple reads a positional tuple field.
	FieldProjTuple
	// FieldProjOption reads the payload of an option value.
	FieldProjOption
)

// FieldProj qualifies a ProjField element.
type FieldProj struct {
	Class FieldProjClass

	Adt     types.TypeDeclID // FieldProjAdt
	Variant types.VariantID  // FieldProjAdt downcast or FieldProjOption; NoVariantID otherwise
	Arity   int              // FieldProjTuple
}

// ProjectionElem is one step of a place path. Steps apply left to right,
// from the base variable outward. A downcast field projection implies the
// value's runtime tag equals the named variant.
type ProjectionElem struct {
	Kind ProjectionKind

	Field   FieldProj     // ProjField
	FieldID types.FieldID // ProjField
	Index   VarID         // ProjIndex
}

// Projection is a place path.
type Projection []ProjectionElem

// Place is a memory location: a base variable plus a projection path.
type Place struct {
	Var        VarID
	Projection Projection
}

// NewPlace returns the place of a bare variable.
func NewPlace(v VarID) Place {
	return Place{Var: v}
}

// Clone returns a deep copy of the place.
func (p Place) Clone() Place {
	out := p
	if p.Projection != nil {
		out.Projection = append(Projection(nil), p.Projection...)
	}
	return out
}

// Substitute applies a type-variable substitution.
//
// Like Ty.Substitute this is a structural clone: there is nothing
// type-dependent left in an erased-region place.
func (p Place) Substitute(_ types.TypeSubst) Place {
	return p.Clone()
}
