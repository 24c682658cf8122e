// Package types defines the erased-region type sublanguage of the IR:
// literal types, ADT/tuple/assumed types, references, type and const-generic
// variables, and the type declarations they refer to.
package types

import "fmt"

// Identifier namespaces owned by this package. Each is a distinct type so
// identifiers from different namespaces cannot be interchanged.
type (
	// TypeDeclID identifies a translated type declaration.
	TypeDeclID int32
	// GlobalDeclID identifies a translated global (const/static) declaration.
	GlobalDeclID int32
	// TypeVarID identifies a type parameter of the enclosing declaration.
	TypeVarID int32
	// RegionVarID identifies a region parameter of the enclosing declaration.
	RegionVarID int32
	// ConstGenericVarID identifies a const-generic parameter of the
	// enclosing declaration.
	ConstGenericVarID int32
	// VariantID identifies a variant of an enum declaration.
	VariantID int32
	// FieldID identifies a field of a struct or variant, positionally.
	FieldID int32
)

// NoVariantID marks the absence of a variant (struct field projections,
// tuple aggregates).
const NoVariantID VariantID = -1

// Variant tags of the built-in option type.
const (
	OptionNoneVariantID VariantID = 0
	OptionSomeVariantID VariantID = 1
)

// TypeVar is a type parameter of a declaration.
type TypeVar struct {
	Index TypeVarID
	Name  string
}

func (v TypeVar) String() string {
	return v.Name
}

// RegionVar is a region parameter of a declaration. Regions are erased in
// this IR; the variables are kept only so declarations stay well-formed.
type RegionVar struct {
	Index RegionVarID
	Name  string // may be empty for anonymous regions
}

func (v RegionVar) String() string {
	if v.Name == "" {
		return fmt.Sprintf("'_%d", v.Index)
	}
	return v.Name
}

// ConstGenericVar is a const-generic parameter of a declaration.
type ConstGenericVar struct {
	Index ConstGenericVarID
	Name  string
	Ty    LiteralTy
}

func (v ConstGenericVar) String() string {
	return fmt.Sprintf("const %s : %s", v.Name, v.Ty)
}
