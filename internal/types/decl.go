package types

import (
	"fmt"

	"llbc/internal/ids"
	"llbc/internal/names"
	"llbc/internal/source"
)

// Field is a field of a struct or of an enum variant. Tuple-struct fields
// have no name.
type Field struct {
	Name string // may be empty
	Ty   Ty
}

// Variant is one variant of an enum declaration.
type Variant struct {
	Name   string
	Fields *ids.Vector[FieldID, Field]
}

// TypeDeclKind enumerates the shapes of a type declaration.
type TypeDeclKind uint8

const (
	// DeclStruct has a single anonymous list of fields.
	DeclStruct TypeDeclKind = iota
	// DeclEnum has one or more variants.
	DeclEnum
	// DeclOpaque hides its definition; only the name is extracted.
	DeclOpaque
)

// TypeDecl is a translated type declaration.
type TypeDecl struct {
	ID   TypeDeclID
	Meta source.Meta
	Name names.Name

	RegionParams       *ids.Vector[RegionVarID, RegionVar]
	TypeParams         *ids.Vector[TypeVarID, TypeVar]
	ConstGenericParams *ids.Vector[ConstGenericVarID, ConstGenericVar]

	Kind     TypeDeclKind
	Fields   *ids.Vector[FieldID, Field]     // DeclStruct
	Variants *ids.Vector[VariantID, Variant] // DeclEnum
}

// FieldsOf returns the field list of the given variant, or of the struct
// itself when variant is NoVariantID.
func (d *TypeDecl) FieldsOf(variant VariantID) (*ids.Vector[FieldID, Field], bool) {
	switch d.Kind {
	case DeclStruct:
		if variant != NoVariantID {
			return nil, false
		}
		return d.Fields, true
	case DeclEnum:
		if variant == NoVariantID {
			return nil, false
		}
		v, ok := d.Variants.Get(variant)
		if !ok {
			return nil, false
		}
		return v.Fields, true
	default:
		return nil, false
	}
}

// TypeDecls stores the translated type declarations, densely indexed.
type TypeDecls struct {
	Decls *ids.Vector[TypeDeclID, *TypeDecl]
}

// NewTypeDecls returns an empty store.
func NewTypeDecls() *TypeDecls {
	return &TypeDecls{Decls: ids.NewVector[TypeDeclID, *TypeDecl]()}
}

// Get returns the declaration with the given identifier.
func (ds *TypeDecls) Get(id TypeDeclID) (*TypeDecl, bool) {
	return ds.Decls.Get(id)
}

// FieldName resolves the display name of a field, identified by its type
// declaration, optional variant (NoVariantID for structs) and positional
// field identifier. Unnamed fields display as their position.
func (ds *TypeDecls) FieldName(id TypeDeclID, variant VariantID, field FieldID) string {
	decl, ok := ds.Get(id)
	if !ok {
		return fmt.Sprintf("@field%d", field)
	}
	fields, ok := decl.FieldsOf(variant)
	if !ok {
		return fmt.Sprintf("@field%d", field)
	}
	f, ok := fields.Get(field)
	if !ok || f.Name == "" {
		return fmt.Sprintf("%d", field)
	}
	return f.Name
}

// VariantName resolves the display name of an enum variant.
func (ds *TypeDecls) VariantName(id TypeDeclID, variant VariantID) string {
	decl, ok := ds.Get(id)
	if !ok || decl.Kind != DeclEnum {
		return fmt.Sprintf("@variant%d", variant)
	}
	v, ok := decl.Variants.Get(variant)
	if !ok {
		return fmt.Sprintf("@variant%d", variant)
	}
	return v.Name
}

// TypeDeclName resolves the display name of a type declaration.
func (ds *TypeDecls) TypeDeclName(id TypeDeclID) string {
	decl, ok := ds.Get(id)
	if !ok {
		return fmt.Sprintf("@type%d", id)
	}
	return decl.Name.String()
}
