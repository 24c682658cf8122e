package ir

import (
	"llbc/internal/ids"
	"llbc/internal/source"
	"llbc/internal/types"
)

// Crate is the serializable output of an extraction: every namespace as a
// dense, identifier-ordered sequence of definitions.
type Crate struct {
	Name string

	Files   *ids.Vector[source.FileID, source.FileName]
	Types   *types.TypeDecls
	Funs    *FunDecls
	Globals *GlobalDecls
}

// NewCrate returns an empty crate.
func NewCrate(name string) *Crate {
	return &Crate{
		Name:    name,
		Files:   ids.NewVector[source.FileID, source.FileName](),
		Types:   types.NewTypeDecls(),
		Funs:    ids.NewVector[FunDeclID, *FunDecl](),
		Globals: ids.NewVector[GlobalDeclID, *GlobalDecl](),
	}
}

// crateFormatter renders identifiers against the crate's declaration
// stores.
type crateFormatter struct {
	crate *Crate
}

// NewFormatter returns a formatter resolving names in the crate.
func (c *Crate) NewFormatter() Formatter {
	return crateFormatter{crate: c}
}

func (f crateFormatter) FormatTypeDeclID(id types.TypeDeclID) string {
	return f.crate.Types.TypeDeclName(id)
}

func (f crateFormatter) FormatTypeVarID(id types.TypeVarID) string {
	return types.DummyFormatter{}.FormatTypeVarID(id)
}

func (f crateFormatter) FormatConstGenericVarID(id types.ConstGenericVarID) string {
	return types.DummyFormatter{}.FormatConstGenericVarID(id)
}

func (f crateFormatter) FormatGlobalDeclID(id types.GlobalDeclID) string {
	if decl, ok := f.crate.Globals.Get(id); ok {
		return decl.Name.String()
	}
	return types.DummyFormatter{}.FormatGlobalDeclID(id)
}

func (f crateFormatter) FormatVarID(id VarID) string {
	return DummyFormatter{}.FormatVarID(id)
}

func (f crateFormatter) FormatFunDeclID(id FunDeclID) string {
	if decl, ok := f.crate.Funs.Get(id); ok {
		return decl.Name.String()
	}
	return DummyFormatter{}.FormatFunDeclID(id)
}

func (f crateFormatter) FormatField(id types.TypeDeclID, variant types.VariantID, field types.FieldID) string {
	return f.crate.Types.FieldName(id, variant, field)
}

func (f crateFormatter) FormatVariant(id types.TypeDeclID, variant types.VariantID) string {
	return f.crate.Types.TypeDeclName(id) + "::" + f.crate.Types.VariantName(id, variant)
}
