// Package ir defines the serializable intermediate representation produced
// by extraction: places, operands, rvalues, the constant-value sublanguage,
// the statement tree, function/global declarations, the traversal framework
// over all of it, and the crate serialization format.
package ir

import "llbc/internal/types"

type (
	// VarID identifies a local variable of a body.
	VarID int32
	// BlockID identifies a basic block during body translation.
	BlockID int32
	// FunDeclID identifies a translated function declaration.
	FunDeclID int32
)

// GlobalDeclID identifies a translated global declaration. The namespace is
// owned by the types package because const-generic arguments refer to
// globals too.
type GlobalDeclID = types.GlobalDeclID

const (
	// NoVarID marks the absence of a variable.
	NoVarID VarID = -1
	// NoBlockID marks the absence of a block.
	NoBlockID BlockID = -1
)
