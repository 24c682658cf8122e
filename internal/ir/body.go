package ir

import (
	"fmt"

	"llbc/internal/ids"
	"llbc/internal/names"
	"llbc/internal/source"
	"llbc/internal/types"
)

// Var is a local variable of a body.
type Var struct {
	Index VarID
	Name  string // may be empty for temporaries
	Ty    types.Ty
}

func (v Var) String() string {
	if v.Name == "" {
		return fmt.Sprintf("var@%d", v.Index)
	}
	return v.Name
}

// ExprBody is the body of a function or global: the return slot and the
// arguments occupy locals [0, ArgCount], followed by the declared and
// temporary locals, and a root statement.
type ExprBody struct {
	Meta     source.Meta
	ArgCount int
	Locals   *ids.Vector[VarID, Var]
	Body     *Statement
}

// NewExprBody returns an empty body with the given argument count.
func NewExprBody(meta source.Meta, argCount int) *ExprBody {
	return &ExprBody{
		Meta:     meta,
		ArgCount: argCount,
		Locals:   ids.NewVector[VarID, Var](),
	}
}

// FunSig is an erased-region function signature.
type FunSig struct {
	RegionParams       *ids.Vector[types.RegionVarID, types.RegionVar]
	TypeParams         *ids.Vector[types.TypeVarID, types.TypeVar]
	ConstGenericParams *ids.Vector[types.ConstGenericVarID, types.ConstGenericVar]
	Inputs             []types.Ty
	Output             types.Ty
}

// FunDecl is a translated function. Opaque functions carry no body.
type FunDecl struct {
	ID   FunDeclID
	Meta source.Meta
	Name names.Name
	Sig  FunSig
	Body *ExprBody
}

// GlobalDecl is a translated global (const or static). Opaque globals carry
// no body.
type GlobalDecl struct {
	ID   GlobalDeclID
	Meta source.Meta
	Name names.Name
	Ty   types.Ty
	Body *ExprBody
}

// FunDecls and GlobalDecls are the dense declaration stores.
type (
	FunDecls    = ids.Vector[FunDeclID, *FunDecl]
	GlobalDecls = ids.Vector[GlobalDeclID, *GlobalDecl]
)

// NamedBody pairs a declaration name with its body, for passes that iterate
// every translated body.
type NamedBody struct {
	Name names.Name
	Body *ExprBody
}

// FunctionBodies yields the bodies of all non-opaque functions, in
// identifier order.
func FunctionBodies(funs *FunDecls) []NamedBody {
	var out []NamedBody
	for _, decl := range funs.All {
		if decl.Body != nil {
			out = append(out, NamedBody{Name: decl.Name, Body: decl.Body})
		}
	}
	return out
}

// GlobalBodies yields the bodies of all non-opaque globals, in identifier
// order.
func GlobalBodies(globals *GlobalDecls) []NamedBody {
	var out []NamedBody
	for _, decl := range globals.All {
		if decl.Body != nil {
			out = append(out, NamedBody{Name: decl.Name, Body: decl.Body})
		}
	}
	return out
}
