package ir

import "llbc/internal/types"

// BorrowKind tags a reference rvalue. Borrows are resolved upstream; the
// kinds are preserved for downstream analysis only.
type BorrowKind uint8

const (
	BorrowShared BorrowKind = iota
	BorrowMut
	BorrowTwoPhaseMut
	BorrowShallow
)

func (k BorrowKind) String() string {
	switch k {
	case BorrowShared:
		return "Shared"
	case BorrowMut:
		return "Mut"
	case BorrowTwoPhaseMut:
		return "TwoPhaseMut"
	case BorrowShallow:
		return "Shallow"
	default:
		return "unknown"
	}
}

// UnOpKind enumerates unary operators.
type UnOpKind uint8

const (
	UnNot UnOpKind = iota
	UnNeg
	UnCast
)

// UnOp is a unary operator; casts carry their source and target integer
// types.
type UnOp struct {
	Kind    UnOpKind
	CastSrc types.IntegerTy // UnCast
	CastTgt types.IntegerTy // UnCast
}

func (op UnOp) String() string {
	switch op.Kind {
	case UnNot:
		return "~"
	case UnNeg:
		return "-"
	case UnCast:
		return "cast<" + op.CastSrc.String() + "," + op.CastTgt.String() + ">"
	default:
		return "unknown"
	}
}

// BinOp enumerates binary operators.
type BinOp uint8

const (
	BinBitXor BinOp = iota
	BinBitAnd
	BinBitOr
	BinEq
	BinLt
	BinLe
	BinNe
	BinGe
	BinGt
	BinDiv
	BinRem
	BinAdd
	BinSub
	BinMul
	BinShl
	BinShr
)

func (op BinOp) String() string {
	switch op {
	case BinBitXor:
		return "^"
	case BinBitAnd:
		return "&"
	case BinBitOr:
		return "|"
	case BinEq:
		return "=="
	case BinLt:
		return "<"
	case BinLe:
		return "<="
	case BinNe:
		return "!="
	case BinGe:
		return ">="
	case BinGt:
		return ">"
	case BinDiv:
		return "/"
	case BinRem:
		return "%"
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinShl:
		return "<<"
	case BinShr:
		return ">>"
	default:
		return "unknown"
	}
}

// AggregateClass enumerates aggregate construction kinds.
type AggregateClass uint8

const (
	// AggTuple builds a tuple from its fields in order.
	AggTuple AggregateClass = iota
	// AggOption builds an option value; none takes zero operands, some
	// exactly one.
	AggOption
	// AggRange builds a range value.
	AggRange
	// AggArray builds an array; the length is a const-generic.
	AggArray
	// AggAdt builds a declared ADT, possibly a specific variant.
	AggAdt
)

// AggregateKind qualifies an aggregate rvalue.
type AggregateKind struct {
	Class AggregateClass

	OptionVariant types.VariantID      // AggOption
	Ty            types.Ty             // AggOption payload / AggRange element / AggArray element
	CgLen         types.ConstGeneric   // AggArray
	Adt           types.TypeDeclID     // AggAdt
	Variant       types.VariantID      // AggAdt; NoVariantID for structs
	TypeArgs      []types.Ty           // AggAdt
	CgArgs        []types.ConstGeneric // AggAdt
}

// RvalueKind enumerates rvalue kinds.
type RvalueKind uint8

const (
	// RvUse reads an operand.
	RvUse RvalueKind = iota
	// RvRef borrows a place.
	RvRef
	// RvUnaryOp applies a unary operator.
	RvUnaryOp
	// RvBinaryOp applies a binary operator.
	RvBinaryOp
	// RvDiscriminant reads the variant tag of a place.
	RvDiscriminant
	// RvAggregate constructs an aggregate from field operands.
	RvAggregate
	// RvGlobal reads a global.
	RvGlobal
	// RvLen queries the length of a place.
	RvLen
)

// RefRvalue borrows a place.
type RefRvalue struct {
	Place Place
	Kind  BorrowKind
}

// UnaryRvalue applies a unary operator to one operand.
type UnaryRvalue struct {
	Op  UnOp
	Arg Operand
}

// BinaryRvalue applies a binary operator to two operands.
type BinaryRvalue struct {
	Op    BinOp
	Left  Operand
	Right Operand
}

// AggregateRvalue constructs an aggregate.
type AggregateRvalue struct {
	Kind AggregateKind
	Ops  []Operand
}

// LenRvalue queries a length. CgLen carries the static length for arrays
// and is nil for slices.
type LenRvalue struct {
	Place Place
	Ty    types.Ty
	CgLen *types.ConstGeneric
}

// Rvalue is a computation producing a value to store into a place.
type Rvalue struct {
	Kind RvalueKind

	Use          Operand         // RvUse
	Ref          RefRvalue       // RvRef
	Unary        UnaryRvalue     // RvUnaryOp
	Binary       BinaryRvalue    // RvBinaryOp
	Discriminant Place           // RvDiscriminant
	Aggregate    AggregateRvalue // RvAggregate
	Global       GlobalDeclID    // RvGlobal
	Len          LenRvalue       // RvLen
}

// Clone returns a deep copy of the rvalue.
func (rv Rvalue) Clone() Rvalue {
	out := rv
	out.Use = rv.Use.Clone()
	out.Ref.Place = rv.Ref.Place.Clone()
	out.Unary.Arg = rv.Unary.Arg.Clone()
	out.Binary.Left = rv.Binary.Left.Clone()
	out.Binary.Right = rv.Binary.Right.Clone()
	out.Discriminant = rv.Discriminant.Clone()
	if rv.Aggregate.Ops != nil {
		out.Aggregate.Ops = make([]Operand, len(rv.Aggregate.Ops))
		for i, op := range rv.Aggregate.Ops {
			out.Aggregate.Ops[i] = op.Clone()
		}
	}
	out.Aggregate.Kind = cloneAggregateKind(rv.Aggregate.Kind)
	out.Len.Place = rv.Len.Place.Clone()
	out.Len.Ty = rv.Len.Ty.Clone()
	if rv.Len.CgLen != nil {
		cg := *rv.Len.CgLen
		out.Len.CgLen = &cg
	}
	return out
}

func cloneAggregateKind(ak AggregateKind) AggregateKind {
	out := ak
	out.Ty = ak.Ty.Clone()
	if ak.TypeArgs != nil {
		out.TypeArgs = make([]types.Ty, len(ak.TypeArgs))
		for i, t := range ak.TypeArgs {
			out.TypeArgs[i] = t.Clone()
		}
	}
	if ak.CgArgs != nil {
		out.CgArgs = append([]types.ConstGeneric(nil), ak.CgArgs...)
	}
	return out
}

// Substitute applies a type-variable substitution (structural clone, see
// Ty.Substitute).
func (rv Rvalue) Substitute(_ types.TypeSubst) Rvalue {
	return rv.Clone()
}
