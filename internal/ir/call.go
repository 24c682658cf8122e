package ir

import "llbc/internal/types"

// AssumedFunID enumerates the built-in functions the extraction recognizes.
type AssumedFunID uint8

const (
	AssumedBoxNew AssumedFunID = iota
	AssumedBoxDeref
	AssumedBoxDerefMut
	AssumedBoxFree
	AssumedReplace
	AssumedArrayIndexShared
	AssumedArrayIndexMut
	AssumedSliceIndexShared
	AssumedSliceIndexMut
	AssumedSliceLen
)

func (id AssumedFunID) String() string {
	switch id {
	case AssumedBoxNew:
		return "alloc::boxed::Box::new"
	case AssumedBoxDeref:
		return "core::ops::Deref::deref"
	case AssumedBoxDerefMut:
		return "core::ops::DerefMut::deref_mut"
	case AssumedBoxFree:
		return "alloc::alloc::box_free"
	case AssumedReplace:
		return "core::mem::replace"
	case AssumedArrayIndexShared:
		return "@ArrayIndexShared"
	case AssumedArrayIndexMut:
		return "@ArrayIndexMut"
	case AssumedSliceIndexShared:
		return "@SliceIndexShared"
	case AssumedSliceIndexMut:
		return "@SliceIndexMut"
	case AssumedSliceLen:
		return "@SliceLen"
	default:
		return "unknown"
	}
}

// FunIDKind distinguishes declared functions from built-ins.
type FunIDKind uint8

const (
	FunRegular FunIDKind = iota
	FunAssumed
)

// FunID identifies a call target.
type FunID struct {
	Kind    FunIDKind
	Regular FunDeclID    // FunRegular
	Assumed AssumedFunID // FunAssumed
}

// RegularFun and AssumedFun build call targets.
func RegularFun(id FunDeclID) FunID {
	return FunID{Kind: FunRegular, Regular: id}
}
func AssumedFun(id AssumedFunID) FunID {
	return FunID{Kind: FunAssumed, Assumed: id}
}

// Call invokes a function: the instantiation arguments, the value
// arguments, and the destination place. Region arguments are erased.
type Call struct {
	Func     FunID
	TypeArgs []types.Ty
	CgArgs   []types.ConstGeneric
	Args     []Operand
	Dest     Place
}
