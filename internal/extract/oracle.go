package extract

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"llbc/internal/types"
)

// ErrUnsupported marks host input this layer deliberately does not handle
// yet (floating-point constants, slice constants, some valtree shapes).
// Callers distinguish it from invariant panics: an ErrUnsupported is a known
// gap, a panic is a bug.
var ErrUnsupported = errors.New("extract: unsupported host input")

// DeclID is the host compiler's opaque declaration identity.
type DeclID uint64

// HostTyKind discriminates the host-side views of a constant's type.
type HostTyKind uint8

const (
	HostTyBool HostTyKind = iota
	HostTyChar
	HostTyInt
	HostTyTuple
	HostTyAdt
	HostTyRef
	HostTyFloat
	HostTyOther
)

// HostTy is the host compiler's view of a constant's type, pruned to the
// shapes constants can take.
type HostTy struct {
	Kind  HostTyKind
	Int   types.IntegerTy // HostTyInt
	Elems []HostTy        // HostTyTuple
	Adt   DeclID          // HostTyAdt
	Elem  *HostTy         // HostTyRef, always a shared reference
}

func HostBool() HostTy                 { return HostTy{Kind: HostTyBool} }
func HostChar() HostTy                 { return HostTy{Kind: HostTyChar} }
func HostInt(t types.IntegerTy) HostTy { return HostTy{Kind: HostTyInt, Int: t} }
func HostTuple(elems ...HostTy) HostTy {
	return HostTy{Kind: HostTyTuple, Elems: elems}
}
func HostAdt(def DeclID) HostTy { return HostTy{Kind: HostTyAdt, Adt: def} }
func HostSharedRef(elem HostTy) HostTy {
	return HostTy{Kind: HostTyRef, Elem: &elem}
}

// HostScalar is a raw scalar read out of the host's constant memory: the
// bits plus the byte size they were stored at. A scalar may instead carry a
// pointer to a static item.
type HostScalar struct {
	Bits uint64
	Size int // bytes: 1, 2, 4 or 8

	IsStatic bool
	Static   DeclID
}

// NewHostScalar builds a bits scalar.
func NewHostScalar(bits uint64, size int) HostScalar {
	return HostScalar{Bits: bits, Size: size}
}

// StaticScalar builds a scalar holding a pointer to a static item.
func StaticScalar(def DeclID) HostScalar {
	return HostScalar{IsStatic: true, Static: def}
}

func (s HostScalar) checkSize(want int) error {
	if s.IsStatic {
		return fmt.Errorf("extract: scalar is a static pointer, not %d-byte bits", want)
	}
	if s.Size != want {
		return fmt.Errorf("extract: scalar has size %d, expected %d", s.Size, want)
	}
	return nil
}

// ToBool reads the scalar as a bool.
func (s HostScalar) ToBool() (bool, error) {
	if err := s.checkSize(1); err != nil {
		return false, err
	}
	switch s.Bits {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("extract: bool scalar with bits %#x", s.Bits)
	}
}

// ToChar reads the scalar as a char.
func (s HostScalar) ToChar() (rune, error) {
	if err := s.checkSize(4); err != nil {
		return 0, err
	}
	v, err := safecast.Conv[int32](s.Bits)
	if err != nil {
		return 0, fmt.Errorf("extract: char scalar out of range: %w", err)
	}
	if !utf8.ValidRune(rune(v)) {
		return 0, fmt.Errorf("extract: char scalar %#x is not a valid code point", s.Bits)
	}
	return rune(v), nil
}

// ToUint reads the scalar as an unsigned integer of the given width.
func (s HostScalar) ToUint(size int) (uint64, error) {
	if err := s.checkSize(size); err != nil {
		return 0, err
	}
	return s.Bits, nil
}

// ToInt reads the scalar as a signed integer of the given width,
// sign-extending from the stored size.
func (s HostScalar) ToInt(size int) (int64, error) {
	if err := s.checkSize(size); err != nil {
		return 0, err
	}
	switch size {
	case 1:
		return int64(int8(uint8(s.Bits))), nil
	case 2:
		return int64(int16(uint16(s.Bits))), nil
	case 4:
		return int64(int32(uint32(s.Bits))), nil
	default:
		return int64(s.Bits), nil
	}
}

// HostConstKind discriminates the host's layered constant encodings.
type HostConstKind uint8

const (
	// HostConstScalar is a directly readable scalar value.
	HostConstScalar HostConstKind = iota
	// HostConstByRef is a by-reference aggregate, destructured via the
	// oracle. In practice only tuples appear here.
	HostConstByRef
	// HostConstZeroSized is a zero-sized value; must be unit.
	HostConstZeroSized
	// HostConstSlice is a slice constant. Unsupported.
	HostConstSlice
	// HostConstFloat is a floating-point constant. Unsupported.
	HostConstFloat
	// HostConstUnevaluated names a constant declaration not yet forced.
	HostConstUnevaluated
	// HostConstParam references a const-generic formal parameter by its
	// host-side index.
	HostConstParam
	// HostConstError is the host's error/placeholder constant.
	HostConstError
)

// HostConst is one host-side constant: a kind tag, the host type, and the
// kind's payload.
type HostConst struct {
	Kind   HostConstKind
	Ty     HostTy
	Scalar HostScalar    // HostConstScalar
	Def    DeclID        // HostConstUnevaluated
	Param  int           // HostConstParam
}

func ScalarConst(ty HostTy, s HostScalar) HostConst {
	return HostConst{Kind: HostConstScalar, Ty: ty, Scalar: s}
}
func ByRefConst(ty HostTy) HostConst {
	return HostConst{Kind: HostConstByRef, Ty: ty}
}
func ZeroSizedConst(ty HostTy) HostConst {
	return HostConst{Kind: HostConstZeroSized, Ty: ty}
}
func UnevaluatedConst(ty HostTy, def DeclID) HostConst {
	return HostConst{Kind: HostConstUnevaluated, Ty: ty, Def: def}
}
func ParamConst(ty HostTy, index int) HostConst {
	return HostConst{Kind: HostConstParam, Ty: ty, Param: index}
}

// Oracle is the slice of host compiler services the constant translator
// needs. Implementations wrap the host compiler; tests supply fixtures.
type Oracle interface {
	// Destructure splits a by-reference constant into its per-field
	// constants, in declaration order.
	Destructure(c HostConst) ([]HostConst, error)

	// Eval forces an unevaluated constant to a directly readable one.
	// Only called in inline mode.
	Eval(def DeclID) (HostConst, error)
}
