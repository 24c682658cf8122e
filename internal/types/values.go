package types

import (
	"fmt"

	"fortio.org/safecast"
)

// ScalarValue is an integer constant tagged with its exact type. Signed
// values live in Int, unsigned ones in Uint; the constructors range-check
// the payload against the width of Ty.
type ScalarValue struct {
	Ty   IntegerTy
	Int  int64
	Uint uint64
}

// ScalarFromInt builds a scalar of a signed integer type, checking that v
// fits the target width.
func ScalarFromInt(ty IntegerTy, v int64) (ScalarValue, error) {
	if !ty.IsSigned() {
		return ScalarValue{}, fmt.Errorf("types: %s is not a signed integer type", ty)
	}
	var err error
	switch ty {
	case I8:
		_, err = safecast.Conv[int8](v)
	case I16:
		_, err = safecast.Conv[int16](v)
	case I32:
		_, err = safecast.Conv[int32](v)
	case I64, Isize:
		// Already an int64.
	}
	if err != nil {
		return ScalarValue{}, fmt.Errorf("types: value %d does not fit %s: %w", v, ty, err)
	}
	return ScalarValue{Ty: ty, Int: v}, nil
}

// ScalarFromUint builds a scalar of an unsigned integer type, checking that
// v fits the target width.
func ScalarFromUint(ty IntegerTy, v uint64) (ScalarValue, error) {
	if ty.IsSigned() {
		return ScalarValue{}, fmt.Errorf("types: %s is not an unsigned integer type", ty)
	}
	var err error
	switch ty {
	case U8:
		_, err = safecast.Conv[uint8](v)
	case U16:
		_, err = safecast.Conv[uint16](v)
	case U32:
		_, err = safecast.Conv[uint32](v)
	case U64, Usize:
		// Already a uint64.
	}
	if err != nil {
		return ScalarValue{}, fmt.Errorf("types: value %d does not fit %s: %w", v, ty, err)
	}
	return ScalarValue{Ty: ty, Uint: v}, nil
}

func (s ScalarValue) String() string {
	if s.Ty.IsSigned() {
		return fmt.Sprintf("%d : %s", s.Int, s.Ty)
	}
	return fmt.Sprintf("%d : %s", s.Uint, s.Ty)
}

// LiteralKind enumerates literal value kinds.
type LiteralKind uint8

const (
	LitBool LiteralKind = iota
	LitChar
	LitScalar
)

// Literal is a closed constant of a literal type. This is the only constant
// form allowed to reach the serialized IR.
type Literal struct {
	Kind   LiteralKind
	Bool   bool
	Char   rune
	Scalar ScalarValue
}

// BoolLit, CharLit and ScalarLit build literal values.
func BoolLit(v bool) Literal { return Literal{Kind: LitBool, Bool: v} }
func CharLit(v rune) Literal { return Literal{Kind: LitChar, Char: v} }
func ScalarLit(v ScalarValue) Literal {
	return Literal{Kind: LitScalar, Scalar: v}
}

// Ty returns the literal's type.
func (l Literal) LitTy() LiteralTy {
	switch l.Kind {
	case LitBool:
		return BoolTy()
	case LitChar:
		return CharTy()
	case LitScalar:
		return IntTy(l.Scalar.Ty)
	default:
		panic(fmt.Errorf("types: unknown literal kind %d", l.Kind))
	}
}

func (l Literal) String() string {
	switch l.Kind {
	case LitBool:
		return fmt.Sprintf("%t", l.Bool)
	case LitChar:
		return fmt.Sprintf("%q", l.Char)
	case LitScalar:
		return l.Scalar.String()
	default:
		return "unknown"
	}
}
