package types

import "fmt"

// IntegerTy enumerates the integer types of the IR. The pointer-sized types
// (Isize, Usize) are pinned to 64 bits by the extraction layer.
type IntegerTy uint8

const (
	Isize IntegerTy = iota
	I8
	I16
	I32
	I64
	Usize
	U8
	U16
	U32
	U64
)

// IsSigned reports whether the type is signed.
func (t IntegerTy) IsSigned() bool {
	switch t {
	case Isize, I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// Size returns the width of the type in bytes. Pointer-sized types report 8.
func (t IntegerTy) Size() int {
	switch t {
	case I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32:
		return 4
	case I64, U64, Isize, Usize:
		return 8
	default:
		panic(fmt.Errorf("types: unknown integer type %d", t))
	}
}

func (t IntegerTy) String() string {
	switch t {
	case Isize:
		return "isize"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case Usize:
		return "usize"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	default:
		return "unknown"
	}
}

// LiteralTyKind enumerates the literal (primitive) types.
type LiteralTyKind uint8

const (
	LiteralBool LiteralTyKind = iota
	LiteralChar
	LiteralInteger
)

// LiteralTy is the type of a literal value: bool, char, or an integer type.
type LiteralTy struct {
	Kind LiteralTyKind
	Int  IntegerTy // set when Kind == LiteralInteger
}

// BoolTy, CharTy and IntTy build literal types.
func BoolTy() LiteralTy { return LiteralTy{Kind: LiteralBool} }
func CharTy() LiteralTy { return LiteralTy{Kind: LiteralChar} }
func IntTy(t IntegerTy) LiteralTy {
	return LiteralTy{Kind: LiteralInteger, Int: t}
}

func (t LiteralTy) String() string {
	switch t.Kind {
	case LiteralBool:
		return "bool"
	case LiteralChar:
		return "char"
	case LiteralInteger:
		return t.Int.String()
	default:
		return "unknown"
	}
}
