// Package source describes where extracted declarations come from: file
// names, locations, spans, and the meta information attached to every
// statement of the IR.
package source

import "fmt"

// FileID identifies a registered source file.
type FileID int32

// NoFileID marks the absence of a file.
const NoFileID FileID = -1

// FileNameKind distinguishes how a file name was obtained.
type FileNameKind uint8

const (
	// FileLocal is a path to a file of the crate being extracted.
	FileLocal FileNameKind = iota
	// FileVirtual is a path to a dependency outside the crate tree.
	FileVirtual
	// FileNotReal is a compiler-synthesized name (macros, command line).
	FileNotReal
)

// FileName is the host compiler's name for a source file.
type FileName struct {
	Kind FileNameKind
	Path string
}

func (f FileName) String() string {
	return f.Path
}

// Key returns a stable ordering key for file registration maps.
func (f FileName) Key() string {
	return fmt.Sprintf("%d:%s", f.Kind, f.Path)
}

// Loc is a position inside a file.
type Loc struct {
	Line uint32 // 1-based
	Col  uint32 // 0-based byte offset within the line
}

// Span delimits a region of a file.
type Span struct {
	File FileID
	Beg  Loc
	End  Loc
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d.%d-%d.%d", s.File, s.Beg.Line, s.Beg.Col, s.End.Line, s.End.Col)
}
