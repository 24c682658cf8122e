// Package names models the paths of extracted declarations
// (crate::module::item) and the opacity filtering applied to them.
package names

import "strings"

// Name is the path of a declaration, outermost element first.
type Name []string

// New builds a name from its path elements.
func New(elems ...string) Name {
	return Name(elems)
}

func (n Name) String() string {
	return strings.Join(n, "::")
}

// Equal reports whether two names are the same path.
func (n Name) Equal(other Name) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if n[i] != other[i] {
			return false
		}
	}
	return true
}

// IsInModules reports whether the name lives in crate and under one of the
// listed modules. A module entry may itself be a "::"-separated path;
// "crate::a::b::item" is in module "a" and in module "a::b".
func (n Name) IsInModules(crate string, modules map[string]struct{}) bool {
	if len(n) < 2 || n[0] != crate {
		return false
	}
	prefix := ""
	for _, elem := range n[1 : len(n)-1] {
		if prefix == "" {
			prefix = elem
		} else {
			prefix = prefix + "::" + elem
		}
		if _, ok := modules[prefix]; ok {
			return true
		}
	}
	return false
}
