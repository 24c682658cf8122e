// Package ids provides the identifier substrate the IR is built on:
// per-namespace generators of dense identifiers, vectors indexed by those
// identifiers with no holes, and memoizing maps from external keys to
// identifiers.
//
// Every namespace (variables, blocks, type declarations, ...) wraps its
// identifiers in a distinct named int32 type, so the type checker prevents
// mixing identifiers across namespaces.
package ids

// ID constrains the per-namespace identifier types.
//
// Identifiers are dense and zero-based; -1 is reserved as the "no id"
// sentinel by the namespaces that need one.
type ID interface {
	~int32
}
