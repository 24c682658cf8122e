package ids

import (
	"cmp"
	"slices"
)

// Map memoizes the association from an external key (typically a host
// compiler identifier) to a dense internal identifier. The first time a key
// is seen it is assigned the next fresh identifier; later lookups return the
// same identifier.
//
// Iteration order is the sort order of the external key, not insertion
// order, so serialized output is deterministic across runs.
type Map[K cmp.Ordered, I ID] struct {
	gen Generator[I]
	m   map[K]I
}

// NewMap returns an empty memoizing map.
func NewMap[K cmp.Ordered, I ID]() *Map[K, I] {
	return &Map[K, I]{m: make(map[K]I)}
}

// Get returns the identifier assigned to key, if any.
func (m *Map[K, I]) Get(key K) (I, bool) {
	id, ok := m.m[key]
	return id, ok
}

// Insert assigns a fresh identifier to key and returns it. The key must not
// be present already.
func (m *Map[K, I]) Insert(key K) I {
	if _, ok := m.m[key]; ok {
		panic("ids: duplicate insert")
	}
	id := m.gen.Fresh()
	m.m[key] = id
	return id
}

// GetOrInsert returns the identifier for key, assigning a fresh one on first
// sight. The second result reports whether the key was new.
func (m *Map[K, I]) GetOrInsert(key K) (I, bool) {
	if id, ok := m.m[key]; ok {
		return id, false
	}
	return m.Insert(key), true
}

// Len returns the number of keys.
func (m *Map[K, I]) Len() int {
	return len(m.m)
}

// Pair is one (external key, internal identifier) binding.
type Pair[K cmp.Ordered, I ID] struct {
	Key K
	ID  I
}

// Pairs returns the bindings sorted by external key.
func (m *Map[K, I]) Pairs() []Pair[K, I] {
	out := make([]Pair[K, I], 0, len(m.m))
	for k, id := range m.m {
		out = append(out, Pair[K, I]{Key: k, ID: id})
	}
	slices.SortFunc(out, func(a, b Pair[K, I]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}
