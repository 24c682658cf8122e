package ids

import (
	"cmp"
	"slices"
)

// OrderedMap associates arbitrary values with ordered keys and iterates them
// in key order. It backs the places where the translation contexts need a
// plain key-sorted map rather than a dense vector (for example blocks keyed
// by block identifier while fresh identifiers may be handed out before their
// block is pushed).
type OrderedMap[K cmp.Ordered, V any] struct {
	m map[K]V
}

// NewOrderedMap returns an empty ordered map.
func NewOrderedMap[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: make(map[K]V)}
}

// Get returns the value stored under key.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.m[key]
	return v, ok
}

// Set stores v under key, replacing any previous binding.
func (m *OrderedMap[K, V]) Set(key K, v V) {
	m.m[key] = v
}

// Len returns the number of bindings.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.m)
}

// Keys returns the keys in ascending order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// All iterates the bindings in ascending key order.
func (m *OrderedMap[K, V]) All(yield func(K, V) bool) {
	for _, k := range m.Keys() {
		if !yield(k, m.m[k]) {
			return
		}
	}
}
