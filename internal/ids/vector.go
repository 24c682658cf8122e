package ids

import "fmt"

// Vector is a dense container indexed by a namespace identifier: element i
// lives at index i and there are no gaps. Elements are appended in identifier
// order, normally with identifiers produced by the matching Generator.
type Vector[I ID, T any] struct {
	elems []T
}

// NewVector returns an empty dense vector.
func NewVector[I ID, T any]() *Vector[I, T] {
	return &Vector[I, T]{}
}

// Push appends v under id. The id must be exactly the next unused identifier;
// anything else is a programming error and panics.
func (vec *Vector[I, T]) Push(id I, v T) {
	if id != FromLen[I](len(vec.elems)) {
		panic(fmt.Errorf("ids: out-of-order push: id %d, expected %d", id, len(vec.elems)))
	}
	vec.elems = append(vec.elems, v)
}

// Get returns the element stored under id.
func (vec *Vector[I, T]) Get(id I) (T, bool) {
	if id < 0 || int(id) >= len(vec.elems) {
		var zero T
		return zero, false
	}
	return vec.elems[int(id)], true
}

// MustGet returns the element stored under id and panics if it is absent.
func (vec *Vector[I, T]) MustGet(id I) T {
	v, ok := vec.Get(id)
	if !ok {
		panic(fmt.Errorf("ids: no element with id %d", id))
	}
	return v
}

// Set replaces the element stored under id.
func (vec *Vector[I, T]) Set(id I, v T) {
	if id < 0 || int(id) >= len(vec.elems) {
		panic(fmt.Errorf("ids: set of absent id %d", id))
	}
	vec.elems[int(id)] = v
}

// Len returns the number of stored elements.
func (vec *Vector[I, T]) Len() int {
	return len(vec.elems)
}

// All iterates the elements in ascending identifier order.
func (vec *Vector[I, T]) All(yield func(I, T) bool) {
	for i, v := range vec.elems {
		if !yield(I(int32(i)), v) {
			return
		}
	}
}

// Slice returns the underlying storage in identifier order. The caller must
// not grow it.
func (vec *Vector[I, T]) Slice() []T {
	return vec.elems
}
