package ids

import (
	"fmt"

	"fortio.org/safecast"
)

// Generator hands out fresh identifiers for one namespace, starting at 0 and
// strictly increasing. It never reuses a value.
type Generator[I ID] struct {
	next I
}

// NewGenerator returns a generator whose first Fresh call yields 0.
func NewGenerator[I ID]() *Generator[I] {
	return &Generator[I]{}
}

// Fresh returns the next identifier.
func (g *Generator[I]) Fresh() I {
	id := g.next
	if id < 0 {
		panic(fmt.Errorf("ids: generator overflow"))
	}
	g.next++
	return id
}

// Issued reports how many identifiers have been handed out so far.
func (g *Generator[I]) Issued() int {
	return int(g.next)
}

// FromLen converts a container length to the identifier that the next pushed
// element would receive.
func FromLen[I ID](n int) I {
	v, err := safecast.Conv[int32](n)
	if err != nil {
		panic(fmt.Errorf("ids: length does not fit an identifier: %w", err))
	}
	return I(v)
}
