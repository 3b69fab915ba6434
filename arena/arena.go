package arena

import "reflect"

// chunkSize is the number of values of one type per chunk. Chunks are never
// reallocated, which keeps handed-out pointers stable.
const chunkSize = 64

// Arena is a bump allocator that groups allocations by type. The zero value
// is not usable; call New.
type Arena struct {
	slabs map[reflect.Type]any
	count int
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{slabs: make(map[reflect.Type]any)}
}

// Count returns the number of values allocated so far.
func (a *Arena) Count() int {
	return a.count
}

type slab[T any] struct {
	chunks [][]T
}

// Alloc returns a pointer to a new zero value of T owned by the arena. The
// pointer stays valid for the arena's lifetime.
func Alloc[T any](a *Arena) *T {
	key := reflect.TypeOf((*T)(nil)).Elem()
	s, ok := a.slabs[key].(*slab[T])
	if !ok {
		s = &slab[T]{}
		a.slabs[key] = s
	}

	last := len(s.chunks) - 1
	if last < 0 || len(s.chunks[last]) == cap(s.chunks[last]) {
		s.chunks = append(s.chunks, make([]T, 0, chunkSize))
		last++
	}

	var zero T
	s.chunks[last] = append(s.chunks[last], zero)
	a.count++
	return &s.chunks[last][len(s.chunks[last])-1]
}
