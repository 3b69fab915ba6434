package types

import (
	"encoding/binary"
	"fmt"
	"sync"

	"fortio.org/safecast"
)

// Tuple handles are allocated from firstTupleID upward, keeping the basic
// handles stable across processes.
const firstTupleID = basicCount

// Tuple returns the canonical handle for the given element sequence. No
// elements is None and a single element is itself; longer sequences are
// interned so equal sequences share one handle. Every element must be a
// single concrete type. Tuple is safe for concurrent use.
func Tuple(elems ...Type) Type {
	switch len(elems) {
	case 0:
		return None
	case 1:
		return elems[0]
	}
	for _, e := range elems {
		if !e.IsConcrete() || e.IsTuple() {
			panic(fmt.Errorf("types: tuple element must be a single concrete type, got %s", e))
		}
	}
	return tuples.intern(elems)
}

// interner provides stable tuple handles by hashing element sequences.
type interner struct {
	mu    sync.Mutex
	elems [][]Type
	index map[string]Type
}

var tuples = interner{
	index: make(map[string]Type, 16),
}

func (in *interner) intern(elems []Type) Type {
	key := tupleKey(elems)

	in.mu.Lock()
	defer in.mu.Unlock()

	if id, ok := in.index[key]; ok {
		return id
	}
	slot, err := safecast.Conv[uint32](len(in.elems))
	if err != nil {
		panic(fmt.Errorf("tuple count overflow: %w", err))
	}
	id := firstTupleID + Type(slot)
	in.elems = append(in.elems, append([]Type(nil), elems...))
	in.index[key] = id
	return id
}

// lookup returns the interned element sequence for a tuple handle. The
// returned slice is shared and must not be mutated.
func (in *interner) lookup(id Type) ([]Type, bool) {
	if id < firstTupleID {
		return nil, false
	}
	in.mu.Lock()
	defer in.mu.Unlock()

	slot := int(id - firstTupleID)
	if slot >= len(in.elems) {
		return nil, false
	}
	return in.elems[slot], true
}

func (in *interner) mustLookup(id Type) []Type {
	elems, ok := in.lookup(id)
	if !ok {
		panic(fmt.Errorf("types: invalid tuple handle %d", uint32(id)))
	}
	return elems
}

func tupleKey(elems []Type) string {
	b := make([]byte, 4*len(elems))
	for i, e := range elems {
		binary.LittleEndian.PutUint32(b[4*i:], uint32(e))
	}
	return string(b)
}
