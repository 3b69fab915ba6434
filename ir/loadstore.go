package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

// Load reads Bytes bytes at Ptr+Offset from linear memory. The loaded type
// is chosen at creation and narrower-than-type loads extend according to
// Signed. Atomic loads are always zero extending.
type Load struct {
	Expr
	Bytes    uint8
	Signed   bool
	Offset   Address
	Align    Address
	IsAtomic bool
	Ptr      Expression
}

// NewLoad allocates a Load in the arena with the loaded type preset.
func NewLoad(a *arena.Arena, typ types.Type) *Load {
	l := arena.Alloc[Load](a)
	l.kind = KindLoad
	l.typ = typ
	return l
}

// Finalize implements Expression. The loaded type must have been set at
// creation; once an unreachable pointer erases it, callers that patch the
// pointer must also restore the type before refinalizing.
func (l *Load) Finalize() {
	if l.typ == types.None {
		panic(errors.Precondition(errors.PhaseFinalize, "load type must be set during creation"))
	}
	if l.typ.IsConcrete() && !l.typ.IsRef() {
		size := l.typ.Size()
		if uint32(l.Bytes) > size {
			panic(errors.Precondition(errors.PhaseFinalize,
				"load of %d bytes exceeds %s", l.Bytes, l.typ))
		}
		if uint32(l.Bytes) < size && !l.typ.IsInteger() {
			panic(errors.Precondition(errors.PhaseFinalize,
				"partial load requires an integer type, got %s", l.typ))
		}
		if l.IsAtomic {
			if !l.typ.IsInteger() {
				panic(errors.Precondition(errors.PhaseFinalize,
					"atomic load requires an integer type, got %s", l.typ))
			}
			if l.Signed {
				panic(errors.Precondition(errors.PhaseFinalize, "atomic load cannot be signed"))
			}
		}
	}
	if l.Ptr.Type() == types.Unreachable {
		l.typ = types.Unreachable
	}
}

// Store writes Bytes bytes of Value at Ptr+Offset into linear memory.
// ValueType records the stored type independently of Value so it survives
// an unreachable value.
type Store struct {
	Expr
	Bytes     uint8
	Offset    Address
	Align     Address
	IsAtomic  bool
	Ptr       Expression
	Value     Expression
	ValueType types.Type
}

// NewStore allocates a Store in the arena.
func NewStore(a *arena.Arena) *Store {
	s := arena.Alloc[Store](a)
	s.kind = KindStore
	return s
}

// Finalize implements Expression.
func (s *Store) Finalize() {
	if s.ValueType == types.None {
		panic(errors.Precondition(errors.PhaseFinalize, "store value type must be set during creation"))
	}
	if s.IsAtomic && !s.ValueType.IsInteger() {
		panic(errors.Precondition(errors.PhaseFinalize,
			"atomic store requires an integer type, got %s", s.ValueType))
	}
	if s.Ptr.Type() == types.Unreachable || s.Value.Type() == types.Unreachable {
		s.typ = types.Unreachable
	} else {
		s.typ = types.None
	}
}

// MemorySize returns the current size of linear memory in pages.
type MemorySize struct {
	Expr
	PtrType types.Type
}

// NewMemorySize allocates a MemorySize in the arena, addressing a 32 bit
// memory until Make64 is called.
func NewMemorySize(a *arena.Arena) *MemorySize {
	m := arena.Alloc[MemorySize](a)
	m.kind = KindMemorySize
	m.PtrType = types.I32
	m.typ = types.I32
	return m
}

// Make64 switches the node to 64 bit memory addressing.
func (m *MemorySize) Make64() {
	m.PtrType = types.I64
}

// Finalize implements Expression.
func (m *MemorySize) Finalize() {
	m.typ = m.PtrType
}

// MemoryGrow grows linear memory by Delta pages and returns the previous
// size, or -1 on failure.
type MemoryGrow struct {
	Expr
	Delta   Expression
	PtrType types.Type
}

// NewMemoryGrow allocates a MemoryGrow in the arena, addressing a 32 bit
// memory until Make64 is called.
func NewMemoryGrow(a *arena.Arena) *MemoryGrow {
	m := arena.Alloc[MemoryGrow](a)
	m.kind = KindMemoryGrow
	m.PtrType = types.I32
	m.typ = types.I32
	return m
}

// Make64 switches the node to 64 bit memory addressing.
func (m *MemoryGrow) Make64() {
	m.PtrType = types.I64
}

// Finalize implements Expression.
func (m *MemoryGrow) Finalize() {
	if m.Delta.Type() == types.Unreachable {
		m.typ = types.Unreachable
		return
	}
	m.typ = m.PtrType
}

// MemoryInit copies Size bytes of a passive data segment into linear memory
// at Dest, reading from Offset within the segment.
type MemoryInit struct {
	Expr
	Segment Index
	Dest    Expression
	Offset  Expression
	Size    Expression
}

// NewMemoryInit allocates a MemoryInit in the arena.
func NewMemoryInit(a *arena.Arena) *MemoryInit {
	m := arena.Alloc[MemoryInit](a)
	m.kind = KindMemoryInit
	return m
}

// Finalize implements Expression.
func (m *MemoryInit) Finalize() {
	if anyUnreachable([]Expression{m.Dest, m.Offset, m.Size}) {
		m.typ = types.Unreachable
		return
	}
	m.typ = types.None
}

// DataDrop discards a passive data segment.
type DataDrop struct {
	Expr
	Segment Index
}

// NewDataDrop allocates a DataDrop in the arena.
func NewDataDrop(a *arena.Arena) *DataDrop {
	d := arena.Alloc[DataDrop](a)
	d.kind = KindDataDrop
	return d
}

// Finalize implements Expression.
func (d *DataDrop) Finalize() {
	d.typ = types.None
}

// MemoryCopy copies Size bytes within linear memory from Source to Dest.
type MemoryCopy struct {
	Expr
	Dest   Expression
	Source Expression
	Size   Expression
}

// NewMemoryCopy allocates a MemoryCopy in the arena.
func NewMemoryCopy(a *arena.Arena) *MemoryCopy {
	m := arena.Alloc[MemoryCopy](a)
	m.kind = KindMemoryCopy
	return m
}

// Finalize implements Expression.
func (m *MemoryCopy) Finalize() {
	if anyUnreachable([]Expression{m.Dest, m.Source, m.Size}) {
		m.typ = types.Unreachable
		return
	}
	m.typ = types.None
}

// MemoryFill writes Size copies of the byte Value into linear memory
// starting at Dest.
type MemoryFill struct {
	Expr
	Dest  Expression
	Value Expression
	Size  Expression
}

// NewMemoryFill allocates a MemoryFill in the arena.
func NewMemoryFill(a *arena.Arena) *MemoryFill {
	m := arena.Alloc[MemoryFill](a)
	m.kind = KindMemoryFill
	return m
}

// Finalize implements Expression.
func (m *MemoryFill) Finalize() {
	if anyUnreachable([]Expression{m.Dest, m.Value, m.Size}) {
		m.typ = types.Unreachable
		return
	}
	m.typ = types.None
}
