package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

// AtomicRMW atomically reads Bytes bytes at Ptr+Offset, combines the value
// with Value according to Op and stores the result back, yielding the old
// value.
type AtomicRMW struct {
	Expr
	Op     AtomicRMWOp
	Bytes  uint8
	Offset Address
	Ptr    Expression
	Value  Expression
}

// NewAtomicRMW allocates an AtomicRMW in the arena with the accessed type
// preset.
func NewAtomicRMW(a *arena.Arena, typ types.Type) *AtomicRMW {
	r := arena.Alloc[AtomicRMW](a)
	r.kind = KindAtomicRMW
	r.typ = typ
	return r
}

// Finalize implements Expression. The accessed type must have been set at
// creation and must be an integer.
func (r *AtomicRMW) Finalize() {
	if r.typ == types.None {
		panic(errors.Precondition(errors.PhaseFinalize, "atomic rmw type must be set during creation"))
	}
	if r.typ.IsConcrete() && !r.typ.IsInteger() {
		panic(errors.Precondition(errors.PhaseFinalize,
			"atomic rmw requires an integer type, got %s", r.typ))
	}
	if r.Ptr.Type() == types.Unreachable || r.Value.Type() == types.Unreachable {
		r.typ = types.Unreachable
	}
}

// AtomicCmpxchg atomically compares Bytes bytes at Ptr+Offset against
// Expected and stores Replacement when they match, yielding the old value.
type AtomicCmpxchg struct {
	Expr
	Bytes       uint8
	Offset      Address
	Ptr         Expression
	Expected    Expression
	Replacement Expression
}

// NewAtomicCmpxchg allocates an AtomicCmpxchg in the arena with the
// accessed type preset.
func NewAtomicCmpxchg(a *arena.Arena, typ types.Type) *AtomicCmpxchg {
	c := arena.Alloc[AtomicCmpxchg](a)
	c.kind = KindAtomicCmpxchg
	c.typ = typ
	return c
}

// Finalize implements Expression.
func (c *AtomicCmpxchg) Finalize() {
	if c.typ == types.None {
		panic(errors.Precondition(errors.PhaseFinalize, "atomic cmpxchg type must be set during creation"))
	}
	if c.typ.IsConcrete() && !c.typ.IsInteger() {
		panic(errors.Precondition(errors.PhaseFinalize,
			"atomic cmpxchg requires an integer type, got %s", c.typ))
	}
	if anyUnreachable([]Expression{c.Ptr, c.Expected, c.Replacement}) {
		c.typ = types.Unreachable
	}
}

// AtomicWait suspends the current agent until it is notified at Ptr+Offset
// or Timeout nanoseconds elapse, provided the memory still holds Expected.
// It yields an i32 outcome code.
type AtomicWait struct {
	Expr
	Offset       Address
	Ptr          Expression
	Expected     Expression
	Timeout      Expression
	ExpectedType types.Type
}

// NewAtomicWait allocates an AtomicWait in the arena.
func NewAtomicWait(a *arena.Arena) *AtomicWait {
	w := arena.Alloc[AtomicWait](a)
	w.kind = KindAtomicWait
	return w
}

// Finalize implements Expression.
func (w *AtomicWait) Finalize() {
	if anyUnreachable([]Expression{w.Ptr, w.Expected, w.Timeout}) {
		w.typ = types.Unreachable
		return
	}
	w.typ = types.I32
}

// AtomicNotify wakes up to NotifyCount agents waiting at Ptr+Offset and
// yields the number woken.
type AtomicNotify struct {
	Expr
	Offset      Address
	Ptr         Expression
	NotifyCount Expression
}

// NewAtomicNotify allocates an AtomicNotify in the arena.
func NewAtomicNotify(a *arena.Arena) *AtomicNotify {
	n := arena.Alloc[AtomicNotify](a)
	n.kind = KindAtomicNotify
	return n
}

// Finalize implements Expression.
func (n *AtomicNotify) Finalize() {
	if n.Ptr.Type() == types.Unreachable || n.NotifyCount.Type() == types.Unreachable {
		n.typ = types.Unreachable
		return
	}
	n.typ = types.I32
}

// AtomicFence orders memory accesses across agents.
type AtomicFence struct {
	Expr

	// Order is reserved for future memory orderings. Only sequential
	// consistency (zero) is currently defined.
	Order uint8
}

// NewAtomicFence allocates an AtomicFence in the arena.
func NewAtomicFence(a *arena.Arena) *AtomicFence {
	f := arena.Alloc[AtomicFence](a)
	f.kind = KindAtomicFence
	return f
}

// Finalize implements Expression.
func (f *AtomicFence) Finalize() {
	f.typ = types.None
}
