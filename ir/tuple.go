package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

// TupleMake bundles the Operands into a single tuple value.
type TupleMake struct {
	Expr
	Operands []Expression
}

// NewTupleMake allocates a TupleMake in the arena.
func NewTupleMake(a *arena.Arena) *TupleMake {
	t := arena.Alloc[TupleMake](a)
	t.kind = KindTupleMake
	return t
}

// Finalize implements Expression.
func (t *TupleMake) Finalize() {
	elems := make([]types.Type, len(t.Operands))
	for i, op := range t.Operands {
		if op.Type() == types.Unreachable {
			t.typ = types.Unreachable
			return
		}
		elems[i] = op.Type()
	}
	t.typ = types.Tuple(elems...)
}

// TupleExtract projects element Index out of the tuple value.
type TupleExtract struct {
	Expr
	Tuple Expression
	Index Index
}

// NewTupleExtract allocates a TupleExtract in the arena.
func NewTupleExtract(a *arena.Arena) *TupleExtract {
	t := arena.Alloc[TupleExtract](a)
	t.kind = KindTupleExtract
	return t
}

// Finalize implements Expression.
func (t *TupleExtract) Finalize() {
	if t.Tuple.Type() == types.Unreachable {
		t.typ = types.Unreachable
		return
	}
	elems := t.Tuple.Type().Expand()
	if int(t.Index) >= len(elems) {
		panic(errors.OutOfBounds(errors.PhaseFinalize, int(t.Index), len(elems)))
	}
	t.typ = elems[t.Index]
}
