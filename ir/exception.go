package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/types"
)

// Try evaluates Body and, when it throws, CatchBody with the caught
// exception package on the catch stack.
type Try struct {
	Expr
	Body      Expression
	CatchBody Expression
}

// NewTry allocates a Try in the arena.
func NewTry(a *arena.Arena) *Try {
	t := arena.Alloc[Try](a)
	t.kind = KindTry
	return t
}

// Finalize implements Expression.
func (t *Try) Finalize() {
	t.typ = types.LeastUpperBound(t.Body.Type(), t.CatchBody.Type())
}

// FinalizeWithType sets the type directly, skipping the least upper bound.
// A none type still collapses to unreachable when neither arm can complete.
func (t *Try) FinalizeWithType(typ types.Type) {
	t.typ = typ
	if t.typ == types.None &&
		t.Body.Type() == types.Unreachable &&
		t.CatchBody.Type() == types.Unreachable {
		t.typ = types.Unreachable
	}
}

// Throw raises the exception Event with the given Operands.
type Throw struct {
	Expr
	Event    string
	Operands []Expression
}

// NewThrow allocates a Throw in the arena.
func NewThrow(a *arena.Arena) *Throw {
	t := arena.Alloc[Throw](a)
	t.kind = KindThrow
	return t
}

// Finalize implements Expression.
func (t *Throw) Finalize() {
	t.typ = types.Unreachable
}

// Rethrow raises the exception package held by Exnref again.
type Rethrow struct {
	Expr
	Exnref Expression
}

// NewRethrow allocates a Rethrow in the arena.
func NewRethrow(a *arena.Arena) *Rethrow {
	r := arena.Alloc[Rethrow](a)
	r.kind = KindRethrow
	return r
}

// Finalize implements Expression.
func (r *Rethrow) Finalize() {
	r.typ = types.Unreachable
}

// BrOnExn branches to Name with the unpacked Event payload when Exnref
// holds that event, and otherwise yields the exnref unchanged. Sent records
// the payload type delivered to the branch target.
type BrOnExn struct {
	Expr
	Name   string
	Event  string
	Exnref Expression
	Sent   types.Type
}

// NewBrOnExn allocates a BrOnExn in the arena.
func NewBrOnExn(a *arena.Arena) *BrOnExn {
	b := arena.Alloc[BrOnExn](a)
	b.kind = KindBrOnExn
	return b
}

// Finalize implements Expression.
func (b *BrOnExn) Finalize() {
	if b.Exnref.Type() == types.Unreachable {
		b.typ = types.Unreachable
		return
	}
	b.typ = types.Exnref
}

// Pop fetches a value pushed implicitly by the surrounding construct, such
// as the caught exception package at the head of a catch body.
type Pop struct {
	Expr
}

// NewPop allocates a Pop in the arena with its type preset.
func NewPop(a *arena.Arena, typ types.Type) *Pop {
	p := arena.Alloc[Pop](a)
	p.kind = KindPop
	p.typ = typ
	return p
}

// Finalize implements Expression. The type is fixed by the surrounding
// construct, so there is nothing to recompute.
func (p *Pop) Finalize() {}
