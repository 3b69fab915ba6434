package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
)

// The garbage collection proposal nodes below are placeholders. They carry
// a kind so passes can recognize and route around them, but finalizing one
// panics until typed struct and array support lands.

// RefTest checks a reference against a runtime type.
type RefTest struct {
	Expr
}

// NewRefTest allocates a RefTest in the arena.
func NewRefTest(a *arena.Arena) *RefTest {
	r := arena.Alloc[RefTest](a)
	r.kind = KindRefTest
	return r
}

// Finalize implements Expression.
func (r *RefTest) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "ref.test"))
}

// RefCast casts a reference to a runtime type.
type RefCast struct {
	Expr
}

// NewRefCast allocates a RefCast in the arena.
func NewRefCast(a *arena.Arena) *RefCast {
	r := arena.Alloc[RefCast](a)
	r.kind = KindRefCast
	return r
}

// Finalize implements Expression.
func (r *RefCast) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "ref.cast"))
}

// BrOnCast branches when a reference matches a runtime type.
type BrOnCast struct {
	Expr
}

// NewBrOnCast allocates a BrOnCast in the arena.
func NewBrOnCast(a *arena.Arena) *BrOnCast {
	b := arena.Alloc[BrOnCast](a)
	b.kind = KindBrOnCast
	return b
}

// Finalize implements Expression.
func (b *BrOnCast) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "br_on_cast"))
}

// RttCanon produces the canonical runtime type for a heap type.
type RttCanon struct {
	Expr
}

// NewRttCanon allocates an RttCanon in the arena.
func NewRttCanon(a *arena.Arena) *RttCanon {
	r := arena.Alloc[RttCanon](a)
	r.kind = KindRttCanon
	return r
}

// Finalize implements Expression.
func (r *RttCanon) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "rtt.canon"))
}

// RttSub derives a sub runtime type from a parent runtime type.
type RttSub struct {
	Expr
}

// NewRttSub allocates an RttSub in the arena.
func NewRttSub(a *arena.Arena) *RttSub {
	r := arena.Alloc[RttSub](a)
	r.kind = KindRttSub
	return r
}

// Finalize implements Expression.
func (r *RttSub) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "rtt.sub"))
}

// StructNew allocates a typed struct.
type StructNew struct {
	Expr
}

// NewStructNew allocates a StructNew in the arena.
func NewStructNew(a *arena.Arena) *StructNew {
	s := arena.Alloc[StructNew](a)
	s.kind = KindStructNew
	return s
}

// Finalize implements Expression.
func (s *StructNew) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "struct.new"))
}

// StructGet reads a field of a typed struct.
type StructGet struct {
	Expr
}

// NewStructGet allocates a StructGet in the arena.
func NewStructGet(a *arena.Arena) *StructGet {
	s := arena.Alloc[StructGet](a)
	s.kind = KindStructGet
	return s
}

// Finalize implements Expression.
func (s *StructGet) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "struct.get"))
}

// StructSet writes a field of a typed struct.
type StructSet struct {
	Expr
}

// NewStructSet allocates a StructSet in the arena.
func NewStructSet(a *arena.Arena) *StructSet {
	s := arena.Alloc[StructSet](a)
	s.kind = KindStructSet
	return s
}

// Finalize implements Expression.
func (s *StructSet) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "struct.set"))
}

// ArrayNew allocates a typed array.
type ArrayNew struct {
	Expr
}

// NewArrayNew allocates an ArrayNew in the arena.
func NewArrayNew(a *arena.Arena) *ArrayNew {
	n := arena.Alloc[ArrayNew](a)
	n.kind = KindArrayNew
	return n
}

// Finalize implements Expression.
func (n *ArrayNew) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "array.new"))
}

// ArrayGet reads an element of a typed array.
type ArrayGet struct {
	Expr
}

// NewArrayGet allocates an ArrayGet in the arena.
func NewArrayGet(a *arena.Arena) *ArrayGet {
	g := arena.Alloc[ArrayGet](a)
	g.kind = KindArrayGet
	return g
}

// Finalize implements Expression.
func (g *ArrayGet) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "array.get"))
}

// ArraySet writes an element of a typed array.
type ArraySet struct {
	Expr
}

// NewArraySet allocates an ArraySet in the arena.
func NewArraySet(a *arena.Arena) *ArraySet {
	s := arena.Alloc[ArraySet](a)
	s.kind = KindArraySet
	return s
}

// Finalize implements Expression.
func (s *ArraySet) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "array.set"))
}

// ArrayLen yields the length of a typed array.
type ArrayLen struct {
	Expr
}

// NewArrayLen allocates an ArrayLen in the arena.
func NewArrayLen(a *arena.Arena) *ArrayLen {
	l := arena.Alloc[ArrayLen](a)
	l.kind = KindArrayLen
	return l
}

// Finalize implements Expression.
func (l *ArrayLen) Finalize() {
	panic(errors.Unimplemented(errors.PhaseFinalize, "array.len"))
}
