package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/types"
)

// LocalGet reads the local at Index. The type mirrors the function's local
// declaration and is supplied at construction, never inferred.
type LocalGet struct {
	Expr
	Index Index
}

// NewLocalGet allocates a LocalGet in the arena with the local's declared
// type.
func NewLocalGet(a *arena.Arena, index Index, t types.Type) *LocalGet {
	l := arena.Alloc[LocalGet](a)
	l.kind = KindLocalGet
	l.Index = index
	l.typ = t
	return l
}

// Finalize implements Expression. The type is externally supplied, so there
// is nothing to infer.
func (l *LocalGet) Finalize() {}

// LocalSet writes Value to the local at Index. In tee form the node also
// yields the written value; a set form yields nothing. The form is encoded
// in the node's type: none means set, anything else means tee.
type LocalSet struct {
	Expr
	Index Index
	Value Expression
}

// NewLocalSet allocates a LocalSet in the arena, in set form.
func NewLocalSet(a *arena.Arena) *LocalSet {
	l := arena.Alloc[LocalSet](a)
	l.kind = KindLocalSet
	return l
}

// IsTee reports whether the node yields the written value.
func (l *LocalSet) IsTee() bool {
	return l.typ != types.None
}

// MakeTee switches the node to tee form with the local's declared type and
// re-finalizes.
func (l *LocalSet) MakeTee(t types.Type) {
	l.typ = t
	l.Finalize()
}

// MakeSet switches the node to set form and re-finalizes.
func (l *LocalSet) MakeSet() {
	l.typ = types.None
	l.Finalize()
}

// Finalize implements Expression.
func (l *LocalSet) Finalize() {
	if l.Value.Type() == types.Unreachable {
		l.typ = types.Unreachable
	} else if l.IsTee() {
		l.typ = l.Value.Type()
	} else {
		l.typ = types.None
	}
}

// GlobalGet reads the global named Name. The type mirrors the global's
// declaration and is supplied at construction, never inferred.
type GlobalGet struct {
	Expr
	Name string
}

// NewGlobalGet allocates a GlobalGet in the arena with the global's declared
// type.
func NewGlobalGet(a *arena.Arena, name string, t types.Type) *GlobalGet {
	g := arena.Alloc[GlobalGet](a)
	g.kind = KindGlobalGet
	g.Name = name
	g.typ = t
	return g
}

// Finalize implements Expression. The type is externally supplied, so there
// is nothing to infer.
func (g *GlobalGet) Finalize() {}

// GlobalSet writes Value to the global named Name.
type GlobalSet struct {
	Expr
	Name  string
	Value Expression
}

// NewGlobalSet allocates a GlobalSet in the arena.
func NewGlobalSet(a *arena.Arena) *GlobalSet {
	g := arena.Alloc[GlobalSet](a)
	g.kind = KindGlobalSet
	return g
}

// Finalize implements Expression.
func (g *GlobalSet) Finalize() {
	if g.Value.Type() == types.Unreachable {
		g.typ = types.Unreachable
	} else {
		g.typ = types.None
	}
}
