package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

// RefNull produces a null reference of the preset reference type.
type RefNull struct {
	Expr
}

// NewRefNull allocates a RefNull in the arena with its reference type
// preset.
func NewRefNull(a *arena.Arena, typ types.Type) *RefNull {
	r := arena.Alloc[RefNull](a)
	r.kind = KindRefNull
	r.typ = typ
	return r
}

// Finalize implements Expression. The preset type must be a reference.
func (r *RefNull) Finalize() {
	if !r.typ.IsRef() {
		panic(errors.Precondition(errors.PhaseFinalize,
			"ref.null requires a reference type, got %s", r.typ))
	}
}

// FinalizeWithType sets the reference type and finalizes.
func (r *RefNull) FinalizeWithType(typ types.Type) {
	r.typ = typ
	r.Finalize()
}

// RefIsNull tests Value for null, yielding an i32.
type RefIsNull struct {
	Expr
	Value Expression
}

// NewRefIsNull allocates a RefIsNull in the arena.
func NewRefIsNull(a *arena.Arena) *RefIsNull {
	r := arena.Alloc[RefIsNull](a)
	r.kind = KindRefIsNull
	return r
}

// Finalize implements Expression.
func (r *RefIsNull) Finalize() {
	if r.Value.Type() == types.Unreachable {
		r.typ = types.Unreachable
		return
	}
	r.typ = types.I32
}

// RefFunc produces a reference to the function named Func.
type RefFunc struct {
	Expr
	Func string
}

// NewRefFunc allocates a RefFunc in the arena.
func NewRefFunc(a *arena.Arena) *RefFunc {
	r := arena.Alloc[RefFunc](a)
	r.kind = KindRefFunc
	return r
}

// Finalize implements Expression.
func (r *RefFunc) Finalize() {
	r.typ = types.Funcref
}

// RefEq compares two eqref values for identity, yielding an i32.
type RefEq struct {
	Expr
	Left  Expression
	Right Expression
}

// NewRefEq allocates a RefEq in the arena.
func NewRefEq(a *arena.Arena) *RefEq {
	r := arena.Alloc[RefEq](a)
	r.kind = KindRefEq
	return r
}

// Finalize implements Expression.
func (r *RefEq) Finalize() {
	if r.Left.Type() == types.Unreachable || r.Right.Type() == types.Unreachable {
		r.typ = types.Unreachable
		return
	}
	r.typ = types.I32
}

// I31New packs the low 31 bits of an i32 Value into an i31ref.
type I31New struct {
	Expr
	Value Expression
}

// NewI31New allocates an I31New in the arena.
func NewI31New(a *arena.Arena) *I31New {
	n := arena.Alloc[I31New](a)
	n.kind = KindI31New
	return n
}

// Finalize implements Expression.
func (n *I31New) Finalize() {
	if n.Value.Type() == types.Unreachable {
		n.typ = types.Unreachable
		return
	}
	n.typ = types.I31ref
}

// I31Get unpacks an i31ref back to an i32, extending according to Signed.
type I31Get struct {
	Expr
	I31    Expression
	Signed bool
}

// NewI31Get allocates an I31Get in the arena.
func NewI31Get(a *arena.Arena) *I31Get {
	g := arena.Alloc[I31Get](a)
	g.kind = KindI31Get
	return g
}

// Finalize implements Expression.
func (g *I31Get) Finalize() {
	if g.I31.Type() == types.Unreachable {
		g.typ = types.Unreachable
		return
	}
	g.typ = types.I32
}
