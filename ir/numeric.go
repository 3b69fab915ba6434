package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/literal"
	"github.com/wippyai/wasm-ir/types"
)

// Const produces the constant Value.
type Const struct {
	Expr
	Value literal.Value
}

// NewConst allocates a Const in the arena.
func NewConst(a *arena.Arena, value literal.Value) *Const {
	c := arena.Alloc[Const](a)
	c.kind = KindConst
	c.Set(value)
	return c
}

// Set replaces the constant and its type in one step.
func (c *Const) Set(value literal.Value) *Const {
	c.Value = value
	c.typ = value.Type()
	return c
}

// Finalize implements Expression.
func (c *Const) Finalize() {
	c.typ = c.Value.Type()
}

// ConstantValue extracts the literal carried by a constant expression. The
// second result is false when e is not a Const.
func ConstantValue(e Expression) (literal.Value, bool) {
	if c, ok := e.(*Const); ok {
		return c.Value, true
	}
	return literal.Value{}, false
}

// Unary applies Op to Value. The result type is a fixed function of the op
// tag; it is never recomputed from the operand.
type Unary struct {
	Expr
	Op    UnaryOp
	Value Expression
}

// NewUnary allocates a Unary in the arena.
func NewUnary(a *arena.Arena, op UnaryOp) *Unary {
	u := arena.Alloc[Unary](a)
	u.kind = KindUnary
	u.Op = op
	return u
}

// Finalize implements Expression.
func (u *Unary) Finalize() {
	if u.Value.Type() == types.Unreachable {
		u.typ = types.Unreachable
		return
	}
	u.typ = u.Op.resultType()
}

// Binary applies Op to Left and Right. The result type is a fixed function
// of the op tag; relational ops yield i32 whatever the operand width.
type Binary struct {
	Expr
	Op    BinaryOp
	Left  Expression
	Right Expression
}

// NewBinary allocates a Binary in the arena.
func NewBinary(a *arena.Arena, op BinaryOp) *Binary {
	b := arena.Alloc[Binary](a)
	b.kind = KindBinary
	b.Op = op
	return b
}

// IsRelational reports whether the node is a comparison.
func (b *Binary) IsRelational() bool {
	return b.Op.IsRelational()
}

// Finalize implements Expression.
func (b *Binary) Finalize() {
	if b.Left.Type() == types.Unreachable || b.Right.Type() == types.Unreachable {
		b.typ = types.Unreachable
		return
	}
	b.typ = b.Op.resultType()
}
