package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/types"
)

// Call invokes the function named Target with ordered Operands. The result
// type comes from the callee's declared signature and is supplied at
// construction; Finalize does not consult the module.
type Call struct {
	Expr
	Operands []Expression
	Target   string
	IsReturn bool
}

// NewCall allocates a Call in the arena with the callee's declared result
// type.
func NewCall(a *arena.Arena, result types.Type) *Call {
	c := arena.Alloc[Call](a)
	c.kind = KindCall
	c.typ = result
	return c
}

// Finalize implements Expression. Operands are evaluated left to right, so
// an unreachable operand makes the call unreachable; a tail call never
// returns locally. Absorption is one-way: replacing an unreachable operand
// requires re-setting the declared result type.
func (c *Call) Finalize() {
	if anyUnreachable(c.Operands) {
		c.typ = types.Unreachable
	}
	if c.IsReturn {
		c.typ = types.Unreachable
	}
}

// CallIndirect invokes a function selected at runtime by Target (a table
// address computation) against the declared signature Sig.
type CallIndirect struct {
	Expr
	Sig      types.Signature
	Operands []Expression
	Target   Expression
	IsReturn bool
}

// NewCallIndirect allocates a CallIndirect in the arena with the expected
// callee signature.
func NewCallIndirect(a *arena.Arena, sig types.Signature) *CallIndirect {
	c := arena.Alloc[CallIndirect](a)
	c.kind = KindCallIndirect
	c.Sig = sig
	c.typ = sig.Results
	return c
}

// Finalize implements Expression. The type is fully recomputed from Sig, so
// unlike a direct call it recovers after an unreachable operand is replaced.
func (c *CallIndirect) Finalize() {
	c.typ = c.Sig.Results
	if anyUnreachable(c.Operands) {
		c.typ = types.Unreachable
	}
	if c.IsReturn {
		c.typ = types.Unreachable
	}
	if c.Target.Type() == types.Unreachable {
		c.typ = types.Unreachable
	}
}
