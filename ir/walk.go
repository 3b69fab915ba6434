package ir

import (
	"github.com/wippyai/wasm-ir/errors"
)

// Children visits the direct children of e in evaluation order, skipping
// absent optional children. It stops and reports false as soon as visit
// does.
func Children(e Expression, visit func(Expression) bool) bool {
	each := func(children ...Expression) bool {
		for _, c := range children {
			if c == nil {
				continue
			}
			if !visit(c) {
				return false
			}
		}
		return true
	}
	switch curr := e.(type) {
	case *Block:
		return each(curr.List...)
	case *If:
		return each(curr.Condition, curr.IfTrue, curr.IfFalse)
	case *Loop:
		return each(curr.Body)
	case *Break:
		return each(curr.Value, curr.Condition)
	case *Switch:
		return each(curr.Value, curr.Condition)
	case *Call:
		return each(curr.Operands...)
	case *CallIndirect:
		if !each(curr.Operands...) {
			return false
		}
		return each(curr.Target)
	case *LocalSet:
		return each(curr.Value)
	case *GlobalSet:
		return each(curr.Value)
	case *Load:
		return each(curr.Ptr)
	case *Store:
		return each(curr.Ptr, curr.Value)
	case *Unary:
		return each(curr.Value)
	case *Binary:
		return each(curr.Left, curr.Right)
	case *Select:
		return each(curr.IfTrue, curr.IfFalse, curr.Condition)
	case *Drop:
		return each(curr.Value)
	case *Return:
		return each(curr.Value)
	case *MemoryGrow:
		return each(curr.Delta)
	case *AtomicRMW:
		return each(curr.Ptr, curr.Value)
	case *AtomicCmpxchg:
		return each(curr.Ptr, curr.Expected, curr.Replacement)
	case *AtomicWait:
		return each(curr.Ptr, curr.Expected, curr.Timeout)
	case *AtomicNotify:
		return each(curr.Ptr, curr.NotifyCount)
	case *SIMDExtract:
		return each(curr.Vec)
	case *SIMDReplace:
		return each(curr.Vec, curr.Value)
	case *SIMDShuffle:
		return each(curr.Left, curr.Right)
	case *SIMDTernary:
		return each(curr.A, curr.B, curr.C)
	case *SIMDShift:
		return each(curr.Vec, curr.Shift)
	case *SIMDLoad:
		return each(curr.Ptr)
	case *MemoryInit:
		return each(curr.Dest, curr.Offset, curr.Size)
	case *MemoryCopy:
		return each(curr.Dest, curr.Source, curr.Size)
	case *MemoryFill:
		return each(curr.Dest, curr.Value, curr.Size)
	case *RefIsNull:
		return each(curr.Value)
	case *RefEq:
		return each(curr.Left, curr.Right)
	case *Try:
		return each(curr.Body, curr.CatchBody)
	case *Throw:
		return each(curr.Operands...)
	case *Rethrow:
		return each(curr.Exnref)
	case *BrOnExn:
		return each(curr.Exnref)
	case *TupleMake:
		return each(curr.Operands...)
	case *TupleExtract:
		return each(curr.Tuple)
	case *I31New:
		return each(curr.Value)
	case *I31Get:
		return each(curr.I31)
	case *Nop, *Unreachable, *Const, *LocalGet, *GlobalGet, *MemorySize,
		*DataDrop, *AtomicFence, *Pop, *RefNull, *RefFunc,
		*RefTest, *RefCast, *BrOnCast, *RttCanon, *RttSub,
		*StructNew, *StructGet, *StructSet,
		*ArrayNew, *ArrayGet, *ArraySet, *ArrayLen:
		return true
	default:
		panic(errors.Precondition(errors.PhaseCast, "unhandled expression kind %s", e.Kind()))
	}
}

// Walk traverses the subtree rooted at e depth first in pre order. pre
// returning false prunes the node's children.
func Walk(e Expression, pre func(Expression) bool) {
	if !pre(e) {
		return
	}
	Children(e, func(child Expression) bool {
		Walk(child, pre)
		return true
	})
}

// PostWalk traverses the subtree rooted at e depth first in post order, so
// every node is visited after all of its children.
func PostWalk(e Expression, post func(Expression)) {
	Children(e, func(child Expression) bool {
		PostWalk(child, post)
		return true
	})
	post(e)
}

// Refinalize finalizes an entire subtree bottom up, re-establishing type
// consistency after a bulk edit. Nodes whose preset type was erased by an
// unreachable child keep the erased type; restore those by hand before
// calling.
func Refinalize(e Expression) {
	PostWalk(e, func(curr Expression) {
		curr.Finalize()
	})
}

// BranchesTo reports whether any branch in the subtree rooted at e targets
// name. The empty name never matches. Name shadowing by inner scopes is not
// considered, so a branch captured by an inner block with the same name
// still counts.
func BranchesTo(e Expression, name string) bool {
	if name == "" {
		return false
	}
	found := false
	Walk(e, func(curr Expression) bool {
		switch b := curr.(type) {
		case *Break:
			if b.Name == name {
				found = true
			}
		case *Switch:
			if b.Default == name {
				found = true
			}
			for _, t := range b.Targets {
				if t == name {
					found = true
					break
				}
			}
		case *BrOnExn:
			if b.Name == name {
				found = true
			}
		}
		return !found
	})
	return found
}
