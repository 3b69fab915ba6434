package ir

import (
	"fmt"

	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

// Kind identifies an expression variant. The enumeration is closed: every
// switch over it in this package is exhaustive, and adding a kind is a
// breaking change for consumers by design.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBlock
	KindIf
	KindLoop
	KindBreak
	KindSwitch
	KindCall
	KindCallIndirect
	KindLocalGet
	KindLocalSet
	KindGlobalGet
	KindGlobalSet
	KindLoad
	KindStore
	KindConst
	KindUnary
	KindBinary
	KindSelect
	KindDrop
	KindReturn
	KindMemorySize
	KindMemoryGrow
	KindNop
	KindUnreachable
	KindAtomicRMW
	KindAtomicCmpxchg
	KindAtomicWait
	KindAtomicNotify
	KindAtomicFence
	KindSIMDExtract
	KindSIMDReplace
	KindSIMDShuffle
	KindSIMDTernary
	KindSIMDShift
	KindSIMDLoad
	KindMemoryInit
	KindDataDrop
	KindMemoryCopy
	KindMemoryFill
	KindPop
	KindRefNull
	KindRefIsNull
	KindRefFunc
	KindRefEq
	KindTry
	KindThrow
	KindRethrow
	KindBrOnExn
	KindTupleMake
	KindTupleExtract
	KindI31New
	KindI31Get
	KindRefTest
	KindRefCast
	KindBrOnCast
	KindRttCanon
	KindRttSub
	KindStructNew
	KindStructGet
	KindStructSet
	KindArrayNew
	KindArrayGet
	KindArraySet
	KindArrayLen

	numKinds
)

var kindNames = [numKinds]string{
	"invalid",
	"block",
	"if",
	"loop",
	"br",
	"br_table",
	"call",
	"call_indirect",
	"local.get",
	"local.set",
	"global.get",
	"global.set",
	"load",
	"store",
	"const",
	"unary",
	"binary",
	"select",
	"drop",
	"return",
	"memory.size",
	"memory.grow",
	"nop",
	"unreachable",
	"atomic.rmw",
	"atomic.cmpxchg",
	"atomic.wait",
	"atomic.notify",
	"atomic.fence",
	"simd.extract",
	"simd.replace",
	"simd.shuffle",
	"simd.ternary",
	"simd.shift",
	"simd.load",
	"memory.init",
	"data.drop",
	"memory.copy",
	"memory.fill",
	"pop",
	"ref.null",
	"ref.is_null",
	"ref.func",
	"ref.eq",
	"try",
	"throw",
	"rethrow",
	"br_on_exn",
	"tuple.make",
	"tuple.extract",
	"i31.new",
	"i31.get",
	"ref.test",
	"ref.cast",
	"br_on_cast",
	"rtt.canon",
	"rtt.sub",
	"struct.new",
	"struct.get",
	"struct.set",
	"array.new",
	"array.get",
	"array.set",
	"array.len",
}

// String returns the instruction-style name of the kind.
func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Expression is the interface satisfied by every node kind. The set of
// implementations is closed; only this package can define new ones.
type Expression interface {
	// Kind returns the variant tag, fixed at construction.
	Kind() Kind
	// Type returns the node's output type as of the last Finalize (or the
	// externally supplied type for kinds that are never inferred).
	Type() types.Type
	// SetType overwrites the output type. Used by callers that construct
	// or repair nodes whose type cannot be inferred.
	SetType(types.Type)
	// Finalize recomputes the output type from the node's fields and its
	// direct children's current types. Idempotent.
	Finalize()

	base() *Expr
}

// Expr is the header embedded in every node: the immutable kind tag and the
// mutable output type.
type Expr struct {
	kind Kind
	typ  types.Type
}

// Kind returns the variant tag.
func (e *Expr) Kind() Kind { return e.kind }

// Type returns the current output type.
func (e *Expr) Type() types.Type { return e.typ }

// SetType overwrites the output type.
func (e *Expr) SetType(t types.Type) { e.typ = t }

func (e *Expr) base() *Expr { return e }

// Is reports whether e is the concrete variant T.
func Is[T Expression](e Expression) bool {
	_, ok := e.(T)
	return ok
}

// As downcasts e to the concrete variant T, reporting failure instead of
// panicking.
func As[T Expression](e Expression) (T, bool) {
	t, ok := e.(T)
	return t, ok
}

// MustAs downcasts e to the concrete variant T and panics with a
// kind_mismatch error if e is any other variant. Use it where a mismatch is
// a bug in the caller, not an input condition.
func MustAs[T Expression](e Expression) T {
	t, ok := e.(T)
	if !ok {
		panic(errors.KindMismatch(fmt.Sprintf("%T", t), fmt.Sprintf("%T", e)))
	}
	return t
}

// anyUnreachable reports whether any expression in list has the unreachable
// type. Operands are evaluated left to right, so one unreachable operand
// makes the whole consumer unreachable.
func anyUnreachable(list []Expression) bool {
	for _, e := range list {
		if e.Type() == types.Unreachable {
			return true
		}
	}
	return false
}
