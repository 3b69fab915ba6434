package ir

import (
	"testing"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindInvalid, "invalid"},
		{KindBlock, "block"},
		{KindBreak, "br"},
		{KindSwitch, "br_table"},
		{KindCallIndirect, "call_indirect"},
		{KindLocalGet, "local.get"},
		{KindAtomicCmpxchg, "atomic.cmpxchg"},
		{KindBrOnExn, "br_on_exn"},
		{KindArrayLen, "array.len"},
		{numKinds, "kind(63)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", tt.kind, got, tt.expected)
		}
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := Kind(0); k < numKinds; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestIsAs(t *testing.T) {
	a := arena.New()
	var e Expression = i32Const(a, 1)

	if !Is[*Const](e) {
		t.Fatal("Is[*Const] is false for a const")
	}
	if Is[*Nop](e) {
		t.Fatal("Is[*Nop] is true for a const")
	}

	c, ok := As[*Const](e)
	if !ok || c.Value.I32() != 1 {
		t.Fatalf("As[*Const] = (%v, %v)", c, ok)
	}
	if _, ok := As[*Block](e); ok {
		t.Fatal("As[*Block] succeeded for a const")
	}
}

func TestMustAs(t *testing.T) {
	a := arena.New()
	var e Expression = i32Const(a, 1)

	c := MustAs[*Const](e)
	if c.Value.I32() != 1 {
		t.Fatalf("MustAs returned wrong node")
	}

	mustPanicKind(t, errors.KindKindMismatch, func() {
		MustAs[*Block](e)
	})
}

func TestSetType(t *testing.T) {
	a := arena.New()
	n := NewNop(a)
	n.SetType(types.I32)
	if n.Type() != types.I32 {
		t.Fatalf("type after SetType = %s, expected i32", n.Type())
	}

	// Finalize recomputes, overwriting the manual type.
	n.Finalize()
	if n.Type() != types.None {
		t.Fatalf("type after Finalize = %s, expected none", n.Type())
	}
}

func TestKindFixedAtConstruction(t *testing.T) {
	a := arena.New()

	nodes := []struct {
		expr Expression
		kind Kind
	}{
		{NewBlock(a), KindBlock},
		{NewIf(a), KindIf},
		{NewLoop(a), KindLoop},
		{NewBreak(a), KindBreak},
		{NewSwitch(a), KindSwitch},
		{NewCall(a, types.None), KindCall},
		{NewCallIndirect(a, types.Signature{}), KindCallIndirect},
		{NewLocalGet(a, 0, types.I32), KindLocalGet},
		{NewLocalSet(a), KindLocalSet},
		{NewGlobalGet(a, "g", types.I32), KindGlobalGet},
		{NewGlobalSet(a), KindGlobalSet},
		{NewLoad(a, types.I32), KindLoad},
		{NewStore(a), KindStore},
		{i32Const(a, 0), KindConst},
		{NewUnary(a, ClzInt32), KindUnary},
		{NewBinary(a, AddInt32), KindBinary},
		{NewSelect(a), KindSelect},
		{NewDrop(a), KindDrop},
		{NewReturn(a), KindReturn},
		{NewMemorySize(a), KindMemorySize},
		{NewMemoryGrow(a), KindMemoryGrow},
		{NewNop(a), KindNop},
		{NewUnreachable(a), KindUnreachable},
		{NewAtomicRMW(a, types.I32), KindAtomicRMW},
		{NewAtomicCmpxchg(a, types.I32), KindAtomicCmpxchg},
		{NewAtomicWait(a), KindAtomicWait},
		{NewAtomicNotify(a), KindAtomicNotify},
		{NewAtomicFence(a), KindAtomicFence},
		{NewSIMDExtract(a, ExtractLaneVecI32x4), KindSIMDExtract},
		{NewSIMDReplace(a, ReplaceLaneVecI32x4), KindSIMDReplace},
		{NewSIMDShuffle(a), KindSIMDShuffle},
		{NewSIMDTernary(a, Bitselect), KindSIMDTernary},
		{NewSIMDShift(a, ShlVecI8x16), KindSIMDShift},
		{NewSIMDLoad(a, Load32Zero), KindSIMDLoad},
		{NewMemoryInit(a), KindMemoryInit},
		{NewDataDrop(a), KindDataDrop},
		{NewMemoryCopy(a), KindMemoryCopy},
		{NewMemoryFill(a), KindMemoryFill},
		{NewPop(a, types.I32), KindPop},
		{NewRefNull(a, types.Funcref), KindRefNull},
		{NewRefIsNull(a), KindRefIsNull},
		{NewRefFunc(a), KindRefFunc},
		{NewRefEq(a), KindRefEq},
		{NewTry(a), KindTry},
		{NewThrow(a), KindThrow},
		{NewRethrow(a), KindRethrow},
		{NewBrOnExn(a), KindBrOnExn},
		{NewTupleMake(a), KindTupleMake},
		{NewTupleExtract(a), KindTupleExtract},
		{NewI31New(a), KindI31New},
		{NewI31Get(a), KindI31Get},
	}
	for _, tt := range nodes {
		if tt.expr.Kind() != tt.kind {
			t.Errorf("constructor set kind %s, expected %s", tt.expr.Kind(), tt.kind)
		}
	}
}
