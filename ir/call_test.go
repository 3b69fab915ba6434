package ir

import (
	"testing"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/literal"
	"github.com/wippyai/wasm-ir/types"
)

func TestCallFinalize(t *testing.T) {
	a := arena.New()

	c := NewCall(a, types.I64)
	c.Target = "callee"
	c.Operands = []Expression{i32Const(a, 1), i32Const(a, 2)}
	c.Finalize()
	if c.Type() != types.I64 {
		t.Fatalf("call type = %s, expected i64", c.Type())
	}
}

func TestCallFinalize_UnreachableOperand(t *testing.T) {
	a := arena.New()

	c := NewCall(a, types.I64)
	c.Target = "callee"
	c.Operands = []Expression{i32Const(a, 1), NewUnreachable(a)}
	c.Finalize()
	if c.Type() != types.Unreachable {
		t.Fatalf("call type = %s, expected unreachable", c.Type())
	}

	// The declared result is not remembered: after repairing the operand
	// the caller must re-set the type before finalizing again.
	c.Operands[1] = i32Const(a, 2)
	c.Finalize()
	if c.Type() != types.Unreachable {
		t.Fatalf("call type after repair = %s, expected unreachable (type not restored)", c.Type())
	}
	c.SetType(types.I64)
	c.Finalize()
	if c.Type() != types.I64 {
		t.Fatalf("call type after SetType = %s, expected i64", c.Type())
	}
}

func TestCallFinalize_ReturnCall(t *testing.T) {
	a := arena.New()
	c := NewCall(a, types.I32)
	c.Target = "callee"
	c.IsReturn = true
	c.Finalize()
	if c.Type() != types.Unreachable {
		t.Fatalf("return call type = %s, expected unreachable", c.Type())
	}
}

func TestCallIndirectFinalize(t *testing.T) {
	a := arena.New()
	sig := types.NewSignature(types.I32, types.F64)

	c := NewCallIndirect(a, sig)
	c.Operands = []Expression{i32Const(a, 1)}
	c.Target = i32Const(a, 0)
	c.Finalize()
	if c.Type() != types.F64 {
		t.Fatalf("call_indirect type = %s, expected f64", c.Type())
	}
}

func TestCallIndirectFinalize_Recovers(t *testing.T) {
	// Unlike a direct call, the signature lives on the node, so the type
	// comes back once the unreachable operand is replaced.
	a := arena.New()
	sig := types.NewSignature(types.I32, types.F64)

	c := NewCallIndirect(a, sig)
	c.Operands = []Expression{NewUnreachable(a)}
	c.Target = i32Const(a, 0)
	c.Finalize()
	if c.Type() != types.Unreachable {
		t.Fatalf("call_indirect type = %s, expected unreachable", c.Type())
	}

	c.Operands[0] = i32Const(a, 7)
	c.Finalize()
	if c.Type() != types.F64 {
		t.Fatalf("call_indirect type after repair = %s, expected f64", c.Type())
	}
}

func TestCallIndirectFinalize_UnreachableTarget(t *testing.T) {
	a := arena.New()
	sig := types.NewSignature(types.None, types.I32)

	c := NewCallIndirect(a, sig)
	c.Target = NewUnreachable(a)
	c.Finalize()
	if c.Type() != types.Unreachable {
		t.Fatalf("call_indirect type = %s, expected unreachable", c.Type())
	}

	c.IsReturn = true
	c.Target = i32Const(a, 0)
	c.Finalize()
	if c.Type() != types.Unreachable {
		t.Fatalf("return call_indirect type = %s, expected unreachable", c.Type())
	}
}

func TestLocalAccessFinalize(t *testing.T) {
	a := arena.New()

	get := NewLocalGet(a, 3, types.F32)
	get.Finalize()
	if get.Type() != types.F32 {
		t.Fatalf("local.get type = %s, expected f32", get.Type())
	}

	set := NewLocalSet(a)
	set.Index = 3
	set.Value = NewConst(a, literal.Float32(2))
	set.Finalize()
	if set.Type() != types.None {
		t.Fatalf("local.set type = %s, expected none", set.Type())
	}
	if set.IsTee() {
		t.Fatal("set form reports tee")
	}

	set.MakeTee(types.F32)
	if !set.IsTee() {
		t.Fatal("tee form reports set")
	}
	if set.Type() != types.F32 {
		t.Fatalf("local.tee type = %s, expected f32", set.Type())
	}

	set.MakeSet()
	if set.Type() != types.None {
		t.Fatalf("local.set after MakeSet = %s, expected none", set.Type())
	}

	set.Value = NewUnreachable(a)
	set.Finalize()
	if set.Type() != types.Unreachable {
		t.Fatalf("local.set of unreachable = %s, expected unreachable", set.Type())
	}
}

func TestGlobalAccessFinalize(t *testing.T) {
	a := arena.New()

	get := NewGlobalGet(a, "g", types.I64)
	get.Finalize()
	if get.Type() != types.I64 {
		t.Fatalf("global.get type = %s, expected i64", get.Type())
	}

	set := NewGlobalSet(a)
	set.Name = "g"
	set.Value = i32Const(a, 1)
	set.Finalize()
	if set.Type() != types.None {
		t.Fatalf("global.set type = %s, expected none", set.Type())
	}

	set.Value = NewUnreachable(a)
	set.Finalize()
	if set.Type() != types.Unreachable {
		t.Fatalf("global.set of unreachable = %s, expected unreachable", set.Type())
	}
}
