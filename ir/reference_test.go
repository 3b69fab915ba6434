package ir

import (
	"testing"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

func TestRefNullFinalize(t *testing.T) {
	a := arena.New()

	r := NewRefNull(a, types.Externref)
	r.Finalize()
	if r.Type() != types.Externref {
		t.Fatalf("ref.null type = %s, expected externref", r.Type())
	}

	r.FinalizeWithType(types.Funcref)
	if r.Type() != types.Funcref {
		t.Fatalf("ref.null type = %s, expected funcref", r.Type())
	}

	t.Run("non_reference", func(t *testing.T) {
		bad := NewRefNull(a, types.I32)
		mustPanicKind(t, errors.KindPrecondition, bad.Finalize)
	})
}

func TestRefIsNullFinalize(t *testing.T) {
	a := arena.New()

	r := NewRefIsNull(a)
	r.Value = NewRefNull(a, types.Externref)
	r.Finalize()
	if r.Type() != types.I32 {
		t.Fatalf("ref.is_null type = %s, expected i32", r.Type())
	}

	r.Value = NewUnreachable(a)
	r.Finalize()
	if r.Type() != types.Unreachable {
		t.Fatalf("ref.is_null of unreachable = %s, expected unreachable", r.Type())
	}
}

func TestRefFuncFinalize(t *testing.T) {
	a := arena.New()
	r := NewRefFunc(a)
	r.Func = "callee"
	r.Finalize()
	if r.Type() != types.Funcref {
		t.Fatalf("ref.func type = %s, expected funcref", r.Type())
	}
}

func TestRefEqFinalize(t *testing.T) {
	a := arena.New()

	r := NewRefEq(a)
	r.Left = NewRefNull(a, types.Eqref)
	r.Right = NewRefNull(a, types.Eqref)
	r.Finalize()
	if r.Type() != types.I32 {
		t.Fatalf("ref.eq type = %s, expected i32", r.Type())
	}

	r.Right = NewUnreachable(a)
	r.Finalize()
	if r.Type() != types.Unreachable {
		t.Fatalf("ref.eq with unreachable right = %s, expected unreachable", r.Type())
	}
}

func TestI31Finalize(t *testing.T) {
	a := arena.New()

	n := NewI31New(a)
	n.Value = i32Const(a, 5)
	n.Finalize()
	if n.Type() != types.I31ref {
		t.Fatalf("i31.new type = %s, expected i31ref", n.Type())
	}

	g := NewI31Get(a)
	g.I31 = n
	g.Signed = true
	g.Finalize()
	if g.Type() != types.I32 {
		t.Fatalf("i31.get type = %s, expected i32", g.Type())
	}

	n2 := NewI31New(a)
	n2.Value = NewUnreachable(a)
	n2.Finalize()
	if n2.Type() != types.Unreachable {
		t.Fatalf("i31.new of unreachable = %s, expected unreachable", n2.Type())
	}

	g2 := NewI31Get(a)
	g2.I31 = n2
	g2.Finalize()
	if g2.Type() != types.Unreachable {
		t.Fatalf("i31.get of unreachable = %s, expected unreachable", g2.Type())
	}
}
