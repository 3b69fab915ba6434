package ir

import (
	"testing"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/literal"
	"github.com/wippyai/wasm-ir/types"
)

func TestTupleMakeFinalize(t *testing.T) {
	a := arena.New()

	tm := NewTupleMake(a)
	tm.Operands = []Expression{i32Const(a, 1), NewConst(a, literal.Int64(2))}
	tm.Finalize()
	if tm.Type() != types.Tuple(types.I32, types.I64) {
		t.Fatalf("tuple.make type = %s, expected (i32 i64)", tm.Type())
	}

	tm.Operands[1] = NewUnreachable(a)
	tm.Finalize()
	if tm.Type() != types.Unreachable {
		t.Fatalf("tuple.make with unreachable operand = %s, expected unreachable", tm.Type())
	}
}

func TestTupleExtractFinalize(t *testing.T) {
	a := arena.New()

	tm := NewTupleMake(a)
	tm.Operands = []Expression{i32Const(a, 1), f64Const(a, 2.5)}
	tm.Finalize()

	te := NewTupleExtract(a)
	te.Tuple = tm
	te.Index = 1
	te.Finalize()
	if te.Type() != types.F64 {
		t.Fatalf("tuple.extract type = %s, expected f64", te.Type())
	}

	t.Run("index_out_of_range", func(t *testing.T) {
		bad := NewTupleExtract(a)
		bad.Tuple = tm
		bad.Index = 2
		mustPanicKind(t, errors.KindOutOfBounds, bad.Finalize)
	})

	t.Run("unreachable_tuple", func(t *testing.T) {
		te2 := NewTupleExtract(a)
		te2.Tuple = NewUnreachable(a)
		te2.Index = 9
		te2.Finalize()
		if te2.Type() != types.Unreachable {
			t.Fatalf("tuple.extract of unreachable = %s, expected unreachable", te2.Type())
		}
	})
}
