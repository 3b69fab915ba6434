package ir

import (
	"testing"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/literal"
	"github.com/wippyai/wasm-ir/types"
)

func v128Const(a *arena.Arena) *Const {
	return NewConst(a, literal.V128([16]byte{}))
}

func TestSIMDExtractFinalize(t *testing.T) {
	a := arena.New()

	tests := []struct {
		name     string
		op       SIMDExtractOp
		expected types.Type
	}{
		{"i8x16_s", ExtractLaneSVecI8x16, types.I32},
		{"i16x8_u", ExtractLaneUVecI16x8, types.I32},
		{"i32x4", ExtractLaneVecI32x4, types.I32},
		{"i64x2", ExtractLaneVecI64x2, types.I64},
		{"f32x4", ExtractLaneVecF32x4, types.F32},
		{"f64x2", ExtractLaneVecF64x2, types.F64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewSIMDExtract(a, tt.op)
			e.Vec = v128Const(a)
			e.Index = 1
			e.Finalize()
			if e.Type() != tt.expected {
				t.Fatalf("extract type = %s, expected %s", e.Type(), tt.expected)
			}
		})
	}

	e := NewSIMDExtract(a, ExtractLaneVecI32x4)
	e.Vec = NewUnreachable(a)
	e.Finalize()
	if e.Type() != types.Unreachable {
		t.Fatalf("extract of unreachable vec = %s, expected unreachable", e.Type())
	}
}

func TestSIMDReplaceFinalize(t *testing.T) {
	a := arena.New()

	r := NewSIMDReplace(a, ReplaceLaneVecF64x2)
	r.Vec = v128Const(a)
	r.Index = 0
	r.Value = f64Const(a, 2.5)
	r.Finalize()
	if r.Type() != types.V128 {
		t.Fatalf("replace type = %s, expected v128", r.Type())
	}

	r.Value = NewUnreachable(a)
	r.Finalize()
	if r.Type() != types.Unreachable {
		t.Fatalf("replace with unreachable value = %s, expected unreachable", r.Type())
	}
}

func TestSIMDShuffleFinalize(t *testing.T) {
	a := arena.New()

	s := NewSIMDShuffle(a)
	s.Left = v128Const(a)
	s.Right = v128Const(a)
	for i := range s.Mask {
		s.Mask[i] = byte(31 - i)
	}
	s.Finalize()
	if s.Type() != types.V128 {
		t.Fatalf("shuffle type = %s, expected v128", s.Type())
	}

	s.Right = NewUnreachable(a)
	s.Finalize()
	if s.Type() != types.Unreachable {
		t.Fatalf("shuffle with unreachable right = %s, expected unreachable", s.Type())
	}
}

func TestSIMDTernaryFinalize(t *testing.T) {
	a := arena.New()

	b := NewSIMDTernary(a, Bitselect)
	b.A = v128Const(a)
	b.B = v128Const(a)
	b.C = v128Const(a)
	b.Finalize()
	if b.Type() != types.V128 {
		t.Fatalf("ternary type = %s, expected v128", b.Type())
	}

	b.C = NewUnreachable(a)
	b.Finalize()
	if b.Type() != types.Unreachable {
		t.Fatalf("ternary with unreachable operand = %s, expected unreachable", b.Type())
	}
}

func TestSIMDShiftFinalize(t *testing.T) {
	a := arena.New()

	s := NewSIMDShift(a, ShlVecI16x8)
	s.Vec = v128Const(a)
	s.Shift = i32Const(a, 3)
	s.Finalize()
	if s.Type() != types.V128 {
		t.Fatalf("shift type = %s, expected v128", s.Type())
	}

	s.Shift = NewUnreachable(a)
	s.Finalize()
	if s.Type() != types.Unreachable {
		t.Fatalf("shift with unreachable amount = %s, expected unreachable", s.Type())
	}
}

func TestSIMDLoadFinalize(t *testing.T) {
	a := arena.New()

	l := NewSIMDLoad(a, Load32Zero)
	l.Ptr = i32Const(a, 0)
	l.Finalize()
	if l.Type() != types.V128 {
		t.Fatalf("simd load type = %s, expected v128", l.Type())
	}

	l.Ptr = NewUnreachable(a)
	l.Finalize()
	if l.Type() != types.Unreachable {
		t.Fatalf("simd load with unreachable ptr = %s, expected unreachable", l.Type())
	}
}

func TestSIMDLoadMemBytes(t *testing.T) {
	a := arena.New()

	tests := []struct {
		op    SIMDLoadOp
		bytes uint8
	}{
		{LoadSplatVec8x16, 1},
		{LoadSplatVec16x8, 2},
		{LoadSplatVec32x4, 4},
		{LoadSplatVec64x2, 8},
		{LoadExtSVec8x8ToVecI16x8, 8},
		{LoadExtUVec16x4ToVecI32x4, 8},
		{LoadExtSVec32x2ToVecI64x2, 8},
		{Load32Zero, 4},
		{Load64Zero, 8},
	}
	for _, tt := range tests {
		l := NewSIMDLoad(a, tt.op)
		if got := l.MemBytes(); got != tt.bytes {
			t.Errorf("%s MemBytes() = %d, expected %d", tt.op, got, tt.bytes)
		}
	}
}
