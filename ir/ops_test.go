package ir

import (
	"testing"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/literal"
	"github.com/wippyai/wasm-ir/types"
)

func TestConstFinalize(t *testing.T) {
	a := arena.New()

	c := NewConst(a, literal.Int64(42))
	if c.Type() != types.I64 {
		t.Fatalf("const type = %s, expected i64", c.Type())
	}

	c.Set(literal.Float32(1.5))
	if c.Type() != types.F32 {
		t.Fatalf("const type after Set = %s, expected f32", c.Type())
	}

	c.SetType(types.None)
	c.Finalize()
	if c.Type() != types.F32 {
		t.Fatalf("const type after Finalize = %s, expected f32", c.Type())
	}
}

func TestConstantValue(t *testing.T) {
	a := arena.New()

	c := i32Const(a, 17)
	v, ok := ConstantValue(c)
	if !ok {
		t.Fatal("ConstantValue on a const reports false")
	}
	if v.I32() != 17 {
		t.Fatalf("extracted value = %d, expected 17", v.I32())
	}

	if _, ok := ConstantValue(NewNop(a)); ok {
		t.Fatal("ConstantValue on a nop reports true")
	}
}

func TestUnaryFinalize(t *testing.T) {
	a := arena.New()

	tests := []struct {
		name     string
		op       UnaryOp
		expected types.Type
	}{
		{"clz_i32", ClzInt32, types.I32},
		{"eqz_i64", EqZInt64, types.I32},
		{"wrap_i64", WrapInt64, types.I32},
		{"extend_s_i32", ExtendSInt32, types.I64},
		{"neg_f32", NegFloat32, types.F32},
		{"sqrt_f64", SqrtFloat64, types.F64},
		{"splat_f32x4", SplatVecF32x4, types.V128},
		{"any_true_i8x16", AnyTrueVecI8x16, types.I32},
		{"bitmask_i32x4", BitmaskVecI32x4, types.I32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUnary(a, tt.op)
			u.Value = i32Const(a, 0)
			u.Finalize()
			if u.Type() != tt.expected {
				t.Fatalf("unary type = %s, expected %s", u.Type(), tt.expected)
			}
		})
	}
}

func TestUnaryFinalize_UnreachableOperand(t *testing.T) {
	a := arena.New()
	u := NewUnary(a, ClzInt32)
	u.Value = NewUnreachable(a)
	u.Finalize()
	if u.Type() != types.Unreachable {
		t.Fatalf("unary type = %s, expected unreachable", u.Type())
	}
}

func TestUnaryIsRelational(t *testing.T) {
	if !EqZInt32.IsRelational() || !EqZInt64.IsRelational() {
		t.Fatal("eqz is not reported relational")
	}
	if ClzInt32.IsRelational() {
		t.Fatal("clz is reported relational")
	}
}

func TestBinaryFinalize(t *testing.T) {
	a := arena.New()

	tests := []struct {
		name     string
		op       BinaryOp
		expected types.Type
	}{
		{"add_i32", AddInt32, types.I32},
		{"rotr_i32", RotRInt32, types.I32},
		{"add_i64", AddInt64, types.I64},
		{"mul_f32", MulFloat32, types.F32},
		{"max_f64", MaxFloat64, types.F64},
		{"add_i8x16", AddVecI8x16, types.V128},
		{"swizzle", SwizzleVec8x16, types.V128},

		// Comparisons yield i32 whatever the operand width.
		{"eq_i32", EqInt32, types.I32},
		{"lt_s_i64", LtSInt64, types.I32},
		{"le_f64", LeFloat64, types.I32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBinary(a, tt.op)
			b.Left = i32Const(a, 1)
			b.Right = i32Const(a, 2)
			b.Finalize()
			if b.Type() != tt.expected {
				t.Fatalf("binary type = %s, expected %s", b.Type(), tt.expected)
			}
		})
	}
}

func TestBinaryFinalize_UnreachableOperand(t *testing.T) {
	a := arena.New()

	b := NewBinary(a, AddInt32)
	b.Left = NewUnreachable(a)
	b.Right = i32Const(a, 1)
	b.Finalize()
	if b.Type() != types.Unreachable {
		t.Fatalf("binary with unreachable left = %s, expected unreachable", b.Type())
	}

	b2 := NewBinary(a, EqInt64)
	b2.Left = NewConst(a, literal.Int64(1))
	b2.Right = NewUnreachable(a)
	b2.Finalize()
	if b2.Type() != types.Unreachable {
		t.Fatalf("binary with unreachable right = %s, expected unreachable", b2.Type())
	}
}

func TestBinaryIsRelational(t *testing.T) {
	relational := []BinaryOp{EqInt32, NeInt32, GeUInt32, EqInt64, LtSInt64, EqFloat32, GtFloat32, EqFloat64, GeFloat64}
	for _, op := range relational {
		if !op.IsRelational() {
			t.Errorf("op %d is not reported relational", op)
		}
	}
	plain := []BinaryOp{AddInt32, RotRInt32, AddInt64, DivFloat64, EqVecI8x16, SwizzleVec8x16}
	for _, op := range plain {
		if op.IsRelational() {
			t.Errorf("op %d is reported relational", op)
		}
	}
}

func TestOpNames(t *testing.T) {
	checks := []struct {
		got  string
		want string
	}{
		{ClzInt32.String(), "i32.clz"},
		{ExtendSInt32.String(), "i64.extend_i32_s"},
		{TruncSatUFloat64ToInt64.String(), "i64.trunc_sat_f64_u"},
		{WidenHighUVecI16x8ToVecI32x4.String(), "i32x4.widen_high_i16x8_u"},
		{InvalidUnary.String(), "unary(115)"},
		{AddInt32.String(), "i32.add"},
		{GeUInt32.String(), "i32.ge_u"},
		{CopySignFloat64.String(), "f64.copysign"},
		{DotSVecI16x8ToVecI32x4.String(), "i32x4.dot_i16x8_s"},
		{SwizzleVec8x16.String(), "i8x16.swizzle"},
		{RMWXchg.String(), "xchg"},
		{ExtractLaneSVecI8x16.String(), "i8x16.extract_lane_s"},
		{ReplaceLaneVecF64x2.String(), "f64x2.replace_lane"},
		{ShrSVecI32x4.String(), "i32x4.shr_s"},
		{LoadExtSVec8x8ToVecI16x8.String(), "v128.load8x8_s"},
		{Load64Zero.String(), "v128.load64_zero"},
		{Bitselect.String(), "v128.bitselect"},
		{QFMSF64x2.String(), "f64x2.qfms"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("op name = %q, expected %q", c.got, c.want)
		}
	}
}
