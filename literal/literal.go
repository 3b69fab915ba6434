package literal

import (
	"fmt"
	"math"
	"strings"

	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

// Value is a constant of a single concrete value type. The zero Value has
// type none and is not a valid constant.
type Value struct {
	typ  types.Type
	bits uint64
	vec  [16]byte
	fn   string
	null bool
}

// Int32 returns an i32 constant.
func Int32(v int32) Value {
	return Value{typ: types.I32, bits: uint64(uint32(v))}
}

// Int64 returns an i64 constant.
func Int64(v int64) Value {
	return Value{typ: types.I64, bits: uint64(v)}
}

// Float32 returns an f32 constant.
func Float32(v float32) Value {
	return Value{typ: types.F32, bits: uint64(math.Float32bits(v))}
}

// Float32Bits returns an f32 constant from a raw bit pattern, preserving NaN
// payloads.
func Float32Bits(bits uint32) Value {
	return Value{typ: types.F32, bits: uint64(bits)}
}

// Float64 returns an f64 constant.
func Float64(v float64) Value {
	return Value{typ: types.F64, bits: math.Float64bits(v)}
}

// Float64Bits returns an f64 constant from a raw bit pattern, preserving NaN
// payloads.
func Float64Bits(bits uint64) Value {
	return Value{typ: types.F64, bits: bits}
}

// V128 returns a vector constant from 16 lane bytes.
func V128(lanes [16]byte) Value {
	return Value{typ: types.V128, vec: lanes}
}

// Null returns a null reference constant of the given reference type.
func Null(t types.Type) Value {
	if !t.IsRef() {
		panic(errors.Precondition(errors.PhaseBuild, "null literal requires a reference type, got %s", t))
	}
	return Value{typ: t, null: true}
}

// Func returns a funcref constant naming a function.
func Func(name string) Value {
	return Value{typ: types.Funcref, fn: name}
}

// Zero returns the zero constant of a type: numeric zero, an all-zero
// vector, or a null reference.
func Zero(t types.Type) Value {
	switch {
	case t.IsInteger(), t.IsFloat():
		return Value{typ: t}
	case t == types.V128:
		return Value{typ: t}
	case t.IsRef():
		return Null(t)
	}
	panic(errors.Precondition(errors.PhaseBuild, "no zero literal for type %s", t))
}

// Type returns the value type of the constant.
func (v Value) Type() types.Type {
	return v.typ
}

// IsNull reports whether v is a null reference constant.
func (v Value) IsNull() bool {
	return v.null
}

func (v Value) expect(t types.Type) {
	if v.typ != t {
		panic(errors.TypeMismatch(errors.PhaseBuild, t.String(), v.typ.String()))
	}
}

// I32 returns the i32 payload.
func (v Value) I32() int32 {
	v.expect(types.I32)
	return int32(uint32(v.bits))
}

// I64 returns the i64 payload.
func (v Value) I64() int64 {
	v.expect(types.I64)
	return int64(v.bits)
}

// F32 returns the f32 payload.
func (v Value) F32() float32 {
	v.expect(types.F32)
	return math.Float32frombits(uint32(v.bits))
}

// F32Bits returns the raw f32 bit pattern.
func (v Value) F32Bits() uint32 {
	v.expect(types.F32)
	return uint32(v.bits)
}

// F64 returns the f64 payload.
func (v Value) F64() float64 {
	v.expect(types.F64)
	return math.Float64frombits(v.bits)
}

// F64Bits returns the raw f64 bit pattern.
func (v Value) F64Bits() uint64 {
	v.expect(types.F64)
	return v.bits
}

// Vec returns the 16 lane bytes of a v128 constant.
func (v Value) Vec() [16]byte {
	v.expect(types.V128)
	return v.vec
}

// FuncName returns the function a funcref constant names, or "" for null.
func (v Value) FuncName() string {
	v.expect(types.Funcref)
	return v.fn
}

// String returns a text-format style rendering, e.g. "i32.const 7" or
// "ref.null externref".
func (v Value) String() string {
	switch {
	case v.null:
		return "ref.null " + v.typ.String()
	case v.typ == types.Funcref:
		return "ref.func $" + v.fn
	}
	switch v.typ {
	case types.I32:
		return fmt.Sprintf("i32.const %d", v.I32())
	case types.I64:
		return fmt.Sprintf("i64.const %d", v.I64())
	case types.F32:
		return fmt.Sprintf("f32.const %g", v.F32())
	case types.F64:
		return fmt.Sprintf("f64.const %g", v.F64())
	case types.V128:
		var b strings.Builder
		b.WriteString("v128.const 0x")
		for i := 15; i >= 0; i-- {
			fmt.Fprintf(&b, "%02x", v.vec[i])
		}
		return b.String()
	}
	return "invalid literal"
}
