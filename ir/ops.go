package ir

import (
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

// UnaryOp selects the operation of a Unary node. The operand and result
// types are implied by the op tag.
type UnaryOp uint16

const (
	// int
	ClzInt32 UnaryOp = iota
	ClzInt64
	CtzInt32
	CtzInt64
	PopcntInt32
	PopcntInt64

	// float
	NegFloat32
	NegFloat64
	AbsFloat32
	AbsFloat64
	CeilFloat32
	CeilFloat64
	FloorFloat32
	FloorFloat64
	TruncFloat32
	TruncFloat64
	NearestFloat32
	NearestFloat64
	SqrtFloat32
	SqrtFloat64

	// relational
	EqZInt32
	EqZInt64

	// conversions
	ExtendSInt32
	ExtendUInt32
	WrapInt64
	TruncSFloat32ToInt32
	TruncSFloat32ToInt64
	TruncUFloat32ToInt32
	TruncUFloat32ToInt64
	TruncSFloat64ToInt32
	TruncSFloat64ToInt64
	TruncUFloat64ToInt32
	TruncUFloat64ToInt64
	ReinterpretFloat32
	ReinterpretFloat64
	ConvertSInt32ToFloat32
	ConvertSInt32ToFloat64
	ConvertUInt32ToFloat32
	ConvertUInt32ToFloat64
	ConvertSInt64ToFloat32
	ConvertSInt64ToFloat64
	ConvertUInt64ToFloat32
	ConvertUInt64ToFloat64
	PromoteFloat32
	DemoteFloat64
	ReinterpretInt32
	ReinterpretInt64

	// sign-extension of sub-word integers
	ExtendS8Int32
	ExtendS16Int32
	ExtendS8Int64
	ExtendS16Int64
	ExtendS32Int64

	// saturating float-to-int
	TruncSatSFloat32ToInt32
	TruncSatUFloat32ToInt32
	TruncSatSFloat64ToInt32
	TruncSatUFloat64ToInt32
	TruncSatSFloat32ToInt64
	TruncSatUFloat32ToInt64
	TruncSatSFloat64ToInt64
	TruncSatUFloat64ToInt64

	// SIMD splats
	SplatVecI8x16
	SplatVecI16x8
	SplatVecI32x4
	SplatVecI64x2
	SplatVecF32x4
	SplatVecF64x2

	// SIMD arithmetic
	NotVec128
	AbsVecI8x16
	NegVecI8x16
	AnyTrueVecI8x16
	AllTrueVecI8x16
	BitmaskVecI8x16
	AbsVecI16x8
	NegVecI16x8
	AnyTrueVecI16x8
	AllTrueVecI16x8
	BitmaskVecI16x8
	AbsVecI32x4
	NegVecI32x4
	AnyTrueVecI32x4
	AllTrueVecI32x4
	BitmaskVecI32x4
	NegVecI64x2
	AnyTrueVecI64x2
	AllTrueVecI64x2
	AbsVecF32x4
	NegVecF32x4
	SqrtVecF32x4
	CeilVecF32x4
	FloorVecF32x4
	TruncVecF32x4
	NearestVecF32x4
	AbsVecF64x2
	NegVecF64x2
	SqrtVecF64x2
	CeilVecF64x2
	FloorVecF64x2
	TruncVecF64x2
	NearestVecF64x2

	// SIMD conversions
	TruncSatSVecF32x4ToVecI32x4
	TruncSatUVecF32x4ToVecI32x4
	TruncSatSVecF64x2ToVecI64x2
	TruncSatUVecF64x2ToVecI64x2
	ConvertSVecI32x4ToVecF32x4
	ConvertUVecI32x4ToVecF32x4
	ConvertSVecI64x2ToVecF64x2
	ConvertUVecI64x2ToVecF64x2
	WidenLowSVecI8x16ToVecI16x8
	WidenHighSVecI8x16ToVecI16x8
	WidenLowUVecI8x16ToVecI16x8
	WidenHighUVecI8x16ToVecI16x8
	WidenLowSVecI16x8ToVecI32x4
	WidenHighSVecI16x8ToVecI32x4
	WidenLowUVecI16x8ToVecI32x4
	WidenHighUVecI16x8ToVecI32x4

	InvalidUnary
)

// IsRelational reports whether the op yields a boolean-valued i32 regardless
// of operand width.
func (op UnaryOp) IsRelational() bool {
	return op == EqZInt32 || op == EqZInt64
}

// resultType returns the output type implied by the op tag alone.
func (op UnaryOp) resultType() types.Type {
	switch op {
	case ClzInt32, CtzInt32, PopcntInt32,
		EqZInt32, EqZInt64,
		WrapInt64,
		TruncSFloat32ToInt32, TruncUFloat32ToInt32,
		TruncSFloat64ToInt32, TruncUFloat64ToInt32,
		ReinterpretFloat32,
		ExtendS8Int32, ExtendS16Int32,
		TruncSatSFloat32ToInt32, TruncSatUFloat32ToInt32,
		TruncSatSFloat64ToInt32, TruncSatUFloat64ToInt32,
		AnyTrueVecI8x16, AllTrueVecI8x16, BitmaskVecI8x16,
		AnyTrueVecI16x8, AllTrueVecI16x8, BitmaskVecI16x8,
		AnyTrueVecI32x4, AllTrueVecI32x4, BitmaskVecI32x4,
		AnyTrueVecI64x2, AllTrueVecI64x2:
		return types.I32

	case ClzInt64, CtzInt64, PopcntInt64,
		ExtendSInt32, ExtendUInt32,
		TruncSFloat32ToInt64, TruncUFloat32ToInt64,
		TruncSFloat64ToInt64, TruncUFloat64ToInt64,
		ReinterpretFloat64,
		ExtendS8Int64, ExtendS16Int64, ExtendS32Int64,
		TruncSatSFloat32ToInt64, TruncSatUFloat32ToInt64,
		TruncSatSFloat64ToInt64, TruncSatUFloat64ToInt64:
		return types.I64

	case NegFloat32, AbsFloat32, CeilFloat32, FloorFloat32,
		TruncFloat32, NearestFloat32, SqrtFloat32,
		ConvertSInt32ToFloat32, ConvertUInt32ToFloat32,
		ConvertSInt64ToFloat32, ConvertUInt64ToFloat32,
		DemoteFloat64, ReinterpretInt32:
		return types.F32

	case NegFloat64, AbsFloat64, CeilFloat64, FloorFloat64,
		TruncFloat64, NearestFloat64, SqrtFloat64,
		ConvertSInt32ToFloat64, ConvertUInt32ToFloat64,
		ConvertSInt64ToFloat64, ConvertUInt64ToFloat64,
		PromoteFloat32, ReinterpretInt64:
		return types.F64

	case SplatVecI8x16, SplatVecI16x8, SplatVecI32x4,
		SplatVecI64x2, SplatVecF32x4, SplatVecF64x2,
		NotVec128,
		AbsVecI8x16, NegVecI8x16,
		AbsVecI16x8, NegVecI16x8,
		AbsVecI32x4, NegVecI32x4,
		NegVecI64x2,
		AbsVecF32x4, NegVecF32x4, SqrtVecF32x4,
		CeilVecF32x4, FloorVecF32x4, TruncVecF32x4, NearestVecF32x4,
		AbsVecF64x2, NegVecF64x2, SqrtVecF64x2,
		CeilVecF64x2, FloorVecF64x2, TruncVecF64x2, NearestVecF64x2,
		TruncSatSVecF32x4ToVecI32x4, TruncSatUVecF32x4ToVecI32x4,
		TruncSatSVecF64x2ToVecI64x2, TruncSatUVecF64x2ToVecI64x2,
		ConvertSVecI32x4ToVecF32x4, ConvertUVecI32x4ToVecF32x4,
		ConvertSVecI64x2ToVecF64x2, ConvertUVecI64x2ToVecF64x2,
		WidenLowSVecI8x16ToVecI16x8, WidenHighSVecI8x16ToVecI16x8,
		WidenLowUVecI8x16ToVecI16x8, WidenHighUVecI8x16ToVecI16x8,
		WidenLowSVecI16x8ToVecI32x4, WidenHighSVecI16x8ToVecI32x4,
		WidenLowUVecI16x8ToVecI32x4, WidenHighUVecI16x8ToVecI32x4:
		return types.V128
	}
	panic(errors.Precondition(errors.PhaseFinalize, "invalid unary op %d", op))
}

// BinaryOp selects the operation of a Binary node. The operand and result
// types are implied by the op tag; relational ops yield i32 and SIMD
// relational ops yield lane masks in v128.
type BinaryOp uint16

const (
	AddInt32 BinaryOp = iota
	SubInt32
	MulInt32
	DivSInt32
	DivUInt32
	RemSInt32
	RemUInt32
	AndInt32
	OrInt32
	XorInt32
	ShlInt32
	ShrSInt32
	ShrUInt32
	RotLInt32
	RotRInt32

	EqInt32
	NeInt32
	LtSInt32
	LtUInt32
	LeSInt32
	LeUInt32
	GtSInt32
	GtUInt32
	GeSInt32
	GeUInt32

	AddInt64
	SubInt64
	MulInt64
	DivSInt64
	DivUInt64
	RemSInt64
	RemUInt64
	AndInt64
	OrInt64
	XorInt64
	ShlInt64
	ShrSInt64
	ShrUInt64
	RotLInt64
	RotRInt64

	EqInt64
	NeInt64
	LtSInt64
	LtUInt64
	LeSInt64
	LeUInt64
	GtSInt64
	GtUInt64
	GeSInt64
	GeUInt64

	AddFloat32
	SubFloat32
	MulFloat32
	DivFloat32
	CopySignFloat32
	MinFloat32
	MaxFloat32

	EqFloat32
	NeFloat32
	LtFloat32
	LeFloat32
	GtFloat32
	GeFloat32

	AddFloat64
	SubFloat64
	MulFloat64
	DivFloat64
	CopySignFloat64
	MinFloat64
	MaxFloat64

	EqFloat64
	NeFloat64
	LtFloat64
	LeFloat64
	GtFloat64
	GeFloat64

	// SIMD relational ops (return lane masks)
	EqVecI8x16
	NeVecI8x16
	LtSVecI8x16
	LtUVecI8x16
	GtSVecI8x16
	GtUVecI8x16
	LeSVecI8x16
	LeUVecI8x16
	GeSVecI8x16
	GeUVecI8x16
	EqVecI16x8
	NeVecI16x8
	LtSVecI16x8
	LtUVecI16x8
	GtSVecI16x8
	GtUVecI16x8
	LeSVecI16x8
	LeUVecI16x8
	GeSVecI16x8
	GeUVecI16x8
	EqVecI32x4
	NeVecI32x4
	LtSVecI32x4
	LtUVecI32x4
	GtSVecI32x4
	GtUVecI32x4
	LeSVecI32x4
	LeUVecI32x4
	GeSVecI32x4
	GeUVecI32x4
	EqVecF32x4
	NeVecF32x4
	LtVecF32x4
	GtVecF32x4
	LeVecF32x4
	GeVecF32x4
	EqVecF64x2
	NeVecF64x2
	LtVecF64x2
	GtVecF64x2
	LeVecF64x2
	GeVecF64x2

	// SIMD arithmetic
	AndVec128
	OrVec128
	XorVec128
	AndNotVec128
	AddVecI8x16
	AddSatSVecI8x16
	AddSatUVecI8x16
	SubVecI8x16
	SubSatSVecI8x16
	SubSatUVecI8x16
	MulVecI8x16
	MinSVecI8x16
	MinUVecI8x16
	MaxSVecI8x16
	MaxUVecI8x16
	AvgrUVecI8x16
	AddVecI16x8
	AddSatSVecI16x8
	AddSatUVecI16x8
	SubVecI16x8
	SubSatSVecI16x8
	SubSatUVecI16x8
	MulVecI16x8
	MinSVecI16x8
	MinUVecI16x8
	MaxSVecI16x8
	MaxUVecI16x8
	AvgrUVecI16x8
	AddVecI32x4
	SubVecI32x4
	MulVecI32x4
	MinSVecI32x4
	MinUVecI32x4
	MaxSVecI32x4
	MaxUVecI32x4
	DotSVecI16x8ToVecI32x4
	AddVecI64x2
	SubVecI64x2
	MulVecI64x2
	AddVecF32x4
	SubVecF32x4
	MulVecF32x4
	DivVecF32x4
	MinVecF32x4
	MaxVecF32x4
	PMinVecF32x4
	PMaxVecF32x4
	AddVecF64x2
	SubVecF64x2
	MulVecF64x2
	DivVecF64x2
	MinVecF64x2
	MaxVecF64x2
	PMinVecF64x2
	PMaxVecF64x2

	// SIMD conversions
	NarrowSVecI16x8ToVecI8x16
	NarrowUVecI16x8ToVecI8x16
	NarrowSVecI32x4ToVecI16x8
	NarrowUVecI32x4ToVecI16x8

	SwizzleVec8x16

	InvalidBinary
)

// IsRelational reports whether the op compares scalars and yields a
// boolean-valued i32.
func (op BinaryOp) IsRelational() bool {
	switch {
	case op >= EqInt32 && op <= GeUInt32:
		return true
	case op >= EqInt64 && op <= GeUInt64:
		return true
	case op >= EqFloat32 && op <= GeFloat32:
		return true
	case op >= EqFloat64 && op <= GeFloat64:
		return true
	}
	return false
}

// resultType returns the output type implied by the op tag alone.
func (op BinaryOp) resultType() types.Type {
	switch {
	case op.IsRelational():
		return types.I32
	case op >= AddInt32 && op <= RotRInt32:
		return types.I32
	case op >= AddInt64 && op <= RotRInt64:
		return types.I64
	case op >= AddFloat32 && op <= MaxFloat32:
		return types.F32
	case op >= AddFloat64 && op <= MaxFloat64:
		return types.F64
	case op >= EqVecI8x16 && op <= SwizzleVec8x16:
		return types.V128
	}
	panic(errors.Precondition(errors.PhaseFinalize, "invalid binary op %d", op))
}

// AtomicRMWOp selects the combining operation of an atomic read-modify-write.
type AtomicRMWOp uint8

const (
	RMWAdd AtomicRMWOp = iota
	RMWSub
	RMWAnd
	RMWOr
	RMWXor
	RMWXchg
)

// SIMDExtractOp selects the lane type of a SIMDExtract node.
type SIMDExtractOp uint8

const (
	ExtractLaneSVecI8x16 SIMDExtractOp = iota
	ExtractLaneUVecI8x16
	ExtractLaneSVecI16x8
	ExtractLaneUVecI16x8
	ExtractLaneVecI32x4
	ExtractLaneVecI64x2
	ExtractLaneVecF32x4
	ExtractLaneVecF64x2
)

// laneType returns the scalar type a lane extraction produces.
func (op SIMDExtractOp) laneType() types.Type {
	switch op {
	case ExtractLaneSVecI8x16, ExtractLaneUVecI8x16,
		ExtractLaneSVecI16x8, ExtractLaneUVecI16x8,
		ExtractLaneVecI32x4:
		return types.I32
	case ExtractLaneVecI64x2:
		return types.I64
	case ExtractLaneVecF32x4:
		return types.F32
	case ExtractLaneVecF64x2:
		return types.F64
	}
	panic(errors.Precondition(errors.PhaseFinalize, "invalid simd extract op %d", op))
}

// SIMDReplaceOp selects the lane shape of a SIMDReplace node.
type SIMDReplaceOp uint8

const (
	ReplaceLaneVecI8x16 SIMDReplaceOp = iota
	ReplaceLaneVecI16x8
	ReplaceLaneVecI32x4
	ReplaceLaneVecI64x2
	ReplaceLaneVecF32x4
	ReplaceLaneVecF64x2
)

// SIMDShiftOp selects the lane shape of a SIMDShift node.
type SIMDShiftOp uint8

const (
	ShlVecI8x16 SIMDShiftOp = iota
	ShrSVecI8x16
	ShrUVecI8x16
	ShlVecI16x8
	ShrSVecI16x8
	ShrUVecI16x8
	ShlVecI32x4
	ShrSVecI32x4
	ShrUVecI32x4
	ShlVecI64x2
	ShrSVecI64x2
	ShrUVecI64x2
)

// SIMDLoadOp selects the widening or splatting behavior of a SIMDLoad node.
type SIMDLoadOp uint8

const (
	LoadSplatVec8x16 SIMDLoadOp = iota
	LoadSplatVec16x8
	LoadSplatVec32x4
	LoadSplatVec64x2
	LoadExtSVec8x8ToVecI16x8
	LoadExtUVec8x8ToVecI16x8
	LoadExtSVec16x4ToVecI32x4
	LoadExtUVec16x4ToVecI32x4
	LoadExtSVec32x2ToVecI64x2
	LoadExtUVec32x2ToVecI64x2
	Load32Zero
	Load64Zero
)

// SIMDTernaryOp selects the operation of a SIMDTernary node.
type SIMDTernaryOp uint8

const (
	Bitselect SIMDTernaryOp = iota
	QFMAF32x4
	QFMSF32x4
	QFMAF64x2
	QFMSF64x2
)
