package ir

import "fmt"

// Instruction-style names for the op enums, for logs, dumps and test
// output. The tables are keyed by constant so reordering the enums cannot
// silently shift a name.

var unaryNames = [...]string{
	ClzInt32:    "i32.clz",
	ClzInt64:    "i64.clz",
	CtzInt32:    "i32.ctz",
	CtzInt64:    "i64.ctz",
	PopcntInt32: "i32.popcnt",
	PopcntInt64: "i64.popcnt",

	NegFloat32:     "f32.neg",
	NegFloat64:     "f64.neg",
	AbsFloat32:     "f32.abs",
	AbsFloat64:     "f64.abs",
	CeilFloat32:    "f32.ceil",
	CeilFloat64:    "f64.ceil",
	FloorFloat32:   "f32.floor",
	FloorFloat64:   "f64.floor",
	TruncFloat32:   "f32.trunc",
	TruncFloat64:   "f64.trunc",
	NearestFloat32: "f32.nearest",
	NearestFloat64: "f64.nearest",
	SqrtFloat32:    "f32.sqrt",
	SqrtFloat64:    "f64.sqrt",

	EqZInt32: "i32.eqz",
	EqZInt64: "i64.eqz",

	ExtendSInt32:           "i64.extend_i32_s",
	ExtendUInt32:           "i64.extend_i32_u",
	WrapInt64:              "i32.wrap_i64",
	TruncSFloat32ToInt32:   "i32.trunc_f32_s",
	TruncSFloat32ToInt64:   "i64.trunc_f32_s",
	TruncUFloat32ToInt32:   "i32.trunc_f32_u",
	TruncUFloat32ToInt64:   "i64.trunc_f32_u",
	TruncSFloat64ToInt32:   "i32.trunc_f64_s",
	TruncSFloat64ToInt64:   "i64.trunc_f64_s",
	TruncUFloat64ToInt32:   "i32.trunc_f64_u",
	TruncUFloat64ToInt64:   "i64.trunc_f64_u",
	ReinterpretFloat32:     "i32.reinterpret_f32",
	ReinterpretFloat64:     "i64.reinterpret_f64",
	ConvertSInt32ToFloat32: "f32.convert_i32_s",
	ConvertSInt32ToFloat64: "f64.convert_i32_s",
	ConvertUInt32ToFloat32: "f32.convert_i32_u",
	ConvertUInt32ToFloat64: "f64.convert_i32_u",
	ConvertSInt64ToFloat32: "f32.convert_i64_s",
	ConvertSInt64ToFloat64: "f64.convert_i64_s",
	ConvertUInt64ToFloat32: "f32.convert_i64_u",
	ConvertUInt64ToFloat64: "f64.convert_i64_u",
	PromoteFloat32:         "f64.promote_f32",
	DemoteFloat64:          "f32.demote_f64",
	ReinterpretInt32:       "f32.reinterpret_i32",
	ReinterpretInt64:       "f64.reinterpret_i64",

	ExtendS8Int32:  "i32.extend8_s",
	ExtendS16Int32: "i32.extend16_s",
	ExtendS8Int64:  "i64.extend8_s",
	ExtendS16Int64: "i64.extend16_s",
	ExtendS32Int64: "i64.extend32_s",

	TruncSatSFloat32ToInt32: "i32.trunc_sat_f32_s",
	TruncSatUFloat32ToInt32: "i32.trunc_sat_f32_u",
	TruncSatSFloat64ToInt32: "i32.trunc_sat_f64_s",
	TruncSatUFloat64ToInt32: "i32.trunc_sat_f64_u",
	TruncSatSFloat32ToInt64: "i64.trunc_sat_f32_s",
	TruncSatUFloat32ToInt64: "i64.trunc_sat_f32_u",
	TruncSatSFloat64ToInt64: "i64.trunc_sat_f64_s",
	TruncSatUFloat64ToInt64: "i64.trunc_sat_f64_u",

	SplatVecI8x16: "i8x16.splat",
	SplatVecI16x8: "i16x8.splat",
	SplatVecI32x4: "i32x4.splat",
	SplatVecI64x2: "i64x2.splat",
	SplatVecF32x4: "f32x4.splat",
	SplatVecF64x2: "f64x2.splat",

	NotVec128:       "v128.not",
	AbsVecI8x16:     "i8x16.abs",
	NegVecI8x16:     "i8x16.neg",
	AnyTrueVecI8x16: "i8x16.any_true",
	AllTrueVecI8x16: "i8x16.all_true",
	BitmaskVecI8x16: "i8x16.bitmask",
	AbsVecI16x8:     "i16x8.abs",
	NegVecI16x8:     "i16x8.neg",
	AnyTrueVecI16x8: "i16x8.any_true",
	AllTrueVecI16x8: "i16x8.all_true",
	BitmaskVecI16x8: "i16x8.bitmask",
	AbsVecI32x4:     "i32x4.abs",
	NegVecI32x4:     "i32x4.neg",
	AnyTrueVecI32x4: "i32x4.any_true",
	AllTrueVecI32x4: "i32x4.all_true",
	BitmaskVecI32x4: "i32x4.bitmask",
	NegVecI64x2:     "i64x2.neg",
	AnyTrueVecI64x2: "i64x2.any_true",
	AllTrueVecI64x2: "i64x2.all_true",
	AbsVecF32x4:     "f32x4.abs",
	NegVecF32x4:     "f32x4.neg",
	SqrtVecF32x4:    "f32x4.sqrt",
	CeilVecF32x4:    "f32x4.ceil",
	FloorVecF32x4:   "f32x4.floor",
	TruncVecF32x4:   "f32x4.trunc",
	NearestVecF32x4: "f32x4.nearest",
	AbsVecF64x2:     "f64x2.abs",
	NegVecF64x2:     "f64x2.neg",
	SqrtVecF64x2:    "f64x2.sqrt",
	CeilVecF64x2:    "f64x2.ceil",
	FloorVecF64x2:   "f64x2.floor",
	TruncVecF64x2:   "f64x2.trunc",
	NearestVecF64x2: "f64x2.nearest",

	TruncSatSVecF32x4ToVecI32x4:  "i32x4.trunc_sat_f32x4_s",
	TruncSatUVecF32x4ToVecI32x4:  "i32x4.trunc_sat_f32x4_u",
	TruncSatSVecF64x2ToVecI64x2:  "i64x2.trunc_sat_f64x2_s",
	TruncSatUVecF64x2ToVecI64x2:  "i64x2.trunc_sat_f64x2_u",
	ConvertSVecI32x4ToVecF32x4:   "f32x4.convert_i32x4_s",
	ConvertUVecI32x4ToVecF32x4:   "f32x4.convert_i32x4_u",
	ConvertSVecI64x2ToVecF64x2:   "f64x2.convert_i64x2_s",
	ConvertUVecI64x2ToVecF64x2:   "f64x2.convert_i64x2_u",
	WidenLowSVecI8x16ToVecI16x8:  "i16x8.widen_low_i8x16_s",
	WidenHighSVecI8x16ToVecI16x8: "i16x8.widen_high_i8x16_s",
	WidenLowUVecI8x16ToVecI16x8:  "i16x8.widen_low_i8x16_u",
	WidenHighUVecI8x16ToVecI16x8: "i16x8.widen_high_i8x16_u",
	WidenLowSVecI16x8ToVecI32x4:  "i32x4.widen_low_i16x8_s",
	WidenHighSVecI16x8ToVecI32x4: "i32x4.widen_high_i16x8_s",
	WidenLowUVecI16x8ToVecI32x4:  "i32x4.widen_low_i16x8_u",
	WidenHighUVecI16x8ToVecI32x4: "i32x4.widen_high_i16x8_u",
}

// String returns the instruction mnemonic of the op.
func (op UnaryOp) String() string {
	if int(op) < len(unaryNames) && unaryNames[op] != "" {
		return unaryNames[op]
	}
	return fmt.Sprintf("unary(%d)", uint16(op))
}

var binaryNames = [...]string{
	AddInt32:  "i32.add",
	SubInt32:  "i32.sub",
	MulInt32:  "i32.mul",
	DivSInt32: "i32.div_s",
	DivUInt32: "i32.div_u",
	RemSInt32: "i32.rem_s",
	RemUInt32: "i32.rem_u",
	AndInt32:  "i32.and",
	OrInt32:   "i32.or",
	XorInt32:  "i32.xor",
	ShlInt32:  "i32.shl",
	ShrSInt32: "i32.shr_s",
	ShrUInt32: "i32.shr_u",
	RotLInt32: "i32.rotl",
	RotRInt32: "i32.rotr",

	EqInt32:  "i32.eq",
	NeInt32:  "i32.ne",
	LtSInt32: "i32.lt_s",
	LtUInt32: "i32.lt_u",
	LeSInt32: "i32.le_s",
	LeUInt32: "i32.le_u",
	GtSInt32: "i32.gt_s",
	GtUInt32: "i32.gt_u",
	GeSInt32: "i32.ge_s",
	GeUInt32: "i32.ge_u",

	AddInt64:  "i64.add",
	SubInt64:  "i64.sub",
	MulInt64:  "i64.mul",
	DivSInt64: "i64.div_s",
	DivUInt64: "i64.div_u",
	RemSInt64: "i64.rem_s",
	RemUInt64: "i64.rem_u",
	AndInt64:  "i64.and",
	OrInt64:   "i64.or",
	XorInt64:  "i64.xor",
	ShlInt64:  "i64.shl",
	ShrSInt64: "i64.shr_s",
	ShrUInt64: "i64.shr_u",
	RotLInt64: "i64.rotl",
	RotRInt64: "i64.rotr",

	EqInt64:  "i64.eq",
	NeInt64:  "i64.ne",
	LtSInt64: "i64.lt_s",
	LtUInt64: "i64.lt_u",
	LeSInt64: "i64.le_s",
	LeUInt64: "i64.le_u",
	GtSInt64: "i64.gt_s",
	GtUInt64: "i64.gt_u",
	GeSInt64: "i64.ge_s",
	GeUInt64: "i64.ge_u",

	AddFloat32:      "f32.add",
	SubFloat32:      "f32.sub",
	MulFloat32:      "f32.mul",
	DivFloat32:      "f32.div",
	CopySignFloat32: "f32.copysign",
	MinFloat32:      "f32.min",
	MaxFloat32:      "f32.max",

	EqFloat32: "f32.eq",
	NeFloat32: "f32.ne",
	LtFloat32: "f32.lt",
	LeFloat32: "f32.le",
	GtFloat32: "f32.gt",
	GeFloat32: "f32.ge",

	AddFloat64:      "f64.add",
	SubFloat64:      "f64.sub",
	MulFloat64:      "f64.mul",
	DivFloat64:      "f64.div",
	CopySignFloat64: "f64.copysign",
	MinFloat64:      "f64.min",
	MaxFloat64:      "f64.max",

	EqFloat64: "f64.eq",
	NeFloat64: "f64.ne",
	LtFloat64: "f64.lt",
	LeFloat64: "f64.le",
	GtFloat64: "f64.gt",
	GeFloat64: "f64.ge",

	EqVecI8x16:  "i8x16.eq",
	NeVecI8x16:  "i8x16.ne",
	LtSVecI8x16: "i8x16.lt_s",
	LtUVecI8x16: "i8x16.lt_u",
	GtSVecI8x16: "i8x16.gt_s",
	GtUVecI8x16: "i8x16.gt_u",
	LeSVecI8x16: "i8x16.le_s",
	LeUVecI8x16: "i8x16.le_u",
	GeSVecI8x16: "i8x16.ge_s",
	GeUVecI8x16: "i8x16.ge_u",
	EqVecI16x8:  "i16x8.eq",
	NeVecI16x8:  "i16x8.ne",
	LtSVecI16x8: "i16x8.lt_s",
	LtUVecI16x8: "i16x8.lt_u",
	GtSVecI16x8: "i16x8.gt_s",
	GtUVecI16x8: "i16x8.gt_u",
	LeSVecI16x8: "i16x8.le_s",
	LeUVecI16x8: "i16x8.le_u",
	GeSVecI16x8: "i16x8.ge_s",
	GeUVecI16x8: "i16x8.ge_u",
	EqVecI32x4:  "i32x4.eq",
	NeVecI32x4:  "i32x4.ne",
	LtSVecI32x4: "i32x4.lt_s",
	LtUVecI32x4: "i32x4.lt_u",
	GtSVecI32x4: "i32x4.gt_s",
	GtUVecI32x4: "i32x4.gt_u",
	LeSVecI32x4: "i32x4.le_s",
	LeUVecI32x4: "i32x4.le_u",
	GeSVecI32x4: "i32x4.ge_s",
	GeUVecI32x4: "i32x4.ge_u",
	EqVecF32x4:  "f32x4.eq",
	NeVecF32x4:  "f32x4.ne",
	LtVecF32x4:  "f32x4.lt",
	GtVecF32x4:  "f32x4.gt",
	LeVecF32x4:  "f32x4.le",
	GeVecF32x4:  "f32x4.ge",
	EqVecF64x2:  "f64x2.eq",
	NeVecF64x2:  "f64x2.ne",
	LtVecF64x2:  "f64x2.lt",
	GtVecF64x2:  "f64x2.gt",
	LeVecF64x2:  "f64x2.le",
	GeVecF64x2:  "f64x2.ge",

	AndVec128:    "v128.and",
	OrVec128:     "v128.or",
	XorVec128:    "v128.xor",
	AndNotVec128: "v128.andnot",

	AddVecI8x16:     "i8x16.add",
	AddSatSVecI8x16: "i8x16.add_sat_s",
	AddSatUVecI8x16: "i8x16.add_sat_u",
	SubVecI8x16:     "i8x16.sub",
	SubSatSVecI8x16: "i8x16.sub_sat_s",
	SubSatUVecI8x16: "i8x16.sub_sat_u",
	MulVecI8x16:     "i8x16.mul",
	MinSVecI8x16:    "i8x16.min_s",
	MinUVecI8x16:    "i8x16.min_u",
	MaxSVecI8x16:    "i8x16.max_s",
	MaxUVecI8x16:    "i8x16.max_u",
	AvgrUVecI8x16:   "i8x16.avgr_u",
	AddVecI16x8:     "i16x8.add",
	AddSatSVecI16x8: "i16x8.add_sat_s",
	AddSatUVecI16x8: "i16x8.add_sat_u",
	SubVecI16x8:     "i16x8.sub",
	SubSatSVecI16x8: "i16x8.sub_sat_s",
	SubSatUVecI16x8: "i16x8.sub_sat_u",
	MulVecI16x8:     "i16x8.mul",
	MinSVecI16x8:    "i16x8.min_s",
	MinUVecI16x8:    "i16x8.min_u",
	MaxSVecI16x8:    "i16x8.max_s",
	MaxUVecI16x8:    "i16x8.max_u",
	AvgrUVecI16x8:   "i16x8.avgr_u",
	AddVecI32x4:     "i32x4.add",
	SubVecI32x4:     "i32x4.sub",
	MulVecI32x4:     "i32x4.mul",
	MinSVecI32x4:    "i32x4.min_s",
	MinUVecI32x4:    "i32x4.min_u",
	MaxSVecI32x4:    "i32x4.max_s",
	MaxUVecI32x4:    "i32x4.max_u",

	DotSVecI16x8ToVecI32x4: "i32x4.dot_i16x8_s",

	AddVecI64x2: "i64x2.add",
	SubVecI64x2: "i64x2.sub",
	MulVecI64x2: "i64x2.mul",

	AddVecF32x4:  "f32x4.add",
	SubVecF32x4:  "f32x4.sub",
	MulVecF32x4:  "f32x4.mul",
	DivVecF32x4:  "f32x4.div",
	MinVecF32x4:  "f32x4.min",
	MaxVecF32x4:  "f32x4.max",
	PMinVecF32x4: "f32x4.pmin",
	PMaxVecF32x4: "f32x4.pmax",
	AddVecF64x2:  "f64x2.add",
	SubVecF64x2:  "f64x2.sub",
	MulVecF64x2:  "f64x2.mul",
	DivVecF64x2:  "f64x2.div",
	MinVecF64x2:  "f64x2.min",
	MaxVecF64x2:  "f64x2.max",
	PMinVecF64x2: "f64x2.pmin",
	PMaxVecF64x2: "f64x2.pmax",

	NarrowSVecI16x8ToVecI8x16: "i8x16.narrow_i16x8_s",
	NarrowUVecI16x8ToVecI8x16: "i8x16.narrow_i16x8_u",
	NarrowSVecI32x4ToVecI16x8: "i16x8.narrow_i32x4_s",
	NarrowUVecI32x4ToVecI16x8: "i16x8.narrow_i32x4_u",

	SwizzleVec8x16: "i8x16.swizzle",
}

// String returns the instruction mnemonic of the op.
func (op BinaryOp) String() string {
	if int(op) < len(binaryNames) && binaryNames[op] != "" {
		return binaryNames[op]
	}
	return fmt.Sprintf("binary(%d)", uint16(op))
}

var atomicRMWNames = [...]string{
	RMWAdd:  "add",
	RMWSub:  "sub",
	RMWAnd:  "and",
	RMWOr:   "or",
	RMWXor:  "xor",
	RMWXchg: "xchg",
}

// String returns the combining-operation name.
func (op AtomicRMWOp) String() string {
	if int(op) < len(atomicRMWNames) {
		return atomicRMWNames[op]
	}
	return fmt.Sprintf("rmw(%d)", uint8(op))
}

var simdExtractNames = [...]string{
	ExtractLaneSVecI8x16: "i8x16.extract_lane_s",
	ExtractLaneUVecI8x16: "i8x16.extract_lane_u",
	ExtractLaneSVecI16x8: "i16x8.extract_lane_s",
	ExtractLaneUVecI16x8: "i16x8.extract_lane_u",
	ExtractLaneVecI32x4:  "i32x4.extract_lane",
	ExtractLaneVecI64x2:  "i64x2.extract_lane",
	ExtractLaneVecF32x4:  "f32x4.extract_lane",
	ExtractLaneVecF64x2:  "f64x2.extract_lane",
}

// String returns the instruction mnemonic of the op.
func (op SIMDExtractOp) String() string {
	if int(op) < len(simdExtractNames) {
		return simdExtractNames[op]
	}
	return fmt.Sprintf("simd.extract(%d)", uint8(op))
}

var simdReplaceNames = [...]string{
	ReplaceLaneVecI8x16: "i8x16.replace_lane",
	ReplaceLaneVecI16x8: "i16x8.replace_lane",
	ReplaceLaneVecI32x4: "i32x4.replace_lane",
	ReplaceLaneVecI64x2: "i64x2.replace_lane",
	ReplaceLaneVecF32x4: "f32x4.replace_lane",
	ReplaceLaneVecF64x2: "f64x2.replace_lane",
}

// String returns the instruction mnemonic of the op.
func (op SIMDReplaceOp) String() string {
	if int(op) < len(simdReplaceNames) {
		return simdReplaceNames[op]
	}
	return fmt.Sprintf("simd.replace(%d)", uint8(op))
}

var simdShiftNames = [...]string{
	ShlVecI8x16:  "i8x16.shl",
	ShrSVecI8x16: "i8x16.shr_s",
	ShrUVecI8x16: "i8x16.shr_u",
	ShlVecI16x8:  "i16x8.shl",
	ShrSVecI16x8: "i16x8.shr_s",
	ShrUVecI16x8: "i16x8.shr_u",
	ShlVecI32x4:  "i32x4.shl",
	ShrSVecI32x4: "i32x4.shr_s",
	ShrUVecI32x4: "i32x4.shr_u",
	ShlVecI64x2:  "i64x2.shl",
	ShrSVecI64x2: "i64x2.shr_s",
	ShrUVecI64x2: "i64x2.shr_u",
}

// String returns the instruction mnemonic of the op.
func (op SIMDShiftOp) String() string {
	if int(op) < len(simdShiftNames) {
		return simdShiftNames[op]
	}
	return fmt.Sprintf("simd.shift(%d)", uint8(op))
}

var simdLoadNames = [...]string{
	LoadSplatVec8x16:          "v128.load8_splat",
	LoadSplatVec16x8:          "v128.load16_splat",
	LoadSplatVec32x4:          "v128.load32_splat",
	LoadSplatVec64x2:          "v128.load64_splat",
	LoadExtSVec8x8ToVecI16x8:  "v128.load8x8_s",
	LoadExtUVec8x8ToVecI16x8:  "v128.load8x8_u",
	LoadExtSVec16x4ToVecI32x4: "v128.load16x4_s",
	LoadExtUVec16x4ToVecI32x4: "v128.load16x4_u",
	LoadExtSVec32x2ToVecI64x2: "v128.load32x2_s",
	LoadExtUVec32x2ToVecI64x2: "v128.load32x2_u",
	Load32Zero:                "v128.load32_zero",
	Load64Zero:                "v128.load64_zero",
}

// String returns the instruction mnemonic of the op.
func (op SIMDLoadOp) String() string {
	if int(op) < len(simdLoadNames) {
		return simdLoadNames[op]
	}
	return fmt.Sprintf("simd.load(%d)", uint8(op))
}

var simdTernaryNames = [...]string{
	Bitselect: "v128.bitselect",
	QFMAF32x4: "f32x4.qfma",
	QFMSF32x4: "f32x4.qfms",
	QFMAF64x2: "f64x2.qfma",
	QFMSF64x2: "f64x2.qfms",
}

// String returns the instruction mnemonic of the op.
func (op SIMDTernaryOp) String() string {
	if int(op) < len(simdTernaryNames) {
		return simdTernaryNames[op]
	}
	return fmt.Sprintf("simd.ternary(%d)", uint8(op))
}
