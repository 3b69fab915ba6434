package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

// SIMDExtract reads lane Index of Vec as a scalar.
type SIMDExtract struct {
	Expr
	Op    SIMDExtractOp
	Vec   Expression
	Index uint8
}

// NewSIMDExtract allocates a SIMDExtract in the arena.
func NewSIMDExtract(a *arena.Arena, op SIMDExtractOp) *SIMDExtract {
	e := arena.Alloc[SIMDExtract](a)
	e.kind = KindSIMDExtract
	e.Op = op
	return e
}

// Finalize implements Expression.
func (e *SIMDExtract) Finalize() {
	if e.Vec.Type() == types.Unreachable {
		e.typ = types.Unreachable
		return
	}
	e.typ = e.Op.laneType()
}

// SIMDReplace writes the scalar Value into lane Index of Vec.
type SIMDReplace struct {
	Expr
	Op    SIMDReplaceOp
	Vec   Expression
	Index uint8
	Value Expression
}

// NewSIMDReplace allocates a SIMDReplace in the arena.
func NewSIMDReplace(a *arena.Arena, op SIMDReplaceOp) *SIMDReplace {
	r := arena.Alloc[SIMDReplace](a)
	r.kind = KindSIMDReplace
	r.Op = op
	return r
}

// Finalize implements Expression.
func (r *SIMDReplace) Finalize() {
	if r.Vec.Type() == types.Unreachable || r.Value.Type() == types.Unreachable {
		r.typ = types.Unreachable
		return
	}
	r.typ = types.V128
}

// SIMDShuffle selects bytes from the concatenation of Left and Right
// according to Mask. Mask entries below 16 index Left, the rest Right.
type SIMDShuffle struct {
	Expr
	Left  Expression
	Right Expression
	Mask  [16]byte
}

// NewSIMDShuffle allocates a SIMDShuffle in the arena.
func NewSIMDShuffle(a *arena.Arena) *SIMDShuffle {
	s := arena.Alloc[SIMDShuffle](a)
	s.kind = KindSIMDShuffle
	return s
}

// Finalize implements Expression.
func (s *SIMDShuffle) Finalize() {
	if s.Left.Type() == types.Unreachable || s.Right.Type() == types.Unreachable {
		s.typ = types.Unreachable
		return
	}
	s.typ = types.V128
}

// SIMDTernary applies the three operand vector op Op to A, B and C.
type SIMDTernary struct {
	Expr
	Op SIMDTernaryOp
	A  Expression
	B  Expression
	C  Expression
}

// NewSIMDTernary allocates a SIMDTernary in the arena.
func NewSIMDTernary(a *arena.Arena, op SIMDTernaryOp) *SIMDTernary {
	t := arena.Alloc[SIMDTernary](a)
	t.kind = KindSIMDTernary
	t.Op = op
	return t
}

// Finalize implements Expression.
func (t *SIMDTernary) Finalize() {
	if anyUnreachable([]Expression{t.A, t.B, t.C}) {
		t.typ = types.Unreachable
		return
	}
	t.typ = types.V128
}

// SIMDShift shifts every lane of Vec by the scalar Shift amount.
type SIMDShift struct {
	Expr
	Op    SIMDShiftOp
	Vec   Expression
	Shift Expression
}

// NewSIMDShift allocates a SIMDShift in the arena.
func NewSIMDShift(a *arena.Arena, op SIMDShiftOp) *SIMDShift {
	s := arena.Alloc[SIMDShift](a)
	s.kind = KindSIMDShift
	s.Op = op
	return s
}

// Finalize implements Expression.
func (s *SIMDShift) Finalize() {
	if s.Vec.Type() == types.Unreachable || s.Shift.Type() == types.Unreachable {
		s.typ = types.Unreachable
		return
	}
	s.typ = types.V128
}

// SIMDLoad reads from linear memory at Ptr+Offset and widens, splats or
// zero extends into a vector according to Op.
type SIMDLoad struct {
	Expr
	Op     SIMDLoadOp
	Offset Address
	Align  Address
	Ptr    Expression
}

// NewSIMDLoad allocates a SIMDLoad in the arena.
func NewSIMDLoad(a *arena.Arena, op SIMDLoadOp) *SIMDLoad {
	l := arena.Alloc[SIMDLoad](a)
	l.kind = KindSIMDLoad
	l.Op = op
	return l
}

// Finalize implements Expression.
func (l *SIMDLoad) Finalize() {
	if l.Ptr.Type() == types.Unreachable {
		l.typ = types.Unreachable
		return
	}
	l.typ = types.V128
}

// MemBytes reports how many bytes of memory the load touches.
func (l *SIMDLoad) MemBytes() uint8 {
	switch l.Op {
	case LoadSplatVec8x16:
		return 1
	case LoadSplatVec16x8:
		return 2
	case LoadSplatVec32x4, Load32Zero:
		return 4
	case LoadSplatVec64x2, Load64Zero,
		LoadExtSVec8x8ToVecI16x8, LoadExtUVec8x8ToVecI16x8,
		LoadExtSVec16x4ToVecI32x4, LoadExtUVec16x4ToVecI32x4,
		LoadExtSVec32x2ToVecI64x2, LoadExtUVec32x2ToVecI64x2:
		return 8
	}
	panic(errors.Precondition(errors.PhaseFinalize, "invalid simd load op %d", l.Op))
}
