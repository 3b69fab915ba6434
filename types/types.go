package types

import (
	"fmt"
	"strings"

	"github.com/wippyai/wasm-ir/errors"
)

// Type is a compact handle for a WebAssembly value type. Basic types and the
// two sentinels are predeclared constants; tuple handles are allocated by
// Tuple. The zero value is None.
type Type uint32

const (
	None Type = iota
	Unreachable
	I32
	I64
	F32
	F64
	V128
	Funcref
	Externref
	Exnref
	Anyref
	Eqref
	I31ref

	basicCount
)

var basicNames = [basicCount]string{
	"none",
	"unreachable",
	"i32",
	"i64",
	"f32",
	"f64",
	"v128",
	"funcref",
	"externref",
	"exnref",
	"anyref",
	"eqref",
	"i31ref",
}

// IsBasic reports whether t is a predeclared type rather than a tuple.
func (t Type) IsBasic() bool {
	return t < basicCount
}

// IsTuple reports whether t is an interned tuple handle.
func (t Type) IsTuple() bool {
	return t >= firstTupleID
}

// IsConcrete reports whether t is an actual value type, excluding the None
// and Unreachable sentinels.
func (t Type) IsConcrete() bool {
	return t != None && t != Unreachable
}

// IsInteger reports whether t is i32 or i64.
func (t Type) IsInteger() bool {
	return t == I32 || t == I64
}

// IsFloat reports whether t is f32 or f64.
func (t Type) IsFloat() bool {
	return t == F32 || t == F64
}

// IsVector reports whether t is v128.
func (t Type) IsVector() bool {
	return t == V128
}

// IsRef reports whether t is a reference type.
func (t Type) IsRef() bool {
	return t >= Funcref && t <= I31ref
}

// Size returns the byte width of a number, vector, or tuple-of-those type.
// Reference types and the sentinels have no byte size; asking for one panics.
func (t Type) Size() uint32 {
	switch t {
	case I32, F32:
		return 4
	case I64, F64:
		return 8
	case V128:
		return 16
	}
	if elems, ok := tuples.lookup(t); ok {
		var total uint32
		for _, e := range elems {
			total += e.Size()
		}
		return total
	}
	panic(errors.Precondition(errors.PhaseBuild, "type %s has no byte size", t))
}

// Arity returns the number of values t describes: 0 for None, the element
// count for tuples, 1 otherwise.
func (t Type) Arity() int {
	if t == None {
		return 0
	}
	if elems, ok := tuples.lookup(t); ok {
		return len(elems)
	}
	return 1
}

// Expand returns the element sequence of t: nil for None, a fresh copy of
// the elements for tuples, and a single-element slice otherwise.
func (t Type) Expand() []Type {
	if t == None {
		return nil
	}
	if elems, ok := tuples.lookup(t); ok {
		return append([]Type(nil), elems...)
	}
	return []Type{t}
}

// LeastUpperBound joins a and b on the subtype lattice. Unreachable is the
// bottom element and joins to the other operand. Distinct reference types
// join upward (i31ref with eqref gives eqref, anything else gives anyref).
// Tuples join element-wise when arities match. Any other combination has no
// common supertype and panics; mismatched arities are a caller error, not a
// silently resolved one.
func LeastUpperBound(a, b Type) Type {
	if a == b {
		return a
	}
	if a == Unreachable {
		return b
	}
	if b == Unreachable {
		return a
	}
	if a.Arity() != b.Arity() {
		panic(errors.NoCommonSupertype(a.String(), b.String()))
	}
	if a.IsTuple() {
		ae := tuples.mustLookup(a)
		be := tuples.mustLookup(b)
		elems := make([]Type, len(ae))
		for i := range ae {
			elems[i] = LeastUpperBound(ae[i], be[i])
		}
		return Tuple(elems...)
	}
	if a.IsRef() && b.IsRef() {
		if (a == I31ref && b == Eqref) || (a == Eqref && b == I31ref) {
			return Eqref
		}
		return Anyref
	}
	panic(errors.NoCommonSupertype(a.String(), b.String()))
}

// String returns the canonical text form: basic names as in the text format,
// tuples as a parenthesized space-separated element list.
func (t Type) String() string {
	if t.IsBasic() {
		return basicNames[t]
	}
	elems, ok := tuples.lookup(t)
	if !ok {
		return fmt.Sprintf("type(%d)", uint32(t))
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}
