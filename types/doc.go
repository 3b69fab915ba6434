// Package types implements the value-type algebra for WebAssembly IR.
//
// A Type is a compact comparable handle. The basic types cover the MVP
// numeric types, the 128-bit vector type, and the reference types of the
// typed-reference and exception proposals, plus two sentinels:
//
//	types.None         // no value
//	types.Unreachable  // control never falls through
//
// Multi-value results are tuples, built with Tuple and interned globally so
// that equal element sequences always produce the same handle:
//
//	pair := types.Tuple(types.I32, types.F64)
//	pair == types.Tuple(types.I32, types.F64) // true
//
// LeastUpperBound joins two types on the subtype lattice with Unreachable as
// bottom. Joining types with no common supertype (i32 and f64, mismatched
// tuple arities, a value against None) is a caller error and panics; callers
// are expected to have verified arity agreement beforehand.
//
// Signature pairs a parameter type with a result type, each possibly a tuple.
//
// Tuple interning is the only operation in the library that is safe for
// concurrent use; everything else follows the single-writer model of the ir
// package.
package types
