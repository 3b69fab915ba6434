// Package literal represents WebAssembly constant values.
//
// A Value pairs a value type with its payload: numeric constants store their
// bit pattern, vector constants store 16 lane bytes, and reference constants
// store either the null marker or a function name. Values are comparable
// with ==; float comparison is bitwise, so NaN payloads participate in
// identity rather than IEEE equality.
//
//	seven := literal.Int32(7)
//	pi := literal.Float64(3.14159)
//	null := literal.Null(types.Externref)
//
// Typed accessors (I32, F64, ...) panic when asked for a payload the value
// does not carry; callers switch on Type first.
package literal
