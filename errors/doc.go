// Package errors provides structured error types for the wasm-ir library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: entity namespace and name,
// expected vs actual type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseStore, errors.KindDuplicateName).
//		Entity("function", "add").
//		Detail("already registered").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseStore, "global", "g")
//	err := errors.KindMismatch("*ir.Block", "*ir.Const")
//
// Programming errors (duplicate registration, failed downcasts, violated
// finalize preconditions) are reported by panicking with an *Error value.
// Absence of an entity is reported by ordinary error returns. All errors
// implement the standard error interface and support errors.Is/As.
package errors
