// Package ir is the in-memory representation of a WebAssembly module for
// compilation tooling: a closed set of expression node kinds, per-node type
// inference, and a module-level entity store with synchronized name lookup.
//
// # Expressions
//
// Every node embeds Expr, which carries the node's immutable Kind tag and its
// current output type. Nodes are allocated from a module-scoped arena and
// reference their children by plain pointers; the arena owns all storage and
// nothing is freed individually:
//
//	mod := ir.NewModule()
//	c := ir.NewConst(mod.Allocator, literal.Int32(7))
//	blk := ir.NewBlock(mod.Allocator)
//	blk.List = append(blk.List, c)
//	blk.Finalize()
//
// Kind is queryable in O(1) and is the sole discriminant for downcasts. Two
// forms are provided: As returns (nil, false) on mismatch, MustAs panics with
// a kind_mismatch error:
//
//	if b, ok := ir.As[*ir.Block](e); ok {
//	    _ = b.List
//	}
//	blk := ir.MustAs[*ir.Block](e) // panics unless e is a *ir.Block
//
// # Finalize
//
// A node's type is not maintained automatically. After any structural edit
// (children replaced, a branch target renamed, an unreachable path introduced
// or removed) the caller must re-run Finalize on the edited node, or
// Refinalize on the enclosing subtree, before trusting Type. Finalize is
// idempotent and uses only local information: the node's fields and its
// direct children's current types, plus, for named blocks, the types carried
// by branches in the subtree that target the block's name.
//
// The unreachable sentinel propagates bottom-up: an operand that never
// produces a value makes its consumer unreachable. Branch-target unification
// uses types.LeastUpperBound with unreachable as the lattice bottom.
//
// A few kinds never infer their type. Loads, atomic read-modify-writes, pops
// and direct calls are created with an externally supplied type (for calls,
// the callee's declared result); Finalize validates consistency and applies
// unreachable absorption but will not reconstruct an absorbed type, so a
// caller that replaces an unreachable operand must also re-set the type.
//
// The GC extension kinds (struct/array access, rtts, casts) are structurally
// declared but have no inference rule yet; calling Finalize on them panics
// with an unimplemented error rather than guessing a type.
//
// # Module entities
//
// Module owns ordered collections of functions, globals, events and exports,
// a single optional Table and Memory, a start-function name, user sections
// and debug metadata. Add* transfers ownership and panics on a duplicate
// name; Get* returns a not_found error for unknown names and Get*OrNil
// returns nil instead; Remove*/Remove*s delete by name or predicate. Every
// mutator keeps the name lookup maps in sync, and UpdateMaps rebuilds them
// after external bulk edits to the collections:
//
//	fn := &ir.Function{Name: "main", Sig: types.NewSignature(types.None, types.I32), Body: blk}
//	mod.AddFunction(fn)
//	got, err := mod.GetFunction("main")
//
// Exports are keyed by their public name; several exports may reference the
// same internal entity under different names.
//
// # Concurrency
//
// A Module, its arena and its expression trees follow a single-writer model:
// one logical owner mutates at a time, and Finalize counts as mutation.
// Read-only traversal from several goroutines is safe only while no writer
// is active. The package takes no locks.
package ir
