// Package wasmir provides the in-memory intermediate representation used by
// a WebAssembly compilation toolkit.
//
// The IR is a tree of typed expression nodes owned by a per-module arena,
// together with a module-level entity store (functions, globals, events,
// exports, table, memory) and the bottom-up type-inference protocol
// (Finalize) that keeps node types consistent after edits. Encoders,
// decoders, validators and optimization passes are built on top of this
// library; none of them live here.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	wasmir/          Root package (documentation only)
//	├── ir/          Expression nodes, Finalize, Module entity store,
//	│                debug/location side tables, subtree traversal
//	├── types/       Value-type algebra: sentinels, tuples, LUB, signatures
//	├── literal/     Constant values carried by Const nodes
//	├── arena/       Bump allocator scoping the lifetime of a module's nodes
//	├── features/    WebAssembly proposal feature flags
//	└── errors/      Structured error values for lookup and precondition
//	                 failures
//
// # Quick Start
//
// Build and finalize a small function body:
//
//	mod := ir.NewModule()
//	c := ir.NewConst(mod.Allocator, literal.Int32(7))
//	body := ir.NewBlock(mod.Allocator)
//	body.Name = "exit"
//	body.List = append(body.List, c)
//	body.Finalize()
//
//	fn := &ir.Function{
//	    Name: "seven",
//	    Sig:  types.NewSignature(types.None, types.I32),
//	    Body: body,
//	}
//	mod.AddFunction(fn)
//
// After any structural edit to a subtree, call ir.Refinalize on it (or
// Finalize bottom-up by hand) before trusting node types again.
//
// # Ownership Model
//
// Every node belongs to exactly one module-scoped arena; links between nodes
// are non-owning references whose validity is tied to that arena's lifetime.
// Nodes are never freed individually.
//
// # Thread Safety
//
// A Module and its arena have a single logical writer; no internal locking
// is provided. Concurrent read-only traversal is safe only while no
// mutation (including Finalize, which writes node types) is in flight.
package wasmir
