// Package arena provides module-scoped bump allocation for IR nodes.
//
// An Arena hands out pointers whose storage lives exactly as long as the
// arena itself; nothing is ever freed individually. Allocation appends into
// fixed-capacity chunks, so returned pointers remain stable as the arena
// grows:
//
//	a := arena.New()
//	blk := arena.Alloc[ir.Block](a)
//
// An Arena has no internal locking. It follows the single-writer model: one
// logical owner allocates at a time, and passes that want to build function
// bodies in parallel must use one arena per goroutine.
package arena
