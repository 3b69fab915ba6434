// Package features tracks which WebAssembly proposals a module may use.
//
// A Set is a bit set of post-MVP proposals. The zero value is MVP: no
// proposals enabled. Sets combine with bitwise operations or the Add and
// Remove helpers:
//
//	var fs features.Set
//	fs.Add(features.SIMD | features.BulkMemory)
//	if fs.Has(features.SIMD) {
//	    // emit vector instructions
//	}
//
// Feature names in String output follow the names used by the target_features
// custom section ("simd", "bulk-memory", "nontrapping-float-to-int", ...).
package features
