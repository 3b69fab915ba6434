package ir

// Index addresses entities and locals within a module.
type Index uint32

// Address measures sizes and offsets in linear memory and tables. It is wide
// enough for 64-bit memories.
type Address uint64

const (
	// TablePageSize is the allocation granularity of tables.
	TablePageSize = 1
	// TableUnlimitedSize marks a table with no declared maximum.
	TableUnlimitedSize Address = 0xFFFF_FFFF
	// TableMaxSize caps table growth at what a 32-bit pointer can reach.
	TableMaxSize Address = 0xFFFF_FFFF

	// MemoryPageSize is the wasm linear-memory page size in bytes.
	MemoryPageSize = 64 * 1024
	// MemoryUnlimitedSize marks a memory with no declared maximum.
	MemoryUnlimitedSize Address = ^Address(0)
	// MemoryMaxSize32 is the page count reachable through a 32-bit pointer.
	MemoryMaxSize32 Address = (4 * 1024 * 1024 * 1024) / MemoryPageSize
)
