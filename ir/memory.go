package ir

import (
	"github.com/wippyai/wasm-ir/types"
)

// DataSegment seeds a run of linear memory with bytes. An active segment
// is copied in at the address Offset evaluates to during instantiation; a
// passive one waits for memory.init.
type DataSegment struct {
	Passive bool
	Offset  Expression
	Data    []byte
}

// Memory is the module's linear memory. A module always holds one Memory
// value; Exists tells whether the module actually defines or imports it.
// Sizes are in pages.
type Memory struct {
	Importable
	Exists   bool
	Name     string
	Initial  Address
	Max      Address
	Segments []DataSegment

	// Shared memories can be accessed from multiple agents and require
	// declared maximums.
	Shared bool

	// IndexType is the address width, i32 unless the memory is 64 bit.
	IndexType types.Type
}

// NewMemory returns a memory in the cleared state.
func NewMemory() Memory {
	return Memory{Name: "0", Max: MemoryMaxSize32, IndexType: types.I32}
}

// HasMax reports whether the memory declares a maximum size.
func (m *Memory) HasMax() bool {
	return m.Max != MemoryUnlimitedSize
}

// Is64 reports whether the memory uses 64 bit addressing.
func (m *Memory) Is64() bool {
	return m.IndexType == types.I64
}

// Clear resets the memory to the non-existent state.
func (m *Memory) Clear() {
	m.Importable = Importable{}
	m.Exists = false
	m.Name = ""
	m.Initial = 0
	m.Max = MemoryMaxSize32
	m.Segments = nil
	m.Shared = false
	m.IndexType = types.I32
}
