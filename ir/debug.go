package ir

// BinaryLocation is an offset into a wasm binary, relative to the start of
// the code section as in DWARF. Wasm files cap at 32 bits.
type BinaryLocation = uint32

// Span is the contiguous byte range an instruction occupies in the binary.
// Control flow instructions have additional delimiter opcodes past the
// span, tracked separately.
type Span struct {
	Start BinaryLocation
	End   BinaryLocation
}

// DelimiterLocations records the extra opcode positions of a control flow
// instruction. Index 0 is the closing end; index 1 serves whichever middle
// delimiter the instruction has. A zero entry is unused.
type DelimiterLocations [2]BinaryLocation

// Delimiter indices into DelimiterLocations.
const (
	DelimiterEnd   = 0
	DelimiterElse  = 1
	DelimiterCatch = 1
)

// FunctionLocations records the positions DWARF can refer to within a
// function body.
type FunctionLocations struct {
	// Start is the very start of the function, at its size prefix.
	Start BinaryLocation

	// Declarations is where the locals are declared, right after the size
	// prefix.
	Declarations BinaryLocation

	// End is one past the final end opcode byte.
	End BinaryLocation
}

// DebugLocation is a source map position: a file table index plus line and
// column.
type DebugLocation struct {
	FileIndex    BinaryLocation
	LineNumber   BinaryLocation
	ColumnNumber BinaryLocation
}

// Before orders locations by file, then line, then column.
func (l DebugLocation) Before(other DebugLocation) bool {
	if l.FileIndex != other.FileIndex {
		return l.FileIndex < other.FileIndex
	}
	if l.LineNumber != other.LineNumber {
		return l.LineNumber < other.LineNumber
	}
	return l.ColumnNumber < other.ColumnNumber
}
