package ir

import (
	"strconv"

	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

// Function is a module function. Locals are addressed by a single index
// space: parameters first, then the extra Vars.
type Function struct {
	Importable
	Name string
	Sig  types.Signature
	Vars []types.Type

	// Body is nil for imported functions.
	Body Expression

	// Stack IR is a linearized form derived from Body, cached here between
	// derivation and emission. SetBody drops it; edits made directly to
	// Body's fields do not, so such callers invalidate by hand.
	stackIR    StackIR
	hasStackIR bool

	localNames   map[Index]string
	localIndices map[string]Index

	// Source map positions per expression, plus the function entry and
	// exit position sets.
	DebugLocations map[Expression]DebugLocation
	PrologLocation map[DebugLocation]struct{}
	EpilogLocation map[DebugLocation]struct{}

	// Binary offsets recorded while reading or writing, for DWARF.
	ExpressionLocations map[Expression]Span
	DelimiterLocations  map[Expression]DelimiterLocations
	FuncLocation        FunctionLocations
}

// NumParams returns the number of parameters.
func (f *Function) NumParams() Index {
	return Index(f.Sig.Params.Arity())
}

// NumVars returns the number of non-parameter locals.
func (f *Function) NumVars() Index {
	return Index(len(f.Vars))
}

// NumLocals returns the total size of the local index space.
func (f *Function) NumLocals() Index {
	return f.NumParams() + f.NumVars()
}

// IsParam reports whether index addresses a parameter.
func (f *Function) IsParam(index Index) bool {
	f.checkLocal(index)
	return index < f.NumParams()
}

// IsVar reports whether index addresses a non-parameter local.
func (f *Function) IsVar(index Index) bool {
	f.checkLocal(index)
	return index >= f.VarIndexBase()
}

// VarIndexBase returns the index of the first non-parameter local.
func (f *Function) VarIndexBase() Index {
	return f.NumParams()
}

// LocalType returns the type of the local at index.
func (f *Function) LocalType(index Index) types.Type {
	f.checkLocal(index)
	base := f.VarIndexBase()
	if index < base {
		return f.Sig.Params.Expand()[index]
	}
	return f.Vars[index-base]
}

func (f *Function) checkLocal(index Index) {
	if index >= f.NumLocals() {
		panic(errors.OutOfBounds(errors.PhaseStore, int(index), int(f.NumLocals())))
	}
}

// HasLocalName reports whether the local at index carries a name.
func (f *Function) HasLocalName(index Index) bool {
	_, ok := f.localNames[index]
	return ok
}

// SetLocalName names the local at index, replacing any previous name.
func (f *Function) SetLocalName(index Index, name string) {
	f.checkLocal(index)
	if f.localNames == nil {
		f.localNames = make(map[Index]string)
		f.localIndices = make(map[string]Index)
	}
	f.localNames[index] = name
	f.localIndices[name] = index
}

// LocalName returns the name of the local at index. The local must be
// named; check with HasLocalName or use LocalNameOrDefault.
func (f *Function) LocalName(index Index) string {
	name, ok := f.localNames[index]
	if !ok {
		panic(errors.NotFound(errors.PhaseStore, "local name", strconv.FormatUint(uint64(index), 10)))
	}
	return name
}

// LocalNameOrDefault returns the local's name, or the empty string for an
// unnamed local.
func (f *Function) LocalNameOrDefault(index Index) string {
	return f.localNames[index]
}

// LocalNameOrGeneric returns the local's name, or the decimal index for an
// unnamed local.
func (f *Function) LocalNameOrGeneric(index Index) string {
	if name, ok := f.localNames[index]; ok {
		return name
	}
	return strconv.FormatUint(uint64(index), 10)
}

// LocalIndex returns the index of the named local. The name must exist.
func (f *Function) LocalIndex(name string) Index {
	index, ok := f.localIndices[name]
	if !ok {
		panic(errors.NotFound(errors.PhaseStore, "local", name))
	}
	return index
}

// ClearNames drops all local names.
func (f *Function) ClearNames() {
	f.localNames = nil
	f.localIndices = nil
}

// ClearDebugInfo drops the source map positions and binary offsets.
func (f *Function) ClearDebugInfo() {
	f.DebugLocations = nil
	f.PrologLocation = nil
	f.EpilogLocation = nil
	f.ExpressionLocations = nil
	f.DelimiterLocations = nil
	f.FuncLocation = FunctionLocations{}
}

// SetStackIR installs a freshly derived stack IR for the current body.
func (f *Function) SetStackIR(sir StackIR) {
	f.stackIR = sir
	f.hasStackIR = true
}

// StackIR returns the cached stack IR, if one is installed and still
// presumed valid.
func (f *Function) StackIR() (StackIR, bool) {
	return f.stackIR, f.hasStackIR
}

// InvalidateStackIR discards the cached stack IR.
func (f *Function) InvalidateStackIR() {
	f.stackIR = nil
	f.hasStackIR = false
}

// SetBody replaces the function body and discards the stack IR derived
// from the old one.
func (f *Function) SetBody(body Expression) {
	f.Body = body
	f.InvalidateStackIR()
}
