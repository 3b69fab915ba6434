package ir

import (
	"github.com/wippyai/wasm-ir/types"
)

// Importable carries the import source of a module entity. An entity with a
// module name is imported; its definition lives elsewhere.
type Importable struct {
	// Module and Base name the import source. Both empty for entities
	// defined in this module.
	Module string
	Base   string
}

// Imported reports whether the entity is an import.
func (i *Importable) Imported() bool {
	return i.Module != ""
}

// ExternalKind classifies what an import or export refers to.
type ExternalKind uint8

const (
	ExternalFunction ExternalKind = iota
	ExternalTable
	ExternalMemory
	ExternalGlobal
	ExternalEvent
)

var externalKindNames = [...]string{
	ExternalFunction: "function",
	ExternalTable:    "table",
	ExternalMemory:   "memory",
	ExternalGlobal:   "global",
	ExternalEvent:    "event",
}

// String returns the lowercase kind name.
func (k ExternalKind) String() string {
	if int(k) < len(externalKindNames) {
		return externalKindNames[k]
	}
	return "invalid"
}

// Export publishes an internal entity under a public name. The public Name
// is the unique key; the internal Value may back any number of exports,
// even across kinds.
type Export struct {
	Importable
	Name    string
	Value   string
	ExtKind ExternalKind
}

// Global is a module global variable.
type Global struct {
	Importable
	Name    string
	Type    types.Type
	Init    Expression
	Mutable bool
}

// EventAttributeException marks an event as an exception. No other
// attribute is currently defined.
const EventAttributeException uint32 = 0

// Event is a module event, as used by exception handling. Throwing an
// exception delivers operands matching the event signature's params; event
// signatures have no results.
type Event struct {
	Importable
	Name      string
	Attribute uint32
	Sig       types.Signature
}

// UserSection is an opaque custom section carried through the binary
// unparsed.
type UserSection struct {
	Name string
	Data []byte
}

// DylinkSection is the parsed form of the dylink custom section used by
// dynamic linking.
type DylinkSection struct {
	MemorySize      Index
	MemoryAlignment Index
	TableSize       Index
	TableAlignment  Index
	NeededDynlibs   []string
}
