package ir

import (
	"go.uber.org/zap"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/features"
)

// Module is a complete wasm module under construction or transformation.
// Entity slices keep insertion order and stay in lockstep with the name
// lookup maps; mutate them through the Add and Remove methods, or call
// UpdateMaps after editing the slices directly.
type Module struct {
	Exports   []*Export
	Functions []*Function
	Globals   []*Global
	Events    []*Event

	Table  Table
	Memory Memory

	// Start names the function run at instantiation, if any.
	Start string

	UserSections []UserSection

	// Dylink is the parsed dylink section, present when the module takes
	// part in dynamic linking.
	Dylink *DylinkSection

	// DebugInfoFileNames is the source map file table.
	DebugInfoFileNames []string

	// Features are the feature sets the module may use, respected whether
	// or not a features section was read. HasFeaturesSection records that
	// one was read and should be written back.
	Features           features.Set
	HasFeaturesSection bool

	// Name serves a documentary role only.
	Name string

	// Allocator owns every expression node of the module.
	Allocator *arena.Arena

	exportsMap   map[string]*Export
	functionsMap map[string]*Function
	globalsMap   map[string]*Global
	eventsMap    map[string]*Event
}

// NewModule returns an empty module with an empty table and memory and MVP
// features.
func NewModule() *Module {
	m := &Module{
		Table:     NewTable(),
		Memory:    NewMemory(),
		Features:  features.MVP,
		Allocator: arena.New(),
	}
	m.ensureMaps()
	return m
}

func (m *Module) ensureMaps() {
	if m.exportsMap == nil {
		m.exportsMap = make(map[string]*Export)
		m.functionsMap = make(map[string]*Function)
		m.globalsMap = make(map[string]*Global)
		m.eventsMap = make(map[string]*Event)
	}
}

func checkAddable(entity, name string, taken bool) {
	if name == "" {
		panic(errors.Precondition(errors.PhaseStore, "%s name must not be empty", entity))
	}
	if taken {
		panic(errors.DuplicateName(entity, name))
	}
}

// AddExport registers e under its public name, which must be non-empty and
// unused. The internal value it refers to may back any number of exports.
func (m *Module) AddExport(e *Export) *Export {
	m.ensureMaps()
	_, taken := m.exportsMap[e.Name]
	checkAddable("export", e.Name, taken)
	m.Exports = append(m.Exports, e)
	m.exportsMap[e.Name] = e
	Logger().Debug("added export", zap.String("name", e.Name), zap.Stringer("kind", e.ExtKind))
	return e
}

// AddFunction registers f under its name, which must be non-empty and
// unused.
func (m *Module) AddFunction(f *Function) *Function {
	m.ensureMaps()
	_, taken := m.functionsMap[f.Name]
	checkAddable("function", f.Name, taken)
	m.Functions = append(m.Functions, f)
	m.functionsMap[f.Name] = f
	Logger().Debug("added function", zap.String("name", f.Name))
	return f
}

// AddGlobal registers g under its name, which must be non-empty and unused.
func (m *Module) AddGlobal(g *Global) *Global {
	m.ensureMaps()
	_, taken := m.globalsMap[g.Name]
	checkAddable("global", g.Name, taken)
	m.Globals = append(m.Globals, g)
	m.globalsMap[g.Name] = g
	Logger().Debug("added global", zap.String("name", g.Name))
	return g
}

// AddEvent registers e under its name, which must be non-empty and unused.
func (m *Module) AddEvent(e *Event) *Event {
	m.ensureMaps()
	_, taken := m.eventsMap[e.Name]
	checkAddable("event", e.Name, taken)
	m.Events = append(m.Events, e)
	m.eventsMap[e.Name] = e
	Logger().Debug("added event", zap.String("name", e.Name))
	return e
}

// AddStart sets the start function name.
func (m *Module) AddStart(name string) {
	m.Start = name
}

// GetExport returns the export with the given public name.
func (m *Module) GetExport(name string) (*Export, error) {
	if e, ok := m.exportsMap[name]; ok {
		return e, nil
	}
	return nil, errors.NotFound(errors.PhaseStore, "export", name)
}

// GetFunction returns the function with the given name.
func (m *Module) GetFunction(name string) (*Function, error) {
	if f, ok := m.functionsMap[name]; ok {
		return f, nil
	}
	return nil, errors.NotFound(errors.PhaseStore, "function", name)
}

// GetGlobal returns the global with the given name.
func (m *Module) GetGlobal(name string) (*Global, error) {
	if g, ok := m.globalsMap[name]; ok {
		return g, nil
	}
	return nil, errors.NotFound(errors.PhaseStore, "global", name)
}

// GetEvent returns the event with the given name.
func (m *Module) GetEvent(name string) (*Event, error) {
	if e, ok := m.eventsMap[name]; ok {
		return e, nil
	}
	return nil, errors.NotFound(errors.PhaseStore, "event", name)
}

// GetExportOrNil returns the export with the given public name, or nil.
func (m *Module) GetExportOrNil(name string) *Export {
	return m.exportsMap[name]
}

// GetFunctionOrNil returns the function with the given name, or nil.
func (m *Module) GetFunctionOrNil(name string) *Function {
	return m.functionsMap[name]
}

// GetGlobalOrNil returns the global with the given name, or nil.
func (m *Module) GetGlobalOrNil(name string) *Global {
	return m.globalsMap[name]
}

// GetEventOrNil returns the event with the given name, or nil.
func (m *Module) GetEventOrNil(name string) *Event {
	return m.eventsMap[name]
}

// RemoveExport removes the export with the given public name, if present.
func (m *Module) RemoveExport(name string) {
	m.Exports = removeByName(m.Exports, m.exportsMap, name, func(e *Export) string { return e.Name })
}

// RemoveFunction removes the function with the given name, if present.
func (m *Module) RemoveFunction(name string) {
	m.Functions = removeByName(m.Functions, m.functionsMap, name, func(f *Function) string { return f.Name })
}

// RemoveGlobal removes the global with the given name, if present.
func (m *Module) RemoveGlobal(name string) {
	m.Globals = removeByName(m.Globals, m.globalsMap, name, func(g *Global) string { return g.Name })
}

// RemoveEvent removes the event with the given name, if present.
func (m *Module) RemoveEvent(name string) {
	m.Events = removeByName(m.Events, m.eventsMap, name, func(e *Event) string { return e.Name })
}

// RemoveExports removes every export pred matches.
func (m *Module) RemoveExports(pred func(*Export) bool) {
	m.Exports = removeMatching(m.Exports, m.exportsMap, pred, func(e *Export) string { return e.Name })
}

// RemoveFunctions removes every function pred matches.
func (m *Module) RemoveFunctions(pred func(*Function) bool) {
	m.Functions = removeMatching(m.Functions, m.functionsMap, pred, func(f *Function) string { return f.Name })
}

// RemoveGlobals removes every global pred matches.
func (m *Module) RemoveGlobals(pred func(*Global) bool) {
	m.Globals = removeMatching(m.Globals, m.globalsMap, pred, func(g *Global) string { return g.Name })
}

// RemoveEvents removes every event pred matches.
func (m *Module) RemoveEvents(pred func(*Event) bool) {
	m.Events = removeMatching(m.Events, m.eventsMap, pred, func(e *Event) string { return e.Name })
}

func removeByName[T any](list []*T, byName map[string]*T, name string, nameOf func(*T) string) []*T {
	for i, e := range list {
		if nameOf(e) == name {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	delete(byName, name)
	return list
}

func removeMatching[T any](list []*T, byName map[string]*T, pred func(*T) bool, nameOf func(*T) string) []*T {
	kept := list[:0]
	for _, e := range list {
		if pred(e) {
			delete(byName, nameOf(e))
		} else {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}

// UpdateMaps rebuilds the name lookup maps from the entity slices. Call it
// after editing the slices directly.
func (m *Module) UpdateMaps() {
	m.exportsMap = make(map[string]*Export, len(m.Exports))
	for _, e := range m.Exports {
		m.exportsMap[e.Name] = e
	}
	m.functionsMap = make(map[string]*Function, len(m.Functions))
	for _, f := range m.Functions {
		m.functionsMap[f.Name] = f
	}
	m.globalsMap = make(map[string]*Global, len(m.Globals))
	for _, g := range m.Globals {
		m.globalsMap[g.Name] = g
	}
	m.eventsMap = make(map[string]*Event, len(m.Events))
	for _, e := range m.Events {
		m.eventsMap[e.Name] = e
	}
	Logger().Debug("rebuilt entity maps",
		zap.Int("exports", len(m.Exports)),
		zap.Int("functions", len(m.Functions)),
		zap.Int("globals", len(m.Globals)),
		zap.Int("events", len(m.Events)))
}

// ClearDebugInfo drops the source map file table and every function's
// debug state.
func (m *Module) ClearDebugInfo() {
	m.DebugInfoFileNames = nil
	for _, f := range m.Functions {
		f.ClearDebugInfo()
	}
}
