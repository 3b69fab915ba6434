package ir

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/features"
	"github.com/wippyai/wasm-ir/types"
)

func TestNewModuleDefaults(t *testing.T) {
	m := NewModule()

	if m.Allocator == nil {
		t.Fatal("module has no allocator")
	}
	if m.Features != features.MVP {
		t.Fatalf("features = %s, expected mvp", m.Features)
	}
	if m.Table.Exists || m.Memory.Exists {
		t.Fatal("fresh module claims a table or memory")
	}
	if !m.Memory.HasMax() {
		t.Fatal("fresh memory has no default maximum")
	}
	if m.Memory.Is64() {
		t.Fatal("fresh memory is 64 bit")
	}
	// The table's default maximum is the 32 bit limit, which doubles as
	// the no-maximum sentinel.
	if m.Table.HasMax() {
		t.Fatal("fresh table declares a maximum")
	}
}

func TestModuleAddGet(t *testing.T) {
	m := NewModule()

	f := m.AddFunction(&Function{Name: "run", Sig: types.NewSignature(types.None, types.I32)})
	g := m.AddGlobal(&Global{Name: "counter", Type: types.I64, Mutable: true})
	ev := m.AddEvent(&Event{Name: "error", Sig: types.NewSignature(types.I32, types.None)})
	ex := m.AddExport(&Export{Name: "main", Value: "run", ExtKind: ExternalFunction})

	got, err := m.GetFunction("run")
	if err != nil || got != f {
		t.Fatalf("GetFunction = (%v, %v), expected the added function", got, err)
	}
	if gotG, err := m.GetGlobal("counter"); err != nil || gotG != g {
		t.Fatalf("GetGlobal = (%v, %v)", gotG, err)
	}
	if gotE, err := m.GetEvent("error"); err != nil || gotE != ev {
		t.Fatalf("GetEvent = (%v, %v)", gotE, err)
	}
	if gotX, err := m.GetExport("main"); err != nil || gotX != ex {
		t.Fatalf("GetExport = (%v, %v)", gotX, err)
	}

	if _, err := m.GetFunction("missing"); err == nil {
		t.Fatal("GetFunction on a missing name returned no error")
	} else {
		var irErr *errors.Error
		if !stderrors.As(err, &irErr) || irErr.Kind != errors.KindNotFound {
			t.Fatalf("error = %v, expected a not_found error", err)
		}
	}

	if m.GetFunctionOrNil("missing") != nil {
		t.Fatal("GetFunctionOrNil on a missing name returned a function")
	}
	if m.GetFunctionOrNil("run") != f {
		t.Fatal("GetFunctionOrNil did not return the added function")
	}
}

func TestModuleAddDuplicatePanics(t *testing.T) {
	m := NewModule()
	m.AddFunction(&Function{Name: "f"})

	mustPanicKind(t, errors.KindDuplicateName, func() {
		m.AddFunction(&Function{Name: "f"})
	})
	mustPanicKind(t, errors.KindPrecondition, func() {
		m.AddFunction(&Function{})
	})
}

func TestModuleExportMultiplicity(t *testing.T) {
	// One internal entity may back any number of exports; the public name
	// is the unique key.
	m := NewModule()
	m.AddFunction(&Function{Name: "run"})

	m.AddExport(&Export{Name: "main", Value: "run", ExtKind: ExternalFunction})
	m.AddExport(&Export{Name: "start", Value: "run", ExtKind: ExternalFunction})

	if len(m.Exports) != 2 {
		t.Fatalf("exports = %d, expected 2", len(m.Exports))
	}

	mustPanicKind(t, errors.KindDuplicateName, func() {
		m.AddExport(&Export{Name: "main", Value: "other", ExtKind: ExternalFunction})
	})
}

func TestModuleRemove(t *testing.T) {
	m := NewModule()
	m.AddFunction(&Function{Name: "a"})
	m.AddFunction(&Function{Name: "b"})
	m.AddFunction(&Function{Name: "c"})

	m.RemoveFunction("b")

	if len(m.Functions) != 2 {
		t.Fatalf("functions = %d, expected 2", len(m.Functions))
	}
	if m.Functions[0].Name != "a" || m.Functions[1].Name != "c" {
		t.Fatal("removal broke insertion order")
	}
	if m.GetFunctionOrNil("b") != nil {
		t.Fatal("map still holds the removed function")
	}

	// Removing an absent name is a no-op.
	m.RemoveFunction("missing")
	if len(m.Functions) != 2 {
		t.Fatal("removing a missing name changed the slice")
	}
}

func TestModuleRemoveMatching(t *testing.T) {
	m := NewModule()
	m.AddGlobal(&Global{Name: "keep", Type: types.I32})
	g := &Global{Name: "drop1", Type: types.I32}
	g.Module = "env"
	g.Base = "x"
	m.AddGlobal(g)
	g2 := &Global{Name: "drop2", Type: types.I32}
	g2.Module = "env"
	g2.Base = "y"
	m.AddGlobal(g2)

	m.RemoveGlobals(func(g *Global) bool { return g.Imported() })

	if len(m.Globals) != 1 || m.Globals[0].Name != "keep" {
		t.Fatalf("globals after removal = %d, expected only keep", len(m.Globals))
	}
	if m.GetGlobalOrNil("drop1") != nil || m.GetGlobalOrNil("drop2") != nil {
		t.Fatal("map still holds removed globals")
	}
	if m.GetGlobalOrNil("keep") == nil {
		t.Fatal("survivor missing from map")
	}
}

func TestModuleUpdateMaps(t *testing.T) {
	m := NewModule()
	m.Functions = append(m.Functions, &Function{Name: "direct"})
	m.Exports = append(m.Exports, &Export{Name: "e", Value: "direct", ExtKind: ExternalFunction})

	if m.GetFunctionOrNil("direct") != nil {
		t.Fatal("map knew about a direct slice edit before UpdateMaps")
	}

	m.UpdateMaps()

	if m.GetFunctionOrNil("direct") == nil {
		t.Fatal("function missing after UpdateMaps")
	}
	if m.GetExportOrNil("e") == nil {
		t.Fatal("export missing after UpdateMaps")
	}
}

func TestModuleAddStart(t *testing.T) {
	m := NewModule()
	m.AddStart("init")
	if m.Start != "init" {
		t.Fatalf("start = %q, expected init", m.Start)
	}
}

func TestModuleClearDebugInfo(t *testing.T) {
	m := NewModule()
	f := m.AddFunction(&Function{Name: "f"})
	f.DebugLocations = map[Expression]DebugLocation{nil: {LineNumber: 1}}
	m.DebugInfoFileNames = []string{"main.c"}

	m.ClearDebugInfo()

	if m.DebugInfoFileNames != nil {
		t.Fatal("file names survived ClearDebugInfo")
	}
	if f.DebugLocations != nil {
		t.Fatal("function debug state survived ClearDebugInfo")
	}
}

func TestTableMemoryClear(t *testing.T) {
	m := NewModule()

	m.Table.Exists = true
	m.Table.Initial = 2
	m.Table.Max = 10
	m.Table.Segments = []TableSegment{{Data: []string{"f"}}}
	m.Table.Clear()
	if m.Table.Exists || m.Table.Initial != 0 || m.Table.Segments != nil {
		t.Fatal("table not fully cleared")
	}
	if m.Table.HasMax() {
		t.Fatal("cleared table declares a maximum")
	}
	m.Table.Max = 10
	if !m.Table.HasMax() {
		t.Fatal("bounded table claims no maximum")
	}

	m.Memory.Exists = true
	m.Memory.Shared = true
	m.Memory.IndexType = types.I64
	m.Memory.Segments = []DataSegment{{Data: []byte{1, 2}}}
	m.Memory.Clear()
	if m.Memory.Exists || m.Memory.Shared || m.Memory.Is64() || m.Memory.Segments != nil {
		t.Fatal("memory not fully cleared")
	}

	m.Memory.Max = MemoryUnlimitedSize
	if m.Memory.HasMax() {
		t.Fatal("unlimited memory claims a maximum")
	}
}
