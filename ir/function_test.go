package ir

import (
	"testing"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/types"
)

func twoParamFunc() *Function {
	return &Function{
		Name: "f",
		Sig:  types.NewSignature(types.Tuple(types.I32, types.I64), types.I32),
		Vars: []types.Type{types.F32, types.F64},
	}
}

func TestFunctionLocalCounts(t *testing.T) {
	f := twoParamFunc()

	if f.NumParams() != 2 {
		t.Fatalf("NumParams = %d, expected 2", f.NumParams())
	}
	if f.NumVars() != 2 {
		t.Fatalf("NumVars = %d, expected 2", f.NumVars())
	}
	if f.NumLocals() != 4 {
		t.Fatalf("NumLocals = %d, expected 4", f.NumLocals())
	}
	if f.VarIndexBase() != 2 {
		t.Fatalf("VarIndexBase = %d, expected 2", f.VarIndexBase())
	}

	single := &Function{Sig: types.NewSignature(types.F32, types.None)}
	if single.NumParams() != 1 {
		t.Fatalf("single param NumParams = %d, expected 1", single.NumParams())
	}
	void := &Function{Sig: types.NewSignature(types.None, types.None)}
	if void.NumParams() != 0 {
		t.Fatalf("void NumParams = %d, expected 0", void.NumParams())
	}
}

func TestFunctionLocalClassification(t *testing.T) {
	f := twoParamFunc()

	for i := Index(0); i < 2; i++ {
		if !f.IsParam(i) || f.IsVar(i) {
			t.Errorf("index %d misclassified, expected param", i)
		}
	}
	for i := Index(2); i < 4; i++ {
		if f.IsParam(i) || !f.IsVar(i) {
			t.Errorf("index %d misclassified, expected var", i)
		}
	}

	mustPanicKind(t, errors.KindOutOfBounds, func() { f.IsParam(4) })
}

func TestFunctionLocalType(t *testing.T) {
	f := twoParamFunc()

	expected := []types.Type{types.I32, types.I64, types.F32, types.F64}
	for i, want := range expected {
		if got := f.LocalType(Index(i)); got != want {
			t.Errorf("LocalType(%d) = %s, expected %s", i, got, want)
		}
	}

	mustPanicKind(t, errors.KindOutOfBounds, func() { f.LocalType(4) })
}

func TestFunctionLocalNames(t *testing.T) {
	f := twoParamFunc()

	if f.HasLocalName(0) {
		t.Fatal("fresh function has a local name")
	}

	f.SetLocalName(0, "x")
	f.SetLocalName(3, "acc")

	if !f.HasLocalName(0) || !f.HasLocalName(3) {
		t.Fatal("names not recorded")
	}
	if f.LocalName(0) != "x" {
		t.Fatalf("LocalName(0) = %q, expected x", f.LocalName(0))
	}
	if f.LocalIndex("acc") != 3 {
		t.Fatalf("LocalIndex(acc) = %d, expected 3", f.LocalIndex("acc"))
	}

	if f.LocalNameOrDefault(1) != "" {
		t.Fatalf("LocalNameOrDefault(1) = %q, expected empty", f.LocalNameOrDefault(1))
	}
	if f.LocalNameOrGeneric(1) != "1" {
		t.Fatalf("LocalNameOrGeneric(1) = %q, expected 1", f.LocalNameOrGeneric(1))
	}
	if f.LocalNameOrGeneric(3) != "acc" {
		t.Fatalf("LocalNameOrGeneric(3) = %q, expected acc", f.LocalNameOrGeneric(3))
	}

	mustPanicKind(t, errors.KindNotFound, func() { f.LocalName(1) })
	mustPanicKind(t, errors.KindNotFound, func() { f.LocalIndex("missing") })
	mustPanicKind(t, errors.KindOutOfBounds, func() { f.SetLocalName(9, "x") })

	f.ClearNames()
	if f.HasLocalName(0) {
		t.Fatal("name survived ClearNames")
	}
}

func TestFunctionStackIRCache(t *testing.T) {
	a := arena.New()
	f := &Function{Name: "f"}

	if _, ok := f.StackIR(); ok {
		t.Fatal("fresh function claims cached stack IR")
	}

	body := i32Const(a, 1)
	f.SetBody(body)
	sir := StackIR{{Op: StackBasic, Origin: body, Type: types.I32}}
	f.SetStackIR(sir)

	got, ok := f.StackIR()
	if !ok || len(got) != 1 {
		t.Fatalf("StackIR() = (%d insts, %v), expected 1 inst", len(got), ok)
	}

	// Replacing the body invalidates the derived form.
	f.SetBody(i32Const(a, 2))
	if _, ok := f.StackIR(); ok {
		t.Fatal("stack IR survived SetBody")
	}

	f.SetStackIR(StackIR{})
	if _, ok := f.StackIR(); !ok {
		t.Fatal("empty stack IR not treated as cached")
	}
	f.InvalidateStackIR()
	if _, ok := f.StackIR(); ok {
		t.Fatal("stack IR survived InvalidateStackIR")
	}
}

func TestFunctionClearDebugInfo(t *testing.T) {
	a := arena.New()
	f := &Function{Name: "f"}
	e := i32Const(a, 1)

	f.DebugLocations = map[Expression]DebugLocation{e: {FileIndex: 1, LineNumber: 10, ColumnNumber: 2}}
	f.PrologLocation = map[DebugLocation]struct{}{{LineNumber: 1}: {}}
	f.EpilogLocation = map[DebugLocation]struct{}{{LineNumber: 99}: {}}
	f.ExpressionLocations = map[Expression]Span{e: {Start: 4, End: 8}}
	f.DelimiterLocations = map[Expression]DelimiterLocations{e: {12, 0}}
	f.FuncLocation = FunctionLocations{Start: 1, Declarations: 2, End: 30}

	f.ClearDebugInfo()

	if f.DebugLocations != nil || f.PrologLocation != nil || f.EpilogLocation != nil {
		t.Fatal("source map info survived ClearDebugInfo")
	}
	if f.ExpressionLocations != nil || f.DelimiterLocations != nil {
		t.Fatal("binary offsets survived ClearDebugInfo")
	}
	if f.FuncLocation != (FunctionLocations{}) {
		t.Fatal("function location survived ClearDebugInfo")
	}
}

func TestDebugLocationBefore(t *testing.T) {
	tests := []struct {
		name     string
		a, b     DebugLocation
		expected bool
	}{
		{"by_file", DebugLocation{FileIndex: 1}, DebugLocation{FileIndex: 2}, true},
		{"by_line", DebugLocation{FileIndex: 1, LineNumber: 3}, DebugLocation{FileIndex: 1, LineNumber: 5}, true},
		{"by_column", DebugLocation{FileIndex: 1, LineNumber: 3, ColumnNumber: 1}, DebugLocation{FileIndex: 1, LineNumber: 3, ColumnNumber: 2}, true},
		{"equal", DebugLocation{FileIndex: 1, LineNumber: 3, ColumnNumber: 1}, DebugLocation{FileIndex: 1, LineNumber: 3, ColumnNumber: 1}, false},
		{"reversed", DebugLocation{FileIndex: 2}, DebugLocation{FileIndex: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.expected {
				t.Fatalf("Before = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestImported(t *testing.T) {
	local := &Function{Name: "f"}
	if local.Imported() {
		t.Fatal("local function reports imported")
	}

	imp := &Function{Name: "f"}
	imp.Module = "env"
	imp.Base = "putc"
	if !imp.Imported() {
		t.Fatal("imported function reports local")
	}
}
