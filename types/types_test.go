package types_test

import (
	"testing"

	"github.com/wippyai/wasm-ir/types"
)

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		typ      types.Type
		concrete bool
		integer  bool
		float    bool
		vector   bool
		ref      bool
	}{
		{types.None, false, false, false, false, false},
		{types.Unreachable, false, false, false, false, false},
		{types.I32, true, true, false, false, false},
		{types.I64, true, true, false, false, false},
		{types.F32, true, false, true, false, false},
		{types.F64, true, false, true, false, false},
		{types.V128, true, false, false, true, false},
		{types.Funcref, true, false, false, false, true},
		{types.Externref, true, false, false, false, true},
		{types.Exnref, true, false, false, false, true},
		{types.Anyref, true, false, false, false, true},
		{types.Eqref, true, false, false, false, true},
		{types.I31ref, true, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.IsConcrete(); got != tt.concrete {
				t.Errorf("IsConcrete() = %v, want %v", got, tt.concrete)
			}
			if got := tt.typ.IsInteger(); got != tt.integer {
				t.Errorf("IsInteger() = %v, want %v", got, tt.integer)
			}
			if got := tt.typ.IsFloat(); got != tt.float {
				t.Errorf("IsFloat() = %v, want %v", got, tt.float)
			}
			if got := tt.typ.IsVector(); got != tt.vector {
				t.Errorf("IsVector() = %v, want %v", got, tt.vector)
			}
			if got := tt.typ.IsRef(); got != tt.ref {
				t.Errorf("IsRef() = %v, want %v", got, tt.ref)
			}
			if !tt.typ.IsBasic() {
				t.Error("predeclared type should be basic")
			}
			if tt.typ.IsTuple() {
				t.Error("predeclared type should not be a tuple")
			}
		})
	}
}

func TestTypeSize(t *testing.T) {
	tests := []struct {
		typ  types.Type
		want uint32
	}{
		{types.I32, 4},
		{types.I64, 8},
		{types.F32, 4},
		{types.F64, 8},
		{types.V128, 16},
		{types.Tuple(types.I32, types.I64), 12},
	}

	for _, tt := range tests {
		if got := tt.typ.Size(); got != tt.want {
			t.Errorf("%s.Size() = %d, want %d", tt.typ, got, tt.want)
		}
	}

	for _, typ := range []types.Type{types.None, types.Unreachable, types.Funcref, types.Anyref} {
		if !panics(func() { typ.Size() }) {
			t.Errorf("%s.Size() should panic", typ)
		}
	}
}

func TestTuple(t *testing.T) {
	t.Run("canonicalization", func(t *testing.T) {
		if got := types.Tuple(); got != types.None {
			t.Errorf("empty tuple = %s, want none", got)
		}
		if got := types.Tuple(types.F32); got != types.F32 {
			t.Errorf("single tuple = %s, want f32", got)
		}
	})

	t.Run("interning", func(t *testing.T) {
		a := types.Tuple(types.I32, types.F64)
		b := types.Tuple(types.I32, types.F64)
		if a != b {
			t.Error("equal element sequences should intern to the same handle")
		}
		c := types.Tuple(types.F64, types.I32)
		if a == c {
			t.Error("different element orders should intern to different handles")
		}
		if !a.IsTuple() || a.IsBasic() {
			t.Error("interned handle should report IsTuple and not IsBasic")
		}
	})

	t.Run("arity and expand", func(t *testing.T) {
		pair := types.Tuple(types.I32, types.I64)
		if got := pair.Arity(); got != 2 {
			t.Errorf("Arity() = %d, want 2", got)
		}
		if got := types.None.Arity(); got != 0 {
			t.Errorf("none Arity() = %d, want 0", got)
		}
		if got := types.I32.Arity(); got != 1 {
			t.Errorf("i32 Arity() = %d, want 1", got)
		}

		elems := pair.Expand()
		if len(elems) != 2 || elems[0] != types.I32 || elems[1] != types.I64 {
			t.Errorf("Expand() = %v, want [i32 i64]", elems)
		}
		elems[0] = types.F32
		if pair.Expand()[0] != types.I32 {
			t.Error("Expand() should return a copy")
		}

		if got := types.None.Expand(); got != nil {
			t.Errorf("none Expand() = %v, want nil", got)
		}
		single := types.F64.Expand()
		if len(single) != 1 || single[0] != types.F64 {
			t.Errorf("f64 Expand() = %v, want [f64]", single)
		}
	})

	t.Run("invalid elements", func(t *testing.T) {
		if !panics(func() { types.Tuple(types.I32, types.None) }) {
			t.Error("tuple with none element should panic")
		}
		if !panics(func() { types.Tuple(types.Unreachable, types.I32) }) {
			t.Error("tuple with unreachable element should panic")
		}
		nested := types.Tuple(types.I32, types.I64)
		if !panics(func() { types.Tuple(nested, types.I32) }) {
			t.Error("nested tuple element should panic")
		}
	})
}

func TestLeastUpperBound(t *testing.T) {
	pair := types.Tuple(types.I32, types.Funcref)
	pairB := types.Tuple(types.I32, types.Externref)

	tests := []struct {
		name string
		a, b types.Type
		want types.Type
	}{
		{"equal", types.I32, types.I32, types.I32},
		{"equal none", types.None, types.None, types.None},
		{"unreachable left", types.Unreachable, types.F64, types.F64},
		{"unreachable right", types.I64, types.Unreachable, types.I64},
		{"unreachable both", types.Unreachable, types.Unreachable, types.Unreachable},
		{"unreachable none", types.Unreachable, types.None, types.None},
		{"i31ref eqref", types.I31ref, types.Eqref, types.Eqref},
		{"eqref i31ref", types.Eqref, types.I31ref, types.Eqref},
		{"funcref externref", types.Funcref, types.Externref, types.Anyref},
		{"exnref eqref", types.Exnref, types.Eqref, types.Anyref},
		{"tuple elementwise", pair, pairB, types.Tuple(types.I32, types.Anyref)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := types.LeastUpperBound(tt.a, tt.b); got != tt.want {
				t.Errorf("LeastUpperBound(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}

	t.Run("incompatible", func(t *testing.T) {
		bad := []struct {
			name string
			a, b types.Type
		}{
			{"i32 f64", types.I32, types.F64},
			{"i32 i64", types.I32, types.I64},
			{"scalar ref", types.I32, types.Funcref},
			{"none value", types.None, types.I32},
			{"arity mismatch", pair, types.I32},
			{"tuple lengths", pair, types.Tuple(types.I32, types.I32, types.I32)},
		}
		for _, tt := range bad {
			t.Run(tt.name, func(t *testing.T) {
				if !panics(func() { types.LeastUpperBound(tt.a, tt.b) }) {
					t.Errorf("LeastUpperBound(%s, %s) should panic", tt.a, tt.b)
				}
			})
		}
	})
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  types.Type
		want string
	}{
		{types.None, "none"},
		{types.Unreachable, "unreachable"},
		{types.I32, "i32"},
		{types.V128, "v128"},
		{types.I31ref, "i31ref"},
		{types.Tuple(types.I32, types.F64), "(i32 f64)"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSignature(t *testing.T) {
	sig := types.NewSignature(types.Tuple(types.I32, types.I32), types.I64)
	if sig.Params != types.Tuple(types.I32, types.I32) {
		t.Errorf("Params = %s", sig.Params)
	}
	if sig.Results != types.I64 {
		t.Errorf("Results = %s", sig.Results)
	}
	if got, want := sig.String(), "(i32 i32) -> i64"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	void := types.NewSignature(types.None, types.None)
	if got, want := void.String(), "none -> none"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func panics(fn func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	fn()
	return false
}
