package ir

import (
	"testing"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
)

func TestGCNodesUnimplemented(t *testing.T) {
	a := arena.New()

	nodes := []struct {
		name string
		expr Expression
	}{
		{"ref.test", NewRefTest(a)},
		{"ref.cast", NewRefCast(a)},
		{"br_on_cast", NewBrOnCast(a)},
		{"rtt.canon", NewRttCanon(a)},
		{"rtt.sub", NewRttSub(a)},
		{"struct.new", NewStructNew(a)},
		{"struct.get", NewStructGet(a)},
		{"struct.set", NewStructSet(a)},
		{"array.new", NewArrayNew(a)},
		{"array.get", NewArrayGet(a)},
		{"array.set", NewArraySet(a)},
		{"array.len", NewArrayLen(a)},
	}
	for _, tt := range nodes {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Kind().String(); got != tt.name {
				t.Fatalf("kind string = %q, expected %q", got, tt.name)
			}
			mustPanicKind(t, errors.KindUnimplemented, tt.expr.Finalize)
		})
	}
}
