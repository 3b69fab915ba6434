package ir

import (
	"github.com/wippyai/wasm-ir/types"
)

// StackOp distinguishes the roles a stack instruction can play. Plain
// instructions map one to one onto their origin node; control flow nodes
// expand into begin, middle and end markers.
type StackOp uint8

const (
	StackBasic StackOp = iota
	StackBlockBegin
	StackBlockEnd
	StackIfBegin
	StackIfElse
	StackIfEnd
	StackLoopBegin
	StackLoopEnd
	StackTryBegin
	StackCatch
	StackTryEnd
)

var stackOpNames = [...]string{
	StackBasic:      "basic",
	StackBlockBegin: "block.begin",
	StackBlockEnd:   "block.end",
	StackIfBegin:    "if.begin",
	StackIfElse:     "if.else",
	StackIfEnd:      "if.end",
	StackLoopBegin:  "loop.begin",
	StackLoopEnd:    "loop.end",
	StackTryBegin:   "try.begin",
	StackCatch:      "try.catch",
	StackTryEnd:     "try.end",
}

// String returns a short label for the op.
func (op StackOp) String() string {
	if int(op) < len(stackOpNames) {
		return stackOpNames[op]
	}
	return "invalid"
}

// StackInst is one instruction of the stack machine form of a function
// body. Origin points back to the structured node it came from. Type is
// usually the origin's type, except that the binary format has no
// unreachable blocks, so those are recorded as none.
type StackInst struct {
	Op     StackOp
	Origin Expression
	Type   types.Type
}

// StackIR is a linearized function body. It is a secondary form derived
// from Body and carries no structural information of its own.
type StackIR []*StackInst
