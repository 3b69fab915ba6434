package main

import (
	"github.com/wippyai/wasm-ir/features"
	"github.com/wippyai/wasm-ir/ir"
	"github.com/wippyai/wasm-ir/literal"
	"github.com/wippyai/wasm-ir/types"
)

// buildDemoModule constructs a module that touches every implemented
// expression kind plus imports, exports, segments, events, custom sections
// and debug side tables. It is the fixture behind demo, stats and view.
func buildDemoModule() *ir.Module {
	m := ir.NewModule()
	m.Name = "demo"
	m.Features.Add(features.MutableGlobals | features.Atomics | features.SIMD |
		features.BulkMemory | features.SignExt | features.TruncSat |
		features.ExceptionHandling | features.TailCall |
		features.ReferenceTypes | features.Multivalue)

	a := m.Allocator

	logFn := &ir.Function{
		Importable: ir.Importable{Module: "env", Base: "log"},
		Name:       "log",
		Sig:        types.NewSignature(types.I32, types.None),
	}
	m.AddFunction(logFn)

	m.AddGlobal(&ir.Global{
		Name:    "total",
		Type:    types.I64,
		Mutable: true,
		Init:    ir.NewConst(a, literal.Int64(0)),
	})

	m.AddEvent(&ir.Event{
		Name:      "overflow",
		Attribute: ir.EventAttributeException,
		Sig:       types.NewSignature(types.I32, types.None),
	})

	m.Memory.Exists = true
	m.Memory.Initial = 1
	m.Memory.Max = 4
	m.Memory.Shared = true
	m.Memory.Segments = []ir.DataSegment{
		{Offset: ir.NewConst(a, literal.Int32(8)), Data: []byte("demo")},
		{Passive: true, Data: []byte{0xde, 0xad}},
	}

	m.Table.Exists = true
	m.Table.Initial = 2
	m.Table.Max = 2
	m.Table.Segments = []ir.TableSegment{
		{Offset: ir.NewConst(a, literal.Int32(0)), Data: []string{"fib", "pick"}},
	}

	funcs := []*ir.Function{
		buildInit(m),
		buildFib(m),
		buildDispatch(m),
		buildAccumulate(m),
		buildCheckedDiv(m),
		buildVecNorm(m),
		buildAtomicBump(m),
		buildPick(m),
		buildSwap(m),
		buildClassify(m),
		buildGrowProbe(m),
	}
	for _, f := range funcs {
		ir.Refinalize(f.Body)
		m.AddFunction(f)
		f.SetStackIR(generateStackIR(f.Body))
	}

	m.AddExport(&ir.Export{Name: "fib", Value: "fib", ExtKind: ir.ExternalFunction})
	m.AddExport(&ir.Export{Name: "total", Value: "total", ExtKind: ir.ExternalGlobal})
	m.AddExport(&ir.Export{Name: "mem", Value: "0", ExtKind: ir.ExternalMemory})
	m.AddStart("init")

	m.UserSections = append(m.UserSections, ir.UserSection{
		Name: "producer",
		Data: []byte("irtool"),
	})
	m.Dylink = &ir.DylinkSection{
		MemorySize:      65536,
		MemoryAlignment: 4,
		TableSize:       2,
		NeededDynlibs:   []string{"libdemo.so"},
	}
	m.DebugInfoFileNames = []string{"demo.c"}

	return m
}

// buildInit seeds the global and runs the passive data segment, then drops
// it. Start function of the demo module.
func buildInit(m *ir.Module) *ir.Function {
	a := m.Allocator

	set := ir.NewGlobalSet(a)
	set.Name = "total"
	set.Value = ir.NewConst(a, literal.Int64(0))

	log := ir.NewCall(a, types.None)
	log.Target = "log"
	log.Operands = []ir.Expression{ir.NewConst(a, literal.Int32(1))}

	init := ir.NewMemoryInit(a)
	init.Segment = 1
	init.Dest = ir.NewConst(a, literal.Int32(0))
	init.Offset = ir.NewConst(a, literal.Int32(0))
	init.Size = ir.NewConst(a, literal.Int32(2))

	drop := ir.NewDataDrop(a)
	drop.Segment = 1

	body := ir.NewBlock(a)
	body.List = []ir.Expression{ir.NewNop(a), set, log, init, drop}

	return &ir.Function{
		Name: "init",
		Sig:  types.NewSignature(types.None, types.None),
		Body: body,
	}
}

// buildFib is the classic doubly recursive fibonacci, with local names and
// a full set of debug side tables attached.
func buildFib(m *ir.Module) *ir.Function {
	a := m.Allocator

	small := ir.NewBinary(a, ir.LtSInt32)
	small.Left = ir.NewLocalGet(a, 0, types.I32)
	small.Right = ir.NewConst(a, literal.Int32(2))

	baseCase := ir.NewReturn(a)
	baseCase.Value = ir.NewLocalGet(a, 0, types.I32)

	guard := ir.NewIf(a)
	guard.Condition = small
	guard.IfTrue = baseCase

	callNear := ir.NewCall(a, types.I32)
	callNear.Target = "fib"
	sub1 := ir.NewBinary(a, ir.SubInt32)
	sub1.Left = ir.NewLocalGet(a, 0, types.I32)
	sub1.Right = ir.NewConst(a, literal.Int32(1))
	callNear.Operands = []ir.Expression{sub1}

	callFar := ir.NewCall(a, types.I32)
	callFar.Target = "fib"
	sub2 := ir.NewBinary(a, ir.SubInt32)
	sub2.Left = ir.NewLocalGet(a, 0, types.I32)
	sub2.Right = ir.NewConst(a, literal.Int32(2))
	callFar.Operands = []ir.Expression{sub2}

	sum := ir.NewBinary(a, ir.AddInt32)
	sum.Left = callNear
	sum.Right = callFar

	recurse := ir.NewReturn(a)
	recurse.Value = sum

	body := ir.NewBlock(a)
	body.List = []ir.Expression{guard, recurse}

	f := &ir.Function{
		Name: "fib",
		Sig:  types.NewSignature(types.I32, types.I32),
		Body: body,
	}
	f.SetLocalName(0, "n")

	f.DebugLocations = map[ir.Expression]ir.DebugLocation{
		baseCase: {FileIndex: 0, LineNumber: 3, ColumnNumber: 5},
		recurse:  {FileIndex: 0, LineNumber: 4, ColumnNumber: 5},
	}
	f.PrologLocation = map[ir.DebugLocation]struct{}{
		{FileIndex: 0, LineNumber: 2, ColumnNumber: 1}: {},
	}
	f.EpilogLocation = map[ir.DebugLocation]struct{}{
		{FileIndex: 0, LineNumber: 5, ColumnNumber: 1}: {},
	}
	f.ExpressionLocations = map[ir.Expression]ir.Span{
		body:  {Start: 0x21, End: 0x5f},
		guard: {Start: 0x24, End: 0x31},
	}
	f.DelimiterLocations = map[ir.Expression]ir.DelimiterLocations{
		guard: {ir.DelimiterEnd: 0x30},
	}
	f.FuncLocation = ir.FunctionLocations{Start: 0x1e, Declarations: 0x20, End: 0x60}
	return f
}

// buildDispatch forwards to fib as a tail call.
func buildDispatch(m *ir.Module) *ir.Function {
	a := m.Allocator

	call := ir.NewCall(a, types.I32)
	call.Target = "fib"
	call.IsReturn = true
	call.Operands = []ir.Expression{ir.NewLocalGet(a, 0, types.I32)}

	return &ir.Function{
		Name: "dispatch",
		Sig:  types.NewSignature(types.I32, types.I32),
		Body: call,
	}
}

// buildAccumulate adds its argument to the total global until the total
// passes a threshold, then yields it. Exercises loop back edges and the
// tee form.
func buildAccumulate(m *ir.Module) *ir.Function {
	a := m.Allocator

	add := ir.NewBinary(a, ir.AddInt64)
	add.Left = ir.NewGlobalGet(a, "total", types.I64)
	add.Right = ir.NewLocalGet(a, 0, types.I64)

	set := ir.NewGlobalSet(a)
	set.Name = "total"
	set.Value = add

	snapshot := ir.NewLocalSet(a)
	snapshot.Index = 1
	snapshot.Value = ir.NewGlobalGet(a, "total", types.I64)
	snapshot.MakeTee(types.I64)

	below := ir.NewBinary(a, ir.LtSInt64)
	below.Left = snapshot
	below.Right = ir.NewConst(a, literal.Int64(1000))

	again := ir.NewBreak(a)
	again.Name = "again"
	again.Condition = below

	loopBody := ir.NewBlock(a)
	loopBody.List = []ir.Expression{set, again}

	loop := ir.NewLoop(a)
	loop.Name = "again"
	loop.Body = loopBody

	body := ir.NewBlock(a)
	body.Name = "done"
	body.List = []ir.Expression{loop, ir.NewLocalGet(a, 1, types.I64)}

	return &ir.Function{
		Name: "accumulate",
		Sig:  types.NewSignature(types.I64, types.I64),
		Vars: []types.Type{types.I64},
		Body: body,
	}
}

// buildCheckedDiv divides its arguments, throwing the overflow event on a
// zero divisor and turning a caught overflow back into the dividend.
func buildCheckedDiv(m *ir.Module) *ir.Function {
	a := m.Allocator

	zero := ir.NewUnary(a, ir.EqZInt32)
	zero.Value = ir.NewLocalGet(a, 1, types.I32)

	throw := ir.NewThrow(a)
	throw.Event = "overflow"
	throw.Operands = []ir.Expression{ir.NewLocalGet(a, 0, types.I32)}

	guard := ir.NewIf(a)
	guard.Condition = zero
	guard.IfTrue = throw

	div := ir.NewBinary(a, ir.DivSInt32)
	div.Left = ir.NewLocalGet(a, 0, types.I32)
	div.Right = ir.NewLocalGet(a, 1, types.I32)

	attempt := ir.NewBlock(a)
	attempt.List = []ir.Expression{guard, div}

	onExn := ir.NewBrOnExn(a)
	onExn.Name = "handled"
	onExn.Event = "overflow"
	onExn.Exnref = ir.NewPop(a, types.Exnref)
	onExn.Sent = types.I32

	rethrow := ir.NewRethrow(a)
	rethrow.Exnref = onExn

	handler := ir.NewBlock(a)
	handler.Name = "handled"
	handler.List = []ir.Expression{rethrow}

	try := ir.NewTry(a)
	try.Body = attempt
	try.CatchBody = handler

	f := &ir.Function{
		Name: "checked_div",
		Sig:  types.NewSignature(types.Tuple(types.I32, types.I32), types.I32),
		Body: try,
	}
	f.SetLocalName(0, "a")
	f.SetLocalName(1, "b")
	return f
}

// buildVecNorm computes the scalar norm of a v128 of four floats, touching
// every SIMD node family along the way.
func buildVecNorm(m *ir.Module) *ir.Function {
	a := m.Allocator

	splat := ir.NewSIMDLoad(a, ir.LoadSplatVec32x4)
	splat.Align = 4
	splat.Ptr = ir.NewConst(a, literal.Int32(0))

	mix := ir.NewSIMDShuffle(a)
	mix.Left = ir.NewLocalGet(a, 0, types.V128)
	mix.Right = splat
	mix.Mask = [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	keep := ir.NewLocalSet(a)
	keep.Index = 1
	keep.Value = mix

	patched := ir.NewSIMDReplace(a, ir.ReplaceLaneVecF32x4)
	patched.Vec = ir.NewLocalGet(a, 0, types.V128)
	patched.Index = 0
	patched.Value = ir.NewConst(a, literal.Float32(1))

	mask := ir.NewSIMDShift(a, ir.ShlVecI32x4)
	mask.Vec = ir.NewLocalGet(a, 1, types.V128)
	mask.Shift = ir.NewConst(a, literal.Int32(1))

	blended := ir.NewSIMDTernary(a, ir.Bitselect)
	blended.A = ir.NewLocalGet(a, 1, types.V128)
	blended.B = patched
	blended.C = mask

	squared := ir.NewBinary(a, ir.MulVecF32x4)
	squared.Left = blended
	squared.Right = ir.NewLocalGet(a, 1, types.V128)

	hold := ir.NewLocalSet(a)
	hold.Index = 2
	hold.Value = squared

	lane := func(i uint8) ir.Expression {
		e := ir.NewSIMDExtract(a, ir.ExtractLaneVecF32x4)
		e.Vec = ir.NewLocalGet(a, 2, types.V128)
		e.Index = i
		return e
	}
	low := ir.NewBinary(a, ir.AddFloat32)
	low.Left = lane(0)
	low.Right = lane(1)
	high := ir.NewBinary(a, ir.AddFloat32)
	high.Left = lane(2)
	high.Right = lane(3)
	total := ir.NewBinary(a, ir.AddFloat32)
	total.Left = low
	total.Right = high

	root := ir.NewUnary(a, ir.SqrtFloat32)
	root.Value = total

	body := ir.NewBlock(a)
	body.List = []ir.Expression{keep, hold, root}

	return &ir.Function{
		Name: "vec_norm",
		Sig:  types.NewSignature(types.V128, types.F32),
		Vars: []types.Type{types.V128, types.V128},
		Body: body,
	}
}

// buildAtomicBump bumps a shared counter and pokes the full atomic node
// set around it.
func buildAtomicBump(m *ir.Module) *ir.Function {
	a := m.Allocator

	rmw := ir.NewAtomicRMW(a, types.I32)
	rmw.Op = ir.RMWAdd
	rmw.Bytes = 4
	rmw.Ptr = ir.NewConst(a, literal.Int32(0))
	rmw.Value = ir.NewLocalGet(a, 0, types.I32)

	old := ir.NewLocalSet(a)
	old.Index = 1
	old.Value = rmw

	bump := ir.NewBinary(a, ir.AddInt32)
	bump.Left = ir.NewLocalGet(a, 1, types.I32)
	bump.Right = ir.NewConst(a, literal.Int32(1))

	swap := ir.NewAtomicCmpxchg(a, types.I32)
	swap.Bytes = 4
	swap.Ptr = ir.NewConst(a, literal.Int32(0))
	swap.Expected = ir.NewLocalGet(a, 1, types.I32)
	swap.Replacement = bump

	wait := ir.NewAtomicWait(a)
	wait.Ptr = ir.NewConst(a, literal.Int32(0))
	wait.Expected = ir.NewLocalGet(a, 1, types.I32)
	wait.Timeout = ir.NewConst(a, literal.Int64(1_000_000))
	wait.ExpectedType = types.I32

	notify := ir.NewAtomicNotify(a)
	notify.Ptr = ir.NewConst(a, literal.Int32(0))
	notify.NotifyCount = ir.NewConst(a, literal.Int32(1))

	dropSwap := ir.NewDrop(a)
	dropSwap.Value = swap
	dropWait := ir.NewDrop(a)
	dropWait.Value = wait
	dropNotify := ir.NewDrop(a)
	dropNotify.Value = notify

	body := ir.NewBlock(a)
	body.List = []ir.Expression{
		ir.NewAtomicFence(a),
		old,
		dropSwap,
		dropWait,
		dropNotify,
		ir.NewLocalGet(a, 1, types.I32),
	}

	return &ir.Function{
		Name: "atomic_bump",
		Sig:  types.NewSignature(types.I32, types.I32),
		Vars: []types.Type{types.I32},
		Body: body,
	}
}

// buildPick routes through a br_table whose value is chosen by a select
// over an indirect call.
func buildPick(m *ir.Module) *ir.Function {
	a := m.Allocator

	indirect := ir.NewCallIndirect(a, types.NewSignature(types.I32, types.I32))
	indirect.Target = ir.NewLocalGet(a, 0, types.I32)
	indirect.Operands = []ir.Expression{ir.NewConst(a, literal.Int32(9))}

	positive := ir.NewBinary(a, ir.GtSInt32)
	positive.Left = ir.NewLocalGet(a, 0, types.I32)
	positive.Right = ir.NewConst(a, literal.Int32(0))

	choice := ir.NewSelect(a)
	choice.IfTrue = ir.NewConst(a, literal.Int32(1))
	choice.IfFalse = indirect
	choice.Condition = positive

	table := ir.NewSwitch(a)
	table.Targets = []string{"ret"}
	table.Default = "ret"
	table.Condition = ir.NewLocalGet(a, 0, types.I32)
	table.Value = choice

	inner := ir.NewBlock(a)
	inner.List = []ir.Expression{table, ir.NewUnreachable(a)}

	body := ir.NewBlock(a)
	body.Name = "ret"
	body.List = []ir.Expression{inner}

	return &ir.Function{
		Name: "pick",
		Sig:  types.NewSignature(types.I32, types.I32),
		Body: body,
	}
}

// buildSwap returns its two arguments in reverse order as a multivalue
// result.
func buildSwap(m *ir.Module) *ir.Function {
	a := m.Allocator

	scratch := ir.NewTupleMake(a)
	scratch.Operands = []ir.Expression{
		ir.NewConst(a, literal.Int32(1)),
		ir.NewConst(a, literal.Int32(2)),
	}
	second := ir.NewTupleExtract(a)
	second.Tuple = scratch
	second.Index = 1
	dropSecond := ir.NewDrop(a)
	dropSecond.Value = second

	pair := ir.NewTupleMake(a)
	pair.Operands = []ir.Expression{
		ir.NewLocalGet(a, 1, types.I64),
		ir.NewLocalGet(a, 0, types.I32),
	}

	body := ir.NewBlock(a)
	body.List = []ir.Expression{dropSecond, pair}

	return &ir.Function{
		Name: "swap",
		Sig:  types.NewSignature(types.Tuple(types.I32, types.I64), types.Tuple(types.I64, types.I32)),
		Body: body,
	}
}

// buildClassify runs the reference and i31 node set down to a scalar.
func buildClassify(m *ir.Module) *ir.Function {
	a := m.Allocator

	dropFn := ir.NewDrop(a)
	fn := ir.NewRefFunc(a)
	fn.Func = "fib"
	dropFn.Value = fn

	isNull := ir.NewRefIsNull(a)
	isNull.Value = ir.NewRefNull(a, types.Funcref)

	left := ir.NewI31New(a)
	left.Value = ir.NewConst(a, literal.Int32(5))
	right := ir.NewI31New(a)
	right.Value = ir.NewConst(a, literal.Int32(6))
	same := ir.NewRefEq(a)
	same.Left = left
	same.Right = right

	bits := ir.NewI31Get(a)
	bits.Signed = true
	inner := ir.NewI31New(a)
	inner.Value = ir.NewConst(a, literal.Int32(7))
	bits.I31 = inner

	partial := ir.NewBinary(a, ir.AddInt32)
	partial.Left = isNull
	partial.Right = same
	full := ir.NewBinary(a, ir.AddInt32)
	full.Left = partial
	full.Right = bits

	body := ir.NewBlock(a)
	body.List = []ir.Expression{dropFn, full}

	return &ir.Function{
		Name: "classify",
		Sig:  types.NewSignature(types.None, types.I32),
		Body: body,
	}
}

// buildGrowProbe stores, copies, fills, grows and reads the linear memory.
func buildGrowProbe(m *ir.Module) *ir.Function {
	a := m.Allocator

	store := ir.NewStore(a)
	store.Bytes = 4
	store.Align = 4
	store.Ptr = ir.NewConst(a, literal.Int32(16))
	store.Value = ir.NewConst(a, literal.Int32(99))
	store.ValueType = types.I32

	cp := ir.NewMemoryCopy(a)
	cp.Dest = ir.NewConst(a, literal.Int32(32))
	cp.Source = ir.NewConst(a, literal.Int32(16))
	cp.Size = ir.NewConst(a, literal.Int32(4))

	fill := ir.NewMemoryFill(a)
	fill.Dest = ir.NewConst(a, literal.Int32(64))
	fill.Value = ir.NewConst(a, literal.Int32(0))
	fill.Size = ir.NewConst(a, literal.Int32(8))

	grow := ir.NewMemoryGrow(a)
	grow.Delta = ir.NewConst(a, literal.Int32(1))
	dropGrow := ir.NewDrop(a)
	dropGrow.Value = grow

	load := ir.NewLoad(a, types.I32)
	load.Bytes = 4
	load.Align = 4
	load.Ptr = ir.NewConst(a, literal.Int32(16))

	sum := ir.NewBinary(a, ir.AddInt32)
	sum.Left = load
	sum.Right = ir.NewMemorySize(a)

	body := ir.NewBlock(a)
	body.List = []ir.Expression{store, cp, fill, dropGrow, sum}

	return &ir.Function{
		Name: "grow_probe",
		Sig:  types.NewSignature(types.None, types.I32),
		Body: body,
	}
}

// generateStackIR linearizes a finalized body into stack machine order:
// children first, then the node itself, with control flow expanded into
// begin, middle and end markers.
func generateStackIR(body ir.Expression) ir.StackIR {
	var out ir.StackIR
	mark := func(op ir.StackOp, origin ir.Expression) {
		t := origin.Type()
		if t == types.Unreachable {
			t = types.None
		}
		out = append(out, &ir.StackInst{Op: op, Origin: origin, Type: t})
	}
	var emit func(e ir.Expression)
	emit = func(e ir.Expression) {
		switch curr := e.(type) {
		case *ir.Block:
			mark(ir.StackBlockBegin, curr)
			for _, child := range curr.List {
				emit(child)
			}
			mark(ir.StackBlockEnd, curr)
		case *ir.If:
			emit(curr.Condition)
			mark(ir.StackIfBegin, curr)
			emit(curr.IfTrue)
			if curr.IfFalse != nil {
				mark(ir.StackIfElse, curr)
				emit(curr.IfFalse)
			}
			mark(ir.StackIfEnd, curr)
		case *ir.Loop:
			mark(ir.StackLoopBegin, curr)
			emit(curr.Body)
			mark(ir.StackLoopEnd, curr)
		case *ir.Try:
			mark(ir.StackTryBegin, curr)
			emit(curr.Body)
			mark(ir.StackCatch, curr)
			emit(curr.CatchBody)
			mark(ir.StackTryEnd, curr)
		default:
			ir.Children(e, func(child ir.Expression) bool {
				emit(child)
				return true
			})
			out = append(out, &ir.StackInst{Op: ir.StackBasic, Origin: e, Type: e.Type()})
		}
	}
	emit(body)
	return out
}
