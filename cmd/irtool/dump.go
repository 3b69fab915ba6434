package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/wippyai/wasm-ir/ir"
)

var (
	headerColor = color.New(color.Bold)
	kindColor   = color.New(color.FgCyan)
	nameColor   = color.New(color.FgYellow)
	typeColor   = color.New(color.FgGreen)
	noteColor   = color.New(color.FgMagenta)
)

func dumpModuleHeader(w io.Writer, m *ir.Module) {
	fmt.Fprintf(w, "%s %s\n", headerColor.Sprint("module"), nameColor.Sprint("$"+m.Name))
	fmt.Fprintf(w, "  features: %s\n", m.Features)
	fmt.Fprintf(w, "  functions=%d globals=%d events=%d exports=%d\n",
		len(m.Functions), len(m.Globals), len(m.Events), len(m.Exports))

	if m.Memory.Exists {
		shared := ""
		if m.Memory.Shared {
			shared = " shared"
		}
		fmt.Fprintf(w, "  memory: %s pages%s, %d segments\n",
			limits(m.Memory.Initial, m.Memory.Max, m.Memory.HasMax()), shared, len(m.Memory.Segments))
	}
	if m.Table.Exists {
		fmt.Fprintf(w, "  table: %s elements, %d segments\n",
			limits(m.Table.Initial, m.Table.Max, m.Table.HasMax()), len(m.Table.Segments))
	}

	for _, g := range m.Globals {
		mut := ""
		if g.Mutable {
			mut = " mutable"
		}
		fmt.Fprintf(w, "  global %s : %s%s\n", nameColor.Sprint("$"+g.Name), g.Type, mut)
	}
	for _, ev := range m.Events {
		fmt.Fprintf(w, "  event %s : %s\n", nameColor.Sprint("$"+ev.Name), ev.Sig)
	}
	for _, ex := range m.Exports {
		fmt.Fprintf(w, "  export %q = %s %s\n", ex.Name, ex.ExtKind, nameColor.Sprint("$"+ex.Value))
	}
	if m.Start != "" {
		fmt.Fprintf(w, "  start: %s\n", nameColor.Sprint("$"+m.Start))
	}
	for _, s := range m.UserSections {
		fmt.Fprintf(w, "  custom %q (%d bytes)\n", s.Name, len(s.Data))
	}
	if d := m.Dylink; d != nil {
		fmt.Fprintf(w, "  dylink: memory=%d align=%d table=%d needed=%s\n",
			d.MemorySize, d.MemoryAlignment, d.TableSize, strings.Join(d.NeededDynlibs, ","))
	}
	if len(m.DebugInfoFileNames) > 0 {
		fmt.Fprintf(w, "  debug files: %s\n", strings.Join(m.DebugInfoFileNames, ", "))
	}
}

func limits(initial, max ir.Address, hasMax bool) string {
	if hasMax {
		return fmt.Sprintf("%d..%d", initial, max)
	}
	return fmt.Sprintf("%d..", initial)
}

func dumpFunction(w io.Writer, f *ir.Function) {
	fmt.Fprintf(w, "%s %s : %s\n", headerColor.Sprint("func"), nameColor.Sprint("$"+f.Name), f.Sig)
	if f.Imported() {
		fmt.Fprintf(w, "  %s from %q.%q\n", noteColor.Sprint("imported"), f.Module, f.Base)
		return
	}
	if n := f.NumLocals(); n > 0 {
		var parts []string
		for i := ir.Index(0); i < n; i++ {
			parts = append(parts, fmt.Sprintf("%s:%s", f.LocalNameOrGeneric(i), f.LocalType(i)))
		}
		fmt.Fprintf(w, "  locals: %s\n", strings.Join(parts, " "))
	}
	if sir, ok := f.StackIR(); ok {
		fmt.Fprintf(w, "  stack ir: %d instructions\n", len(sir))
	}
	writeTree(w, f.Body, 1)
}

func writeTree(w io.Writer, e ir.Expression, depth int) {
	line := kindColor.Sprint(label(e))
	if d := details(e); d != "" {
		line += " " + d
	}
	fmt.Fprintf(w, "%s%s : %s\n", strings.Repeat("  ", depth), line, typeColor.Sprint(e.Type()))
	ir.Children(e, func(c ir.Expression) bool {
		writeTree(w, c, depth+1)
		return true
	})
}

// label names the node the way the text format would, folding variants
// like br_if and local.tee into the name rather than the details.
func label(e ir.Expression) string {
	switch n := e.(type) {
	case *ir.Const:
		return n.Value.String()
	case *ir.Unary:
		return n.Op.String()
	case *ir.Binary:
		return n.Op.String()
	case *ir.Break:
		if n.Condition != nil {
			return "br_if"
		}
		return "br"
	case *ir.Call:
		if n.IsReturn {
			return "return_call"
		}
	case *ir.CallIndirect:
		if n.IsReturn {
			return "return_call_indirect"
		}
	case *ir.LocalSet:
		if n.IsTee() {
			return "local.tee"
		}
	case *ir.SIMDExtract:
		return n.Op.String()
	case *ir.SIMDReplace:
		return n.Op.String()
	case *ir.SIMDShift:
		return n.Op.String()
	case *ir.SIMDLoad:
		return n.Op.String()
	case *ir.SIMDTernary:
		return n.Op.String()
	case *ir.SIMDShuffle:
		return "i8x16.shuffle"
	}
	return e.Kind().String()
}

// details renders the immediates a node carries beyond its children.
func details(e ir.Expression) string {
	return detailsWith(e, nameColor.Sprint)
}

// detailsWith is details with the styling applied to entity and label
// names left to the caller; the interactive view passes fmt.Sprint.
func detailsWith(e ir.Expression, name func(...any) string) string {
	switch n := e.(type) {
	case *ir.Block:
		if n.Name != "" {
			return name("$" + n.Name)
		}
	case *ir.Loop:
		if n.Name != "" {
			return name("$" + n.Name)
		}
	case *ir.Break:
		return name("$" + n.Name)
	case *ir.Switch:
		var b strings.Builder
		for _, t := range n.Targets {
			b.WriteString(name("$" + t))
			b.WriteByte(' ')
		}
		b.WriteString("default=" + name("$"+n.Default))
		return b.String()
	case *ir.Call:
		return name("$" + n.Target)
	case *ir.CallIndirect:
		return "sig " + n.Sig.String()
	case *ir.LocalGet:
		return fmt.Sprintf("%d", n.Index)
	case *ir.LocalSet:
		return fmt.Sprintf("%d", n.Index)
	case *ir.GlobalGet:
		return name("$" + n.Name)
	case *ir.GlobalSet:
		return name("$" + n.Name)
	case *ir.Load:
		return memArg(n.Bytes, n.Offset, n.Align, n.Signed, n.IsAtomic)
	case *ir.Store:
		return memArg(n.Bytes, n.Offset, n.Align, false, n.IsAtomic) + " as " + n.ValueType.String()
	case *ir.AtomicRMW:
		return fmt.Sprintf("%s bytes=%d offset=%d", n.Op, n.Bytes, n.Offset)
	case *ir.AtomicCmpxchg:
		return fmt.Sprintf("bytes=%d offset=%d", n.Bytes, n.Offset)
	case *ir.AtomicWait:
		return fmt.Sprintf("expected %s offset=%d", n.ExpectedType, n.Offset)
	case *ir.AtomicNotify:
		return fmt.Sprintf("offset=%d", n.Offset)
	case *ir.SIMDExtract:
		return fmt.Sprintf("lane=%d", n.Index)
	case *ir.SIMDReplace:
		return fmt.Sprintf("lane=%d", n.Index)
	case *ir.SIMDShuffle:
		return fmt.Sprintf("mask=%x", n.Mask[:])
	case *ir.SIMDLoad:
		return fmt.Sprintf("offset=%d align=%d", n.Offset, n.Align)
	case *ir.MemoryInit:
		return fmt.Sprintf("segment=%d", n.Segment)
	case *ir.DataDrop:
		return fmt.Sprintf("segment=%d", n.Segment)
	case *ir.RefFunc:
		return name("$" + n.Func)
	case *ir.Throw:
		return name("$" + n.Event)
	case *ir.BrOnExn:
		return name("$"+n.Name) + " event " + name("$"+n.Event)
	case *ir.TupleExtract:
		return fmt.Sprintf("index=%d", n.Index)
	case *ir.I31Get:
		if n.Signed {
			return "signed"
		}
		return "unsigned"
	}
	return ""
}

func memArg(bytes uint8, offset, align ir.Address, signed, atomic bool) string {
	s := fmt.Sprintf("bytes=%d offset=%d align=%d", bytes, offset, align)
	if signed {
		s += " signed"
	}
	if atomic {
		s += " atomic"
	}
	return s
}
