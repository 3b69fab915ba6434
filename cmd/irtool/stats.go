package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/wasm-ir/ir"
	"github.com/wippyai/wasm-ir/types"
)

var (
	statTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Width(14)
	statValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	statWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Gather statistics and type-audit the demo module",
	Long: `stats walks every expression tree in the demo module, reports node and
entity counts plus a per-kind histogram, and runs a concurrent read-only
audit that flags nodes whose stored type disagrees with what their
children imply.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().Int("jobs", runtime.NumCPU(), "number of concurrent audit workers")
}

func runStats(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("read jobs flag: %w", err)
	}
	if jobs < 1 {
		return errors.New("jobs must be at least 1")
	}

	m := buildDemoModule()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, statTitleStyle.Render("demo module statistics"))
	fmt.Fprintln(out)

	s := collectStats(m)
	printLine(out, "entities", fmt.Sprintf("functions=%d globals=%d events=%d exports=%d",
		len(m.Functions), len(m.Globals), len(m.Events), len(m.Exports)))
	printLine(out, "expressions", fmt.Sprintf("%d nodes, max depth %d, %d distinct kinds",
		s.nodes, s.maxDepth, len(s.kinds)))
	printLine(out, "stack ir", fmt.Sprintf("%d functions cached, %d instructions",
		s.stackFuncs, s.stackInsts))
	fmt.Fprintln(out)

	fmt.Fprintln(out, statTitleStyle.Render("kind histogram"))
	for _, kc := range s.sortedKinds() {
		fmt.Fprintf(out, "  %s%s\n",
			statLabelStyle.Render(kc.kind.String()),
			statValueStyle.Render(fmt.Sprintf("%4d", kc.count)))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, statTitleStyle.Render("type audit"))
	return runAudit(cmd, out, m, jobs)
}

func printLine(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s%s\n", statLabelStyle.Render(label), statValueStyle.Render(value))
}

type moduleStats struct {
	nodes      int
	maxDepth   int
	kinds      map[ir.Kind]int
	stackFuncs int
	stackInsts int
}

type kindCount struct {
	kind  ir.Kind
	count int
}

func collectStats(m *ir.Module) *moduleStats {
	s := &moduleStats{kinds: make(map[ir.Kind]int)}
	for _, f := range m.Functions {
		if f.Body != nil {
			s.tally(f.Body, 1)
		}
		if sir, ok := f.StackIR(); ok {
			s.stackFuncs++
			s.stackInsts += len(sir)
		}
	}
	for _, g := range m.Globals {
		if g.Init != nil {
			s.tally(g.Init, 1)
		}
	}
	for _, seg := range m.Table.Segments {
		s.tally(seg.Offset, 1)
	}
	for _, seg := range m.Memory.Segments {
		if seg.Offset != nil {
			s.tally(seg.Offset, 1)
		}
	}
	return s
}

func (s *moduleStats) tally(e ir.Expression, depth int) {
	s.nodes++
	s.kinds[e.Kind()]++
	if depth > s.maxDepth {
		s.maxDepth = depth
	}
	ir.Children(e, func(c ir.Expression) bool {
		s.tally(c, depth+1)
		return true
	})
}

func (s *moduleStats) sortedKinds() []kindCount {
	counts := make([]kindCount, 0, len(s.kinds))
	for k, c := range s.kinds {
		counts = append(counts, kindCount{kind: k, count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].kind < counts[j].kind
	})
	return counts
}

// runAudit checks every defined function concurrently. The audit only
// reads the module, so the workers share it without locking.
func runAudit(cmd *cobra.Command, out io.Writer, m *ir.Module, jobs int) error {
	issues := make([][]string, len(m.Functions))

	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(m.Functions)))
	for i, f := range m.Functions {
		i, f := i, f // per-iteration copies; required while go.mod targets go < 1.22
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			issues[i] = auditFunction(m, f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for i, f := range m.Functions {
		for _, issue := range issues[i] {
			total++
			fmt.Fprintf(out, "  %s\n", statWarnStyle.Render(f.Name+": "+issue))
		}
	}
	if total == 0 {
		fmt.Fprintf(out, "  %s\n",
			statValueStyle.Render(fmt.Sprintf("%d functions checked, no issues", len(m.Functions))))
		return nil
	}
	return fmt.Errorf("audit found %d issues", total)
}

type auditor struct {
	m      *ir.Module
	f      *ir.Function
	issues []string
}

func auditFunction(m *ir.Module, f *ir.Function) []string {
	if f.Body == nil {
		return nil
	}
	a := &auditor{m: m, f: f}
	a.walk(f.Body, nil)
	return a.issues
}

func (a *auditor) flag(e ir.Expression, format string, args ...any) {
	a.issues = append(a.issues, e.Kind().String()+": "+fmt.Sprintf(format, args...))
}

func (a *auditor) walk(e ir.Expression, scope []string) {
	switch n := e.(type) {
	case *ir.Block:
		if n.Name != "" {
			scope = append(scope, n.Name)
		}
	case *ir.Loop:
		if n.Name != "" {
			scope = append(scope, n.Name)
		}
	}
	a.check(e, scope)
	ir.Children(e, func(c ir.Expression) bool {
		a.walk(c, scope)
		return true
	})
}

func (a *auditor) check(e ir.Expression, scope []string) {
	if absorbsUnreachable(e.Kind()) && e.Type() != types.Unreachable {
		ir.Children(e, func(c ir.Expression) bool {
			if c.Type() == types.Unreachable {
				a.flag(e, "unreachable child not absorbed")
				return false
			}
			return true
		})
	}

	switch n := e.(type) {
	case *ir.Binary:
		if n.Op.IsRelational() && n.Type() != types.I32 && n.Type() != types.Unreachable {
			a.flag(e, "relational %s types %s", n.Op, n.Type())
		}
	case *ir.Unary:
		if n.Op.IsRelational() && n.Type() != types.I32 && n.Type() != types.Unreachable {
			a.flag(e, "relational %s types %s", n.Op, n.Type())
		}
	case *ir.Break:
		a.checkTarget(e, n.Name, scope)
	case *ir.Switch:
		for _, t := range n.Targets {
			a.checkTarget(e, t, scope)
		}
		a.checkTarget(e, n.Default, scope)
	case *ir.BrOnExn:
		a.checkTarget(e, n.Name, scope)
		if a.m.GetEventOrNil(n.Event) == nil {
			a.flag(e, "unknown event $%s", n.Event)
		}
	case *ir.LocalGet:
		if n.Index >= a.f.NumLocals() {
			a.flag(e, "local %d out of range", n.Index)
		} else if n.Type() != a.f.LocalType(n.Index) {
			a.flag(e, "local %d is %s, node types %s", n.Index, a.f.LocalType(n.Index), n.Type())
		}
	case *ir.LocalSet:
		if n.Index >= a.f.NumLocals() {
			a.flag(e, "local %d out of range", n.Index)
		} else if n.IsTee() && n.Type() != types.Unreachable && n.Type() != a.f.LocalType(n.Index) {
			a.flag(e, "tee of local %d is %s, node types %s", n.Index, a.f.LocalType(n.Index), n.Type())
		}
	case *ir.GlobalGet:
		g := a.m.GetGlobalOrNil(n.Name)
		if g == nil {
			a.flag(e, "unknown global $%s", n.Name)
		} else if n.Type() != g.Type {
			a.flag(e, "global $%s is %s, node types %s", n.Name, g.Type, n.Type())
		}
	case *ir.GlobalSet:
		if a.m.GetGlobalOrNil(n.Name) == nil {
			a.flag(e, "unknown global $%s", n.Name)
		}
	case *ir.Call:
		if a.m.GetFunctionOrNil(n.Target) == nil {
			a.flag(e, "unknown function $%s", n.Target)
		}
	case *ir.Throw:
		if a.m.GetEventOrNil(n.Event) == nil {
			a.flag(e, "unknown event $%s", n.Event)
		}
	case *ir.RefFunc:
		if a.m.GetFunctionOrNil(n.Func) == nil {
			a.flag(e, "unknown function $%s", n.Func)
		}
	}
}

func (a *auditor) checkTarget(e ir.Expression, name string, scope []string) {
	for _, s := range scope {
		if s == name {
			return
		}
	}
	a.flag(e, "branch target $%s not in scope", name)
}

// absorbsUnreachable reports whether the kind's type must become
// unreachable whenever one of its children is. Control-flow joins like
// blocks and ifs are excluded; they can recover a concrete type.
func absorbsUnreachable(k ir.Kind) bool {
	switch k {
	case ir.KindCall, ir.KindCallIndirect, ir.KindLocalSet, ir.KindGlobalSet,
		ir.KindLoad, ir.KindStore, ir.KindUnary, ir.KindBinary, ir.KindSelect,
		ir.KindDrop, ir.KindMemoryGrow, ir.KindAtomicRMW, ir.KindAtomicCmpxchg,
		ir.KindAtomicWait, ir.KindAtomicNotify, ir.KindSIMDExtract,
		ir.KindSIMDReplace, ir.KindSIMDShuffle, ir.KindSIMDTernary,
		ir.KindSIMDShift, ir.KindSIMDLoad, ir.KindMemoryInit, ir.KindMemoryCopy,
		ir.KindMemoryFill, ir.KindRefIsNull, ir.KindRefEq, ir.KindTupleMake,
		ir.KindTupleExtract, ir.KindI31New, ir.KindI31Get:
		return true
	}
	return false
}
