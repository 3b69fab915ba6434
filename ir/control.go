package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/types"
)

// Nop does nothing and produces nothing.
type Nop struct {
	Expr
}

// NewNop allocates a Nop in the arena.
func NewNop(a *arena.Arena) *Nop {
	n := arena.Alloc[Nop](a)
	n.kind = KindNop
	return n
}

// Finalize implements Expression.
func (n *Nop) Finalize() {
	n.typ = types.None
}

// Block is a sequence of expressions. A non-empty Name makes the block a
// branch target; its value is then the join of the fall-through value and
// every branch value sent to the name.
type Block struct {
	Expr
	Name string
	List []Expression
}

// NewBlock allocates an empty Block in the arena.
func NewBlock(a *arena.Arena) *Block {
	b := arena.Alloc[Block](a)
	b.kind = KindBlock
	return b
}

// Finalize sets the type purely from the block's contents. For a named block
// this scans the whole subtree for branches targeting the name, so it is not
// fast; callers that already know the declared type should use
// FinalizeWithType or FinalizeWithBreaks.
func (b *Block) Finalize() {
	if b.Name == "" {
		// Nothing can branch here, so only the fall-through matters.
		if len(b.List) > 0 {
			b.typ = b.List[len(b.List)-1].Type()
			if b.typ.IsConcrete() {
				return
			}
			for _, child := range b.List {
				if child.Type() == types.Unreachable {
					b.typ = types.Unreachable
					return
				}
			}
		} else {
			b.typ = types.None
		}
		return
	}
	b.typ = mergeTypes(seekTypes(b))
	b.handleUnreachable(false, false)
}

// FinalizeWithType sets an externally known type, doing only the
// unreachability fixup (which may still scan for branches). Valid when the
// caller holds the statically declared type, e.g. while decoding; supplying
// a type the contents contradict is a caller error this method does not
// detect.
func (b *Block) FinalizeWithType(t types.Type) {
	b.typ = t
	if b.typ == types.None && len(b.List) > 0 {
		b.handleUnreachable(false, false)
	}
}

// FinalizeWithBreaks is FinalizeWithType for callers that additionally know
// whether any branch targets this block. It never scans the subtree; the
// breakability claim is an unchecked precondition.
func (b *Block) FinalizeWithBreaks(t types.Type, hasBreak bool) {
	b.typ = t
	if b.typ == types.None && len(b.List) > 0 {
		b.handleUnreachable(true, hasBreak)
	}
}

// handleUnreachable turns a block containing an unreachable child into an
// unreachable block, unless a branch to the block provides a way to fall
// through anyway.
func (b *Block) handleUnreachable(breakabilityKnown, hasBreak bool) {
	if b.typ == types.Unreachable || b.typ.IsConcrete() {
		return
	}
	if len(b.List) == 0 {
		return
	}
	for _, child := range b.List {
		if child.Type() == types.Unreachable {
			if !breakabilityKnown {
				hasBreak = BranchesTo(b, b.Name)
			}
			if !hasBreak {
				b.typ = types.Unreachable
			}
			return
		}
	}
}

// mergeTypes folds a branch-type set with LeastUpperBound, starting from the
// lattice bottom.
func mergeTypes(list []types.Type) types.Type {
	merged := types.Unreachable
	for _, t := range list {
		merged = types.LeastUpperBound(merged, t)
	}
	return merged
}

// seekTypes collects the value types delivered to target's name: the types
// carried by every branch in the subtree whose target matches, plus the
// block's own fall-through type. An inner block or loop reusing the name
// captures the branches seen up to that point, so their types are dropped.
func seekTypes(target *Block) []types.Type {
	var found []types.Type
	name := target.Name
	PostWalk(target, func(e Expression) {
		switch curr := e.(type) {
		case *Break:
			if curr.Name == name {
				if curr.Value != nil {
					found = append(found, curr.Value.Type())
				} else {
					found = append(found, types.None)
				}
			}
		case *Switch:
			for _, t := range curr.Targets {
				if t == name {
					if curr.Value != nil {
						found = append(found, curr.Value.Type())
					} else {
						found = append(found, types.None)
					}
				}
			}
			if curr.Default == name {
				if curr.Value != nil {
					found = append(found, curr.Value.Type())
				} else {
					found = append(found, types.None)
				}
			}
		case *BrOnExn:
			if curr.Name == name {
				found = append(found, curr.Sent)
			}
		case *Block:
			if curr == target {
				if n := len(curr.List); n > 0 {
					found = append(found, curr.List[n-1].Type())
				} else {
					found = append(found, types.None)
				}
			} else if curr.Name == name {
				found = found[:0]
			}
		case *Loop:
			if curr.Name == name {
				found = found[:0]
			}
		}
	})
	return found
}

// If evaluates Condition and runs IfTrue or the optional IfFalse.
type If struct {
	Expr
	Condition Expression
	IfTrue    Expression
	IfFalse   Expression
}

// NewIf allocates an If in the arena.
func NewIf(a *arena.Arena) *If {
	i := arena.Alloc[If](a)
	i.kind = KindIf
	return i
}

// Finalize implements Expression. Without an else arm the if produces no
// value and its type is always none. With both arms the type is the join of
// the arm types, except that an unreachable condition makes the whole if
// unreachable.
func (i *If) Finalize() {
	if i.IfFalse == nil {
		i.typ = types.None
		return
	}
	i.typ = types.LeastUpperBound(i.IfTrue.Type(), i.IfFalse.Type())
	if i.Condition.Type() == types.Unreachable {
		i.typ = types.Unreachable
	}
}

// FinalizeWithType sets an externally known type, fixing up only the cases
// that must become unreachable.
func (i *If) FinalizeWithType(t types.Type) {
	i.typ = t
	if i.typ == types.None && i.IfFalse != nil &&
		(i.Condition.Type() == types.Unreachable ||
			(i.IfTrue.Type() == types.Unreachable && i.IfFalse.Type() == types.Unreachable)) {
		i.typ = types.Unreachable
	}
}

// Loop runs Body; branches to Name restart the loop rather than exiting it,
// so the loop's value is always the body's fall-through value.
type Loop struct {
	Expr
	Name string
	Body Expression
}

// NewLoop allocates a Loop in the arena.
func NewLoop(a *arena.Arena) *Loop {
	l := arena.Alloc[Loop](a)
	l.kind = KindLoop
	return l
}

// Finalize implements Expression.
func (l *Loop) Finalize() {
	l.typ = l.Body.Type()
}

// FinalizeWithType sets an externally known type, fixing up only the case
// that must become unreachable.
func (l *Loop) FinalizeWithType(t types.Type) {
	l.typ = t
	if l.typ == types.None && l.Body.Type() == types.Unreachable {
		l.typ = types.Unreachable
	}
}

// Break transfers control to the enclosing construct named Name. With a nil
// Condition the break is unconditional and nothing runs after it; with a
// Condition it falls through when the condition is zero, carrying Value (if
// any) as its result. A nil Value is a branch without payload.
type Break struct {
	Expr
	Name      string
	Value     Expression
	Condition Expression
}

// NewBreak allocates a Break in the arena. A fresh break is unconditional
// and therefore unreachable until finalized otherwise.
func NewBreak(a *arena.Arena) *Break {
	b := arena.Alloc[Break](a)
	b.kind = KindBreak
	b.typ = types.Unreachable
	return b
}

// Finalize implements Expression.
func (b *Break) Finalize() {
	if b.Condition != nil {
		if b.Condition.Type() == types.Unreachable {
			b.typ = types.Unreachable
		} else if b.Value != nil {
			b.typ = b.Value.Type()
		} else {
			b.typ = types.None
		}
	} else {
		b.typ = types.Unreachable
	}
}

// Switch jumps to Targets[Condition], or Default when the index is out of
// range. Control never falls through.
type Switch struct {
	Expr
	Targets   []string
	Default   string
	Condition Expression
	Value     Expression
}

// NewSwitch allocates a Switch in the arena.
func NewSwitch(a *arena.Arena) *Switch {
	s := arena.Alloc[Switch](a)
	s.kind = KindSwitch
	s.typ = types.Unreachable
	return s
}

// Finalize implements Expression.
func (s *Switch) Finalize() {
	s.typ = types.Unreachable
}

// Return exits the function, carrying the optional Value.
type Return struct {
	Expr
	Value Expression
}

// NewReturn allocates a Return in the arena.
func NewReturn(a *arena.Arena) *Return {
	r := arena.Alloc[Return](a)
	r.kind = KindReturn
	r.typ = types.Unreachable
	return r
}

// Finalize implements Expression.
func (r *Return) Finalize() {
	r.typ = types.Unreachable
}

// Unreachable traps. Control never proceeds past it.
type Unreachable struct {
	Expr
}

// NewUnreachable allocates an Unreachable in the arena.
func NewUnreachable(a *arena.Arena) *Unreachable {
	u := arena.Alloc[Unreachable](a)
	u.kind = KindUnreachable
	u.typ = types.Unreachable
	return u
}

// Finalize implements Expression.
func (u *Unreachable) Finalize() {
	u.typ = types.Unreachable
}

// Drop evaluates Value and discards it.
type Drop struct {
	Expr
	Value Expression
}

// NewDrop allocates a Drop in the arena.
func NewDrop(a *arena.Arena) *Drop {
	d := arena.Alloc[Drop](a)
	d.kind = KindDrop
	return d
}

// Finalize implements Expression.
func (d *Drop) Finalize() {
	if d.Value.Type() == types.Unreachable {
		d.typ = types.Unreachable
	} else {
		d.typ = types.None
	}
}

// Select evaluates both arms and picks one by Condition, without branching.
type Select struct {
	Expr
	IfTrue    Expression
	IfFalse   Expression
	Condition Expression
}

// NewSelect allocates a Select in the arena.
func NewSelect(a *arena.Arena) *Select {
	s := arena.Alloc[Select](a)
	s.kind = KindSelect
	return s
}

// Finalize implements Expression.
func (s *Select) Finalize() {
	if s.IfTrue.Type() == types.Unreachable ||
		s.IfFalse.Type() == types.Unreachable ||
		s.Condition.Type() == types.Unreachable {
		s.typ = types.Unreachable
	} else {
		s.typ = types.LeastUpperBound(s.IfTrue.Type(), s.IfFalse.Type())
	}
}

// FinalizeWithType sets an externally known type.
func (s *Select) FinalizeWithType(t types.Type) {
	s.typ = t
}
