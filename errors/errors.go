package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseBuild    Phase = "build"    // node construction and function locals
	PhaseFinalize Phase = "finalize" // type inference
	PhaseCast     Phase = "cast"     // checked expression downcasts
	PhaseStore    Phase = "store"    // module entity store
	PhaseDebug    Phase = "debug"    // debug info side tables
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindDuplicateName Kind = "duplicate_name"
	KindKindMismatch  Kind = "kind_mismatch"
	KindTypeMismatch  Kind = "type_mismatch"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindUnimplemented Kind = "unimplemented"
	KindPrecondition  Kind = "precondition"
)

// Error is the structured error type used throughout the IR library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Entity string
	Name   string
	Want   string
	Got    string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Entity != "" {
		b.WriteString(" at ")
		b.WriteString(e.Entity)
		if e.Name != "" {
			b.WriteByte(' ')
			b.WriteString(strconv.Quote(e.Name))
		}
	}

	if e.Want != "" || e.Got != "" {
		b.WriteString(": ")
		if e.Want != "" && e.Got != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
			b.WriteString(", got ")
			b.WriteString(e.Got)
		} else if e.Want != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
		} else {
			b.WriteString("got ")
			b.WriteString(e.Got)
		}
	}

	if e.Detail != "" {
		if e.Want != "" || e.Got != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Entity sets the entity namespace and name
func (b *Builder) Entity(entity, name string) *Builder {
	b.err.Entity = entity
	b.err.Name = name
	return b
}

// Want sets the expected type or kind name
func (b *Builder) Want(w string) *Builder {
	b.err.Want = w
	return b
}

// Got sets the actual type or kind name
func (b *Builder) Got(g string) *Builder {
	b.err.Got = g
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotFound creates a not-found error for a named entity
func NotFound(phase Phase, entity, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Entity: entity,
		Name:   name,
	}
}

// DuplicateName creates a duplicate registration error
func DuplicateName(entity, name string) *Error {
	return &Error{
		Phase:  PhaseStore,
		Kind:   KindDuplicateName,
		Entity: entity,
		Name:   name,
		Detail: "already registered",
	}
}

// KindMismatch creates a failed downcast error
func KindMismatch(want, got string) *Error {
	return &Error{
		Phase: PhaseCast,
		Kind:  KindKindMismatch,
		Want:  want,
		Got:   got,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, want, got string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindTypeMismatch,
		Want:  want,
		Got:   got,
	}
}

// NoCommonSupertype creates a type mismatch error for a failed type join
func NoCommonSupertype(a, b string) *Error {
	return &Error{
		Phase:  PhaseFinalize,
		Kind:   KindTypeMismatch,
		Detail: fmt.Sprintf("no common supertype of %s and %s", a, b),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Unimplemented creates an unimplemented operation error
func Unimplemented(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnimplemented,
		Detail: what,
	}
}

// Precondition creates a violated precondition error
func Precondition(phase Phase, msg string, args ...any) *Error {
	e := &Error{
		Phase: phase,
		Kind:  KindPrecondition,
	}
	if len(args) > 0 {
		e.Detail = fmt.Sprintf(msg, args...)
	} else {
		e.Detail = msg
	}
	return e
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
