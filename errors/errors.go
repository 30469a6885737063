package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which component raised the error
type Phase string

const (
	PhaseStack  Phase = "stack"  // stack effect calculation
	PhaseFormat Phase = "format" // type and signature formatting
	PhaseRender Phase = "render" // operand and instruction rendering
	PhaseParse  Phase = "parse"  // descriptor parsing
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupported      Kind = "unsupported"
	KindMissingSignature Kind = "missing_signature" // an unsupported construct; matches KindUnsupported
	KindNilPointer       Kind = "nil_pointer"
	KindInvalidInput     Kind = "invalid_input"
	KindInvalidData      Kind = "invalid_data"
	KindOutOfBounds      Kind = "out_of_bounds"
)

// Error is the structured error type used throughout the decompiler core
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Opcode  string
	Operand string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Opcode != "" || e.Operand != "" {
		b.WriteString(": ")
		if e.Opcode != "" && e.Operand != "" {
			b.WriteString("opcode ")
			b.WriteString(e.Opcode)
			b.WriteString(", operand ")
			b.WriteString(e.Operand)
		} else if e.Opcode != "" {
			b.WriteString("opcode ")
			b.WriteString(e.Opcode)
		} else {
			b.WriteString("operand ")
			b.WriteString(e.Operand)
		}
	}

	if e.Detail != "" {
		if e.Opcode != "" || e.Operand != "" {
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

// Is reports whether target matches this error's phase and kind. A missing
// signature is an unsupported construct, so it also matches KindUnsupported.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind || (t.Kind == KindUnsupported && e.Kind == KindMissingSignature)
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

// Path sets the location path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Opcode sets the opcode mnemonic
func (b *Builder) Opcode(op string) *Builder {
	b.err.Opcode = op
	return b
}

// Operand sets the operand kind or Go type name
func (b *Builder) Operand(kind string) *Builder {
	b.err.Operand = kind
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

// Unsupported creates an unsupported-construct error
func Unsupported(phase Phase, feature string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: fmt.Sprintf("%s is not supported", feature),
	}
}

// UnsupportedOperand creates an error for an operand whose kind a component does not handle
func UnsupportedOperand(phase Phase, opcode string, operand any) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsupported,
		Opcode:  opcode,
		Operand: fmt.Sprintf("%T", operand),
		Value:   operand,
	}
}

// MissingSignature creates an error for a call instruction with no obtainable signature
func MissingSignature(phase Phase, opcode string, operand any) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindMissingSignature,
		Opcode:  opcode,
		Operand: fmt.Sprintf("%T", operand),
		Detail:  "cannot obtain invoked signature",
		Value:   operand,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, what string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindNilPointer,
		Path:    path,
		Operand: what,
		Detail:  "nil pointer",
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
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
