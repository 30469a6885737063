// Package errors provides the structured error type shared by the decompiler core.
//
// Errors are categorized by Phase (which component raised it) and Kind (error category).
// The Error type carries the offending opcode, operand kind, a location path and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseStack, errors.KindUnsupported).
//		Opcode("invokevirtual").
//		Operand("*metadata.FieldReference").
//		Detail("call instruction without a method signature").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unsupported(errors.PhaseFormat, "name syntax 7")
//	err := errors.MissingSignature(errors.PhaseStack, "invokedynamic", operand)
//
// KindMissingSignature is a kind of unsupported construct: errors.Is matches it
// against a KindUnsupported target of the same phase, but not the reverse.
//
// Unsupported-construct faults are programming errors: callers must stop the current
// unit of work instead of substituting a default. All errors implement the standard
// error interface and support errors.Is/As.
package errors
