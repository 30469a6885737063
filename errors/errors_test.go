package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseStack,
				Kind:    KindUnsupported,
				Path:    []string{"method", "42"},
				Opcode:  "invokevirtual",
				Operand: "*metadata.FieldReference",
				Detail:  "call without signature",
			},
			contains: []string{"[stack]", "unsupported", "method.42", "invokevirtual", "*metadata.FieldReference", "call without signature"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseFormat,
				Kind:  KindInvalidInput,
			},
			contains: []string{"[format]", "invalid_input"},
		},
		{
			name: "operand only",
			err: &Error{
				Phase:   PhaseRender,
				Kind:    KindUnsupported,
				Operand: "complex128",
			},
			contains: []string{"[render]", "operand complex128"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRender,
				Kind:   KindInvalidData,
				Detail: "bad label",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[render]", "invalid_data", "bad label", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseFormat,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseStack,
		Kind:   KindUnsupported,
		Opcode: "athrow",
	}

	if !err.Is(&Error{Phase: PhaseStack, Kind: KindUnsupported}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseFormat, Kind: KindUnsupported}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseStack, Kind: KindMissingSignature}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseStack, Kind: KindUnsupported}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestError_IsMissingSignature(t *testing.T) {
	err := MissingSignature(PhaseStack, "invokevirtual", nil)

	tests := []struct {
		name   string
		target *Error
		want   bool
	}{
		{"same kind", &Error{Phase: PhaseStack, Kind: KindMissingSignature}, true},
		{"unsupported", &Error{Phase: PhaseStack, Kind: KindUnsupported}, true},
		{"unsupported in another phase", &Error{Phase: PhaseFormat, Kind: KindUnsupported}, false},
		{"other kind", &Error{Phase: PhaseStack, Kind: KindInvalidData}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is = %v, want %v", got, tt.want)
			}
		})
	}

	wrapped := Wrap(PhaseRender, KindInvalidInput, err, "listing")
	if !errors.Is(wrapped, &Error{Phase: PhaseStack, Kind: KindUnsupported}) {
		t.Error("errors.Is should find the missing signature through the cause chain")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseRender, KindUnsupported).
		Path("Example", "run").
		Opcode("ldc").
		Operand("complex64").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "constant", "complex64").
		Build()

	if err.Phase != PhaseRender {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseRender)
	}
	if err.Kind != KindUnsupported {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
	}
	if len(err.Path) != 2 || err.Path[0] != "Example" || err.Path[1] != "run" {
		t.Errorf("Path = %v, want [Example run]", err.Path)
	}
	if err.Opcode != "ldc" {
		t.Errorf("Opcode = %v, want 'ldc'", err.Opcode)
	}
	if err.Operand != "complex64" {
		t.Errorf("Operand = %v, want 'complex64'", err.Operand)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected constant, got complex64" {
		t.Errorf("Detail = %v, want 'expected constant, got complex64'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseFormat, "name syntax 9")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
		if !strings.Contains(err.Detail, "name syntax 9") {
			t.Errorf("Detail = %v, should mention the feature", err.Detail)
		}
	})

	t.Run("UnsupportedOperand", func(t *testing.T) {
		err := UnsupportedOperand(PhaseRender, "ldc", complex(1, 2))
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
		if err.Operand != "complex128" {
			t.Errorf("Operand = %v, want complex128", err.Operand)
		}
	})

	t.Run("MissingSignature", func(t *testing.T) {
		err := MissingSignature(PhaseStack, "invokestatic", nil)
		if err.Kind != KindMissingSignature {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMissingSignature)
		}
		if err.Opcode != "invokestatic" {
			t.Errorf("Opcode = %v, want invokestatic", err.Opcode)
		}
	})

	t.Run("NilPointer", func(t *testing.T) {
		err := NilPointer(PhaseFormat, []string{"type"}, "TypeReference")
		if err.Kind != KindNilPointer {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNilPointer)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseStack, []string{"operands"}, 2, 1)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 2 {
			t.Errorf("Value = %v, want 2", err.Value)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseRender, KindInvalidData, cause, "outer")
		if !errors.Is(err, cause) {
			t.Error("Wrap should preserve cause")
		}
	})
}
