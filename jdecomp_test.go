package jdecomp_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/jdecomp"
	"github.com/wippyai/jdecomp/bytecode"
	jerrors "github.com/wippyai/jdecomp/errors"
	"github.com/wippyai/jdecomp/format"
	"github.com/wippyai/jdecomp/metadata"
	"github.com/wippyai/jdecomp/render"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func addBody() *bytecode.MethodBody {
	add := &metadata.MethodReference{
		MethodType:    *metadata.NewMethodType(metadata.Int, metadata.Int, metadata.Int),
		DeclaringType: metadata.NewClassType("com/example/Calc"),
		Name:          "add",
		Static:        true,
	}
	instrs := []*bytecode.Instruction{
		bytecode.NewInstruction(bytecode.OpIload0),
		bytecode.NewInstruction(bytecode.OpIload1),
		bytecode.NewInstruction(bytecode.OpIadd),
		bytecode.NewInstruction(bytecode.OpIreturn),
	}
	for i, instr := range instrs {
		instr.Offset = i
	}
	return &bytecode.MethodBody{Method: add, Instructions: instrs, MaxStack: 2, MaxLocals: 2}
}

func TestDisassemble(t *testing.T) {
	var buf bytes.Buffer
	if err := jdecomp.Disassemble(&buf, addBody(), render.DefaultSettings()); err != nil {
		t.Fatal(err)
	}

	want := "    Code:\n" +
		"        stack=2, locals=2, arguments=2\n" +
		"           0: iload_0        \n" +
		"           1: iload_1        \n" +
		"           2: iadd           \n" +
		"           3: ireturn        \n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisassemble_WriteError(t *testing.T) {
	err := jdecomp.Disassemble(failingWriter{}, addBody(), render.DefaultSettings())
	if !errors.Is(err, &jerrors.Error{Phase: jerrors.PhaseRender, Kind: jerrors.KindInvalidInput}) {
		t.Fatalf("got %v, want wrapped write error", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("cause missing from %q", err.Error())
	}
}

func TestDisassemble_CollectsFaults(t *testing.T) {
	body := addBody()
	body.Instructions = append(body.Instructions,
		&bytecode.Instruction{Offset: 4, OpCode: bytecode.OpInvokestatic},
		&bytecode.Instruction{Offset: 7, OpCode: bytecode.OpGetstatic})

	var buf bytes.Buffer
	err := jdecomp.Disassemble(&buf, body, render.DefaultSettings())
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("got %d errors, want 2: %v", got, err)
	}
	if got := strings.Count(buf.String(), "!!! ERROR"); got != 2 {
		t.Errorf("got %d error markers, want 2:\n%s", got, buf.String())
	}
}

func TestFormatType(t *testing.T) {
	list := &metadata.GenericInstance{
		GenericType:   metadata.NewClassType("java/util/List"),
		TypeArguments: []metadata.TypeReference{metadata.String},
	}

	tests := []struct {
		syntax format.NameSyntax
		want   string
	}{
		{format.Signature, "Ljava/util/List<Ljava/lang/String;>;"},
		{format.ErasedSignature, "Ljava/util/List;"},
		{format.Descriptor, "java/util/List"},
		{format.TypeName, "java.util.List<java.lang.String>"},
		{format.ShortTypeName, "List<String>"},
	}
	for _, tt := range tests {
		t.Run(tt.syntax.String(), func(t *testing.T) {
			got, err := jdecomp.FormatType(list, tt.syntax)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := jdecomp.FormatType(nil, format.Signature); err == nil {
		t.Error("expected error for nil type")
	}
}

func TestFormatMethod(t *testing.T) {
	got, err := jdecomp.FormatMethod(addBody().Method)
	if err != nil {
		t.Fatal(err)
	}
	if want := "com/example/Calc.add:(II)I"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	jdecomp.SetLogger(zap.New(core))
	t.Cleanup(func() { jdecomp.SetLogger(zap.NewNop()) })

	body := addBody()
	body.Instructions = append(body.Instructions, &bytecode.Instruction{Offset: 4, OpCode: bytecode.OpInvokestatic})
	_ = jdecomp.Disassemble(&bytes.Buffer{}, body, render.DefaultSettings())

	if logs.FilterMessage("instruction render failed").Len() != 1 {
		t.Errorf("expected one render failure log, got %v", logs.All())
	}
}
