package render_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	"github.com/wippyai/jdecomp/bytecode"
	jerrors "github.com/wippyai/jdecomp/errors"
	"github.com/wippyai/jdecomp/metadata"
	"github.com/wippyai/jdecomp/output"
	"github.com/wippyai/jdecomp/render"
)

// line builds one expected listing line: offset column, padded mnemonic, operands.
func line(offset int, mnemonic, operands string) string {
	if operands == "" {
		return fmt.Sprintf("%8d: %-15s\n", offset, mnemonic)
	}
	return fmt.Sprintf("%8d: %-15s %s\n", offset, mnemonic, operands)
}

func printOne(t *testing.T, settings render.Settings, body *bytecode.MethodBody, instr *bytecode.Instruction) (string, error) {
	t.Helper()
	out := output.NewPlainTextOutput()
	err := render.NewPrinter(out, settings).PrintInstruction(body, instr)
	return out.String(), err
}

func listingSettings() render.Settings {
	s := render.DefaultSettings()
	s.ShowLineNumbers = false
	s.ShowMethodStack = false
	return s
}

func TestPrintInstruction_Operands(t *testing.T) {
	list := &metadata.GenericInstance{
		GenericType:   metadata.NewClassType("java/util/List"),
		TypeArguments: []metadata.TypeReference{metadata.String},
	}

	tests := []struct {
		name  string
		instr *bytecode.Instruction
		want  string
	}{
		{"no operand", at(0, bytecode.OpNop), line(0, "nop", "")},
		{"byte immediate", at(2, bytecode.OpBipush, metadata.IntConstant(10)), line(2, "bipush", "10")},
		{"short immediate", at(2, bytecode.OpSipush, metadata.IntConstant(-300)), line(2, "sipush", "-300")},
		{"ldc int", at(4, bytecode.OpLdc, metadata.IntConstant(100000)), line(4, "ldc", "100000")},
		{"ldc float", at(4, bytecode.OpLdc, metadata.FloatConstant(1.5)), line(4, "ldc", "1.5")},
		{"ldc2_w long", at(4, bytecode.OpLdc2W, metadata.LongConstant(5)), line(4, "ldc2_w", "5")},
		{"ldc2_w double", at(4, bytecode.OpLdc2W, metadata.DoubleConstant(1e10)), line(4, "ldc2_w", "1.0E10")},
		{"ldc string", at(4, bytecode.OpLdc, metadata.StringConstant("a\nb")), line(4, "ldc", `"a\nb"`)},
		{"ldc class", at(4, bytecode.OpLdc, metadata.String), line(4, "ldc", "Ljava/lang/String;.class")},
		{
			name:  "ldc method handle",
			instr: at(4, bytecode.OpLdc, &metadata.MethodHandle{Kind: metadata.HandleInvokeStatic, Method: parseInt()}),
			want:  line(4, "ldc", "invokestatic java/lang/Integer.parseInt:(Ljava/lang/String;)I"),
		},
		{"unnamed local", at(6, bytecode.OpIload, &metadata.VariableReference{Slot: 4}), line(6, "iload", "4")},
		{"iinc", at(6, bytecode.OpIinc, &metadata.VariableReference{Slot: 1}, metadata.IntConstant(-1)), line(6, "iinc", "1, -1")},
		{"goto", at(9, bytecode.OpGoto, at(20, bytecode.OpReturn)), line(9, "goto", "20")},
		{"checkcast", at(12, bytecode.OpCheckcast, list), line(12, "checkcast", "Ljava/util/List<Ljava/lang/String;>;")},
		{"newarray", at(12, bytecode.OpNewarray, metadata.Int), line(12, "newarray", "I")},
		{
			name:  "multianewarray",
			instr: at(12, bytecode.OpMultianewarray, metadata.NewArrayType(metadata.Int, 2), metadata.IntConstant(2)),
			want:  line(12, "multianewarray", "[[I, 2"),
		},
		{"getstatic", at(0, bytecode.OpGetstatic, systemOut()), line(0, "getstatic", "java/lang/System.out:Ljava/io/PrintStream;")},
		{
			name:  "invokestatic",
			instr: at(3, bytecode.OpInvokestatic, parseInt()),
			want:  line(3, "invokestatic", "java/lang/Integer.parseInt:(Ljava/lang/String;)I"),
		},
		{
			name:  "invokedynamic",
			instr: at(3, bytecode.OpInvokedynamic, runnableSite()),
			want:  line(3, "invokedynamic", "BootstrapMethod #0, run:()Ljava/lang/Runnable;"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := printOne(t, listingSettings(), nil, tt.instr)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("listing mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintInstruction_Layout(t *testing.T) {
	got, err := printOne(t, listingSettings(), nil, at(3, bytecode.OpLdc, metadata.StringConstant("hello")))
	if err != nil {
		t.Fatal(err)
	}
	want := "       3: ldc             \"hello\"\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintInstruction_NamedLocals(t *testing.T) {
	count := &metadata.VariableReference{Name: "count", Slot: 4, Type: metadata.Int}
	x := &metadata.VariableReference{Name: "x", Slot: 1, Type: metadata.Int}
	y := &metadata.VariableReference{Name: "y", Slot: 2, Type: metadata.Int}
	synthetic := &metadata.VariableReference{Name: "tmp", Slot: 3, Type: metadata.Int}

	body := &bytecode.MethodBody{
		Variables: []*bytecode.LocalVariable{
			{Variable: count, FromMetadata: true},
			{Variable: x, FromMetadata: true},
			// y's scope starts after the store that initializes it.
			{Variable: y, Start: 11, FromMetadata: true},
			{Variable: synthetic},
		},
	}

	tests := []struct {
		name  string
		instr *bytecode.Instruction
		want  string
	}{
		{"load by name", at(6, bytecode.OpIload, count), line(6, "iload", "count")},
		{"macro load comment", at(7, bytecode.OpIload1), line(7, "iload_1", "/* x */")},
		{"macro store before scope", at(10, bytecode.OpIstore2), line(10, "istore_2", "/* y */")},
		{"not from metadata", at(6, bytecode.OpIload, synthetic), line(6, "iload", "3")},
		{"macro without variable", at(7, bytecode.OpIload0), line(7, "iload_0", "")},
		{"iinc by name", at(8, bytecode.OpIinc, count, metadata.IntConstant(2)), line(8, "iinc", "count, 2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := printOne(t, listingSettings(), body, tt.instr)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("listing mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintInstruction_Switch(t *testing.T) {
	t.Run("tableswitch", func(t *testing.T) {
		sw := &bytecode.SwitchInfo{
			Default: at(40, bytecode.OpReturn),
			Targets: []*bytecode.Instruction{at(20, bytecode.OpNop), at(30, bytecode.OpNop)},
			Low:     1,
			High:    2,
		}
		got, err := printOne(t, listingSettings(), nil, at(0, bytecode.OpTableswitch, sw))
		if err != nil {
			t.Fatal(err)
		}
		want := "       0: tableswitch {\n" +
			"                  1: 20\n" +
			"                  2: 30\n" +
			"            default: 40\n" +
			"          }\n"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("listing mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("lookupswitch", func(t *testing.T) {
		sw := &bytecode.SwitchInfo{
			Default: at(40, bytecode.OpReturn),
			Targets: []*bytecode.Instruction{at(20, bytecode.OpNop), at(30, bytecode.OpNop)},
			Keys:    []int32{-5, 1000},
		}
		got, err := printOne(t, listingSettings(), nil, at(0, bytecode.OpLookupswitch, sw))
		if err != nil {
			t.Fatal(err)
		}
		want := "       0: lookupswitch {\n" +
			"                 -5: 20\n" +
			"               1000: 30\n" +
			"            default: 40\n" +
			"          }\n"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("listing mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("mismatched keys", func(t *testing.T) {
		sw := &bytecode.SwitchInfo{
			Default: at(40, bytecode.OpReturn),
			Targets: []*bytecode.Instruction{at(20, bytecode.OpNop)},
		}
		got, err := printOne(t, listingSettings(), nil, at(0, bytecode.OpLookupswitch, sw))
		if !errors.Is(err, &jerrors.Error{Phase: jerrors.PhaseRender, Kind: jerrors.KindInvalidData}) {
			t.Errorf("got %v, want invalid data", err)
		}
		if want := "       0: lookupswitch!!! ERROR\n"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func TestPrintInstruction_FaultRecovery(t *testing.T) {
	rec := output.NewRecorder()
	p := render.NewPrinter(rec, listingSettings())

	err := p.PrintInstruction(nil, at(5, bytecode.OpInvokevirtual, systemOut()))
	if !errors.Is(err, &jerrors.Error{Phase: jerrors.PhaseRender, Kind: jerrors.KindUnsupported}) {
		t.Fatalf("got %v, want unsupported render error", err)
	}

	want := line(5, "invokevirtual", "")
	want = strings.TrimSuffix(want, "\n") + "!!! ERROR\n"
	if diff := cmp.Diff(want, rec.String()); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"!!! ERROR"}, rec.OfKind(output.TokenError)); diff != "" {
		t.Errorf("error tokens (-want +got):\n%s", diff)
	}
	if refs := rec.OfKind(output.TokenReference); len(refs) != 1 {
		t.Errorf("partial operands should not be written, references = %q", refs)
	}
}

func TestPrintInstruction_LineNumbers(t *testing.T) {
	body := &bytecode.MethodBody{LineNumbers: map[int]int{0: 7}}
	settings := listingSettings()
	settings.ShowLineNumbers = true

	got, err := printOne(t, settings, body, at(0, bytecode.OpReturn))
	if err != nil {
		t.Fatal(err)
	}
	want := "          linenumber      7\n" + line(0, "return", "")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}

	got, err = printOne(t, settings, body, at(1, bytecode.OpReturn))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "linenumber") {
		t.Errorf("offset without a line entry printed %q", got)
	}
}

func TestPrintInstruction_StackEffects(t *testing.T) {
	settings := listingSettings()
	settings.ShowStackEffects = true

	printStr := &metadata.MethodReference{
		MethodType:    *metadata.NewMethodType(metadata.Void, metadata.String),
		DeclaringType: metadata.NewClassType("java/io/PrintStream"),
		Name:          "println",
	}

	tests := []struct {
		name  string
		instr *bytecode.Instruction
		want  string
	}{
		{"getstatic", at(0, bytecode.OpGetstatic, systemOut()), " // pop 0 push 1"},
		{"invokevirtual", at(5, bytecode.OpInvokevirtual, printStr), " // pop 2 push 0"},
		{"ladd", at(9, bytecode.OpLadd), " // pop 4 push 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := output.NewRecorder()
			if err := render.NewPrinter(rec, settings).PrintInstruction(nil, tt.instr); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]string{tt.want}, rec.OfKind(output.TokenComment)); diff != "" {
				t.Errorf("comments (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("unavailable", func(t *testing.T) {
		rec := output.NewRecorder()
		instr := at(0, bytecode.OpMultianewarray, metadata.NewArrayType(metadata.Int, 2), metadata.IntConstant(0))
		err := render.NewPrinter(rec, settings).PrintInstruction(nil, instr)
		if !errors.Is(err, &jerrors.Error{Phase: jerrors.PhaseStack, Kind: jerrors.KindInvalidData}) {
			t.Errorf("got %v, want stack error", err)
		}
		if diff := cmp.Diff([]string{" // pop ? push ?"}, rec.OfKind(output.TokenComment)); diff != "" {
			t.Errorf("comments (-want +got):\n%s", diff)
		}
	})
}

func helloWorld() *bytecode.MethodBody {
	printStr := &metadata.MethodReference{
		MethodType:    *metadata.NewMethodType(metadata.Void, metadata.String),
		DeclaringType: metadata.NewClassType("java/io/PrintStream"),
		Name:          "println",
	}
	mainRef := &metadata.MethodReference{
		MethodType:    *metadata.NewMethodType(metadata.Void, metadata.NewArrayType(metadata.String, 1)),
		DeclaringType: metadata.NewClassType("com/example/Hello"),
		Name:          "main",
		Static:        true,
	}

	return &bytecode.MethodBody{
		Method: mainRef,
		Instructions: []*bytecode.Instruction{
			at(0, bytecode.OpGetstatic, systemOut()),
			at(3, bytecode.OpLdc, metadata.StringConstant("hello")),
			at(5, bytecode.OpInvokevirtual, printStr),
			at(8, bytecode.OpReturn),
		},
		LineNumbers: map[int]int{0: 3, 8: 4},
		MaxStack:    2,
		MaxLocals:   1,
	}
}

func TestPrintMethod(t *testing.T) {
	out := output.NewPlainTextOutput()
	if err := render.NewPrinter(out, render.DefaultSettings()).PrintMethod(helloWorld()); err != nil {
		t.Fatal(err)
	}

	want := "    Code:\n" +
		"        stack=2, locals=1, arguments=1\n" +
		"              linenumber      3\n" +
		"           0: getstatic       java/lang/System.out:Ljava/io/PrintStream;\n" +
		"           3: ldc             \"hello\"\n" +
		"           5: invokevirtual   java/io/PrintStream.println:(Ljava/lang/String;)V\n" +
		"              linenumber      4\n" +
		"           8: return         \n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintMethod_ContinuesAfterFaults(t *testing.T) {
	body := helloWorld()
	body.Instructions[0].Operands = []metadata.Operand{parseInt()}
	body.Instructions[2].Operands = nil

	rec := output.NewRecorder()
	err := render.NewPrinter(rec, listingSettings()).PrintMethod(body)
	if err == nil {
		t.Fatal("expected errors")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("got %d errors, want 2: %v", got, err)
	}
	if got := len(rec.OfKind(output.TokenError)); got != 2 {
		t.Errorf("got %d error markers, want 2", got)
	}
	if !strings.Contains(rec.String(), `"hello"`) || !strings.Contains(rec.String(), "return") {
		t.Errorf("healthy instructions missing from listing:\n%s", rec.String())
	}
}

func TestPrintMethod_NilBody(t *testing.T) {
	err := render.NewPrinter(output.NewRecorder(), render.DefaultSettings()).PrintMethod(nil)
	if !errors.Is(err, &jerrors.Error{Phase: jerrors.PhaseRender, Kind: jerrors.KindNilPointer}) {
		t.Errorf("got %v, want nil pointer error", err)
	}
}

func TestNewPrinter_DefaultsOffsetWidth(t *testing.T) {
	got, err := printOne(t, render.Settings{}, nil, at(42, bytecode.OpReturn))
	if err != nil {
		t.Fatal(err)
	}
	if want := line(42, "return", ""); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	settings := listingSettings()
	settings.OffsetWidth = 4
	got, err = printOne(t, settings, nil, at(42, bytecode.OpReturn))
	if err != nil {
		t.Fatal(err)
	}
	if want := "  42: return         \n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
