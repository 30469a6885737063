package bytecode_test

import (
	"testing"

	"github.com/wippyai/jdecomp/bytecode"
	"github.com/wippyai/jdecomp/metadata"
)

func TestInstructionOperands(t *testing.T) {
	target := &bytecode.Instruction{OpCode: bytecode.OpReturn, Offset: 9}
	branch := &bytecode.Instruction{OpCode: bytecode.OpGoto, Offset: 3, Operands: []metadata.Operand{target}}

	if branch.OperandCount() != 1 || !branch.HasOperand() {
		t.Fatalf("OperandCount() = %d", branch.OperandCount())
	}
	op, err := branch.Operand(0)
	if err != nil {
		t.Fatalf("Operand(0): %v", err)
	}
	if op.OperandKind() != metadata.OperandBranchTarget {
		t.Errorf("OperandKind() = %v, want branch_target", op.OperandKind())
	}
	if _, err := branch.Operand(1); err == nil {
		t.Error("Operand(1) should fail")
	}
	if got := branch.String(); got != "3: goto 9" {
		t.Errorf("String() = %q", got)
	}
	if got := branch.Next(); got != 6 {
		t.Errorf("Next() = %d, want 6", got)
	}
}

func TestSwitchInfoKeys(t *testing.T) {
	a := &bytecode.Instruction{Offset: 20}
	b := &bytecode.Instruction{Offset: 30}

	table := &bytecode.SwitchInfo{Targets: []*bytecode.Instruction{a, b}, Low: 5, High: 6}
	if table.Key(0) != 5 || table.Key(1) != 6 {
		t.Errorf("table keys = %d, %d", table.Key(0), table.Key(1))
	}

	lookup := &bytecode.SwitchInfo{Targets: []*bytecode.Instruction{a, b}, Keys: []int32{-1, 100}}
	if lookup.Key(0) != -1 || lookup.Key(1) != 100 {
		t.Errorf("lookup keys = %d, %d", lookup.Key(0), lookup.Key(1))
	}

	if table.OperandKind() != metadata.OperandSwitch {
		t.Errorf("OperandKind() = %v", table.OperandKind())
	}
	if (bytecode.BranchTargets{a}).OperandKind() != metadata.OperandBranchTargets {
		t.Error("BranchTargets should be a branch target list operand")
	}
}

func TestMethodBodyLookups(t *testing.T) {
	x := &metadata.VariableReference{Name: "x", Slot: 1, Type: metadata.Int}
	y := &metadata.VariableReference{Name: "y", Slot: 1, Type: metadata.Float}
	body := &bytecode.MethodBody{
		Instructions: []*bytecode.Instruction{
			{OpCode: bytecode.OpIconst0, Offset: 0},
			{OpCode: bytecode.OpIstore1, Offset: 1},
		},
		Variables: []*bytecode.LocalVariable{
			{Variable: x, Start: 2, End: 10, FromMetadata: true},
			{Variable: y, Start: 10, FromMetadata: true},
		},
		LineNumbers: map[int]int{0: 42},
	}

	tests := []struct {
		slot, offset int
		want         *metadata.VariableReference
	}{
		{1, 1, nil},
		{1, 2, x},
		{1, 9, x},
		{1, 10, y},
		{1, 500, y},
		{2, 5, nil},
	}
	for _, tt := range tests {
		v := body.FindVariable(tt.slot, tt.offset)
		switch {
		case tt.want == nil && v != nil:
			t.Errorf("FindVariable(%d, %d) = %v, want nil", tt.slot, tt.offset, v.Variable)
		case tt.want != nil && (v == nil || v.Variable != tt.want):
			t.Errorf("FindVariable(%d, %d) = %v, want %v", tt.slot, tt.offset, v, tt.want)
		}
	}

	if instr := body.InstructionAt(1); instr == nil || instr.OpCode != bytecode.OpIstore1 {
		t.Errorf("InstructionAt(1) = %v", instr)
	}
	if body.InstructionAt(7) != nil {
		t.Error("InstructionAt(7) should be nil")
	}
	if line, ok := body.LineNumber(0); !ok || line != 42 {
		t.Errorf("LineNumber(0) = %d, %v", line, ok)
	}
	if _, ok := body.LineNumber(1); ok {
		t.Error("LineNumber(1) should be absent")
	}

	var nilBody *bytecode.MethodBody
	if nilBody.FindVariable(0, 0) != nil || nilBody.InstructionAt(0) != nil {
		t.Error("nil body lookups should return nil")
	}
}
