package bytecode

import (
	"strconv"
	"strings"

	"github.com/wippyai/jdecomp/errors"
	"github.com/wippyai/jdecomp/metadata"
)

// Instruction is a decoded instruction with its operands already resolved against
// class metadata. An Instruction is itself an operand when it is a branch target.
type Instruction struct {
	Operands []metadata.Operand
	Offset   int
	OpCode   OpCode
}

// NewInstruction creates an instruction at offset 0; readers set Offset as they lay
// out the method body.
func NewInstruction(op OpCode, operands ...metadata.Operand) *Instruction {
	return &Instruction{OpCode: op, Operands: operands}
}

func (i *Instruction) OperandKind() metadata.OperandKind { return metadata.OperandBranchTarget }

// HasOperand reports whether the instruction carries at least one operand.
func (i *Instruction) HasOperand() bool { return len(i.Operands) > 0 }

// OperandCount returns the number of operands.
func (i *Instruction) OperandCount() int { return len(i.Operands) }

// Operand returns operand n.
func (i *Instruction) Operand(n int) (metadata.Operand, error) {
	if n < 0 || n >= len(i.Operands) {
		return nil, errors.OutOfBounds(errors.PhaseStack, []string{"operands"}, n, len(i.Operands))
	}
	return i.Operands[n], nil
}

// Next returns the offset just past this instruction's opcode and fixed-size operand.
func (i *Instruction) Next() int {
	return i.Offset + i.OpCode.Size() + i.OpCode.OperandType().BaseSize()
}

func (i *Instruction) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(i.Offset))
	b.WriteString(": ")
	b.WriteString(i.OpCode.String())
	for n, op := range i.Operands {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		if target, ok := op.(*Instruction); ok {
			b.WriteString(strconv.Itoa(target.Offset))
			continue
		}
		if s, ok := op.(interface{ String() string }); ok {
			b.WriteString(s.String())
			continue
		}
		b.WriteString(op.OperandKind().String())
	}
	return b.String()
}

// BranchTargets is a list of branch targets used as a single operand.
type BranchTargets []*Instruction

func (BranchTargets) OperandKind() metadata.OperandKind { return metadata.OperandBranchTargets }

// SwitchInfo is the operand of tableswitch and lookupswitch. Keys is set only for
// lookupswitch; tableswitch keys run from Low to High.
type SwitchInfo struct {
	Default *Instruction
	Targets []*Instruction
	Keys    []int32
	Low     int32
	High    int32
}

func (s *SwitchInfo) OperandKind() metadata.OperandKind { return metadata.OperandSwitch }

// Key returns the case value that selects Targets[n].
func (s *SwitchInfo) Key(n int) int32 {
	if n < len(s.Keys) {
		return s.Keys[n]
	}
	return s.Low + int32(n)
}

// LocalVariable is a local variable slot over an offset range. End is exclusive;
// an End of zero or less means the variable is live until the end of the method.
type LocalVariable struct {
	Variable     *metadata.VariableReference
	Start        int
	End          int
	FromMetadata bool
}

// Covers reports whether the variable is live at offset.
func (v *LocalVariable) Covers(offset int) bool {
	if offset < v.Start {
		return false
	}
	return v.End <= 0 || offset < v.End
}

// MethodBody is the code of one method.
type MethodBody struct {
	Method       *metadata.MethodReference
	Instructions []*Instruction
	Variables    []*LocalVariable
	// LineNumbers maps instruction offsets to source lines.
	LineNumbers map[int]int
	MaxStack    int
	MaxLocals   int
}

// FindVariable returns the variable occupying slot at offset, or nil.
func (b *MethodBody) FindVariable(slot, offset int) *LocalVariable {
	if b == nil {
		return nil
	}
	for _, v := range b.Variables {
		if v.Variable != nil && v.Variable.Slot == slot && v.Covers(offset) {
			return v
		}
	}
	return nil
}

// InstructionAt returns the instruction starting at offset, or nil.
func (b *MethodBody) InstructionAt(offset int) *Instruction {
	if b == nil {
		return nil
	}
	for _, instr := range b.Instructions {
		if instr.Offset == offset {
			return instr
		}
	}
	return nil
}

// LineNumber returns the source line recorded for offset.
func (b *MethodBody) LineNumber(offset int) (int, bool) {
	if b == nil || b.LineNumbers == nil {
		return 0, false
	}
	line, ok := b.LineNumbers[offset]
	return line, ok
}

func (b *MethodBody) name() string {
	if b == nil || b.Method == nil {
		return ""
	}
	return b.Method.Name
}
