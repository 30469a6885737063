package render

import (
	"fmt"
	"strconv"

	"github.com/wippyai/jdecomp/bytecode"
	"github.com/wippyai/jdecomp/errors"
	"github.com/wippyai/jdecomp/format"
	"github.com/wippyai/jdecomp/metadata"
	"github.com/wippyai/jdecomp/output"
)

// OffsetToString returns the label text for an instruction offset: "#0042".
func OffsetToString(offset int) string {
	return fmt.Sprintf("#%04d", offset)
}

// WriteOffsetReference writes a label referring to instr.
func WriteOffsetReference(out output.Output, instr *bytecode.Instruction) error {
	if instr == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"target"}, "Instruction")
	}
	out.WriteLabel(OffsetToString(instr.Offset))
	return nil
}

// WriteInstruction writes "#0003: GOTO #0010". The offset is a definition and the
// opcode a reference.
func WriteInstruction(out output.Output, instr *bytecode.Instruction, unicode bool) error {
	if out == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"output"}, "Output")
	}
	if instr == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"instruction"}, "Instruction")
	}

	out.WriteDefinition(OffsetToString(instr.Offset), instr, false)
	out.Write(": ")
	out.WriteReference(instr.OpCode.Name(), instr.OpCode, false)

	if instr.HasOperand() {
		out.Write(" ")
		return WriteOperandList(out, instr, unicode)
	}
	return nil
}

// WriteOperandList writes every operand of instr separated by ", ".
func WriteOperandList(out output.Output, instr *bytecode.Instruction, unicode bool) error {
	if instr == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"instruction"}, "Instruction")
	}
	for i, operand := range instr.Operands {
		if i > 0 {
			out.Write(", ")
		}
		if err := WriteOperand(out, operand, unicode); err != nil {
			return withOpcode(err, instr.OpCode)
		}
	}
	return nil
}

// WriteOperand writes a single resolved operand. Branch targets become labels,
// locals their names, members and types go through the format package, and
// anything else is written as a literal.
func WriteOperand(out output.Output, operand metadata.Operand, unicode bool) error {
	if out == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"output"}, "Output")
	}

	switch op := operand.(type) {
	case *bytecode.Instruction:
		return WriteOffsetReference(out, op)

	case bytecode.BranchTargets:
		return writeLabelList(out, op)

	case *bytecode.SwitchInfo:
		return writeSwitchLabels(out, op)

	case *metadata.VariableReference:
		if op == nil {
			return errors.NilPointer(errors.PhaseRender, []string{"variable"}, "VariableReference")
		}
		if op.HasName() {
			out.WriteReference(format.EscapeIdentifier(op.Name), op, true)
		} else {
			out.WriteReference("$"+strconv.Itoa(op.Slot), op, true)
		}
		return nil

	case *metadata.ParameterDefinition:
		if op == nil {
			return errors.NilPointer(errors.PhaseRender, []string{"parameter"}, "ParameterDefinition")
		}
		if op.HasName() {
			out.WriteReference(format.EscapeIdentifier(op.Name), op, true)
		} else {
			out.WriteReference(strconv.Itoa(op.Position), op, true)
		}
		return nil

	case *metadata.MethodReference:
		return format.WriteMethod(out, op)

	case metadata.MethodSignature:
		return format.WriteMethodSignature(out, op)

	case *metadata.MethodHandle:
		return format.WriteMethodHandle(out, op)

	case metadata.TypeReference:
		if err := format.WriteType(out, op, format.TypeName); err != nil {
			return err
		}
		out.Write(".")
		out.WriteKeyword("class")
		return nil

	case *metadata.FieldReference:
		return format.WriteField(out, op)

	case *metadata.DynamicCallSite:
		return format.WriteDynamicCallSite(out, op)
	}

	return format.WritePrimitiveValue(out, operand, unicode)
}

func writeLabelList(out output.Output, targets bytecode.BranchTargets) error {
	out.Write("(")
	for i, target := range targets {
		if i > 0 {
			out.Write(", ")
		}
		if err := WriteOffsetReference(out, target); err != nil {
			return err
		}
	}
	out.Write(")")
	return nil
}

func writeSwitchLabels(out output.Output, sw *bytecode.SwitchInfo) error {
	if sw == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"switch"}, "SwitchInfo")
	}
	out.Write("[")
	if err := WriteOffsetReference(out, sw.Default); err != nil {
		return err
	}
	for _, target := range sw.Targets {
		out.Write(", ")
		if err := WriteOffsetReference(out, target); err != nil {
			return err
		}
	}
	out.Write("]")
	return nil
}

// withOpcode attaches the opcode mnemonic to render errors that lack one.
func withOpcode(err error, op bytecode.OpCode) error {
	if e, ok := err.(*errors.Error); ok && e.Opcode == "" {
		e.Opcode = op.Mnemonic()
	}
	return err
}
