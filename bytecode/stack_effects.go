package bytecode

import (
	"go.uber.org/zap"

	"github.com/wippyai/jdecomp/errors"
	"github.com/wippyai/jdecomp/metadata"
)

// StackEffect is the number of operand stack slots an instruction consumes and
// produces.
type StackEffect struct {
	Pops   int
	Pushes int
}

// Delta returns the net change in stack depth.
func (e StackEffect) Delta() int { return e.Pushes - e.Pops }

// StackEffectOf returns both counts for instr.
func StackEffectOf(instr *Instruction, body *MethodBody) (StackEffect, error) {
	pops, err := PopCount(instr, body)
	if err != nil {
		return StackEffect{}, err
	}
	pushes, err := PushCount(instr, body)
	if err != nil {
		return StackEffect{}, err
	}
	return StackEffect{Pops: pops, Pushes: pushes}, nil
}

// PopCount returns the number of stack slots instr consumes. Two-value categories
// count slots exactly, so Pop2Pop2 (dup2_x2) is 4.
func PopCount(instr *Instruction, body *MethodBody) (int, error) {
	if instr == nil {
		return 0, errors.NilPointer(errors.PhaseStack, []string{"instruction"}, "Instruction")
	}

	op := instr.OpCode
	switch op.StackBehaviorPop() {
	case Pop0:
		return 0, nil

	case Pop1:
		if op == OpPutstatic {
			wide, err := fieldIsDoubleWord(instr, body)
			if err != nil {
				return 0, err
			}
			if wide {
				return 2, nil
			}
		}
		return 1, nil

	case Pop2:
		return 2, nil

	case Pop1Pop1:
		return 2, nil

	case Pop1Pop2:
		return 3, nil

	case Pop1PopA:
		if op == OpPutfield {
			wide, err := fieldIsDoubleWord(instr, body)
			if err != nil {
				return 0, err
			}
			if wide {
				return 3, nil
			}
		}
		return 2, nil

	case Pop2Pop1:
		return 3, nil

	case Pop2Pop2:
		return 4, nil

	case PopI4, PopR4, PopA:
		return 1, nil

	case PopI8, PopR8:
		return 2, nil

	case PopI4PopA, PopI4PopI4, PopR4PopR4, PopAPopA:
		return 2, nil

	case PopI4PopI8:
		return 3, nil

	case PopI8PopI8, PopR8PopR8:
		return 4, nil

	case PopI4PopI4PopA, PopR4PopI4PopA, PopAPopI4PopA:
		return 3, nil

	case PopI8PopI4PopA, PopR8PopI4PopA:
		return 4, nil

	case VarPop:
		return variablePopCount(instr, body)
	}

	return 0, unsupportedBehavior(op, op.StackBehaviorPop(), body)
}

// PushCount returns the number of stack slots instr produces.
func PushCount(instr *Instruction, body *MethodBody) (int, error) {
	if instr == nil {
		return 0, errors.NilPointer(errors.PhaseStack, []string{"instruction"}, "Instruction")
	}

	op := instr.OpCode
	switch op.StackBehaviorPush() {
	case Push0:
		return 0, nil

	case Push1:
		if op == OpGetfield || op == OpGetstatic {
			wide, err := fieldIsDoubleWord(instr, body)
			if err != nil {
				return 0, err
			}
			if wide {
				return 2, nil
			}
		}
		return 1, nil

	case Push1Push1:
		return 2, nil

	case Push1Push1Push1:
		return 3, nil

	case Push1Push2Push1:
		return 4, nil

	case Push2:
		return 2, nil

	case Push2Push2:
		return 4, nil

	case Push2Push1Push2:
		return 5, nil

	case Push2Push2Push2:
		return 6, nil

	case PushI4, PushR4, PushA, PushAddress:
		return 1, nil

	case PushI8, PushR8:
		return 2, nil

	case VarPush:
		sig, err := invokedSignature(instr, body)
		if err != nil {
			return 0, err
		}
		ret := sig.ReturnType()
		switch {
		case metadata.IsVoid(ret):
			return 0, nil
		case metadata.IsDoubleWord(ret):
			return 2, nil
		}
		return 1, nil
	}

	return 0, unsupportedBehavior(op, op.StackBehaviorPush(), body)
}

func variablePopCount(instr *Instruction, body *MethodBody) (int, error) {
	op := instr.OpCode
	switch op {
	case OpAthrow:
		return 1, nil

	case OpMultianewarray:
		operand, err := instr.Operand(1)
		if err != nil {
			return 0, err
		}
		dims, ok := operand.(metadata.IntConstant)
		if !ok || dims < 1 {
			return 0, errors.New(errors.PhaseStack, errors.KindInvalidData).
				Opcode(op.String()).
				Value(operand).
				Detail("dimension count must be a positive int constant").
				Build()
		}
		return int(dims), nil
	}

	sig, err := invokedSignature(instr, body)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range sig.Parameters() {
		if p.Synthetic {
			continue
		}
		count++
		if metadata.IsDoubleWord(p.Type) {
			count++
		}
	}
	if op != OpInvokestatic && op != OpInvokedynamic {
		count++
	}
	return count, nil
}

// invokedSignature returns the call shape of a call instruction. Dynamic call
// sites use their method type; everything else uses the referenced method.
func invokedSignature(instr *Instruction, body *MethodBody) (metadata.MethodSignature, error) {
	op := instr.OpCode

	var operand metadata.Operand
	if instr.HasOperand() {
		operand = instr.Operands[0]
	}

	if op == OpInvokedynamic {
		if site, ok := operand.(*metadata.DynamicCallSite); ok && site.Type != nil {
			return site.Type, nil
		}
	} else if op.IsInvoke() {
		switch sig := operand.(type) {
		case *metadata.MethodReference:
			if sig != nil {
				return sig, nil
			}
		case *metadata.MethodType:
			if sig != nil {
				return sig, nil
			}
		}
	}

	Logger().Debug("call signature unavailable",
		zap.Stringer("opcode", op),
		zap.Int("offset", instr.Offset),
		zap.String("method", body.name()))
	return nil, errors.MissingSignature(errors.PhaseStack, op.String(), operand)
}

func fieldIsDoubleWord(instr *Instruction, body *MethodBody) (bool, error) {
	var operand metadata.Operand
	if instr.HasOperand() {
		operand = instr.Operands[0]
	}
	field, ok := operand.(*metadata.FieldReference)
	if !ok || field == nil || field.FieldType == nil {
		Logger().Debug("field type unavailable",
			zap.Stringer("opcode", instr.OpCode),
			zap.Int("offset", instr.Offset),
			zap.String("method", body.name()))
		return false, errors.New(errors.PhaseStack, errors.KindMissingSignature).
			Opcode(instr.OpCode.String()).
			Value(operand).
			Detail("cannot obtain field type").
			Build()
	}
	return metadata.IsDoubleWord(field.FieldType), nil
}

func unsupportedBehavior(op OpCode, behavior StackBehavior, body *MethodBody) error {
	Logger().Debug("unhandled stack behavior",
		zap.Stringer("opcode", op),
		zap.Uint8("behavior", uint8(behavior)),
		zap.String("method", body.name()))
	return errors.New(errors.PhaseStack, errors.KindUnsupported).
		Opcode(op.String()).
		Value(behavior).
		Detail("stack behavior %d is not supported", behavior).
		Build()
}

// MaxStackDepth walks instrs in order, as if they formed one straight-line block,
// and returns the deepest stack reached. It fails if the block pops more than it has.
func MaxStackDepth(instrs []*Instruction, body *MethodBody) (int, error) {
	depth, peak := 0, 0
	for _, instr := range instrs {
		effect, err := StackEffectOf(instr, body)
		if err != nil {
			return 0, err
		}
		depth -= effect.Pops
		if depth < 0 {
			return 0, errors.New(errors.PhaseStack, errors.KindInvalidData).
				Opcode(instr.OpCode.String()).
				Value(instr.Offset).
				Detail("stack underflow at offset %d", instr.Offset).
				Build()
		}
		depth += effect.Pushes
		peak = max(peak, depth)
	}
	return peak, nil
}
