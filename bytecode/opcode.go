package bytecode

import (
	"fmt"
	"strings"
)

// maxMnemonicLength is the widest mnemonic, used to pad listings into columns.
var maxMnemonicLength = func() int {
	n := len("linenumber")
	for i := range opTable {
		n = max(n, len(opTable[i].name))
	}
	return n
}()

// MaxMnemonicLength returns the column width of the widest mnemonic. It is never
// narrower than the "linenumber" pseudo-instruction used in listings.
func MaxMnemonicLength() int {
	return maxMnemonicLength
}

// OpCodeFor returns the opcode with the given encoding. Wide forms are looked up
// as 0xC4xx.
func OpCodeFor(code int) (OpCode, bool) {
	if code < 0 || code > 0xFFFF {
		return 0, false
	}
	info := lookup(OpCode(code))
	if info == nil {
		return 0, false
	}
	return info.code, true
}

func lookup(op OpCode) *opInfo {
	switch op >> 8 {
	case 0:
		return standardOps[op&0xFF]
	case WidePrefix:
		return wideOps[op&0xFF]
	}
	return nil
}

func (op OpCode) info() opInfo {
	if info := lookup(op); info != nil {
		return *info
	}
	return opInfo{code: op, pop: behaviorUnknown, push: behaviorUnknown}
}

// IsValid reports whether op is a known opcode.
func (op OpCode) IsValid() bool { return lookup(op) != nil }

// Code returns the numeric encoding.
func (op OpCode) Code() int { return int(op) }

// Mnemonic returns the lower-case assembler name ("iload_0").
func (op OpCode) Mnemonic() string { return op.info().name }

func (op OpCode) String() string {
	if info := lookup(op); info != nil {
		return info.name
	}
	return fmt.Sprintf("opcode(%#x)", uint16(op))
}

// Name returns the upper-case constant-style name ("ILOAD_0").
func (op OpCode) Name() string { return strings.ToUpper(op.String()) }

func (op OpCode) FlowControl() FlowControl         { return op.info().flow }
func (op OpCode) Type() OpCodeType                 { return op.info().kind }
func (op OpCode) OperandType() OperandType         { return op.info().operand }
func (op OpCode) StackBehaviorPop() StackBehavior  { return op.info().pop }
func (op OpCode) StackBehaviorPush() StackBehavior { return op.info().push }

// HasVariableStackBehavior reports whether either stack category depends on the operand.
func (op OpCode) HasVariableStackBehavior() bool {
	info := op.info()
	return info.pop == VarPop || info.push == VarPush
}

// IsWide reports whether op is a wide-prefixed form.
func (op OpCode) IsWide() bool { return op>>8 == WidePrefix }

// Size returns the encoded size of the opcode itself, excluding operands.
func (op OpCode) Size() int {
	if op.IsWide() {
		return 2
	}
	return 1
}

func (op OpCode) IsReturn() bool { return op.FlowControl() == FlowReturn }
func (op OpCode) IsThrow() bool  { return op.FlowControl() == FlowThrow }

func (op OpCode) IsInvoke() bool {
	switch op {
	case OpInvokevirtual, OpInvokespecial, OpInvokestatic, OpInvokeinterface, OpInvokedynamic:
		return true
	}
	return false
}

func (op OpCode) IsJumpToSubroutine() bool {
	return op == OpJsr || op == OpJsrW
}

func (op OpCode) IsReturnFromSubroutine() bool {
	return op == OpRet || op == OpRetW
}

// IsLeave reports whether op leaves a protected region: subroutine calls and the
// synthetic finally opcodes.
func (op OpCode) IsLeave() bool {
	switch op {
	case OpJsr, OpJsrW, OpLeave, OpEndfinally:
		return true
	}
	return false
}

// IsBranch reports whether op may transfer control anywhere but the next instruction.
func (op OpCode) IsBranch() bool {
	switch op.FlowControl() {
	case FlowBranch, FlowConditionalBranch, FlowReturn, FlowThrow:
		return true
	}
	return false
}

func (op OpCode) IsUnconditionalBranch() bool {
	switch op.FlowControl() {
	case FlowBranch, FlowReturn, FlowThrow:
		return true
	}
	return false
}

func (op OpCode) IsGoto() bool {
	return op == OpGoto || op == OpGotoW
}

// IsLoad reports whether op reads a local variable slot. RET counts as a load of
// its return address.
func (op OpCode) IsLoad() bool {
	switch {
	case op >= OpIload && op <= OpAload3:
		return true
	case op >= OpIloadW && op <= OpAloadW:
		return true
	}
	return op == OpRet || op == OpRetW
}

// IsStore reports whether op writes a local variable slot.
func (op OpCode) IsStore() bool {
	switch {
	case op >= OpIstore && op <= OpAstore3:
		return true
	case op >= OpIstoreW && op <= OpAstoreW:
		return true
	}
	return false
}

func (op OpCode) IsMoveInstruction() bool { return op.IsLoad() || op.IsStore() }

// IsArrayLoad reports whether op is one of the int, long, float, double or
// reference array loads. Byte, char and short loads are not included.
func (op OpCode) IsArrayLoad() bool {
	return op >= OpIaload && op <= OpAaload
}

// IsArrayStore is the store counterpart of IsArrayLoad.
func (op OpCode) IsArrayStore() bool {
	return op >= OpIastore && op <= OpAastore
}

// EndsUnconditionalJumpBlock reports whether control never falls through op.
func (op OpCode) EndsUnconditionalJumpBlock() bool {
	switch op {
	case OpGoto, OpGotoW, OpJsr, OpJsrW, OpRet, OpRetW, OpAthrow,
		OpIreturn, OpLreturn, OpFreturn, OpDreturn, OpAreturn, OpReturn:
		return true
	}
	return false
}

// CanThrow reports whether op may raise an exception at run time.
func (op OpCode) CanThrow() bool {
	if op.Type() == ObjectModel {
		return op != OpInstanceof
	}
	switch op {
	case OpIdiv, OpLdiv, OpIrem, OpLrem:
		return true
	}
	return false
}

// Negate returns the conditional branch with the inverted condition.
func (op OpCode) Negate() (OpCode, bool) {
	switch {
	case op == OpIfnull:
		return OpIfnonnull, true
	case op == OpIfnonnull:
		return OpIfnull, true
	case op >= OpIfeq && op <= OpIfAcmpne:
		// Conditions come in adjacent pairs starting at ifeq.
		return ((op + 1) ^ 1) - 1, true
	}
	return op, false
}

// LoadStoreMacroSlot returns the implied local slot of a short load or store form
// (iload_2 is slot 2).
func (op OpCode) LoadStoreMacroSlot() (int, bool) {
	switch {
	case op >= OpIload0 && op <= OpAload3:
		return int(op-OpIload0) % 4, true
	case op >= OpIstore0 && op <= OpAstore3:
		return int(op-OpIstore0) % 4, true
	}
	return -1, false
}
