package bytecode

// FlowControl classifies how an opcode transfers control.
type FlowControl uint8

const (
	FlowNext FlowControl = iota
	FlowBranch
	FlowConditionalBranch
	FlowCall
	FlowReturn
	FlowThrow
	FlowBreakpoint
)

var flowNames = [...]string{
	FlowNext:              "next",
	FlowBranch:            "branch",
	FlowConditionalBranch: "conditional_branch",
	FlowCall:              "call",
	FlowReturn:            "return",
	FlowThrow:             "throw",
	FlowBreakpoint:        "breakpoint",
}

func (f FlowControl) String() string {
	if int(f) < len(flowNames) {
		return flowNames[f]
	}
	return "unknown"
}

// OpCodeType separates primitive instructions from macros (short forms such as
// iload_0) and instructions that touch the object model.
type OpCodeType uint8

const (
	Primitive OpCodeType = iota
	Macro
	ObjectModel
)

func (t OpCodeType) String() string {
	switch t {
	case Primitive:
		return "primitive"
	case Macro:
		return "macro"
	case ObjectModel:
		return "object_model"
	}
	return "unknown"
}

// OperandType describes the encoded operand that follows an opcode.
type OperandType uint8

const (
	OperandNone OperandType = iota
	OperandI1
	OperandI2
	OperandConstant
	OperandWideConstant
	OperandLocal
	OperandLocalI1
	OperandLocalI2
	OperandBranchTarget
	OperandBranchTargetWide
	OperandSwitch
	OperandFieldReference
	OperandMethodReference
	OperandDynamicCallSite
	OperandTypeReference
	OperandTypeReferenceU1
	OperandPrimitiveTypeCode
)

var operandTypeNames = [...]string{
	OperandNone:              "none",
	OperandI1:                "i1",
	OperandI2:                "i2",
	OperandConstant:          "constant",
	OperandWideConstant:      "wide_constant",
	OperandLocal:             "local",
	OperandLocalI1:           "local_i1",
	OperandLocalI2:           "local_i2",
	OperandBranchTarget:      "branch_target",
	OperandBranchTargetWide:  "branch_target_wide",
	OperandSwitch:            "switch",
	OperandFieldReference:    "field_reference",
	OperandMethodReference:   "method_reference",
	OperandDynamicCallSite:   "dynamic_call_site",
	OperandTypeReference:     "type_reference",
	OperandTypeReferenceU1:   "type_reference_u1",
	OperandPrimitiveTypeCode: "primitive_type_code",
}

func (t OperandType) String() string {
	if int(t) < len(operandTypeNames) {
		return operandTypeNames[t]
	}
	return "unknown"
}

// BaseSize returns the encoded operand size in bytes, excluding switch padding
// and tables.
func (t OperandType) BaseSize() int {
	switch t {
	case OperandI1, OperandLocal, OperandConstant, OperandPrimitiveTypeCode:
		return 1
	case OperandI2, OperandWideConstant, OperandBranchTarget, OperandFieldReference,
		OperandMethodReference, OperandTypeReference, OperandLocalI1:
		return 2
	case OperandTypeReferenceU1:
		return 3
	case OperandBranchTargetWide, OperandDynamicCallSite, OperandLocalI2:
		return 4
	}
	return 0
}

// StackBehavior is the pop or push category of an opcode. The I4/I8/R4/R8/A
// suffixes name the value types involved; 1 and 2 name untyped category-1 and
// category-2 slots.
type StackBehavior uint8

const (
	Pop0 StackBehavior = iota
	Pop1
	Pop2
	Pop1Pop1
	Pop1Pop2
	Pop1PopA
	Pop2Pop1
	Pop2Pop2
	PopI4
	PopI8
	PopR4
	PopR8
	PopA
	PopI4PopA
	PopI4PopI4
	PopI4PopI8
	PopI8PopI8
	PopR4PopR4
	PopR8PopR8
	PopI4PopI4PopA
	PopI8PopI4PopA
	PopR4PopI4PopA
	PopR8PopI4PopA
	PopAPopI4PopA
	PopAPopA
	VarPop

	Push0
	Push1
	Push1Push1
	Push1Push1Push1
	Push1Push2Push1
	Push2
	Push2Push2
	Push2Push1Push2
	Push2Push2Push2
	PushI4
	PushI8
	PushR4
	PushR8
	PushA
	PushAddress
	VarPush

	// behaviorUnknown is reported for opcodes missing from the table.
	behaviorUnknown StackBehavior = 0xFF
)

type opInfo struct {
	code    OpCode
	name    string
	flow    FlowControl
	kind    OpCodeType
	operand OperandType
	pop     StackBehavior
	push    StackBehavior
}

var (
	standardOps [256]*opInfo
	wideOps     [256]*opInfo
)

func init() {
	for i := range opTable {
		info := &opTable[i]
		if info.code>>8 == WidePrefix {
			wideOps[info.code&0xFF] = info
		} else {
			standardOps[info.code&0xFF] = info
		}
	}
}

var opTable = [...]opInfo{
	{OpNop, "nop", FlowNext, Primitive, OperandNone, Pop0, Push0},
	{OpAconstNull, "aconst_null", FlowNext, Primitive, OperandNone, Pop0, PushA},
	{OpIconstM1, "iconst_m1", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpIconst0, "iconst_0", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpIconst1, "iconst_1", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpIconst2, "iconst_2", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpIconst3, "iconst_3", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpIconst4, "iconst_4", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpIconst5, "iconst_5", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpLconst0, "lconst_0", FlowNext, Macro, OperandNone, Pop0, PushI8},
	{OpLconst1, "lconst_1", FlowNext, Macro, OperandNone, Pop0, PushI8},
	{OpFconst0, "fconst_0", FlowNext, Macro, OperandNone, Pop0, PushR4},
	{OpFconst1, "fconst_1", FlowNext, Macro, OperandNone, Pop0, PushR4},
	{OpFconst2, "fconst_2", FlowNext, Macro, OperandNone, Pop0, PushR4},
	{OpDconst0, "dconst_0", FlowNext, Macro, OperandNone, Pop0, PushR8},
	{OpDconst1, "dconst_1", FlowNext, Macro, OperandNone, Pop0, PushR8},
	{OpBipush, "bipush", FlowNext, Primitive, OperandI1, Pop0, PushI4},
	{OpSipush, "sipush", FlowNext, Primitive, OperandI2, Pop0, PushI4},
	{OpLdc, "ldc", FlowNext, Primitive, OperandConstant, Pop0, Push1},
	{OpLdcW, "ldc_w", FlowNext, Primitive, OperandWideConstant, Pop0, Push1},
	{OpLdc2W, "ldc2_w", FlowNext, Primitive, OperandWideConstant, Pop0, Push2},
	{OpIload, "iload", FlowNext, Primitive, OperandLocal, Pop0, PushI4},
	{OpLload, "lload", FlowNext, Primitive, OperandLocal, Pop0, PushI8},
	{OpFload, "fload", FlowNext, Primitive, OperandLocal, Pop0, PushR4},
	{OpDload, "dload", FlowNext, Primitive, OperandLocal, Pop0, PushR8},
	{OpAload, "aload", FlowNext, Primitive, OperandLocal, Pop0, PushA},
	{OpIload0, "iload_0", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpIload1, "iload_1", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpIload2, "iload_2", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpIload3, "iload_3", FlowNext, Macro, OperandNone, Pop0, PushI4},
	{OpLload0, "lload_0", FlowNext, Macro, OperandNone, Pop0, PushI8},
	{OpLload1, "lload_1", FlowNext, Macro, OperandNone, Pop0, PushI8},
	{OpLload2, "lload_2", FlowNext, Macro, OperandNone, Pop0, PushI8},
	{OpLload3, "lload_3", FlowNext, Macro, OperandNone, Pop0, PushI8},
	{OpFload0, "fload_0", FlowNext, Macro, OperandNone, Pop0, PushR4},
	{OpFload1, "fload_1", FlowNext, Macro, OperandNone, Pop0, PushR4},
	{OpFload2, "fload_2", FlowNext, Macro, OperandNone, Pop0, PushR4},
	{OpFload3, "fload_3", FlowNext, Macro, OperandNone, Pop0, PushR4},
	{OpDload0, "dload_0", FlowNext, Macro, OperandNone, Pop0, PushR8},
	{OpDload1, "dload_1", FlowNext, Macro, OperandNone, Pop0, PushR8},
	{OpDload2, "dload_2", FlowNext, Macro, OperandNone, Pop0, PushR8},
	{OpDload3, "dload_3", FlowNext, Macro, OperandNone, Pop0, PushR8},
	{OpAload0, "aload_0", FlowNext, Macro, OperandNone, Pop0, PushA},
	{OpAload1, "aload_1", FlowNext, Macro, OperandNone, Pop0, PushA},
	{OpAload2, "aload_2", FlowNext, Macro, OperandNone, Pop0, PushA},
	{OpAload3, "aload_3", FlowNext, Macro, OperandNone, Pop0, PushA},
	{OpIaload, "iaload", FlowNext, ObjectModel, OperandNone, PopI4PopA, PushI4},
	{OpLaload, "laload", FlowNext, ObjectModel, OperandNone, PopI4PopA, PushI8},
	{OpFaload, "faload", FlowNext, ObjectModel, OperandNone, PopI4PopA, PushR4},
	{OpDaload, "daload", FlowNext, ObjectModel, OperandNone, PopI4PopA, PushR8},
	{OpAaload, "aaload", FlowNext, ObjectModel, OperandNone, PopI4PopA, PushA},
	{OpBaload, "baload", FlowNext, ObjectModel, OperandNone, PopI4PopA, PushI4},
	{OpCaload, "caload", FlowNext, ObjectModel, OperandNone, PopI4PopA, PushI4},
	{OpSaload, "saload", FlowNext, ObjectModel, OperandNone, PopI4PopA, PushI4},
	{OpIstore, "istore", FlowNext, Primitive, OperandLocal, PopI4, Push0},
	{OpLstore, "lstore", FlowNext, Primitive, OperandLocal, PopI8, Push0},
	{OpFstore, "fstore", FlowNext, Primitive, OperandLocal, PopR4, Push0},
	{OpDstore, "dstore", FlowNext, Primitive, OperandLocal, PopR8, Push0},
	{OpAstore, "astore", FlowNext, Primitive, OperandLocal, PopA, Push0},
	{OpIstore0, "istore_0", FlowNext, Macro, OperandNone, PopI4, Push0},
	{OpIstore1, "istore_1", FlowNext, Macro, OperandNone, PopI4, Push0},
	{OpIstore2, "istore_2", FlowNext, Macro, OperandNone, PopI4, Push0},
	{OpIstore3, "istore_3", FlowNext, Macro, OperandNone, PopI4, Push0},
	{OpLstore0, "lstore_0", FlowNext, Macro, OperandNone, PopI8, Push0},
	{OpLstore1, "lstore_1", FlowNext, Macro, OperandNone, PopI8, Push0},
	{OpLstore2, "lstore_2", FlowNext, Macro, OperandNone, PopI8, Push0},
	{OpLstore3, "lstore_3", FlowNext, Macro, OperandNone, PopI8, Push0},
	{OpFstore0, "fstore_0", FlowNext, Macro, OperandNone, PopR4, Push0},
	{OpFstore1, "fstore_1", FlowNext, Macro, OperandNone, PopR4, Push0},
	{OpFstore2, "fstore_2", FlowNext, Macro, OperandNone, PopR4, Push0},
	{OpFstore3, "fstore_3", FlowNext, Macro, OperandNone, PopR4, Push0},
	{OpDstore0, "dstore_0", FlowNext, Macro, OperandNone, PopR8, Push0},
	{OpDstore1, "dstore_1", FlowNext, Macro, OperandNone, PopR8, Push0},
	{OpDstore2, "dstore_2", FlowNext, Macro, OperandNone, PopR8, Push0},
	{OpDstore3, "dstore_3", FlowNext, Macro, OperandNone, PopR8, Push0},
	{OpAstore0, "astore_0", FlowNext, Macro, OperandNone, PopA, Push0},
	{OpAstore1, "astore_1", FlowNext, Macro, OperandNone, PopA, Push0},
	{OpAstore2, "astore_2", FlowNext, Macro, OperandNone, PopA, Push0},
	{OpAstore3, "astore_3", FlowNext, Macro, OperandNone, PopA, Push0},
	{OpIastore, "iastore", FlowNext, ObjectModel, OperandNone, PopI4PopI4PopA, Push0},
	{OpLastore, "lastore", FlowNext, ObjectModel, OperandNone, PopI8PopI4PopA, Push0},
	{OpFastore, "fastore", FlowNext, ObjectModel, OperandNone, PopR4PopI4PopA, Push0},
	{OpDastore, "dastore", FlowNext, ObjectModel, OperandNone, PopR8PopI4PopA, Push0},
	{OpAastore, "aastore", FlowNext, ObjectModel, OperandNone, PopAPopI4PopA, Push0},
	{OpBastore, "bastore", FlowNext, ObjectModel, OperandNone, PopI4PopI4PopA, Push0},
	{OpCastore, "castore", FlowNext, ObjectModel, OperandNone, PopI4PopI4PopA, Push0},
	{OpSastore, "sastore", FlowNext, ObjectModel, OperandNone, PopI4PopI4PopA, Push0},
	{OpPop, "pop", FlowNext, Primitive, OperandNone, Pop1, Push0},
	{OpPop2, "pop2", FlowNext, Primitive, OperandNone, Pop2, Push0},
	{OpDup, "dup", FlowNext, Primitive, OperandNone, Pop1, Push1Push1},
	{OpDupX1, "dup_x1", FlowNext, Primitive, OperandNone, Pop1Pop1, Push1Push1Push1},
	{OpDupX2, "dup_x2", FlowNext, Primitive, OperandNone, Pop2Pop1, Push1Push2Push1},
	{OpDup2, "dup2", FlowNext, Primitive, OperandNone, Pop2, Push2Push2},
	{OpDup2X1, "dup2_x1", FlowNext, Primitive, OperandNone, Pop1Pop2, Push2Push1Push2},
	{OpDup2X2, "dup2_x2", FlowNext, Primitive, OperandNone, Pop2Pop2, Push2Push2Push2},
	{OpSwap, "swap", FlowNext, Primitive, OperandNone, Pop1Pop1, Push1Push1},
	{OpIadd, "iadd", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLadd, "ladd", FlowNext, Primitive, OperandNone, PopI8PopI8, PushI8},
	{OpFadd, "fadd", FlowNext, Primitive, OperandNone, PopR4PopR4, PushR4},
	{OpDadd, "dadd", FlowNext, Primitive, OperandNone, PopR8PopR8, PushR8},
	{OpIsub, "isub", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLsub, "lsub", FlowNext, Primitive, OperandNone, PopI8PopI8, PushI8},
	{OpFsub, "fsub", FlowNext, Primitive, OperandNone, PopR4PopR4, PushR4},
	{OpDsub, "dsub", FlowNext, Primitive, OperandNone, PopR8PopR8, PushR8},
	{OpImul, "imul", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLmul, "lmul", FlowNext, Primitive, OperandNone, PopI8PopI8, PushI8},
	{OpFmul, "fmul", FlowNext, Primitive, OperandNone, PopR4PopR4, PushR4},
	{OpDmul, "dmul", FlowNext, Primitive, OperandNone, PopR8PopR8, PushR8},
	{OpIdiv, "idiv", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLdiv, "ldiv", FlowNext, Primitive, OperandNone, PopI8PopI8, PushI8},
	{OpFdiv, "fdiv", FlowNext, Primitive, OperandNone, PopR4PopR4, PushR4},
	{OpDdiv, "ddiv", FlowNext, Primitive, OperandNone, PopR8PopR8, PushR8},
	{OpIrem, "irem", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLrem, "lrem", FlowNext, Primitive, OperandNone, PopI8PopI8, PushI8},
	{OpFrem, "frem", FlowNext, Primitive, OperandNone, PopR4PopR4, PushR4},
	{OpDrem, "drem", FlowNext, Primitive, OperandNone, PopR8PopR8, PushR8},
	{OpIneg, "ineg", FlowNext, Primitive, OperandNone, PopI4, PushI4},
	{OpLneg, "lneg", FlowNext, Primitive, OperandNone, PopI8, PushI8},
	{OpFneg, "fneg", FlowNext, Primitive, OperandNone, PopR4, PushR4},
	{OpDneg, "dneg", FlowNext, Primitive, OperandNone, PopR8, PushR8},
	{OpIshl, "ishl", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLshl, "lshl", FlowNext, Primitive, OperandNone, PopI4PopI8, PushI8},
	{OpIshr, "ishr", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLshr, "lshr", FlowNext, Primitive, OperandNone, PopI4PopI8, PushI8},
	{OpIushr, "iushr", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLushr, "lushr", FlowNext, Primitive, OperandNone, PopI4PopI8, PushI8},
	{OpIand, "iand", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLand, "land", FlowNext, Primitive, OperandNone, PopI8PopI8, PushI8},
	{OpIor, "ior", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLor, "lor", FlowNext, Primitive, OperandNone, PopI8PopI8, PushI8},
	{OpIxor, "ixor", FlowNext, Primitive, OperandNone, PopI4PopI4, PushI4},
	{OpLxor, "lxor", FlowNext, Primitive, OperandNone, PopI8PopI8, PushI8},
	{OpIinc, "iinc", FlowNext, Primitive, OperandLocalI1, Pop0, Push0},
	{OpI2l, "i2l", FlowNext, Primitive, OperandNone, PopI4, PushI8},
	{OpI2f, "i2f", FlowNext, Primitive, OperandNone, PopI4, PushR4},
	{OpI2d, "i2d", FlowNext, Primitive, OperandNone, PopI4, PushR8},
	{OpL2i, "l2i", FlowNext, Primitive, OperandNone, PopI8, PushI4},
	{OpL2f, "l2f", FlowNext, Primitive, OperandNone, PopI8, PushR4},
	{OpL2d, "l2d", FlowNext, Primitive, OperandNone, PopI8, PushR8},
	{OpF2i, "f2i", FlowNext, Primitive, OperandNone, PopR4, PushI4},
	{OpF2l, "f2l", FlowNext, Primitive, OperandNone, PopR4, PushI8},
	{OpF2d, "f2d", FlowNext, Primitive, OperandNone, PopR4, PushR8},
	{OpD2i, "d2i", FlowNext, Primitive, OperandNone, PopR8, PushI4},
	{OpD2l, "d2l", FlowNext, Primitive, OperandNone, PopR8, PushI8},
	{OpD2f, "d2f", FlowNext, Primitive, OperandNone, PopR8, PushR4},
	{OpI2b, "i2b", FlowNext, Primitive, OperandNone, PopI4, PushI4},
	{OpI2c, "i2c", FlowNext, Primitive, OperandNone, PopI4, PushI4},
	{OpI2s, "i2s", FlowNext, Primitive, OperandNone, PopI4, PushI4},
	{OpLcmp, "lcmp", FlowNext, Primitive, OperandNone, PopI8PopI8, PushI4},
	{OpFcmpl, "fcmpl", FlowNext, Primitive, OperandNone, PopR4PopR4, PushI4},
	{OpFcmpg, "fcmpg", FlowNext, Primitive, OperandNone, PopR4PopR4, PushI4},
	{OpDcmpl, "dcmpl", FlowNext, Primitive, OperandNone, PopR8PopR8, PushI4},
	{OpDcmpg, "dcmpg", FlowNext, Primitive, OperandNone, PopR8PopR8, PushI4},
	{OpIfeq, "ifeq", FlowConditionalBranch, Primitive, OperandBranchTarget, PopI4, Push0},
	{OpIfne, "ifne", FlowConditionalBranch, Primitive, OperandBranchTarget, PopI4, Push0},
	{OpIflt, "iflt", FlowConditionalBranch, Primitive, OperandBranchTarget, PopI4, Push0},
	{OpIfge, "ifge", FlowConditionalBranch, Primitive, OperandBranchTarget, PopI4, Push0},
	{OpIfgt, "ifgt", FlowConditionalBranch, Primitive, OperandBranchTarget, PopI4, Push0},
	{OpIfle, "ifle", FlowConditionalBranch, Primitive, OperandBranchTarget, PopI4, Push0},
	{OpIfIcmpeq, "if_icmpeq", FlowConditionalBranch, Macro, OperandBranchTarget, PopI4PopI4, Push0},
	{OpIfIcmpne, "if_icmpne", FlowConditionalBranch, Macro, OperandBranchTarget, PopI4PopI4, Push0},
	{OpIfIcmplt, "if_icmplt", FlowConditionalBranch, Macro, OperandBranchTarget, PopI4PopI4, Push0},
	{OpIfIcmpge, "if_icmpge", FlowConditionalBranch, Macro, OperandBranchTarget, PopI4PopI4, Push0},
	{OpIfIcmpgt, "if_icmpgt", FlowConditionalBranch, Macro, OperandBranchTarget, PopI4PopI4, Push0},
	{OpIfIcmple, "if_icmple", FlowConditionalBranch, Macro, OperandBranchTarget, PopI4PopI4, Push0},
	{OpIfAcmpeq, "if_acmpeq", FlowConditionalBranch, Macro, OperandBranchTarget, PopAPopA, Push0},
	{OpIfAcmpne, "if_acmpne", FlowConditionalBranch, Macro, OperandBranchTarget, PopAPopA, Push0},
	{OpGoto, "goto", FlowBranch, Primitive, OperandBranchTarget, Pop0, Push0},
	{OpJsr, "jsr", FlowBranch, Primitive, OperandBranchTarget, Pop0, PushAddress},
	{OpRet, "ret", FlowBranch, Primitive, OperandLocal, Pop0, Push0},
	{OpTableswitch, "tableswitch", FlowBranch, Primitive, OperandSwitch, PopI4, Push0},
	{OpLookupswitch, "lookupswitch", FlowBranch, Primitive, OperandSwitch, PopI4, Push0},
	{OpIreturn, "ireturn", FlowReturn, Primitive, OperandNone, PopI4, Push0},
	{OpLreturn, "lreturn", FlowReturn, Primitive, OperandNone, PopI8, Push0},
	{OpFreturn, "freturn", FlowReturn, Primitive, OperandNone, PopR4, Push0},
	{OpDreturn, "dreturn", FlowReturn, Primitive, OperandNone, PopR8, Push0},
	{OpAreturn, "areturn", FlowReturn, Primitive, OperandNone, PopA, Push0},
	{OpReturn, "return", FlowReturn, Primitive, OperandNone, Pop0, Push0},
	{OpGetstatic, "getstatic", FlowNext, ObjectModel, OperandFieldReference, Pop0, Push1},
	{OpPutstatic, "putstatic", FlowNext, ObjectModel, OperandFieldReference, Pop1, Push0},
	{OpGetfield, "getfield", FlowNext, ObjectModel, OperandFieldReference, PopA, Push1},
	{OpPutfield, "putfield", FlowNext, ObjectModel, OperandFieldReference, Pop1PopA, Push0},
	{OpInvokevirtual, "invokevirtual", FlowCall, ObjectModel, OperandMethodReference, VarPop, VarPush},
	{OpInvokespecial, "invokespecial", FlowCall, ObjectModel, OperandMethodReference, VarPop, VarPush},
	{OpInvokestatic, "invokestatic", FlowCall, Primitive, OperandMethodReference, VarPop, VarPush},
	{OpInvokeinterface, "invokeinterface", FlowCall, ObjectModel, OperandMethodReference, VarPop, VarPush},
	{OpInvokedynamic, "invokedynamic", FlowCall, ObjectModel, OperandDynamicCallSite, VarPop, VarPush},
	{OpNew, "new", FlowNext, ObjectModel, OperandTypeReference, Pop0, PushA},
	{OpNewarray, "newarray", FlowNext, ObjectModel, OperandPrimitiveTypeCode, PopI4, PushA},
	{OpAnewarray, "anewarray", FlowNext, ObjectModel, OperandTypeReference, PopI4, PushA},
	{OpArraylength, "arraylength", FlowNext, ObjectModel, OperandNone, PopA, PushI4},
	{OpAthrow, "athrow", FlowThrow, ObjectModel, OperandNone, VarPop, Push0},
	{OpCheckcast, "checkcast", FlowNext, ObjectModel, OperandTypeReference, PopA, PushA},
	{OpInstanceof, "instanceof", FlowNext, ObjectModel, OperandTypeReference, PopA, PushI4},
	{OpMonitorenter, "monitorenter", FlowNext, ObjectModel, OperandNone, PopA, Push0},
	{OpMonitorexit, "monitorexit", FlowNext, ObjectModel, OperandNone, PopA, Push0},
	{OpMultianewarray, "multianewarray", FlowNext, ObjectModel, OperandTypeReferenceU1, VarPop, PushA},
	{OpIfnull, "ifnull", FlowConditionalBranch, Primitive, OperandBranchTarget, PopA, Push0},
	{OpIfnonnull, "ifnonnull", FlowConditionalBranch, Primitive, OperandBranchTarget, PopA, Push0},
	{OpGotoW, "goto_w", FlowBranch, Primitive, OperandBranchTargetWide, Pop0, Push0},
	{OpJsrW, "jsr_w", FlowBranch, Primitive, OperandBranchTargetWide, Pop0, PushAddress},
	{OpBreakpoint, "breakpoint", FlowBreakpoint, Primitive, OperandNone, Pop0, Push0},
	{OpIloadW, "iload_w", FlowNext, Primitive, OperandLocal, Pop0, PushI4},
	{OpLloadW, "lload_w", FlowNext, Primitive, OperandLocal, Pop0, PushI8},
	{OpFloadW, "fload_w", FlowNext, Primitive, OperandLocal, Pop0, PushR4},
	{OpDloadW, "dload_w", FlowNext, Primitive, OperandLocal, Pop0, PushR8},
	{OpAloadW, "aload_w", FlowNext, Primitive, OperandLocal, Pop0, PushA},
	{OpIstoreW, "istore_w", FlowNext, Primitive, OperandLocal, PopI4, Push0},
	{OpLstoreW, "lstore_w", FlowNext, Primitive, OperandLocal, PopI8, Push0},
	{OpFstoreW, "fstore_w", FlowNext, Primitive, OperandLocal, PopR4, Push0},
	{OpDstoreW, "dstore_w", FlowNext, Primitive, OperandLocal, PopR8, Push0},
	{OpAstoreW, "astore_w", FlowNext, Primitive, OperandLocal, PopA, Push0},
	{OpIincW, "iinc_w", FlowNext, Primitive, OperandLocalI2, Pop0, Push0},
	{OpRetW, "ret_w", FlowBranch, Primitive, OperandLocal, Pop0, Push0},
	{OpLeave, "leave", FlowBranch, Primitive, OperandNone, Pop0, Push0},
	{OpEndfinally, "endfinally", FlowBranch, Primitive, OperandNone, Pop0, Push0},
}
