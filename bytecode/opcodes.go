package bytecode

// OpCode identifies a JVM instruction. Standard opcodes use their one-byte
// encoding; wide-prefixed forms are encoded as 0xC4xx.
type OpCode uint16

// WidePrefix is the opcode byte that introduces a wide instruction.
const WidePrefix = 0xC4

// Constant opcodes push literal values.
const (
	OpNop        OpCode = 0x00
	OpAconstNull OpCode = 0x01
	OpIconstM1   OpCode = 0x02
	OpIconst0    OpCode = 0x03
	OpIconst1    OpCode = 0x04
	OpIconst2    OpCode = 0x05
	OpIconst3    OpCode = 0x06
	OpIconst4    OpCode = 0x07
	OpIconst5    OpCode = 0x08
	OpLconst0    OpCode = 0x09
	OpLconst1    OpCode = 0x0A
	OpFconst0    OpCode = 0x0B
	OpFconst1    OpCode = 0x0C
	OpFconst2    OpCode = 0x0D
	OpDconst0    OpCode = 0x0E
	OpDconst1    OpCode = 0x0F
	OpBipush     OpCode = 0x10
	OpSipush     OpCode = 0x11
	OpLdc        OpCode = 0x12
	OpLdcW       OpCode = 0x13
	OpLdc2W      OpCode = 0x14
)

// Load opcodes read locals and array elements.
const (
	OpIload  OpCode = 0x15
	OpLload  OpCode = 0x16
	OpFload  OpCode = 0x17
	OpDload  OpCode = 0x18
	OpAload  OpCode = 0x19
	OpIload0 OpCode = 0x1A
	OpIload1 OpCode = 0x1B
	OpIload2 OpCode = 0x1C
	OpIload3 OpCode = 0x1D
	OpLload0 OpCode = 0x1E
	OpLload1 OpCode = 0x1F
	OpLload2 OpCode = 0x20
	OpLload3 OpCode = 0x21
	OpFload0 OpCode = 0x22
	OpFload1 OpCode = 0x23
	OpFload2 OpCode = 0x24
	OpFload3 OpCode = 0x25
	OpDload0 OpCode = 0x26
	OpDload1 OpCode = 0x27
	OpDload2 OpCode = 0x28
	OpDload3 OpCode = 0x29
	OpAload0 OpCode = 0x2A
	OpAload1 OpCode = 0x2B
	OpAload2 OpCode = 0x2C
	OpAload3 OpCode = 0x2D
	OpIaload OpCode = 0x2E
	OpLaload OpCode = 0x2F
	OpFaload OpCode = 0x30
	OpDaload OpCode = 0x31
	OpAaload OpCode = 0x32
	OpBaload OpCode = 0x33
	OpCaload OpCode = 0x34
	OpSaload OpCode = 0x35
)

// Store opcodes write locals and array elements.
const (
	OpIstore  OpCode = 0x36
	OpLstore  OpCode = 0x37
	OpFstore  OpCode = 0x38
	OpDstore  OpCode = 0x39
	OpAstore  OpCode = 0x3A
	OpIstore0 OpCode = 0x3B
	OpIstore1 OpCode = 0x3C
	OpIstore2 OpCode = 0x3D
	OpIstore3 OpCode = 0x3E
	OpLstore0 OpCode = 0x3F
	OpLstore1 OpCode = 0x40
	OpLstore2 OpCode = 0x41
	OpLstore3 OpCode = 0x42
	OpFstore0 OpCode = 0x43
	OpFstore1 OpCode = 0x44
	OpFstore2 OpCode = 0x45
	OpFstore3 OpCode = 0x46
	OpDstore0 OpCode = 0x47
	OpDstore1 OpCode = 0x48
	OpDstore2 OpCode = 0x49
	OpDstore3 OpCode = 0x4A
	OpAstore0 OpCode = 0x4B
	OpAstore1 OpCode = 0x4C
	OpAstore2 OpCode = 0x4D
	OpAstore3 OpCode = 0x4E
	OpIastore OpCode = 0x4F
	OpLastore OpCode = 0x50
	OpFastore OpCode = 0x51
	OpDastore OpCode = 0x52
	OpAastore OpCode = 0x53
	OpBastore OpCode = 0x54
	OpCastore OpCode = 0x55
	OpSastore OpCode = 0x56
)

// Stack manipulation opcodes
const (
	OpPop    OpCode = 0x57
	OpPop2   OpCode = 0x58
	OpDup    OpCode = 0x59
	OpDupX1  OpCode = 0x5A
	OpDupX2  OpCode = 0x5B
	OpDup2   OpCode = 0x5C
	OpDup2X1 OpCode = 0x5D
	OpDup2X2 OpCode = 0x5E
	OpSwap   OpCode = 0x5F
)

// Arithmetic and bitwise opcodes
const (
	OpIadd  OpCode = 0x60
	OpLadd  OpCode = 0x61
	OpFadd  OpCode = 0x62
	OpDadd  OpCode = 0x63
	OpIsub  OpCode = 0x64
	OpLsub  OpCode = 0x65
	OpFsub  OpCode = 0x66
	OpDsub  OpCode = 0x67
	OpImul  OpCode = 0x68
	OpLmul  OpCode = 0x69
	OpFmul  OpCode = 0x6A
	OpDmul  OpCode = 0x6B
	OpIdiv  OpCode = 0x6C
	OpLdiv  OpCode = 0x6D
	OpFdiv  OpCode = 0x6E
	OpDdiv  OpCode = 0x6F
	OpIrem  OpCode = 0x70
	OpLrem  OpCode = 0x71
	OpFrem  OpCode = 0x72
	OpDrem  OpCode = 0x73
	OpIneg  OpCode = 0x74
	OpLneg  OpCode = 0x75
	OpFneg  OpCode = 0x76
	OpDneg  OpCode = 0x77
	OpIshl  OpCode = 0x78
	OpLshl  OpCode = 0x79
	OpIshr  OpCode = 0x7A
	OpLshr  OpCode = 0x7B
	OpIushr OpCode = 0x7C
	OpLushr OpCode = 0x7D
	OpIand  OpCode = 0x7E
	OpLand  OpCode = 0x7F
	OpIor   OpCode = 0x80
	OpLor   OpCode = 0x81
	OpIxor  OpCode = 0x82
	OpLxor  OpCode = 0x83
	OpIinc  OpCode = 0x84
)

// Conversion opcodes
const (
	OpI2l OpCode = 0x85
	OpI2f OpCode = 0x86
	OpI2d OpCode = 0x87
	OpL2i OpCode = 0x88
	OpL2f OpCode = 0x89
	OpL2d OpCode = 0x8A
	OpF2i OpCode = 0x8B
	OpF2l OpCode = 0x8C
	OpF2d OpCode = 0x8D
	OpD2i OpCode = 0x8E
	OpD2l OpCode = 0x8F
	OpD2f OpCode = 0x90
	OpI2b OpCode = 0x91
	OpI2c OpCode = 0x92
	OpI2s OpCode = 0x93
)

// Comparison opcodes
const (
	OpLcmp  OpCode = 0x94
	OpFcmpl OpCode = 0x95
	OpFcmpg OpCode = 0x96
	OpDcmpl OpCode = 0x97
	OpDcmpg OpCode = 0x98
)

// Control flow opcodes
const (
	OpIfeq         OpCode = 0x99
	OpIfne         OpCode = 0x9A
	OpIflt         OpCode = 0x9B
	OpIfge         OpCode = 0x9C
	OpIfgt         OpCode = 0x9D
	OpIfle         OpCode = 0x9E
	OpIfIcmpeq     OpCode = 0x9F
	OpIfIcmpne     OpCode = 0xA0
	OpIfIcmplt     OpCode = 0xA1
	OpIfIcmpge     OpCode = 0xA2
	OpIfIcmpgt     OpCode = 0xA3
	OpIfIcmple     OpCode = 0xA4
	OpIfAcmpeq     OpCode = 0xA5
	OpIfAcmpne     OpCode = 0xA6
	OpGoto         OpCode = 0xA7
	OpJsr          OpCode = 0xA8
	OpRet          OpCode = 0xA9
	OpTableswitch  OpCode = 0xAA
	OpLookupswitch OpCode = 0xAB
	OpIreturn      OpCode = 0xAC
	OpLreturn      OpCode = 0xAD
	OpFreturn      OpCode = 0xAE
	OpDreturn      OpCode = 0xAF
	OpAreturn      OpCode = 0xB0
	OpReturn       OpCode = 0xB1
)

// Object model opcodes
const (
	OpGetstatic       OpCode = 0xB2
	OpPutstatic       OpCode = 0xB3
	OpGetfield        OpCode = 0xB4
	OpPutfield        OpCode = 0xB5
	OpInvokevirtual   OpCode = 0xB6
	OpInvokespecial   OpCode = 0xB7
	OpInvokestatic    OpCode = 0xB8
	OpInvokeinterface OpCode = 0xB9
	OpInvokedynamic   OpCode = 0xBA
	OpNew             OpCode = 0xBB
	OpNewarray        OpCode = 0xBC
	OpAnewarray       OpCode = 0xBD
	OpArraylength     OpCode = 0xBE
	OpAthrow          OpCode = 0xBF
	OpCheckcast       OpCode = 0xC0
	OpInstanceof      OpCode = 0xC1
	OpMonitorenter    OpCode = 0xC2
	OpMonitorexit     OpCode = 0xC3
)

// Extended opcodes
const (
	OpMultianewarray OpCode = 0xC5
	OpIfnull         OpCode = 0xC6
	OpIfnonnull      OpCode = 0xC7
	OpGotoW          OpCode = 0xC8
	OpJsrW           OpCode = 0xC9
	OpBreakpoint     OpCode = 0xCA
)

// Wide opcodes take 16-bit local indices and increments.
const (
	OpIloadW  OpCode = 0xC415
	OpLloadW  OpCode = 0xC416
	OpFloadW  OpCode = 0xC417
	OpDloadW  OpCode = 0xC418
	OpAloadW  OpCode = 0xC419
	OpIstoreW OpCode = 0xC436
	OpLstoreW OpCode = 0xC437
	OpFstoreW OpCode = 0xC438
	OpDstoreW OpCode = 0xC439
	OpAstoreW OpCode = 0xC43A
	OpIincW   OpCode = 0xC484
	OpRetW    OpCode = 0xC4A9
)

// Synthetic opcodes used by the decompiler to model finally blocks.
// They never appear in class files.
const (
	OpLeave      OpCode = 0xFE
	OpEndfinally OpCode = 0xFF
)
