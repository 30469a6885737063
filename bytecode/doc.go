// Package bytecode models JVM instructions and computes their operand stack effects.
//
// Every opcode carries static metadata: its flow control class, operand encoding and
// a pop and push StackBehavior category. PopCount and PushCount turn those categories
// into slot counts for a concrete instruction, where long and double values take two
// slots:
//
//	instr := bytecode.NewInstruction(bytecode.OpInvokevirtual, method)
//	pops, err := bytecode.PopCount(instr, body)
//
// Categories that depend on operands (calls, athrow, multianewarray and the field
// instructions) read the resolved operand. A missing operand is returned as an error
// rather than guessed, since a wrong count desynchronizes every later instruction.
package bytecode
