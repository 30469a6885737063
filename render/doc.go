// Package render turns decoded instructions into classified output tokens.
//
// WriteOperand and WriteInstruction produce the compact form used inside
// diagnostics and decompiled comments:
//
//	#0004: INVOKEVIRTUAL java/io/PrintStream.println:(Ljava/lang/String;)V
//
// Printer writes a full bytecode listing for a method body, one instruction per
// line with aligned mnemonics, switch tables and optional line numbers:
//
//	       0: getstatic       java/lang/System.out:Ljava/io/PrintStream;
//	       3: ldc             "hello"
//
// A fault while writing one instruction does not stop the listing. The printer
// writes the mnemonic followed by an error token and moves on.
package render
