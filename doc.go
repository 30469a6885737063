// Package jdecomp is the semantic core of a JVM bytecode decompiler: stack effects,
// type and signature formatting, and operand rendering over a token-classified
// output sink.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	jdecomp/            Root package with listing and formatting shortcuts
//	├── metadata/       Type references, members, constants and descriptor parsing
//	├── bytecode/       Opcode table, instructions and the stack effect calculator
//	├── output/         Output interface, plain text sink and token recorder
//	├── format/         Type, signature, member and literal formatting
//	├── render/         Operand rendering and the bytecode listing printer
//	└── errors/         Structured error types for debugging
//
// # Quick Start
//
// Print the listing of a method body:
//
//	body := &bytecode.MethodBody{
//	    Method:       mainMethod,
//	    Instructions: instrs,
//	    MaxStack:     2,
//	    MaxLocals:    1,
//	}
//	if err := jdecomp.Disassemble(os.Stdout, body, render.DefaultSettings()); err != nil {
//	    log.Print(err)
//	}
//
// Instructions that fail to render are marked with "!!! ERROR" in the listing and
// their errors are returned together once the whole method has been written.
//
// # Name Syntaxes
//
// Types can be written in five syntaxes:
//
//   - Signature: Ljava/util/List<Ljava/lang/String;>;
//   - ErasedSignature: Ljava/util/List;
//   - Descriptor: java/util/List
//   - TypeName: java.util.List<java.lang.String>
//   - ShortTypeName: List<String>
//
// # Error Handling
//
// Errors are *errors.Error values carrying the phase and kind of the fault:
//
//	var e *errors.Error
//	if errors.As(err, &e) {
//	    fmt.Println(e.Phase, e.Kind, e.Opcode)
//	}
//
// # Logging
//
// Packages log diagnostics through zap and are silent by default. SetLogger
// installs a logger everywhere at once.
package jdecomp
