// Package format writes JVM types, member references and literal values to an
// output.Output as classified tokens.
//
// A type can be written in one of five name syntaxes. Given List<String>:
//
//	Signature        Ljava/util/List<Ljava/lang/String;>;
//	ErasedSignature  Ljava/util/List;
//	Descriptor       java/util/List
//	TypeName         java.util.List<java.lang.String>
//	ShortTypeName    List<String>
//
// The writers never decide how a token looks on screen. Keywords, delimiters,
// definitions and references are handed to the sink, which may color, link or
// simply concatenate them.
//
// Type variables whose bounds mention themselves (E extends Enum<E>) are written
// once. The formatter tracks the types it is currently inside and does not expand
// a bound it is already writing.
package format
