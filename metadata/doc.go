// Package metadata defines the resolved type and member model consumed by the
// decompiler core.
//
// The model is produced once by the class loading layer and is read-only afterwards.
// Nothing in this package mutates a reference after construction, so a single
// graph may be shared by concurrent decompilation jobs.
//
// # Types
//
// TypeReference is a closed set of variants:
//
//	*PrimitiveType     boolean, byte, char, short, int, long, float, double, void
//	*ClassType         a named reference (package, simple name, optional resolved definition)
//	*TypeDefinition    a resolved class with supertype, interfaces and generic parameters
//	*ArrayType         an array of any other variant
//	*GenericParameter  a type variable with its extends bound
//	*WildcardType      ?, ? extends T, ? super T
//	*CompoundType      an intersection type (base & I1 & I2)
//	*GenericInstance   a parameterized type (List<String>)
//
// Consumers dispatch with a type switch; the unexported marker method keeps the set
// closed to this package.
//
// # Operands
//
// Operand is anything an instruction may carry: types, members, local variables,
// dynamic call sites and literal constants. OperandKind classifies an operand without
// a type switch.
//
// # Descriptors
//
// ParseDescriptor, ParseSignature and ParseMethodDescriptor build unresolved references
// from raw JVM descriptors and generic signatures:
//
//	t, _ := metadata.ParseSignature("Ljava/util/List<Ljava/lang/String;>;")
//	m, _ := metadata.ParseMethodDescriptor("(Ljava/lang/String;D)I")
package metadata
