package metadata

// Primitive types. These are shared singletons; compare with SameType or by Kind.
var (
	Boolean = &PrimitiveType{Kind: KindBoolean}
	Byte    = &PrimitiveType{Kind: KindByte}
	Char    = &PrimitiveType{Kind: KindChar}
	Short   = &PrimitiveType{Kind: KindShort}
	Int     = &PrimitiveType{Kind: KindInt}
	Long    = &PrimitiveType{Kind: KindLong}
	Float   = &PrimitiveType{Kind: KindFloat}
	Double  = &PrimitiveType{Kind: KindDouble}
	Void    = &PrimitiveType{Kind: KindVoid}
)

// Well-known classes.
var (
	// Object is java.lang.Object, the universal top type.
	Object = NewTypeDefinition("java/lang/Object")
	// String is java.lang.String.
	String = &TypeDefinition{
		ClassType:  ClassType{Package: "java.lang", Name: "String"},
		BaseType:   Object,
		Interfaces: []TypeReference{NewClassType("java/io/Serializable"), NewClassType("java/lang/CharSequence")},
	}
	// BoxedFloat is java.lang.Float.
	BoxedFloat = &TypeDefinition{
		ClassType: ClassType{Package: "java.lang", Name: "Float"},
		BaseType:  NewClassType("java/lang/Number"),
	}
	// BoxedDouble is java.lang.Double.
	BoxedDouble = &TypeDefinition{
		ClassType: ClassType{Package: "java.lang", Name: "Double"},
		BaseType:  NewClassType("java/lang/Number"),
	}
)

// PrimitiveByDescriptor returns the primitive type for a descriptor letter.
func PrimitiveByDescriptor(c byte) (*PrimitiveType, bool) {
	switch c {
	case 'Z':
		return Boolean, true
	case 'B':
		return Byte, true
	case 'C':
		return Char, true
	case 'S':
		return Short, true
	case 'I':
		return Int, true
	case 'J':
		return Long, true
	case 'F':
		return Float, true
	case 'D':
		return Double, true
	case 'V':
		return Void, true
	}
	return nil, false
}

// PrimitiveByTypeCode returns the element type for a NEWARRAY type code (T_BOOLEAN=4 .. T_LONG=11).
func PrimitiveByTypeCode(code int) (*PrimitiveType, bool) {
	switch code {
	case 4:
		return Boolean, true
	case 5:
		return Char, true
	case 6:
		return Float, true
	case 7:
		return Double, true
	case 8:
		return Byte, true
	case 9:
		return Short, true
	case 10:
		return Int, true
	case 11:
		return Long, true
	}
	return nil, false
}
