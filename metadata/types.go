package metadata

import (
	"strings"
)

// TypeReference is a reference to a JVM type.
//
// Every implementation belongs to this package; see the package documentation for
// the list of variants.
type TypeReference interface {
	Operand

	// SimpleName is the unqualified source name ("String", "int", "T").
	SimpleName() string
	// FullName is the dotted source name ("java.lang.String").
	FullName() string
	// InternalName is the slash-separated binary name ("java/lang/String").
	// Primitives return their descriptor letter.
	InternalName() string
	// Resolve returns the resolved definition, or nil if none is available.
	Resolve() *TypeDefinition

	typeReference()
}

// PrimitiveKind enumerates the JVM primitive types and void.
type PrimitiveKind uint8

const (
	KindBoolean PrimitiveKind = iota
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindVoid
)

var primitiveInfo = [...]struct {
	keyword    string
	descriptor byte
}{
	KindBoolean: {"boolean", 'Z'},
	KindByte:    {"byte", 'B'},
	KindChar:    {"char", 'C'},
	KindShort:   {"short", 'S'},
	KindInt:     {"int", 'I'},
	KindLong:    {"long", 'J'},
	KindFloat:   {"float", 'F'},
	KindDouble:  {"double", 'D'},
	KindVoid:    {"void", 'V'},
}

// Keyword returns the source keyword ("int").
func (k PrimitiveKind) Keyword() string {
	if int(k) < len(primitiveInfo) {
		return primitiveInfo[k].keyword
	}
	return "unknown"
}

// Descriptor returns the descriptor letter ('I').
func (k PrimitiveKind) Descriptor() byte {
	if int(k) < len(primitiveInfo) {
		return primitiveInfo[k].descriptor
	}
	return 0
}

// IsDoubleWord reports whether values of this kind occupy two stack slots.
func (k PrimitiveKind) IsDoubleWord() bool {
	return k == KindLong || k == KindDouble
}

func (k PrimitiveKind) String() string {
	return k.Keyword()
}

// PrimitiveType is a primitive type or void. Use the package-level values
// (Int, Long, ...) instead of constructing new ones.
type PrimitiveType struct {
	Kind PrimitiveKind
}

func (t *PrimitiveType) SimpleName() string       { return t.Kind.Keyword() }
func (t *PrimitiveType) FullName() string         { return t.Kind.Keyword() }
func (t *PrimitiveType) InternalName() string     { return string(t.Kind.Descriptor()) }
func (t *PrimitiveType) Resolve() *TypeDefinition { return nil }
func (t *PrimitiveType) OperandKind() OperandKind { return OperandType }
func (t *PrimitiveType) String() string           { return t.Kind.Keyword() }
func (*PrimitiveType) typeReference()             {}

// ClassType is a named reference to a class or interface. Definition is set by the
// resolution layer when the class could be loaded; the formatter falls back to the
// reference's own names when it is nil.
type ClassType struct {
	// Package is the dotted package name; empty for the default package.
	Package string
	// Name is the simple name. For nested classes it excludes the enclosing class.
	Name string
	// DeclaringType is the enclosing class of a nested class.
	DeclaringType *ClassType
	// GenericParameters are the type variables declared by the referenced class, if
	// the reference carries them.
	GenericParameters []*GenericParameter
	// Definition is the resolved class, or nil.
	Definition *TypeDefinition
}

// NewClassType creates an unresolved reference from an internal name such as
// "java/util/Map$Entry".
func NewClassType(internalName string) *ClassType {
	pkg := ""
	simple := internalName
	if i := strings.LastIndexByte(internalName, '/'); i >= 0 {
		pkg = strings.ReplaceAll(internalName[:i], "/", ".")
		simple = internalName[i+1:]
	}

	parts := splitNested(simple)
	var t *ClassType
	for _, part := range parts {
		t = &ClassType{Package: pkg, Name: part, DeclaringType: t}
	}
	return t
}

// splitNested splits "Outer$Inner" into its nesting chain. Leading, trailing and
// doubled '$' characters stay part of the name.
func splitNested(name string) []string {
	var parts []string
	start := 0
	for i := 1; i < len(name)-1; i++ {
		if name[i] == '$' && name[i-1] != '$' && name[i+1] != '$' && i > start {
			parts = append(parts, name[start:i])
			start = i + 1
		}
	}
	return append(parts, name[start:])
}

func (t *ClassType) SimpleName() string { return t.Name }

func (t *ClassType) FullName() string {
	if t.DeclaringType != nil {
		return t.DeclaringType.FullName() + "." + t.Name
	}
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "." + t.Name
}

func (t *ClassType) InternalName() string {
	if t.DeclaringType != nil {
		return t.DeclaringType.InternalName() + "$" + t.Name
	}
	if t.Package == "" {
		return t.Name
	}
	return strings.ReplaceAll(t.Package, ".", "/") + "/" + t.Name
}

func (t *ClassType) Resolve() *TypeDefinition { return t.Definition }
func (t *ClassType) OperandKind() OperandKind { return OperandType }
func (t *ClassType) String() string           { return t.FullName() }
func (*ClassType) typeReference()             {}

// TypeDefinition is a resolved class or interface.
type TypeDefinition struct {
	ClassType

	// BaseType is the superclass; nil for java.lang.Object and interfaces.
	BaseType TypeReference
	// Interfaces are the explicitly declared superinterfaces.
	Interfaces []TypeReference
	// IsInterface is set for interfaces and annotation types.
	IsInterface bool
}

// NewTypeDefinition creates a definition from an internal name.
func NewTypeDefinition(internalName string) *TypeDefinition {
	return &TypeDefinition{ClassType: *NewClassType(internalName)}
}

// Resolve returns the definition itself.
func (d *TypeDefinition) Resolve() *TypeDefinition { return d }

// Reference returns a reference bound to this definition.
func (d *TypeDefinition) Reference() *ClassType {
	ref := d.ClassType
	ref.Definition = d
	return &ref
}

// ArrayType is a one-dimensional array of ElementType. Multi-dimensional arrays
// nest ArrayType values.
type ArrayType struct {
	ElementType TypeReference
}

// NewArrayType wraps element in the given number of array dimensions.
func NewArrayType(element TypeReference, dimensions int) TypeReference {
	t := element
	for i := 0; i < dimensions; i++ {
		t = &ArrayType{ElementType: t}
	}
	return t
}

// Dimensions returns the number of nested array levels.
func (t *ArrayType) Dimensions() int {
	n := 0
	var cur TypeReference = t
	for {
		a, ok := cur.(*ArrayType)
		if !ok {
			return n
		}
		n++
		cur = a.ElementType
	}
}

func (t *ArrayType) SimpleName() string       { return t.ElementType.SimpleName() + "[]" }
func (t *ArrayType) FullName() string         { return t.ElementType.FullName() + "[]" }
func (t *ArrayType) InternalName() string     { return "[" + erasedDescriptor(t.ElementType) }
func (t *ArrayType) Resolve() *TypeDefinition { return nil }
func (t *ArrayType) OperandKind() OperandKind { return OperandType }
func (t *ArrayType) String() string           { return t.FullName() }
func (*ArrayType) typeReference()             {}

// GenericParameter is a type variable. A nil Bound means java.lang.Object.
type GenericParameter struct {
	Name     string
	Bound    TypeReference
	Position int
}

// ExtendsBound returns the declared bound or java.lang.Object.
func (t *GenericParameter) ExtendsBound() TypeReference {
	if t.Bound == nil {
		return Object
	}
	return t.Bound
}

func (t *GenericParameter) SimpleName() string       { return t.Name }
func (t *GenericParameter) FullName() string         { return t.Name }
func (t *GenericParameter) InternalName() string     { return t.Name }
func (t *GenericParameter) Resolve() *TypeDefinition { return nil }
func (t *GenericParameter) OperandKind() OperandKind { return OperandType }
func (t *GenericParameter) String() string           { return t.Name }
func (*GenericParameter) typeReference()             {}

// WildcardType is a wildcard type argument. At most one of Extends and Super is set;
// both nil is the unbounded wildcard.
type WildcardType struct {
	Extends TypeReference
	Super   TypeReference
}

// HasExtendsBound reports whether the wildcard has an explicit extends bound.
func (t *WildcardType) HasExtendsBound() bool { return t.Extends != nil }

// HasSuperBound reports whether the wildcard has a super bound.
func (t *WildcardType) HasSuperBound() bool { return t.Super != nil }

// ExtendsBound returns the extends bound or java.lang.Object.
func (t *WildcardType) ExtendsBound() TypeReference {
	if t.Extends == nil {
		return Object
	}
	return t.Extends
}

func (t *WildcardType) SimpleName() string {
	switch {
	case t.Super != nil:
		return "? super " + t.Super.SimpleName()
	case t.Extends != nil:
		return "? extends " + t.Extends.SimpleName()
	}
	return "?"
}

func (t *WildcardType) FullName() string {
	switch {
	case t.Super != nil:
		return "? super " + t.Super.FullName()
	case t.Extends != nil:
		return "? extends " + t.Extends.FullName()
	}
	return "?"
}

func (t *WildcardType) InternalName() string     { return t.ExtendsBound().InternalName() }
func (t *WildcardType) Resolve() *TypeDefinition { return nil }
func (t *WildcardType) OperandKind() OperandKind { return OperandType }
func (t *WildcardType) String() string           { return t.FullName() }
func (*WildcardType) typeReference()             {}

// CompoundType is an intersection type. BaseType may be nil when every
// component is an interface.
type CompoundType struct {
	BaseType   TypeReference
	Interfaces []TypeReference
}

// Erasure returns the single representative supertype used when generics are erased:
// the base type, else the first interface, else java.lang.Object.
func (t *CompoundType) Erasure() TypeReference {
	if t.BaseType != nil {
		return t.BaseType
	}
	if len(t.Interfaces) > 0 {
		return t.Interfaces[0]
	}
	return Object
}

func (t *CompoundType) parts() []TypeReference {
	parts := make([]TypeReference, 0, len(t.Interfaces)+1)
	if t.BaseType != nil {
		parts = append(parts, t.BaseType)
	}
	return append(parts, t.Interfaces...)
}

func (t *CompoundType) SimpleName() string {
	return joinNames(t.parts(), TypeReference.SimpleName)
}

func (t *CompoundType) FullName() string {
	return joinNames(t.parts(), TypeReference.FullName)
}

func (t *CompoundType) InternalName() string     { return t.Erasure().InternalName() }
func (t *CompoundType) Resolve() *TypeDefinition { return t.Erasure().Resolve() }
func (t *CompoundType) OperandKind() OperandKind { return OperandType }
func (t *CompoundType) String() string           { return t.FullName() }
func (*CompoundType) typeReference()             {}

func joinNames(types []TypeReference, name func(TypeReference) string) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = name(t)
	}
	return strings.Join(names, " & ")
}

// GenericInstance is a parameterized type such as List<String>. GenericType is the
// generic class (a *ClassType or *TypeDefinition).
type GenericInstance struct {
	GenericType   TypeReference
	TypeArguments []TypeReference
}

func (t *GenericInstance) SimpleName() string       { return t.GenericType.SimpleName() }
func (t *GenericInstance) FullName() string         { return t.GenericType.FullName() }
func (t *GenericInstance) InternalName() string     { return t.GenericType.InternalName() }
func (t *GenericInstance) Resolve() *TypeDefinition { return t.GenericType.Resolve() }
func (t *GenericInstance) OperandKind() OperandKind { return OperandType }
func (*GenericInstance) typeReference()             {}

func (t *GenericInstance) String() string {
	args := make([]string, len(t.TypeArguments))
	for i, a := range t.TypeArguments {
		args[i] = a.FullName()
	}
	return t.FullName() + "<" + strings.Join(args, ", ") + ">"
}

// IsPrimitive reports whether t is a primitive type or void.
func IsPrimitive(t TypeReference) bool {
	_, ok := t.(*PrimitiveType)
	return ok
}

// IsVoid reports whether t is void.
func IsVoid(t TypeReference) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Kind == KindVoid
}

// IsDoubleWord reports whether values of type t occupy two operand stack slots.
func IsDoubleWord(t TypeReference) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Kind.IsDoubleWord()
}

// IsGeneric reports whether t carries type arguments or declares type parameters.
func IsGeneric(t TypeReference) bool {
	switch t := t.(type) {
	case *GenericInstance:
		return true
	case *TypeDefinition:
		return len(t.GenericParameters) > 0
	case *ClassType:
		return len(t.GenericParameters) > 0
	}
	return false
}

// TypeArguments returns the explicit type arguments of a generic instance, or the
// declared generic parameters of a generic class. A generic instance without
// explicit arguments falls back to its definition's parameters.
func TypeArguments(t TypeReference) []TypeReference {
	switch t := t.(type) {
	case *GenericInstance:
		if len(t.TypeArguments) > 0 {
			return t.TypeArguments
		}
		if def := t.Resolve(); def != nil {
			return genericParametersAsTypes(def.GenericParameters)
		}
		return genericParametersAsTypes(classGenericParameters(t.GenericType))
	case *TypeDefinition:
		return genericParametersAsTypes(t.GenericParameters)
	case *ClassType:
		return genericParametersAsTypes(t.GenericParameters)
	}
	return nil
}

func classGenericParameters(t TypeReference) []*GenericParameter {
	switch t := t.(type) {
	case *TypeDefinition:
		return t.GenericParameters
	case *ClassType:
		return t.GenericParameters
	}
	return nil
}

func genericParametersAsTypes(params []*GenericParameter) []TypeReference {
	if len(params) == 0 {
		return nil
	}
	types := make([]TypeReference, len(params))
	for i, p := range params {
		types[i] = p
	}
	return types
}

// erasedDescriptor renders the raw descriptor of t; used for array internal names.
func erasedDescriptor(t TypeReference) string {
	switch t := t.(type) {
	case *PrimitiveType:
		return string(t.Kind.Descriptor())
	case *ArrayType:
		return "[" + erasedDescriptor(t.ElementType)
	case *GenericParameter:
		return erasedDescriptor(t.ExtendsBound())
	case *WildcardType:
		return erasedDescriptor(t.ExtendsBound())
	case *CompoundType:
		return erasedDescriptor(t.Erasure())
	}
	return "L" + t.InternalName() + ";"
}
