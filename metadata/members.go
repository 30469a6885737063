package metadata

import (
	"strconv"
	"strings"
)

// ParameterDefinition is a method parameter. Synthetic parameters are inserted by the
// compiler (outer instances, enum name/ordinal) and are not part of the source signature.
type ParameterDefinition struct {
	Name      string
	Type      TypeReference
	Position  int
	Synthetic bool
}

// HasName reports whether the parameter carries a source name.
func (p *ParameterDefinition) HasName() bool            { return p.Name != "" }
func (p *ParameterDefinition) OperandKind() OperandKind { return OperandParameter }

// MethodSignature is the shape of a method: parameters, return type and any
// generic parameters it declares.
type MethodSignature interface {
	Parameters() []*ParameterDefinition
	ReturnType() TypeReference
	GenericParameters() []*GenericParameter
}

// IsGenericDefinition reports whether sig declares its own type parameters.
func IsGenericDefinition(sig MethodSignature) bool {
	return len(sig.GenericParameters()) > 0
}

// MethodType is a free-standing method signature, as used by dynamic call sites.
type MethodType struct {
	Params     []*ParameterDefinition
	Return     TypeReference
	TypeParams []*GenericParameter
}

// NewMethodType builds a signature from parameter types, numbering parameters by position.
func NewMethodType(ret TypeReference, params ...TypeReference) *MethodType {
	m := &MethodType{Return: ret}
	for i, p := range params {
		m.Params = append(m.Params, &ParameterDefinition{Type: p, Position: i})
	}
	return m
}

func (m *MethodType) Parameters() []*ParameterDefinition     { return m.Params }
func (m *MethodType) GenericParameters() []*GenericParameter { return m.TypeParams }
func (m *MethodType) OperandKind() OperandKind               { return OperandMethodSignature }

// ReturnType returns the declared return type; nil means void.
func (m *MethodType) ReturnType() TypeReference {
	if m.Return == nil {
		return Void
	}
	return m.Return
}

// MethodReference is a reference to a method on DeclaringType.
type MethodReference struct {
	MethodType

	DeclaringType TypeReference
	Name          string
	Static        bool
}

func (m *MethodReference) OperandKind() OperandKind { return OperandMethod }

// IsConstructor reports whether the method is an instance initializer.
func (m *MethodReference) IsConstructor() bool { return m.Name == "<init>" }

// IsTypeInitializer reports whether the method is a static initializer.
func (m *MethodReference) IsTypeInitializer() bool { return m.Name == "<clinit>" }

func (m *MethodReference) String() string {
	var b strings.Builder
	if m.DeclaringType != nil {
		b.WriteString(m.DeclaringType.FullName())
		b.WriteByte('.')
	}
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Type.FullName())
	}
	b.WriteByte(')')
	return b.String()
}

// FieldReference is a reference to a field on DeclaringType.
type FieldReference struct {
	DeclaringType TypeReference
	Name          string
	FieldType     TypeReference
	Static        bool
}

func (f *FieldReference) OperandKind() OperandKind { return OperandField }

func (f *FieldReference) String() string {
	if f.DeclaringType == nil {
		return f.Name
	}
	return f.DeclaringType.FullName() + "." + f.Name
}

// VariableReference is a local variable slot, optionally named from debug metadata.
type VariableReference struct {
	Name string
	Type TypeReference
	Slot int
}

// HasName reports whether the variable carries a source name.
func (v *VariableReference) HasName() bool            { return v.Name != "" }
func (v *VariableReference) OperandKind() OperandKind { return OperandVariable }

func (v *VariableReference) String() string {
	if v.HasName() {
		return v.Name
	}
	return "$" + strconv.Itoa(v.Slot)
}

// MethodHandleKind is the reference kind of a constant pool method handle.
type MethodHandleKind uint8

const (
	HandleGetField MethodHandleKind = iota + 1
	HandleGetStatic
	HandlePutField
	HandlePutStatic
	HandleInvokeVirtual
	HandleInvokeStatic
	HandleInvokeSpecial
	HandleNewInvokeSpecial
	HandleInvokeInterface
)

var handleKindNames = [...]string{
	HandleGetField:         "getfield",
	HandleGetStatic:        "getstatic",
	HandlePutField:         "putfield",
	HandlePutStatic:        "putstatic",
	HandleInvokeVirtual:    "invokevirtual",
	HandleInvokeStatic:     "invokestatic",
	HandleInvokeSpecial:    "invokespecial",
	HandleNewInvokeSpecial: "newinvokespecial",
	HandleInvokeInterface:  "invokeinterface",
}

func (k MethodHandleKind) String() string {
	if int(k) < len(handleKindNames) && handleKindNames[k] != "" {
		return handleKindNames[k]
	}
	return "unknown"
}

// MethodHandle is a constant pool method handle.
type MethodHandle struct {
	Kind   MethodHandleKind
	Method *MethodReference
}

func (h *MethodHandle) OperandKind() OperandKind { return OperandMethodHandle }

// DynamicCallSite is the operand of invokedynamic. Its call shape comes from Type,
// never from the bootstrap method.
type DynamicCallSite struct {
	BootstrapMethod      *MethodHandle
	BootstrapArguments   []Operand
	Type                 *MethodType
	Name                 string
	BootstrapMethodIndex int
}

func (c *DynamicCallSite) OperandKind() OperandKind { return OperandDynamicCallSite }
