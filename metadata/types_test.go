package metadata_test

import (
	"testing"

	"github.com/wippyai/jdecomp/metadata"
)

func TestPrimitiveNames(t *testing.T) {
	tests := []struct {
		typ        *metadata.PrimitiveType
		keyword    string
		descriptor string
		doubleWord bool
	}{
		{metadata.Boolean, "boolean", "Z", false},
		{metadata.Byte, "byte", "B", false},
		{metadata.Char, "char", "C", false},
		{metadata.Short, "short", "S", false},
		{metadata.Int, "int", "I", false},
		{metadata.Long, "long", "J", true},
		{metadata.Float, "float", "F", false},
		{metadata.Double, "double", "D", true},
		{metadata.Void, "void", "V", false},
	}

	for _, tt := range tests {
		if got := tt.typ.FullName(); got != tt.keyword {
			t.Errorf("FullName() = %q, want %q", got, tt.keyword)
		}
		if got := tt.typ.InternalName(); got != tt.descriptor {
			t.Errorf("%s InternalName() = %q, want %q", tt.keyword, got, tt.descriptor)
		}
		if got := metadata.IsDoubleWord(tt.typ); got != tt.doubleWord {
			t.Errorf("%s IsDoubleWord() = %v, want %v", tt.keyword, got, tt.doubleWord)
		}
		back, ok := metadata.PrimitiveByDescriptor(tt.descriptor[0])
		if !ok || back != tt.typ {
			t.Errorf("PrimitiveByDescriptor(%q) = %v, %v", tt.descriptor, back, ok)
		}
	}
}

func TestClassTypeNames(t *testing.T) {
	tests := []struct {
		internal string
		simple   string
		full     string
	}{
		{"java/lang/String", "String", "java.lang.String"},
		{"java/util/Map$Entry", "Entry", "java.util.Map.Entry"},
		{"Foo", "Foo", "Foo"},
		{"a/b/Outer$Mid$Inner", "Inner", "a.b.Outer.Mid.Inner"},
		{"a/$Proxy", "$Proxy", "a.$Proxy"},
	}

	for _, tt := range tests {
		t.Run(tt.internal, func(t *testing.T) {
			c := metadata.NewClassType(tt.internal)
			if got := c.SimpleName(); got != tt.simple {
				t.Errorf("SimpleName() = %q, want %q", got, tt.simple)
			}
			if got := c.FullName(); got != tt.full {
				t.Errorf("FullName() = %q, want %q", got, tt.full)
			}
			if got := c.InternalName(); got != tt.internal {
				t.Errorf("InternalName() = %q, want %q", got, tt.internal)
			}
		})
	}
}

func TestTypeDefinitionResolve(t *testing.T) {
	def := metadata.NewTypeDefinition("java/util/ArrayList")
	if def.Resolve() != def {
		t.Error("definition should resolve to itself")
	}

	ref := def.Reference()
	if ref.Resolve() != def {
		t.Error("reference should resolve to its definition")
	}
	if ref.FullName() != "java.util.ArrayList" {
		t.Errorf("FullName() = %q", ref.FullName())
	}

	raw := metadata.NewClassType("java/util/ArrayList")
	if raw.Resolve() != nil {
		t.Error("unresolved reference should resolve to nil")
	}
}

func TestArrayType(t *testing.T) {
	arr := metadata.NewArrayType(metadata.Int, 2).(*metadata.ArrayType)
	if arr.Dimensions() != 2 {
		t.Errorf("Dimensions() = %d, want 2", arr.Dimensions())
	}
	if got := arr.FullName(); got != "int[][]" {
		t.Errorf("FullName() = %q, want int[][]", got)
	}
	if got := arr.InternalName(); got != "[[I" {
		t.Errorf("InternalName() = %q, want [[I", got)
	}

	strs := &metadata.ArrayType{ElementType: metadata.String}
	if got := strs.InternalName(); got != "[Ljava/lang/String;" {
		t.Errorf("InternalName() = %q", got)
	}
}

func TestWildcardBounds(t *testing.T) {
	unbounded := &metadata.WildcardType{}
	if unbounded.HasExtendsBound() || unbounded.HasSuperBound() {
		t.Error("unbounded wildcard should have no bounds")
	}
	if !metadata.IsObject(unbounded.ExtendsBound()) {
		t.Error("unbounded wildcard should erase to Object")
	}
	if unbounded.FullName() != "?" {
		t.Errorf("FullName() = %q", unbounded.FullName())
	}

	sup := &metadata.WildcardType{Super: metadata.String}
	if sup.FullName() != "? super java.lang.String" {
		t.Errorf("FullName() = %q", sup.FullName())
	}
}

func TestCompoundErasure(t *testing.T) {
	comparable := metadata.NewClassType("java/lang/Comparable")
	serializable := metadata.NewClassType("java/io/Serializable")
	number := metadata.NewClassType("java/lang/Number")

	tests := []struct {
		name string
		typ  *metadata.CompoundType
		want string
	}{
		{"base wins", &metadata.CompoundType{BaseType: number, Interfaces: []metadata.TypeReference{comparable}}, "java/lang/Number"},
		{"first interface", &metadata.CompoundType{Interfaces: []metadata.TypeReference{comparable, serializable}}, "java/lang/Comparable"},
		{"object", &metadata.CompoundType{}, "java/lang/Object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Erasure().InternalName(); got != tt.want {
				t.Errorf("Erasure() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeArguments(t *testing.T) {
	e := &metadata.GenericParameter{Name: "E"}
	list := metadata.NewTypeDefinition("java/util/List")
	list.GenericParameters = []*metadata.GenericParameter{e}

	if !metadata.IsGeneric(list) {
		t.Error("List<E> definition should be generic")
	}
	if args := metadata.TypeArguments(list); len(args) != 1 || args[0] != e {
		t.Errorf("TypeArguments(definition) = %v", args)
	}

	inst := &metadata.GenericInstance{GenericType: list, TypeArguments: []metadata.TypeReference{metadata.String}}
	if args := metadata.TypeArguments(inst); len(args) != 1 || args[0] != metadata.String {
		t.Errorf("TypeArguments(instance) = %v", args)
	}

	bare := &metadata.GenericInstance{GenericType: list.Reference()}
	if args := metadata.TypeArguments(bare); len(args) != 1 || args[0] != e {
		t.Errorf("TypeArguments(bare instance) = %v, want definition parameters", args)
	}

	if metadata.IsGeneric(metadata.NewClassType("java/util/List")) {
		t.Error("raw reference should not be generic")
	}
}

func TestSameType(t *testing.T) {
	list := metadata.NewClassType("java/util/List")
	listDef := metadata.NewTypeDefinition("java/util/List")

	tests := []struct {
		name string
		a, b metadata.TypeReference
		want bool
	}{
		{"same primitive", metadata.Int, &metadata.PrimitiveType{Kind: metadata.KindInt}, true},
		{"different primitive", metadata.Int, metadata.Long, false},
		{"reference vs definition", list, listDef, true},
		{"object", metadata.NewClassType("java/lang/Object"), metadata.Object, true},
		{"arrays", metadata.NewArrayType(metadata.Int, 1), metadata.NewArrayType(metadata.Int, 1), true},
		{"array depth", metadata.NewArrayType(metadata.Int, 1), metadata.NewArrayType(metadata.Int, 2), false},
		{"type variables", &metadata.GenericParameter{Name: "T"}, &metadata.GenericParameter{Name: "T"}, true},
		{"instances",
			&metadata.GenericInstance{GenericType: list, TypeArguments: []metadata.TypeReference{metadata.String}},
			&metadata.GenericInstance{GenericType: listDef, TypeArguments: []metadata.TypeReference{metadata.String}},
			true},
		{"instance vs raw", &metadata.GenericInstance{GenericType: list}, list, false},
		{"nil", nil, metadata.Int, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metadata.SameType(tt.a, tt.b); got != tt.want {
				t.Errorf("SameType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperandKinds(t *testing.T) {
	tests := []struct {
		operand metadata.Operand
		want    metadata.OperandKind
	}{
		{metadata.Int, metadata.OperandType},
		{metadata.String, metadata.OperandType},
		{&metadata.MethodReference{Name: "run"}, metadata.OperandMethod},
		{metadata.NewMethodType(metadata.Void), metadata.OperandMethodSignature},
		{&metadata.FieldReference{Name: "x"}, metadata.OperandField},
		{&metadata.VariableReference{Slot: 1}, metadata.OperandVariable},
		{&metadata.ParameterDefinition{Position: 0}, metadata.OperandParameter},
		{&metadata.MethodHandle{Kind: metadata.HandleInvokeStatic}, metadata.OperandMethodHandle},
		{&metadata.DynamicCallSite{Name: "apply"}, metadata.OperandDynamicCallSite},
		{metadata.IntConstant(1), metadata.OperandConstant},
		{metadata.NullConstant{}, metadata.OperandConstant},
	}

	for _, tt := range tests {
		if got := tt.operand.OperandKind(); got != tt.want {
			t.Errorf("%T OperandKind() = %v, want %v", tt.operand, got, tt.want)
		}
	}
}

func TestMethodTypeVoidReturn(t *testing.T) {
	m := &metadata.MethodType{}
	if !metadata.IsVoid(m.ReturnType()) {
		t.Error("nil return type should read as void")
	}
}

func TestHandleKindString(t *testing.T) {
	if got := metadata.HandleNewInvokeSpecial.String(); got != "newinvokespecial" {
		t.Errorf("String() = %q", got)
	}
	if got := metadata.MethodHandleKind(0).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}
