package metadata

// SameType reports whether a and b denote the same type. Classes compare by internal
// name whether or not they are resolved; type variables compare by name.
func SameType(a, b TypeReference) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}

	switch a := a.(type) {
	case *PrimitiveType:
		b, ok := b.(*PrimitiveType)
		return ok && a.Kind == b.Kind
	case *ClassType, *TypeDefinition:
		switch b.(type) {
		case *ClassType, *TypeDefinition:
			return a.InternalName() == b.InternalName()
		}
		return false
	case *ArrayType:
		b, ok := b.(*ArrayType)
		return ok && SameType(a.ElementType, b.ElementType)
	case *GenericParameter:
		b, ok := b.(*GenericParameter)
		return ok && a.Name == b.Name
	case *WildcardType:
		b, ok := b.(*WildcardType)
		return ok && SameType(a.Extends, b.Extends) && SameType(a.Super, b.Super)
	case *CompoundType:
		b, ok := b.(*CompoundType)
		return ok && SameType(a.BaseType, b.BaseType) && sameTypes(a.Interfaces, b.Interfaces)
	case *GenericInstance:
		b, ok := b.(*GenericInstance)
		return ok && SameType(a.GenericType, b.GenericType) && sameTypes(a.TypeArguments, b.TypeArguments)
	}
	return false
}

func sameTypes(a, b []TypeReference) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !SameType(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsObject reports whether t is java.lang.Object.
func IsObject(t TypeReference) bool {
	return SameType(t, Object)
}
