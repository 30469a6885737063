package format

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/jdecomp/errors"
	"github.com/wippyai/jdecomp/metadata"
	"github.com/wippyai/jdecomp/output"
)

// WriteType writes t in the given syntax. Type definitions and type variables are
// written as definitions; everything else as references.
func WriteType(out output.Output, t metadata.TypeReference, syntax NameSyntax) error {
	return WriteTypeAs(out, t, syntax, isDefinition(t))
}

// WriteTypeAs writes t in the given syntax. When isDef is set the name is written
// as a definition token, and a type variable in a source-name syntax is followed
// by its bound.
func WriteTypeAs(out output.Output, t metadata.TypeReference, syntax NameSyntax, isDef bool) error {
	if out == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"output"}, "Output")
	}
	if !syntax.IsValid() {
		return errors.Unsupported(errors.PhaseFormat, "name syntax "+syntax.String())
	}
	f := &formatter{out: out}
	return f.formatType(t, syntax, isDef)
}

// WriteGenericSignature writes the signature form of a type variable declaration
// ("T:Ljava/lang/Number;") or of a class header with its type parameters and
// supertypes.
func WriteGenericSignature(out output.Output, t metadata.TypeReference) error {
	if out == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"output"}, "Output")
	}
	f := &formatter{out: out}
	return f.formatGenericSignature(t)
}

func isDefinition(t metadata.TypeReference) bool {
	switch t.(type) {
	case *metadata.TypeDefinition, *metadata.GenericParameter:
		return true
	}
	return false
}

// typeStack holds the types currently being written.
type typeStack struct {
	items []metadata.TypeReference
}

func (s *typeStack) push(t metadata.TypeReference) { s.items = append(s.items, t) }
func (s *typeStack) pop()                          { s.items = s.items[:len(s.items)-1] }

func (s *typeStack) contains(t metadata.TypeReference) bool {
	for _, item := range s.items {
		if metadata.SameType(item, t) {
			return true
		}
	}
	return false
}

// formatter carries one write through its recursion. It is not reused.
type formatter struct {
	out   output.Output
	stack typeStack
}

func (f *formatter) formatType(t metadata.TypeReference, syntax NameSyntax, isDef bool) error {
	if isNilType(t) {
		return errors.NilPointer(errors.PhaseFormat, []string{"type"}, "TypeReference")
	}

	switch t := t.(type) {
	case *metadata.GenericParameter:
		return f.genericParameter(t, syntax, isDef)
	case *metadata.WildcardType:
		return f.wildcard(t, syntax)
	case *metadata.CompoundType:
		return f.compound(t, syntax)
	case *metadata.ArrayType:
		if syntax.isBinary() {
			f.out.WriteDelimiter("[")
			return f.formatType(t.ElementType, syntax, false)
		}
		if err := f.formatType(t.ElementType, syntax, false); err != nil {
			return err
		}
		f.out.WriteDelimiter("[]")
		return nil
	}
	return f.named(t, syntax, isDef)
}

// isNilType reports whether t is nil or a typed nil pointer. Every variant is a
// pointer type. A generic instance without its generic type counts as nil.
func isNilType(t metadata.TypeReference) bool {
	if t == nil || reflect.ValueOf(t).IsNil() {
		return true
	}
	if g, ok := t.(*metadata.GenericInstance); ok {
		return isNilType(g.GenericType)
	}
	return false
}

func (f *formatter) genericParameter(t *metadata.GenericParameter, syntax NameSyntax, isDef bool) error {
	if syntax.isBinary() {
		f.out.WriteDelimiter("T")
		f.out.WriteReference(t.SimpleName(), t, false)
		f.out.WriteDelimiter(";")
		return nil
	}

	f.out.WriteReference(t.FullName(), t, false)

	bound := t.Bound
	if !isDef || bound == nil || f.stack.contains(bound) || metadata.IsObject(bound) {
		return nil
	}

	f.out.WriteKeyword(" extends ")
	f.stack.push(t)
	defer f.stack.pop()
	return f.formatType(bound, syntax, false)
}

func (f *formatter) wildcard(t *metadata.WildcardType, syntax NameSyntax) error {
	switch syntax {
	case Descriptor:
		return f.formatType(t.ExtendsBound(), syntax, false)
	case Signature, ErasedSignature:
		switch {
		case t.HasSuperBound():
			f.out.Write("-")
			return f.formatType(t.Super, syntax, false)
		case t.HasExtendsBound():
			f.out.Write("+")
			return f.formatType(t.Extends, syntax, false)
		}
		f.out.Write("*")
		return nil
	}

	f.out.Write("?")
	switch {
	case t.HasSuperBound():
		f.out.WriteKeyword(" super ")
		return f.formatType(t.Super, syntax, false)
	case t.HasExtendsBound():
		f.out.WriteKeyword(" extends ")
		return f.formatType(t.Extends, syntax, false)
	}
	return nil
}

func (f *formatter) compound(t *metadata.CompoundType, syntax NameSyntax) error {
	switch syntax {
	case Signature:
		if t.BaseType != nil {
			if err := f.formatType(t.BaseType, syntax, false); err != nil {
				return err
			}
		}
		for _, iface := range t.Interfaces {
			f.out.WriteDelimiter(":")
			if err := f.formatType(iface, syntax, false); err != nil {
				return err
			}
		}
		return nil
	case ErasedSignature, Descriptor:
		return f.formatType(t.Erasure(), syntax, false)
	}

	first := true
	if t.BaseType != nil {
		if err := f.formatType(t.BaseType, syntax, false); err != nil {
			return err
		}
		first = false
	}
	for _, iface := range t.Interfaces {
		if !first {
			f.out.WriteDelimiter(" & ")
		}
		if err := f.formatType(iface, syntax, false); err != nil {
			return err
		}
		first = false
	}
	return nil
}

// named writes primitives, classes, definitions and generic instances.
func (f *formatter) named(t metadata.TypeReference, syntax NameSyntax, isDef bool) error {
	f.stack.push(t)
	defer f.stack.pop()

	var source metadata.TypeReference = t
	if def := t.Resolve(); def != nil {
		source = def
	} else if !metadata.IsPrimitive(t) {
		Logger().Debug("unresolved type, using reference names",
			zap.String("type", t.InternalName()),
			zap.Stringer("syntax", syntax))
	}

	primitive := metadata.IsPrimitive(t)

	var name string
	switch syntax {
	case TypeName:
		name = source.FullName()
	case ShortTypeName:
		name = source.SimpleName()
	case Descriptor:
		name = source.InternalName()
	default:
		if !metadata.IsPrimitive(source) {
			f.out.WriteDelimiter("L")
		}
		name = source.InternalName()
	}

	switch {
	case primitive && !syntax.isBinary():
		f.out.WriteKeyword(name)
	case isDef:
		f.out.WriteDefinition(name, t, false)
	default:
		f.out.WriteReference(name, t, false)
	}

	if metadata.IsGeneric(t) && syntax != Descriptor && syntax != ErasedSignature {
		if err := f.typeArguments(t, syntax); err != nil {
			return err
		}
	}

	if !primitive && (syntax == Signature || syntax == ErasedSignature) {
		f.out.WriteDelimiter(";")
	}
	return nil
}

func (f *formatter) typeArguments(t metadata.TypeReference, syntax NameSyntax) error {
	f.stack.push(t)
	defer f.stack.pop()

	args := metadata.TypeArguments(t)
	if len(args) == 0 {
		return nil
	}

	f.out.WriteDelimiter("<")
	for i, arg := range args {
		if i > 0 && syntax != Signature {
			f.out.WriteDelimiter(", ")
		}
		if err := f.formatType(arg, syntax, false); err != nil {
			return err
		}
	}
	f.out.WriteDelimiter(">")
	return nil
}

func (f *formatter) formatGenericSignature(t metadata.TypeReference) error {
	if isNilType(t) {
		return errors.NilPointer(errors.PhaseFormat, []string{"type"}, "TypeReference")
	}

	if gp, ok := t.(*metadata.GenericParameter); ok {
		bound := gp.ExtendsBound()
		f.out.WriteDefinition(gp.Name, gp, false)
		if isNilType(bound) {
			return errors.NilPointer(errors.PhaseFormat, []string{"type", "bound"}, "TypeReference")
		}
		if def := bound.Resolve(); def != nil && def.IsInterface {
			f.out.WriteDelimiter(":")
		}
		f.out.WriteDelimiter(":")
		return f.formatType(bound, Signature, false)
	}

	if metadata.IsGeneric(t) {
		f.out.WriteDelimiter("<")
		for _, arg := range metadata.TypeArguments(t) {
			if err := f.formatGenericSignature(arg); err != nil {
				return err
			}
		}
		f.out.WriteDelimiter(">")
	}

	def := t.Resolve()
	if def == nil {
		return nil
	}

	base := def.BaseType
	if base == nil {
		base = metadata.Object
	}
	if err := f.formatType(base, Signature, false); err != nil {
		return err
	}
	for _, iface := range def.Interfaces {
		if err := f.formatType(iface, Signature, false); err != nil {
			return err
		}
	}
	return nil
}
