package format

import (
	"github.com/wippyai/jdecomp/errors"
	"github.com/wippyai/jdecomp/metadata"
	"github.com/wippyai/jdecomp/output"
)

// WriteMethodSignature writes a method signature in signature form:
// "<T:Ljava/lang/Object;>(TT;I)V". Synthetic parameters are omitted.
func WriteMethodSignature(out output.Output, sig metadata.MethodSignature) error {
	if out == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"output"}, "Output")
	}
	f := &formatter{out: out}
	return f.formatMethodSignature(sig)
}

// WriteMethod writes "declaring/Type.name:signature".
func WriteMethod(out output.Output, m *metadata.MethodReference) error {
	if out == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"output"}, "Output")
	}
	if m == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"method"}, "MethodReference")
	}

	f := &formatter{out: out}
	if err := f.formatType(m.DeclaringType, Descriptor, false); err != nil {
		return err
	}
	out.WriteDelimiter(".")
	out.WriteReference(m.Name, m, false)
	out.WriteDelimiter(":")
	return f.formatMethodSignature(m)
}

// WriteField writes "declaring/Type.name:Lfield/Type;".
func WriteField(out output.Output, field *metadata.FieldReference) error {
	if out == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"output"}, "Output")
	}
	if field == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"field"}, "FieldReference")
	}

	f := &formatter{out: out}
	if err := f.formatType(field.DeclaringType, Descriptor, false); err != nil {
		return err
	}
	out.WriteDelimiter(".")
	out.WriteReference(field.Name, field, false)
	out.WriteDelimiter(":")
	return f.formatType(field.FieldType, Signature, false)
}

// WriteMethodHandle writes the handle kind followed by the target method:
// "invokestatic java/lang/Integer.valueOf:(I)Ljava/lang/Integer;".
func WriteMethodHandle(out output.Output, h *metadata.MethodHandle) error {
	if out == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"output"}, "Output")
	}
	if h == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"handle"}, "MethodHandle")
	}
	out.WriteReference(h.Kind.String(), h, false)
	out.Write(" ")
	return WriteMethod(out, h.Method)
}

// WriteDynamicCallSite writes "name:signature" using the call site's own type.
func WriteDynamicCallSite(out output.Output, site *metadata.DynamicCallSite) error {
	if out == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"output"}, "Output")
	}
	if site == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"call_site"}, "DynamicCallSite")
	}
	if site.Type == nil {
		return errors.MissingSignature(errors.PhaseFormat, "invokedynamic", site)
	}
	out.WriteReference(site.Name, site.Type, false)
	out.WriteDelimiter(":")
	return WriteMethodSignature(out, site.Type)
}

func (f *formatter) formatMethodSignature(sig metadata.MethodSignature) error {
	if sig == nil || isNilSignature(sig) {
		return errors.NilPointer(errors.PhaseFormat, []string{"signature"}, "MethodSignature")
	}

	if metadata.IsGenericDefinition(sig) {
		f.out.WriteDelimiter("<")
		for _, gp := range sig.GenericParameters() {
			if err := f.formatGenericSignature(gp); err != nil {
				return err
			}
		}
		f.out.WriteDelimiter(">")
	}

	f.out.WriteDelimiter("(")
	for _, p := range sig.Parameters() {
		if p.Synthetic {
			continue
		}
		if err := f.formatType(p.Type, Signature, false); err != nil {
			return err
		}
	}
	f.out.WriteDelimiter(")")

	return f.formatType(sig.ReturnType(), Signature, false)
}

func isNilSignature(sig metadata.MethodSignature) bool {
	switch s := sig.(type) {
	case *metadata.MethodType:
		return s == nil
	case *metadata.MethodReference:
		return s == nil
	}
	return false
}
