package format

// NameSyntax selects how a type name is spelled.
type NameSyntax uint8

const (
	// Signature is the generic signature form: "Ljava/util/List<TT;>;".
	Signature NameSyntax = iota
	// ErasedSignature is the signature form without type arguments.
	ErasedSignature
	// Descriptor is the bare internal name: "java/util/List".
	Descriptor
	// TypeName is the fully qualified source name: "java.util.List<T>".
	TypeName
	// ShortTypeName is the simple source name: "List<T>".
	ShortTypeName
)

var syntaxNames = [...]string{
	Signature:       "signature",
	ErasedSignature: "erased_signature",
	Descriptor:      "descriptor",
	TypeName:        "type_name",
	ShortTypeName:   "short_type_name",
}

func (s NameSyntax) String() string {
	if int(s) < len(syntaxNames) {
		return syntaxNames[s]
	}
	return "unknown"
}

// IsValid reports whether s is one of the defined syntaxes.
func (s NameSyntax) IsValid() bool {
	return s <= ShortTypeName
}

// isBinary reports whether s spells JVM internal forms rather than source names.
func (s NameSyntax) isBinary() bool {
	return s == Signature || s == ErasedSignature || s == Descriptor
}
