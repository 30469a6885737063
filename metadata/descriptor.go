package metadata

import (
	"strings"

	"github.com/wippyai/jdecomp/errors"
)

// ParseDescriptor parses a raw field descriptor such as "[Ljava/lang/String;".
func ParseDescriptor(desc string) (TypeReference, error) {
	p := &sigParser{src: desc, erased: true}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, p.fail("trailing characters")
	}
	return t, nil
}

// ParseSignature parses a field type signature, which may carry type arguments and
// type variables: "Ljava/util/Map<TK;Ljava/util/List<+TV;>;>;". Type variables are
// created unbound.
func ParseSignature(sig string) (TypeReference, error) {
	p := &sigParser{src: sig}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, p.fail("trailing characters")
	}
	return t, nil
}

// ParseMethodDescriptor parses a method descriptor or generic method signature:
// "(Ljava/lang/String;D)I" or "<T:Ljava/lang/Object;>(TT;)TT;". Thrown types after
// '^' are skipped.
func ParseMethodDescriptor(sig string) (*MethodType, error) {
	p := &sigParser{src: sig}

	m := &MethodType{}
	if p.peek() == '<' {
		params, err := p.parseFormals()
		if err != nil {
			return nil, err
		}
		m.TypeParams = params
	}

	if err := p.expect('('); err != nil {
		return nil, err
	}
	for p.peek() != ')' {
		if p.done() {
			return nil, p.fail("unterminated parameter list")
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		m.Params = append(m.Params, &ParameterDefinition{Type: t, Position: len(m.Params)})
	}
	p.pos++

	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	m.Return = ret

	for p.peek() == '^' {
		p.pos++
		if _, err := p.parseType(); err != nil {
			return nil, err
		}
	}
	if !p.done() {
		return nil, p.fail("trailing characters")
	}
	return m, nil
}

// ParseClassSignature builds a definition for internalName from a class signature
// attribute: "<T::Ljava/lang/Comparable<TT;>;>Ljava/lang/Object;Ljava/io/Serializable;".
func ParseClassSignature(internalName, sig string) (*TypeDefinition, error) {
	p := &sigParser{src: sig}
	def := NewTypeDefinition(internalName)

	if p.peek() == '<' {
		params, err := p.parseFormals()
		if err != nil {
			return nil, err
		}
		def.GenericParameters = params
	}

	base, err := p.parseType()
	if err != nil {
		return nil, err
	}
	def.BaseType = base
	if IsObject(base) {
		def.BaseType = Object
	}

	for !p.done() {
		iface, err := p.parseType()
		if err != nil {
			return nil, err
		}
		def.Interfaces = append(def.Interfaces, iface)
	}
	return def, nil
}

type sigParser struct {
	scope  map[string]*GenericParameter
	src    string
	pos    int
	erased bool
}

func (p *sigParser) done() bool { return p.pos >= len(p.src) }

func (p *sigParser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *sigParser) expect(c byte) error {
	if p.peek() != c {
		return p.fail("expected '" + string(c) + "'")
	}
	p.pos++
	return nil
}

func (p *sigParser) fail(reason string) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidData).
		Value(p.src).
		Detail("%s at offset %d in %q", reason, p.pos, p.src).
		Build()
}

func (p *sigParser) parseType() (TypeReference, error) {
	if p.done() {
		return nil, p.fail("unexpected end of signature")
	}

	c := p.src[p.pos]
	if prim, ok := PrimitiveByDescriptor(c); ok {
		p.pos++
		return prim, nil
	}

	switch c {
	case '[':
		p.pos++
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ArrayType{ElementType: elem}, nil
	case 'T':
		if p.erased {
			break
		}
		p.pos++
		name, err := p.ident(";")
		if err != nil {
			return nil, err
		}
		p.pos++
		return p.typeVariable(name), nil
	case 'L':
		p.pos++
		return p.parseClass()
	}
	return nil, p.fail("invalid type tag '" + string(c) + "'")
}

func (p *sigParser) typeVariable(name string) *GenericParameter {
	if gp, ok := p.scope[name]; ok {
		return gp
	}
	gp := &GenericParameter{Name: name}
	if p.scope == nil {
		p.scope = make(map[string]*GenericParameter)
	}
	p.scope[name] = gp
	return gp
}

// ident reads up to (not including) the first terminator or any signature delimiter.
func (p *sigParser) ident(terminators string) (string, error) {
	start := p.pos
	for !p.done() {
		c := p.src[p.pos]
		if strings.IndexByte(terminators, c) >= 0 {
			if p.pos == start {
				return "", p.fail("empty identifier")
			}
			return p.src[start:p.pos], nil
		}
		p.pos++
	}
	return "", p.fail("unterminated identifier")
}

func (p *sigParser) parseClass() (TypeReference, error) {
	terminators := ";<."
	if p.erased {
		terminators = ";"
	}

	name, err := p.ident(terminators)
	if err != nil {
		return nil, err
	}
	class := NewClassType(name)

	var result TypeReference = class
	for {
		if !p.erased && p.peek() == '<' {
			args, err := p.parseTypeArguments()
			if err != nil {
				return nil, err
			}
			result = &GenericInstance{GenericType: class, TypeArguments: args}
		}

		if p.peek() != '.' {
			break
		}
		p.pos++
		inner, err := p.ident(terminators)
		if err != nil {
			return nil, err
		}
		class = &ClassType{Package: class.Package, Name: inner, DeclaringType: class}
		result = class
	}

	if err := p.expect(';'); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *sigParser) parseTypeArguments() ([]TypeReference, error) {
	p.pos++ // '<'
	var args []TypeReference
	for p.peek() != '>' {
		if p.done() {
			return nil, p.fail("unterminated type arguments")
		}
		switch p.peek() {
		case '*':
			p.pos++
			args = append(args, &WildcardType{})
		case '+':
			p.pos++
			bound, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, &WildcardType{Extends: bound})
		case '-':
			p.pos++
			bound, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, &WildcardType{Super: bound})
		default:
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	p.pos++ // '>'
	return args, nil
}

// parseFormals parses "<T:bound;U::iface;>". Each parameter enters scope before its
// bound is parsed so self-referential bounds (E extends Enum<E>) resolve to it.
func (p *sigParser) parseFormals() ([]*GenericParameter, error) {
	p.pos++ // '<'
	var params []*GenericParameter
	for p.peek() != '>' {
		if p.done() {
			return nil, p.fail("unterminated type parameters")
		}
		name, err := p.ident(":")
		if err != nil {
			return nil, err
		}
		gp := p.typeVariable(name)
		gp.Position = len(params)

		var classBound TypeReference
		var ifaceBounds []TypeReference

		if err := p.expect(':'); err != nil {
			return nil, err
		}
		if c := p.peek(); c != ':' && c != '>' {
			classBound, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
		for p.peek() == ':' {
			p.pos++
			bound, err := p.parseType()
			if err != nil {
				return nil, err
			}
			ifaceBounds = append(ifaceBounds, bound)
		}

		switch {
		case len(ifaceBounds) == 0:
			gp.Bound = classBound
		case classBound == nil && len(ifaceBounds) == 1:
			gp.Bound = ifaceBounds[0]
		default:
			gp.Bound = &CompoundType{BaseType: classBound, Interfaces: ifaceBounds}
		}
		if IsObject(gp.Bound) {
			gp.Bound = nil
		}
		params = append(params, gp)
	}
	p.pos++ // '>'
	return params, nil
}
