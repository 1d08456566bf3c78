package ssz

import "fmt"

// Kind tells whether a field is written inline or through the offset table.
type Kind uint8

const (
	// Fixed fields are written inline in the head.
	Fixed Kind = iota
	// Variable fields occupy a 4-byte offset slot in the head and have
	// their payload appended to the tail.
	Variable
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Variable:
		return "variable"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Field is one named slot of a container schema C. Build fields with Define
// or Dynamic.
type Field[C any] struct {
	name   string
	kind   Kind
	size   int
	sizeOf func(*C) int
	append func([]byte, *C) ([]byte, error)
	decode func([]byte, *C) error
}

// Define binds a field name to a layout and to an accessor returning a
// pointer to the field inside a container value. The field is Fixed when
// the layout has a fixed size and Variable otherwise.
func Define[C, T any](name string, l Layout[T], ref func(*C) *T) Field[C] {
	f := Field[C]{
		name:   name,
		kind:   Variable,
		sizeOf: func(c *C) int { return l.SizeOf(ref(c)) },
		append: func(dst []byte, c *C) ([]byte, error) { return l.AppendTo(dst, ref(c)) },
		decode: func(src []byte, c *C) error { return l.DecodeInto(src, ref(c)) },
	}
	if size, ok := l.FixedSize(); ok {
		f.kind = Fixed
		f.size = size
	}
	return f
}

// Dynamic binds a field name to an opaque variable-size sub-codec. ref must
// return a pointer into the container so that decoding populates it.
func Dynamic[C any](name string, ref func(*C) Object) Field[C] {
	return Field[C]{
		name:   name,
		kind:   Variable,
		sizeOf: func(c *C) int { return ref(c).SizeSSZ() },
		append: func(dst []byte, c *C) ([]byte, error) { return appendObject(dst, ref(c)) },
		decode: func(src []byte, c *C) error { return ref(c).UnmarshalSSZ(src) },
	}
}

// Name returns the declared field name.
func (f Field[C]) Name() string { return f.name }

// Kind reports whether the field is fixed or variable.
func (f Field[C]) Kind() Kind { return f.kind }

// HeadSize returns the number of head bytes the field occupies: its fixed
// width, or the offset width for variable fields.
func (f Field[C]) HeadSize() int {
	if f.kind == Variable {
		return BytesPerLengthOffset
	}
	return f.size
}

// Schema is the immutable, ordered field list of a container type. A Schema
// is safe for concurrent use.
type Schema[C any] struct {
	name    string
	fields  []Field[C]
	headLen int
	numVar  int
}

// NewSchema validates and freezes a container schema. Field order is the
// wire order.
func NewSchema[C any](name string, fields ...Field[C]) (*Schema[C], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty container name", ErrSchema)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s has no fields", ErrSchema, name)
	}
	s := &Schema[C]{
		name:   name,
		fields: make([]Field[C], len(fields)),
	}
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		switch {
		case f.decode == nil:
			return nil, fmt.Errorf("%w: %s field %d is not defined", ErrSchema, name, i)
		case f.name == "":
			return nil, fmt.Errorf("%w: %s field %d has no name", ErrSchema, name, i)
		case f.kind == Fixed && f.size <= 0:
			return nil, fmt.Errorf("%w: %s.%s has fixed size %d", ErrSchema, name, f.name, f.size)
		}
		if _, dup := seen[f.name]; dup {
			return nil, fmt.Errorf("%w: %s.%s declared twice", ErrSchema, name, f.name)
		}
		seen[f.name] = struct{}{}
		s.fields[i] = f
		s.headLen += f.HeadSize()
		if f.kind == Variable {
			s.numVar++
		}
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid schema. It is meant
// for package-level schema variables.
func MustSchema[C any](name string, fields ...Field[C]) *Schema[C] {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the container name.
func (s *Schema[C]) Name() string { return s.name }

// FieldNames returns the declared field names in wire order.
func (s *Schema[C]) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Fields returns a copy of the field list.
func (s *Schema[C]) Fields() []Field[C] {
	out := make([]Field[C], len(s.fields))
	copy(out, s.fields)
	return out
}

// HeadLen returns the size of the head region: all fixed fields plus one
// offset per variable field. It is also the value of the first offset.
func (s *Schema[C]) HeadLen() int { return s.headLen }

// VariableFields returns the number of variable fields.
func (s *Schema[C]) VariableFields() int { return s.numVar }
