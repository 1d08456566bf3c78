package ssz

import "slices"

// Layout describes how values of type T are laid out on the wire. It is the
// codec reference a Schema records for each field. FixedCodec, Schema,
// ListOf, ByteList, BitlistOf and ObjectLayout implement it.
type Layout[T any] interface {
	// FixedSize reports the encoded width and true if every value of T
	// encodes to the same number of bytes.
	FixedSize() (int, bool)
	// SizeOf returns the encoded length of v.
	SizeOf(v *T) int
	// AppendTo appends the encoding of v to dst.
	AppendTo(dst []byte, v *T) ([]byte, error)
	// DecodeInto decodes src into v, consuming all of src.
	DecodeInto(src []byte, v *T) error
}

// objectLayout adapts an opaque Object to a Layout. The object is always
// treated as variable-size.
type objectLayout[T any, PT interface {
	*T
	Object
}] struct{}

// ObjectLayout returns a variable-size Layout backed by T's own
// MarshalSSZ/SizeSSZ/UnmarshalSSZ methods.
func ObjectLayout[T any, PT interface {
	*T
	Object
}]() Layout[T] {
	return objectLayout[T, PT]{}
}

func (objectLayout[T, PT]) FixedSize() (int, bool) { return 0, false }

func (objectLayout[T, PT]) SizeOf(v *T) int { return PT(v).SizeSSZ() }

func (objectLayout[T, PT]) AppendTo(dst []byte, v *T) ([]byte, error) {
	return appendObject(dst, PT(v))
}

func (objectLayout[T, PT]) DecodeInto(src []byte, v *T) error {
	return PT(v).UnmarshalSSZ(src)
}

// appendObject encodes obj onto dst, using the Appender fast path when the
// object provides one.
func appendObject(dst []byte, obj Object) ([]byte, error) {
	if a, ok := obj.(Appender); ok {
		return a.MarshalSSZTo(dst)
	}
	enc, err := obj.MarshalSSZ()
	if err != nil {
		return dst, err
	}
	return append(dst, enc...), nil
}

// extend grows dst by n bytes and returns the grown slice together with the
// new n-byte window.
func extend(dst []byte, n int) ([]byte, []byte) {
	l := len(dst)
	dst = slices.Grow(dst, n)[:l+n]
	return dst, dst[l:]
}
