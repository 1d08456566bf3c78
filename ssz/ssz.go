// Package ssz implements the Simple Serialize (SSZ) binary layout for
// fixed-schema containers as used by the Ethereum consensus layer.
//
// A container is described once by a Schema: an ordered list of named
// fields, each backed by a Layout that knows how to size, append and decode
// one value. Fixed-size fields are written inline; every variable-size field
// is replaced in the head by a 4-byte little-endian offset and its payload is
// appended to the tail. A single generic routine walks the schema for every
// container type.
//
// See https://github.com/ethereum/consensus-specs/blob/dev/ssz/simple-serialize.md
package ssz

import (
	"errors"
	"fmt"
)

// Decode and encode errors. Callers classify failures with errors.Is.
var (
	ErrTruncated     = errors.New("ssz: truncated input")
	ErrOffset        = errors.New("ssz: invalid offset")
	ErrTrailingBytes = errors.New("ssz: trailing bytes")
	ErrSubDecode     = errors.New("ssz: field decode failed")
	ErrSize          = errors.New("ssz: invalid size")
	ErrListTooLong   = errors.New("ssz: list exceeds maximum length")
	ErrInvalidBool   = errors.New("ssz: invalid boolean value")
	ErrSchema        = errors.New("ssz: invalid schema")
)

// BytesPerLengthOffset is the number of bytes used for each offset in
// variable-length SSZ containers (4 bytes, little-endian uint32).
const BytesPerLengthOffset = 4

// maxOffset is the largest encoding whose offsets still fit in a uint32.
const maxOffset = 1<<32 - 1

// Marshaler is implemented by types that can serialize themselves to SSZ.
type Marshaler interface {
	MarshalSSZ() ([]byte, error)
	SizeSSZ() int
}

// Unmarshaler is implemented by types that can deserialize themselves from
// SSZ. UnmarshalSSZ consumes the entire slice.
type Unmarshaler interface {
	UnmarshalSSZ([]byte) error
}

// Object is the contract of an opaque variable-size sub-codec.
type Object interface {
	Marshaler
	Unmarshaler
}

// Appender is an optional fast path for Objects that can encode directly
// into a caller-provided buffer.
type Appender interface {
	MarshalSSZTo(dst []byte) ([]byte, error)
}

// FieldError reports a field whose own codec rejected its bytes. It matches
// both ErrSubDecode and the nested error.
type FieldError struct {
	Container string
	Field     string
	Err       error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("ssz: %s.%s: %v", e.Container, e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error { return []error{ErrSubDecode, e.Err} }
