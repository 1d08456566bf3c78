package ssz

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
)

// FixedCodec encodes values whose width is a constant known without looking
// at the value: integers, booleans and fixed-length byte arrays.
//
// Put writes exactly Size bytes into dst. Get reads a value from exactly Size
// bytes and may reject invalid content.
type FixedCodec[T any] struct {
	Name string
	Size int
	Put  func(dst []byte, v T)
	Get  func(src []byte) (T, error)
}

// Encode returns the Size-byte encoding of v.
func (c FixedCodec[T]) Encode(v T) []byte {
	out := make([]byte, c.Size)
	c.Put(out, v)
	return out
}

// Decode decodes a value from src, which must be exactly Size bytes long.
func (c FixedCodec[T]) Decode(src []byte) (T, error) {
	var zero T
	switch {
	case len(src) < c.Size:
		return zero, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncated, c.Name, c.Size, len(src))
	case len(src) > c.Size:
		return zero, fmt.Errorf("%w: %s is %d bytes, have %d", ErrTrailingBytes, c.Name, c.Size, len(src))
	}
	return c.Get(src)
}

// Read consumes exactly Size bytes from the front of src and returns the
// decoded value together with the remaining input.
func (c FixedCodec[T]) Read(src []byte) (T, []byte, error) {
	var zero T
	if len(src) < c.Size {
		return zero, src, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncated, c.Name, c.Size, len(src))
	}
	v, err := c.Get(src[:c.Size])
	if err != nil {
		return zero, src, err
	}
	return v, src[c.Size:], nil
}

func (c FixedCodec[T]) FixedSize() (int, bool) { return c.Size, true }

func (c FixedCodec[T]) SizeOf(*T) int { return c.Size }

func (c FixedCodec[T]) AppendTo(dst []byte, v *T) ([]byte, error) {
	dst, buf := extend(dst, c.Size)
	c.Put(buf, *v)
	return dst, nil
}

func (c FixedCodec[T]) DecodeInto(src []byte, v *T) error {
	x, err := c.Decode(src)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

// --- Basic types ---

// Bool encodes a boolean as a single byte: 0x01 for true, 0x00 for false.
// Any other byte is rejected.
func Bool() FixedCodec[bool] {
	return FixedCodec[bool]{
		Name: "bool",
		Size: 1,
		Put: func(dst []byte, v bool) {
			dst[0] = 0
			if v {
				dst[0] = 1
			}
		},
		Get: func(src []byte) (bool, error) {
			switch src[0] {
			case 0:
				return false, nil
			case 1:
				return true, nil
			}
			return false, fmt.Errorf("%w: 0x%02x", ErrInvalidBool, src[0])
		},
	}
}

// Uint8 encodes any uint8-based type as a single byte.
func Uint8[T ~uint8]() FixedCodec[T] {
	return FixedCodec[T]{
		Name: "uint8",
		Size: 1,
		Put:  func(dst []byte, v T) { dst[0] = uint8(v) },
		Get:  func(src []byte) (T, error) { return T(src[0]), nil },
	}
}

// Uint16 encodes any uint16-based type as 2 bytes little-endian.
func Uint16[T ~uint16]() FixedCodec[T] {
	return FixedCodec[T]{
		Name: "uint16",
		Size: 2,
		Put:  func(dst []byte, v T) { binary.LittleEndian.PutUint16(dst, uint16(v)) },
		Get:  func(src []byte) (T, error) { return T(binary.LittleEndian.Uint16(src)), nil },
	}
}

// Uint32 encodes any uint32-based type as 4 bytes little-endian.
func Uint32[T ~uint32]() FixedCodec[T] {
	return FixedCodec[T]{
		Name: "uint32",
		Size: 4,
		Put:  func(dst []byte, v T) { binary.LittleEndian.PutUint32(dst, uint32(v)) },
		Get:  func(src []byte) (T, error) { return T(binary.LittleEndian.Uint32(src)), nil },
	}
}

// Uint64 encodes any uint64-based type (Slot, Epoch, Gwei, ...) as 8 bytes
// little-endian.
func Uint64[T ~uint64]() FixedCodec[T] {
	return FixedCodec[T]{
		Name: "uint64",
		Size: 8,
		Put:  func(dst []byte, v T) { binary.LittleEndian.PutUint64(dst, uint64(v)) },
		Get:  func(src []byte) (T, error) { return T(binary.LittleEndian.Uint64(src)), nil },
	}
}

// Uint256 encodes a 256-bit unsigned integer into 32 bytes little-endian.
// uint256.Int stores its limbs least significant first, which is already the
// SSZ order.
func Uint256() FixedCodec[uint256.Int] {
	return FixedCodec[uint256.Int]{
		Name: "uint256",
		Size: 32,
		Put: func(dst []byte, v uint256.Int) {
			for i := 0; i < 4; i++ {
				binary.LittleEndian.PutUint64(dst[i*8:], v[i])
			}
		},
		Get: func(src []byte) (uint256.Int, error) {
			var z uint256.Int
			for i := 0; i < 4; i++ {
				z[i] = binary.LittleEndian.Uint64(src[i*8:])
			}
			return z, nil
		},
	}
}

// --- Byte vectors ---

// Bytes4 encodes a 4-byte array verbatim (fork versions, domain types).
func Bytes4[T ~[4]byte]() FixedCodec[T] {
	return FixedCodec[T]{
		Name: "Bytes4",
		Size: 4,
		Put:  func(dst []byte, v T) { copy(dst, v[:]) },
		Get: func(src []byte) (T, error) {
			var v T
			copy(v[:], src)
			return v, nil
		},
	}
}

// Bytes32 encodes a 32-byte array verbatim (roots, hashes, graffiti).
func Bytes32[T ~[32]byte]() FixedCodec[T] {
	return FixedCodec[T]{
		Name: "Bytes32",
		Size: 32,
		Put:  func(dst []byte, v T) { copy(dst, v[:]) },
		Get: func(src []byte) (T, error) {
			var v T
			copy(v[:], src)
			return v, nil
		},
	}
}

// Bytes48 encodes a 48-byte array verbatim (BLS public keys).
func Bytes48[T ~[48]byte]() FixedCodec[T] {
	return FixedCodec[T]{
		Name: "Bytes48",
		Size: 48,
		Put:  func(dst []byte, v T) { copy(dst, v[:]) },
		Get: func(src []byte) (T, error) {
			var v T
			copy(v[:], src)
			return v, nil
		},
	}
}

// Bytes96 encodes a 96-byte array verbatim (BLS signatures).
func Bytes96[T ~[96]byte]() FixedCodec[T] {
	return FixedCodec[T]{
		Name: "Bytes96",
		Size: 96,
		Put:  func(dst []byte, v T) { copy(dst, v[:]) },
		Get: func(src []byte) (T, error) {
			var v T
			copy(v[:], src)
			return v, nil
		},
	}
}

// Array encodes a fixed-length Go array A of n fixed-size elements by
// concatenating each element's encoding. view must return a slice of
// exactly n elements aliasing the array.
func Array[A, T any](elem FixedCodec[T], n int, view func(*A) []T) FixedCodec[A] {
	return FixedCodec[A]{
		Name: fmt.Sprintf("Vector[%s, %d]", elem.Name, n),
		Size: elem.Size * n,
		Put: func(dst []byte, v A) {
			for i, e := range view(&v) {
				elem.Put(dst[i*elem.Size:(i+1)*elem.Size], e)
			}
		},
		Get: func(src []byte) (A, error) {
			var v A
			elems := view(&v)
			for i := range elems {
				e, err := elem.Get(src[i*elem.Size : (i+1)*elem.Size])
				if err != nil {
					return v, fmt.Errorf("element %d: %w", i, err)
				}
				elems[i] = e
			}
			return v, nil
		},
	}
}
