package ssz

import (
	"fmt"
	"slices"
)

// listLayout encodes List[T, max]. Fixed-size elements are concatenated;
// variable-size elements are preceded by an offset table, one offset per
// element.
type listLayout[T any] struct {
	elem Layout[T]
	max  int
}

// ListOf returns the layout of a list of at most max elements of elem.
// Lists are always variable-size. Decoding yields a non-nil slice.
func ListOf[T any](elem Layout[T], max int) Layout[[]T] {
	return listLayout[T]{elem: elem, max: max}
}

func (l listLayout[T]) FixedSize() (int, bool) { return 0, false }

func (l listLayout[T]) SizeOf(v *[]T) int {
	if size, ok := l.elem.FixedSize(); ok {
		return len(*v) * size
	}
	total := len(*v) * BytesPerLengthOffset
	for i := range *v {
		total += l.elem.SizeOf(&(*v)[i])
	}
	return total
}

func (l listLayout[T]) AppendTo(dst []byte, v *[]T) ([]byte, error) {
	elems := *v
	if len(elems) > l.max {
		return dst, fmt.Errorf("%w: %d elements, max %d", ErrListTooLong, len(elems), l.max)
	}
	var err error
	if _, ok := l.elem.FixedSize(); ok {
		for i := range elems {
			if dst, err = l.elem.AppendTo(dst, &elems[i]); err != nil {
				return dst, fmt.Errorf("element %d: %w", i, err)
			}
		}
		return dst, nil
	}

	sizes := make([]int, len(elems))
	total := len(elems) * BytesPerLengthOffset
	for i := range elems {
		sizes[i] = l.elem.SizeOf(&elems[i])
		total += sizes[i]
	}
	if uint64(total) > maxOffset {
		return dst, fmt.Errorf("%w: list encodes to %d bytes, beyond the offset range", ErrOffset, total)
	}
	dst = slices.Grow(dst, total)

	var slot []byte
	next := len(elems) * BytesPerLengthOffset
	for i := range elems {
		dst, slot = extend(dst, BytesPerLengthOffset)
		putOffset(slot, next)
		next += sizes[i]
	}
	for i := range elems {
		mark := len(dst)
		if dst, err = l.elem.AppendTo(dst, &elems[i]); err != nil {
			return dst, fmt.Errorf("element %d: %w", i, err)
		}
		if n := len(dst) - mark; n != sizes[i] {
			return dst, fmt.Errorf("%w: element %d wrote %d bytes, sized as %d", ErrSize, i, n, sizes[i])
		}
	}
	return dst, nil
}

func (l listLayout[T]) DecodeInto(src []byte, v *[]T) error {
	if size, ok := l.elem.FixedSize(); ok {
		if size <= 0 {
			return fmt.Errorf("%w: list element size %d", ErrSchema, size)
		}
		if len(src)%size != 0 {
			return fmt.Errorf("%w: %d bytes is not a whole number of %d-byte elements", ErrTruncated, len(src), size)
		}
		n := len(src) / size
		if n > l.max {
			return fmt.Errorf("%w: %d elements, max %d", ErrListTooLong, n, l.max)
		}
		elems := make([]T, n)
		for i := range elems {
			if err := l.elem.DecodeInto(src[i*size:(i+1)*size], &elems[i]); err != nil {
				return fmt.Errorf("%w: element %d: %w", ErrSubDecode, i, err)
			}
		}
		*v = elems
		return nil
	}

	offsets, err := readListOffsets(src)
	if err != nil {
		return err
	}
	if len(offsets) > l.max {
		return fmt.Errorf("%w: %d elements, max %d", ErrListTooLong, len(offsets), l.max)
	}
	elems := make([]T, len(offsets))
	for i := range elems {
		start, end := span(offsets, i, len(src))
		if err := l.elem.DecodeInto(src[start:end], &elems[i]); err != nil {
			return fmt.Errorf("%w: element %d: %w", ErrSubDecode, i, err)
		}
	}
	*v = elems
	return nil
}

// byteList encodes ByteList[max]: raw bytes whose length is implied by the
// enclosing offsets.
type byteList struct {
	max int
}

// ByteList returns the layout of a variable-length byte string of at most
// max bytes.
func ByteList(max int) Layout[[]byte] {
	return byteList{max: max}
}

func (b byteList) FixedSize() (int, bool) { return 0, false }

func (b byteList) SizeOf(v *[]byte) int { return len(*v) }

func (b byteList) AppendTo(dst []byte, v *[]byte) ([]byte, error) {
	if len(*v) > b.max {
		return dst, fmt.Errorf("%w: %d bytes, max %d", ErrListTooLong, len(*v), b.max)
	}
	return append(dst, *v...), nil
}

func (b byteList) DecodeInto(src []byte, v *[]byte) error {
	if len(src) > b.max {
		return fmt.Errorf("%w: %d bytes, max %d", ErrListTooLong, len(src), b.max)
	}
	*v = slices.Clone(src)
	if *v == nil {
		*v = []byte{}
	}
	return nil
}
