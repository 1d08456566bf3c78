package ssz

import (
	"fmt"
	"slices"
)

// Container encoding:
//
//	[fixed 1][fixed 2]...[offset(var 1)][offset(var 2)]... ++ [var 1][var 2]...
//
// Fixed fields and offset slots share the head in declaration order; the
// tail holds the variable payloads in the same order.

// inlineVars is the number of variable fields handled without a heap
// allocation for the size and offset scratch slices.
const inlineVars = 8

// FixedSize reports the encoded width of the container when it has no
// variable fields.
func (s *Schema[C]) FixedSize() (int, bool) {
	if s.numVar == 0 {
		return s.headLen, true
	}
	return 0, false
}

// SizeOf returns the encoded length of c.
func (s *Schema[C]) SizeOf(c *C) int {
	size := s.headLen
	if s.numVar == 0 {
		return size
	}
	for _, f := range s.fields {
		if f.kind == Variable {
			size += f.sizeOf(c)
		}
	}
	return size
}

// Marshal encodes c into a freshly allocated buffer of exactly SizeOf(c)
// bytes.
func (s *Schema[C]) Marshal(c *C) ([]byte, error) {
	return s.AppendTo(nil, c)
}

// AppendTo appends the encoding of c to dst. The total length is computed
// before any byte is written so dst grows at most once.
func (s *Schema[C]) AppendTo(dst []byte, c *C) ([]byte, error) {
	var scratch [inlineVars]int
	sizes := scratch[:0]
	total := s.headLen
	for _, f := range s.fields {
		if f.kind == Variable {
			n := f.sizeOf(c)
			sizes = append(sizes, n)
			total += n
		}
	}
	if uint64(total) > maxOffset {
		return dst, fmt.Errorf("%w: %s encodes to %d bytes, beyond the offset range", ErrOffset, s.name, total)
	}

	start := len(dst)
	dst = slices.Grow(dst, total)

	// Head: fixed fields inline, offsets for variable fields.
	var (
		err  error
		slot []byte
		next = s.headLen
		vi   int
	)
	for _, f := range s.fields {
		if f.kind == Variable {
			dst, slot = extend(dst, BytesPerLengthOffset)
			putOffset(slot, next)
			next += sizes[vi]
			vi++
			continue
		}
		mark := len(dst)
		if dst, err = f.append(dst, c); err != nil {
			return dst[:start], fmt.Errorf("ssz: encode %s.%s: %w", s.name, f.name, err)
		}
		if n := len(dst) - mark; n != f.size {
			return dst[:start], fmt.Errorf("%w: %s.%s wrote %d bytes, want %d", ErrSize, s.name, f.name, n, f.size)
		}
	}

	// Tail: variable payloads in declaration order.
	vi = 0
	for _, f := range s.fields {
		if f.kind != Variable {
			continue
		}
		mark := len(dst)
		if dst, err = f.append(dst, c); err != nil {
			return dst[:start], fmt.Errorf("ssz: encode %s.%s: %w", s.name, f.name, err)
		}
		if n := len(dst) - mark; n != sizes[vi] {
			return dst[:start], fmt.Errorf("%w: %s.%s wrote %d bytes, sized as %d", ErrSize, s.name, f.name, n, sizes[vi])
		}
		vi++
	}
	return dst, nil
}

// Unmarshal decodes data into a newly allocated container. On failure no
// container is returned.
func (s *Schema[C]) Unmarshal(data []byte) (*C, error) {
	c := new(C)
	if err := s.DecodeInto(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DecodeInto decodes src, which must be exactly one encoded container, into
// c. c is only written when the whole container decodes successfully.
func (s *Schema[C]) DecodeInto(src []byte, c *C) error {
	var (
		tmp     C
		scratch [inlineVars]uint32
		offsets = scratch[:0]
		pos     int
	)

	// Walk the head: decode fixed fields in place, collect offsets.
	for _, f := range s.fields {
		width := f.HeadSize()
		if len(src)-pos < width {
			return fmt.Errorf("%w: %s.%s needs %d bytes at %d, have %d",
				ErrTruncated, s.name, f.name, width, pos, len(src)-pos)
		}
		if f.kind == Variable {
			offsets = append(offsets, readOffset(src[pos:]))
		} else if err := f.decode(src[pos:pos+width], &tmp); err != nil {
			return &FieldError{Container: s.name, Field: f.name, Err: err}
		}
		pos += width
	}

	if s.numVar == 0 {
		if len(src) != s.headLen {
			return fmt.Errorf("%w: %s is %d bytes, have %d", ErrTrailingBytes, s.name, s.headLen, len(src))
		}
		*c = tmp
		return nil
	}

	if err := checkOffsets(offsets, s.headLen, len(src)); err != nil {
		return fmt.Errorf("decode %s: %w", s.name, err)
	}

	vi := 0
	for _, f := range s.fields {
		if f.kind != Variable {
			continue
		}
		start, end := span(offsets, vi, len(src))
		if err := f.decode(src[start:end], &tmp); err != nil {
			return &FieldError{Container: s.name, Field: f.name, Err: err}
		}
		vi++
	}
	*c = tmp
	return nil
}
