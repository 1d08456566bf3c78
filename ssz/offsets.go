package ssz

import (
	"encoding/binary"
	"fmt"
)

// Offset table helpers shared by containers and lists of variable-size
// elements. An offset table is a run of little-endian uint32 values, one per
// variable-size item, each locating the start of that item's payload
// relative to the start of the enclosing buffer. The last payload runs to
// the end of the buffer.

// putOffset writes off into the 4-byte slot at the front of dst.
func putOffset(dst []byte, off int) {
	binary.LittleEndian.PutUint32(dst, uint32(off))
}

// readOffset reads the 4-byte offset at the front of src.
func readOffset(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// checkOffsets validates an offset table read from a head of headLen bytes
// inside a buffer of total bytes. The first offset must point exactly at the
// end of the head, offsets must never decrease and none may point past the
// end of the buffer.
func checkOffsets(offsets []uint32, headLen, total int) error {
	if len(offsets) == 0 {
		return nil
	}
	if uint64(offsets[0]) != uint64(headLen) {
		return fmt.Errorf("%w: first offset %d, want %d", ErrOffset, offsets[0], headLen)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return fmt.Errorf("%w: offset %d (%d) is before offset %d (%d)",
				ErrOffset, i, offsets[i], i-1, offsets[i-1])
		}
	}
	if last := offsets[len(offsets)-1]; uint64(last) > uint64(total) {
		return fmt.Errorf("%w: offset %d beyond buffer of %d bytes", ErrOffset, last, total)
	}
	return nil
}

// span returns the [start, end) payload bounds of item i. Offsets must
// already have passed checkOffsets.
func span(offsets []uint32, i, total int) (int, int) {
	start := int(offsets[i])
	if i+1 < len(offsets) {
		return start, int(offsets[i+1])
	}
	return start, total
}

// readListOffsets reads and validates the offset table at the front of a
// list of variable-size elements. The first offset fixes the element count:
// it is the byte length of the table itself. An empty buffer is an empty
// list.
func readListOffsets(src []byte) ([]uint32, error) {
	if len(src) == 0 {
		return nil, nil
	}
	if len(src) < BytesPerLengthOffset {
		return nil, fmt.Errorf("%w: list offset needs %d bytes, have %d", ErrTruncated, BytesPerLengthOffset, len(src))
	}
	first := readOffset(src)
	if first == 0 || first%BytesPerLengthOffset != 0 {
		return nil, fmt.Errorf("%w: first list offset %d is not a positive multiple of %d", ErrOffset, first, BytesPerLengthOffset)
	}
	if uint64(first) > uint64(len(src)) {
		return nil, fmt.Errorf("%w: list offset table of %d bytes beyond buffer of %d bytes", ErrOffset, first, len(src))
	}
	n := int(first) / BytesPerLengthOffset
	offsets := make([]uint32, n)
	for i := range offsets {
		offsets[i] = readOffset(src[i*BytesPerLengthOffset:])
	}
	if err := checkOffsets(offsets, int(first), len(src)); err != nil {
		return nil, err
	}
	return offsets, nil
}
