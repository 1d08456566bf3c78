// bitfield.go implements the SSZ Bitlist type and its layout.
//
// A Bitlist is a variable-length sequence of bits with a trailing length bit
// (sentinel) in the serialized form. It is used in the consensus layer for
// aggregation bitfields in attestations (which committee members took part).
package ssz

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrBitlist is returned for a serialized bitlist without a sentinel bit.
var ErrBitlist = errors.New("ssz: bitlist has no sentinel bit")

// Bitlist is a variable-length bit array. The underlying byte slice includes
// the trailing sentinel bit that encodes the length. The zero value is an
// empty bitlist.
type Bitlist struct {
	data   []byte
	length int // number of usable bits (excludes sentinel)
}

// NewBitlist creates a Bitlist with the given number of usable bits, all
// unset.
func NewBitlist(length int) Bitlist {
	if length < 0 {
		length = 0
	}
	data := make([]byte, length/8+1)
	data[length/8] |= 1 << (uint(length) % 8)
	return Bitlist{data: data, length: length}
}

// BitlistFromBytes creates a Bitlist from its serialized form (with
// sentinel). The input is copied.
func BitlistFromBytes(data []byte) (Bitlist, error) {
	if len(data) == 0 {
		return Bitlist{}, fmt.Errorf("%w: empty input", ErrBitlist)
	}
	last := data[len(data)-1]
	if last == 0 {
		return Bitlist{}, ErrBitlist
	}
	length := (len(data)-1)*8 + bits.Len8(last) - 1
	cp := make([]byte, len(data))
	copy(cp, data)
	return Bitlist{data: cp, length: length}, nil
}

// Set sets the bit at index. Out-of-range indices are ignored.
func (b Bitlist) Set(index int) {
	if index < 0 || index >= b.length {
		return
	}
	b.data[index/8] |= 1 << (uint(index) % 8)
}

// Clear unsets the bit at index.
func (b Bitlist) Clear(index int) {
	if index < 0 || index >= b.length {
		return
	}
	b.data[index/8] &^= 1 << (uint(index) % 8)
}

// Get reports whether the bit at index is set.
func (b Bitlist) Get(index int) bool {
	if index < 0 || index >= b.length {
		return false
	}
	return b.data[index/8]&(1<<(uint(index)%8)) != 0
}

// Len returns the number of usable bits (excludes sentinel).
func (b Bitlist) Len() int { return b.length }

// Count returns the number of set bits, excluding the sentinel.
func (b Bitlist) Count() int {
	count := 0
	for _, x := range b.data {
		count += bits.OnesCount8(x)
	}
	if len(b.data) > 0 {
		count-- // sentinel
	}
	return count
}

// Bytes returns a copy of the serialized form (with sentinel).
func (b Bitlist) Bytes() []byte {
	if b.data == nil {
		return []byte{0x01}
	}
	cp := make([]byte, len(b.data))
	copy(cp, b.data)
	return cp
}

// Equal reports whether two bitlists have the same length and bits.
func (b Bitlist) Equal(other Bitlist) bool {
	if b.length != other.length {
		return false
	}
	for i := 0; i < b.length; i++ {
		if b.Get(i) != other.Get(i) {
			return false
		}
	}
	return true
}

// MarshalText encodes the serialized form as 0x-prefixed hex.
func (b Bitlist) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b.Bytes()).MarshalText()
}

// UnmarshalText decodes 0x-prefixed hex of the serialized form.
func (b *Bitlist) UnmarshalText(text []byte) error {
	var raw hexutil.Bytes
	if err := raw.UnmarshalText(text); err != nil {
		return err
	}
	bl, err := BitlistFromBytes(raw)
	if err != nil {
		return err
	}
	*b = bl
	return nil
}

// bitlistLayout encodes Bitlist[max].
type bitlistLayout struct {
	max int
}

// BitlistOf returns the layout of a bitlist of at most max bits.
func BitlistOf(max int) Layout[Bitlist] {
	return bitlistLayout{max: max}
}

func (l bitlistLayout) FixedSize() (int, bool) { return 0, false }

func (l bitlistLayout) SizeOf(v *Bitlist) int {
	if v.data == nil {
		return 1
	}
	return len(v.data)
}

func (l bitlistLayout) AppendTo(dst []byte, v *Bitlist) ([]byte, error) {
	if v.length > l.max {
		return dst, fmt.Errorf("%w: bitlist of %d bits, max %d", ErrListTooLong, v.length, l.max)
	}
	if v.data == nil {
		return append(dst, 0x01), nil
	}
	return append(dst, v.data...), nil
}

func (l bitlistLayout) DecodeInto(src []byte, v *Bitlist) error {
	bl, err := BitlistFromBytes(src)
	if err != nil {
		return err
	}
	if bl.length > l.max {
		return fmt.Errorf("%w: bitlist of %d bits, max %d", ErrListTooLong, bl.length, l.max)
	}
	*v = bl
	return nil
}
