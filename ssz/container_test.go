package ssz

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
)

// tripleBody is an opaque body whose encoding is a non-empty run of 3-byte
// records.
type tripleBody struct {
	data []byte
}

func (b *tripleBody) MarshalSSZ() ([]byte, error) {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *tripleBody) SizeSSZ() int { return len(b.data) }

func (b *tripleBody) UnmarshalSSZ(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty body", ErrTruncated)
	}
	if len(data)%3 != 0 {
		return fmt.Errorf("%w: %d bytes is not a whole number of records", ErrTruncated, len(data))
	}
	b.data = append([]byte{}, data...)
	return nil
}

type testBlock struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    [32]byte
	StateRoot     [32]byte
	Body          tripleBody
}

var testBlockSchema = MustSchema("TestBlock",
	Define("slot", Uint64[uint64](), func(b *testBlock) *uint64 { return &b.Slot }),
	Define("proposer_index", Uint64[uint64](), func(b *testBlock) *uint64 { return &b.ProposerIndex }),
	Define("parent_root", Bytes32[[32]byte](), func(b *testBlock) *[32]byte { return &b.ParentRoot }),
	Define("state_root", Bytes32[[32]byte](), func(b *testBlock) *[32]byte { return &b.StateRoot }),
	Dynamic("body", func(b *testBlock) Object { return &b.Body }),
)

type testHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    [32]byte
	StateRoot     [32]byte
}

var testHeaderSchema = MustSchema("TestHeader",
	Define("slot", Uint64[uint64](), func(h *testHeader) *uint64 { return &h.Slot }),
	Define("proposer_index", Uint64[uint64](), func(h *testHeader) *uint64 { return &h.ProposerIndex }),
	Define("parent_root", Bytes32[[32]byte](), func(h *testHeader) *[32]byte { return &h.ParentRoot }),
	Define("state_root", Bytes32[[32]byte](), func(h *testHeader) *[32]byte { return &h.StateRoot }),
)

// mixed interleaves fixed and variable fields.
type mixed struct {
	A    uint16
	Blob []byte
	B    bool
	Nums []uint64
	C    uint32
}

var mixedSchema = MustSchema("Mixed",
	Define("a", Uint16[uint16](), func(m *mixed) *uint16 { return &m.A }),
	Define("blob", ByteList(64), func(m *mixed) *[]byte { return &m.Blob }),
	Define("b", Bool(), func(m *mixed) *bool { return &m.B }),
	Define("nums", ListOf[uint64](Uint64[uint64](), 8), func(m *mixed) *[]uint64 { return &m.Nums }),
	Define("c", Uint32[uint32](), func(m *mixed) *uint32 { return &m.C }),
)

var blockCmp = cmp.AllowUnexported(tripleBody{})

func sampleBlock() *testBlock {
	b := &testBlock{Slot: 5, ProposerIndex: 7, Body: tripleBody{data: []byte{0x01, 0x02, 0x03}}}
	for i := range b.StateRoot {
		b.StateRoot[i] = 0xAA
	}
	return b
}

func TestContainerConcreteLayout(t *testing.T) {
	enc, err := testBlockSchema.Marshal(sampleBlock())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(enc) != 87 {
		t.Fatalf("encoded length = %d, want 87", len(enc))
	}

	want := make([]byte, 0, 87)
	want = binary.LittleEndian.AppendUint64(want, 5)
	want = binary.LittleEndian.AppendUint64(want, 7)
	want = append(want, make([]byte, 32)...)
	want = append(want, bytes.Repeat([]byte{0xAA}, 32)...)
	want = binary.LittleEndian.AppendUint32(want, 84)
	want = append(want, 0x01, 0x02, 0x03)
	if !bytes.Equal(enc, want) {
		t.Fatalf("encoding mismatch\n got %x\nwant %x", enc, want)
	}

	got, err := testBlockSchema.Unmarshal(enc)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(sampleBlock(), got, blockCmp); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := testBlockSchema.Unmarshal(enc[:86]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("86-byte prefix: err = %v, want ErrTruncated", err)
	}
}

func TestContainerHeadLen(t *testing.T) {
	if got := testBlockSchema.HeadLen(); got != 84 {
		t.Fatalf("HeadLen = %d, want 84", got)
	}
	if _, ok := testBlockSchema.FixedSize(); ok {
		t.Fatal("block schema reported fixed size")
	}
	if size, ok := testHeaderSchema.FixedSize(); !ok || size != 80 {
		t.Fatalf("header FixedSize = %d, %v; want 80, true", size, ok)
	}
	if got := testBlockSchema.VariableFields(); got != 1 {
		t.Fatalf("VariableFields = %d, want 1", got)
	}
}

func TestContainerDeterministic(t *testing.T) {
	b := sampleBlock()
	first, err := testBlockSchema.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := testBlockSchema.Marshal(b)
		if err != nil {
			t.Fatalf("Marshal #%d: %v", i, err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("Marshal #%d differs: %x vs %x", i, again, first)
		}
	}
}

func TestContainerFixedOnly(t *testing.T) {
	h := &testHeader{Slot: 5, ProposerIndex: 7}
	for i := range h.StateRoot {
		h.StateRoot[i] = 0xAA
	}
	enc, err := testHeaderSchema.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var want []byte
	want = append(want, Uint64[uint64]().Encode(5)...)
	want = append(want, Uint64[uint64]().Encode(7)...)
	want = append(want, h.ParentRoot[:]...)
	want = append(want, h.StateRoot[:]...)
	if !bytes.Equal(enc, want) {
		t.Fatalf("fixed-only encoding is not the concatenation of fields:\n got %x\nwant %x", enc, want)
	}

	got, err := testHeaderSchema.Unmarshal(enc)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if *got != *h {
		t.Fatalf("round trip: got %+v, want %+v", got, h)
	}

	if _, err := testHeaderSchema.Unmarshal(append(enc, 0)); !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("trailing byte: err = %v, want ErrTrailingBytes", err)
	}
	if _, err := testHeaderSchema.Unmarshal(enc[:79]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("short input: err = %v, want ErrTruncated", err)
	}
}

func TestContainerTruncationNeverSucceeds(t *testing.T) {
	enc, err := testBlockSchema.Marshal(sampleBlock())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for n := 0; n < len(enc); n++ {
		_, err := testBlockSchema.Unmarshal(enc[:n])
		if err == nil {
			t.Fatalf("decode of %d-byte prefix succeeded", n)
		}
		if !errors.Is(err, ErrTruncated) && !errors.Is(err, ErrOffset) && !errors.Is(err, ErrSubDecode) {
			t.Fatalf("decode of %d-byte prefix: unexpected error class %v", n, err)
		}
	}
}

func TestContainerOffsetValidation(t *testing.T) {
	valid, err := testBlockSchema.Marshal(sampleBlock())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	tests := []struct {
		name   string
		offset uint32
	}{
		{"below head", 80},
		{"zero", 0},
		{"gap after head", 85},
		{"past end", 88},
		{"huge", 0xFFFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte{}, valid...)
			binary.LittleEndian.PutUint32(buf[80:], tt.offset)
			got, err := testBlockSchema.Unmarshal(buf)
			if !errors.Is(err, ErrOffset) {
				t.Fatalf("err = %v, want ErrOffset", err)
			}
			if got != nil {
				t.Fatalf("got container %+v alongside error", got)
			}
		})
	}
}

func TestContainerSubDecodeError(t *testing.T) {
	enc, err := testBlockSchema.Marshal(sampleBlock())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	_, err = testBlockSchema.Unmarshal(append(enc, 0x04))
	if !errors.Is(err, ErrSubDecode) {
		t.Fatalf("err = %v, want ErrSubDecode", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("err %T is not a *FieldError", err)
	}
	if fe.Container != "TestBlock" || fe.Field != "body" {
		t.Fatalf("FieldError = %s.%s, want TestBlock.body", fe.Container, fe.Field)
	}
}

func TestContainerFixedFieldRejected(t *testing.T) {
	m := &mixed{A: 1, B: true}
	enc, err := mixedSchema.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	enc[6] = 0x02 // bool slot follows a(2) + offset(4)
	_, err = mixedSchema.Unmarshal(enc)
	if !errors.Is(err, ErrInvalidBool) || !errors.Is(err, ErrSubDecode) {
		t.Fatalf("err = %v, want ErrInvalidBool wrapped as ErrSubDecode", err)
	}
}

func TestContainerInterleavedOffsets(t *testing.T) {
	m := &mixed{
		A:    0x0102,
		Blob: []byte("hello"),
		B:    true,
		Nums: []uint64{1, 2, 3},
		C:    9,
	}
	enc, err := mixedSchema.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// head: a(2) + off(4) + b(1) + off(4) + c(4) = 15
	if got := mixedSchema.HeadLen(); got != 15 {
		t.Fatalf("HeadLen = %d, want 15", got)
	}
	if want := 15 + 5 + 24; len(enc) != want {
		t.Fatalf("len = %d, want %d", len(enc), want)
	}
	if off := binary.LittleEndian.Uint32(enc[2:]); off != 15 {
		t.Fatalf("blob offset = %d, want 15", off)
	}
	if off := binary.LittleEndian.Uint32(enc[7:]); off != 20 {
		t.Fatalf("nums offset = %d, want 20", off)
	}
	if got := mixedSchema.SizeOf(m); got != len(enc) {
		t.Fatalf("SizeOf = %d, encoded %d", got, len(enc))
	}

	got, err := mixedSchema.Unmarshal(enc)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Swap the two offsets: non-monotonic table.
	bad := append([]byte{}, enc...)
	binary.LittleEndian.PutUint32(bad[2:], 15)
	binary.LittleEndian.PutUint32(bad[7:], 14)
	if _, err := mixedSchema.Unmarshal(bad); !errors.Is(err, ErrOffset) {
		t.Fatalf("decreasing offsets: err = %v, want ErrOffset", err)
	}
}

func TestContainerEmptyVariablePayloads(t *testing.T) {
	m := &mixed{A: 3, Blob: []byte{}, Nums: []uint64{}}
	enc, err := mixedSchema.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(enc) != 15 {
		t.Fatalf("len = %d, want 15", len(enc))
	}
	got, err := mixedSchema.Unmarshal(enc)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestContainerEncodeErrors(t *testing.T) {
	m := &mixed{Nums: make([]uint64, 9)}
	if _, err := mixedSchema.Marshal(m); !errors.Is(err, ErrListTooLong) {
		t.Fatalf("err = %v, want ErrListTooLong", err)
	}
}

// liar reports a size different from what it writes.
type liar struct{}

func (liar) MarshalSSZ() ([]byte, error) { return []byte{1, 2}, nil }

func (liar) SizeSSZ() int { return 3 }

func (*liar) UnmarshalSSZ([]byte) error { return nil }

type liarBox struct {
	L liar
}

func TestContainerInconsistentSizer(t *testing.T) {
	s := MustSchema("LiarBox", Dynamic("l", func(b *liarBox) Object { return &b.L }))
	if _, err := s.Marshal(&liarBox{}); !errors.Is(err, ErrSize) {
		t.Fatalf("err = %v, want ErrSize", err)
	}
}

func TestContainerAppendTo(t *testing.T) {
	prefix := []byte{0xde, 0xad}
	out, err := testBlockSchema.AppendTo(prefix, sampleBlock())
	if err != nil {
		t.Fatalf("AppendTo: %v", err)
	}
	if !bytes.Equal(out[:2], prefix) || len(out) != 89 {
		t.Fatalf("AppendTo produced %x", out)
	}
	// Offsets are relative to the container, not to dst.
	if off := binary.LittleEndian.Uint32(out[2+80:]); off != 84 {
		t.Fatalf("offset = %d, want 84", off)
	}
}

func TestContainerDecodeIntoKeepsTargetOnError(t *testing.T) {
	target := sampleBlock()
	target.Slot = 99
	if err := testBlockSchema.DecodeInto([]byte{1, 2, 3}, target); err == nil {
		t.Fatal("expected error")
	}
	if target.Slot != 99 {
		t.Fatalf("target modified on failed decode: slot = %d", target.Slot)
	}
}

func TestNewSchemaValidation(t *testing.T) {
	u := Uint64[uint64]()
	ref := func(h *testHeader) *uint64 { return &h.Slot }
	tests := []struct {
		name   string
		schema string
		fields []Field[testHeader]
	}{
		{"no name", "", []Field[testHeader]{Define("slot", u, ref)}},
		{"no fields", "Empty", nil},
		{"blank field", "Blank", []Field[testHeader]{Define("", u, ref)}},
		{"undefined field", "Undefined", []Field[testHeader]{{}}},
		{"duplicate", "Dup", []Field[testHeader]{Define("slot", u, ref), Define("slot", u, ref)}},
		{"zero width", "Zero", []Field[testHeader]{Define("slot", FixedCodec[uint64]{Name: "nothing"}, ref)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSchema(tt.schema, tt.fields...); !errors.Is(err, ErrSchema) {
				t.Fatalf("err = %v, want ErrSchema", err)
			}
		})
	}
}

func TestSchemaIntrospection(t *testing.T) {
	want := []string{"slot", "proposer_index", "parent_root", "state_root", "body"}
	if diff := cmp.Diff(want, testBlockSchema.FieldNames()); diff != "" {
		t.Fatalf("FieldNames mismatch (-want +got):\n%s", diff)
	}
	fields := testBlockSchema.Fields()
	for i, f := range fields {
		wantKind := Fixed
		if i == 4 {
			wantKind = Variable
		}
		if f.Kind() != wantKind {
			t.Fatalf("field %s kind = %v, want %v", f.Name(), f.Kind(), wantKind)
		}
	}
	if fields[4].HeadSize() != BytesPerLengthOffset || fields[2].HeadSize() != 32 {
		t.Fatalf("unexpected head sizes %d, %d", fields[4].HeadSize(), fields[2].HeadSize())
	}
	if testBlockSchema.Name() != "TestBlock" {
		t.Fatalf("Name = %q", testBlockSchema.Name())
	}
}

type feeRecord struct {
	Slot    uint64
	BaseFee uint256.Int
	Extra   []byte
}

var feeRecordSchema = MustSchema("FeeRecord",
	Define("slot", Uint64[uint64](), func(r *feeRecord) *uint64 { return &r.Slot }),
	Define("base_fee", Uint256(), func(r *feeRecord) *uint256.Int { return &r.BaseFee }),
	Define("extra", ByteList(32), func(r *feeRecord) *[]byte { return &r.Extra }),
)

func TestContainerUint256Field(t *testing.T) {
	r := &feeRecord{Slot: 3, Extra: []byte{0xee}}
	r.BaseFee.SetUint64(1_000_000_007)
	enc, err := feeRecordSchema.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := feeRecordSchema.HeadLen(); got != 44 {
		t.Fatalf("HeadLen = %d, want 44", got)
	}
	if want := Uint256().Encode(r.BaseFee); !bytes.Equal(enc[8:40], want) {
		t.Fatalf("base_fee bytes = %x, want %x", enc[8:40], want)
	}
	got, err := feeRecordSchema.Unmarshal(enc)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Slot != r.Slot || !got.BaseFee.Eq(&r.BaseFee) || !bytes.Equal(got.Extra, r.Extra) {
		t.Fatalf("round trip: got %+v, want %+v", got, r)
	}
}
