// Package consensus declares the phase0 beacon-chain containers carried in a
// beacon block, together with their SSZ schemas and their human-readable
// (beacon API style) text forms.
package consensus

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eth2030/sszcodec/ssz"
)

// ErrInvalidQuantity is returned when a decimal quantity cannot be parsed.
var ErrInvalidQuantity = errors.New("consensus: invalid quantity")

// Root is a 32-byte hash tree root.
type Root = common.Hash

// Slot is a consensus-layer slot number.
type Slot uint64

// Epoch is a consensus-layer epoch number.
type Epoch uint64

// ValidatorIndex is a beacon-chain validator index.
type ValidatorIndex uint64

// CommitteeIndex identifies a committee within a slot.
type CommitteeIndex uint64

// Gwei is an amount in Gwei.
type Gwei uint64

// Uint64 is a plain uint64 quantity (e.g. a deposit count) rendered as a
// decimal string in text form.
type Uint64 uint64

// BLSPubkey is a compressed BLS12-381 public key.
type BLSPubkey [48]byte

// BLSSignature is a compressed BLS12-381 signature.
type BLSSignature [96]byte

// Graffiti is the 32 bytes of arbitrary proposer data in a block body.
type Graffiti [32]byte

// --- Text forms ---
//
// Quantities render as decimal strings and byte arrays as 0x-prefixed hex,
// matching the beacon node API.

func marshalQuantity(v uint64) ([]byte, error) {
	return strconv.AppendUint(nil, v, 10), nil
}

func unmarshalQuantity(kind string, text []byte) (uint64, error) {
	v, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidQuantity, kind, text)
	}
	return v, nil
}

func (s Slot) MarshalText() ([]byte, error) { return marshalQuantity(uint64(s)) }

func (s *Slot) UnmarshalText(text []byte) error {
	v, err := unmarshalQuantity("slot", text)
	if err != nil {
		return err
	}
	*s = Slot(v)
	return nil
}

func (e Epoch) MarshalText() ([]byte, error) { return marshalQuantity(uint64(e)) }

func (e *Epoch) UnmarshalText(text []byte) error {
	v, err := unmarshalQuantity("epoch", text)
	if err != nil {
		return err
	}
	*e = Epoch(v)
	return nil
}

func (i ValidatorIndex) MarshalText() ([]byte, error) { return marshalQuantity(uint64(i)) }

func (i *ValidatorIndex) UnmarshalText(text []byte) error {
	v, err := unmarshalQuantity("validator index", text)
	if err != nil {
		return err
	}
	*i = ValidatorIndex(v)
	return nil
}

func (i CommitteeIndex) MarshalText() ([]byte, error) { return marshalQuantity(uint64(i)) }

func (i *CommitteeIndex) UnmarshalText(text []byte) error {
	v, err := unmarshalQuantity("committee index", text)
	if err != nil {
		return err
	}
	*i = CommitteeIndex(v)
	return nil
}

func (g Gwei) MarshalText() ([]byte, error) { return marshalQuantity(uint64(g)) }

func (g *Gwei) UnmarshalText(text []byte) error {
	v, err := unmarshalQuantity("gwei", text)
	if err != nil {
		return err
	}
	*g = Gwei(v)
	return nil
}

func (u Uint64) MarshalText() ([]byte, error) { return marshalQuantity(uint64(u)) }

func (u *Uint64) UnmarshalText(text []byte) error {
	v, err := unmarshalQuantity("uint64", text)
	if err != nil {
		return err
	}
	*u = Uint64(v)
	return nil
}

func (p BLSPubkey) MarshalText() ([]byte, error) { return hexutil.Bytes(p[:]).MarshalText() }

func (p *BLSPubkey) UnmarshalText(text []byte) error {
	return hexutil.UnmarshalFixedText("BLSPubkey", text, p[:])
}

func (s BLSSignature) MarshalText() ([]byte, error) { return hexutil.Bytes(s[:]).MarshalText() }

func (s *BLSSignature) UnmarshalText(text []byte) error {
	return hexutil.UnmarshalFixedText("BLSSignature", text, s[:])
}

func (g Graffiti) MarshalText() ([]byte, error) { return hexutil.Bytes(g[:]).MarshalText() }

func (g *Graffiti) UnmarshalText(text []byte) error {
	return hexutil.UnmarshalFixedText("Graffiti", text, g[:])
}

// --- Field codecs ---

var (
	slotCodec           = ssz.Uint64[Slot]()
	epochCodec          = ssz.Uint64[Epoch]()
	validatorIndexCodec = ssz.Uint64[ValidatorIndex]()
	committeeIndexCodec = ssz.Uint64[CommitteeIndex]()
	gweiCodec           = ssz.Uint64[Gwei]()
	uint64Codec         = ssz.Uint64[Uint64]()
	rootCodec           = ssz.Bytes32[Root]()
	graffitiCodec       = ssz.Bytes32[Graffiti]()
	pubkeyCodec         = ssz.Bytes48[BLSPubkey]()
	signatureCodec      = ssz.Bytes96[BLSSignature]()
)
