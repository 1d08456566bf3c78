package consensus

import "github.com/eth2030/sszcodec/ssz"

// BeaconBlockBody holds the operations a proposer includes in a block.
type BeaconBlockBody struct {
	RandaoReveal      BLSSignature          `json:"randao_reveal" yaml:"randao_reveal"`
	Eth1Data          Eth1Data              `json:"eth1_data" yaml:"eth1_data"`
	Graffiti          Graffiti              `json:"graffiti" yaml:"graffiti"`
	ProposerSlashings []ProposerSlashing    `json:"proposer_slashings" yaml:"proposer_slashings"`
	AttesterSlashings []AttesterSlashing    `json:"attester_slashings" yaml:"attester_slashings"`
	Attestations      []Attestation         `json:"attestations" yaml:"attestations"`
	Deposits          []Deposit             `json:"deposits" yaml:"deposits"`
	VoluntaryExits    []SignedVoluntaryExit `json:"voluntary_exits" yaml:"voluntary_exits"`
}

var beaconBlockBodySchema = ssz.MustSchema("BeaconBlockBody",
	ssz.Define("randao_reveal", signatureCodec, func(b *BeaconBlockBody) *BLSSignature { return &b.RandaoReveal }),
	ssz.Define[BeaconBlockBody, Eth1Data]("eth1_data", eth1DataSchema, func(b *BeaconBlockBody) *Eth1Data { return &b.Eth1Data }),
	ssz.Define("graffiti", graffitiCodec, func(b *BeaconBlockBody) *Graffiti { return &b.Graffiti }),
	ssz.Define("proposer_slashings", ssz.ListOf[ProposerSlashing](proposerSlashingSchema, MaxProposerSlashings),
		func(b *BeaconBlockBody) *[]ProposerSlashing { return &b.ProposerSlashings }),
	ssz.Define("attester_slashings", ssz.ListOf[AttesterSlashing](attesterSlashingSchema, MaxAttesterSlashings),
		func(b *BeaconBlockBody) *[]AttesterSlashing { return &b.AttesterSlashings }),
	ssz.Define("attestations", ssz.ListOf[Attestation](attestationSchema, MaxAttestations),
		func(b *BeaconBlockBody) *[]Attestation { return &b.Attestations }),
	ssz.Define("deposits", ssz.ListOf[Deposit](depositSchema, MaxDeposits),
		func(b *BeaconBlockBody) *[]Deposit { return &b.Deposits }),
	ssz.Define("voluntary_exits", ssz.ListOf[SignedVoluntaryExit](signedVoluntaryExitSchema, MaxVoluntaryExits),
		func(b *BeaconBlockBody) *[]SignedVoluntaryExit { return &b.VoluntaryExits }),
)

// BeaconBlock is a phase0 beacon block. The body is carried as an opaque
// variable-size object, so its layout is whatever BeaconBlockBody encodes.
//
// Wire layout: slot(8) | proposer_index(8) | parent_root(32) |
// state_root(32) | offset(body)(4) | body.
type BeaconBlock struct {
	Slot          Slot            `json:"slot" yaml:"slot"`
	ProposerIndex ValidatorIndex  `json:"proposer_index" yaml:"proposer_index"`
	ParentRoot    Root            `json:"parent_root" yaml:"parent_root"`
	StateRoot     Root            `json:"state_root" yaml:"state_root"`
	Body          BeaconBlockBody `json:"body" yaml:"body"`
}

var beaconBlockSchema = ssz.MustSchema("BeaconBlock",
	ssz.Define("slot", slotCodec, func(b *BeaconBlock) *Slot { return &b.Slot }),
	ssz.Define("proposer_index", validatorIndexCodec, func(b *BeaconBlock) *ValidatorIndex { return &b.ProposerIndex }),
	ssz.Define("parent_root", rootCodec, func(b *BeaconBlock) *Root { return &b.ParentRoot }),
	ssz.Define("state_root", rootCodec, func(b *BeaconBlock) *Root { return &b.StateRoot }),
	ssz.Dynamic("body", func(b *BeaconBlock) ssz.Object { return &b.Body }),
)

// SignedBeaconBlock is a beacon block with the proposer's signature.
type SignedBeaconBlock struct {
	Message   BeaconBlock  `json:"message" yaml:"message"`
	Signature BLSSignature `json:"signature" yaml:"signature"`
}

var signedBeaconBlockSchema = ssz.MustSchema("SignedBeaconBlock",
	ssz.Define[SignedBeaconBlock, BeaconBlock]("message", beaconBlockSchema,
		func(b *SignedBeaconBlock) *BeaconBlock { return &b.Message }),
	ssz.Define("signature", signatureCodec, func(b *SignedBeaconBlock) *BLSSignature { return &b.Signature }),
)

// Header returns the block header with the given body root. Computing the
// body root itself is left to the caller.
func (b *BeaconBlock) Header(bodyRoot Root) BeaconBlockHeader {
	return BeaconBlockHeader{
		Slot:          b.Slot,
		ProposerIndex: b.ProposerIndex,
		ParentRoot:    b.ParentRoot,
		StateRoot:     b.StateRoot,
		BodyRoot:      bodyRoot,
	}
}
