package consensus

import "github.com/eth2030/sszcodec/ssz"

// BeaconBlockHeader is a block with its body replaced by the body root. It
// has only fixed-size fields and encodes to exactly 112 bytes.
type BeaconBlockHeader struct {
	Slot          Slot           `json:"slot" yaml:"slot"`
	ProposerIndex ValidatorIndex `json:"proposer_index" yaml:"proposer_index"`
	ParentRoot    Root           `json:"parent_root" yaml:"parent_root"`
	StateRoot     Root           `json:"state_root" yaml:"state_root"`
	BodyRoot      Root           `json:"body_root" yaml:"body_root"`
}

var beaconBlockHeaderSchema = ssz.MustSchema("BeaconBlockHeader",
	ssz.Define("slot", slotCodec, func(h *BeaconBlockHeader) *Slot { return &h.Slot }),
	ssz.Define("proposer_index", validatorIndexCodec, func(h *BeaconBlockHeader) *ValidatorIndex { return &h.ProposerIndex }),
	ssz.Define("parent_root", rootCodec, func(h *BeaconBlockHeader) *Root { return &h.ParentRoot }),
	ssz.Define("state_root", rootCodec, func(h *BeaconBlockHeader) *Root { return &h.StateRoot }),
	ssz.Define("body_root", rootCodec, func(h *BeaconBlockHeader) *Root { return &h.BodyRoot }),
)

// SignedBeaconBlockHeader is a header with the proposer's signature.
type SignedBeaconBlockHeader struct {
	Message   BeaconBlockHeader `json:"message" yaml:"message"`
	Signature BLSSignature      `json:"signature" yaml:"signature"`
}

var signedBeaconBlockHeaderSchema = ssz.MustSchema("SignedBeaconBlockHeader",
	ssz.Define[SignedBeaconBlockHeader, BeaconBlockHeader]("message", beaconBlockHeaderSchema,
		func(h *SignedBeaconBlockHeader) *BeaconBlockHeader { return &h.Message }),
	ssz.Define("signature", signatureCodec, func(h *SignedBeaconBlockHeader) *BLSSignature { return &h.Signature }),
)

// ProposerSlashing proves that a proposer signed two different headers for
// the same slot.
type ProposerSlashing struct {
	SignedHeader1 SignedBeaconBlockHeader `json:"signed_header_1" yaml:"signed_header_1"`
	SignedHeader2 SignedBeaconBlockHeader `json:"signed_header_2" yaml:"signed_header_2"`
}

var proposerSlashingSchema = ssz.MustSchema("ProposerSlashing",
	ssz.Define[ProposerSlashing, SignedBeaconBlockHeader]("signed_header_1", signedBeaconBlockHeaderSchema,
		func(s *ProposerSlashing) *SignedBeaconBlockHeader { return &s.SignedHeader1 }),
	ssz.Define[ProposerSlashing, SignedBeaconBlockHeader]("signed_header_2", signedBeaconBlockHeaderSchema,
		func(s *ProposerSlashing) *SignedBeaconBlockHeader { return &s.SignedHeader2 }),
)

// AttesterSlashing proves that a set of validators cast conflicting votes.
type AttesterSlashing struct {
	Attestation1 IndexedAttestation `json:"attestation_1" yaml:"attestation_1"`
	Attestation2 IndexedAttestation `json:"attestation_2" yaml:"attestation_2"`
}

var attesterSlashingSchema = ssz.MustSchema("AttesterSlashing",
	ssz.Define[AttesterSlashing, IndexedAttestation]("attestation_1", indexedAttestationSchema,
		func(s *AttesterSlashing) *IndexedAttestation { return &s.Attestation1 }),
	ssz.Define[AttesterSlashing, IndexedAttestation]("attestation_2", indexedAttestationSchema,
		func(s *AttesterSlashing) *IndexedAttestation { return &s.Attestation2 }),
)

// Eth1Data is the proposer's vote on the deposit contract state.
type Eth1Data struct {
	DepositRoot  Root   `json:"deposit_root" yaml:"deposit_root"`
	DepositCount Uint64 `json:"deposit_count" yaml:"deposit_count"`
	BlockHash    Root   `json:"block_hash" yaml:"block_hash"`
}

var eth1DataSchema = ssz.MustSchema("Eth1Data",
	ssz.Define("deposit_root", rootCodec, func(d *Eth1Data) *Root { return &d.DepositRoot }),
	ssz.Define("deposit_count", uint64Codec, func(d *Eth1Data) *Uint64 { return &d.DepositCount }),
	ssz.Define("block_hash", rootCodec, func(d *Eth1Data) *Root { return &d.BlockHash }),
)

// DepositData is the payload of a deposit contract log.
type DepositData struct {
	Pubkey                BLSPubkey    `json:"pubkey" yaml:"pubkey"`
	WithdrawalCredentials Root         `json:"withdrawal_credentials" yaml:"withdrawal_credentials"`
	Amount                Gwei         `json:"amount" yaml:"amount"`
	Signature             BLSSignature `json:"signature" yaml:"signature"`
}

var depositDataSchema = ssz.MustSchema("DepositData",
	ssz.Define("pubkey", pubkeyCodec, func(d *DepositData) *BLSPubkey { return &d.Pubkey }),
	ssz.Define("withdrawal_credentials", rootCodec, func(d *DepositData) *Root { return &d.WithdrawalCredentials }),
	ssz.Define("amount", gweiCodec, func(d *DepositData) *Gwei { return &d.Amount }),
	ssz.Define("signature", signatureCodec, func(d *DepositData) *BLSSignature { return &d.Signature }),
)

// DepositProof is the Merkle branch of a deposit against the deposit root.
type DepositProof [DepositProofLength]Root

var depositProofCodec = ssz.Array(rootCodec, DepositProofLength, func(p *DepositProof) []Root { return p[:] })

// Deposit is a deposit with its inclusion proof.
type Deposit struct {
	Proof DepositProof `json:"proof" yaml:"proof"`
	Data  DepositData  `json:"data" yaml:"data"`
}

var depositSchema = ssz.MustSchema("Deposit",
	ssz.Define("proof", depositProofCodec, func(d *Deposit) *DepositProof { return &d.Proof }),
	ssz.Define[Deposit, DepositData]("data", depositDataSchema, func(d *Deposit) *DepositData { return &d.Data }),
)

// VoluntaryExit is a validator's request to leave the active set.
type VoluntaryExit struct {
	Epoch          Epoch          `json:"epoch" yaml:"epoch"`
	ValidatorIndex ValidatorIndex `json:"validator_index" yaml:"validator_index"`
}

var voluntaryExitSchema = ssz.MustSchema("VoluntaryExit",
	ssz.Define("epoch", epochCodec, func(e *VoluntaryExit) *Epoch { return &e.Epoch }),
	ssz.Define("validator_index", validatorIndexCodec, func(e *VoluntaryExit) *ValidatorIndex { return &e.ValidatorIndex }),
)

// SignedVoluntaryExit is a voluntary exit signed by the exiting validator.
type SignedVoluntaryExit struct {
	Message   VoluntaryExit `json:"message" yaml:"message"`
	Signature BLSSignature  `json:"signature" yaml:"signature"`
}

var signedVoluntaryExitSchema = ssz.MustSchema("SignedVoluntaryExit",
	ssz.Define[SignedVoluntaryExit, VoluntaryExit]("message", voluntaryExitSchema,
		func(e *SignedVoluntaryExit) *VoluntaryExit { return &e.Message }),
	ssz.Define("signature", signatureCodec, func(e *SignedVoluntaryExit) *BLSSignature { return &e.Signature }),
)
