package consensus

import "github.com/eth2030/sszcodec/ssz"

// Checkpoint is a finality checkpoint (epoch + block root).
type Checkpoint struct {
	Epoch Epoch `json:"epoch" yaml:"epoch"`
	Root  Root  `json:"root" yaml:"root"`
}

var checkpointSchema = ssz.MustSchema("Checkpoint",
	ssz.Define("epoch", epochCodec, func(c *Checkpoint) *Epoch { return &c.Epoch }),
	ssz.Define("root", rootCodec, func(c *Checkpoint) *Root { return &c.Root }),
)

// AttestationData is the data validators sign when attesting.
type AttestationData struct {
	Slot            Slot           `json:"slot" yaml:"slot"`
	Index           CommitteeIndex `json:"index" yaml:"index"`
	BeaconBlockRoot Root           `json:"beacon_block_root" yaml:"beacon_block_root"`
	Source          Checkpoint     `json:"source" yaml:"source"`
	Target          Checkpoint     `json:"target" yaml:"target"`
}

var attestationDataSchema = ssz.MustSchema("AttestationData",
	ssz.Define("slot", slotCodec, func(d *AttestationData) *Slot { return &d.Slot }),
	ssz.Define("index", committeeIndexCodec, func(d *AttestationData) *CommitteeIndex { return &d.Index }),
	ssz.Define("beacon_block_root", rootCodec, func(d *AttestationData) *Root { return &d.BeaconBlockRoot }),
	ssz.Define[AttestationData, Checkpoint]("source", checkpointSchema, func(d *AttestationData) *Checkpoint { return &d.Source }),
	ssz.Define[AttestationData, Checkpoint]("target", checkpointSchema, func(d *AttestationData) *Checkpoint { return &d.Target }),
)

// Attestation is an aggregate vote of one committee.
type Attestation struct {
	AggregationBits ssz.Bitlist     `json:"aggregation_bits" yaml:"aggregation_bits"`
	Data            AttestationData `json:"data" yaml:"data"`
	Signature       BLSSignature    `json:"signature" yaml:"signature"`
}

var attestationSchema = ssz.MustSchema("Attestation",
	ssz.Define("aggregation_bits", ssz.BitlistOf(MaxValidatorsPerCommittee), func(a *Attestation) *ssz.Bitlist { return &a.AggregationBits }),
	ssz.Define[Attestation, AttestationData]("data", attestationDataSchema, func(a *Attestation) *AttestationData { return &a.Data }),
	ssz.Define("signature", signatureCodec, func(a *Attestation) *BLSSignature { return &a.Signature }),
)

// IndexedAttestation is an attestation with its participants resolved to
// validator indices.
type IndexedAttestation struct {
	AttestingIndices []ValidatorIndex `json:"attesting_indices" yaml:"attesting_indices"`
	Data             AttestationData  `json:"data" yaml:"data"`
	Signature        BLSSignature     `json:"signature" yaml:"signature"`
}

var indexedAttestationSchema = ssz.MustSchema("IndexedAttestation",
	ssz.Define("attesting_indices", ssz.ListOf[ValidatorIndex](validatorIndexCodec, MaxValidatorsPerCommittee),
		func(a *IndexedAttestation) *[]ValidatorIndex { return &a.AttestingIndices }),
	ssz.Define[IndexedAttestation, AttestationData]("data", attestationDataSchema, func(a *IndexedAttestation) *AttestationData { return &a.Data }),
	ssz.Define("signature", signatureCodec, func(a *IndexedAttestation) *BLSSignature { return &a.Signature }),
)
