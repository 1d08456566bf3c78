package consensus

import "github.com/eth2030/sszcodec/ssz"

// Every container implements ssz.Object through its schema.
var (
	_ ssz.Object = (*Checkpoint)(nil)
	_ ssz.Object = (*AttestationData)(nil)
	_ ssz.Object = (*Attestation)(nil)
	_ ssz.Object = (*IndexedAttestation)(nil)
	_ ssz.Object = (*BeaconBlockHeader)(nil)
	_ ssz.Object = (*SignedBeaconBlockHeader)(nil)
	_ ssz.Object = (*ProposerSlashing)(nil)
	_ ssz.Object = (*AttesterSlashing)(nil)
	_ ssz.Object = (*Eth1Data)(nil)
	_ ssz.Object = (*DepositData)(nil)
	_ ssz.Object = (*Deposit)(nil)
	_ ssz.Object = (*VoluntaryExit)(nil)
	_ ssz.Object = (*SignedVoluntaryExit)(nil)
	_ ssz.Object = (*BeaconBlockBody)(nil)
	_ ssz.Object = (*BeaconBlock)(nil)
	_ ssz.Object = (*SignedBeaconBlock)(nil)
)

// SizeSSZ returns the encoded length of the Checkpoint.
func (c *Checkpoint) SizeSSZ() int { return checkpointSchema.SizeOf(c) }

func (c *Checkpoint) MarshalSSZ() ([]byte, error) { return checkpointSchema.Marshal(c) }

func (c *Checkpoint) MarshalSSZTo(dst []byte) ([]byte, error) { return checkpointSchema.AppendTo(dst, c) }

func (c *Checkpoint) UnmarshalSSZ(data []byte) error { return checkpointSchema.DecodeInto(data, c) }

// SizeSSZ returns the encoded length of the AttestationData.
func (d *AttestationData) SizeSSZ() int { return attestationDataSchema.SizeOf(d) }

func (d *AttestationData) MarshalSSZ() ([]byte, error) { return attestationDataSchema.Marshal(d) }

func (d *AttestationData) MarshalSSZTo(dst []byte) ([]byte, error) { return attestationDataSchema.AppendTo(dst, d) }

func (d *AttestationData) UnmarshalSSZ(data []byte) error { return attestationDataSchema.DecodeInto(data, d) }

// SizeSSZ returns the encoded length of the Attestation.
func (a *Attestation) SizeSSZ() int { return attestationSchema.SizeOf(a) }

func (a *Attestation) MarshalSSZ() ([]byte, error) { return attestationSchema.Marshal(a) }

func (a *Attestation) MarshalSSZTo(dst []byte) ([]byte, error) { return attestationSchema.AppendTo(dst, a) }

func (a *Attestation) UnmarshalSSZ(data []byte) error { return attestationSchema.DecodeInto(data, a) }

// SizeSSZ returns the encoded length of the IndexedAttestation.
func (a *IndexedAttestation) SizeSSZ() int { return indexedAttestationSchema.SizeOf(a) }

func (a *IndexedAttestation) MarshalSSZ() ([]byte, error) { return indexedAttestationSchema.Marshal(a) }

func (a *IndexedAttestation) MarshalSSZTo(dst []byte) ([]byte, error) { return indexedAttestationSchema.AppendTo(dst, a) }

func (a *IndexedAttestation) UnmarshalSSZ(data []byte) error { return indexedAttestationSchema.DecodeInto(data, a) }

// SizeSSZ returns the encoded length of the BeaconBlockHeader.
func (h *BeaconBlockHeader) SizeSSZ() int { return beaconBlockHeaderSchema.SizeOf(h) }

func (h *BeaconBlockHeader) MarshalSSZ() ([]byte, error) { return beaconBlockHeaderSchema.Marshal(h) }

func (h *BeaconBlockHeader) MarshalSSZTo(dst []byte) ([]byte, error) { return beaconBlockHeaderSchema.AppendTo(dst, h) }

func (h *BeaconBlockHeader) UnmarshalSSZ(data []byte) error { return beaconBlockHeaderSchema.DecodeInto(data, h) }

// SizeSSZ returns the encoded length of the SignedBeaconBlockHeader.
func (h *SignedBeaconBlockHeader) SizeSSZ() int { return signedBeaconBlockHeaderSchema.SizeOf(h) }

func (h *SignedBeaconBlockHeader) MarshalSSZ() ([]byte, error) { return signedBeaconBlockHeaderSchema.Marshal(h) }

func (h *SignedBeaconBlockHeader) MarshalSSZTo(dst []byte) ([]byte, error) { return signedBeaconBlockHeaderSchema.AppendTo(dst, h) }

func (h *SignedBeaconBlockHeader) UnmarshalSSZ(data []byte) error { return signedBeaconBlockHeaderSchema.DecodeInto(data, h) }

// SizeSSZ returns the encoded length of the ProposerSlashing.
func (s *ProposerSlashing) SizeSSZ() int { return proposerSlashingSchema.SizeOf(s) }

func (s *ProposerSlashing) MarshalSSZ() ([]byte, error) { return proposerSlashingSchema.Marshal(s) }

func (s *ProposerSlashing) MarshalSSZTo(dst []byte) ([]byte, error) { return proposerSlashingSchema.AppendTo(dst, s) }

func (s *ProposerSlashing) UnmarshalSSZ(data []byte) error { return proposerSlashingSchema.DecodeInto(data, s) }

// SizeSSZ returns the encoded length of the AttesterSlashing.
func (s *AttesterSlashing) SizeSSZ() int { return attesterSlashingSchema.SizeOf(s) }

func (s *AttesterSlashing) MarshalSSZ() ([]byte, error) { return attesterSlashingSchema.Marshal(s) }

func (s *AttesterSlashing) MarshalSSZTo(dst []byte) ([]byte, error) { return attesterSlashingSchema.AppendTo(dst, s) }

func (s *AttesterSlashing) UnmarshalSSZ(data []byte) error { return attesterSlashingSchema.DecodeInto(data, s) }

// SizeSSZ returns the encoded length of the Eth1Data.
func (d *Eth1Data) SizeSSZ() int { return eth1DataSchema.SizeOf(d) }

func (d *Eth1Data) MarshalSSZ() ([]byte, error) { return eth1DataSchema.Marshal(d) }

func (d *Eth1Data) MarshalSSZTo(dst []byte) ([]byte, error) { return eth1DataSchema.AppendTo(dst, d) }

func (d *Eth1Data) UnmarshalSSZ(data []byte) error { return eth1DataSchema.DecodeInto(data, d) }

// SizeSSZ returns the encoded length of the DepositData.
func (d *DepositData) SizeSSZ() int { return depositDataSchema.SizeOf(d) }

func (d *DepositData) MarshalSSZ() ([]byte, error) { return depositDataSchema.Marshal(d) }

func (d *DepositData) MarshalSSZTo(dst []byte) ([]byte, error) { return depositDataSchema.AppendTo(dst, d) }

func (d *DepositData) UnmarshalSSZ(data []byte) error { return depositDataSchema.DecodeInto(data, d) }

// SizeSSZ returns the encoded length of the Deposit.
func (d *Deposit) SizeSSZ() int { return depositSchema.SizeOf(d) }

func (d *Deposit) MarshalSSZ() ([]byte, error) { return depositSchema.Marshal(d) }

func (d *Deposit) MarshalSSZTo(dst []byte) ([]byte, error) { return depositSchema.AppendTo(dst, d) }

func (d *Deposit) UnmarshalSSZ(data []byte) error { return depositSchema.DecodeInto(data, d) }

// SizeSSZ returns the encoded length of the VoluntaryExit.
func (e *VoluntaryExit) SizeSSZ() int { return voluntaryExitSchema.SizeOf(e) }

func (e *VoluntaryExit) MarshalSSZ() ([]byte, error) { return voluntaryExitSchema.Marshal(e) }

func (e *VoluntaryExit) MarshalSSZTo(dst []byte) ([]byte, error) { return voluntaryExitSchema.AppendTo(dst, e) }

func (e *VoluntaryExit) UnmarshalSSZ(data []byte) error { return voluntaryExitSchema.DecodeInto(data, e) }

// SizeSSZ returns the encoded length of the SignedVoluntaryExit.
func (e *SignedVoluntaryExit) SizeSSZ() int { return signedVoluntaryExitSchema.SizeOf(e) }

func (e *SignedVoluntaryExit) MarshalSSZ() ([]byte, error) { return signedVoluntaryExitSchema.Marshal(e) }

func (e *SignedVoluntaryExit) MarshalSSZTo(dst []byte) ([]byte, error) { return signedVoluntaryExitSchema.AppendTo(dst, e) }

func (e *SignedVoluntaryExit) UnmarshalSSZ(data []byte) error { return signedVoluntaryExitSchema.DecodeInto(data, e) }

// SizeSSZ returns the encoded length of the BeaconBlockBody.
func (b *BeaconBlockBody) SizeSSZ() int { return beaconBlockBodySchema.SizeOf(b) }

func (b *BeaconBlockBody) MarshalSSZ() ([]byte, error) { return beaconBlockBodySchema.Marshal(b) }

func (b *BeaconBlockBody) MarshalSSZTo(dst []byte) ([]byte, error) { return beaconBlockBodySchema.AppendTo(dst, b) }

func (b *BeaconBlockBody) UnmarshalSSZ(data []byte) error { return beaconBlockBodySchema.DecodeInto(data, b) }

// SizeSSZ returns the encoded length of the BeaconBlock.
func (b *BeaconBlock) SizeSSZ() int { return beaconBlockSchema.SizeOf(b) }

func (b *BeaconBlock) MarshalSSZ() ([]byte, error) { return beaconBlockSchema.Marshal(b) }

func (b *BeaconBlock) MarshalSSZTo(dst []byte) ([]byte, error) { return beaconBlockSchema.AppendTo(dst, b) }

func (b *BeaconBlock) UnmarshalSSZ(data []byte) error { return beaconBlockSchema.DecodeInto(data, b) }

// SizeSSZ returns the encoded length of the SignedBeaconBlock.
func (b *SignedBeaconBlock) SizeSSZ() int { return signedBeaconBlockSchema.SizeOf(b) }

func (b *SignedBeaconBlock) MarshalSSZ() ([]byte, error) { return signedBeaconBlockSchema.Marshal(b) }

func (b *SignedBeaconBlock) MarshalSSZTo(dst []byte) ([]byte, error) { return signedBeaconBlockSchema.AppendTo(dst, b) }

func (b *SignedBeaconBlock) UnmarshalSSZ(data []byte) error { return signedBeaconBlockSchema.DecodeInto(data, b) }
