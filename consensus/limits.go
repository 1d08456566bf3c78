package consensus

// Phase0 mainnet preset list limits.
const (
	MaxProposerSlashings      = 16
	MaxAttesterSlashings      = 2
	MaxAttestations           = 128
	MaxDeposits               = 16
	MaxVoluntaryExits         = 16
	MaxValidatorsPerCommittee = 2048

	// DepositContractTreeDepth is the depth of the deposit contract's
	// Merkle tree. A deposit proof carries one extra branch for the mixed
	// in deposit count.
	DepositContractTreeDepth = 32
	DepositProofLength       = DepositContractTreeDepth + 1
)
