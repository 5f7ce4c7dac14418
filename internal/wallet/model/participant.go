package model

// DerivationPath is an opaque ordered sequence of path components. The
// transaction construction subsystem passes paths through unchanged; key
// derivation belongs to the signing collaborator.
type DerivationPath []string

// Clone returns an independent copy of the path.
func (p DerivationPath) Clone() DerivationPath {
	if p == nil {
		return nil
	}
	out := make(DerivationPath, len(p))
	copy(out, p)
	return out
}

// Input is one unspent output being consumed. It exists only as a reference
// into the external UTXO set and is never persisted on its own.
type Input struct {
	Address        string         `json:"address"`
	ID             string         `json:"id"`
	Index          uint32         `json:"index"`
	Amount         Value          `json:"amount"`
	Assets         AssetBundle    `json:"assets,omitempty"`
	DerivationPath DerivationPath `json:"derivationPath"`
}

// Output is a value produced by a transaction. A change output is an Output
// whose address belongs to the wallet and whose derivation path is freshly
// allocated.
type Output struct {
	Address        string         `json:"address"`
	Amount         Value          `json:"amount"`
	Assets         AssetBundle    `json:"assets,omitempty"`
	DerivationPath DerivationPath `json:"derivationPath,omitempty"`
}

// Withdrawal moves accumulated staking rewards into the transaction's
// output set.
type Withdrawal struct {
	StakeAddress   string         `json:"stakeAddress"`
	Amount         Value          `json:"amount"`
	DerivationPath DerivationPath `json:"derivationPath"`
}

// CertificateType identifies the on-chain action a certificate performs.
type CertificateType string

const (
	CertificateRegisterRewardAccount CertificateType = "register_reward_account"
	CertificateJoinPool              CertificateType = "join_pool"
	CertificateQuitPool              CertificateType = "quit_pool"
)

// Certificate is an on-chain instruction changing delegation or
// registration state rather than moving funds.
type Certificate struct {
	Pool              string          `json:"pool"`
	CertificateType   CertificateType `json:"certificateType"`
	RewardAccountPath DerivationPath  `json:"rewardAccountPath"`
}
