package selection

import "github.com/adawallet/walletcore-backend/internal/wallet/model"

// Request is the sealed set of selection intents. Exactly two variants
// exist, Payment and Delegation, so the engine's dispatch is exhaustive.
type Request interface {
	// WalletID identifies the wallet whose UTXO set funds the selection.
	WalletID() string

	sealed()
}

// Payment asks to pay a single recipient, optionally with secondary assets
// and reward withdrawals folded into the funding side.
type Payment struct {
	Wallet      string
	Address     string
	Amount      model.Value
	Assets      model.AssetBundle
	Withdrawals []model.Withdrawal
}

// WalletID implements Request.
func (p Payment) WalletID() string { return p.Wallet }

func (Payment) sealed() {}

// DelegationAction is the staking action a delegation selection performs.
type DelegationAction string

const (
	ActionJoin     DelegationAction = "join"
	ActionQuit     DelegationAction = "quit"
	ActionRegister DelegationAction = "register"
)

// Delegation asks to change the wallet's delegation or registration state.
type Delegation struct {
	Wallet string
	Pool   string
	Action DelegationAction

	// RewardAccountPath is the derivation path of the reward account the
	// certificate concerns; passed through opaquely.
	RewardAccountPath model.DerivationPath

	// AccountRegistered tells whether the reward account already carries a
	// registration, which decides whether a join owes the key deposit.
	AccountRegistered bool
}

// WalletID implements Request.
func (d Delegation) WalletID() string { return d.Wallet }

func (Delegation) sealed() {}
