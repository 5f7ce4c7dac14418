// Package fees computes transaction fee estimates and output minimum-coin
// floors under the protocol's linear cost model. The model coefficients are
// protocol parameters supplied through configuration, never hard-coded.
package fees

import (
	"errors"

	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

// Model holds the linear fee-model coefficients and related protocol
// constants, all in lovelace.
type Model struct {
	Base           uint64
	PerInput       uint64
	PerOutput      uint64
	PerCertificate uint64
	PerWithdrawal  uint64

	// MinUTXOValue is the fixed floor below which an output is considered
	// non-economical; PerAssetByte is the surcharge per serialized byte of
	// an attached asset bundle.
	MinUTXOValue uint64
	PerAssetByte uint64

	// KeyDeposit is locked while a stake key is registered and reclaimed
	// on deregistration.
	KeyDeposit uint64
}

// Shape describes a prospective transaction for fee sizing before its final
// input count is known.
type Shape struct {
	Inputs       int
	Outputs      int
	Certificates int
	Withdrawals  int

	// OutputBundles carries the asset bundle of each prospective output
	// (nil entries for plain outputs); one minimum-coin floor is produced
	// per entry.
	OutputBundles []model.AssetBundle

	// MaxExtraInputs widens the estimate's upper bound to cover inputs the
	// selection may still add.
	MaxExtraInputs int

	// Registrations is the number of new reward-account registrations the
	// transaction performs, each of which owes a key deposit.
	Registrations int
}

// Estimator is a pure fee calculator. It holds no mutable state and is safe
// for concurrent use.
type Estimator struct {
	model Model
}

// NewEstimator validates the model and returns an Estimator.
func NewEstimator(m Model) (*Estimator, error) {
	if m.MinUTXOValue == 0 {
		return nil, errors.New("minimum utxo value is required")
	}
	return &Estimator{model: m}, nil
}

// Fee evaluates the linear cost model for the given participant counts.
func (e *Estimator) Fee(inputs, outputs, certificates, withdrawals int) model.Value {
	m := e.model
	total := m.Base +
		m.PerInput*uint64(inputs) +
		m.PerOutput*uint64(outputs) +
		m.PerCertificate*uint64(certificates) +
		m.PerWithdrawal*uint64(withdrawals)
	return model.NewLovelace(total)
}

// EstimateFee brackets the fee for a transaction shape and yields per-output
// minimum-coin floors. It has no side effects and may be called standalone
// for pre-submission quoting.
func (e *Estimator) EstimateFee(shape Shape) model.TransactionFee {
	minimums := make([]model.Value, 0, len(shape.OutputBundles))
	for _, bundle := range shape.OutputBundles {
		minimums = append(minimums, e.MinimumCoin(bundle))
	}

	return model.TransactionFee{
		EstimatedMin: e.Fee(shape.Inputs, shape.Outputs, shape.Certificates, shape.Withdrawals),
		EstimatedMax: e.Fee(shape.Inputs+shape.MaxExtraInputs, shape.Outputs, shape.Certificates, shape.Withdrawals),
		Deposit:      model.NewLovelace(e.model.KeyDeposit * uint64(shape.Registrations)),
		MinimumCoins: minimums,
	}
}

// MinimumCoin is the smallest value the chain accepts for an output carrying
// the given asset bundle: the fixed floor plus a per-byte surcharge for the
// bundle.
func (e *Estimator) MinimumCoin(bundle model.AssetBundle) model.Value {
	return model.NewLovelace(e.model.MinUTXOValue + e.model.PerAssetByte*bundle.SerializedSize())
}

// KeyDeposit is the protocol deposit owed on reward-account registration.
func (e *Estimator) KeyDeposit() model.Value {
	return model.NewLovelace(e.model.KeyDeposit)
}
