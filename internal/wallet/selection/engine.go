// Package selection implements the coin selection engine: given a payment
// or delegation intent and a snapshot of the wallet's unspent outputs, it
// produces a fee-accounted Selection satisfying the balance invariant, or a
// typed error. The engine is pure and performs no I/O; callers serialize
// selections per wallet to avoid double-spending a UTXO across concurrent
// runs.
package selection

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/adawallet/walletcore-backend/internal/wallet/address"
	"github.com/adawallet/walletcore-backend/internal/wallet/fees"
	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

// ChangeAddressSource allocates a fresh wallet address and derivation path
// for a change output. Implementations must not block; address allocation
// against a pre-derived pool is expected.
type ChangeAddressSource interface {
	ChangeAddress(walletID string) (addr string, path model.DerivationPath, err error)
}

// Engine runs coin selections. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	estimator *fees.Estimator
	change    ChangeAddressSource
	logger    *zap.Logger
}

// NewEngine builds an Engine from its collaborators.
func NewEngine(estimator *fees.Estimator, change ChangeAddressSource, logger *zap.Logger) (*Engine, error) {
	if estimator == nil {
		return nil, errors.New("fee estimator is required")
	}
	if change == nil {
		return nil, errors.New("change address source is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		estimator: estimator,
		change:    change,
		logger:    logger.Named("selection"),
	}, nil
}

// Select resolves a request against the ordered available input set.
// Inputs are considered strictly in the order supplied, so two calls with
// identical requests and identical ordered inputs yield identical
// selections. On failure no partial selection is returned.
func (e *Engine) Select(req Request, available []model.Input) (*model.Selection, error) {
	switch r := req.(type) {
	case Payment:
		return e.selectPayment(r, available)
	case Delegation:
		return e.selectDelegation(r, available)
	default:
		return nil, fmt.Errorf("%w: unsupported request type %T", ErrInvalidRequest, req)
	}
}

func (e *Engine) selectPayment(r Payment, available []model.Input) (*model.Selection, error) {
	if r.Wallet == "" {
		return nil, fmt.Errorf("%w: wallet id is required", ErrInvalidRequest)
	}
	if err := address.ValidatePayment(r.Address); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if r.Amount.Unit != model.Lovelace {
		return nil, fmt.Errorf("%w: amount unit %q", ErrInvalidRequest, r.Amount.Unit)
	}
	if r.Amount.IsZero() && r.Assets.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to pay", ErrInvalidRequest)
	}
	if floor := e.estimator.MinimumCoin(r.Assets); r.Amount.Cmp(floor) < 0 {
		return nil, fmt.Errorf("%w: amount %d below minimum coin %d", ErrInvalidRequest, r.Amount.Quantity, floor.Quantity)
	}

	return e.run(plan{
		wallet:      r.Wallet,
		payment:     &model.Output{Address: r.Address, Amount: r.Amount, Assets: r.Assets},
		withdrawals: r.Withdrawals,
		deposits:    model.ZeroLovelace(),
		reclaimed:   model.ZeroLovelace(),
	}, available)
}

func (e *Engine) selectDelegation(r Delegation, available []model.Input) (*model.Selection, error) {
	if r.Wallet == "" {
		return nil, fmt.Errorf("%w: wallet id is required", ErrInvalidRequest)
	}
	if err := address.ValidatePool(r.Pool); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	deposits := model.ZeroLovelace()
	reclaimed := model.ZeroLovelace()
	var certType model.CertificateType

	switch r.Action {
	case ActionJoin:
		certType = model.CertificateJoinPool
		if !r.AccountRegistered {
			deposits = e.estimator.KeyDeposit()
		}
	case ActionRegister:
		certType = model.CertificateRegisterRewardAccount
		deposits = e.estimator.KeyDeposit()
	case ActionQuit:
		certType = model.CertificateQuitPool
		reclaimed = e.estimator.KeyDeposit()
	default:
		return nil, fmt.Errorf("%w: unknown delegation action %q", ErrInvalidRequest, r.Action)
	}

	return e.run(plan{
		wallet: r.Wallet,
		certificates: []model.Certificate{{
			Pool:              r.Pool,
			CertificateType:   certType,
			RewardAccountPath: r.RewardAccountPath.Clone(),
		}},
		deposits:  deposits,
		reclaimed: reclaimed,
	}, available)
}

// plan is the normalized form both request variants reduce to before input
// accumulation.
type plan struct {
	wallet       string
	payment      *model.Output
	certificates []model.Certificate
	withdrawals  []model.Withdrawal
	deposits     model.Value
	reclaimed    model.Value
}

// run greedily accumulates inputs in the order supplied until they cover
// target + fee + deposits, then settles change. The fee is re-estimated as
// the input count grows, always assuming one change output alongside any
// recipient output. A would-be change output below the minimum-coin floor
// forces another input rather than a sub-minimum output.
func (e *Engine) run(p plan, available []model.Input) (*model.Selection, error) {
	baseOutputs := 0
	targetAmount := uint64(0)
	var targetAssets model.AssetBundle
	if p.payment != nil {
		baseOutputs = 1
		targetAmount = p.payment.Amount.Quantity
		targetAssets = p.payment.Assets
	}

	withdrawn := uint64(0)
	for _, w := range p.withdrawals {
		withdrawn += w.Amount.Quantity
	}

	funded := withdrawn + p.reclaimed.Quantity
	var fundedAssets model.AssetBundle
	var selected []model.Input
	next := 0

	for {
		fee := e.estimator.Fee(len(selected), baseOutputs+1, len(p.certificates), len(p.withdrawals)).Quantity
		need := targetAmount + fee + p.deposits.Quantity

		if funded >= need && fundedAssets.Covers(targetAssets) {
			change := funded - need
			changeAssets, err := fundedAssets.Sub(targetAssets)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSelectionInvariant, err)
			}

			if change == 0 && changeAssets.IsEmpty() {
				return e.finish(p, selected, nil, fee)
			}
			if floor := e.estimator.MinimumCoin(changeAssets).Quantity; change >= floor {
				addr, path, cerr := e.change.ChangeAddress(p.wallet)
				if cerr != nil {
					return nil, fmt.Errorf("allocate change address: %w", cerr)
				}
				return e.finish(p, selected, &model.Output{
					Address:        addr,
					Amount:         model.NewLovelace(change),
					Assets:         changeAssets,
					DerivationPath: path,
				}, fee)
			}
		}

		if next >= len(available) {
			if funded >= need && !fundedAssets.Covers(targetAssets) {
				return nil, fmt.Errorf("assets short of target: %w", model.ErrInsufficientAssets)
			}
			return nil, fmt.Errorf("need %d lovelace, have %d across %d inputs: %w",
				need, funded, len(available), ErrInputsExhausted)
		}

		in := available[next]
		next++
		selected = append(selected, in)
		funded += in.Amount.Quantity
		fundedAssets = fundedAssets.Merge(in.Assets)
	}
}

func (e *Engine) finish(p plan, selected []model.Input, change *model.Output, fee uint64) (*model.Selection, error) {
	outputs := make([]model.Output, 0, 2)
	if p.payment != nil {
		outputs = append(outputs, *p.payment)
	}
	if change != nil {
		outputs = append(outputs, *change)
	}

	sel := &model.Selection{
		Inputs:            selected,
		Outputs:           outputs,
		Certificates:      p.certificates,
		Deposits:          p.deposits,
		DepositsReclaimed: p.reclaimed,
		Withdrawals:       p.withdrawals,
		Fee:               model.NewLovelace(fee),
	}
	if err := sel.Validate(); err != nil {
		e.logger.Error("selection failed balance validation",
			zap.String("wallet", p.wallet), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSelectionInvariant, err)
	}
	return sel, nil
}
