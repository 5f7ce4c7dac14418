// Package assembly defines the request/response contracts of the
// transaction façade and turns completed selections into signable
// transaction parameters. It contains data shapes and input validation
// only; selection and fee logic live in their own packages.
package assembly

import (
	"fmt"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/address"
	"github.com/adawallet/walletcore-backend/internal/wallet/model"
	"github.com/adawallet/walletcore-backend/internal/wallet/selection"
)

// SortOrder orders transaction listings by insertion time.
type SortOrder string

const (
	OrderAscending  SortOrder = "ascending"
	OrderDescending SortOrder = "descending"
)

// WithdrawalSelf asks for the wallet's own reward account to be drained
// into the transaction.
const WithdrawalSelf = "self"

// GetTransactionFeeRequest quotes a payment before it is committed.
type GetTransactionFeeRequest struct {
	WalletID   string            `json:"walletId"`
	Address    string            `json:"address"`
	Amount     model.Value       `json:"amount"`
	Assets     model.AssetBundle `json:"assets,omitempty"`
	Withdrawal string            `json:"withdrawal,omitempty"`
	IsLegacy   bool              `json:"isLegacy"`
}

// Validate implements request validation for fee quoting.
func (r GetTransactionFeeRequest) Validate() error {
	if r.WalletID == "" {
		return fmt.Errorf("%w: wallet id is required", selection.ErrInvalidRequest)
	}
	if err := address.ValidatePayment(r.Address); err != nil {
		return fmt.Errorf("%w: %v", selection.ErrInvalidRequest, err)
	}
	if r.Amount.Unit != model.Lovelace {
		return fmt.Errorf("%w: amount unit %q", selection.ErrInvalidRequest, r.Amount.Unit)
	}
	if r.Withdrawal != "" && r.Withdrawal != WithdrawalSelf {
		return fmt.Errorf("%w: unsupported withdrawal %q", selection.ErrInvalidRequest, r.Withdrawal)
	}
	return nil
}

// GetTransactionFeeResponse carries the quoted fee and the minimum value
// the chain accepts for the prospective output.
type GetTransactionFeeResponse struct {
	Fee        model.Value `json:"fee"`
	MinimumAda model.Value `json:"minimumAda"`
}

// CreateTransactionRequest submits a payment.
type CreateTransactionRequest struct {
	WalletID   string            `json:"walletId"`
	Address    string            `json:"address"`
	Amount     model.Value       `json:"amount"`
	Passphrase string            `json:"passphrase"`
	IsLegacy   bool              `json:"isLegacy"`
	Assets     model.AssetBundle `json:"assets,omitempty"`
	Withdrawal string            `json:"withdrawal,omitempty"`
}

// Validate implements request validation for transaction creation.
func (r CreateTransactionRequest) Validate() error {
	if r.WalletID == "" {
		return fmt.Errorf("%w: wallet id is required", selection.ErrInvalidRequest)
	}
	if err := address.ValidatePayment(r.Address); err != nil {
		return fmt.Errorf("%w: %v", selection.ErrInvalidRequest, err)
	}
	if r.Amount.Unit != model.Lovelace {
		return fmt.Errorf("%w: amount unit %q", selection.ErrInvalidRequest, r.Amount.Unit)
	}
	if r.Passphrase == "" {
		return fmt.Errorf("%w: passphrase is required", selection.ErrInvalidRequest)
	}
	if r.Withdrawal != "" && r.Withdrawal != WithdrawalSelf {
		return fmt.Errorf("%w: unsupported withdrawal %q", selection.ErrInvalidRequest, r.Withdrawal)
	}
	return nil
}

// CreateExternalTransactionRequest submits an already-signed transaction
// blob produced outside this subsystem.
type CreateExternalTransactionRequest struct {
	SignedTransactionBlob []byte `json:"signedTransactionBlob"`
}

// Validate implements request validation for external submission.
func (r CreateExternalTransactionRequest) Validate() error {
	if len(r.SignedTransactionBlob) == 0 {
		return fmt.Errorf("%w: signed transaction blob is required", selection.ErrInvalidRequest)
	}
	return nil
}

// CreateExternalTransactionResponse returns the submitted transaction id.
type CreateExternalTransactionResponse struct {
	ID string `json:"id"`
}

// GetTransactionsRequest lists a wallet's transactions.
type GetTransactionsRequest struct {
	WalletID         string     `json:"walletId"`
	Order            SortOrder  `json:"order,omitempty"`
	FromDate         *time.Time `json:"fromDate,omitempty"`
	ToDate           *time.Time `json:"toDate,omitempty"`
	IsLegacy         bool       `json:"isLegacy"`
	IsHardwareWallet bool       `json:"isHardwareWallet,omitempty"`
}

// Validate implements request validation for transaction listing.
func (r GetTransactionsRequest) Validate() error {
	if r.WalletID == "" {
		return fmt.Errorf("%w: wallet id is required", selection.ErrInvalidRequest)
	}
	switch r.Order {
	case "", OrderAscending, OrderDescending:
	default:
		return fmt.Errorf("%w: unsupported order %q", selection.ErrInvalidRequest, r.Order)
	}
	if r.FromDate != nil && r.ToDate != nil && r.FromDate.After(*r.ToDate) {
		return fmt.Errorf("%w: fromDate after toDate", selection.ErrInvalidRequest)
	}
	return nil
}

// GetTransactionsResponse is a paginated transaction listing.
type GetTransactionsResponse struct {
	Transactions []model.Transaction `json:"transactions"`
	Total        uint64              `json:"total"`
}

// GetWithdrawalsRequest sums a wallet's reward withdrawals.
type GetWithdrawalsRequest struct {
	WalletID string `json:"walletId"`
}

// Validate implements request validation for withdrawal totals.
func (r GetWithdrawalsRequest) Validate() error {
	if r.WalletID == "" {
		return fmt.Errorf("%w: wallet id is required", selection.ErrInvalidRequest)
	}
	return nil
}

// GetWithdrawalsResponse carries the lifetime withdrawal total.
type GetWithdrawalsResponse struct {
	Withdrawals model.Value `json:"withdrawals"`
}

// DeleteTransactionRequest retracts a still-pending transaction.
type DeleteTransactionRequest struct {
	WalletID      string `json:"walletId"`
	TransactionID string `json:"transactionId"`
	IsLegacy      bool   `json:"isLegacy"`
}

// Validate implements request validation for transaction deletion.
func (r DeleteTransactionRequest) Validate() error {
	if r.WalletID == "" {
		return fmt.Errorf("%w: wallet id is required", selection.ErrInvalidRequest)
	}
	if r.TransactionID == "" {
		return fmt.Errorf("%w: transaction id is required", selection.ErrInvalidRequest)
	}
	return nil
}

// CoinSelectionsPayment is the payment variant of a coin selections call.
type CoinSelectionsPayment struct {
	Address string            `json:"address"`
	Amount  model.Value       `json:"amount"`
	Assets  model.AssetBundle `json:"assets,omitempty"`
}

// CoinSelectionsDelegation is the delegation variant of a coin selections
// call.
type CoinSelectionsDelegation struct {
	PoolID            string                     `json:"poolId"`
	DelegationAction  selection.DelegationAction `json:"delegationAction"`
	RewardAccountPath model.DerivationPath       `json:"rewardAccountPath,omitempty"`
	AccountRegistered bool                       `json:"accountRegistered,omitempty"`
}

// CoinSelectionsRequest runs the engine directly. Exactly one of Payment
// and Delegation must be set.
type CoinSelectionsRequest struct {
	WalletID   string                    `json:"walletId"`
	Payment    *CoinSelectionsPayment    `json:"payment,omitempty"`
	Delegation *CoinSelectionsDelegation `json:"delegation,omitempty"`
}

// EngineRequest validates the request and converts it to the engine's
// tagged variant.
func (r CoinSelectionsRequest) EngineRequest() (selection.Request, error) {
	if r.WalletID == "" {
		return nil, fmt.Errorf("%w: wallet id is required", selection.ErrInvalidRequest)
	}
	switch {
	case r.Payment != nil && r.Delegation != nil:
		return nil, fmt.Errorf("%w: payment and delegation are mutually exclusive", selection.ErrInvalidRequest)
	case r.Payment != nil:
		return selection.Payment{
			Wallet:  r.WalletID,
			Address: r.Payment.Address,
			Amount:  r.Payment.Amount,
			Assets:  r.Payment.Assets,
		}, nil
	case r.Delegation != nil:
		return selection.Delegation{
			Wallet:            r.WalletID,
			Pool:              r.Delegation.PoolID,
			Action:            r.Delegation.DelegationAction,
			RewardAccountPath: r.Delegation.RewardAccountPath,
			AccountRegistered: r.Delegation.AccountRegistered,
		}, nil
	default:
		return nil, fmt.Errorf("%w: payment or delegation is required", selection.ErrInvalidRequest)
	}
}

// CoinSelectionsResponse mirrors the produced Selection.
type CoinSelectionsResponse struct {
	Inputs            []model.Input       `json:"inputs"`
	Outputs           []model.Output      `json:"outputs"`
	Certificates      []model.Certificate `json:"certificates"`
	Deposits          model.Value         `json:"deposits"`
	DepositsReclaimed model.Value         `json:"depositsReclaimed"`
	Withdrawals       []model.Withdrawal  `json:"withdrawals"`
	Fee               model.Value         `json:"fee"`
}

// NewCoinSelectionsResponse copies a Selection into its response shape.
func NewCoinSelectionsResponse(sel *model.Selection) CoinSelectionsResponse {
	return CoinSelectionsResponse{
		Inputs:            sel.Inputs,
		Outputs:           sel.Outputs,
		Certificates:      sel.Certificates,
		Deposits:          sel.Deposits,
		DepositsReclaimed: sel.DepositsReclaimed,
		Withdrawals:       sel.Withdrawals,
		Fee:               sel.Fee,
	}
}
