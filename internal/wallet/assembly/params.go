package assembly

import (
	"errors"

	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

// PaymentData is one payment inside signable transaction parameters.
type PaymentData struct {
	Address string            `json:"address"`
	Amount  model.Value       `json:"amount"`
	Assets  model.AssetBundle `json:"assets,omitempty"`
}

// TransactionParams is the signable form of a completed selection: the
// payments to make plus the spending authorization the signer needs. The
// passphrase is opaque to this subsystem and handed through to the signing
// collaborator untouched.
type TransactionParams struct {
	WalletID     string              `json:"walletId"`
	Payments     []PaymentData       `json:"payments"`
	Certificates []model.Certificate `json:"certificates,omitempty"`
	Withdrawals  []model.Withdrawal  `json:"withdrawals,omitempty"`
	Passphrase   string              `json:"passphrase"`
}

// BuildParams wraps a completed selection into transaction parameters.
// The selection is write-once by contract, so its slices are copied rather
// than aliased.
func BuildParams(walletID string, sel *model.Selection, passphrase string) (TransactionParams, error) {
	if walletID == "" {
		return TransactionParams{}, errors.New("wallet id is required")
	}
	if sel == nil {
		return TransactionParams{}, errors.New("selection is required")
	}

	payments := make([]PaymentData, 0, len(sel.Outputs))
	for _, out := range sel.Outputs {
		payments = append(payments, PaymentData{
			Address: out.Address,
			Amount:  out.Amount,
			Assets:  out.Assets,
		})
	}

	certificates := make([]model.Certificate, len(sel.Certificates))
	copy(certificates, sel.Certificates)
	withdrawals := make([]model.Withdrawal, len(sel.Withdrawals))
	copy(withdrawals, sel.Withdrawals)

	return TransactionParams{
		WalletID:     walletID,
		Payments:     payments,
		Certificates: certificates,
		Withdrawals:  withdrawals,
		Passphrase:   passphrase,
	}, nil
}
