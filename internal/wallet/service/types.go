package service

import (
	"context"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/assembly"
	"github.com/adawallet/walletcore-backend/internal/wallet/model"
	"github.com/adawallet/walletcore-backend/internal/wallet/selection"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// HistoryRepository is the transaction history store.
	HistoryRepository interface {
		InsertTransactions(ctx context.Context, txs []model.Transaction) error
		TransactionsByWallet(ctx context.Context, walletID string, filter model.TransactionsFilter) ([]model.Transaction, uint64, error)
		PendingTransactions(ctx context.Context) ([]model.Transaction, error)
		PendingTransaction(ctx context.Context, walletID, txID string) (*model.Transaction, error)
		DeletePendingTransaction(ctx context.Context, walletID, txID string) error
		WithdrawalsTotal(ctx context.Context, walletID string) (model.Value, error)
	}

	// UTXOSource snapshots the spendable outputs of a wallet in the node's
	// canonical order.
	UTXOSource interface {
		UTXOs(ctx context.Context, walletID string) ([]model.Input, error)
		RewardWithdrawals(ctx context.Context, walletID string) ([]model.Withdrawal, error)
	}

	// Signer produces a signed transaction from assembled parameters. The
	// passphrase inside the parameters is passed through untouched.
	Signer interface {
		Sign(ctx context.Context, params assembly.TransactionParams) (model.SignedTransaction, error)
	}

	// Submitter hands signed transactions to the chain and retracts
	// still-pending ones.
	Submitter interface {
		Submit(ctx context.Context, blob []byte) (string, error)
		Forget(ctx context.Context, walletID, txID string) error
	}

	// ChainSource reports chain state the tracker and listings need.
	ChainSource interface {
		Tip(ctx context.Context) (model.BlockTime, error)
		TransactionBlock(ctx context.Context, txID string) (*model.BlockTime, error)
	}

	// SelectionEngine runs coin selections against an ordered input set.
	SelectionEngine interface {
		Select(req selection.Request, available []model.Input) (*model.Selection, error)
	}

	// Metrics records duration and status of service operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
