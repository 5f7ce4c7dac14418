package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/adawallet/walletcore-backend/internal/wallet/assembly"
	"github.com/adawallet/walletcore-backend/internal/wallet/fees"
	"github.com/adawallet/walletcore-backend/internal/wallet/model"
	"github.com/adawallet/walletcore-backend/internal/wallet/selection"
)

// defaultTTLSlots is how many slots a submitted transaction stays valid
// before the tracker may expire it.
const defaultTTLSlots = 7200

// TransactionsService is the transaction façade: it quotes fees, creates
// and submits transactions, lists history and retracts pending entries.
type TransactionsService struct {
	repo      HistoryRepository
	utxos     UTXOSource
	signer    Signer
	submitter Submitter
	chain     ChainSource
	engine    SelectionEngine
	estimator *fees.Estimator
	metrics   Metrics
	logger    *zap.Logger

	// wallets serialize their selections so two concurrent creations
	// cannot spend the same UTXO.
	locks sync.Map
}

func NewTransactionsService(
	repo HistoryRepository,
	utxos UTXOSource,
	signer Signer,
	submitter Submitter,
	chain ChainSource,
	engine SelectionEngine,
	estimator *fees.Estimator,
	metrics Metrics,
	logger *zap.Logger,
) (*TransactionsService, error) {
	if repo == nil {
		return nil, errors.New("history repository is required")
	}
	if utxos == nil {
		return nil, errors.New("utxo source is required")
	}
	if signer == nil {
		return nil, errors.New("signer is required")
	}
	if submitter == nil {
		return nil, errors.New("submitter is required")
	}
	if chain == nil {
		return nil, errors.New("chain source is required")
	}
	if engine == nil {
		return nil, errors.New("selection engine is required")
	}
	if estimator == nil {
		return nil, errors.New("fee estimator is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TransactionsService{
		repo:      repo,
		utxos:     utxos,
		signer:    signer,
		submitter: submitter,
		chain:     chain,
		engine:    engine,
		estimator: estimator,
		metrics:   metrics,
		logger:    logger.Named("transactions"),
	}, nil
}

// GetTransactionFee quotes a payment by running a selection against the
// wallet's current UTXO set without committing anything.
func (s *TransactionsService) GetTransactionFee(ctx context.Context, req assembly.GetTransactionFeeRequest) (*assembly.GetTransactionFeeResponse, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("get_transaction_fee", err, start)
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	withdrawals, err := s.resolveWithdrawals(ctx, req.WalletID, req.Withdrawal)
	if err != nil {
		return nil, err
	}

	available, err := s.utxos.UTXOs(ctx, req.WalletID)
	if err != nil {
		return nil, fmt.Errorf("fetch utxos: %w", err)
	}

	sel, err := s.engine.Select(selection.Payment{
		Wallet:      req.WalletID,
		Address:     req.Address,
		Amount:      req.Amount,
		Assets:      req.Assets,
		Withdrawals: withdrawals,
	}, available)
	if err != nil {
		return nil, err
	}

	return &assembly.GetTransactionFeeResponse{
		Fee:        sel.Fee,
		MinimumAda: s.estimator.MinimumCoin(req.Assets),
	}, nil
}

// CreateTransaction selects, signs, submits and records a payment. The
// returned transaction is the pending history entry.
func (s *TransactionsService) CreateTransaction(ctx context.Context, req assembly.CreateTransactionRequest) (*model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("create_transaction", err, start)
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	unlock := s.lockWallet(req.WalletID)
	defer unlock()

	withdrawals, err := s.resolveWithdrawals(ctx, req.WalletID, req.Withdrawal)
	if err != nil {
		return nil, err
	}

	available, err := s.utxos.UTXOs(ctx, req.WalletID)
	if err != nil {
		return nil, fmt.Errorf("fetch utxos: %w", err)
	}

	sel, err := s.engine.Select(selection.Payment{
		Wallet:      req.WalletID,
		Address:     req.Address,
		Amount:      req.Amount,
		Assets:      req.Assets,
		Withdrawals: withdrawals,
	}, available)
	if err != nil {
		return nil, err
	}

	params, err := assembly.BuildParams(req.WalletID, sel, req.Passphrase)
	if err != nil {
		return nil, err
	}

	signed, err := s.signer.Sign(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	txID, err := s.submitter.Submit(ctx, signed.Blob)
	if err != nil {
		return nil, fmt.Errorf("submit transaction: %w", err)
	}
	if txID == "" {
		txID = signed.ID
	}

	tip, err := s.chain.Tip(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch chain tip: %w", err)
	}

	tx := pendingTransaction(txID, req.WalletID, sel, tip)
	if err = s.repo.InsertTransactions(ctx, []model.Transaction{tx}); err != nil {
		return nil, fmt.Errorf("persist pending transaction: %w", err)
	}

	s.logger.Info("transaction submitted",
		zap.String("wallet", req.WalletID),
		zap.String("tx", txID),
		zap.Uint64("fee", sel.Fee.Quantity))

	return &tx, nil
}

// CreateExternalTransaction submits a transaction signed outside this
// subsystem.
func (s *TransactionsService) CreateExternalTransaction(ctx context.Context, req assembly.CreateExternalTransactionRequest) (*assembly.CreateExternalTransactionResponse, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("create_external_transaction", err, start)
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	txID, err := s.submitter.Submit(ctx, req.SignedTransactionBlob)
	if err != nil {
		return nil, fmt.Errorf("submit external transaction: %w", err)
	}

	return &assembly.CreateExternalTransactionResponse{ID: txID}, nil
}

// GetTransactions lists a wallet's history with confirmation depths
// computed against the current tip.
func (s *TransactionsService) GetTransactions(ctx context.Context, req assembly.GetTransactionsRequest) (*assembly.GetTransactionsResponse, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("get_transactions", err, start)
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	txs, total, err := s.repo.TransactionsByWallet(ctx, req.WalletID, model.TransactionsFilter{
		Ascending: req.Order == assembly.OrderAscending,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
	})
	if err != nil {
		return nil, err
	}

	tip, err := s.chain.Tip(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch chain tip: %w", err)
	}

	for i := range txs {
		txs[i].Depth = depthAt(txs[i], tip.Block.Height)
	}

	return &assembly.GetTransactionsResponse{Transactions: txs, Total: total}, nil
}

// GetWithdrawals sums the wallet's lifetime reward withdrawals.
func (s *TransactionsService) GetWithdrawals(ctx context.Context, req assembly.GetWithdrawalsRequest) (*assembly.GetWithdrawalsResponse, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("get_withdrawals", err, start)
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	total, err := s.repo.WithdrawalsTotal(ctx, req.WalletID)
	if err != nil {
		return nil, err
	}

	return &assembly.GetWithdrawalsResponse{Withdrawals: total}, nil
}

// DeleteTransaction retracts a transaction that has not reached the
// ledger. Anything past pending is immutable and reports ErrNotFound.
func (s *TransactionsService) DeleteTransaction(ctx context.Context, req assembly.DeleteTransactionRequest) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("delete_transaction", err, start)
	}()

	if err = req.Validate(); err != nil {
		return err
	}

	if _, err = s.repo.PendingTransaction(ctx, req.WalletID, req.TransactionID); err != nil {
		return err
	}

	if err = s.submitter.Forget(ctx, req.WalletID, req.TransactionID); err != nil {
		return fmt.Errorf("forget transaction: %w", err)
	}

	if err = s.repo.DeletePendingTransaction(ctx, req.WalletID, req.TransactionID); err != nil {
		return err
	}

	s.logger.Info("pending transaction retracted",
		zap.String("wallet", req.WalletID),
		zap.String("tx", req.TransactionID))
	return nil
}

// CoinSelections runs the engine directly and returns the raw selection.
func (s *TransactionsService) CoinSelections(ctx context.Context, req assembly.CoinSelectionsRequest) (*assembly.CoinSelectionsResponse, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("coin_selections", err, start)
	}()

	engineReq, err := req.EngineRequest()
	if err != nil {
		return nil, err
	}

	available, err := s.utxos.UTXOs(ctx, req.WalletID)
	if err != nil {
		return nil, fmt.Errorf("fetch utxos: %w", err)
	}

	sel, err := s.engine.Select(engineReq, available)
	if err != nil {
		return nil, err
	}

	resp := assembly.NewCoinSelectionsResponse(sel)
	return &resp, nil
}

func (s *TransactionsService) resolveWithdrawals(ctx context.Context, walletID, withdrawal string) ([]model.Withdrawal, error) {
	if withdrawal != assembly.WithdrawalSelf {
		return nil, nil
	}
	withdrawals, err := s.utxos.RewardWithdrawals(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("fetch reward withdrawals: %w", err)
	}
	return withdrawals, nil
}

func (s *TransactionsService) lockWallet(walletID string) func() {
	v, _ := s.locks.LoadOrStore(walletID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func pendingTransaction(txID, walletID string, sel *model.Selection, tip model.BlockTime) model.Transaction {
	spent := sel.Fee.Quantity + sel.Deposits.Quantity
	for _, out := range sel.Outputs {
		if len(out.DerivationPath) == 0 {
			spent += out.Amount.Quantity
		}
	}

	pending := tip
	return model.Transaction{
		ID:           txID,
		WalletID:     walletID,
		Amount:       model.NewLovelace(spent),
		Fee:          sel.Fee,
		Deposit:      sel.Deposits,
		PendingSince: &pending,
		ExpiresSlot:  tip.Block.SlotNumber + defaultTTLSlots,
		Depth:        model.NewDepth(0),
		Direction:    model.DirectionOutgoing,
		Inputs:       sel.Inputs,
		Outputs:      sel.Outputs,
		Withdrawals:  sel.Withdrawals,
		Status:       model.StatePending,
	}
}

// depthAt is the confirmation count of an in-ledger transaction at the
// given tip height.
func depthAt(tx model.Transaction, tipHeight uint64) model.Value {
	if tx.Status != model.StateInLedger || tx.InsertedAt == nil {
		return model.NewDepth(0)
	}
	if tipHeight < tx.InsertedAt.Block.Height {
		return model.NewDepth(0)
	}
	return model.NewDepth(tipHeight - tx.InsertedAt.Block.Height)
}
