package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/adawallet/walletcore-backend/internal/clock"
	"github.com/adawallet/walletcore-backend/internal/wallet/model"
	"github.com/adawallet/walletcore-backend/pkg/batcher"
	"github.com/adawallet/walletcore-backend/pkg/workerpool"
)

const (
	defaultTrackerWorkerCount = 8
	writerFlushSize           = 200
	writerFlushInterval       = 2 * time.Second
	writerFlushRPS            = 10
)

// PendingTrackerService follows submitted transactions until they reach
// the ledger or expire. Promotions are superseding re-inserts coalesced
// through a batcher.
type PendingTrackerService struct {
	repo         HistoryRepository
	chain        ChainSource
	metrics      Metrics
	logger       *zap.Logger
	writer       *batcher.Batcher[model.Transaction]
	workerCount  int
	pollInterval time.Duration
}

func NewPendingTrackerService(
	repo HistoryRepository,
	chain ChainSource,
	metrics Metrics,
	pollInterval time.Duration,
	logger *zap.Logger,
) (*PendingTrackerService, error) {
	if repo == nil {
		return nil, errors.New("history repository is required")
	}
	if chain == nil {
		return nil, errors.New("chain source is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if pollInterval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("tracker")

	return &PendingTrackerService{
		repo:         repo,
		chain:        chain,
		metrics:      metrics,
		logger:       logger,
		workerCount:  defaultTrackerWorkerCount,
		pollInterval: pollInterval,
		writer: batcher.New[model.Transaction](
			logger.Named("writer"),
			func(ctx context.Context, txs []model.Transaction) error {
				return repo.InsertTransactions(ctx, txs)
			},
			writerFlushSize,
			writerFlushInterval,
			writerFlushRPS,
		),
	}, nil
}

// Run polls until the context is canceled.
func (s *PendingTrackerService) Run(ctx context.Context) error {
	s.writer.Start(ctx)
	defer s.writer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.pass(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.logger.Error("tracker pass failed", zap.Error(err))
		}

		if err := clock.SleepWithContext(ctx, s.pollInterval); err != nil {
			return err
		}
	}
}

func (s *PendingTrackerService) pass(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("tracker_pass", err, start)
	}()

	tip, err := s.chain.Tip(ctx)
	if err != nil {
		return fmt.Errorf("fetch chain tip: %w", err)
	}

	pending, err := s.repo.PendingTransactions(ctx)
	if err != nil {
		return fmt.Errorf("fetch pending transactions: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	s.logger.Info("refreshing pending transactions",
		zap.Int("count", len(pending)),
		zap.Uint64("tip_slot", tip.Block.SlotNumber))

	byWallet := make(map[string][]model.Transaction)
	for _, tx := range pending {
		byWallet[tx.WalletID] = append(byWallet[tx.WalletID], tx)
	}
	wallets := make([]string, 0, len(byWallet))
	for w := range byWallet {
		wallets = append(wallets, w)
	}

	err = workerpool.Process(ctx, s.workerCount, wallets, func(ctx context.Context, wallet string) error {
		return s.refreshWallet(ctx, byWallet[wallet], tip)
	}, nil)
	return err
}

func (s *PendingTrackerService) refreshWallet(ctx context.Context, pending []model.Transaction, tip model.BlockTime) error {
	for _, tx := range pending {
		block, err := s.chain.TransactionBlock(ctx, tx.ID)
		if err != nil {
			return fmt.Errorf("resolve block for tx %s: %w", tx.ID, err)
		}

		switch {
		case block != nil:
			tx.Status = model.StateInLedger
			tx.InsertedAt = block
		case tip.Block.SlotNumber > tx.ExpiresSlot:
			tx.Status = model.StateExpired
		default:
			continue
		}

		if err := s.writer.Add(ctx, tx); err != nil {
			return err
		}
		s.logger.Debug("pending transaction resolved",
			zap.String("wallet", tx.WalletID),
			zap.String("tx", tx.ID),
			zap.String("status", string(tx.Status)))
	}
	return nil
}
