package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

// InsertTransactions stores transactions in ClickHouse. Re-inserting an
// existing (wallet_id, tx_id) pair supersedes the old row; the table's
// replacing engine keeps the newest version.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	query := fmt.Sprintf("INSERT INTO wallet_transactions (%s) VALUES", transactionColumns)

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	updatedAt := r.now().UTC()
	for _, tx := range txs {
		if err = appendTransaction(batch, tx, updatedAt); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
