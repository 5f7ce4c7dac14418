package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

// PendingTransactions lists every pending transaction across wallets,
// oldest first. The tracker drains this set on each pass.
func (r *Repository) PendingTransactions(ctx context.Context) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("pending_transactions", err, start)
	}()

	query := fmt.Sprintf(`
SELECT %s
FROM wallet_transactions FINAL
WHERE status = 'pending'
ORDER BY pending_time ASC, tx_id ASC`, transactionColumns)

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query pending transactions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var txs []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		if tx, err = scanTransaction(rows); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending transactions: %w", err)
	}

	return txs, nil
}
