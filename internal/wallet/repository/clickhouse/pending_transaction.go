package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

// PendingTransaction fetches a single transaction for a wallet if it is
// still pending. Returns model.ErrNotFound when the row is absent or has
// already left the pending state.
func (r *Repository) PendingTransaction(ctx context.Context, walletID, txID string) (*model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("pending_transaction", err, start)
	}()

	query := fmt.Sprintf(`
SELECT %s
FROM wallet_transactions FINAL
WHERE wallet_id = ? AND tx_id = ? AND status = 'pending'
LIMIT 1`, transactionColumns)

	rows, err := r.conn.Query(ctx, query, walletID, txID)
	if err != nil {
		return nil, fmt.Errorf("query pending transaction: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		err = model.ErrNotFound
		return nil, err
	}

	tx, err := scanTransaction(rows)
	if err != nil {
		return nil, err
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending transaction: %w", err)
	}

	return &tx, nil
}
