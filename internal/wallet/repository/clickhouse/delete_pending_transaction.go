package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// DeletePendingTransaction removes a pending transaction row. Rows that
// have reached the ledger are immutable and are never matched here; the
// caller checks the state first and maps absence to its own error.
func (r *Repository) DeletePendingTransaction(ctx context.Context, walletID, txID string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_pending_transaction", err, start)
	}()

	const query = `
DELETE FROM wallet_transactions
WHERE wallet_id = ? AND tx_id = ? AND status = 'pending'`

	if err = r.conn.Exec(ctx, query, walletID, txID); err != nil {
		return fmt.Errorf("delete pending transaction: %w", err)
	}
	return nil
}
