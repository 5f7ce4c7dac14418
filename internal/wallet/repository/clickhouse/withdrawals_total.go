package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

// WithdrawalsTotal sums the reward withdrawals across every transaction
// the wallet has made.
func (r *Repository) WithdrawalsTotal(ctx context.Context, walletID string) (model.Value, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("withdrawals_total", err, start)
	}()

	const query = `
SELECT coalesce(sum(withdrawal_total), toUInt64(0)) AS total
FROM wallet_transactions FINAL
WHERE wallet_id = ?`

	rows, err := r.conn.Query(ctx, query, walletID)
	if err != nil {
		return model.Value{}, fmt.Errorf("query withdrawals total: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var total uint64
	if !rows.Next() {
		return model.Value{}, fmt.Errorf("withdrawals total not found")
	}
	if err = rows.Scan(&total); err != nil {
		return model.Value{}, fmt.Errorf("scan withdrawals total: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Value{}, fmt.Errorf("iterate withdrawals total: %w", err)
	}

	return model.NewLovelace(total), nil
}
