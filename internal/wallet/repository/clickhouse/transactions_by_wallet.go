package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

// TransactionsByWallet lists a wallet's transactions ordered by pending
// time, together with the wallet's unfiltered transaction count.
func (r *Repository) TransactionsByWallet(ctx context.Context, walletID string, filter model.TransactionsFilter) ([]model.Transaction, uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_by_wallet", err, start)
	}()

	direction := "DESC"
	if filter.Ascending {
		direction = "ASC"
	}

	where := "wallet_id = ?"
	args := []any{walletID}
	if filter.FromDate != nil {
		where += " AND pending_time >= ?"
		args = append(args, filter.FromDate.UTC())
	}
	if filter.ToDate != nil {
		where += " AND pending_time <= ?"
		args = append(args, filter.ToDate.UTC())
	}

	query := fmt.Sprintf(`
SELECT %s
FROM wallet_transactions FINAL
WHERE %s
ORDER BY pending_time %s, tx_id %s`, transactionColumns, where, direction, direction)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query transactions by wallet: %w", err)
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
			return nil, 0, err
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transactions by wallet: %w", err)
	}

	total, err := r.countByWallet(ctx, walletID)
	if err != nil {
		return nil, 0, err
	}

	return txs, total, nil
}

func (r *Repository) countByWallet(ctx context.Context, walletID string) (uint64, error) {
	const query = `
SELECT count()
FROM wallet_transactions FINAL
WHERE wallet_id = ?`

	rows, err := r.conn.Query(ctx, query, walletID)
	if err != nil {
		return 0, fmt.Errorf("query transaction count: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var total uint64
	if !rows.Next() {
		return 0, fmt.Errorf("transaction count not found")
	}
	if err = rows.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan transaction count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate transaction count: %w", err)
	}

	return total, nil
}
