package clickhouse

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

// transactionColumns is the column list shared by the insert batch and
// every SELECT, in the same order scanTransaction reads them.
const transactionColumns = `
	wallet_id,
	tx_id,
	direction,
	status,
	amount,
	fee,
	deposit,
	withdrawal_total,
	has_pending,
	pending_time,
	pending_slot,
	pending_epoch,
	pending_height,
	has_inserted,
	inserted_time,
	inserted_slot,
	inserted_epoch,
	inserted_height,
	expires_slot,
	inputs,
	outputs,
	withdrawals,
	metadata,
	updated_at`

func appendTransaction(batch Batch, tx model.Transaction, updatedAt time.Time) error {
	inputs, err := json.Marshal(tx.Inputs)
	if err != nil {
		return fmt.Errorf("marshal inputs: %w", err)
	}
	outputs, err := json.Marshal(tx.Outputs)
	if err != nil {
		return fmt.Errorf("marshal outputs: %w", err)
	}
	withdrawals, err := json.Marshal(tx.Withdrawals)
	if err != nil {
		return fmt.Errorf("marshal withdrawals: %w", err)
	}

	var (
		hasPending                                uint8
		pendingTime                               time.Time
		pendingSlot, pendingEpoch, pendingHeight  uint64
		hasInserted                               uint8
		insertedTime                              time.Time
		insertedSlot, insertedEpoch, insertedHigh uint64
	)
	if tx.PendingSince != nil {
		hasPending = 1
		pendingTime = tx.PendingSince.Time
		pendingSlot = tx.PendingSince.Block.SlotNumber
		pendingEpoch = tx.PendingSince.Block.EpochNumber
		pendingHeight = tx.PendingSince.Block.Height
	}
	if tx.InsertedAt != nil {
		hasInserted = 1
		insertedTime = tx.InsertedAt.Time
		insertedSlot = tx.InsertedAt.Block.SlotNumber
		insertedEpoch = tx.InsertedAt.Block.EpochNumber
		insertedHigh = tx.InsertedAt.Block.Height
	}

	return batch.Append(
		tx.WalletID,
		tx.ID,
		string(tx.Direction),
		string(tx.Status),
		tx.Amount.Quantity,
		tx.Fee.Quantity,
		tx.Deposit.Quantity,
		withdrawalTotal(tx),
		hasPending,
		pendingTime,
		pendingSlot,
		pendingEpoch,
		pendingHeight,
		hasInserted,
		insertedTime,
		insertedSlot,
		insertedEpoch,
		insertedHigh,
		tx.ExpiresSlot,
		string(inputs),
		string(outputs),
		string(withdrawals),
		string(tx.Metadata),
		updatedAt,
	)
}

func scanTransaction(rows Rows) (model.Transaction, error) {
	var (
		tx                                        model.Transaction
		direction, status                         string
		amount, fee, deposit, total               uint64
		hasPending                                uint8
		pendingTime                               time.Time
		pendingSlot, pendingEpoch, pendingHeight  uint64
		hasInserted                               uint8
		insertedTime                              time.Time
		insertedSlot, insertedEpoch, insertedHigh uint64
		inputs, outputs, withdrawals, metadata    string
		updatedAt                                 time.Time
	)

	if err := rows.Scan(
		&tx.WalletID,
		&tx.ID,
		&direction,
		&status,
		&amount,
		&fee,
		&deposit,
		&total,
		&hasPending,
		&pendingTime,
		&pendingSlot,
		&pendingEpoch,
		&pendingHeight,
		&hasInserted,
		&insertedTime,
		&insertedSlot,
		&insertedEpoch,
		&insertedHigh,
		&tx.ExpiresSlot,
		&inputs,
		&outputs,
		&withdrawals,
		&metadata,
		&updatedAt,
	); err != nil {
		return model.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	tx.Direction = model.TransactionDirection(direction)
	tx.Status = model.TransactionState(status)
	tx.Amount = model.NewLovelace(amount)
	tx.Fee = model.NewLovelace(fee)
	tx.Deposit = model.NewLovelace(deposit)
	tx.Depth = model.NewDepth(0)

	if hasPending == 1 {
		tx.PendingSince = &model.BlockTime{
			Time: pendingTime,
			Block: model.BlockPointer{
				SlotNumber:  pendingSlot,
				EpochNumber: pendingEpoch,
				Height:      pendingHeight,
			},
		}
	}
	if hasInserted == 1 {
		tx.InsertedAt = &model.BlockTime{
			Time: insertedTime,
			Block: model.BlockPointer{
				SlotNumber:  insertedSlot,
				EpochNumber: insertedEpoch,
				Height:      insertedHigh,
			},
		}
	}

	if err := json.Unmarshal([]byte(inputs), &tx.Inputs); err != nil {
		return model.Transaction{}, fmt.Errorf("unmarshal inputs: %w", err)
	}
	if err := json.Unmarshal([]byte(outputs), &tx.Outputs); err != nil {
		return model.Transaction{}, fmt.Errorf("unmarshal outputs: %w", err)
	}
	if err := json.Unmarshal([]byte(withdrawals), &tx.Withdrawals); err != nil {
		return model.Transaction{}, fmt.Errorf("unmarshal withdrawals: %w", err)
	}
	if metadata != "" {
		tx.Metadata = json.RawMessage(metadata)
	}

	return tx, nil
}

// withdrawalTotal is denormalized into its own column so reward totals
// can be summed server side without parsing JSON.
func withdrawalTotal(tx model.Transaction) uint64 {
	var total uint64
	for _, w := range tx.Withdrawals {
		total += w.Amount.Quantity
	}
	return total
}
