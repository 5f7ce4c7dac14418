package model

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound reports that no matching transaction exists.
var ErrNotFound = errors.New("transaction not found")

// TransactionState is the lifecycle state of a submitted transaction.
// A transaction is created pending, becomes in_ledger once included in a
// confirmed block, or expired if not included before its time-to-live
// boundary. It is immutable thereafter except for its depth.
type TransactionState string

const (
	StatePending  TransactionState = "pending"
	StateInLedger TransactionState = "in_ledger"
	StateExpired  TransactionState = "expired"
)

// TransactionDirection tells whether the wallet is net sender or receiver.
type TransactionDirection string

const (
	DirectionOutgoing TransactionDirection = "outgoing"
	DirectionIncoming TransactionDirection = "incoming"
)

// BlockPointer identifies a slot in the chain.
type BlockPointer struct {
	SlotNumber  uint64 `json:"slot_number"`
	EpochNumber uint64 `json:"epoch_number"`
	Height      uint64 `json:"height"`
}

// BlockTime is a block pointer with its wall-clock time.
type BlockTime struct {
	Time  time.Time    `json:"time"`
	Block BlockPointer `json:"block"`
}

// TransactionFee is the estimate produced for a prospective transaction:
// a min/max fee bracket, any protocol deposit owed, and one minimum-coin
// floor per output being created.
type TransactionFee struct {
	EstimatedMin Value   `json:"estimated_min"`
	EstimatedMax Value   `json:"estimated_max"`
	Deposit      Value   `json:"deposit"`
	MinimumCoins []Value `json:"minimum_coins"`
}

// Transaction is the chain-recorded transaction as the wallet tracks it.
type Transaction struct {
	ID           string               `json:"id"`
	WalletID     string               `json:"walletId"`
	Amount       Value                `json:"amount"`
	Fee          Value                `json:"fee"`
	Deposit      Value                `json:"deposit"`
	InsertedAt   *BlockTime           `json:"inserted_at,omitempty"`
	PendingSince *BlockTime           `json:"pending_since,omitempty"`
	ExpiresSlot  uint64               `json:"expires_slot,omitempty"`
	Depth        Value                `json:"depth"`
	Direction    TransactionDirection `json:"direction"`
	Inputs       []Input              `json:"inputs"`
	Outputs      []Output             `json:"outputs"`
	Withdrawals  []Withdrawal         `json:"withdrawals"`
	Status       TransactionState     `json:"status"`
	Metadata     json.RawMessage      `json:"metadata,omitempty"`
}

// NewDepth returns a confirmation depth value.
func NewDepth(blocks uint64) Value {
	return Value{Quantity: blocks, Unit: Block}
}
