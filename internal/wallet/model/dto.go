package model

import "time"

// TransactionsFilter narrows a wallet transaction listing. The zero value
// lists everything newest first.
type TransactionsFilter struct {
	Ascending bool
	FromDate  *time.Time
	ToDate    *time.Time
}

// SignedTransaction is a serialized transaction ready for submission.
type SignedTransaction struct {
	ID   string `json:"id"`
	Blob []byte `json:"blob"`
}
