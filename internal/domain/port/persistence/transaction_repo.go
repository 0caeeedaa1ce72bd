package persistence

import (
	"context"
	"time"

	"github.com/adhishcp/upi-app/internal/domain/entity"
)

// TransactionFilter narrows history listings
type TransactionFilter struct {
	Status entity.TransactionStatus // empty matches all
	Type   entity.TransactionType   // empty matches all
}

// TransactionSummary aggregates a user's completed activity over a window
type TransactionSummary struct {
	Total          int64
	Completed      int64
	Failed         int64
	TotalSentPaise int64
	TotalRecvPaise int64
}

// TransactionRepository persists money movements
type TransactionRepository interface {
	// Create inserts a new transaction row in PENDING
	//
	// Possible errors:
	// - ErrKeyConflict: if a transaction for the idempotency key already exists
	Create(ctx context.Context, txn *entity.Transaction) error

	// UpdateStatus writes the transaction's status, reason and updated_at
	//
	// Possible errors:
	// - ErrTransactionNotFound: if the row doesn't exist
	UpdateStatus(ctx context.Context, txn *entity.Transaction) error

	// GetByID retrieves a transaction visible to the given user (the user owns
	// either side of the movement)
	GetByID(ctx context.Context, txnID, userID string) (*entity.Transaction, error)

	// GetFailedForRetry retrieves a FAILED transaction whose source account is
	// owned by the user
	GetFailedForRetry(ctx context.Context, txnID, userID string) (*entity.Transaction, error)

	// ListForUser returns the user's transactions newest first, with the total count
	ListForUser(ctx context.Context, userID string, filter TransactionFilter, page Page) ([]*entity.Transaction, int64, error)

	// Summarize aggregates the user's transactions created at or after since
	Summarize(ctx context.Context, userID string, since time.Time) (*TransactionSummary, error)
}
