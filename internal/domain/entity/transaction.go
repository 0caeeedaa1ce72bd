package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// Transaction statuses. PENDING is the implicit initial state; COMPLETED and
// FAILED are terminal and no transition ever leaves them.
const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// TransactionType identifies the kind of money movement
type TransactionType string

// Transaction types
const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
	TypeTransfer   TransactionType = "TRANSFER"
)

// SystemVPA is the counterparty recorded for deposits and withdrawals
const SystemVPA = "system@bank"

// Transaction represents one money movement driven from PENDING to a terminal
// state. Created once per accepted idempotency key; never deleted.
type Transaction struct {
	ID             string
	IdempotencyKey string
	FromVPA        string
	ToVPA          string
	FromAccountID  string // empty for deposits
	ToAccountID    string // empty for withdrawals
	Paise          int64
	Status         TransactionStatus
	Type           TransactionType
	Reason         string // user memo, or failure reason once FAILED
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTransaction inserts directly in PENDING after the idempotency check,
// account resolution and balance precondition have passed
func NewTransaction(
	key string,
	txnType TransactionType,
	fromVPA, toVPA string,
	fromAccountID, toAccountID string,
	paise int64,
	reason string,
	timeProvider coreport.TimeProvider,
) *Transaction {
	now := timeProvider.Now()
	return &Transaction{
		ID:             uuid.NewString(),
		IdempotencyKey: key,
		FromVPA:        fromVPA,
		ToVPA:          toVPA,
		FromAccountID:  fromAccountID,
		ToAccountID:    toAccountID,
		Paise:          paise,
		Status:         StatusPending,
		Type:           txnType,
		Reason:         reason,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsTerminal reports whether the transaction reached a terminal state
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusFailed
}

// MarkCompleted transitions PENDING -> COMPLETED. Terminal states are never left.
func (t *Transaction) MarkCompleted(timeProvider coreport.TimeProvider) bool {
	if t.IsTerminal() {
		return false
	}
	t.Status = StatusCompleted
	t.UpdatedAt = timeProvider.Now()
	return true
}

// MarkFailed transitions PENDING -> FAILED recording the failure reason
func (t *Transaction) MarkFailed(reason string, timeProvider coreport.TimeProvider) bool {
	if t.IsTerminal() {
		return false
	}
	t.Status = StatusFailed
	t.Reason = reason
	t.UpdatedAt = timeProvider.Now()
	return true
}

// Amount returns the movement amount as a two-decimal string
func (t *Transaction) Amount() string {
	return FormatPaise(t.Paise)
}

// RetryKey derives the idempotency key for retrying this failed transaction.
// Deterministic per transaction so a retry of a retry still dedupes.
func (t *Transaction) RetryKey() string {
	return "retry_" + t.ID
}

// BulkMemberKey derives the idempotency key for member i of a bulk batch
func BulkMemberKey(batchKey string, index int) string {
	return fmt.Sprintf("%s_%d", batchKey, index)
}
