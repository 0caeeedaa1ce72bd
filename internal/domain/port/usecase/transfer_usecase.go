package usecase

import (
	"context"
	"time"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
)

// TransferRequest represents one money movement to another VPA
type TransferRequest struct {
	ToVPA         string `json:"toVpa"`
	Amount        string `json:"amount"`
	Reason        string `json:"reason,omitempty"`
	FromAccountID string `json:"fromAccountId,omitempty"`
}

// BulkTransferRequest carries up to 100 independent transfers
type BulkTransferRequest struct {
	Transfers []TransferRequest `json:"transfers"`
}

// BulkMemberResult reports the outcome of one batch member
type BulkMemberResult struct {
	Index   int             `json:"index"`
	Status  string          `json:"status"` // "success" or "failed"
	Outcome *entity.Outcome `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// BulkTransferResult reports a batch. The batch has no atomicity across
// members, only per-member atomicity; partial failure is expected.
type BulkTransferResult struct {
	BatchID    string             `json:"batchId"`
	Total      int                `json:"total"`
	Successful int                `json:"successful"`
	Failed     int                `json:"failed"`
	Results    []BulkMemberResult `json:"results"`
}

// TransactionView is the read projection of a transaction for history listings
type TransactionView struct {
	ID           string                   `json:"id"`
	Type         entity.TransactionType   `json:"transactionType"`
	Status       entity.TransactionStatus `json:"status"`
	Amount       string                   `json:"amount"`
	FromVPA      string                   `json:"fromVpa"`
	ToVPA        string                   `json:"toVpa"`
	Direction    string                   `json:"direction,omitempty"` // "outgoing" or "incoming"
	Counterparty *entity.Counterparty     `json:"counterparty,omitempty"`
	Reason       string                   `json:"reason,omitempty"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

// LedgerEntryView is the read projection of one ledger leg
type LedgerEntryView struct {
	Type      entity.LedgerType `json:"type"`
	Amount    string            `json:"amount"`
	CreatedAt time.Time         `json:"createdAt"`
}

// TransactionDetail is a transaction with its ledger legs
type TransactionDetail struct {
	TransactionView
	LedgerEntries []LedgerEntryView `json:"ledgerEntries"`
}

// TransactionStatusView is the minimal status lookup projection
type TransactionStatusView struct {
	ID        string                   `json:"id"`
	Status    entity.TransactionStatus `json:"status"`
	Reason    string                   `json:"reason,omitempty"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

// TransactionPage is one page of a user's transaction history
type TransactionPage struct {
	Transactions []TransactionView `json:"transactions"`
	Pagination   Pagination        `json:"pagination"`
}

// Pagination echoes the page window plus totals
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// SummaryView aggregates a user's activity over a period
type SummaryView struct {
	Period        string `json:"period"`
	Total         int64  `json:"totalTransactions"`
	Completed     int64  `json:"completedTransactions"`
	Failed        int64  `json:"failedTransactions"`
	SuccessRate   string `json:"successRate"`
	TotalSent     string `json:"totalSent"`
	TotalReceived string `json:"totalReceived"`
}

// TransferUseCase drives money movements with exactly-once effect per
// idempotency key
type TransferUseCase interface {
	// Deposit credits an account from the system counterparty.
	// One CREDIT ledger entry; no balance precondition.
	Deposit(ctx context.Context, accountID, amount, idempotencyKey, userID string) (*entity.Outcome, error)

	// Withdraw debits an account toward the system counterparty.
	// One DEBIT ledger entry; fails with ErrInsufficientBalance when the
	// cached balance cannot cover the amount.
	Withdraw(ctx context.Context, accountID, amount, idempotencyKey, userID string) (*entity.Outcome, error)

	// Transfer moves funds to the recipient VPA's first linked account,
	// writing a matched DEBIT/CREDIT pair in one serializable scope
	Transfer(ctx context.Context, req TransferRequest, idempotencyKey, userID string) (*entity.Outcome, error)

	// BulkTransfer executes each member as an independent atomic unit keyed
	// by idempotencyKey + index
	BulkTransfer(ctx context.Context, req BulkTransferRequest, idempotencyKey, userID string) (*BulkTransferResult, error)

	// Retry issues a brand-new transaction for a FAILED one, with a key
	// derived deterministically from the failed transaction's id
	Retry(ctx context.Context, txnID, userID string) (*entity.Outcome, error)

	// GetTransaction returns a transaction with its ledger legs, scoped to the user
	GetTransaction(ctx context.Context, txnID, userID string) (*TransactionDetail, error)

	// GetTransactionStatus returns the minimal status projection
	GetTransactionStatus(ctx context.Context, txnID, userID string) (*TransactionStatusView, error)

	// ListTransactions pages through the user's history
	ListTransactions(ctx context.Context, userID string, filter persistence.TransactionFilter, page persistence.Page) (*TransactionPage, error)

	// Summarize aggregates the user's activity over a period like "30d", "1w", "1m", "1y"
	Summarize(ctx context.Context, userID, period string) (*SummaryView, error)
}
