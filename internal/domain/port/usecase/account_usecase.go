package usecase

import (
	"context"
	"time"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
)

// AccountView is an account with its cached balance
type AccountView struct {
	ID               string    `json:"id"`
	AccountRef       string    `json:"accountRef"`
	Balance          string    `json:"balance"`
	TransactionCount int64     `json:"transactionCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// BalanceView is the balance lookup projection
type BalanceView struct {
	AccountID   string    `json:"accountId"`
	Balance     string    `json:"balance"`
	Currency    string    `json:"currency"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// LedgerPage is one page of an account's ledger history
type LedgerPage struct {
	Entries    []AccountLedgerView `json:"transactions"`
	Pagination Pagination          `json:"pagination"`
}

// AccountLedgerView is one ledger leg joined with its transaction
type AccountLedgerView struct {
	ID              string                   `json:"id"`
	TransactionID   string                   `json:"transactionId"`
	Type            entity.LedgerType        `json:"type"`
	Amount          string                   `json:"amount"`
	FromVPA         string                   `json:"fromVpa"`
	ToVPA           string                   `json:"toVpa"`
	TransactionType entity.TransactionType   `json:"transactionType"`
	Status          entity.TransactionStatus `json:"status"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// AuditReport compares the cached balance against the ledger's signed sum
type AuditReport struct {
	AccountID     string `json:"accountId"`
	CachedBalance string `json:"cachedBalance"`
	LedgerBalance string `json:"ledgerBalance"`
	Consistent    bool   `json:"consistent"`
}

// AccountUseCase wraps account CRUD and read paths around the ledger store
type AccountUseCase interface {
	// Create opens an account with a zero-seeded balance row
	Create(ctx context.Context, userID, accountRef string) (*AccountView, error)

	// List returns the user's accounts with balances, newest first
	List(ctx context.Context, userID string) ([]AccountView, error)

	// Get returns one account owned by the user
	Get(ctx context.Context, accountID, userID string) (*AccountView, error)

	// UpdateRef changes the account's external reference code
	UpdateRef(ctx context.Context, accountID, userID, accountRef string) (*AccountView, error)

	// Delete removes an account; rejected with ErrAccountNotEmpty while the
	// cached balance is non-zero
	Delete(ctx context.Context, accountID, userID string) error

	// GetBalance returns the cached balance
	GetBalance(ctx context.Context, accountID, userID string) (*BalanceView, error)

	// GetLedger pages through the account's ledger entries
	GetLedger(ctx context.Context, accountID, userID string, page persistence.Page) (*LedgerPage, error)

	// Audit verifies the cached balance equals the signed sum of ledger entries
	Audit(ctx context.Context, accountID, userID string) (*AuditReport, error)
}
