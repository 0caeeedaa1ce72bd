package entity

import (
	"time"

	"github.com/google/uuid"

	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
)

// BankAccount represents an account owned by exactly one user. Immutable once
// created except for the reference code; deletion requires a zero cached balance.
type BankAccount struct {
	ID         string
	UserID     string
	AccountRef string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBankAccount creates a new account for the given owner
func NewBankAccount(userID, accountRef string, timeProvider coreport.TimeProvider) *BankAccount {
	now := timeProvider.Now()
	return &BankAccount{
		ID:         uuid.NewString(),
		UserID:     userID,
		AccountRef: accountRef,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Balance is the cached per-account balance row. It exists purely to avoid
// re-aggregating the ledger on every read and is only ever mutated in the
// same atomic scope as the ledger write it reflects.
type Balance struct {
	AccountID string
	Paise     int64
	UpdatedAt time.Time
}

// Formatted returns the cached balance as a two-decimal string
func (b *Balance) Formatted() string {
	return FormatPaise(b.Paise)
}

// CanCover reports whether the cached balance covers a debit of the given paise
func (b *Balance) CanCover(paise int64) bool {
	return b.Paise >= paise
}
