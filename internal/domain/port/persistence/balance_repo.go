package persistence

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
)

// BalanceRepository manages the cached per-account balance rows
type BalanceRepository interface {
	// Get reads the cached balance for the account. Within a serializable
	// scope this read participates in the isolation, so a concurrent writer
	// cannot apply a conflicting delta until the scope commits.
	//
	// A missing row reads as a zero balance, covering accounts that have
	// never been credited.
	Get(ctx context.Context, accountID string) (*entity.Balance, error)

	// Create seeds a zero (or initial) balance row for a new account
	Create(ctx context.Context, balance *entity.Balance) error

	// ApplyDelta increments or decrements the cached balance by the signed
	// paise amount, creating the row seeded with the delta when absent.
	// Must be called in the same scope as the ledger write it reflects.
	ApplyDelta(ctx context.Context, accountID string, deltaPaise int64) error
}
