package persistence

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
)

// AccountRepository manages bank accounts. Lookups that take a userID are
// ownership-scoped: an account belonging to another user reads as not found.
type AccountRepository interface {
	// Create persists a new account
	Create(ctx context.Context, account *entity.BankAccount) error

	// GetByID retrieves an account owned by the given user
	//
	// Possible errors:
	// - ErrAccountNotFound: if the account doesn't exist or belongs to another user
	GetByID(ctx context.Context, accountID, userID string) (*entity.BankAccount, error)

	// GetFirstByUser returns the user's first linked account (by creation time).
	// Used to resolve the source when no account is named, and the recipient's
	// credit target on transfers.
	//
	// Possible errors:
	// - ErrNoLinkedAccount: if the user has no accounts
	GetFirstByUser(ctx context.Context, userID string) (*entity.BankAccount, error)

	// ListByUser returns all accounts owned by the user, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.BankAccount, error)

	// UpdateRef changes the external reference code
	//
	// Possible errors:
	// - ErrAccountNotFound: if the account doesn't exist or belongs to another user
	// - ErrConstraintViolation: if the reference code is already taken
	UpdateRef(ctx context.Context, accountID, userID, accountRef string) (*entity.BankAccount, error)

	// Delete removes an account. The caller must have verified the zero-balance
	// precondition inside the same scope.
	Delete(ctx context.Context, accountID string) error
}
