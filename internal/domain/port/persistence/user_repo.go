package persistence

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
)

// UserRepository resolves account holders
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user has the given ID
	// - ErrDatabaseConnection: if the store is unreachable
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByVPA resolves a user by their virtual payment address.
	// Used to find transfer recipients.
	//
	// Possible errors:
	// - ErrRecipientNotFound: if no user owns the VPA
	// - ErrDatabaseConnection: if the store is unreachable
	GetByVPA(ctx context.Context, vpa string) (*entity.User, error)

	// Create persists a new user
	//
	// Possible errors:
	// - ErrConstraintViolation: if the email or VPA is already taken
	// - ErrDatabaseConnection: if the store is unreachable
	Create(ctx context.Context, user *entity.User) error
}
