package usecase

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
)

// RegisterRequest carries the fields needed to create a user
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	VPA      string `json:"vpa"`
	Password string `json:"password"`
}

// UserUseCase manages users. Only the public projection ever leaves this
// layer; the password hash stays internal by construction.
type UserUseCase interface {
	// Register creates a user with a hashed password
	Register(ctx context.Context, req RegisterRequest) (*entity.PublicUser, error)

	// Get returns the public projection of a user
	Get(ctx context.Context, userID string) (*entity.PublicUser, error)
}
