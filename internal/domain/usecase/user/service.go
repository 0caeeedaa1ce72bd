package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
	"github.com/adhishcp/upi-app/internal/domain/port/usecase"
	"github.com/adhishcp/upi-app/internal/domain/usecase/transfer"
)

// minPasswordLength is the shortest password accepted at registration
const minPasswordLength = 8

// Service implements user registration and the public read projection
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *transfer.Validator
}

// NewUserService creates the user use case
func NewUserService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    transfer.NewValidator(),
	}
}

var _ usecase.UserUseCase = (*Service)(nil)

// Register creates a user with a bcrypt-hashed password
func (s *Service) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.PublicUser, error) {
	if req.Name == "" || req.Email == "" {
		return nil, errs.ErrInvalidRequest
	}
	if len(req.Password) < minPasswordLength {
		return nil, errs.ErrInvalidRequest
	}
	vpa, err := s.validator.NormalizeVPA(req.VPA)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		VPA:          vpa,
		PasswordHash: string(hash),
		CreatedAt:    s.timeProvider.Now(),
	}

	if err := s.uow.GetUserRepository(ctx).Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"vpa":     user.VPA,
	})

	public := user.Public()
	return &public, nil
}

// Get returns the public projection of a user
func (s *Service) Get(ctx context.Context, userID string) (*entity.PublicUser, error) {
	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}
