package repository

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserRepository) modelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		VPA:          m.VPA,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		r.logger.Debug("User lookup failed", map[string]any{
			"user_id": id,
			"error":   result.Error.Error(),
		})
		return nil, r.errorClassifier.Map(result.Error, errs.ErrUserNotFound, errs.ErrConstraintViolation)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByVPA retrieves a user by virtual payment address. A missing VPA maps to
// ErrRecipientNotFound since this lookup only runs for transfer targets.
func (r *UserRepository) GetByVPA(ctx context.Context, vpa string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("vpa = ?", vpa).First(&userModel)
	if result.Error != nil {
		r.logger.Debug("VPA lookup failed", map[string]any{
			"vpa":   vpa,
			"error": result.Error.Error(),
		})
		return nil, r.errorClassifier.Map(result.Error, errs.ErrRecipientNotFound, errs.ErrConstraintViolation)
	}
	return r.modelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		VPA:          user.VPA,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		r.logger.Error("Failed to create user", map[string]any{
			"user_id": user.ID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrUserNotFound, errs.ErrConstraintViolation)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"vpa":     user.VPA,
	})
	return nil
}
