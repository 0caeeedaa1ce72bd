package repository

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AccountRepository implements persistence.AccountRepository using GORM.
// All lookups that take a userID filter on ownership in the query itself, so
// an account belonging to another user reads as not found.
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *AccountRepository) modelToEntity(m *model.BankAccount) *entity.BankAccount {
	return &entity.BankAccount{
		ID:         m.ID,
		UserID:     m.UserID,
		AccountRef: m.AccountRef,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// Create persists a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.BankAccount) error {
	accountModel := model.BankAccount{
		ID:         account.ID,
		UserID:     account.UserID,
		AccountRef: account.AccountRef,
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		r.logger.Error("Failed to create bank account", map[string]any{
			"account_id": account.ID,
			"user_id":    account.UserID,
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}
	return nil
}

// GetByID retrieves an account owned by the given user
func (r *AccountRepository) GetByID(ctx context.Context, accountID, userID string) (*entity.BankAccount, error) {
	var accountModel model.BankAccount
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", accountID, userID).
		First(&accountModel)
	if result.Error != nil {
		r.logger.Debug("Account lookup failed", map[string]any{
			"account_id": accountID,
			"user_id":    userID,
			"error":      result.Error.Error(),
		})
		return nil, r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}
	return r.modelToEntity(&accountModel), nil
}

// GetFirstByUser returns the user's first linked account by creation time
func (r *AccountRepository) GetFirstByUser(ctx context.Context, userID string) (*entity.BankAccount, error) {
	var accountModel model.BankAccount
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		First(&accountModel)
	if result.Error != nil {
		return nil, r.errorClassifier.Map(result.Error, errs.ErrNoLinkedAccount, errs.ErrConstraintViolation)
	}
	return r.modelToEntity(&accountModel), nil
}

// ListByUser returns all accounts owned by the user, newest first
func (r *AccountRepository) ListByUser(ctx context.Context, userID string) ([]*entity.BankAccount, error) {
	var accountModels []model.BankAccount
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}

	accounts := make([]*entity.BankAccount, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, r.modelToEntity(&accountModels[i]))
	}
	return accounts, nil
}

// UpdateRef changes the external reference code
func (r *AccountRepository) UpdateRef(ctx context.Context, accountID, userID, accountRef string) (*entity.BankAccount, error) {
	result := r.db.WithContext(ctx).Model(&model.BankAccount{}).
		Where("id = ? AND user_id = ?", accountID, userID).
		Updates(map[string]interface{}{
			"account_ref": accountRef,
			"updated_at":  r.timeProvider.Now(),
		})
	if result.Error != nil {
		r.logger.Error("Failed to update account reference", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return nil, r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrAccountNotFound
	}
	return r.GetByID(ctx, accountID, userID)
}

// Delete removes an account. The zero-balance precondition is the caller's
// responsibility, checked inside the same scope.
func (r *AccountRepository) Delete(ctx context.Context, accountID string) error {
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.AccountBalance{}).Error; err != nil {
		return r.errorClassifier.Map(err, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}

	result := r.db.WithContext(ctx).
		Where("id = ?", accountID).
		Delete(&model.BankAccount{})
	if result.Error != nil {
		r.logger.Error("Failed to delete bank account", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}
