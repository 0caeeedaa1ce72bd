package repository

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository implements persistence.BalanceRepository using GORM
type BalanceRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Get reads the cached balance. A missing row reads as zero so accounts that
// have never been credited still answer balance queries.
func (r *BalanceRepository) Get(ctx context.Context, accountID string) (*entity.Balance, error) {
	var balanceModel model.AccountBalance
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&balanceModel)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return &entity.Balance{
				AccountID: accountID,
				Paise:     0,
				UpdatedAt: r.timeProvider.Now(),
			}, nil
		}
		return nil, r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}

	return &entity.Balance{
		AccountID: balanceModel.AccountID,
		Paise:     balanceModel.Balance,
		UpdatedAt: balanceModel.UpdatedAt,
	}, nil
}

// Create seeds a balance row for a new account
func (r *BalanceRepository) Create(ctx context.Context, balance *entity.Balance) error {
	balanceModel := model.AccountBalance{
		AccountID: balance.AccountID,
		Balance:   balance.Paise,
		UpdatedAt: balance.UpdatedAt,
	}
	result := r.db.WithContext(ctx).Create(&balanceModel)
	if result.Error != nil {
		r.logger.Error("Failed to seed balance row", map[string]any{
			"account_id": balance.AccountID,
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}
	return nil
}

// ApplyDelta upserts the cached balance by the signed paise amount. Runs in
// the same scope as the ledger write it reflects, so under serializable
// isolation the cached row can never drift from the ledger sum.
func (r *BalanceRepository) ApplyDelta(ctx context.Context, accountID string, deltaPaise int64) error {
	now := r.timeProvider.Now()
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":    gorm.Expr("account_balances.balance + ?", deltaPaise),
			"updated_at": now,
		}),
	}).Create(&model.AccountBalance{
		AccountID: accountID,
		Balance:   deltaPaise,
		UpdatedAt: now,
	})
	if result.Error != nil {
		r.logger.Error("Failed to apply balance delta", map[string]any{
			"account_id": accountID,
			"delta":      deltaPaise,
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}
	return nil
}
