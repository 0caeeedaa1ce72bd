package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// IdempotencyRepository implements persistence.IdempotencyRepository using GORM
type IdempotencyRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewIdempotencyRepository creates a new IdempotencyRepository instance
func NewIdempotencyRepository(db *gorm.DB, logger coreport.Logger) *IdempotencyRepository {
	return &IdempotencyRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Get retrieves the record for a key. An unseen key returns nil, nil so the
// caller can distinguish fresh from duplicate without error juggling.
func (r *IdempotencyRepository) Get(ctx context.Context, key string) (*entity.IdempotencyRecord, error) {
	var keyModel model.IdempotencyKey
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&keyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.errorClassifier.Map(result.Error, errs.ErrKeyConflict, errs.ErrKeyConflict)
	}

	return &entity.IdempotencyRecord{
		Key:       keyModel.Key,
		UserID:    keyModel.UserID,
		Request:   keyModel.Request,
		Response:  keyModel.Response,
		CreatedAt: keyModel.CreatedAt,
	}, nil
}

// Create inserts the record before any side effect of the operation
func (r *IdempotencyRepository) Create(ctx context.Context, record *entity.IdempotencyRecord) error {
	keyModel := model.IdempotencyKey{
		Key:       record.Key,
		UserID:    record.UserID,
		Request:   record.Request,
		CreatedAt: record.CreatedAt,
	}
	result := r.db.WithContext(ctx).Create(&keyModel)
	if result.Error != nil {
		r.logger.Debug("Idempotency record insert failed", map[string]any{
			"key":   record.Key,
			"error": result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrKeyConflict, errs.ErrKeyConflict)
	}
	return nil
}

// SetResponse captures the outcome onto the existing record exactly once
func (r *IdempotencyRepository) SetResponse(ctx context.Context, key string, response json.RawMessage) error {
	result := r.db.WithContext(ctx).Model(&model.IdempotencyKey{}).
		Where("key = ? AND response IS NULL", key).
		Update("response", []byte(response))
	if result.Error != nil {
		r.logger.Error("Failed to capture idempotent response", map[string]any{
			"key":   key,
			"error": result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrKeyConflict, errs.ErrKeyConflict)
	}
	if result.RowsAffected == 0 {
		return errs.ErrKeyConflict
	}
	return nil
}
