package repository

import (
	"context"
	"time"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func optionalIDValue(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

func txnToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:             txn.ID,
		IdempotencyKey: txn.IdempotencyKey,
		FromVPA:        txn.FromVPA,
		ToVPA:          txn.ToVPA,
		FromAccountID:  optionalID(txn.FromAccountID),
		ToAccountID:    optionalID(txn.ToAccountID),
		Amount:         txn.Paise,
		Status:         string(txn.Status),
		Type:           string(txn.Type),
		Reason:         txn.Reason,
		CreatedAt:      txn.CreatedAt,
		UpdatedAt:      txn.UpdatedAt,
	}
}

func txnToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:             m.ID,
		IdempotencyKey: m.IdempotencyKey,
		FromVPA:        m.FromVPA,
		ToVPA:          m.ToVPA,
		FromAccountID:  optionalIDValue(m.FromAccountID),
		ToAccountID:    optionalIDValue(m.ToAccountID),
		Paise:          m.Amount,
		Status:         entity.TransactionStatus(m.Status),
		Type:           entity.TransactionType(m.Type),
		Reason:         m.Reason,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// userAccounts builds the subquery selecting the user's account ids
func (r *TransactionRepository) userAccounts(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.BankAccount{}).
		Select("id").
		Where("user_id = ?", userID)
}

// Create inserts a new transaction row in PENDING
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := txnToModel(txn)
	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id":  txn.ID,
			"idempotency_key": txn.IdempotencyKey,
			"error":           result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrTransactionNotFound, errs.ErrKeyConflict)
	}
	return nil
}

// UpdateStatus writes the transaction's terminal status, reason and updated_at
func (r *TransactionRepository) UpdateStatus(ctx context.Context, txn *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", txn.ID).
		Updates(map[string]interface{}{
			"status":     string(txn.Status),
			"reason":     txn.Reason,
			"updated_at": txn.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update transaction status", map[string]any{
			"transaction_id": txn.ID,
			"status":         string(txn.Status),
			"error":          result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrTransactionNotFound, errs.ErrKeyConflict)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// GetByID retrieves a transaction visible to the given user, meaning the user
// owns the account on either side of the movement
func (r *TransactionRepository) GetByID(ctx context.Context, txnID, userID string) (*entity.Transaction, error) {
	accounts := r.userAccounts(ctx, userID)

	var txnModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("id = ? AND (from_account_id IN (?) OR to_account_id IN (?))", txnID, accounts, accounts).
		First(&txnModel)
	if result.Error != nil {
		return nil, r.errorClassifier.Map(result.Error, errs.ErrTransactionNotFound, errs.ErrKeyConflict)
	}
	return txnToEntity(&txnModel), nil
}

// GetFailedForRetry retrieves a FAILED transfer whose source account is owned
// by the user. Only transfers are retryable; deposits and withdrawals fail
// fast enough that replaying the original key covers them.
func (r *TransactionRepository) GetFailedForRetry(ctx context.Context, txnID, userID string) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ? AND type = ? AND from_account_id IN (?)",
			txnID, string(entity.StatusFailed), string(entity.TypeTransfer), r.userAccounts(ctx, userID)).
		First(&txnModel)
	if result.Error != nil {
		r.logger.Debug("Retry candidate lookup failed", map[string]any{
			"transaction_id": txnID,
			"user_id":        userID,
			"error":          result.Error.Error(),
		})
		return nil, r.errorClassifier.Map(result.Error, errs.ErrTransactionNotFound, errs.ErrKeyConflict)
	}
	return txnToEntity(&txnModel), nil
}

// ListForUser returns the user's transactions newest first, with the total count
func (r *TransactionRepository) ListForUser(ctx context.Context, userID string, filter persistence.TransactionFilter, page persistence.Page) ([]*entity.Transaction, int64, error) {
	accounts := r.userAccounts(ctx, userID)

	query := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("from_account_id IN (?) OR to_account_id IN (?)", accounts, accounts)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.errorClassifier.Map(err, errs.ErrTransactionNotFound, errs.ErrKeyConflict)
	}

	var txnModels []model.Transaction
	result := query.
		Order("created_at DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&txnModels)
	if result.Error != nil {
		return nil, 0, r.errorClassifier.Map(result.Error, errs.ErrTransactionNotFound, errs.ErrKeyConflict)
	}

	txns := make([]*entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, txnToEntity(&txnModels[i]))
	}
	return txns, total, nil
}

// summaryRow is the scan target for the aggregate query
type summaryRow struct {
	Total     int64
	Completed int64
	Failed    int64
}

// Summarize aggregates the user's transactions created at or after since
func (r *TransactionRepository) Summarize(ctx context.Context, userID string, since time.Time) (*persistence.TransactionSummary, error) {
	accounts := r.userAccounts(ctx, userID)

	var row summaryRow
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(
			"COUNT(*) AS total, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS failed",
			string(entity.StatusCompleted), string(entity.StatusFailed)).
		Where("created_at >= ? AND (from_account_id IN (?) OR to_account_id IN (?))", since, accounts, accounts).
		Scan(&row)
	if result.Error != nil {
		return nil, r.errorClassifier.Map(result.Error, errs.ErrTransactionNotFound, errs.ErrKeyConflict)
	}

	var sent int64
	if err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("created_at >= ? AND status = ? AND from_account_id IN (?)",
			since, string(entity.StatusCompleted), r.userAccounts(ctx, userID)).
		Scan(&sent).Error; err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrTransactionNotFound, errs.ErrKeyConflict)
	}

	var received int64
	if err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("created_at >= ? AND status = ? AND to_account_id IN (?)",
			since, string(entity.StatusCompleted), r.userAccounts(ctx, userID)).
		Scan(&received).Error; err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrTransactionNotFound, errs.ErrKeyConflict)
	}

	return &persistence.TransactionSummary{
		Total:          row.Total,
		Completed:      row.Completed,
		Failed:         row.Failed,
		TotalSentPaise: sent,
		TotalRecvPaise: received,
	}, nil
}
