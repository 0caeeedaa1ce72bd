package repository

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LedgerRepository implements persistence.LedgerRepository using GORM.
// The table is append-only; no update or delete path exists.
type LedgerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func entryToModel(entry *entity.LedgerEntry) model.LedgerEntry {
	return model.LedgerEntry{
		ID:        entry.ID,
		AccountID: entry.AccountID,
		TxnID:     entry.TxnID,
		Type:      string(entry.Type),
		Amount:    entry.Paise,
		CreatedAt: entry.CreatedAt,
	}
}

func entryToEntity(m *model.LedgerEntry) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:        m.ID,
		AccountID: m.AccountID,
		TxnID:     m.TxnID,
		Type:      entity.LedgerType(m.Type),
		Paise:     m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// CreateMany appends ledger entries in one statement so the matched
// DEBIT/CREDIT pair of a transfer co-commits
func (r *LedgerRepository) CreateMany(ctx context.Context, entries []*entity.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	models := make([]model.LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		models = append(models, entryToModel(entry))
	}

	result := r.db.WithContext(ctx).Create(&models)
	if result.Error != nil {
		r.logger.Error("Failed to append ledger entries", map[string]any{
			"count": len(entries),
			"error": result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}
	return nil
}

// Create appends a single entry
func (r *LedgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	return r.CreateMany(ctx, []*entity.LedgerEntry{entry})
}

// ListByTxn returns the legs recorded for one transaction
func (r *LedgerRepository) ListByTxn(ctx context.Context, txnID string) ([]*entity.LedgerEntry, error) {
	var models []model.LedgerEntry
	result := r.db.WithContext(ctx).
		Where("txn_id = ?", txnID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, r.errorClassifier.Map(result.Error, errs.ErrTransactionNotFound, errs.ErrConstraintViolation)
	}

	entries := make([]*entity.LedgerEntry, 0, len(models))
	for i := range models {
		entries = append(entries, entryToEntity(&models[i]))
	}
	return entries, nil
}

// statementRow is the scan target for the ledger-transaction join
type statementRow struct {
	model.LedgerEntry
	FromVPA   string `gorm:"column:from_vpa"`
	ToVPA     string `gorm:"column:to_vpa"`
	TxnType   string `gorm:"column:txn_type"`
	TxnStatus string `gorm:"column:txn_status"`
}

// ListByAccount returns the account's entries newest first joined with their
// transactions, plus the total count
func (r *LedgerRepository) ListByAccount(ctx context.Context, accountID string, page persistence.Page) ([]*entity.AccountStatementLine, int64, error) {
	total, err := r.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}

	var rows []statementRow
	result := r.db.WithContext(ctx).
		Table("ledger_entries").
		Select("ledger_entries.*, transactions.from_vpa, transactions.to_vpa, transactions.type AS txn_type, transactions.status AS txn_status").
		Joins("JOIN transactions ON transactions.id = ledger_entries.txn_id").
		Where("ledger_entries.account_id = ?", accountID).
		Order("ledger_entries.created_at DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Scan(&rows)
	if result.Error != nil {
		return nil, 0, r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}

	lines := make([]*entity.AccountStatementLine, 0, len(rows))
	for i := range rows {
		lines = append(lines, &entity.AccountStatementLine{
			LedgerEntry: *entryToEntity(&rows[i].LedgerEntry),
			FromVPA:     rows[i].FromVPA,
			ToVPA:       rows[i].ToVPA,
			TxnType:     entity.TransactionType(rows[i].TxnType),
			TxnStatus:   entity.TransactionStatus(rows[i].TxnStatus),
		})
	}
	return lines, total, nil
}

// SumByAccount returns the signed sum (credits minus debits) of the account's entries
func (r *LedgerRepository) SumByAccount(ctx context.Context, accountID string) (int64, error) {
	var sum int64
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntry{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE -amount END), 0)", string(entity.LedgerCredit)).
		Where("account_id = ?", accountID).
		Scan(&sum)
	if result.Error != nil {
		return 0, r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}
	return sum, nil
}

// CountByAccount returns the number of entries for the account
func (r *LedgerRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntry{}).
		Where("account_id = ?", accountID).
		Count(&count)
	if result.Error != nil {
		return 0, r.errorClassifier.Map(result.Error, errs.ErrAccountNotFound, errs.ErrConstraintViolation)
	}
	return count, nil
}
