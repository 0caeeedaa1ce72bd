package account

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
	"github.com/adhishcp/upi-app/internal/domain/port/usecase"
)

// Currency reported on balance reads. Amounts are stored as integer paise and
// rendered as two-decimal strings, so the currency never varies per row.
const Currency = "INR"

// Service implements account CRUD and the read paths over the ledger store
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountService creates the account use case
func NewAccountService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.AccountUseCase = (*Service)(nil)

// Create opens an account and seeds its zero balance row in one scope
func (s *Service) Create(ctx context.Context, userID, accountRef string) (*usecase.AccountView, error) {
	if accountRef == "" {
		return nil, errs.ErrInvalidRequest
	}

	scopeCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.uow.GetUserRepository(scopeCtx).GetByID(scopeCtx, userID); err != nil {
		s.rollback(scopeCtx)
		return nil, err
	}

	acct := entity.NewBankAccount(userID, accountRef, s.timeProvider)
	if err := s.uow.GetAccountRepository(scopeCtx).Create(scopeCtx, acct); err != nil {
		s.rollback(scopeCtx)
		return nil, err
	}
	if err := s.uow.GetBalanceRepository(scopeCtx).Create(scopeCtx, &entity.Balance{
		AccountID: acct.ID,
		Paise:     0,
		UpdatedAt: s.timeProvider.Now(),
	}); err != nil {
		s.rollback(scopeCtx)
		return nil, err
	}

	if err := s.uow.Commit(scopeCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Bank account created", map[string]any{
		"account_id": acct.ID,
		"user_id":    userID,
	})

	return &usecase.AccountView{
		ID:         acct.ID,
		AccountRef: acct.AccountRef,
		Balance:    entity.FormatPaise(0),
		CreatedAt:  acct.CreatedAt,
	}, nil
}

// List returns the caller's accounts with balances, newest first
func (s *Service) List(ctx context.Context, userID string) ([]usecase.AccountView, error) {
	accounts, err := s.uow.GetAccountRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.AccountView, 0, len(accounts))
	for _, acct := range accounts {
		view, err := s.projectAccount(ctx, acct)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// Get returns one account owned by the caller
func (s *Service) Get(ctx context.Context, accountID, userID string) (*usecase.AccountView, error) {
	acct, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	return s.projectAccount(ctx, acct)
}

// UpdateRef changes the account's external reference code
func (s *Service) UpdateRef(ctx context.Context, accountID, userID, accountRef string) (*usecase.AccountView, error) {
	if accountRef == "" {
		return nil, errs.ErrInvalidRequest
	}
	acct, err := s.uow.GetAccountRepository(ctx).UpdateRef(ctx, accountID, userID, accountRef)
	if err != nil {
		return nil, err
	}
	return s.projectAccount(ctx, acct)
}

// Delete removes an account once its cached balance is zero. The balance
// check and the delete share one serializable scope so a concurrent credit
// cannot slip between them.
func (s *Service) Delete(ctx context.Context, accountID, userID string) error {
	scopeCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	acct, err := s.uow.GetAccountRepository(scopeCtx).GetByID(scopeCtx, accountID, userID)
	if err != nil {
		s.rollback(scopeCtx)
		return err
	}

	balance, err := s.uow.GetBalanceRepository(scopeCtx).Get(scopeCtx, acct.ID)
	if err != nil {
		s.rollback(scopeCtx)
		return err
	}
	if balance.Paise != 0 {
		s.rollback(scopeCtx)
		return errs.ErrAccountNotEmpty
	}

	if err := s.uow.GetAccountRepository(scopeCtx).Delete(scopeCtx, acct.ID); err != nil {
		s.rollback(scopeCtx)
		return err
	}

	if err := s.uow.Commit(scopeCtx); err != nil {
		return err
	}

	s.logger.Info("Bank account deleted", map[string]any{
		"account_id": accountID,
		"user_id":    userID,
	})
	return nil
}

// GetBalance returns the cached balance for an account owned by the caller
func (s *Service) GetBalance(ctx context.Context, accountID, userID string) (*usecase.BalanceView, error) {
	acct, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	balance, err := s.uow.GetBalanceRepository(ctx).Get(ctx, acct.ID)
	if err != nil {
		return nil, err
	}
	return &usecase.BalanceView{
		AccountID:   acct.ID,
		Balance:     balance.Formatted(),
		Currency:    Currency,
		LastUpdated: balance.UpdatedAt,
	}, nil
}

// GetLedger pages through the account's ledger legs joined with their transactions
func (s *Service) GetLedger(ctx context.Context, accountID, userID string, page persistence.Page) (*usecase.LedgerPage, error) {
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 || page.Size > 100 {
		page.Size = 20
	}

	acct, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	lines, total, err := s.uow.GetLedgerRepository(ctx).ListByAccount(ctx, acct.ID, page)
	if err != nil {
		return nil, err
	}

	entries := make([]usecase.AccountLedgerView, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, usecase.AccountLedgerView{
			ID:              line.ID,
			TransactionID:   line.TxnID,
			Type:            line.Type,
			Amount:          entity.FormatPaise(line.Paise),
			FromVPA:         line.FromVPA,
			ToVPA:           line.ToVPA,
			TransactionType: line.TxnType,
			Status:          line.TxnStatus,
			CreatedAt:       line.CreatedAt,
		})
	}

	totalPages := total / int64(page.Size)
	if total%int64(page.Size) != 0 {
		totalPages++
	}

	return &usecase.LedgerPage{
		Entries: entries,
		Pagination: usecase.Pagination{
			Page:       page.Number,
			Limit:      page.Size,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// Audit recomputes the ledger's signed sum and compares it against the cached
// balance. The two reads share one serializable scope so an in-flight transfer
// cannot make a consistent account look torn.
func (s *Service) Audit(ctx context.Context, accountID, userID string) (*usecase.AuditReport, error) {
	scopeCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	acct, err := s.uow.GetAccountRepository(scopeCtx).GetByID(scopeCtx, accountID, userID)
	if err != nil {
		s.rollback(scopeCtx)
		return nil, err
	}
	balance, err := s.uow.GetBalanceRepository(scopeCtx).Get(scopeCtx, acct.ID)
	if err != nil {
		s.rollback(scopeCtx)
		return nil, err
	}
	ledgerSum, err := s.uow.GetLedgerRepository(scopeCtx).SumByAccount(scopeCtx, acct.ID)
	if err != nil {
		s.rollback(scopeCtx)
		return nil, err
	}

	if err := s.uow.Commit(scopeCtx); err != nil {
		return nil, err
	}

	report := &usecase.AuditReport{
		AccountID:     acct.ID,
		CachedBalance: balance.Formatted(),
		LedgerBalance: entity.FormatPaise(ledgerSum),
		Consistent:    balance.Paise == ledgerSum,
	}
	if !report.Consistent {
		s.logger.Error("Balance invariant violated", map[string]any{
			"account_id":     acct.ID,
			"cached_balance": report.CachedBalance,
			"ledger_balance": report.LedgerBalance,
		})
	}
	return report, nil
}

func (s *Service) projectAccount(ctx context.Context, acct *entity.BankAccount) (*usecase.AccountView, error) {
	balance, err := s.uow.GetBalanceRepository(ctx).Get(ctx, acct.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.uow.GetLedgerRepository(ctx).CountByAccount(ctx, acct.ID)
	if err != nil {
		return nil, err
	}
	return &usecase.AccountView{
		ID:               acct.ID,
		AccountRef:       acct.AccountRef,
		Balance:          balance.Formatted(),
		TransactionCount: count,
		CreatedAt:        acct.CreatedAt,
	}, nil
}

func (s *Service) rollback(ctx context.Context) {
	if err := s.uow.Rollback(ctx); err != nil {
		s.logger.Error("Failed to roll back scope", map[string]any{"error": err.Error()})
	}
}
