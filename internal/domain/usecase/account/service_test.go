package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
	coremocks "github.com/adhishcp/upi-app/mocks/port/core"
	persistencemocks "github.com/adhishcp/upi-app/mocks/port/persistence"
)

type serviceFixture struct {
	service  *Service
	uow      *persistencemocks.MockUnitOfWork
	users    *persistencemocks.MockUserRepository
	accounts *persistencemocks.MockAccountRepository
	balances *persistencemocks.MockBalanceRepository
	ledger   *persistencemocks.MockLedgerRepository
}

func newServiceFixture(t *testing.T) *serviceFixture {
	f := &serviceFixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		users:    persistencemocks.NewMockUserRepository(t),
		accounts: persistencemocks.NewMockAccountRepository(t),
		balances: persistencemocks.NewMockBalanceRepository(t),
		ledger:   persistencemocks.NewMockLedgerRepository(t),
	}

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetAccountRepository(mock.Anything).Return(f.accounts).Maybe()
	f.uow.EXPECT().GetBalanceRepository(mock.Anything).Return(f.balances).Maybe()
	f.uow.EXPECT().GetLedgerRepository(mock.Anything).Return(f.ledger).Maybe()

	f.service = NewAccountService(f.uow, mockTime, mockLogger)
	return f
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: "user-1", Name: "Alice", VPA: "alice@upi"}

	t.Run("Seeds a zero balance row in the same scope", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.users.EXPECT().GetByID(mock.Anything, "user-1").Return(owner, nil)
		f.accounts.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *entity.BankAccount) bool {
			return a.UserID == "user-1" && a.AccountRef == "SB-001"
		})).Return(nil)
		f.balances.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *entity.Balance) bool {
			return b.Paise == 0
		})).Return(nil)
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		view, err := f.service.Create(ctx, "user-1", "SB-001")

		require.NoError(t, err)
		assert.NotEmpty(t, view.ID)
		assert.Equal(t, "SB-001", view.AccountRef)
		assert.Equal(t, "0.00", view.Balance)
	})

	t.Run("Empty reference rejected", func(t *testing.T) {
		f := newServiceFixture(t)

		view, err := f.service.Create(ctx, "user-1", "")

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Unknown user rolls back", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.users.EXPECT().GetByID(mock.Anything, "user-x").Return(nil, errs.ErrUserNotFound)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		view, err := f.service.Create(ctx, "user-x", "SB-001")

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	acct := &entity.BankAccount{ID: "acc-1", UserID: "user-1"}

	t.Run("Deletes only at zero balance", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.accounts.EXPECT().GetByID(mock.Anything, "acc-1", "user-1").Return(acct, nil)
		f.balances.EXPECT().Get(mock.Anything, "acc-1").Return(&entity.Balance{AccountID: "acc-1", Paise: 0}, nil)
		f.accounts.EXPECT().Delete(mock.Anything, "acc-1").Return(nil)
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		assert.NoError(t, f.service.Delete(ctx, "acc-1", "user-1"))
	})

	t.Run("Non-zero balance refuses and rolls back", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.accounts.EXPECT().GetByID(mock.Anything, "acc-1", "user-1").Return(acct, nil)
		f.balances.EXPECT().Get(mock.Anything, "acc-1").Return(&entity.Balance{AccountID: "acc-1", Paise: 5000}, nil)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := f.service.Delete(ctx, "acc-1", "user-1")

		assert.ErrorIs(t, err, errs.ErrAccountNotEmpty)
		f.accounts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Another user's account reads as not found", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.accounts.EXPECT().GetByID(mock.Anything, "acc-1", "user-2").Return(nil, errs.ErrAccountNotFound)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := f.service.Delete(ctx, "acc-1", "user-2")

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestService_GetBalance(t *testing.T) {
	ctx := context.Background()

	f := newServiceFixture(t)
	updated := time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC)
	f.accounts.EXPECT().GetByID(mock.Anything, "acc-1", "user-1").Return(&entity.BankAccount{ID: "acc-1"}, nil)
	f.balances.EXPECT().Get(mock.Anything, "acc-1").Return(&entity.Balance{AccountID: "acc-1", Paise: 123450, UpdatedAt: updated}, nil)

	view, err := f.service.GetBalance(ctx, "acc-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, "1234.50", view.Balance)
	assert.Equal(t, Currency, view.Currency)
	assert.Equal(t, updated, view.LastUpdated)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	f := newServiceFixture(t)
	f.accounts.EXPECT().ListByUser(mock.Anything, "user-1").Return([]*entity.BankAccount{
		{ID: "acc-2", AccountRef: "SB-002"},
		{ID: "acc-1", AccountRef: "SB-001"},
	}, nil)
	f.balances.EXPECT().Get(mock.Anything, "acc-2").Return(&entity.Balance{AccountID: "acc-2", Paise: 500}, nil)
	f.balances.EXPECT().Get(mock.Anything, "acc-1").Return(&entity.Balance{AccountID: "acc-1", Paise: 0}, nil)
	f.ledger.EXPECT().CountByAccount(mock.Anything, "acc-2").Return(int64(3), nil)
	f.ledger.EXPECT().CountByAccount(mock.Anything, "acc-1").Return(int64(0), nil)

	views, err := f.service.List(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "5.00", views[0].Balance)
	assert.Equal(t, int64(3), views[0].TransactionCount)
	assert.Equal(t, "0.00", views[1].Balance)
}

func TestService_GetLedger(t *testing.T) {
	ctx := context.Background()

	f := newServiceFixture(t)
	f.accounts.EXPECT().GetByID(mock.Anything, "acc-1", "user-1").Return(&entity.BankAccount{ID: "acc-1"}, nil)
	f.ledger.EXPECT().ListByAccount(mock.Anything, "acc-1", mock.Anything).Return([]*entity.AccountStatementLine{
		{
			LedgerEntry: entity.LedgerEntry{ID: "le-1", TxnID: "txn-1", Type: entity.LedgerDebit, Paise: 10000},
			FromVPA:     "alice@upi",
			ToVPA:       "bob@upi",
			TxnType:     entity.TypeTransfer,
			TxnStatus:   entity.StatusCompleted,
		},
	}, int64(1), nil)

	page, err := f.service.GetLedger(ctx, "acc-1", "user-1", persistence.Page{Number: 1, Size: 20})

	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "txn-1", page.Entries[0].TransactionID)
	assert.Equal(t, entity.LedgerDebit, page.Entries[0].Type)
	assert.Equal(t, "100.00", page.Entries[0].Amount)
	assert.Equal(t, entity.StatusCompleted, page.Entries[0].Status)
	assert.Equal(t, int64(1), page.Pagination.TotalPages)
}

func TestService_Audit(t *testing.T) {
	ctx := context.Background()
	acct := &entity.BankAccount{ID: "acc-1", UserID: "user-1"}

	t.Run("Consistent account", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.accounts.EXPECT().GetByID(mock.Anything, "acc-1", "user-1").Return(acct, nil)
		f.balances.EXPECT().Get(mock.Anything, "acc-1").Return(&entity.Balance{AccountID: "acc-1", Paise: 15000}, nil)
		f.ledger.EXPECT().SumByAccount(mock.Anything, "acc-1").Return(int64(15000), nil)
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		report, err := f.service.Audit(ctx, "acc-1", "user-1")

		require.NoError(t, err)
		assert.True(t, report.Consistent)
		assert.Equal(t, "150.00", report.CachedBalance)
		assert.Equal(t, "150.00", report.LedgerBalance)
	})

	t.Run("Torn account reports both values", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.accounts.EXPECT().GetByID(mock.Anything, "acc-1", "user-1").Return(acct, nil)
		f.balances.EXPECT().Get(mock.Anything, "acc-1").Return(&entity.Balance{AccountID: "acc-1", Paise: 15000}, nil)
		f.ledger.EXPECT().SumByAccount(mock.Anything, "acc-1").Return(int64(14000), nil)
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		report, err := f.service.Audit(ctx, "acc-1", "user-1")

		require.NoError(t, err)
		assert.False(t, report.Consistent)
		assert.Equal(t, "150.00", report.CachedBalance)
		assert.Equal(t, "140.00", report.LedgerBalance)
	})
}
