package transfer

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
)

func TestParsePeriod(t *testing.T) {
	day := 24 * time.Hour

	testCases := []struct {
		period   string
		expected time.Duration
		wantErr  bool
	}{
		{period: "30d", expected: 30 * day},
		{period: "1d", expected: day},
		{period: "2w", expected: 14 * day},
		{period: "1m", expected: 30 * day},
		{period: "1y", expected: 365 * day},
		{period: "0d", wantErr: true},
		{period: "d", wantErr: true},
		{period: "30", wantErr: true},
		{period: "30h", wantErr: true},
		{period: "", wantErr: true},
		{period: "-1d", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.period, func(t *testing.T) {
			window, err := parsePeriod(tc.period)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, window)
		})
	}
}

func TestService_GetTransaction(t *testing.T) {
	ctx := context.Background()
	caller := &entity.User{ID: "user-1", Name: "Alice", VPA: "alice@upi"}
	recipient := &entity.User{ID: "user-2", Name: "Bob", VPA: "bob@upi"}

	txn := &entity.Transaction{
		ID:      "txn-1",
		Type:    entity.TypeTransfer,
		Status:  entity.StatusCompleted,
		FromVPA: "alice@upi",
		ToVPA:   "bob@upi",
		Paise:   10000,
	}
	legs := []*entity.LedgerEntry{
		{AccountID: "acc-from", TxnID: "txn-1", Type: entity.LedgerDebit, Paise: 10000},
		{AccountID: "acc-to", TxnID: "txn-1", Type: entity.LedgerCredit, Paise: 10000},
	}

	t.Run("Returns the transaction with both legs", func(t *testing.T) {
		f := newServiceFixture(t)
		f.transactions.EXPECT().GetByID(mock.Anything, "txn-1", "user-1").Return(txn, nil)
		f.users.EXPECT().GetByID(mock.Anything, "user-1").Return(caller, nil)
		f.ledger.EXPECT().ListByTxn(mock.Anything, "txn-1").Return(legs, nil)
		f.users.EXPECT().GetByVPA(mock.Anything, "bob@upi").Return(recipient, nil)

		detail, err := f.service.GetTransaction(ctx, "txn-1", "user-1")

		require.NoError(t, err)
		assert.Equal(t, "txn-1", detail.ID)
		assert.Equal(t, "outgoing", detail.Direction)
		require.NotNil(t, detail.Counterparty)
		assert.Equal(t, "Bob", detail.Counterparty.Name)
		require.Len(t, detail.LedgerEntries, 2)
		assert.Equal(t, entity.LedgerDebit, detail.LedgerEntries[0].Type)
		assert.Equal(t, "100.00", detail.LedgerEntries[0].Amount)
	})

	t.Run("Not visible to strangers", func(t *testing.T) {
		f := newServiceFixture(t)
		f.transactions.EXPECT().GetByID(mock.Anything, "txn-1", "user-3").Return(nil, errs.ErrTransactionNotFound)

		detail, err := f.service.GetTransaction(ctx, "txn-1", "user-3")

		assert.Nil(t, detail)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestService_GetTransactionStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Reason only surfaces on FAILED", func(t *testing.T) {
		f := newServiceFixture(t)
		f.transactions.EXPECT().GetByID(mock.Anything, "txn-1", "user-1").Return(&entity.Transaction{
			ID:     "txn-1",
			Status: entity.StatusCompleted,
			Reason: "lunch money",
		}, nil)

		view, err := f.service.GetTransactionStatus(ctx, "txn-1", "user-1")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, view.Status)
		assert.Empty(t, view.Reason)
	})

	t.Run("FAILED carries the failure reason", func(t *testing.T) {
		f := newServiceFixture(t)
		f.transactions.EXPECT().GetByID(mock.Anything, "txn-1", "user-1").Return(&entity.Transaction{
			ID:     "txn-1",
			Status: entity.StatusFailed,
			Reason: "insufficient balance",
		}, nil)

		view, err := f.service.GetTransactionStatus(ctx, "txn-1", "user-1")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, view.Status)
		assert.Equal(t, "insufficient balance", view.Reason)
	})
}

func TestService_ListTransactions(t *testing.T) {
	ctx := context.Background()
	caller := &entity.User{ID: "user-1", Name: "Alice", VPA: "alice@upi"}

	txns := []*entity.Transaction{
		{ID: "txn-2", Type: entity.TypeTransfer, Status: entity.StatusCompleted, FromVPA: "bob@upi", ToVPA: "alice@upi", Paise: 5000},
		{ID: "txn-1", Type: entity.TypeDeposit, Status: entity.StatusCompleted, FromVPA: entity.SystemVPA, ToVPA: "alice@upi", Paise: 10000},
	}

	t.Run("Projects direction and counterparty per row", func(t *testing.T) {
		f := newServiceFixture(t)
		f.users.EXPECT().GetByID(mock.Anything, "user-1").Return(caller, nil)
		f.transactions.EXPECT().ListForUser(mock.Anything, "user-1", persistence.TransactionFilter{}, persistence.Page{Number: 1, Size: 20}).
			Return(txns, int64(42), nil)
		f.users.EXPECT().GetByVPA(mock.Anything, "bob@upi").Return(&entity.User{Name: "Bob", VPA: "bob@upi"}, nil)

		page, err := f.service.ListTransactions(ctx, "user-1", persistence.TransactionFilter{}, persistence.Page{Number: 1, Size: 20})

		require.NoError(t, err)
		require.Len(t, page.Transactions, 2)
		assert.Equal(t, "incoming", page.Transactions[0].Direction)
		assert.Equal(t, "Bob", page.Transactions[0].Counterparty.Name)
		assert.Equal(t, "incoming", page.Transactions[1].Direction)
		assert.Equal(t, "System", page.Transactions[1].Counterparty.Name)
		assert.Equal(t, int64(42), page.Pagination.Total)
		assert.Equal(t, int64(3), page.Pagination.TotalPages)
	})

	t.Run("Defaults the page window", func(t *testing.T) {
		f := newServiceFixture(t)
		f.users.EXPECT().GetByID(mock.Anything, "user-1").Return(caller, nil)
		f.transactions.EXPECT().ListForUser(mock.Anything, "user-1", persistence.TransactionFilter{}, persistence.Page{Number: 1, Size: 20}).
			Return(nil, int64(0), nil)

		page, err := f.service.ListTransactions(ctx, "user-1", persistence.TransactionFilter{}, persistence.Page{Number: 0, Size: 500})

		require.NoError(t, err)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 20, page.Pagination.Limit)
		assert.Equal(t, int64(0), page.Pagination.TotalPages)
	})
}

func TestService_Summarize(t *testing.T) {
	ctx := context.Background()

	t.Run("Aggregates over the window", func(t *testing.T) {
		f := newServiceFixture(t)
		f.transactions.EXPECT().Summarize(mock.Anything, "user-1", mock.Anything).Return(&persistence.TransactionSummary{
			Total:          8,
			Completed:      6,
			Failed:         2,
			TotalSentPaise: 120000,
			TotalRecvPaise: 45000,
		}, nil)

		view, err := f.service.Summarize(ctx, "user-1", "7d")

		require.NoError(t, err)
		assert.Equal(t, "7d", view.Period)
		assert.Equal(t, int64(8), view.Total)
		assert.Equal(t, "75.00%", view.SuccessRate)
		assert.Equal(t, "1200.00", view.TotalSent)
		assert.Equal(t, "450.00", view.TotalReceived)
	})

	t.Run("Empty period defaults to 30d", func(t *testing.T) {
		f := newServiceFixture(t)
		f.transactions.EXPECT().Summarize(mock.Anything, "user-1", mock.Anything).Return(&persistence.TransactionSummary{}, nil)

		view, err := f.service.Summarize(ctx, "user-1", "")

		require.NoError(t, err)
		assert.Equal(t, "30d", view.Period)
		assert.Equal(t, "0.00%", view.SuccessRate)
	})

	t.Run("Garbage period rejected", func(t *testing.T) {
		f := newServiceFixture(t)

		view, err := f.service.Summarize(ctx, "user-1", "soon")

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
