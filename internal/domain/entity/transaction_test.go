package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremocks "github.com/adhishcp/upi-app/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	txn := NewTransaction(
		"key-1", TypeTransfer,
		"alice@upi", "bob@upi",
		"acc-from", "acc-to",
		10000, "lunch", mockTime,
	)

	require.NotEmpty(t, txn.ID)
	assert.Equal(t, "key-1", txn.IdempotencyKey)
	assert.Equal(t, TypeTransfer, txn.Type)
	assert.Equal(t, "alice@upi", txn.FromVPA)
	assert.Equal(t, "bob@upi", txn.ToVPA)
	assert.Equal(t, "acc-from", txn.FromAccountID)
	assert.Equal(t, "acc-to", txn.ToAccountID)
	assert.Equal(t, int64(10000), txn.Paise)
	assert.Equal(t, StatusPending, txn.Status)
	assert.Equal(t, "lunch", txn.Reason)
	assert.Equal(t, fixedTime, txn.CreatedAt)
	assert.Equal(t, fixedTime, txn.UpdatedAt)
	assert.False(t, txn.IsTerminal())
}

func TestTransactionStateMachine(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	completedAt := createdAt.Add(time.Second)

	newPending := func(t *testing.T) (*Transaction, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(createdAt).Once()
		txn := NewTransaction("key-1", TypeDeposit, SystemVPA, "alice@upi", "", "acc-1", 5000, "", mockTime)
		return txn, mockTime
	}

	t.Run("Pending to completed", func(t *testing.T) {
		txn, mockTime := newPending(t)
		mockTime.EXPECT().Now().Return(completedAt).Once()

		assert.True(t, txn.MarkCompleted(mockTime))
		assert.Equal(t, StatusCompleted, txn.Status)
		assert.Equal(t, completedAt, txn.UpdatedAt)
		assert.True(t, txn.IsTerminal())
	})

	t.Run("Pending to failed records reason", func(t *testing.T) {
		txn, mockTime := newPending(t)
		mockTime.EXPECT().Now().Return(completedAt).Once()

		assert.True(t, txn.MarkFailed("insufficient balance", mockTime))
		assert.Equal(t, StatusFailed, txn.Status)
		assert.Equal(t, "insufficient balance", txn.Reason)
		assert.True(t, txn.IsTerminal())
	})

	t.Run("Completed is never left", func(t *testing.T) {
		txn, mockTime := newPending(t)
		mockTime.EXPECT().Now().Return(completedAt).Once()
		require.True(t, txn.MarkCompleted(mockTime))

		assert.False(t, txn.MarkFailed("too late", mockTime))
		assert.Equal(t, StatusCompleted, txn.Status)
		assert.Empty(t, txn.Reason)
		assert.False(t, txn.MarkCompleted(mockTime))
	})

	t.Run("Failed is never left", func(t *testing.T) {
		txn, mockTime := newPending(t)
		mockTime.EXPECT().Now().Return(completedAt).Once()
		require.True(t, txn.MarkFailed("denied", mockTime))

		assert.False(t, txn.MarkCompleted(mockTime))
		assert.Equal(t, StatusFailed, txn.Status)
		assert.Equal(t, "denied", txn.Reason)
	})
}

func TestTransactionAmount(t *testing.T) {
	txn := &Transaction{Paise: 123456}
	assert.Equal(t, "1234.56", txn.Amount())
}

func TestRetryKey(t *testing.T) {
	txn := &Transaction{ID: "txn-42"}
	assert.Equal(t, "retry_txn-42", txn.RetryKey())
	// deterministic: retrying the same transaction always derives the same key
	assert.Equal(t, txn.RetryKey(), txn.RetryKey())
}

func TestBulkMemberKey(t *testing.T) {
	assert.Equal(t, "batch-key_0", BulkMemberKey("batch-key", 0))
	assert.Equal(t, "batch-key_7", BulkMemberKey("batch-key", 7))
	assert.NotEqual(t, BulkMemberKey("batch-key", 1), BulkMemberKey("batch-key", 2))
}
