package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremocks "github.com/adhishcp/upi-app/mocks/port/core"
)

func TestLedgerEntrySigned(t *testing.T) {
	credit := &LedgerEntry{Type: LedgerCredit, Paise: 5000}
	debit := &LedgerEntry{Type: LedgerDebit, Paise: 5000}

	assert.Equal(t, int64(5000), credit.Signed())
	assert.Equal(t, int64(-5000), debit.Signed())
}

func TestNewLedgerPair(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Times(2)

	legs := NewLedgerPair("acc-from", "acc-to", "txn-1", 10000, mockTime)
	require.Len(t, legs, 2)

	debit, credit := legs[0], legs[1]
	assert.Equal(t, "acc-from", debit.AccountID)
	assert.Equal(t, LedgerDebit, debit.Type)
	assert.Equal(t, "acc-to", credit.AccountID)
	assert.Equal(t, LedgerCredit, credit.Type)
	assert.Equal(t, "txn-1", debit.TxnID)
	assert.Equal(t, "txn-1", credit.TxnID)
	assert.NotEqual(t, debit.ID, credit.ID)

	// matched legs must sum to zero across the two accounts
	assert.Equal(t, int64(0), debit.Signed()+credit.Signed())
}

func TestOutcomeRoundTrip(t *testing.T) {
	outcome := Outcome{
		Success:       true,
		TransactionID: "txn-1",
		Amount:        "100.00",
		Status:        StatusCompleted,
		FromVPA:       "alice@upi",
		ToVPA:         "bob@upi",
	}

	parsed, err := ParseOutcome(outcome.Marshal())
	require.NoError(t, err)
	assert.Equal(t, outcome, parsed)
}

func TestIdempotencyRecordHasResponse(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	record := NewIdempotencyRecord("key-1", "user-1", []byte(`{"operation":"deposit"}`), mockTime)
	assert.False(t, record.HasResponse())

	record.Response = Outcome{Success: true, TransactionID: "txn-1"}.Marshal()
	assert.True(t, record.HasResponse())
}
