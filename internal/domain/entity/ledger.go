package entity

import (
	"time"

	"github.com/google/uuid"

	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
)

// LedgerType distinguishes the two legs of double-entry bookkeeping
type LedgerType string

// Ledger entry types
const (
	LedgerCredit LedgerType = "CREDIT"
	LedgerDebit  LedgerType = "DEBIT"
)

// LedgerEntry is one append-only leg of a value movement. Entries are never
// updated or deleted; the cached balance is derived from their signed sum.
type LedgerEntry struct {
	ID        string
	AccountID string
	TxnID     string
	Type      LedgerType
	Paise     int64
	CreatedAt time.Time
}

// Signed returns the entry amount with a credit-positive sign
func (e *LedgerEntry) Signed() int64 {
	if e.Type == LedgerDebit {
		return -e.Paise
	}
	return e.Paise
}

// AccountStatementLine is one ledger leg joined with its transaction,
// the unit of account history reads
type AccountStatementLine struct {
	LedgerEntry
	FromVPA   string
	ToVPA     string
	TxnType   TransactionType
	TxnStatus TransactionStatus
}

// NewLedgerEntry creates a single ledger leg for a transaction
func NewLedgerEntry(accountID, txnID string, entryType LedgerType, paise int64, timeProvider coreport.TimeProvider) *LedgerEntry {
	return &LedgerEntry{
		ID:        uuid.NewString(),
		AccountID: accountID,
		TxnID:     txnID,
		Type:      entryType,
		Paise:     paise,
		CreatedAt: timeProvider.Now(),
	}
}

// NewLedgerPair creates the matched DEBIT/CREDIT legs of a transfer. Both legs
// carry the same amount so they sum to zero across the two accounts.
func NewLedgerPair(fromAccountID, toAccountID, txnID string, paise int64, timeProvider coreport.TimeProvider) []*LedgerEntry {
	return []*LedgerEntry{
		NewLedgerEntry(fromAccountID, txnID, LedgerDebit, paise, timeProvider),
		NewLedgerEntry(toAccountID, txnID, LedgerCredit, paise, timeProvider),
	}
}
