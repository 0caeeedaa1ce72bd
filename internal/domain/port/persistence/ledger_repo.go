package persistence

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
)

// Page bounds a history listing
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for the page
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// LedgerRepository appends and reads the append-only ledger
type LedgerRepository interface {
	// CreateMany appends ledger entries in one statement; used for the matched
	// DEBIT/CREDIT pair of a transfer so both legs co-commit
	CreateMany(ctx context.Context, entries []*entity.LedgerEntry) error

	// Create appends a single entry (deposit credit, withdrawal debit)
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// ListByTxn returns the legs recorded for one transaction
	ListByTxn(ctx context.Context, txnID string) ([]*entity.LedgerEntry, error)

	// ListByAccount returns the account's entries newest first joined with
	// their transactions, plus the total count
	ListByAccount(ctx context.Context, accountID string, page Page) ([]*entity.AccountStatementLine, int64, error)

	// SumByAccount returns the signed sum (credits minus debits) of the account's
	// entries; used to verify the cached-balance invariant
	SumByAccount(ctx context.Context, accountID string) (int64, error)

	// CountByAccount returns the number of entries for the account
	CountByAccount(ctx context.Context, accountID string) (int64, error)
}
