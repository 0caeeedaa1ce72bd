package persistence

import (
	"context"
)

// UnitOfWork coordinates repository operations inside one serializable
// database scope. Every mutating operation of the transfer engine runs
// between Begin and Commit so a reader never observes a Transaction without
// its ledger entries, or vice versa.
type UnitOfWork interface {
	// Begin starts a new SERIALIZABLE transaction and returns a context
	// carrying it; all repositories obtained with that context are bound
	// to the scope
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current scope
	GetUserRepository(ctx context.Context) UserRepository

	// GetAccountRepository returns an account repository bound to the current scope
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetBalanceRepository returns a balance repository bound to the current scope
	GetBalanceRepository(ctx context.Context) BalanceRepository

	// GetLedgerRepository returns a ledger repository bound to the current scope
	GetLedgerRepository(ctx context.Context) LedgerRepository

	// GetTransactionRepository returns a transaction repository bound to the current scope
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetIdempotencyRepository returns an idempotency repository bound to the current scope
	GetIdempotencyRepository(ctx context.Context) IdempotencyRepository
}
