package transfer

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
)

// Enforcer validates and maintains the cached-balance invariant: for every
// account, the cached balance equals the signed sum of its ledger entries at
// all committed states. Reads and writes both happen inside the caller's
// serializable scope.
type Enforcer struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewEnforcer creates a new balance Enforcer
func NewEnforcer(uow persistence.UnitOfWork, logger coreport.Logger) *Enforcer {
	return &Enforcer{uow: uow, logger: logger}
}

// AssertSufficient fails with a detailed insufficient-balance error when the
// cached balance cannot cover a debit of the given paise. Integer comparison
// only; money never touches floating point.
func (e *Enforcer) AssertSufficient(ctx context.Context, accountID string, paise int64) error {
	balance, err := e.uow.GetBalanceRepository(ctx).Get(ctx, accountID)
	if err != nil {
		return err
	}

	if !balance.CanCover(paise) {
		e.logger.Warn("Insufficient balance for debit", map[string]any{
			"account_id":      accountID,
			"amount":          entity.FormatPaise(paise),
			"current_balance": balance.Formatted(),
		})
		return errs.NewInsufficientBalanceError(accountID, entity.FormatPaise(paise), balance.Formatted())
	}

	return nil
}

// ApplyDelta increments or decrements the cached balance, creating the row
// seeded with the delta when absent (the first credit to a newly linked
// account). Must run in the same scope as the ledger write it reflects.
func (e *Enforcer) ApplyDelta(ctx context.Context, accountID string, deltaPaise int64) error {
	return e.uow.GetBalanceRepository(ctx).ApplyDelta(ctx, accountID, deltaPaise)
}
