package transfer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
)

// BeginState classifies an idempotency key at intake
type BeginState int

// Begin outcomes
const (
	// StateFresh means the key was unseen; a record now exists and the
	// operation must execute
	StateFresh BeginState = iota
	// StateDuplicate means a terminal outcome was already captured and must be
	// returned verbatim without re-executing side effects
	StateDuplicate
	// StateInProgress means a concurrent or previously interrupted execution
	// holds the key; surfaced as a conflict, never retried automatically
	StateInProgress
)

// BeginResult carries the classification and, for duplicates, the captured outcome
type BeginResult struct {
	State   BeginState
	Outcome entity.Outcome
}

// Coordinator maps a client-supplied key to at-most-one execution and its
// durable outcome. It is the sole writer of idempotency records.
type Coordinator struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCoordinator creates a new idempotency Coordinator
func NewCoordinator(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Coordinator {
	return &Coordinator{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Begin looks up the key inside the active scope. When absent it inserts a
// record holding the request snapshot and reports Fresh; exactly one row per
// key ever exists.
func (c *Coordinator) Begin(ctx context.Context, key, userID string, requestSnapshot any) (*BeginResult, error) {
	repo := c.uow.GetIdempotencyRepository(ctx)

	record, err := repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("idempotency lookup failed: %w", err)
	}

	if record != nil {
		if record.HasResponse() {
			outcome, err := entity.ParseOutcome(record.Response)
			if err != nil {
				return nil, fmt.Errorf("captured response for key %s is unreadable: %w", key, err)
			}
			c.logger.Debug("Idempotency key replayed", map[string]any{
				"idempotency_key": key,
				"transaction_id":  outcome.TransactionID,
			})
			return &BeginResult{State: StateDuplicate, Outcome: outcome}, nil
		}

		c.logger.Warn("Idempotency key already processing", map[string]any{
			"idempotency_key": key,
			"user_id":         record.UserID,
		})
		return &BeginResult{State: StateInProgress}, nil
	}

	snapshot, err := json.Marshal(requestSnapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot request: %w", err)
	}

	if err := repo.Create(ctx, entity.NewIdempotencyRecord(key, userID, snapshot, c.timeProvider)); err != nil {
		// A concurrent scope inserted the key between lookup and insert;
		// the store's unique constraint makes this an in-progress conflict
		if errs.IsKeyConflictError(err) {
			return &BeginResult{State: StateInProgress}, nil
		}
		return nil, err
	}

	return &BeginResult{State: StateFresh}, nil
}

// Complete writes the outcome onto the record in the same scope as the
// transaction's terminal-state write. The response field is populated exactly
// once; a crash between ledger commit and capture is impossible because one
// atomic commit covers both.
func (c *Coordinator) Complete(ctx context.Context, key string, outcome entity.Outcome) error {
	repo := c.uow.GetIdempotencyRepository(ctx)
	if err := repo.SetResponse(ctx, key, outcome.Marshal()); err != nil {
		return fmt.Errorf("failed to capture outcome for key %s: %w", key, err)
	}
	return nil
}
