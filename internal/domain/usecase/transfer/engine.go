package transfer

import (
	"context"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
)

// maxSerializationRetries bounds how many times a serialization conflict is
// retried with a fresh scope before it surfaces as a conflict
const maxSerializationRetries = 1

// scopeFn executes one operation inside a serializable scope. A non-nil
// outcome means a durable result was persisted and the scope must commit even
// when err carries a domain failure; a nil outcome with an error rolls the
// scope back, leaving no observable effect and the key safely retryable.
type scopeFn func(scopeCtx context.Context) (*entity.Outcome, error)

// runSerializable drives fn inside one serializable database scope, retrying
// once on a serialization conflict. The conflict is never surfaced to the
// idempotency record as a terminal failure unless the retry is also lost.
func (s *Service) runSerializable(ctx context.Context, operation string, fn scopeFn) (*entity.Outcome, error) {
	var lastErr error

	for attempt := 0; attempt <= maxSerializationRetries; attempt++ {
		scopeCtx, err := s.uow.Begin(ctx)
		if err != nil {
			return nil, err
		}

		outcome, opErr := fn(scopeCtx)

		if outcome != nil {
			if commitErr := s.uow.Commit(scopeCtx); commitErr != nil {
				if errs.IsTransientError(commitErr) && attempt < maxSerializationRetries {
					s.logger.Warn("Serialization conflict at commit, retrying with fresh scope", map[string]any{
						"operation": operation,
						"attempt":   attempt + 1,
					})
					lastErr = commitErr
					continue
				}
				return nil, commitErr
			}
			return outcome, opErr
		}

		if rbErr := s.uow.Rollback(scopeCtx); rbErr != nil {
			s.logger.Error("Failed to roll back scope", map[string]any{
				"operation": operation,
				"error":     rbErr.Error(),
			})
		}

		if opErr == nil {
			// fn must produce an outcome or an error
			return nil, errs.ErrInternalServer
		}

		if errs.IsTransientError(opErr) && attempt < maxSerializationRetries {
			s.logger.Warn("Serialization conflict, retrying with fresh scope", map[string]any{
				"operation": operation,
				"attempt":   attempt + 1,
				"error":     opErr.Error(),
			})
			lastErr = opErr
			continue
		}

		return nil, opErr
	}

	return nil, lastErr
}

// successOutcome renders the durable payload for a completed transaction
func successOutcome(txn *entity.Transaction) entity.Outcome {
	return entity.Outcome{
		Success:       true,
		TransactionID: txn.ID,
		Amount:        txn.Amount(),
		Status:        txn.Status,
		FromVPA:       txn.FromVPA,
		ToVPA:         txn.ToVPA,
	}
}

// failureOutcome renders the durable payload for a failed transaction so
// replays of the same key return the identical denial
func failureOutcome(txn *entity.Transaction, cause error) entity.Outcome {
	return entity.Outcome{
		Success:       false,
		TransactionID: txn.ID,
		Amount:        txn.Amount(),
		Status:        txn.Status,
		FromVPA:       txn.FromVPA,
		ToVPA:         txn.ToVPA,
		Error:         cause.Error(),
		ErrorCode:     errs.ErrorCode(cause),
	}
}

// failOperation funnels a domain error raised after the PENDING row exists
// into the FAILED transition and completes the idempotency record with the
// failure payload. Transient and connection errors pass through untouched so
// the scope rolls back and the key stays retryable.
func (s *Service) failOperation(ctx context.Context, key string, txn *entity.Transaction, cause error) (*entity.Outcome, error) {
	if errs.IsTransientError(cause) || errs.ErrorCode(cause) == errs.CodeInternalServer {
		return nil, cause
	}

	txn.MarkFailed(cause.Error(), s.timeProvider)
	if err := s.uow.GetTransactionRepository(ctx).UpdateStatus(ctx, txn); err != nil {
		return nil, err
	}

	outcome := failureOutcome(txn, cause)
	if err := s.coordinator.Complete(ctx, key, outcome); err != nil {
		return nil, err
	}

	s.logger.Warn("Operation failed with persisted outcome", map[string]any{
		"transaction_id":  txn.ID,
		"idempotency_key": key,
		"reason":          cause.Error(),
	})

	return &outcome, cause
}
