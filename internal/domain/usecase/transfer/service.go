package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
	"github.com/adhishcp/upi-app/internal/domain/port/usecase"
)

// Service orchestrates all money movement. Every mutating operation runs
// inside one serializable scope where the idempotency record, the transaction
// row, the ledger legs and the balance deltas commit or roll back together.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *Validator
	coordinator  *Coordinator
	enforcer     *Enforcer
}

// NewTransferService creates the transfer use case with its collaborators
func NewTransferService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewValidator(),
		coordinator:  NewCoordinator(uow, timeProvider, logger),
		enforcer:     NewEnforcer(uow, logger),
	}
}

var _ usecase.TransferUseCase = (*Service)(nil)

// requestSnapshot is the request payload captured on the idempotency record
type requestSnapshot struct {
	Operation     string `json:"operation"`
	AccountID     string `json:"accountId,omitempty"`
	ToVPA         string `json:"toVpa,omitempty"`
	Amount        string `json:"amount"`
	FromAccountID string `json:"fromAccountId,omitempty"`
}

// Deposit credits an account owned by the caller. There is no balance
// precondition, the single CREDIT leg and the balance delta co-commit with
// the transaction row.
func (s *Service) Deposit(ctx context.Context, accountID, amount, idempotencyKey, userID string) (*entity.Outcome, error) {
	if err := s.validator.ValidateKey(idempotencyKey); err != nil {
		return nil, err
	}
	paise, err := s.validator.ValidateAmount(amount)
	if err != nil {
		return nil, err
	}

	return s.runSerializable(ctx, "deposit", func(scopeCtx context.Context) (*entity.Outcome, error) {
		begin, err := s.coordinator.Begin(scopeCtx, idempotencyKey, userID, requestSnapshot{
			Operation: "deposit",
			AccountID: accountID,
			Amount:    amount,
		})
		if err != nil {
			return nil, err
		}
		switch begin.State {
		case StateDuplicate:
			return &begin.Outcome, nil
		case StateInProgress:
			return nil, errs.NewKeyConflictError(idempotencyKey, userID)
		}

		owner, err := s.uow.GetUserRepository(scopeCtx).GetByID(scopeCtx, userID)
		if err != nil {
			return nil, err
		}
		account, err := s.uow.GetAccountRepository(scopeCtx).GetByID(scopeCtx, accountID, userID)
		if err != nil {
			return nil, err
		}

		txn := entity.NewTransaction(
			idempotencyKey, entity.TypeDeposit,
			entity.SystemVPA, owner.VPA,
			"", account.ID,
			paise, "", s.timeProvider,
		)
		if err := s.uow.GetTransactionRepository(scopeCtx).Create(scopeCtx, txn); err != nil {
			return nil, err
		}

		entry := entity.NewLedgerEntry(account.ID, txn.ID, entity.LedgerCredit, paise, s.timeProvider)
		if err := s.uow.GetLedgerRepository(scopeCtx).Create(scopeCtx, entry); err != nil {
			return s.failOperation(scopeCtx, idempotencyKey, txn, err)
		}
		if err := s.enforcer.ApplyDelta(scopeCtx, account.ID, paise); err != nil {
			return s.failOperation(scopeCtx, idempotencyKey, txn, err)
		}

		return s.completeOperation(scopeCtx, idempotencyKey, txn)
	})
}

// Withdraw debits an account owned by the caller after the balance
// precondition passes. An insufficient balance is a durable denial, the
// FAILED transaction and the failure payload commit so replays of the key
// return the identical refusal.
func (s *Service) Withdraw(ctx context.Context, accountID, amount, idempotencyKey, userID string) (*entity.Outcome, error) {
	if err := s.validator.ValidateKey(idempotencyKey); err != nil {
		return nil, err
	}
	paise, err := s.validator.ValidateAmount(amount)
	if err != nil {
		return nil, err
	}

	return s.runSerializable(ctx, "withdraw", func(scopeCtx context.Context) (*entity.Outcome, error) {
		begin, err := s.coordinator.Begin(scopeCtx, idempotencyKey, userID, requestSnapshot{
			Operation: "withdraw",
			AccountID: accountID,
			Amount:    amount,
		})
		if err != nil {
			return nil, err
		}
		switch begin.State {
		case StateDuplicate:
			return &begin.Outcome, nil
		case StateInProgress:
			return nil, errs.NewKeyConflictError(idempotencyKey, userID)
		}

		owner, err := s.uow.GetUserRepository(scopeCtx).GetByID(scopeCtx, userID)
		if err != nil {
			return nil, err
		}
		account, err := s.uow.GetAccountRepository(scopeCtx).GetByID(scopeCtx, accountID, userID)
		if err != nil {
			return nil, err
		}

		txn := entity.NewTransaction(
			idempotencyKey, entity.TypeWithdrawal,
			owner.VPA, entity.SystemVPA,
			account.ID, "",
			paise, "", s.timeProvider,
		)
		if err := s.uow.GetTransactionRepository(scopeCtx).Create(scopeCtx, txn); err != nil {
			return nil, err
		}

		if err := s.enforcer.AssertSufficient(scopeCtx, account.ID, paise); err != nil {
			return s.failOperation(scopeCtx, idempotencyKey, txn, err)
		}

		entry := entity.NewLedgerEntry(account.ID, txn.ID, entity.LedgerDebit, paise, s.timeProvider)
		if err := s.uow.GetLedgerRepository(scopeCtx).Create(scopeCtx, entry); err != nil {
			return s.failOperation(scopeCtx, idempotencyKey, txn, err)
		}
		if err := s.enforcer.ApplyDelta(scopeCtx, account.ID, -paise); err != nil {
			return s.failOperation(scopeCtx, idempotencyKey, txn, err)
		}

		return s.completeOperation(scopeCtx, idempotencyKey, txn)
	})
}

// Transfer moves money between two users as matched DEBIT and CREDIT legs.
// Unresolvable parties roll the scope back leaving no trace, while
// self-transfer and insufficient balance persist a FAILED transaction and a
// durable failure payload under the key.
func (s *Service) Transfer(ctx context.Context, req usecase.TransferRequest, idempotencyKey, userID string) (*entity.Outcome, error) {
	if err := s.validator.ValidateKey(idempotencyKey); err != nil {
		return nil, err
	}
	paise, toVPA, err := s.validator.ValidateTransfer(req)
	if err != nil {
		return nil, err
	}

	return s.runSerializable(ctx, "transfer", func(scopeCtx context.Context) (*entity.Outcome, error) {
		begin, err := s.coordinator.Begin(scopeCtx, idempotencyKey, userID, requestSnapshot{
			Operation:     "transfer",
			ToVPA:         toVPA,
			Amount:        req.Amount,
			FromAccountID: req.FromAccountID,
		})
		if err != nil {
			return nil, err
		}
		switch begin.State {
		case StateDuplicate:
			return &begin.Outcome, nil
		case StateInProgress:
			return nil, errs.NewKeyConflictError(idempotencyKey, userID)
		}

		caller, err := s.uow.GetUserRepository(scopeCtx).GetByID(scopeCtx, userID)
		if err != nil {
			return nil, err
		}

		fromAccount, err := s.resolveSourceAccount(scopeCtx, req.FromAccountID, userID)
		if err != nil {
			return nil, err
		}

		if toVPA == caller.VPA {
			txn := entity.NewTransaction(
				idempotencyKey, entity.TypeTransfer,
				caller.VPA, toVPA,
				fromAccount.ID, "",
				paise, req.Reason, s.timeProvider,
			)
			if err := s.uow.GetTransactionRepository(scopeCtx).Create(scopeCtx, txn); err != nil {
				return nil, err
			}
			return s.failOperation(scopeCtx, idempotencyKey, txn, errs.ErrSelfTransfer)
		}

		recipient, err := s.uow.GetUserRepository(scopeCtx).GetByVPA(scopeCtx, toVPA)
		if err != nil {
			return nil, err
		}
		toAccount, err := s.uow.GetAccountRepository(scopeCtx).GetFirstByUser(scopeCtx, recipient.ID)
		if err != nil {
			return nil, err
		}

		txn := entity.NewTransaction(
			idempotencyKey, entity.TypeTransfer,
			caller.VPA, toVPA,
			fromAccount.ID, toAccount.ID,
			paise, req.Reason, s.timeProvider,
		)
		if err := s.uow.GetTransactionRepository(scopeCtx).Create(scopeCtx, txn); err != nil {
			return nil, err
		}

		if err := s.enforcer.AssertSufficient(scopeCtx, fromAccount.ID, paise); err != nil {
			return s.failOperation(scopeCtx, idempotencyKey, txn, err)
		}

		legs := entity.NewLedgerPair(fromAccount.ID, toAccount.ID, txn.ID, paise, s.timeProvider)
		if err := s.uow.GetLedgerRepository(scopeCtx).CreateMany(scopeCtx, legs); err != nil {
			return s.failOperation(scopeCtx, idempotencyKey, txn, err)
		}
		if err := s.enforcer.ApplyDelta(scopeCtx, fromAccount.ID, -paise); err != nil {
			return s.failOperation(scopeCtx, idempotencyKey, txn, err)
		}
		if err := s.enforcer.ApplyDelta(scopeCtx, toAccount.ID, paise); err != nil {
			return s.failOperation(scopeCtx, idempotencyKey, txn, err)
		}

		return s.completeOperation(scopeCtx, idempotencyKey, txn)
	})
}

// BulkTransfer executes up to MaxBulkTransfers transfers sequentially, each
// under a derived member key so individual members stay independently
// idempotent and one failure never poisons the rest of the batch.
func (s *Service) BulkTransfer(ctx context.Context, req usecase.BulkTransferRequest, idempotencyKey, userID string) (*usecase.BulkTransferResult, error) {
	if err := s.validator.ValidateKey(idempotencyKey); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateBulk(req); err != nil {
		return nil, err
	}

	result := &usecase.BulkTransferResult{
		BatchID: "batch_" + idempotencyKey,
		Total:   len(req.Transfers),
		Results: make([]usecase.BulkMemberResult, 0, len(req.Transfers)),
	}

	for i, member := range req.Transfers {
		memberKey := entity.BulkMemberKey(idempotencyKey, i)
		outcome, err := s.Transfer(ctx, member, memberKey, userID)

		memberResult := usecase.BulkMemberResult{Index: i, Outcome: outcome}
		switch {
		case err == nil && outcome != nil && outcome.Success:
			memberResult.Status = "success"
			result.Successful++
		default:
			memberResult.Status = "failed"
			if err != nil {
				memberResult.Error = err.Error()
			} else if outcome != nil {
				memberResult.Error = outcome.Error
			}
			result.Failed++
		}
		result.Results = append(result.Results, memberResult)
	}

	s.logger.Info("Bulk transfer finished", map[string]any{
		"batch_id":   result.BatchID,
		"total":      result.Total,
		"successful": result.Successful,
		"failed":     result.Failed,
	})

	return result, nil
}

// Retry re-executes a FAILED transfer owned by the caller under a key derived
// deterministically from the transaction id. Retrying the same failed
// transaction twice therefore replays rather than double-spends.
func (s *Service) Retry(ctx context.Context, txnID, userID string) (*entity.Outcome, error) {
	txn, err := s.uow.GetTransactionRepository(ctx).GetFailedForRetry(ctx, txnID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Retrying failed transaction", map[string]any{
		"transaction_id": txn.ID,
		"retry_key":      txn.RetryKey(),
	})

	return s.Transfer(ctx, usecase.TransferRequest{
		ToVPA:         txn.ToVPA,
		Amount:        txn.Amount(),
		Reason:        fmt.Sprintf("Retry of transaction %s", txn.ID),
		FromAccountID: txn.FromAccountID,
	}, txn.RetryKey(), userID)
}

// completeOperation transitions the PENDING row to COMPLETED and captures the
// success payload on the idempotency record within the same scope
func (s *Service) completeOperation(ctx context.Context, key string, txn *entity.Transaction) (*entity.Outcome, error) {
	txn.MarkCompleted(s.timeProvider)
	if err := s.uow.GetTransactionRepository(ctx).UpdateStatus(ctx, txn); err != nil {
		return nil, err
	}

	outcome := successOutcome(txn)
	if err := s.coordinator.Complete(ctx, key, outcome); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction completed", map[string]any{
		"transaction_id":  txn.ID,
		"idempotency_key": key,
		"type":            string(txn.Type),
		"amount":          txn.Amount(),
	})

	return &outcome, nil
}

// resolveSourceAccount picks the explicit account when one was named,
// verifying ownership, and falls back to the caller's first linked account
func (s *Service) resolveSourceAccount(ctx context.Context, fromAccountID, userID string) (*entity.BankAccount, error) {
	accounts := s.uow.GetAccountRepository(ctx)
	if fromAccountID != "" {
		return accounts.GetByID(ctx, fromAccountID, userID)
	}
	account, err := accounts.GetFirstByUser(ctx, userID)
	if errors.Is(err, errs.ErrNoLinkedAccount) {
		return nil, errs.ErrAccountNotFound
	}
	return account, err
}
