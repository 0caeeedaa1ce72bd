package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"insufficient balance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"detailed insufficient balance", NewInsufficientBalanceError("acc-1", "100.00", "20.00"), CodeInsufficientBalance},
		{"invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"negative amount shares the amount code", ErrNegativeAmount, CodeInvalidAmount},
		{"invalid vpa", ErrInvalidVPA, CodeInvalidVPA},
		{"self transfer", ErrSelfTransfer, CodeSelfTransfer},
		{"key conflict", ErrKeyConflict, CodeKeyConflict},
		{"operation in progress", ErrOperationInProgress, CodeOperationInProgress},
		{"in-flight key", NewKeyConflictError("key-1", "user-1"), CodeOperationInProgress},
		{"account not found", ErrAccountNotFound, CodeAccountNotFound},
		{"recipient not found", ErrRecipientNotFound, CodeRecipientNotFound},
		{"no linked account", ErrNoLinkedAccount, CodeNoLinkedAccount},
		{"transaction not found", ErrTransactionNotFound, CodeTransactionNotFound},
		{"user not found", ErrUserNotFound, CodeUserNotFound},
		{"account not empty", ErrAccountNotEmpty, CodeAccountNotEmpty},
		{"empty batch", ErrEmptyBatch, CodeEmptyBatch},
		{"batch too large", ErrBatchTooLarge, CodeBatchTooLarge},
		{"constraint violation", ErrConstraintViolation, CodeConstraintViolation},
		{"serialization conflict", ErrSerializationConflict, CodeSerializationFailure},
		{"wrapped errors keep their code", fmt.Errorf("dispatch: %w", ErrSelfTransfer), CodeSelfTransfer},
		{"unknown errors fall back to 5000", errors.New("boom"), CodeInternalServer},
		{"internal server", ErrInternalServer, CodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("acc-1", "100.00", "20.00")

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.True(t, IsInsufficientBalanceError(err))
	assert.Contains(t, err.Error(), "acc-1")
	assert.Contains(t, err.Error(), "required 100.00")
	assert.Contains(t, err.Error(), "available 20.00")
}

func TestKeyConflictError(t *testing.T) {
	err := NewKeyConflictError("key-1", "user-1")

	assert.ErrorIs(t, err, ErrOperationInProgress)
	assert.True(t, IsKeyConflictError(err))
	assert.Contains(t, err.Error(), "key-1")

	// the bare conflict sentinel counts too
	assert.True(t, IsKeyConflictError(ErrKeyConflict))
	assert.False(t, IsKeyConflictError(ErrInvalidAmount))
}

func TestTransferErrorUnwraps(t *testing.T) {
	err := NewTransferError("key-1", "alice@upi", "bob@upi", "100.00", "debit rejected", ErrInsufficientBalance)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, CodeInsufficientBalance, ErrorCode(err))
	assert.Contains(t, err.Error(), "alice@upi -> bob@upi")
}

func TestPredicates(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		for _, err := range []error{ErrAccountNotFound, ErrRecipientNotFound, ErrTransactionNotFound, ErrUserNotFound} {
			assert.True(t, IsNotFoundError(err), err.Error())
		}
		assert.False(t, IsNotFoundError(ErrNoLinkedAccount))
	})

	t.Run("Validation", func(t *testing.T) {
		for _, err := range []error{
			ErrInvalidAmount, ErrNegativeAmount, ErrInvalidVPA,
			ErrMissingIdempotencyKey, ErrEmptyBatch, ErrBatchTooLarge, ErrInvalidRequest,
		} {
			assert.True(t, IsValidationError(err), err.Error())
		}
		assert.False(t, IsValidationError(ErrSelfTransfer))
	})

	t.Run("Conflict", func(t *testing.T) {
		for _, err := range []error{ErrInsufficientBalance, ErrSelfTransfer, ErrKeyConflict, ErrOperationInProgress} {
			assert.True(t, IsConflictError(err), err.Error())
		}
		assert.False(t, IsConflictError(ErrAccountNotFound))
	})

	t.Run("Transient", func(t *testing.T) {
		assert.True(t, IsTransientError(ErrSerializationConflict))
		assert.True(t, IsTransientError(fmt.Errorf("commit: %w", ErrSerializationConflict)))
		assert.False(t, IsTransientError(ErrDatabaseConnection))
	})
}
