package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeSelfTransfer        = 4003
	CodeKeyConflict         = 4004
	CodeConstraintViolation = 4005
	CodeInvalidVPA          = 4006
	CodeEmptyBatch          = 4007
	CodeBatchTooLarge       = 4008
	CodeAccountNotFound     = 4040
	CodeRecipientNotFound   = 4041
	CodeTransactionNotFound = 4042
	CodeUserNotFound        = 4043
	CodeNoLinkedAccount     = 4044
	CodeOperationInProgress = 4230
	CodeAccountNotEmpty     = 4231

	// 5xxx - Server errors
	CodeInternalServer       = 5000
	CodeSerializationFailure = 5001
)

// Base error types
var (
	// ErrInsufficientBalance is returned when an account cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when the amount is not a valid positive decimal
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when the amount is zero or negative
	ErrNegativeAmount = errors.New("amount must be greater than 0")

	// ErrInvalidVPA is returned when a VPA does not match the expected handle format
	ErrInvalidVPA = errors.New("invalid vpa format")

	// ErrSelfTransfer is returned when the destination VPA belongs to the caller
	ErrSelfTransfer = errors.New("cannot transfer to yourself")

	// ErrMissingIdempotencyKey is returned when a mutating request carries no key
	ErrMissingIdempotencyKey = errors.New("idempotency key is required")

	// ErrKeyConflict is returned when an idempotency key was already accepted
	// for a different execution that has not produced a reusable response
	ErrKeyConflict = errors.New("idempotency key conflict")

	// ErrOperationInProgress is returned when an idempotency key has a pending
	// execution whose outcome has not been captured yet
	ErrOperationInProgress = errors.New("operation already processing")

	// ErrAccountNotFound is returned when the referenced account does not exist
	// or does not belong to the caller
	ErrAccountNotFound = errors.New("account not found")

	// ErrRecipientNotFound is returned when the destination VPA resolves to no user
	ErrRecipientNotFound = errors.New("recipient vpa not found")

	// ErrNoLinkedAccount is returned when the recipient has no account to credit
	ErrNoLinkedAccount = errors.New("recipient has no linked accounts")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountNotEmpty is returned when deleting an account that still holds funds
	ErrAccountNotEmpty = errors.New("account balance must be zero before deletion")

	// ErrEmptyBatch is returned when a bulk transfer carries no members
	ErrEmptyBatch = errors.New("no transfers provided")

	// ErrBatchTooLarge is returned when a bulk transfer exceeds the member limit
	ErrBatchTooLarge = errors.New("maximum 100 transfers allowed per batch")

	// ErrSerializationConflict is returned when the store aborts a serializable
	// scope due to a concurrent conflicting scope; eligible for one retry
	ErrSerializationConflict = errors.New("serialization conflict")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when the store is unreachable
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidVPA):
		return CodeInvalidVPA
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrKeyConflict):
		return CodeKeyConflict
	case errors.Is(err, ErrOperationInProgress):
		return CodeOperationInProgress
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrRecipientNotFound):
		return CodeRecipientNotFound
	case errors.Is(err, ErrNoLinkedAccount):
		return CodeNoLinkedAccount
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrAccountNotEmpty):
		return CodeAccountNotEmpty
	case errors.Is(err, ErrEmptyBatch):
		return CodeEmptyBatch
	case errors.Is(err, ErrBatchTooLarge):
		return CodeBatchTooLarge
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrSerializationConflict):
		return CodeSerializationFailure
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	AccountID   string
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on account %s: required %s, available %s",
		e.AccountID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"account_id":      e.AccountID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(accountID, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		AccountID:   accountID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// TransferError represents an error raised while driving a money movement
type TransferError struct {
	IdempotencyKey string
	FromVPA        string
	ToVPA          string
	Amount         string
	Reason         string
	Err            error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer failed for key %s (%s -> %s, amount: %s): %s - %v",
		e.IdempotencyKey, e.FromVPA, e.ToVPA, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "transfer_error",
		"idempotency_key": e.IdempotencyKey,
		"from_vpa":        e.FromVPA,
		"to_vpa":          e.ToVPA,
		"amount":          e.Amount,
		"reason":          e.Reason,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// NewTransferError creates a detailed transfer error
func NewTransferError(key, fromVPA, toVPA, amount, reason string, err error) error {
	return &TransferError{
		IdempotencyKey: key,
		FromVPA:        fromVPA,
		ToVPA:          toVPA,
		Amount:         amount,
		Reason:         reason,
		Err:            err,
	}
}

// KeyConflictError reports an idempotency key whose execution is still in flight
type KeyConflictError struct {
	Key    string
	UserID string
}

// Error implements the error interface
func (e *KeyConflictError) Error() string {
	return fmt.Sprintf("operation for idempotency key %s is already processing (user %s)",
		e.Key, e.UserID)
}

// Is checks if the target error is an ErrOperationInProgress
func (e *KeyConflictError) Is(target error) bool {
	return target == ErrOperationInProgress
}

// LogFields returns a map of fields for structured logging
func (e *KeyConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "key_conflict",
		"idempotency_key": e.Key,
		"user_id":         e.UserID,
		"error_code":      CodeOperationInProgress,
	}
}

// NewKeyConflictError creates a new in-progress key conflict error
func NewKeyConflictError(key, userID string) error {
	return &KeyConflictError{Key: key, UserID: userID}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsKeyConflictError checks if the error is an idempotency key conflict
func IsKeyConflictError(err error) bool {
	return errors.Is(err, ErrKeyConflict) || errors.Is(err, ErrOperationInProgress)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrRecipientNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if the error is a request validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidVPA) ||
		errors.Is(err, ErrMissingIdempotencyKey) ||
		errors.Is(err, ErrEmptyBatch) ||
		errors.Is(err, ErrBatchTooLarge) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsConflictError checks if the error is a domain conflict that produces a
// persisted FAILED outcome or a stable denial
func IsConflictError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrSelfTransfer) ||
		IsKeyConflictError(err)
}

// IsTransientError checks if the error is a store-level conflict eligible for retry
func IsTransientError(err error) bool {
	return errors.Is(err, ErrSerializationConflict)
}
