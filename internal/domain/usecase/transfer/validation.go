package transfer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	"github.com/adhishcp/upi-app/internal/domain/port/usecase"
)

// MaxBulkTransfers caps the members of one bulk batch
const MaxBulkTransfers = 100

// vpaPattern matches email-style payment handles like user@bank
var vpaPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+$`)

// Validator rejects malformed requests before any scope opens. Rejections here
// leave no persisted trace.
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateKey checks the idempotency key supplied by the caller
func (v *Validator) ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errs.ErrMissingIdempotencyKey
	}
	return nil
}

// ValidateAmount parses a decimal amount string into paise
func (v *Validator) ValidateAmount(amount string) (int64, error) {
	return entity.ParseAmount(amount)
}

// NormalizeVPA lowercases and trims a VPA, validating its handle format
func (v *Validator) NormalizeVPA(vpa string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(vpa))
	if !vpaPattern.MatchString(normalized) {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidVPA, vpa)
	}
	return normalized, nil
}

// ValidateTransfer checks one transfer request, returning the parsed paise
// amount and the normalized destination VPA
func (v *Validator) ValidateTransfer(req usecase.TransferRequest) (int64, string, error) {
	toVPA, err := v.NormalizeVPA(req.ToVPA)
	if err != nil {
		return 0, "", err
	}

	paise, err := v.ValidateAmount(req.Amount)
	if err != nil {
		return 0, "", err
	}

	return paise, toVPA, nil
}

// ValidateBulk checks the batch envelope
func (v *Validator) ValidateBulk(req usecase.BulkTransferRequest) error {
	if len(req.Transfers) == 0 {
		return errs.ErrEmptyBatch
	}
	if len(req.Transfers) > MaxBulkTransfers {
		return errs.ErrBatchTooLarge
	}
	return nil
}
