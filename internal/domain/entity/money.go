package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/adhishcp/upi-app/internal/domain/error"
)

// All monetary values are integer paise (minor units of a single currency).
// Decimal strings only exist at the API boundary; once converted, no
// floating-point arithmetic or comparison is ever performed on money.

// MaxTransferPaise caps a single movement at 1,00,000.00 in minor units
const MaxTransferPaise int64 = 100000 * 100

var paisePerUnit = decimal.NewFromInt(100)

// ParseAmount converts a decimal currency string (e.g. "100.00") to paise.
// Rounding is half-up at the minor-unit boundary. The amount must be
// strictly positive and within the transfer cap.
func ParseAmount(amount string) (int64, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, trimmed)
	}

	if d.Sign() <= 0 {
		return 0, errs.ErrNegativeAmount
	}

	// decimal.Round is half away from zero, which is half-up for positive values
	paise := d.Mul(paisePerUnit).Round(0)
	if !paise.IsInteger() || !paise.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, trimmed)
	}

	value := paise.IntPart()
	if value <= 0 {
		return 0, errs.ErrNegativeAmount
	}
	if value > MaxTransferPaise {
		return 0, fmt.Errorf("%w: exceeds maximum of %s", errs.ErrInvalidAmount, FormatPaise(MaxTransferPaise))
	}

	return value, nil
}

// FormatPaise renders paise as a decimal string with exactly two places,
// e.g. 20000 -> "200.00", -5 -> "-0.05"
func FormatPaise(paise int64) string {
	return decimal.New(paise, -2).StringFixed(2)
}
