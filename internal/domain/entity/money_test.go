package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/adhishcp/upi-app/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name          string
		amount        string
		expectedPaise int64
		expectedError error
	}{
		{
			name:          "Whole rupees",
			amount:        "200",
			expectedPaise: 20000,
		},
		{
			name:          "Two decimal places",
			amount:        "100.50",
			expectedPaise: 10050,
		},
		{
			name:          "Single paisa",
			amount:        "0.01",
			expectedPaise: 1,
		},
		{
			name:          "Leading and trailing whitespace",
			amount:        "  75.25  ",
			expectedPaise: 7525,
		},
		{
			name:          "Third decimal rounds half up",
			amount:        "1.005",
			expectedPaise: 101,
		},
		{
			name:          "Third decimal rounds down",
			amount:        "1.004",
			expectedPaise: 100,
		},
		{
			name:          "Exactly at the cap",
			amount:        "100000.00",
			expectedPaise: MaxTransferPaise,
		},
		{
			name:          "Above the cap",
			amount:        "100000.01",
			expectedError: errs.ErrInvalidAmount,
		},
		{
			name:          "Zero",
			amount:        "0",
			expectedError: errs.ErrNegativeAmount,
		},
		{
			name:          "Rounds to zero",
			amount:        "0.004",
			expectedError: errs.ErrNegativeAmount,
		},
		{
			name:          "Negative",
			amount:        "-10.00",
			expectedError: errs.ErrNegativeAmount,
		},
		{
			name:          "Empty string",
			amount:        "",
			expectedError: errs.ErrInvalidAmount,
		},
		{
			name:          "Whitespace only",
			amount:        "   ",
			expectedError: errs.ErrInvalidAmount,
		},
		{
			name:          "Not a number",
			amount:        "ten rupees",
			expectedError: errs.ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paise, err := ParseAmount(tc.amount)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedPaise, paise)
		})
	}
}

func TestFormatPaise(t *testing.T) {
	testCases := []struct {
		name     string
		paise    int64
		expected string
	}{
		{name: "Whole rupees", paise: 20000, expected: "200.00"},
		{name: "With paise", paise: 10050, expected: "100.50"},
		{name: "Single paisa", paise: 1, expected: "0.01"},
		{name: "Zero", paise: 0, expected: "0.00"},
		{name: "Negative", paise: -5, expected: "-0.05"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatPaise(tc.paise))
		})
	}
}

func TestParseAmountFormatPaiseSymmetry(t *testing.T) {
	// A formatted amount must parse back to the same paise value
	for _, paise := range []int64{1, 99, 100, 12345, MaxTransferPaise} {
		parsed, err := ParseAmount(FormatPaise(paise))
		require.NoError(t, err)
		assert.Equal(t, paise, parsed)
	}
}
