package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/adhishcp/upi-app/internal/domain/error"
	"github.com/adhishcp/upi-app/internal/domain/port/usecase"
)

func TestValidateKey(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateKey("key-1"))
	assert.ErrorIs(t, v.ValidateKey(""), errs.ErrMissingIdempotencyKey)
	assert.ErrorIs(t, v.ValidateKey("   "), errs.ErrMissingIdempotencyKey)
}

func TestNormalizeVPA(t *testing.T) {
	v := NewValidator()

	testCases := []struct {
		name          string
		vpa           string
		expected      string
		expectedError error
	}{
		{name: "Simple handle", vpa: "alice@upi", expected: "alice@upi"},
		{name: "Uppercase lowered", vpa: "Alice@UPI", expected: "alice@upi"},
		{name: "Whitespace trimmed", vpa: "  bob@bank  ", expected: "bob@bank"},
		{name: "Dots and dashes", vpa: "first.last-1@ok-bank", expected: "first.last-1@ok-bank"},
		{name: "Missing handle", vpa: "@bank", expectedError: errs.ErrInvalidVPA},
		{name: "Missing provider", vpa: "alice@", expectedError: errs.ErrInvalidVPA},
		{name: "No separator", vpa: "alice", expectedError: errs.ErrInvalidVPA},
		{name: "Empty", vpa: "", expectedError: errs.ErrInvalidVPA},
		{name: "Inner spaces", vpa: "ali ce@upi", expectedError: errs.ErrInvalidVPA},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normalized, err := v.NormalizeVPA(tc.vpa)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, normalized)
		})
	}
}

func TestValidateTransfer(t *testing.T) {
	v := NewValidator()

	t.Run("Valid request", func(t *testing.T) {
		paise, toVPA, err := v.ValidateTransfer(usecase.TransferRequest{
			ToVPA:  "Bob@UPI",
			Amount: "150.75",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(15075), paise)
		assert.Equal(t, "bob@upi", toVPA)
	})

	t.Run("Bad VPA rejected before amount", func(t *testing.T) {
		_, _, err := v.ValidateTransfer(usecase.TransferRequest{
			ToVPA:  "not-a-vpa",
			Amount: "also not an amount",
		})

		assert.ErrorIs(t, err, errs.ErrInvalidVPA)
	})

	t.Run("Bad amount", func(t *testing.T) {
		_, _, err := v.ValidateTransfer(usecase.TransferRequest{
			ToVPA:  "bob@upi",
			Amount: "-5",
		})

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestValidateBulk(t *testing.T) {
	v := NewValidator()

	makeBatch := func(n int) usecase.BulkTransferRequest {
		req := usecase.BulkTransferRequest{Transfers: make([]usecase.TransferRequest, n)}
		for i := range req.Transfers {
			req.Transfers[i] = usecase.TransferRequest{ToVPA: "bob@upi", Amount: "1.00"}
		}
		return req
	}

	assert.ErrorIs(t, v.ValidateBulk(makeBatch(0)), errs.ErrEmptyBatch)
	assert.NoError(t, v.ValidateBulk(makeBatch(1)))
	assert.NoError(t, v.ValidateBulk(makeBatch(MaxBulkTransfers)))
	assert.ErrorIs(t, v.ValidateBulk(makeBatch(MaxBulkTransfers+1)), errs.ErrBatchTooLarge)
}
