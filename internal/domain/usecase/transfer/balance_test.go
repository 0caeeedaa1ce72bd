package transfer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coremocks "github.com/adhishcp/upi-app/mocks/port/core"
	persistencemocks "github.com/adhishcp/upi-app/mocks/port/persistence"
)

func newEnforcerUnderTest(t *testing.T) (*Enforcer, *persistencemocks.MockUnitOfWork, *persistencemocks.MockBalanceRepository) {
	mockUow := persistencemocks.NewMockUnitOfWork(t)
	mockBalances := persistencemocks.NewMockBalanceRepository(t)
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return NewEnforcer(mockUow, mockLogger), mockUow, mockBalances
}

func TestEnforcerAssertSufficient(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		balancePaise  int64
		debitPaise    int64
		expectedError error
	}{
		{name: "Covers exactly", balancePaise: 10000, debitPaise: 10000},
		{name: "Covers with surplus", balancePaise: 10001, debitPaise: 10000},
		{name: "One paisa short", balancePaise: 9999, debitPaise: 10000, expectedError: errs.ErrInsufficientBalance},
		{name: "Zero balance", balancePaise: 0, debitPaise: 1, expectedError: errs.ErrInsufficientBalance},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			enforcer, mockUow, mockBalances := newEnforcerUnderTest(t)
			mockUow.EXPECT().GetBalanceRepository(mock.Anything).Return(mockBalances)
			mockBalances.EXPECT().Get(mock.Anything, "acc-1").Return(&entity.Balance{
				AccountID: "acc-1",
				Paise:     tc.balancePaise,
			}, nil)

			err := enforcer.AssertSufficient(ctx, "acc-1", tc.debitPaise)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("Read failure surfaces untouched", func(t *testing.T) {
		enforcer, mockUow, mockBalances := newEnforcerUnderTest(t)
		mockUow.EXPECT().GetBalanceRepository(mock.Anything).Return(mockBalances)
		mockBalances.EXPECT().Get(mock.Anything, "acc-1").Return(nil, errs.ErrDatabaseConnection)

		err := enforcer.AssertSufficient(ctx, "acc-1", 100)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestEnforcerApplyDelta(t *testing.T) {
	ctx := context.Background()

	enforcer, mockUow, mockBalances := newEnforcerUnderTest(t)
	mockUow.EXPECT().GetBalanceRepository(mock.Anything).Return(mockBalances)
	mockBalances.EXPECT().ApplyDelta(mock.Anything, "acc-1", int64(-5000)).Return(nil)

	assert.NoError(t, enforcer.ApplyDelta(ctx, "acc-1", -5000))
}
