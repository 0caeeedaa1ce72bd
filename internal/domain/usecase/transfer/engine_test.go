package transfer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
)

func TestRunSerializable(t *testing.T) {
	ctx := context.Background()

	t.Run("Commits when an outcome exists even with a domain error", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		denial := entity.Outcome{Success: false, Status: entity.StatusFailed}
		outcome, err := f.service.runSerializable(ctx, "test", func(context.Context) (*entity.Outcome, error) {
			return &denial, errs.ErrSelfTransfer
		})

		require.NotNil(t, outcome)
		assert.Equal(t, denial, *outcome)
		assert.ErrorIs(t, err, errs.ErrSelfTransfer)
	})

	t.Run("Rolls back when no outcome exists", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		opErr := errors.New("boom")
		outcome, err := f.service.runSerializable(ctx, "test", func(context.Context) (*entity.Outcome, error) {
			return nil, opErr
		})

		assert.Nil(t, outcome)
		assert.Equal(t, opErr, err)
	})

	t.Run("Nil outcome and nil error is a bug surfaced as internal", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		outcome, err := f.service.runSerializable(ctx, "test", func(context.Context) (*entity.Outcome, error) {
			return nil, nil
		})

		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})

	t.Run("Non-transient error is never retried", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		calls := 0
		outcome, err := f.service.runSerializable(ctx, "test", func(context.Context) (*entity.Outcome, error) {
			calls++
			return nil, errs.ErrUserNotFound
		})

		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("Transient error retries exactly once", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Times(2)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Times(2)

		calls := 0
		outcome, err := f.service.runSerializable(ctx, "test", func(context.Context) (*entity.Outcome, error) {
			calls++
			return nil, errs.ErrSerializationConflict
		})

		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, errs.ErrSerializationConflict)
		assert.Equal(t, 2, calls)
	})

	t.Run("Begin failure surfaces immediately", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		outcome, err := f.service.runSerializable(ctx, "test", func(context.Context) (*entity.Outcome, error) {
			t.Fatal("scope body must not run when the scope cannot open")
			return nil, nil
		})

		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Non-transient commit failure surfaces without outcome", func(t *testing.T) {
		f := newServiceFixture(t)
		commitErr := errors.New("connection reset")
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(commitErr).Once()

		outcome, err := f.service.runSerializable(ctx, "test", func(context.Context) (*entity.Outcome, error) {
			return &entity.Outcome{Success: true}, nil
		})

		assert.Nil(t, outcome)
		assert.Equal(t, commitErr, err)
	})
}

func TestFailOperationPassesThroughRetryableErrors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name  string
		cause error
	}{
		{name: "Serialization conflict", cause: errs.ErrSerializationConflict},
		{name: "Connection failure", cause: errs.ErrDatabaseConnection},
		{name: "Unknown infrastructure error", cause: errors.New("write: broken pipe")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture(t)
			txn := &entity.Transaction{ID: "txn-1", Status: entity.StatusPending}

			outcome, err := f.service.failOperation(ctx, "key-1", txn, tc.cause)

			assert.Nil(t, outcome)
			assert.Equal(t, tc.cause, err)
			// the scope rolls back instead, so the key stays retryable
			assert.Equal(t, entity.StatusPending, txn.Status)
			f.transactions.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
			f.idempotency.AssertNotCalled(t, "SetResponse", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
