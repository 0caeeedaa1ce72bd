package transfer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	coremocks "github.com/adhishcp/upi-app/mocks/port/core"
	persistencemocks "github.com/adhishcp/upi-app/mocks/port/persistence"
)

func newCoordinatorUnderTest(t *testing.T) (*Coordinator, *persistencemocks.MockUnitOfWork, *persistencemocks.MockIdempotencyRepository) {
	mockUow := persistencemocks.NewMockUnitOfWork(t)
	mockRepo := persistencemocks.NewMockIdempotencyRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return NewCoordinator(mockUow, mockTime, mockLogger), mockUow, mockRepo
}

func TestCoordinatorBegin(t *testing.T) {
	ctx := context.Background()

	t.Run("Unseen key is fresh and gets a record", func(t *testing.T) {
		coordinator, mockUow, mockRepo := newCoordinatorUnderTest(t)
		mockUow.EXPECT().GetIdempotencyRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().Get(mock.Anything, "key-1").Return(nil, nil)
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *entity.IdempotencyRecord) bool {
			return r.Key == "key-1" && r.UserID == "user-1" && len(r.Request) > 0 && r.Response == nil
		})).Return(nil)

		result, err := coordinator.Begin(ctx, "key-1", "user-1", map[string]string{"operation": "deposit"})

		require.NoError(t, err)
		assert.Equal(t, StateFresh, result.State)
	})

	t.Run("Captured outcome replays as duplicate", func(t *testing.T) {
		coordinator, mockUow, mockRepo := newCoordinatorUnderTest(t)
		captured := entity.Outcome{Success: true, TransactionID: "txn-1", Amount: "100.00", Status: entity.StatusCompleted}
		mockUow.EXPECT().GetIdempotencyRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().Get(mock.Anything, "key-1").Return(&entity.IdempotencyRecord{
			Key:      "key-1",
			UserID:   "user-1",
			Response: captured.Marshal(),
		}, nil)

		result, err := coordinator.Begin(ctx, "key-1", "user-1", nil)

		require.NoError(t, err)
		assert.Equal(t, StateDuplicate, result.State)
		assert.Equal(t, captured, result.Outcome)
	})

	t.Run("Record without response means in progress", func(t *testing.T) {
		coordinator, mockUow, mockRepo := newCoordinatorUnderTest(t)
		mockUow.EXPECT().GetIdempotencyRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().Get(mock.Anything, "key-1").Return(&entity.IdempotencyRecord{
			Key:    "key-1",
			UserID: "user-1",
		}, nil)

		result, err := coordinator.Begin(ctx, "key-1", "user-1", nil)

		require.NoError(t, err)
		assert.Equal(t, StateInProgress, result.State)
	})

	t.Run("Insert race reads as in progress", func(t *testing.T) {
		coordinator, mockUow, mockRepo := newCoordinatorUnderTest(t)
		mockUow.EXPECT().GetIdempotencyRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().Get(mock.Anything, "key-1").Return(nil, nil)
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrKeyConflict)

		result, err := coordinator.Begin(ctx, "key-1", "user-1", nil)

		require.NoError(t, err)
		assert.Equal(t, StateInProgress, result.State)
	})

	t.Run("Lookup failure surfaces", func(t *testing.T) {
		coordinator, mockUow, mockRepo := newCoordinatorUnderTest(t)
		mockUow.EXPECT().GetIdempotencyRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().Get(mock.Anything, "key-1").Return(nil, errs.ErrDatabaseConnection)

		result, err := coordinator.Begin(ctx, "key-1", "user-1", nil)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Unreadable captured response surfaces", func(t *testing.T) {
		coordinator, mockUow, mockRepo := newCoordinatorUnderTest(t)
		mockUow.EXPECT().GetIdempotencyRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().Get(mock.Anything, "key-1").Return(&entity.IdempotencyRecord{
			Key:      "key-1",
			Response: []byte("{not json"),
		}, nil)

		result, err := coordinator.Begin(ctx, "key-1", "user-1", nil)

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestCoordinatorComplete(t *testing.T) {
	ctx := context.Background()
	outcome := entity.Outcome{Success: true, TransactionID: "txn-1", Amount: "50.00", Status: entity.StatusCompleted}

	t.Run("Captures the outcome once", func(t *testing.T) {
		coordinator, mockUow, mockRepo := newCoordinatorUnderTest(t)
		mockUow.EXPECT().GetIdempotencyRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().SetResponse(mock.Anything, "key-1", mock.MatchedBy(func(raw []byte) bool {
			parsed, err := entity.ParseOutcome(raw)
			return err == nil && parsed == outcome
		})).Return(nil)

		assert.NoError(t, coordinator.Complete(ctx, "key-1", outcome))
	})

	t.Run("Capture failure wraps the key", func(t *testing.T) {
		coordinator, mockUow, mockRepo := newCoordinatorUnderTest(t)
		mockUow.EXPECT().GetIdempotencyRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().SetResponse(mock.Anything, "key-1", mock.Anything).Return(errors.New("write failed"))

		err := coordinator.Complete(ctx, "key-1", outcome)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "key-1")
	})
}
