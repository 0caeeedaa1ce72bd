package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	"github.com/adhishcp/upi-app/internal/domain/port/usecase"
	coremocks "github.com/adhishcp/upi-app/mocks/port/core"
	persistencemocks "github.com/adhishcp/upi-app/mocks/port/persistence"
)

func newServiceUnderTest(t *testing.T) (*Service, *persistencemocks.MockUserRepository) {
	uow := persistencemocks.NewMockUnitOfWork(t)
	users := persistencemocks.NewMockUserRepository(t)
	uow.EXPECT().GetUserRepository(mock.Anything).Return(users).Maybe()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewUserService(uow, mockTime, mockLogger), users
}

func validRequest() usecase.RegisterRequest {
	return usecase.RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com ",
		VPA:      " Alice@UPI ",
		Password: "correct horse",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a normalized user with a verifiable hash", func(t *testing.T) {
		service, users := newServiceUnderTest(t)
		var stored *entity.User
		users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			stored = u
			return u.ID != ""
		})).Return(nil)

		public, err := service.Register(ctx, validRequest())

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "alice@example.com", stored.Email)
		assert.Equal(t, "alice@upi", stored.VPA)
		assert.NotEqual(t, "correct horse", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))

		assert.Equal(t, stored.ID, public.ID)
		assert.Equal(t, "Alice", public.Name)
		assert.Equal(t, "alice@upi", public.VPA)
	})

	tests := []struct {
		name    string
		mutate  func(*usecase.RegisterRequest)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(r *usecase.RegisterRequest) { r.Name = "" },
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "missing email",
			mutate:  func(r *usecase.RegisterRequest) { r.Email = "" },
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "short password",
			mutate:  func(r *usecase.RegisterRequest) { r.Password = "seven77" },
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "malformed vpa",
			mutate:  func(r *usecase.RegisterRequest) { r.VPA = "no-handle" },
			wantErr: errs.ErrInvalidVPA,
		},
	}
	for _, tt := range tests {
		t.Run("Rejects "+tt.name, func(t *testing.T) {
			service, users := newServiceUnderTest(t)
			req := validRequest()
			tt.mutate(&req)

			public, err := service.Register(ctx, req)

			assert.Nil(t, public)
			assert.ErrorIs(t, err, tt.wantErr)
			users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("Duplicate VPA surfaces the store conflict", func(t *testing.T) {
		service, users := newServiceUnderTest(t)
		users.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrConstraintViolation)

		public, err := service.Register(ctx, validRequest())

		assert.Nil(t, public)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Projects without the password hash", func(t *testing.T) {
		service, users := newServiceUnderTest(t)
		users.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.User{
			ID:           "user-1",
			Name:         "Alice",
			Email:        "alice@example.com",
			VPA:          "alice@upi",
			PasswordHash: "$2a$10$secret",
		}, nil)

		public, err := service.Get(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, &entity.PublicUser{
			ID:    "user-1",
			Name:  "Alice",
			Email: "alice@example.com",
			VPA:   "alice@upi",
		}, public)
	})

	t.Run("Unknown user", func(t *testing.T) {
		service, users := newServiceUnderTest(t)
		users.EXPECT().GetByID(mock.Anything, "user-x").Return(nil, errs.ErrUserNotFound)

		public, err := service.Get(ctx, "user-x")

		assert.Nil(t, public)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
