package impl

import (
	"context"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	mockrepo "quill/internal/mocks/repository"
	mockservice "quill/internal/mocks/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	service  usecase.AuthUsecase
	userRepo *mockrepo.MockUserRepository
	hasher   *mockservice.MockPasswordHasher
	tokens   *mockservice.MockTokenService
}

func createTestAuthService(t *testing.T) *authServiceFixture {
	t.Helper()

	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mockservice.NewMockPasswordHasher(t)
	tokens := mockservice.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       discardLogger(),
	})

	return &authServiceFixture{
		service:  svc,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestAuthService_Signup(t *testing.T) {
	t.Parallel()

	t.Run("creates a new account", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, &entity.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hashed",
		}).Return(nil)

		out, err := fx.service.Signup(ctx, &usecase.SignupInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, "alice", out.User.Username)
		assert.Equal(t, "hashed", out.User.PasswordHash)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").
			Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)

		out, err := fx.service.Signup(ctx, &usecase.SignupInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cret",
		})
		require.Error(t, err)
		assert.Nil(t, out)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), appErr.ErrorCode())
	})

	t.Run("wraps a lookup failure", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").
			Return(nil, errors.New("connection refused"))

		out, err := fx.service.Signup(ctx, &usecase.SignupInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cret",
		})
		require.Error(t, err)
		assert.Nil(t, out)

		var dbErr *domainerrors.DatabaseExecuteError
		assert.ErrorAs(t, err, &dbErr)
	})

	t.Run("fails when hashing fails", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("s3cret").Return("", errors.New("cost out of range"))

		out, err := fx.service.Signup(ctx, &usecase.SignupInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cret",
		})
		require.Error(t, err)
		assert.Nil(t, out)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrPasswordHashFailed.ErrorCode(), appErr.ErrorCode())
	})

	t.Run("propagates the create error", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, &entity.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hashed",
		}).Return(domainerrors.ErrUserAlreadyExists)

		out, err := fx.service.Signup(ctx, &usecase.SignupInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cret",
		})
		require.Error(t, err)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()
		userID := uuid.New()
		user := &entity.User{ID: userID, Username: "alice", PasswordHash: "hashed"}

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
		fx.hasher.EXPECT().Check("s3cret", "hashed").Return(true)
		fx.tokens.EXPECT().Issue(userID).Return("signed-token", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, "signed-token", out.AccessToken)
		assert.Equal(t, user, out.User)
	})

	t.Run("rejects an unknown username", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "s3cret"})
		require.Error(t, err)
		assert.Nil(t, out)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed"}

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})
		require.Error(t, err)
		assert.Nil(t, out)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrWrongPassword.ErrorCode(), appErr.ErrorCode())
	})

	t.Run("fails when the token cannot be issued", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()
		userID := uuid.New()
		user := &entity.User{ID: userID, Username: "alice", PasswordHash: "hashed"}

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
		fx.hasher.EXPECT().Check("s3cret", "hashed").Return(true)
		fx.tokens.EXPECT().Issue(userID).Return("", errors.New("signing failed"))

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
		require.Error(t, err)
		assert.Nil(t, out)
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	t.Parallel()

	t.Run("returns the public fields", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
			ID:           userID,
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hashed",
		}, nil)

		out, err := fx.service.GetCurrentUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, &usecase.CurrentUserOutput{
			Username: "alice",
			Email:    "alice@example.com",
		}, out)
	})

	t.Run("maps an unknown id to a not-found error", func(t *testing.T) {
		t.Parallel()

		fx := createTestAuthService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		out, err := fx.service.GetCurrentUser(ctx, userID)
		require.Error(t, err)
		assert.Nil(t, out)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrUserIDNotFound.ErrorCode(), appErr.ErrorCode())
	})
}
