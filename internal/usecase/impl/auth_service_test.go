package impl

import (
	"context"
	"testing"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}
	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "admin@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "Str0ng!Pass").Return("$2a$10$hash", nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "admin@example.com" && u.PasswordHash == "$2a$10$hash"
	})).Return(nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "admin@example.com",
		Password: "Str0ng!Pass",
	})

	require.NoError(t, err)
	fx.userRepo.AssertExpectations(t)
	fx.hasher.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "admin@example.com").
		Return(&entity.User{ID: 1, Email: "admin@example.com"}, nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "admin@example.com",
		Password: "Str0ng!Pass",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), appErr.ErrorCode())
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_RepoError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "admin@example.com").
		Return(nil, errors.New("connection refused"))

	err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "admin@example.com",
		Password: "Str0ng!Pass",
	})

	require.Error(t, err)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Email: "admin@example.com", PasswordHash: "$2a$10$hash"}
	fx.userRepo.On("FindByEmail", ctx, "admin@example.com").Return(user, nil)
	fx.hasher.On("Check", "Str0ng!Pass", "$2a$10$hash").Return(true)
	fx.tokenService.On("Generate", uint(7), "admin@example.com").Return("signed.jwt.token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "Str0ng!Pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, uint(7), out.User.ID)
	assert.Equal(t, "admin@example.com", out.User.Email)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "Str0ng!Pass",
	})

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.HTTPCode(), appErr.HTTPCode())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Email: "admin@example.com", PasswordHash: "$2a$10$hash"}
	fx.userRepo.On("FindByEmail", ctx, "admin@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "$2a$10$hash").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.HTTPCode(), appErr.HTTPCode())
	fx.tokenService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Email: "admin@example.com", PasswordHash: "$2a$10$hash"}
	fx.userRepo.On("FindByEmail", ctx, "admin@example.com").Return(user, nil)
	fx.hasher.On("Check", "Str0ng!Pass", "$2a$10$hash").Return(true)
	fx.tokenService.On("Generate", uint(7), "admin@example.com").
		Return("", errors.New("empty secret"))

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "Str0ng!Pass",
	})

	require.Error(t, err)
	assert.Nil(t, out)
}
