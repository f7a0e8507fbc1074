package impl

import (
	"context"
	"testing"

	"github.com/riaj03/savyo/internal/domain/entity"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/domain/repository"
	mockRepo "github.com/riaj03/savyo/internal/mocks/repository"
	mockSvc "github.com/riaj03/savyo/internal/mocks/service"
	"github.com/riaj03/savyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
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

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "jane@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().
		Hash("Sup3rSecret!").
		Return("hashed-password", nil)

	newID := uuid.New()
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = newID
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(newID).
		Return("signed-token", nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, "Jane", out.User.Name)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.Equal(t, "hashed-password", out.User.PasswordHash)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "jane@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "jane@example.com"}, nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "Sup3rSecret!",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "jane@example.com").
		Return(&entity.User{
			ID:           userID,
			Email:        "jane@example.com",
			PasswordHash: "hashed-password",
			Role:         entity.RoleUser,
		}, nil)

	fx.hasher.EXPECT().
		Check("Sup3rSecret!", "hashed-password").
		Return(true)

	fx.tokenService.EXPECT().
		GenerateToken(userID).
		Return("signed-token", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, userID, out.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "jane@example.com").
		Return(&entity.User{
			ID:           uuid.New(),
			Email:        "jane@example.com",
			PasswordHash: "hashed-password",
		}, nil)

	fx.hasher.EXPECT().
		Check("wrong", "hashed-password").
		Return(false)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, out)

	// The wrong-password denial is identical to the unknown-email denial.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, "Invalid credentials", domainerrors.ErrInvalidCredentials.Message())
}

func TestAuthService_CurrentUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleAdmin}, nil)

	user, err := fx.service.CurrentUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.True(t, user.IsAdmin())
}

func TestAuthService_CurrentUser_Missing(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.CurrentUser(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
