package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "github.com/riaj03/savyo/internal/delivery/context"
	"github.com/riaj03/savyo/internal/domain/entity"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/domain/repository"
	"github.com/riaj03/savyo/internal/domain/service"
	mockrepository "github.com/riaj03/savyo/internal/mocks/repository"
	mockservice "github.com/riaj03/savyo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type authMiddlewareFixtures struct {
	tokenSvc *mockservice.MockTokenService
	userRepo *mockrepository.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *authMiddlewareFixtures) {
	t.Helper()

	fixtures := &authMiddlewareFixtures{
		tokenSvc: mockservice.NewMockTokenService(t),
		userRepo: mockrepository.NewMockUserRepository(t),
	}

	return NewAuthMiddleware(fixtures.tokenSvc, fixtures.userRepo), fixtures
}

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func nextRecorder(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return nil
	}
}

func TestAuthenticate_Success(t *testing.T) {
	middleware, fixtures := createTestAuthMiddleware(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com", Role: entity.RoleUser}

	fixtures.tokenSvc.EXPECT().ValidateToken("valid-token").Return(&service.Claims{UserID: userID}, nil)
	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	c := newAuthTestContext(t, "Bearer valid-token")
	called := false
	err := middleware.Authenticate(nextRecorder(&called))(c)

	assert.NoError(t, err)
	assert.True(t, called)

	current, ok := deliverycontext.GetCurrentUser(c)
	assert.True(t, ok)
	assert.Equal(t, userID, current.ID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	middleware, _ := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "")
	called := false
	err := middleware.Authenticate(nextRecorder(&called))(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.False(t, called)
}

func TestAuthenticate_NotBearerScheme(t *testing.T) {
	middleware, _ := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "Basic dXNlcjpwYXNz")
	err := middleware.Authenticate(nextRecorder(new(bool)))(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	middleware, fixtures := createTestAuthMiddleware(t)

	fixtures.tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("token is expired"))

	c := newAuthTestContext(t, "Bearer bad-token")
	err := middleware.Authenticate(nextRecorder(new(bool)))(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticate_DeletedAccount(t *testing.T) {
	middleware, fixtures := createTestAuthMiddleware(t)

	userID := uuid.New()
	fixtures.tokenSvc.EXPECT().ValidateToken("orphan-token").Return(&service.Claims{UserID: userID}, nil)
	fixtures.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	c := newAuthTestContext(t, "Bearer orphan-token")
	err := middleware.Authenticate(nextRecorder(new(bool)))(c)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	middleware, _ := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "")
	deliverycontext.SetCurrentUser(c, &entity.User{ID: uuid.New(), Role: entity.RoleAdmin})

	called := false
	err := middleware.RequireRole(entity.RoleAdmin)(nextRecorder(&called))(c)

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRequireRole_UserDenied(t *testing.T) {
	middleware, _ := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "")
	deliverycontext.SetCurrentUser(c, &entity.User{ID: uuid.New(), Role: entity.RoleUser})

	err := middleware.RequireRole(entity.RoleAdmin)(nextRecorder(new(bool)))(c)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Contains(t, err.Error(), "User role user is not authorized")
}

func TestRequireRole_NoAuthenticatedUser(t *testing.T) {
	middleware, _ := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "")
	err := middleware.RequireRole(entity.RoleAdmin)(nextRecorder(new(bool)))(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
