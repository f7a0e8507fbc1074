package middleware

import (
	"strings"

	deliverycontext "github.com/riaj03/savyo/internal/delivery/context"
	"github.com/riaj03/savyo/internal/domain/entity"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/domain/repository"
	"github.com/riaj03/savyo/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for bearer-token authentication and
// role checks. Errors flow into the error funnel rather than being written
// here.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the account behind
// it from storage, so a role change or deletion takes effect immediately.
// The resolved account is stored on the request for handlers and role gates.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			// Expired, tampered and wrongly-signed tokens all land here.
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Valid token for an account that no longer exists.
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to resolve account for token")
		}

		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

// RequireRole is a middleware factory gating a route group to one role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetCurrentUser(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}

			if user.Role != requiredRole {
				return domainerrors.RoleNotAuthorized(user.Role.String())
			}

			return next(c)
		}
	}
}
