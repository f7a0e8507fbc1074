// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "github.com/riaj03/savyo/internal/delivery/context"
	"github.com/riaj03/savyo/internal/delivery/http/response"
	"github.com/riaj03/savyo/internal/domain/entity"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the wire DTO for POST /api/auth/register.
type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// loginRequest is the wire DTO for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse carries the account fields alongside the signed bearer token.
type authResponse struct {
	*entity.User
	Token string `json:"token"`
}

// AuthHandler holds dependencies for account-related handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authResponse{User: output.User, Token: output.Token})
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authResponse{User: output.User, Token: output.Token})
}

// Me returns the account behind the bearer token.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	// Reload rather than echoing the middleware copy, so the response
	// reflects the latest stored state.
	current, err := h.uc.CurrentUser(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, current)
}
