package handler

import (
	"net/http"

	deliverycontext "github.com/riaj03/savyo/internal/delivery/context"
	"github.com/riaj03/savyo/internal/delivery/http/response"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createStoreRequest is the wire DTO for POST /api/stores.
type createStoreRequest struct {
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description" validate:"max=500"`
	Logo        string    `json:"logo" validate:"omitempty,url"`
	Website     string    `json:"website" validate:"omitempty,url"`
	CategoryID  uuid.UUID `json:"category" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

// updateStoreRequest is the wire DTO for PUT /api/stores/:id.
// Absent fields leave the stored value untouched.
type updateStoreRequest struct {
	Name        *string    `json:"name" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Logo        *string    `json:"logo" validate:"omitempty,url"`
	Website     *string    `json:"website" validate:"omitempty,url"`
	CategoryID  *uuid.UUID `json:"category"`
	Status      *string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

// StoreHandler holds dependencies for store-related handlers.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// List handles GET /api/stores.
func (h *StoreHandler) List(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithCount(c, http.StatusOK, len(stores), stores)
}

// Get handles GET /api/stores/:id.
func (h *StoreHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	store, err := h.uc.GetStore(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store)
}

// Create handles POST /api/stores (admin only).
func (h *StoreHandler) Create(c echo.Context) error {
	actor, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.uc.CreateStore(c.Request().Context(), actor, usecase.CreateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		CategoryID:  req.CategoryID,
		Status:      req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store)
}

// Update handles PUT /api/stores/:id (admin only).
func (h *StoreHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req updateStoreRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), id, usecase.UpdateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		CategoryID:  req.CategoryID,
		Status:      req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store)
}

// Delete handles DELETE /api/stores/:id (admin only).
func (h *StoreHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteStore(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Deleted(c, http.StatusOK)
}
