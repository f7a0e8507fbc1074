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

// createCategoryRequest is the wire DTO for POST /api/categories.
type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// updateCategoryRequest is the wire DTO for PUT /api/categories/:id.
// Absent fields leave the stored value untouched.
type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Icon        *string `json:"icon"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryHandler holds dependencies for category-related handlers.
type CategoryHandler struct {
	uc usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithCount(c, http.StatusOK, len(categories), categories)
}

// Get handles GET /api/categories/:id.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category)
}

// Create handles POST /api/categories (admin only).
func (h *CategoryHandler) Create(c echo.Context) error {
	actor, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), actor, usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Status:      req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// Update handles PUT /api/categories/:id (admin only).
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, usecase.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Status:      req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category)
}

// Delete handles DELETE /api/categories/:id (admin only).
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Deleted(c, http.StatusOK)
}

// parseIDParam reads the :id path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithMessage("invalid id format")
	}

	return id, nil
}
