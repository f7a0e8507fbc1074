package handler

import (
	"net/http"
	"time"

	deliverycontext "github.com/riaj03/savyo/internal/delivery/context"
	"github.com/riaj03/savyo/internal/delivery/http/response"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createDealRequest is the wire DTO for POST /api/deals.
// discountPercentage is deliberately absent: it is always derived.
type createDealRequest struct {
	Title         string    `json:"title" validate:"required,max=150"`
	Description   string    `json:"description" validate:"max=1000"`
	StoreID       uuid.UUID `json:"store" validate:"required"`
	CategoryID    uuid.UUID `json:"category" validate:"required"`
	OriginalPrice float64   `json:"originalPrice" validate:"required,gt=0"`
	DiscountPrice float64   `json:"discountPrice" validate:"gte=0"`
	ImageURL      string    `json:"imageUrl" validate:"omitempty,url"`
	DealURL       string    `json:"dealUrl" validate:"required,url"`
	ExpiryDate    time.Time `json:"expiryDate" validate:"required"`
	Status        string    `json:"status" validate:"omitempty,oneof=active expired pending rejected"`
}

// updateDealRequest is the wire DTO for PUT /api/deals/:id.
// Absent fields leave the stored value untouched.
type updateDealRequest struct {
	Title         *string    `json:"title" validate:"omitempty,max=150"`
	Description   *string    `json:"description" validate:"omitempty,max=1000"`
	StoreID       *uuid.UUID `json:"store"`
	CategoryID    *uuid.UUID `json:"category"`
	OriginalPrice *float64   `json:"originalPrice" validate:"omitempty,gt=0"`
	DiscountPrice *float64   `json:"discountPrice" validate:"omitempty,gte=0"`
	ImageURL      *string    `json:"imageUrl" validate:"omitempty,url"`
	DealURL       *string    `json:"dealUrl" validate:"omitempty,url"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	Status        *string    `json:"status" validate:"omitempty,oneof=active expired pending rejected"`
}

// DealHandler holds dependencies for deal-related handlers.
type DealHandler struct {
	uc usecase.DealUsecase
}

// NewDealHandler is the constructor for DealHandler, injected by Fx.
func NewDealHandler(uc usecase.DealUsecase) *DealHandler {
	return &DealHandler{uc: uc}
}

// List handles GET /api/deals.
func (h *DealHandler) List(c echo.Context) error {
	deals, err := h.uc.ListDeals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithCount(c, http.StatusOK, len(deals), deals)
}

// Get handles GET /api/deals/:id.
func (h *DealHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	deal, err := h.uc.GetDeal(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal)
}

// Create handles POST /api/deals (any authenticated account).
func (h *DealHandler) Create(c echo.Context) error {
	actor, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req createDealRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid deal input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	deal, err := h.uc.CreateDeal(c.Request().Context(), actor, usecase.CreateDealInput{
		Title:         req.Title,
		Description:   req.Description,
		StoreID:       req.StoreID,
		CategoryID:    req.CategoryID,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		ImageURL:      req.ImageURL,
		DealURL:       req.DealURL,
		ExpiryDate:    req.ExpiryDate,
		Status:        req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, deal)
}

// Update handles PUT /api/deals/:id (owner or admin).
func (h *DealHandler) Update(c echo.Context) error {
	actor, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req updateDealRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid deal input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	deal, err := h.uc.UpdateDeal(c.Request().Context(), actor, id, usecase.UpdateDealInput{
		Title:         req.Title,
		Description:   req.Description,
		StoreID:       req.StoreID,
		CategoryID:    req.CategoryID,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		ImageURL:      req.ImageURL,
		DealURL:       req.DealURL,
		ExpiryDate:    req.ExpiryDate,
		Status:        req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal)
}

// Delete handles DELETE /api/deals/:id (owner or admin).
func (h *DealHandler) Delete(c echo.Context) error {
	actor, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteDeal(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Deleted(c, http.StatusOK)
}

// QRCode handles GET /api/deals/:id/qrcode, answering a PNG image rather
// than the JSON envelope.
func (h *DealHandler) QRCode(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.uc.DealQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
