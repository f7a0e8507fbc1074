package usecase

import (
	"context"
	"time"

	"github.com/riaj03/savyo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDealInput defines the data required to submit a deal.
// The discount percentage is always derived server-side from the two prices.
type CreateDealInput struct {
	Title         string
	Description   string
	StoreID       uuid.UUID
	CategoryID    uuid.UUID
	OriginalPrice float64
	DiscountPrice float64
	ImageURL      string
	DealURL       string
	ExpiryDate    time.Time
	Status        string
}

// UpdateDealInput carries a partial update; nil fields are left unchanged.
type UpdateDealInput struct {
	Title         *string
	Description   *string
	StoreID       *uuid.UUID
	CategoryID    *uuid.UUID
	OriginalPrice *float64
	DiscountPrice *float64
	ImageURL      *string
	DealURL       *string
	ExpiryDate    *time.Time
	Status        *string
}

// DealUsecase defines the interface for deal management use cases.
// Reads are public; mutations require authentication and enforce the
// owner-or-admin rule.
type DealUsecase interface {
	// ListDeals retrieves all deals, most recent first.
	ListDeals(ctx context.Context) ([]*entity.Deal, error)

	// GetDeal retrieves a single deal by id.
	GetDeal(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// CreateDeal submits a deal stamped with the acting account.
	CreateDeal(ctx context.Context, actor *entity.User, input CreateDealInput) (*entity.Deal, error)

	// UpdateDeal applies a partial update to a deal the actor owns (or the
	// actor is an admin).
	UpdateDeal(ctx context.Context, actor *entity.User, id uuid.UUID, input UpdateDealInput) (*entity.Deal, error)

	// DeleteDeal removes a deal the actor owns (or the actor is an admin).
	DeleteDeal(ctx context.Context, actor *entity.User, id uuid.UUID) error

	// DealQRCode renders the deal's external URL as a PNG QR code.
	DealQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
