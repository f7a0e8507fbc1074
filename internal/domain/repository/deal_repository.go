package repository

import (
	"context"
	"errors"

	"github.com/riaj03/savyo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDealNotFound is returned when a deal id does not resolve.
var ErrDealNotFound = errors.New("deal not found")

// DealRepository defines the standard operations for deal persistence.
// Reads are joined with the referenced store (name, logo) and category (name).
type DealRepository interface {
	// List retrieves all deals, most recent first.
	List(ctx context.Context) ([]*entity.Deal, error)

	// FindByID retrieves a single deal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// Create persists a new deal entity to the storage.
	Create(ctx context.Context, deal *entity.Deal) error

	// Update modifies an existing deal entity in the storage.
	Update(ctx context.Context, deal *entity.Deal) error

	// Delete removes a deal by id. Returns ErrDealNotFound when the id does
	// not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
