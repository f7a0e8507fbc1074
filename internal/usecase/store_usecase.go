package usecase

import (
	"context"

	"github.com/riaj03/savyo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStoreInput defines the data required to create a store.
type CreateStoreInput struct {
	Name        string
	Description string
	Logo        string
	Website     string
	CategoryID  uuid.UUID
	Status      string
}

// UpdateStoreInput carries a partial update; nil fields are left unchanged.
type UpdateStoreInput struct {
	Name        *string
	Description *string
	Logo        *string
	Website     *string
	CategoryID  *uuid.UUID
	Status      *string
}

// StoreUsecase defines the interface for store management use cases.
// Reads are public; mutations are restricted to admins at the routing layer.
type StoreUsecase interface {
	// ListStores retrieves all stores ordered by name.
	ListStores(ctx context.Context) ([]*entity.Store, error)

	// GetStore retrieves a single store by id.
	GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// CreateStore creates a store stamped with the acting account. The
	// referenced category must exist.
	CreateStore(ctx context.Context, actor *entity.User, input CreateStoreInput) (*entity.Store, error)

	// UpdateStore applies a partial update to an existing store.
	UpdateStore(ctx context.Context, id uuid.UUID, input UpdateStoreInput) (*entity.Store, error)

	// DeleteStore removes a store by id.
	DeleteStore(ctx context.Context, id uuid.UUID) error
}
