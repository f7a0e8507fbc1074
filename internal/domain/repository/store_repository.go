package repository

import (
	"context"
	"errors"

	"github.com/riaj03/savyo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store id does not resolve.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the standard operations for store persistence.
// Reads are joined with the referenced category's display name.
type StoreRepository interface {
	// List retrieves all stores ordered by name.
	List(ctx context.Context) ([]*entity.Store, error)

	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// Create persists a new store entity to the storage.
	Create(ctx context.Context, store *entity.Store) error

	// Update modifies an existing store entity in the storage.
	Update(ctx context.Context, store *entity.Store) error

	// Delete removes a store by id. Returns ErrStoreNotFound when the id
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
