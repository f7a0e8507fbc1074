package repository

import (
	"context"
	"errors"

	"github.com/riaj03/savyo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category id does not resolve.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// Create persists a new category entity to the storage.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category entity in the storage.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by id. Returns ErrCategoryNotFound when the
	// id does not exist, never a silent success.
	Delete(ctx context.Context, id uuid.UUID) error
}
