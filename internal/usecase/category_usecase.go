package usecase

import (
	"context"

	"github.com/riaj03/savyo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
	Icon        string
	Status      string
}

// UpdateCategoryInput carries a partial update; nil fields are left unchanged.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Icon        *string
	Status      *string
}

// CategoryUsecase defines the interface for category management use cases.
// Reads are public; mutations are restricted to admins at the routing layer.
type CategoryUsecase interface {
	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategory retrieves a single category by id.
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// CreateCategory creates a category stamped with the acting account.
	CreateCategory(ctx context.Context, actor *entity.User, input CreateCategoryInput) (*entity.Category, error)

	// UpdateCategory applies a partial update to an existing category.
	UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category by id.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
