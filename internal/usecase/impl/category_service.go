package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/riaj03/savyo/internal/delivery/context"
	"github.com/riaj03/savyo/internal/domain/entity"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/domain/repository"
	"github.com/riaj03/savyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories retrieves all categories ordered by name.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory retrieves a single category by id.
func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	return category, nil
}

// CreateCategory creates a category stamped with the acting account.
func (srv *categoryService) CreateCategory(ctx context.Context, actor *entity.User, input usecase.CreateCategoryInput) (*entity.Category, error) {
	status := entity.ResourceStatus(input.Status)
	if input.Status == "" {
		status = entity.StatusActive
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("invalid category status")
	}

	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Status:      status,
		CreatedBy:   actor.ID,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.Any("createdBy", actor.ID))

	return category, nil
}

// UpdateCategory applies a partial update to an existing category.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := srv.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}
	if input.Status != nil {
		status := entity.ResourceStatus(*input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithMessage("invalid category status")
		}
		category.Status = status
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	srv.log(ctx).Info("Category updated", slog.Any("categoryID", category.ID))

	return category, nil
}

// DeleteCategory removes a category by id.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}
