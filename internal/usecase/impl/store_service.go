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

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo    repository.StoreRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo:    params.StoreRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStores retrieves all stores ordered by name.
func (srv *storeService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// GetStore retrieves a single store by id.
func (srv *storeService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to load store")
	}

	return store, nil
}

// CreateStore creates a store stamped with the acting account.
func (srv *storeService) CreateStore(ctx context.Context, actor *entity.User, input usecase.CreateStoreInput) (*entity.Store, error) {
	status := entity.ResourceStatus(input.Status)
	if input.Status == "" {
		status = entity.StatusActive
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("invalid store status")
	}

	if err := srv.ensureCategoryExists(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	store := &entity.Store{
		Name:        input.Name,
		Description: input.Description,
		Logo:        input.Logo,
		Website:     input.Website,
		CategoryID:  input.CategoryID,
		Status:      status,
		CreatedBy:   actor.ID,
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created", slog.Any("storeID", store.ID), slog.Any("createdBy", actor.ID))

	return store, nil
}

// UpdateStore applies a partial update to an existing store.
func (srv *storeService) UpdateStore(ctx context.Context, id uuid.UUID, input usecase.UpdateStoreInput) (*entity.Store, error) {
	store, err := srv.GetStore(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.Logo != nil {
		store.Logo = *input.Logo
	}
	if input.Website != nil {
		store.Website = *input.Website
	}
	if input.CategoryID != nil {
		if err := srv.ensureCategoryExists(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		store.CategoryID = *input.CategoryID
		// The joined display name is stale after a reparent.
		store.Category = nil
	}
	if input.Status != nil {
		status := entity.ResourceStatus(*input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithMessage("invalid store status")
		}
		store.Status = status
	}

	if err := srv.storeRepo.Update(ctx, store); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update store")
	}

	srv.log(ctx).Info("Store updated", slog.Any("storeID", store.ID))

	return store, nil
}

// DeleteStore removes a store by id.
func (srv *storeService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	if err := srv.storeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to delete store")
	}

	srv.log(ctx).Info("Store deleted", slog.Any("storeID", id))

	return nil
}

func (srv *storeService) ensureCategoryExists(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to check category reference")
	}

	return nil
}
