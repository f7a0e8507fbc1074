package postgres

import (
	"context"

	"github.com/riaj03/savyo/internal/domain/entity"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/domain/repository"
	"github.com/riaj03/savyo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// List retrieves all stores ordered by name, with the category name joined in.
func (repo *storeRepository) List(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Category").
		Order("name ASC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// FindByID retrieves a store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Category").
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// Create persists a new store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStoreAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Update modifies an existing store.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"name":        storeM.Name,
			"description": storeM.Description,
			"logo":        storeM.Logo,
			"website":     storeM.Website,
			"category_id": storeM.CategoryID,
			"status":      storeM.Status,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrStoreAlreadyExists
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// Delete removes a store by its ID.
func (repo *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoreModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Logo:        data.Logo,
		Website:     data.Website,
		CategoryID:  data.CategoryID,
		Category:    toCategoryRef(data.Category),
		Status:      entity.ResourceStatus(data.Status),
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
// The joined Category association is never written back.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Logo:        data.Logo,
		Website:     data.Website,
		CategoryID:  data.CategoryID,
		Status:      string(data.Status),
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toStoreRef projects the joined store display fields.
func toStoreRef(data *model.StoreModel) *entity.StoreRef {
	if data == nil {
		return nil
	}

	return &entity.StoreRef{
		ID:   data.ID,
		Name: data.Name,
		Logo: data.Logo,
	}
}
