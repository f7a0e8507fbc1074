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

// dealRepository implements the repository.DealRepository interface.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{
		db: db,
	}
}

// List retrieves all deals, most recent first, with store and category
// display fields joined in.
func (repo *dealRepository) List(ctx context.Context) ([]*entity.Deal, error) {
	var dealModels []*model.DealModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Store").
		Preload("Category").
		Order("created_at DESC").
		Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	deals := make([]*entity.Deal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals, nil
}

// FindByID retrieves a deal by its unique ID.
func (repo *dealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var dealM model.DealModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Store").
		Preload("Category").
		Where("id = ?", id).
		First(&dealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal by ID")
	}

	return toDealDomain(&dealM), nil
}

// Create persists a new deal.
func (repo *dealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	if err := repo.db.WithContext(ctx).Create(dealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return dealReferenceError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deal")
	}

	deal.ID = dealM.ID
	deal.CreatedAt = dealM.CreatedAt
	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

// Update modifies an existing deal.
func (repo *dealRepository) Update(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ?", deal.ID).
		Updates(map[string]any{
			"title":               dealM.Title,
			"description":         dealM.Description,
			"store_id":            dealM.StoreID,
			"category_id":         dealM.CategoryID,
			"original_price":      dealM.OriginalPrice,
			"discount_price":      dealM.DiscountPrice,
			"discount_percentage": dealM.DiscountPercentage,
			"image_url":           dealM.ImageURL,
			"deal_url":            dealM.DealURL,
			"expiry_date":         dealM.ExpiryDate,
			"status":              dealM.Status,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return dealReferenceError(result.Error)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update deal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// Delete removes a deal by its ID.
func (repo *dealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete deal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDealDomain converts a GORM DealModel to a domain Deal entity.
func toDealDomain(data *model.DealModel) *entity.Deal {
	if data == nil {
		return nil
	}

	return &entity.Deal{
		ID:                 data.ID,
		Title:              data.Title,
		Description:        data.Description,
		StoreID:            data.StoreID,
		Store:              toStoreRef(data.Store),
		CategoryID:         data.CategoryID,
		Category:           toCategoryRef(data.Category),
		OriginalPrice:      data.OriginalPrice,
		DiscountPrice:      data.DiscountPrice,
		DiscountPercentage: data.DiscountPercentage,
		ImageURL:           data.ImageURL,
		DealURL:            data.DealURL,
		ExpiryDate:         data.ExpiryDate,
		Status:             entity.DealStatus(data.Status),
		CreatedBy:          data.CreatedBy,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromDealDomain converts a domain Deal entity to a GORM DealModel.
// The joined Store/Category associations are never written back.
func fromDealDomain(data *entity.Deal) *model.DealModel {
	if data == nil {
		return nil
	}

	return &model.DealModel{
		ID:                 data.ID,
		Title:              data.Title,
		Description:        data.Description,
		StoreID:            data.StoreID,
		CategoryID:         data.CategoryID,
		OriginalPrice:      data.OriginalPrice,
		DiscountPrice:      data.DiscountPrice,
		DiscountPercentage: data.DiscountPercentage,
		ImageURL:           data.ImageURL,
		DealURL:            data.DealURL,
		ExpiryDate:         data.ExpiryDate,
		Status:             string(data.Status),
		CreatedBy:          data.CreatedBy,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
