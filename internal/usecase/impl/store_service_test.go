package impl

import (
	"context"
	"testing"

	"github.com/riaj03/savyo/internal/domain/entity"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/domain/repository"
	mockRepo "github.com/riaj03/savyo/internal/mocks/repository"
	"github.com/riaj03/savyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	service      usecase.StoreUsecase
	storeRepo    *mockRepo.MockStoreRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewStoreService(StoreServiceParams{
		StoreRepo:    storeRepo,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:      service,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
	}
}

func TestStoreService_CreateStore_Success(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Electronics"}, nil)

	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)

	store, err := fx.service.CreateStore(ctx, admin, usecase.CreateStoreInput{
		Name:       "GadgetHub",
		CategoryID: categoryID,
		Website:    "https://gadgethub.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, store.Status)
	assert.Equal(t, admin.ID, store.CreatedBy)
	assert.Equal(t, categoryID, store.CategoryID)
}

func TestStoreService_CreateStore_UnknownCategory(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	store, err := fx.service.CreateStore(ctx, admin, usecase.CreateStoreInput{
		Name:       "GadgetHub",
		CategoryID: categoryID,
	})
	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestStoreService_UpdateStore_Reparent(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	storeID := uuid.New()
	oldCategoryID := uuid.New()
	newCategoryID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{
			ID:         storeID,
			Name:       "GadgetHub",
			CategoryID: oldCategoryID,
			Category:   &entity.CategoryRef{ID: oldCategoryID, Name: "Electronics"},
			Status:     entity.StatusActive,
		}, nil)

	fx.categoryRepo.EXPECT().
		FindByID(ctx, newCategoryID).
		Return(&entity.Category{ID: newCategoryID, Name: "Home"}, nil)

	fx.storeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)

	store, err := fx.service.UpdateStore(ctx, storeID, usecase.UpdateStoreInput{
		CategoryID: &newCategoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, newCategoryID, store.CategoryID)
	// The stale joined name is dropped rather than served wrong.
	assert.Nil(t, store.Category)
}

func TestStoreService_UpdateStore_InvalidStatus(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, Status: entity.StatusActive}, nil)

	badStatus := "closed"
	store, err := fx.service.UpdateStore(ctx, storeID, usecase.UpdateStoreInput{
		Status: &badStatus,
	})
	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestStoreService_DeleteStore_NotFound(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		Delete(ctx, storeID).
		Return(repository.ErrStoreNotFound)

	err := fx.service.DeleteStore(ctx, storeID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestStoreService_GetStore(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{
			ID:       storeID,
			Name:     "GadgetHub",
			Category: &entity.CategoryRef{ID: uuid.New(), Name: "Electronics"},
		}, nil)

	store, err := fx.service.GetStore(ctx, storeID)
	require.NoError(t, err)
	assert.Equal(t, "GadgetHub", store.Name)
	require.NotNil(t, store.Category)
	assert.Equal(t, "Electronics", store.Category.Name)
}
