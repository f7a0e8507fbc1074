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

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_ListCategories(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		List(ctx).
		Return([]*entity.Category{
			{ID: uuid.New(), Name: "Electronics"},
			{ID: uuid.New(), Name: "Groceries"},
		}, nil)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCategoryService_CreateCategory_DefaultsToActive(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, admin, usecase.CreateCategoryInput{
		Name: "Electronics",
		Icon: "cpu",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, category.Status)
	assert.Equal(t, admin.ID, category.CreatedBy)
}

func TestCategoryService_CreateCategory_InvalidStatus(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}

	category, err := fx.service.CreateCategory(ctx, admin, usecase.CreateCategoryInput{
		Name:   "Electronics",
		Status: "archived",
	})
	require.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(domainerrors.ErrCategoryAlreadyExists)

	category, err := fx.service.CreateCategory(ctx, admin, usecase.CreateCategoryInput{
		Name: "Electronics",
	})
	require.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryAlreadyExists))
}

func TestCategoryService_UpdateCategory_PartialMerge(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{
			ID:          categoryID,
			Name:        "Electronics",
			Description: "Gadgets",
			Status:      entity.StatusActive,
		}, nil)

	newName := "Tech"
	fx.categoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(_ context.Context, category *entity.Category) {
			assert.Equal(t, "Tech", category.Name)
			// Untouched fields survive the partial update.
			assert.Equal(t, "Gadgets", category.Description)
		}).
		Return(nil)

	category, err := fx.service.UpdateCategory(ctx, categoryID, usecase.UpdateCategoryInput{
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tech", category.Name)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	newName := "Tech"
	category, err := fx.service.UpdateCategory(ctx, categoryID, usecase.UpdateCategoryInput{
		Name: &newName,
	})
	require.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		Delete(ctx, categoryID).
		Return(nil)

	require.NoError(t, fx.service.DeleteCategory(ctx, categoryID))
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		Delete(ctx, categoryID).
		Return(repository.ErrCategoryNotFound)

	err := fx.service.DeleteCategory(ctx, categoryID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}
