package impl

import (
	"context"
	"testing"
	"time"

	"github.com/riaj03/savyo/internal/domain/entity"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/domain/repository"
	mockRepo "github.com/riaj03/savyo/internal/mocks/repository"
	mockSvc "github.com/riaj03/savyo/internal/mocks/service"
	"github.com/riaj03/savyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dealServiceFixtures holds all test dependencies for deal service tests.
type dealServiceFixtures struct {
	service       usecase.DealUsecase
	dealRepo      *mockRepo.MockDealRepository
	storeRepo     *mockRepo.MockStoreRepository
	categoryRepo  *mockRepo.MockCategoryRepository
	qrCodeService *mockSvc.MockQRCodeService
}

func createTestDealService(t *testing.T) dealServiceFixtures {
	dealRepo := mockRepo.NewMockDealRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	qrCodeService := mockSvc.NewMockQRCodeService(t)
	service := NewDealService(DealServiceParams{
		DealRepo:      dealRepo,
		StoreRepo:     storeRepo,
		CategoryRepo:  categoryRepo,
		QRCodeService: qrCodeService,
		Logger:        newDiscardLogger(),
	})

	return dealServiceFixtures{
		service:       service,
		dealRepo:      dealRepo,
		storeRepo:     storeRepo,
		categoryRepo:  categoryRepo,
		qrCodeService: qrCodeService,
	}
}

func validCreateInput(storeID, categoryID uuid.UUID) usecase.CreateDealInput {
	return usecase.CreateDealInput{
		Title:         "50% off wireless earbuds",
		StoreID:       storeID,
		CategoryID:    categoryID,
		OriginalPrice: 100,
		DiscountPrice: 50,
		DealURL:       "https://gadgethub.example.com/earbuds",
		ExpiryDate:    time.Now().Add(72 * time.Hour),
	}
}

func expectReferencesExist(fx dealServiceFixtures, ctx context.Context, storeID, categoryID uuid.UUID) {
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, Name: "GadgetHub"}, nil)
	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Electronics"}, nil)
}

func TestDealService_CreateDeal_DerivesDiscount(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	storeID, categoryID := uuid.New(), uuid.New()

	expectReferencesExist(fx, ctx, storeID, categoryID)
	fx.dealRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Deal")).
		Return(nil)

	deal, err := fx.service.CreateDeal(ctx, actor, validCreateInput(storeID, categoryID))
	require.NoError(t, err)
	assert.Equal(t, 50, deal.DiscountPercentage)
	assert.Equal(t, entity.DealStatusPending, deal.Status)
	assert.Equal(t, actor.ID, deal.CreatedBy)
}

func TestDealService_CreateDeal_FreeDealIsFullDiscount(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	storeID, categoryID := uuid.New(), uuid.New()

	expectReferencesExist(fx, ctx, storeID, categoryID)
	fx.dealRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Deal")).
		Return(nil)

	input := validCreateInput(storeID, categoryID)
	input.DiscountPrice = 0

	deal, err := fx.service.CreateDeal(ctx, actor, input)
	require.NoError(t, err)
	assert.Equal(t, 100, deal.DiscountPercentage)
}

func TestDealService_CreateDeal_RoundsDiscount(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	storeID, categoryID := uuid.New(), uuid.New()

	expectReferencesExist(fx, ctx, storeID, categoryID)
	fx.dealRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Deal")).
		Return(nil)

	input := validCreateInput(storeID, categoryID)
	input.OriginalPrice = 29.99
	input.DiscountPrice = 19.99

	deal, err := fx.service.CreateDeal(ctx, actor, input)
	require.NoError(t, err)
	// (29.99-19.99)/29.99*100 = 33.344..., rounded to 33.
	assert.Equal(t, 33, deal.DiscountPercentage)
}

func TestDealService_CreateDeal_DiscountAboveOriginal(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	input := validCreateInput(uuid.New(), uuid.New())
	input.DiscountPrice = 120

	deal, err := fx.service.CreateDeal(ctx, actor, input)
	require.Error(t, err)
	assert.Nil(t, deal)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDealService_CreateDeal_UnknownStore(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	storeID, categoryID := uuid.New(), uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	deal, err := fx.service.CreateDeal(ctx, actor, validCreateInput(storeID, categoryID))
	require.Error(t, err)
	assert.Nil(t, deal)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestDealService_UpdateDeal_OwnerRecomputesDiscount(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	dealID := uuid.New()

	fx.dealRepo.EXPECT().
		FindByID(ctx, dealID).
		Return(&entity.Deal{
			ID:                 dealID,
			OriginalPrice:      100,
			DiscountPrice:      50,
			DiscountPercentage: 50,
			Status:             entity.DealStatusActive,
			CreatedBy:          owner.ID,
		}, nil)

	fx.dealRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Deal")).
		Return(nil)

	newPrice := 25.0
	deal, err := fx.service.UpdateDeal(ctx, owner, dealID, usecase.UpdateDealInput{
		DiscountPrice: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, 75, deal.DiscountPercentage)
}

func TestDealService_UpdateDeal_StrangerDenied(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	stranger := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	dealID := uuid.New()

	fx.dealRepo.EXPECT().
		FindByID(ctx, dealID).
		Return(&entity.Deal{
			ID:        dealID,
			CreatedBy: uuid.New(),
			Status:    entity.DealStatusActive,
		}, nil)

	newTitle := "hijacked"
	deal, err := fx.service.UpdateDeal(ctx, stranger, dealID, usecase.UpdateDealInput{
		Title: &newTitle,
	})
	require.Error(t, err)
	assert.Nil(t, deal)
	assert.True(t, errors.Is(err, domainerrors.ErrDealOwnership))
}

func TestDealService_UpdateDeal_AdminAllowed(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	dealID := uuid.New()

	fx.dealRepo.EXPECT().
		FindByID(ctx, dealID).
		Return(&entity.Deal{
			ID:            dealID,
			OriginalPrice: 100,
			DiscountPrice: 50,
			CreatedBy:     uuid.New(),
			Status:        entity.DealStatusPending,
		}, nil)

	fx.dealRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Deal")).
		Return(nil)

	approved := string(entity.DealStatusActive)
	deal, err := fx.service.UpdateDeal(ctx, admin, dealID, usecase.UpdateDealInput{
		Status: &approved,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusActive, deal.Status)
}

func TestDealService_DeleteDeal_OwnerAllowed(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	dealID := uuid.New()

	fx.dealRepo.EXPECT().
		FindByID(ctx, dealID).
		Return(&entity.Deal{ID: dealID, CreatedBy: owner.ID}, nil)

	fx.dealRepo.EXPECT().
		Delete(ctx, dealID).
		Return(nil)

	require.NoError(t, fx.service.DeleteDeal(ctx, owner, dealID))
}

func TestDealService_DeleteDeal_StrangerDenied(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	stranger := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	dealID := uuid.New()

	fx.dealRepo.EXPECT().
		FindByID(ctx, dealID).
		Return(&entity.Deal{ID: dealID, CreatedBy: uuid.New()}, nil)

	err := fx.service.DeleteDeal(ctx, stranger, dealID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDealOwnership))
}

func TestDealService_DealQRCode(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	dealID := uuid.New()

	fx.dealRepo.EXPECT().
		FindByID(ctx, dealID).
		Return(&entity.Deal{
			ID:      dealID,
			DealURL: "https://gadgethub.example.com/earbuds",
		}, nil)

	fx.qrCodeService.EXPECT().
		GenerateDealQR("https://gadgethub.example.com/earbuds").
		Return([]byte{0x89, 0x50}, nil)

	png, err := fx.service.DealQRCode(ctx, dealID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestDealService_DealQRCode_NotFound(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()
	dealID := uuid.New()

	fx.dealRepo.EXPECT().
		FindByID(ctx, dealID).
		Return(nil, repository.ErrDealNotFound)

	png, err := fx.service.DealQRCode(ctx, dealID)
	require.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrDealNotFound))
}
