package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/riaj03/savyo/internal/delivery/context"
	"github.com/riaj03/savyo/internal/domain/entity"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/domain/repository"
	"github.com/riaj03/savyo/internal/domain/service"
	"github.com/riaj03/savyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dealService implements the DealUsecase interface.
type dealService struct {
	dealRepo      repository.DealRepository
	storeRepo     repository.StoreRepository
	categoryRepo  repository.CategoryRepository
	qrCodeService service.QRCodeService
	logger        *slog.Logger
}

// DealServiceParams holds dependencies for dealService, injected by Fx.
type DealServiceParams struct {
	fx.In

	DealRepo      repository.DealRepository
	StoreRepo     repository.StoreRepository
	CategoryRepo  repository.CategoryRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewDealService is the constructor for dealService.
func NewDealService(params DealServiceParams) usecase.DealUsecase {
	return &dealService{
		dealRepo:      params.DealRepo,
		storeRepo:     params.StoreRepo,
		categoryRepo:  params.CategoryRepo,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *dealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDeals retrieves all deals, most recent first.
func (srv *dealService) ListDeals(ctx context.Context) ([]*entity.Deal, error) {
	deals, err := srv.dealRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	return deals, nil
}

// GetDeal retrieves a single deal by id.
func (srv *dealService) GetDeal(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.dealRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to load deal")
	}

	return deal, nil
}

// CreateDeal submits a deal stamped with the acting account. New deals start
// pending unless the input names a valid status explicitly.
func (srv *dealService) CreateDeal(ctx context.Context, actor *entity.User, input usecase.CreateDealInput) (*entity.Deal, error) {
	status := entity.DealStatus(input.Status)
	if input.Status == "" {
		status = entity.DealStatusPending
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("invalid deal status")
	}

	if input.DiscountPrice > input.OriginalPrice {
		return nil, domainerrors.ErrValidationFailed.WithMessage("discount price cannot exceed original price")
	}

	if err := srv.ensureReferencesExist(ctx, input.StoreID, input.CategoryID); err != nil {
		return nil, err
	}

	deal := &entity.Deal{
		Title:         input.Title,
		Description:   input.Description,
		StoreID:       input.StoreID,
		CategoryID:    input.CategoryID,
		OriginalPrice: input.OriginalPrice,
		DiscountPrice: input.DiscountPrice,
		ImageURL:      input.ImageURL,
		DealURL:       input.DealURL,
		ExpiryDate:    input.ExpiryDate,
		Status:        status,
		CreatedBy:     actor.ID,
	}
	deal.RecalculateDiscount()

	if err := srv.dealRepo.Create(ctx, deal); err != nil {
		return nil, errors.Wrap(err, "failed to create deal")
	}

	srv.log(ctx).Info("Deal created", slog.Any("dealID", deal.ID), slog.Any("createdBy", actor.ID))

	return deal, nil
}

// UpdateDeal applies a partial update after the owner-or-admin check.
func (srv *dealService) UpdateDeal(ctx context.Context, actor *entity.User, id uuid.UUID, input usecase.UpdateDealInput) (*entity.Deal, error) {
	deal, err := srv.GetDeal(ctx, id)
	if err != nil {
		return nil, err
	}

	if !deal.IsOwnedBy(actor) {
		srv.log(ctx).Warn("Deal mutation denied", slog.Any("dealID", id), slog.Any("actorID", actor.ID))

		return nil, domainerrors.ErrDealOwnership
	}

	if input.Title != nil {
		deal.Title = *input.Title
	}
	if input.Description != nil {
		deal.Description = *input.Description
	}
	if input.StoreID != nil {
		if err := srv.ensureStoreExists(ctx, *input.StoreID); err != nil {
			return nil, err
		}
		deal.StoreID = *input.StoreID
		deal.Store = nil
	}
	if input.CategoryID != nil {
		if err := srv.ensureCategoryExists(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		deal.CategoryID = *input.CategoryID
		deal.Category = nil
	}

	priceTouched := false
	if input.OriginalPrice != nil {
		deal.OriginalPrice = *input.OriginalPrice
		priceTouched = true
	}
	if input.DiscountPrice != nil {
		deal.DiscountPrice = *input.DiscountPrice
		priceTouched = true
	}
	if deal.DiscountPrice > deal.OriginalPrice {
		return nil, domainerrors.ErrValidationFailed.WithMessage("discount price cannot exceed original price")
	}
	if priceTouched {
		deal.RecalculateDiscount()
	}

	if input.ImageURL != nil {
		deal.ImageURL = *input.ImageURL
	}
	if input.DealURL != nil {
		deal.DealURL = *input.DealURL
	}
	if input.ExpiryDate != nil {
		deal.ExpiryDate = *input.ExpiryDate
	}
	if input.Status != nil {
		status := entity.DealStatus(*input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithMessage("invalid deal status")
		}
		deal.Status = status
	}

	if err := srv.dealRepo.Update(ctx, deal); err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to update deal")
	}

	srv.log(ctx).Info("Deal updated", slog.Any("dealID", deal.ID), slog.Any("actorID", actor.ID))

	return deal, nil
}

// DeleteDeal removes a deal after the owner-or-admin check.
func (srv *dealService) DeleteDeal(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	deal, err := srv.GetDeal(ctx, id)
	if err != nil {
		return err
	}

	if !deal.IsOwnedBy(actor) {
		srv.log(ctx).Warn("Deal deletion denied", slog.Any("dealID", id), slog.Any("actorID", actor.ID))

		return domainerrors.ErrDealOwnership
	}

	if err := srv.dealRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return domainerrors.ErrDealNotFound
		}

		return errors.Wrap(err, "failed to delete deal")
	}

	srv.log(ctx).Info("Deal deleted", slog.Any("dealID", id), slog.Any("actorID", actor.ID))

	return nil
}

// DealQRCode renders the deal's external URL as a PNG QR code.
func (srv *dealService) DealQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	deal, err := srv.GetDeal(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateDealQR(deal.DealURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render deal qr code")
	}

	return png, nil
}

func (srv *dealService) ensureReferencesExist(ctx context.Context, storeID, categoryID uuid.UUID) error {
	if err := srv.ensureStoreExists(ctx, storeID); err != nil {
		return err
	}

	return srv.ensureCategoryExists(ctx, categoryID)
}

func (srv *dealService) ensureStoreExists(ctx context.Context, storeID uuid.UUID) error {
	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to check store reference")
	}

	return nil
}

func (srv *dealService) ensureCategoryExists(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to check category reference")
	}

	return nil
}
