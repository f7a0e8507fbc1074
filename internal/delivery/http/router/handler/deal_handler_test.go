package handler

import (
	"testing"
	"time"

	"github.com/riaj03/savyo/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validDealRequest() createDealRequest {
	return createDealRequest{
		Title:         "50% off on Electronics",
		Description:   "Storewide electronics sale",
		StoreID:       uuid.New(),
		CategoryID:    uuid.New(),
		OriginalPrice: 100,
		DiscountPrice: 50,
		DealURL:       "https://example.com/deals/electronics",
		ExpiryDate:    time.Now().Add(7 * 24 * time.Hour),
	}
}

func TestCreateDealRequest_FreeDealPassesValidation(t *testing.T) {
	v := validator.New()

	// A 100%-off deal carries a discount price of zero and is valid.
	req := validDealRequest()
	req.DiscountPrice = 0

	assert.NoError(t, v.Validate(&req))
}

func TestCreateDealRequest_NegativeDiscountPriceRejected(t *testing.T) {
	v := validator.New()

	req := validDealRequest()
	req.DiscountPrice = -1

	assert.Error(t, v.Validate(&req))
}

func TestCreateDealRequest_MissingTitleRejected(t *testing.T) {
	v := validator.New()

	req := validDealRequest()
	req.Title = ""

	assert.Error(t, v.Validate(&req))
}
