package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecalculateDiscount(t *testing.T) {
	tests := []struct {
		name          string
		originalPrice float64
		discountPrice float64
		want          int
	}{
		{name: "half price", originalPrice: 999.99, discountPrice: 499.99, want: 50},
		{name: "rounds to nearest", originalPrice: 29.99, discountPrice: 19.99, want: 33},
		{name: "free", originalPrice: 100, discountPrice: 0, want: 100},
		{name: "no discount", originalPrice: 100, discountPrice: 100, want: 0},
		{name: "zero original price", originalPrice: 0, discountPrice: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deal := &Deal{OriginalPrice: tt.originalPrice, DiscountPrice: tt.discountPrice}
			deal.RecalculateDiscount()
			assert.Equal(t, tt.want, deal.DiscountPercentage)
		})
	}
}

func TestDealIsOwnedBy(t *testing.T) {
	owner := &User{ID: uuid.New(), Role: RoleUser}
	stranger := &User{ID: uuid.New(), Role: RoleUser}
	admin := &User{ID: uuid.New(), Role: RoleAdmin}

	deal := &Deal{CreatedBy: owner.ID}

	assert.True(t, deal.IsOwnedBy(owner))
	assert.True(t, deal.IsOwnedBy(admin))
	assert.False(t, deal.IsOwnedBy(stranger))
}

func TestDealStatusIsValid(t *testing.T) {
	for _, s := range []DealStatus{DealStatusActive, DealStatusExpired, DealStatusPending, DealStatusRejected} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, DealStatus("archived").IsValid())
	assert.False(t, DealStatus("").IsValid())
}
