package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DealStatus is the moderation lifecycle of a deal.
type DealStatus string

const (
	// DealStatusActive marks a published deal.
	DealStatusActive DealStatus = "active"
	// DealStatusExpired marks a deal past its expiry date.
	DealStatusExpired DealStatus = "expired"
	// DealStatusPending marks a deal awaiting moderation. New deals start here.
	DealStatusPending DealStatus = "pending"
	// DealStatusRejected marks a deal declined by moderation.
	DealStatusRejected DealStatus = "rejected"
)

// IsValid checks if the DealStatus is a valid value.
func (s DealStatus) IsValid() bool {
	switch s {
	case DealStatusActive, DealStatusExpired, DealStatusPending, DealStatusRejected:
		return true
	default:
		return false
	}
}

// Deal is a discounted offer submitted by an account, referencing a store
// and a category by id.
type Deal struct {
	ID                 uuid.UUID    `json:"_id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	StoreID            uuid.UUID    `json:"-"`
	Store              *StoreRef    `json:"store,omitempty"`
	CategoryID         uuid.UUID    `json:"-"`
	Category           *CategoryRef `json:"category,omitempty"`
	OriginalPrice      float64      `json:"originalPrice"`
	DiscountPrice      float64      `json:"discountPrice"`
	DiscountPercentage int          `json:"discountPercentage"`
	ImageURL           string       `json:"imageUrl"`
	DealURL            string       `json:"dealUrl"`
	ExpiryDate         time.Time    `json:"expiryDate"`
	Status             DealStatus   `json:"status"`
	CreatedBy          uuid.UUID    `json:"createdBy"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// RecalculateDiscount derives the discount percentage from the two prices.
// It must be called whenever either price is set or changed; the stored
// percentage is never taken from client input.
func (d *Deal) RecalculateDiscount() {
	if d.OriginalPrice <= 0 {
		d.DiscountPercentage = 0

		return
	}

	d.DiscountPercentage = int(math.Round((d.OriginalPrice - d.DiscountPrice) / d.OriginalPrice * 100))
}

// IsOwnedBy implements the owner-or-admin rule: a mutation is permitted when
// the acting account created the deal or holds the admin role.
func (d *Deal) IsOwnedBy(actor *User) bool {
	return d.CreatedBy == actor.ID || actor.IsAdmin()
}
