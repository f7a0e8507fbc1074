package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a merchant whose deals are listed on the site.
type Store struct {
	ID          uuid.UUID      `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Logo        string         `json:"logo"`
	Website     string         `json:"website"`
	CategoryID  uuid.UUID      `json:"-"`
	Category    *CategoryRef   `json:"category,omitempty"`
	Status      ResourceStatus `json:"status"`
	CreatedBy   uuid.UUID      `json:"createdBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// StoreRef is the joined display projection of a store carried on deals.
type StoreRef struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"name"`
	Logo string    `json:"logo"`
}
