package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResourceStatus is the two-state lifecycle shared by categories and stores.
type ResourceStatus string

const (
	// StatusActive marks a visible resource.
	StatusActive ResourceStatus = "active"
	// StatusInactive marks a hidden resource.
	StatusInactive ResourceStatus = "inactive"
)

// IsValid checks if the ResourceStatus is a valid value.
func (s ResourceStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// Category groups stores and deals under a browsable heading.
type Category struct {
	ID          uuid.UUID      `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Status      ResourceStatus `json:"status"`
	CreatedBy   uuid.UUID      `json:"createdBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CategoryRef is the joined display projection of a category carried on
// stores and deals in list/detail responses.
type CategoryRef struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"name"`
}
