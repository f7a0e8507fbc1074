package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. The Category association is read-only
// and used to join the display name into listings.
type StoreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	Logo        string    `gorm:"type:varchar(255)"`
	Website     string    `gorm:"type:varchar(255)"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
