package model

import (
	"time"

	"github.com/google/uuid"
)

// DealModel mirrors the 'deals' table. Store and Category associations are
// read-only joins used to decorate listings with display fields.
type DealModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title              string    `gorm:"type:varchar(150);not null"`
	Description        string    `gorm:"type:text"`
	StoreID            uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID         uuid.UUID `gorm:"type:uuid;not null;index"`
	OriginalPrice      float64   `gorm:"not null"`
	DiscountPrice      float64   `gorm:"not null"`
	DiscountPercentage int       `gorm:"not null"`
	ImageURL           string    `gorm:"type:varchar(255)"`
	DealURL            string    `gorm:"type:varchar(255);not null"`
	ExpiryDate         time.Time `gorm:"not null;index"`
	Status             string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedBy          uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time

	Store    *StoreModel    `gorm:"foreignKey:StoreID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (DealModel) TableName() string {
	return "deals"
}
