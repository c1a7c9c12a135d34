package models

import (
	"time"

	"github.com/coastalrealty/coastal-api/internal/money"
)

// Neighborhood is a curated content page for a served area, distinct from
// the free-text city/neighborhood fields on listings. Unpublished rows are
// invisible everywhere.
type Neighborhood struct {
	CreatedAt   time.Time    `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time    `gorm:"column:updated_at" json:"updatedAt"`
	Slug        string       `gorm:"size:255;uniqueIndex;not null;column:slug" json:"slug"`
	Name        string       `gorm:"size:255;not null;column:name" json:"name"`
	Description *string      `gorm:"type:text;column:description" json:"description,omitempty"`
	Image       *string      `gorm:"size:500;column:image" json:"image,omitempty"`
	AvgPrice    *money.Cents `gorm:"column:avg_price" json:"avgPrice,omitempty"`
	TotalHomes  *int         `gorm:"column:total_homes" json:"totalHomes,omitempty"`
	Features    StringList   `gorm:"type:text;column:features" json:"features"`
	Schools     Schools      `gorm:"type:text;column:schools" json:"schools"`
	Amenities   Amenities    `gorm:"type:text;column:amenities" json:"amenities"`
	Published   bool         `gorm:"not null;default:false;index;column:published" json:"published"`
	ID          uint         `gorm:"primaryKey" json:"id"`
}

// TableName specifies the table name for GORM.
func (Neighborhood) TableName() string {
	return "neighborhoods"
}
