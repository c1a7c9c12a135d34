package models

import (
	"time"

	"github.com/coastalrealty/coastal-api/internal/money"
)

// Stored property type enum values.
const (
	PropertyTypeSingleFamily = "SINGLE_FAMILY"
	PropertyTypeCondo        = "CONDO"
	PropertyTypeTownhouse    = "TOWNHOUSE"
	PropertyTypeMultiFamily  = "MULTI_FAMILY"
	PropertyTypeLand         = "LAND"
)

// Property listing statuses. Only active listings are ever served.
const (
	PropertyStatusActive  = "ACTIVE"
	PropertyStatusPending = "PENDING"
	PropertyStatusSold    = "SOLD"
)

// Property is a listing record. The application treats listings as
// read-only; rows are seeded or synced from the MLS feed externally.
// Nullable fields use pointers to distinguish zero values from NULL.
type Property struct {
	CreatedAt    time.Time   `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"column:updated_at" json:"updatedAt"`
	MLS          string      `gorm:"size:50;uniqueIndex;column:mls" json:"mls"`
	Address      string      `gorm:"size:500;not null;column:address" json:"address"`
	City         string      `gorm:"size:100;not null;index;column:city" json:"city"`
	ZipCode      string      `gorm:"size:20;column:zip_code" json:"zipCode"`
	Price        money.Cents `gorm:"not null;column:price" json:"price"`
	Bedrooms     int         `gorm:"not null;column:bedrooms" json:"bedrooms"`
	Bathrooms    float64     `gorm:"not null;column:bathrooms" json:"bathrooms"`
	Sqft         *int        `gorm:"column:sqft" json:"sqft,omitempty"`
	YearBuilt    *int        `gorm:"column:year_built" json:"yearBuilt,omitempty"`
	PropertyType string      `gorm:"size:30;not null;index;column:property_type" json:"propertyType"`
	Status       string      `gorm:"size:20;not null;default:'ACTIVE';index;column:status" json:"status"`
	Description  *string     `gorm:"type:text;column:description" json:"description,omitempty"`
	Features     StringList  `gorm:"type:text;column:features" json:"features"`
	Neighborhood *string     `gorm:"size:255;index;column:neighborhood" json:"neighborhood,omitempty"`
	Lat          *float64    `gorm:"column:lat" json:"lat,omitempty"`
	Lng          *float64    `gorm:"column:lng" json:"lng,omitempty"`
	Images       StringList  `gorm:"type:text;column:images" json:"images"`
	DaysOnMarket *int        `gorm:"column:days_on_market" json:"daysOnMarket,omitempty"`
	ID           uint        `gorm:"primaryKey" json:"id"`
}

// TableName specifies the table name for GORM.
func (Property) TableName() string {
	return "properties"
}
