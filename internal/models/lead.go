package models

import (
	"time"
)

// Lead types, one per capture surface.
const (
	LeadTypeContact   = "contact"
	LeadTypeValuation = "valuation"
	LeadTypeSearch    = "search"
	LeadTypeChat      = "chat"
)

// DefaultLeadSource is recorded when a submission does not name its origin.
const DefaultLeadSource = "website"

// Lead is a prospective client's contact submission from any form or the
// chat widget. Leads are insert-only; nothing in the application updates or
// deletes them.
type Lead struct {
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Email     string    `gorm:"size:255;not null;index;column:email" json:"email"`
	Phone     *string   `gorm:"size:50;column:phone" json:"phone,omitempty"`
	Type      string    `gorm:"size:20;not null;index;column:type" json:"type"`
	Message   *string   `gorm:"type:text;column:message" json:"message,omitempty"`
	Source    string    `gorm:"size:100;not null;default:'website';column:source" json:"source"`
	ID        uint      `gorm:"primaryKey" json:"id"`
}

// TableName specifies the table name for GORM.
func (Lead) TableName() string {
	return "leads"
}

// ValidLeadType reports whether t is one of the known lead types.
func ValidLeadType(t string) bool {
	switch t {
	case LeadTypeContact, LeadTypeValuation, LeadTypeSearch, LeadTypeChat:
		return true
	}
	return false
}
