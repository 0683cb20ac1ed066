package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a buyer in an owner's directory. Matching is by email, then by name; there is
// no database uniqueness beyond the owner scope.
type Customer struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index:idx_customers_owner_name,priority:1;index:idx_customers_owner_email,priority:1" json:"ownerId"`

	Name      string `gorm:"type:text;not null;index:idx_customers_owner_name,priority:2" json:"name"`
	Email     string `gorm:"type:text;not null;default:'';index:idx_customers_owner_email,priority:2" json:"email"`
	Phone     string `gorm:"type:text;not null;default:''" json:"phone"`
	Address   string `gorm:"type:text;not null;default:''" json:"address"`
	GSTNumber string `gorm:"type:text;not null;default:''" json:"gstNumber"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// BeforeCreate sets UUID before creating
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CreateCustomerRequest represents customer creation request
type CreateCustomerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	GSTNumber string `json:"gstNumber,omitempty"`
}

// UpdateCustomerRequest represents customer update request; nil fields are left unchanged
type UpdateCustomerRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	GSTNumber *string `json:"gstNumber,omitempty"`
}

// CustomerFilter represents customer filtering options
type CustomerFilter struct {
	OwnerID    uuid.UUID
	SearchTerm string // name, email or phone
	Page       int
	PageSize   int
}

// CustomerListResponse represents paginated customer list response
type CustomerListResponse struct {
	Customers  []Customer `json:"customers"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}
