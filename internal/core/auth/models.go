package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owner is the tenant account every customer, sale and inventory item belongs to.
// Rows are provisioned by the identity provider; this service only reads them.
type Owner struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:text;uniqueIndex" json:"email"`
	Name         string    `gorm:"type:text" json:"name"`
	BusinessName string    `gorm:"type:text" json:"business_name"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Owner) TableName() string {
	return "users"
}

// BeforeCreate sets UUID before creating
func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// DisplayName prefers the business name for invoices and prompts.
func (o *Owner) DisplayName() string {
	if o.BusinessName != "" {
		return o.BusinessName
	}
	return o.Name
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Context keys set by the middleware
const (
	LocalOwnerID = "ownerID"
	LocalOwner   = "owner"
)
