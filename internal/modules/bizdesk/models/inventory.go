package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InventoryItem is a stocked product. Sales reference it but never change its stock.
type InventoryItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`

	ItemName      string                                `gorm:"type:text;not null" json:"itemName"`
	StockQuantity int                                   `gorm:"type:integer;not null;default:0" json:"stockQuantity"`
	ItemPrice     float64                               `gorm:"type:decimal(12,2);not null;default:0" json:"itemPrice"`
	CustomFields  datatypes.JSONType[map[string]string] `json:"customFields"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// BeforeCreate sets UUID before creating
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Fields returns the custom fields, never nil
func (i *InventoryItem) Fields() map[string]string {
	fields := i.CustomFields.Data()
	if fields == nil {
		return map[string]string{}
	}
	return fields
}

// IsLowStock reports whether stock is at or under threshold
func (i *InventoryItem) IsLowStock(threshold int) bool {
	return i.StockQuantity <= threshold
}

// CreateInventoryRequest represents inventory item creation request
type CreateInventoryRequest struct {
	ItemName      string            `json:"itemName"`
	StockQuantity int               `json:"stockQuantity"`
	ItemPrice     float64           `json:"itemPrice"`
	CustomFields  map[string]string `json:"customFields,omitempty"`
}

// UpdateInventoryRequest represents a partial update; nil fields are left unchanged
type UpdateInventoryRequest struct {
	ItemName      *string            `json:"itemName,omitempty"`
	StockQuantity *int               `json:"stockQuantity,omitempty"`
	ItemPrice     *float64           `json:"itemPrice,omitempty"`
	CustomFields  *map[string]string `json:"customFields,omitempty"`
}

// InventoryFilter represents inventory filtering options
type InventoryFilter struct {
	OwnerID    uuid.UUID
	SearchTerm string
	LowStock   *int // stock_quantity <= threshold
	Page       int
	PageSize   int
}

// InventoryListResponse represents paginated inventory list response
type InventoryListResponse struct {
	Items      []InventoryItem `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}
