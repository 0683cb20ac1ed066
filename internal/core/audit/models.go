package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Actions recorded by the services
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// AuditLog represents a change made by an owner
type AuditLog struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;index"`

	// Action details
	Action   string `json:"action" gorm:"type:text;not null;index"` // create, update, delete
	Entity   string `json:"entity" gorm:"type:text;not null;index"` // sale, customer, inventory_item
	EntityID string `json:"entityId" gorm:"type:text;index"`

	// Change tracking
	OldValue datatypes.JSON `json:"oldValue,omitempty"`
	NewValue datatypes.JSON `json:"newValue,omitempty"`

	// Request metadata
	IPAddress string `json:"ipAddress,omitempty" gorm:"type:text"`
	Method    string `json:"method,omitempty" gorm:"type:text"`
	Endpoint  string `json:"endpoint,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// TableName specifies the table name
func (AuditLog) TableName() string {
	return "audit_logs"
}

// BeforeCreate sets UUID before creating
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Request carries the HTTP metadata stored alongside an entry
type Request struct {
	IPAddress string
	Method    string
	Endpoint  string
}

// Change describes one entry to record
type Change struct {
	OwnerID  uuid.UUID
	Action   string
	Entity   string
	EntityID string
	OldValue interface{}
	NewValue interface{}
	Request  Request
}

// AuditFilter represents filters for querying audit logs
type AuditFilter struct {
	OwnerID   uuid.UUID
	Action    string
	Entity    string
	EntityID  string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

// AuditLogResponse represents paginated audit log response
type AuditLogResponse struct {
	Logs       []AuditLog `json:"logs"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}
