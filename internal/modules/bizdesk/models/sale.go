package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale defaults
const (
	DefaultPaymentMethod = "Cash"
	DefaultPaymentStatus = "Paid"
)

// Sale is a checkout header. It is written once, together with its items, and only ever deleted afterwards.
type Sale struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceNumber string    `gorm:"type:text;not null;uniqueIndex" json:"invoiceNumber"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"customerId"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index:idx_sales_owner_created,priority:1" json:"ownerId"`

	// Amounts
	SubtotalAmount float64 `gorm:"type:decimal(12,2);not null;default:0" json:"subtotalAmount"`
	DiscountAmount float64 `gorm:"type:decimal(12,2);not null;default:0" json:"discountAmount"`
	TotalAmount    float64 `gorm:"type:decimal(12,2);not null;default:0" json:"totalAmount"`
	ProfitAmount   float64 `gorm:"type:decimal(12,2);not null;default:0" json:"profitAmount"`

	// Payment
	PaymentMethod string `gorm:"type:text;not null" json:"paymentMethod"`
	PaymentStatus string `gorm:"type:text;not null" json:"paymentStatus"`

	Notes string `gorm:"type:text;not null;default:''" json:"notes"`

	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `gorm:"index:idx_sales_owner_created,priority:2" json:"createdAt"`
}

// TableName specifies the table name
func (Sale) TableName() string {
	return "sales"
}

// BeforeCreate sets UUID before creating
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SaleItem is one line of a sale
type SaleItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SaleID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"saleId"`
	LineNumber      int        `gorm:"type:integer;not null;default:0" json:"-"`
	ProductName     string     `gorm:"type:text;not null;index" json:"productName"`
	Quantity        int        `gorm:"type:integer;not null" json:"quantity"`
	UnitPrice       float64    `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
	TotalPrice      float64    `gorm:"type:decimal(12,2);not null" json:"totalPrice"`
	InventoryItemID *uuid.UUID `gorm:"type:uuid" json:"inventoryItemId,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name
func (SaleItem) TableName() string {
	return "sale_items"
}

// BeforeCreate sets UUID before creating
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// SaleProductInput is one requested line item
type SaleProductInput struct {
	Name            string     `json:"name"`
	Qty             int        `json:"qty"`
	Price           float64    `json:"price"`
	InventoryItemID *uuid.UUID `json:"inventoryItemId,omitempty"`
}

// CreateSaleRequest is the POST /sales body
type CreateSaleRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail,omitempty"`
	CustomerPhone string             `json:"customerPhone,omitempty"`
	Products      []SaleProductInput `json:"products"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
	PaymentStatus string             `json:"paymentStatus,omitempty"`
	Discount      *float64           `json:"discount,omitempty"`
	Notes         string             `json:"notes,omitempty"`
}

// SaleProductView is a line item as the UI consumes it
type SaleProductView struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Qty             int        `json:"qty"`
	Price           float64    `json:"price"`
	Total           float64    `json:"total"`
	InventoryItemID *uuid.UUID `json:"inventoryItemId,omitempty"`
}

// SaleView is the flattened sale returned by the API
type SaleView struct {
	ID            uuid.UUID         `json:"id"`
	Date          time.Time         `json:"date"`
	CustomerID    uuid.UUID         `json:"customerId"`
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail"`
	CustomerPhone string            `json:"customerPhone"`
	Products      []SaleProductView `json:"products"`
	Subtotal      float64           `json:"subtotal"`
	Discount      float64           `json:"discount"`
	Total         float64           `json:"total"`
	Profit        float64           `json:"profit"`
	PaymentStatus string            `json:"paymentStatus"`
	PaymentMethod string            `json:"paymentMethod"`
	BillNo        string            `json:"billNo"`
	Notes         string            `json:"notes"`
}

// NewSaleView flattens a sale with its customer and items loaded
func NewSaleView(sale *Sale) SaleView {
	view := SaleView{
		ID:            sale.ID,
		Date:          sale.CreatedAt,
		CustomerID:    sale.CustomerID,
		Products:      make([]SaleProductView, 0, len(sale.Items)),
		Subtotal:      sale.SubtotalAmount,
		Discount:      sale.DiscountAmount,
		Total:         sale.TotalAmount,
		Profit:        sale.ProfitAmount,
		PaymentStatus: sale.PaymentStatus,
		PaymentMethod: sale.PaymentMethod,
		BillNo:        sale.InvoiceNumber,
		Notes:         sale.Notes,
	}

	if sale.Customer != nil {
		view.CustomerName = sale.Customer.Name
		view.CustomerEmail = sale.Customer.Email
		view.CustomerPhone = sale.Customer.Phone
	}

	for _, item := range sale.Items {
		view.Products = append(view.Products, SaleProductView{
			ID:              item.ID,
			Name:            item.ProductName,
			Qty:             item.Quantity,
			Price:           item.UnitPrice,
			Total:           item.TotalPrice,
			InventoryItemID: item.InventoryItemID,
		})
	}

	return view
}

// SaleFilter represents sale filtering options
type SaleFilter struct {
	OwnerID  uuid.UUID
	From     *time.Time // inclusive
	To       *time.Time // exclusive
	Page     int
	PageSize int
}

// SaleListResponse represents paginated sale list response
type SaleListResponse struct {
	Sales      []SaleView `json:"sales"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}
