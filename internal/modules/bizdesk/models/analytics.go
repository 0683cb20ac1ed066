package models

import (
	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/analytics"
)

// AnalyticsOverview summarises sales in a window
type AnalyticsOverview struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalProfit       float64 `json:"totalProfit"`
	TotalDiscount     float64 `json:"totalDiscount"`
	TotalSales        int64   `json:"totalSales"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// PaymentMethodSummary groups sales by payment method
type PaymentMethodSummary struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}

// PaymentStatusSummary groups sales by payment status
type PaymentStatusSummary struct {
	Status string  `json:"status"`
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}

// TopCustomer is a customer ranked by in-window spend
type TopCustomer struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	SalesCount int64     `json:"salesCount"`
	TotalSpent float64   `json:"totalSpent"`
}

// TopProduct is a product name ranked by in-window quantity
type TopProduct struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	Count    int64   `json:"count"`
}

// AnalyticsReport is the GET /sales/analytics response
type AnalyticsReport struct {
	Period         analytics.Period       `json:"period"`
	Overview       AnalyticsOverview      `json:"overview"`
	PaymentMethods []PaymentMethodSummary `json:"paymentMethods"`
	PaymentStatus  []PaymentStatusSummary `json:"paymentStatus"`
	TopCustomers   []TopCustomer          `json:"topCustomers"`
	TopProducts    []TopProduct           `json:"topProducts"`
	SalesChart     []analytics.DailyPoint `json:"salesChart"`
}
