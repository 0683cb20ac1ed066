package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Handlers groups everything RegisterRoutes mounts
type Handlers struct {
	Health    *HealthHandler
	Sale      *SaleHandler
	Customer  *CustomerHandler
	Inventory *InventoryHandler
	Assistant *AssistantHandler
	Audit     *AuditHandler
}

// RegisterRoutes mounts the public routes and, behind authMiddleware, the owner-scoped API
func RegisterRoutes(app *fiber.App, h *Handlers, authMiddleware fiber.Handler) {
	// Public
	app.Get("/health", h.Health.GetHealth)
	app.Get("/swagger/*", swagger.HandlerDefault)

	protected := []fiber.Handler{authMiddleware, AuditContext()}

	// Sales (static paths before /:id)
	sales := app.Group("/sales", protected...)
	sales.Post("/", h.Sale.CreateSale)
	sales.Get("/", h.Sale.ListSales)
	sales.Get("/analytics", h.Sale.GetAnalytics)
	sales.Get("/export", h.Sale.ExportSales)
	sales.Get("/:id", h.Sale.GetSale)
	sales.Get("/:id/invoice", h.Sale.GetInvoice)
	sales.Delete("/:id", h.Sale.DeleteSale)

	// Customers
	customers := app.Group("/customers", protected...)
	customers.Post("/", h.Customer.CreateCustomer)
	customers.Get("/", h.Customer.ListCustomers)
	customers.Get("/:id", h.Customer.GetCustomer)
	customers.Put("/:id", h.Customer.UpdateCustomer)
	customers.Delete("/:id", h.Customer.DeleteCustomer)

	// Inventory
	inventory := app.Group("/inventory", protected...)
	inventory.Post("/", h.Inventory.CreateItem)
	inventory.Get("/", h.Inventory.ListItems)
	inventory.Get("/:id", h.Inventory.GetItem)
	inventory.Put("/:id", h.Inventory.UpdateItem)
	inventory.Delete("/:id", h.Inventory.DeleteItem)

	// AI assistant
	ai := app.Group("/ai", protected...)
	ai.Post("/chat", h.Assistant.Chat)

	// Audit trail
	app.Get("/audit-logs", append(protected, h.Audit.ListAuditLogs)...)
}
