package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/services"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// CreateItem godoc
// @Summary Create an inventory item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body models.CreateInventoryRequest true "Item data"
// @Success 201 {object} models.InventoryItem
// @Failure 400 {object} map[string]interface{}
// @Router /inventory [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.CreateInventoryRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondError(c, err)
	}

	item, err := h.inventoryService.CreateItem(c.UserContext(), ownerID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// ListItems godoc
// @Summary List inventory
// @Tags Inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param search query string false "Search in item name"
// @Param lowStock query int false "Only items with stock at or below this value"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} models.InventoryListResponse
// @Router /inventory [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	filter := models.InventoryFilter{
		OwnerID:    ownerID,
		SearchTerm: c.Query("search"),
	}
	if filter.Page, filter.PageSize, err = pagination(c); err != nil {
		return respondError(c, err)
	}
	if c.Query("lowStock") != "" {
		threshold, err := queryInt(c, "lowStock")
		if err != nil {
			return respondError(c, err)
		}
		filter.LowStock = &threshold
	}

	resp, err := h.inventoryService.ListItems(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

// GetItem godoc
// @Summary Get inventory item by ID
// @Tags Inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Item ID"
// @Success 200 {object} models.InventoryItem
// @Failure 404 {object} map[string]interface{}
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := pathID(c, "inventory item")
	if err != nil {
		return respondError(c, err)
	}

	item, err := h.inventoryService.GetItem(c.UserContext(), ownerID, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(item)
}

// UpdateItem godoc
// @Summary Update an inventory item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Item ID"
// @Param item body models.UpdateInventoryRequest true "Fields to update"
// @Success 200 {object} models.InventoryItem
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := pathID(c, "inventory item")
	if err != nil {
		return respondError(c, err)
	}

	var req models.UpdateInventoryRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondError(c, err)
	}

	item, err := h.inventoryService.UpdateItem(c.UserContext(), ownerID, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(item)
}

// DeleteItem godoc
// @Summary Delete an inventory item
// @Tags Inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := pathID(c, "inventory item")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.inventoryService.DeleteItem(c.UserContext(), ownerID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Inventory item deleted successfully",
	})
}
