package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/services"
)

type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param customer body models.CreateCustomerRequest true "Customer data"
// @Success 201 {object} models.Customer
// @Failure 400 {object} map[string]interface{}
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.CreateCustomerRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondError(c, err)
	}

	customer, err := h.customerService.CreateCustomer(c.UserContext(), ownerID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(customer)
}

// ListCustomers godoc
// @Summary List customers
// @Tags Customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param search query string false "Search in name, email, phone"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} models.CustomerListResponse
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	filter := models.CustomerFilter{
		OwnerID:    ownerID,
		SearchTerm: c.Query("search"),
	}
	if filter.Page, filter.PageSize, err = pagination(c); err != nil {
		return respondError(c, err)
	}

	resp, err := h.customerService.ListCustomers(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

// GetCustomer godoc
// @Summary Get customer by ID
// @Tags Customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} map[string]interface{}
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := pathID(c, "customer")
	if err != nil {
		return respondError(c, err)
	}

	customer, err := h.customerService.GetCustomer(c.UserContext(), ownerID, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(customer)
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Description Only the supplied fields change
// @Tags Customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Customer ID"
// @Param customer body models.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} models.Customer
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := pathID(c, "customer")
	if err != nil {
		return respondError(c, err)
	}

	var req models.UpdateCustomerRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondError(c, err)
	}

	customer, err := h.customerService.UpdateCustomer(c.UserContext(), ownerID, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(customer)
}

// DeleteCustomer godoc
// @Summary Delete a customer
// @Description Customers with recorded sales cannot be deleted
// @Tags Customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Customer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := pathID(c, "customer")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.customerService.DeleteCustomer(c.UserContext(), ownerID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Customer deleted successfully",
	})
}
