package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/services"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

type SaleHandler struct {
	saleService      *services.SaleService
	analyticsService *services.AnalyticsService
	exportService    *services.ExportService
}

func NewSaleHandler(saleService *services.SaleService, analyticsService *services.AnalyticsService, exportService *services.ExportService) *SaleHandler {
	return &SaleHandler{
		saleService:      saleService,
		analyticsService: analyticsService,
		exportService:    exportService,
	}
}

// CreateSale godoc
// @Summary Record a sale
// @Description Creates the sale, its line items and (if new) the customer in one transaction
// @Tags Sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body models.CreateSaleRequest true "Sale data"
// @Success 201 {object} map[string]models.SaleView
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /sales [post]
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.CreateSaleRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondError(c, err)
	}

	sale, err := h.saleService.CreateSale(c.UserContext(), ownerID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"sale": sale,
	})
}

// GetSale godoc
// @Summary Get sale by ID
// @Tags Sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Sale ID"
// @Success 200 {object} map[string]models.SaleView
// @Failure 404 {object} map[string]interface{}
// @Router /sales/{id} [get]
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := pathID(c, "sale")
	if err != nil {
		return respondError(c, err)
	}

	sale, err := h.saleService.GetSale(c.UserContext(), ownerID, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"sale": sale,
	})
}

// ListSales godoc
// @Summary List sales
// @Description Newest first. from/to accept YYYY-MM-DD (reporting timezone) or RFC3339; to is exclusive.
// @Tags Sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Start date"
// @Param to query string false "End date (exclusive)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} models.SaleListResponse
// @Failure 400 {object} map[string]interface{}
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	filter := models.SaleFilter{OwnerID: ownerID}
	if filter.Page, filter.PageSize, err = pagination(c); err != nil {
		return respondError(c, err)
	}

	loc := h.analyticsService.Location()
	if filter.From, err = parseDate(c.Query("from"), "from", loc); err != nil {
		return respondError(c, err)
	}
	if filter.To, err = parseDate(c.Query("to"), "to", loc); err != nil {
		return respondError(c, err)
	}

	resp, err := h.saleService.ListSales(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

// DeleteSale godoc
// @Summary Delete a sale
// @Description Removes the sale and all of its line items
// @Tags Sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Sale ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /sales/{id} [delete]
func (h *SaleHandler) DeleteSale(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := pathID(c, "sale")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.saleService.DeleteSale(c.UserContext(), ownerID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Sale deleted successfully",
	})
}

// GetAnalytics godoc
// @Summary Sales analytics
// @Description Overview, payment breakdowns, top customers/products and a 30-day chart
// @Tags Sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param period query string false "week, month or year" default(month)
// @Success 200 {object} models.AnalyticsReport
// @Failure 400 {object} map[string]interface{}
// @Router /sales/analytics [get]
func (h *SaleHandler) GetAnalytics(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	report, err := h.analyticsService.GetAnalytics(c.UserContext(), ownerID, c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(report)
}

// ExportSales godoc
// @Summary Export sales report
// @Tags Sales
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param Authorization header string true "Bearer token"
// @Param format query string false "excel or pdf" default(excel)
// @Param period query string false "week, month or year" default(month)
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Router /sales/export [get]
func (h *SaleHandler) ExportSales(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	file, err := h.exportService.SalesReport(c.UserContext(), ownerID, c.Query("period"), c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}

	return sendFile(c, file)
}

// GetInvoice godoc
// @Summary Download invoice
// @Description PDF invoice with a QR code of the bill number
// @Tags Sales
// @Produce application/pdf
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Sale ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{}
// @Router /sales/{id}/invoice [get]
func (h *SaleHandler) GetInvoice(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := pathID(c, "sale")
	if err != nil {
		return respondError(c, err)
	}

	file, err := h.exportService.Invoice(c.UserContext(), ownerID, id)
	if err != nil {
		return respondError(c, err)
	}

	return sendFile(c, file)
}

func sendFile(c *fiber.Ctx, file *services.ExportFile) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Content)
}

func parseDate(raw, field string, loc *time.Location) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperror.Validation("%s must be YYYY-MM-DD or RFC3339", field)
	}
	return &t, nil
}
