package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/audit"
)

type AuditHandler struct {
	auditService *audit.Service
}

func NewAuditHandler(auditService *audit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListAuditLogs godoc
// @Summary List audit logs
// @Description Changes made to the owner's sales, customers and inventory, newest first
// @Tags Audit
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param entity query string false "sale, customer or inventory_item"
// @Param entity_id query string false "Entity ID"
// @Param action query string false "create, update or delete"
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} audit.AuditLogResponse
// @Router /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	filter := audit.AuditFilter{
		OwnerID:  ownerID,
		Entity:   c.Query("entity"),
		EntityID: c.Query("entity_id"),
		Action:   c.Query("action"),
	}
	if filter.Page, filter.PageSize, err = pagination(c); err != nil {
		return respondError(c, err)
	}
	if filter.StartDate, err = parseDate(c.Query("from"), "from", time.UTC); err != nil {
		return respondError(c, err)
	}
	if filter.EndDate, err = parseDate(c.Query("to"), "to", time.UTC); err != nil {
		return respondError(c, err)
	}

	resp, err := h.auditService.GetLogs(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}
