package handlers

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type HealthHandler struct {
	db          *sql.DB
	llmProvider string
}

// NewHealthHandler reports on the database pool; llmProvider is informational ("" when disabled)
func NewHealthHandler(db *sql.DB, llmProvider string) *HealthHandler {
	return &HealthHandler{db: db, llmProvider: llmProvider}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive and the database answers
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("❌ Health check: database ping failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unavailable",
			"service":  "bizdesk-api",
			"database": "down",
		})
	}

	provider := h.llmProvider
	if provider == "" {
		provider = "disabled"
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "bizdesk-api",
		"database": "up",
		"llm":      provider,
	})
}
