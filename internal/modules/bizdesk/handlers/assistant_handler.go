package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/services"
)

type AssistantHandler struct {
	assistantService *services.AssistantService
}

func NewAssistantHandler(assistantService *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Chat godoc
// @Summary Ask the business assistant
// @Description Answers using the owner's inventory and this month's sales. Provider failures return success=false with an apology.
// @Tags AI
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param chat body models.ChatRequest true "Question"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /ai/chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	ownerID, err := currentOwner(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.ChatRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.assistantService.Chat(c.UserContext(), ownerID, req.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}
